package service

import (
	"context"
	"strconv"
	"time"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/slogx"
)

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now

// AuditService exposes the read side of the audit log.
type AuditService struct {
	Store store.Store
}

func (s *AuditService) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.Store.Audit().List(ctx, limit)
}

// logAction appends an audit entry best-effort: a failed write is logged and
// swallowed so it never fails the operation being audited.
func logAction(ctx context.Context, st store.Store, username string, action domain.AuditAction, target domain.AuditTarget, targetID *string, details string) {
	err := st.Audit().Append(ctx, domain.AuditEntry{
		Username:   username,
		ActionType: action,
		TargetType: target,
		TargetID:   targetID,
		Details:    details,
	})
	if err != nil {
		slogx.FromContext(ctx).Warn("audit append failed",
			"action", string(action),
			"target", string(target),
			"err", err,
		)
	}
}

func idRef(id int64) *string {
	s := strconv.FormatInt(id, 10)
	return &s
}
