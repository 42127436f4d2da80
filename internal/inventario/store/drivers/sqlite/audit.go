package sqlite

import (
	"context"
	"database/sql"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
)

type auditRepo struct {
	db dbtx
}

func (r *auditRepo) Append(ctx context.Context, e domain.AuditEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (username, action_type, target_type, target_id, details)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Username, string(e.ActionType), string(e.TargetType),
		mapOptionalString(e.TargetID), e.Details,
	)
	return mapUnavailable(err)
}

func (r *auditRepo) List(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	query := `SELECT id, username, action_type, target_type, target_id, details, timestamp
		 FROM audit_log ORDER BY id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, mapUnavailable(err)
	}
	defer rows.Close()

	var list []domain.AuditEntry
	for rows.Next() {
		var (
			e        domain.AuditEntry
			targetID sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Username, &e.ActionType, &e.TargetType,
			&targetID, &e.Details, &e.Timestamp); err != nil {
			return nil, mapUnavailable(err)
		}
		e.TargetID = mapNullStringPtr(targetID)
		list = append(list, e)
	}
	return list, rows.Err()
}
