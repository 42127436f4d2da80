package http

import (
	"net/http"
	"strconv"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
)

// AuditHandler handles the audit log endpoint.
type AuditHandler struct {
	AuditService *service.AuditService
}

// HandleList handles GET /api/audit
//
//	@Summary		List audit log entries, newest first
//	@Description	An optional limit query parameter caps the result; zero or
//	@Description	absent returns everything.
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries to return"
//	@Success		200		{array}		inventsdk.AuditEntry
//	@Failure		403		{object}	inventsdk.ErrorResponse	"Admin role required"
//	@Router			/api/audit [get].
func (h *AuditHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httpx.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.AuditService.List(ctx, limit)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}
