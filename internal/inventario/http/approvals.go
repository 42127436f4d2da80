package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// ApprovalsHandler handles the review queue for plain-user registrations.
type ApprovalsHandler struct {
	ApprovalService *service.ApprovalService
}

// HandlePending handles GET /api/approvals/pending
//
//	@Summary	List items awaiting approval
//	@Tags		Approvals
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inventsdk.PendingApproval
//	@Failure	403	{object}	inventsdk.ErrorResponse	"Manager role required"
//	@Router		/api/approvals/pending [get].
func (h *ApprovalsHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pending, err := h.ApprovalService.Pending(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if pending == nil {
		pending = []domain.PendingApproval{}
	}
	httpx.WriteJSON(w, http.StatusOK, pending)
}

// HandleApprove handles POST /api/approvals/approve
//
//	@Summary	Approve a queued item
//	@Tags		Approvals
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	inventsdk.ApprovalRequest	true	"Item to approve"
//	@Success	204		"Approved"
//	@Failure	404		{object}	inventsdk.ErrorResponse	"Unknown item"
//	@Router		/api/approvals/approve [post].
func (h *ApprovalsHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	req, ok := decodeApprovalRequest(w, r)
	if !ok {
		return
	}

	if err := h.ApprovalService.Approve(ctx, caller.Username, req.ItemType, req.ID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReject handles POST /api/approvals/reject
//
//	@Summary	Reject a queued item
//	@Tags		Approvals
//	@Security	BearerAuth
//	@Accept		json
//	@Param		request	body	inventsdk.ApprovalRequest	true	"Item and reason"
//	@Success	204		"Rejected"
//	@Failure	404		{object}	inventsdk.ErrorResponse	"Unknown item"
//	@Router		/api/approvals/reject [post].
func (h *ApprovalsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	req, ok := decodeApprovalRequest(w, r)
	if !ok {
		return
	}
	if req.Reason == "" {
		httpx.WriteError(w, http.StatusBadRequest, "reason is required")
		return
	}

	if err := h.ApprovalService.Reject(ctx, caller.Username, req.ItemType, req.ID, req.Reason); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeApprovalRequest(w http.ResponseWriter, r *http.Request) (inventsdk.ApprovalRequest, bool) {
	var req inventsdk.ApprovalRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.ItemType != domain.ApprovalItemEquipment && req.ItemType != domain.ApprovalItemLicense {
		httpx.WriteError(w, http.StatusBadRequest, "unknown item type")
		return req, false
	}
	if req.ID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "invalid item id")
		return req, false
	}
	return req, true
}
