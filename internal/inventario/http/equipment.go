package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
)

// EquipmentHandler handles the hardware inventory endpoints.
type EquipmentHandler struct {
	EquipmentService *service.EquipmentService
}

// HandleList handles GET /api/equipment
//
//	@Summary		List equipment
//	@Description	Plain users see only rows assigned to or created by them;
//	@Description	managers and admins see everything.
//	@Tags			Equipment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		inventsdk.Equipment
//	@Failure		401	{object}	inventsdk.ErrorResponse	"Invalid or missing token"
//	@Router			/api/equipment [get].
func (h *EquipmentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	list, err := h.EquipmentService.List(ctx, viewer)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if list == nil {
		list = []domain.Equipment{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/equipment
//
//	@Summary	Register an equipment row
//	@Tags		Equipment
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inventsdk.Equipment	true	"New equipment"
//	@Success	201		{object}	inventsdk.Equipment
//	@Router		/api/equipment [post].
func (h *EquipmentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var e domain.Equipment
	if err := httpx.DecodeJSON(r, &e); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if e.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "equipamento is required")
		return
	}

	// Track who registered the row; visibility filtering depends on it.
	e.CreatedByID = &caller.ID

	// Plain-user registrations queue for manager review.
	if !caller.Role.SeesAllAssets() {
		e.ApprovalStatus = domain.ApprovalPending
		e.RejectionReason = nil
	}

	created, err := h.EquipmentService.Create(ctx, caller.Username, e)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/equipment/{id}
//
//	@Summary		Update an equipment row
//	@Description	Changes to the assigned user, status, location or sector are
//	@Description	recorded in the row's history timeline.
//	@Tags			Equipment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Equipment ID"
//	@Param			request	body		inventsdk.Equipment	true	"Changed fields"
//	@Success		200		{object}	inventsdk.Equipment
//	@Failure		404		{object}	inventsdk.ErrorResponse	"Unknown equipment"
//	@Router			/api/equipment/{id} [put].
func (h *EquipmentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	var e domain.Equipment
	if err := httpx.DecodeJSON(r, &e); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	e.ID = id

	// Only the approval queue moves approval state for plain users.
	if !caller.Role.SeesAllAssets() {
		e.ApprovalStatus = ""
		e.RejectionReason = nil
	}

	updated, err := h.EquipmentService.Update(ctx, caller.Username, e)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/equipment/{id}
//
//	@Summary	Delete an equipment row
//	@Tags		Equipment
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Equipment ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	inventsdk.ErrorResponse	"Unknown equipment"
//	@Router		/api/equipment/{id} [delete].
func (h *EquipmentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	if err := h.EquipmentService.Delete(ctx, caller.Username, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleHistory handles GET /api/equipment/{id}/history
//
//	@Summary	List an equipment row's change history
//	@Tags		Equipment
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Equipment ID"
//	@Success	200	{array}		inventsdk.EquipmentHistory
//	@Failure	404	{object}	inventsdk.ErrorResponse	"Unknown equipment"
//	@Router		/api/equipment/{id}/history [get].
func (h *EquipmentHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}

	hist, err := h.EquipmentService.History(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if hist == nil {
		hist = []domain.EquipmentHistory{}
	}
	httpx.WriteJSON(w, http.StatusOK, hist)
}
