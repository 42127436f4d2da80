package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
)

// LicensesHandler handles the software license endpoints.
type LicensesHandler struct {
	LicenseService *service.LicenseService
}

// HandleList handles GET /api/licenses
//
//	@Summary		List licenses
//	@Description	Plain users see only licenses assigned to them.
//	@Tags			Licenses
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	inventsdk.License
//	@Router			/api/licenses [get].
func (h *LicensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	list, err := h.LicenseService.List(ctx, viewer)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if list == nil {
		list = []domain.License{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/licenses
//
//	@Summary	Register a license
//	@Tags		Licenses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inventsdk.License	true	"New license"
//	@Success	201		{object}	inventsdk.License
//	@Router		/api/licenses [post].
func (h *LicensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var l domain.License
	if err := httpx.DecodeJSON(r, &l); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if l.Product == "" {
		httpx.WriteError(w, http.StatusBadRequest, "produto is required")
		return
	}

	l.CreatedByID = &caller.ID

	// Plain-user registrations queue for manager review.
	if !caller.Role.SeesAllAssets() {
		l.ApprovalStatus = domain.ApprovalPending
		l.RejectionReason = nil
	}

	created, err := h.LicenseService.Create(ctx, caller.Username, l)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/licenses/{id}
//
//	@Summary	Update a license
//	@Tags		Licenses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"License ID"
//	@Param		request	body		inventsdk.License	true	"Changed fields"
//	@Success	200		{object}	inventsdk.License
//	@Failure	404		{object}	inventsdk.ErrorResponse	"Unknown license"
//	@Router		/api/licenses/{id} [put].
func (h *LicensesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid license id")
		return
	}

	var l domain.License
	if err := httpx.DecodeJSON(r, &l); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	l.ID = id

	// Only the approval queue moves approval state for plain users.
	if !caller.Role.SeesAllAssets() {
		l.ApprovalStatus = ""
		l.RejectionReason = nil
	}

	updated, err := h.LicenseService.Update(ctx, caller.Username, l)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/licenses/{id}
//
//	@Summary	Delete a license
//	@Tags		Licenses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"License ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	inventsdk.ErrorResponse	"Unknown license"
//	@Router		/api/licenses/{id} [delete].
func (h *LicensesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid license id")
		return
	}

	if err := h.LicenseService.Delete(ctx, caller.Username, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTotals handles GET /api/license-totals
//
//	@Summary	Get purchased-seat totals per product
//	@Tags		Licenses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	inventsdk.LicenseTotals
//	@Router		/api/license-totals [get].
func (h *LicensesHandler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totals, err := h.LicenseService.Totals(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if totals == nil {
		totals = domain.LicenseTotals{}
	}
	httpx.WriteJSON(w, http.StatusOK, totals)
}

// HandleSaveTotals handles POST /api/license-totals
//
//	@Summary		Replace purchased-seat totals
//	@Description	Atomically replaces the whole per-product set.
//	@Tags			Licenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.LicenseTotals	true	"Totals per product"
//	@Success		200		{object}	inventsdk.LicenseTotals
//	@Failure		403		{object}	inventsdk.ErrorResponse	"Manager role required"
//	@Router			/api/license-totals [post].
func (h *LicensesHandler) HandleSaveTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var totals domain.LicenseTotals
	if err := httpx.DecodeJSON(r, &totals); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.LicenseService.SaveTotals(ctx, caller.Username, totals); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, totals)
}
