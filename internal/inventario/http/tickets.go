package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
)

// TicketsHandler handles the service-desk endpoints.
type TicketsHandler struct {
	TicketService *service.TicketService
}

// HandleList handles GET /api/tickets
//
//	@Summary		List tickets
//	@Description	Plain users see only their own requests.
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	inventsdk.Ticket
//	@Router			/api/tickets [get].
func (h *TicketsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	list, err := h.TicketService.List(ctx, viewer)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	if list == nil {
		list = []domain.Ticket{}
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate handles POST /api/tickets
//
//	@Summary		Open a ticket
//	@Description	New tickets default to status "Aberto" and priority "Média".
//	@Tags			Tickets
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.Ticket	true	"New ticket"
//	@Success		201		{object}	inventsdk.Ticket
//	@Router			/api/tickets [post].
func (h *TicketsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var t domain.Ticket
	if err := httpx.DecodeJSON(r, &t); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if t.Title == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	// The requester is always the caller, whatever the body says.
	t.RequesterID = caller.ID
	t.RequesterName = caller.RealName

	created, err := h.TicketService.Create(ctx, caller.Username, t)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate handles PUT /api/tickets/{id}
//
//	@Summary	Update a ticket
//	@Tags		Tickets
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		request	body		inventsdk.Ticket	true	"Changed fields"
//	@Success	200		{object}	inventsdk.Ticket
//	@Failure	404		{object}	inventsdk.ErrorResponse	"Unknown ticket"
//	@Router		/api/tickets/{id} [put].
func (h *TicketsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var t domain.Ticket
	if err := httpx.DecodeJSON(r, &t); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	t.ID = id

	updated, err := h.TicketService.Update(ctx, caller.Username, t)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/tickets/{id}
//
//	@Summary	Delete a ticket
//	@Tags		Tickets
//	@Security	BearerAuth
//	@Param		id	path	int	true	"Ticket ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	inventsdk.ErrorResponse	"Unknown ticket"
//	@Router		/api/tickets/{id} [delete].
func (h *TicketsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	if err := h.TicketService.Delete(ctx, caller.Username, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
