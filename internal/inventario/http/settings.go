package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
)

// SettingsHandler handles the application settings endpoints.
type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet handles GET /api/settings
//
//	@Summary		Get public application settings
//	@Description	Open endpoint: the login screen needs the company name and
//	@Description	feature flags before any session exists. The SSO certificate
//	@Description	and SMTP credentials are only served on the admin path.
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	inventsdk.PublicSettings
//	@Router			/api/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.SettingsService.Get(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s.Public())
}

// HandleGetFull handles GET /api/settings/full
//
//	@Summary	Get the full settings row
//	@Tags		Settings
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	inventsdk.Settings
//	@Failure	403	{object}	inventsdk.ErrorResponse	"Admin role required"
//	@Router		/api/settings/full [get].
func (h *SettingsHandler) HandleGetFull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	s, err := h.SettingsService.Get(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}

// HandleSave handles POST /api/settings
//
//	@Summary	Replace application settings
//	@Tags		Settings
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		inventsdk.Settings	true	"New settings"
//	@Success	200		{object}	inventsdk.Settings
//	@Failure	403		{object}	inventsdk.ErrorResponse	"Admin role required"
//	@Router		/api/settings [post].
func (h *SettingsHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var s domain.Settings
	if err := httpx.DecodeJSON(r, &s); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if s.CompanyName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "companyName is required")
		return
	}

	if err := h.SettingsService.Save(ctx, caller.Username, s); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}
