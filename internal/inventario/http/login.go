package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// LoginHandler handles POST /api/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /api/login
//
//	@Summary		Authenticate with username and password
//	@Description	Validates credentials. Returns a session token directly, or a
//	@Description	pending flag when the account has an active second factor or
//	@Description	policy forces enrollment. Pending responses carry only the user id.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	inventsdk.LoginResponse	"Session, or a pending second-factor flag"
//	@Failure		400		{object}	inventsdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	inventsdk.ErrorResponse	"Invalid credentials"
//	@Failure		429		{object}	inventsdk.ErrorResponse	"Too many attempts"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inventsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	switch {
	case res.Requires2FA:
		httpx.WriteJSON(w, http.StatusOK, inventsdk.LoginResponse{
			Requires2FA: true,
			UserID:      res.UserID,
		})
	case res.Requires2FASetup:
		httpx.WriteJSON(w, http.StatusOK, inventsdk.LoginResponse{
			Requires2FASetup: true,
			UserID:           res.UserID,
		})
	default:
		httpx.WriteJSON(w, http.StatusOK, inventsdk.LoginResponse{
			User:  toSDKUser(*res.User),
			Token: res.Token,
		})
	}
}
