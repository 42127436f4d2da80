package http

import (
	"net/http"
	"strconv"

	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
	"github.com/mrrinformatica/inventario/pkg/slogx"
)

// MFAHandler handles the TOTP second-factor endpoints.
type MFAHandler struct {
	AuthService *service.AuthService
	MFAService  *service.MFAService
}

// HandleVerify handles POST /api/verify-2fa
//
//	@Summary		Verify a TOTP code and complete the login
//	@Description	Checks the code against the account's active secret. On success
//	@Description	the deferred login side effects run and a session token is returned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.Verify2FARequest	true	"User id and code"
//	@Success		200		{object}	inventsdk.LoginResponse		"Completed session"
//	@Failure		400		{object}	inventsdk.ErrorResponse		"Invalid code"
//	@Failure		429		{object}	inventsdk.ErrorResponse		"Too many attempts"
//	@Router			/api/verify-2fa [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req inventsdk.Verify2FARequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.MFAService.Verify(ctx, req.UserID, req.Code); err != nil {
		log.Warn("2FA verification failed", "user_id", req.UserID, "err", err)
		writeServiceError(ctx, w, err)
		return
	}

	res, err := h.AuthService.CompleteLogin(ctx, req.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inventsdk.LoginResponse{
		User:  toSDKUser(*res.User),
		Token: res.Token,
	})
}

// HandleGenerate handles POST /api/generate-2fa
//
//	@Summary		Generate a TOTP secret for enrollment
//	@Description	Stores a pending secret for the user and returns it with its
//	@Description	otpauth:// provisioning URI. The factor activates only after
//	@Description	enable-2fa verifies a code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.Generate2FARequest	true	"User id"
//	@Success		200		{object}	inventsdk.Generate2FAResponse	"Secret and provisioning URI"
//	@Failure		409		{object}	inventsdk.ErrorResponse			"2FA already enabled"
//	@Router			/api/generate-2fa [post].
func (h *MFAHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inventsdk.Generate2FARequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	enr, err := h.MFAService.GenerateSecret(ctx, req.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inventsdk.Generate2FAResponse{
		Secret:          enr.Secret,
		ProvisioningURI: enr.ProvisioningURI,
	})
}

// HandleEnable handles POST /api/enable-2fa
//
//	@Summary		Activate the second factor and complete the login
//	@Description	Verifies a code against the pending secret, enables the factor
//	@Description	and returns a completed session. A wrong code leaves the pending
//	@Description	secret in place so the user can retry.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.Enable2FARequest	true	"User id and code"
//	@Success		200		{object}	inventsdk.LoginResponse		"Completed session"
//	@Failure		400		{object}	inventsdk.ErrorResponse		"Invalid code"
//	@Failure		409		{object}	inventsdk.ErrorResponse		"2FA already enabled"
//	@Router			/api/enable-2fa [post].
func (h *MFAHandler) HandleEnable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inventsdk.Enable2FARequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.MFAService.Enable(ctx, req.UserID, req.Code); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	res, err := h.AuthService.CompleteLogin(ctx, req.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inventsdk.LoginResponse{
		User:  toSDKUser(*res.User),
		Token: res.Token,
	})
}

// HandleDisable handles POST /api/disable-2fa
//
//	@Summary		Disable the caller's second factor
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	inventsdk.MessageResponse
//	@Failure		401	{object}	inventsdk.ErrorResponse	"Invalid or missing token"
//	@Router			/api/disable-2fa [post].
func (h *MFAHandler) HandleDisable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	if err := h.MFAService.Disable(ctx, caller.Username, caller.ID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inventsdk.MessageResponse{Message: "2FA disabled"})
}

// HandleDisableForUser handles POST /api/users/{id}/disable-2fa
//
//	@Summary		Reset another account's second factor
//	@Description	Admin-only recovery path for users locked out of their
//	@Description	authenticator app.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	inventsdk.MessageResponse
//	@Failure		403	{object}	inventsdk.ErrorResponse	"Admin role required"
//	@Failure		404	{object}	inventsdk.ErrorResponse	"Unknown user"
//	@Router			/api/users/{id}/disable-2fa [post].
func (h *MFAHandler) HandleDisableForUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	userID, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.MFAService.Disable(ctx, caller.Username, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, inventsdk.MessageResponse{
		Message: "2FA disabled for user " + strconv.FormatInt(userID, 10),
	})
}
