package http

import (
	"net/http"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
)

// UsersHandler handles account management endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /api/users
//
//	@Summary	List user accounts
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		inventsdk.User
//	@Failure	403	{object}	inventsdk.ErrorResponse	"Manager role required"
//	@Router		/api/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.List(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]inventsdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, *toSDKUser(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /api/users
//
//	@Summary		Create a user account
//	@Description	When password is omitted the server generates an initial one.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.CreateUserRequest	true	"New account"
//	@Success		201		{object}	inventsdk.User
//	@Failure		409		{object}	inventsdk.ErrorResponse	"Username already taken"
//	@Router			/api/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req inventsdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Username == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username is required")
		return
	}

	pub, err := h.UserService.Create(ctx, caller.Username, domain.User{
		Username: req.Username,
		RealName: req.RealName,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
	}, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toSDKUser(pub))
}

// HandleUpdate handles PUT /api/users/{id}
//
//	@Summary		Update a user account
//	@Description	A non-empty password in the body replaces the stored hash.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		inventsdk.UpdateUserRequest	true	"Changed fields"
//	@Success		200		{object}	inventsdk.User
//	@Failure		404		{object}	inventsdk.ErrorResponse	"Unknown user"
//	@Router			/api/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req inventsdk.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pub, err := h.UserService.Update(ctx, caller.Username, domain.User{
		ID:        id,
		RealName:  req.RealName,
		Email:     req.Email,
		Role:      domain.Role(req.Role),
		AvatarURL: req.AvatarURL,
	}, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKUser(pub))
}

// HandleDelete handles DELETE /api/users/{id}
//
//	@Summary	Delete a user account
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	inventsdk.ErrorResponse	"Unknown user"
//	@Router		/api/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id, err := pathID(r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if id == caller.ID {
		httpx.WriteError(w, http.StatusBadRequest, "cannot delete your own account")
		return
	}

	if err := h.UserService.Delete(ctx, caller.Username, id); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateProfile handles PUT /api/profile
//
//	@Summary		Update the caller's own profile
//	@Description	Self-service subset: display name and avatar only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inventsdk.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	inventsdk.User
//	@Router			/api/profile [put].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := requestUser(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	var req inventsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pub, err := h.UserService.UpdateProfile(ctx, caller.ID, req.RealName, req.AvatarURL)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKUser(pub))
}
