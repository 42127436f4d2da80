// Package http wires the inventory services to their REST endpoints.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/mrrinformatica/inventario/internal/inventario/domain"
	"github.com/mrrinformatica/inventario/internal/inventario/service"
	"github.com/mrrinformatica/inventario/internal/inventario/store"
	"github.com/mrrinformatica/inventario/pkg/httpx"
	"github.com/mrrinformatica/inventario/pkg/inventsdk"
	"github.com/mrrinformatica/inventario/pkg/jwtx"
	"github.com/mrrinformatica/inventario/pkg/slogx"
)

// Role strings used in route guards.
const (
	roleAdmin       = string(domain.RoleAdmin)
	roleUserManager = string(domain.RoleUserManager)
)

// requestUser reconstructs the caller's stripped record from the verified
// token claims, avoiding a DB hit on every request.
func requestUser(ctx context.Context) (domain.PublicUser, bool) {
	claims, ok := ctx.Value(httpx.CtxKeyClaims).(*jwtx.Claims)
	if !ok || claims == nil {
		return domain.PublicUser{}, false
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.PublicUser{}, false
	}
	return domain.PublicUser{
		ID:       id,
		Username: claims.Username,
		RealName: claims.Name,
		Role:     domain.Role(claims.Role),
	}, true
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// toSDKUser converts the domain record into the wire type.
func toSDKUser(u domain.PublicUser) *inventsdk.User {
	return &inventsdk.User{
		ID:          u.ID,
		Username:    u.Username,
		RealName:    u.RealName,
		Email:       u.Email,
		Role:        string(u.Role),
		MFAEnabled:  u.MFAEnabled,
		LastLogin:   u.LastLogin,
		AvatarURL:   u.AvatarURL,
		SSOProvider: u.SSOProvider,
	}
}

// writeServiceError maps service and store errors onto HTTP statuses. Unmapped
// errors are logged and reported as an opaque 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidTOTPCode):
		httpx.WriteError(w, http.StatusBadRequest, "invalid code")
	case errors.Is(err, service.ErrMFANotEnrolled):
		httpx.WriteError(w, http.StatusBadRequest, "2FA not enrolled")
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		httpx.WriteError(w, http.StatusConflict, "2FA already enabled")
	case errors.Is(err, service.ErrUserExists), errors.Is(err, store.ErrAlreadyExists):
		httpx.WriteError(w, http.StatusConflict, "username already taken")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrUnavailable):
		slogx.FromContext(ctx).Error("backing store unavailable", "err", err)
		httpx.WriteError(w, http.StatusServiceUnavailable, "service unavailable")
	case errors.Is(err, service.ErrUnknownApprovalItem):
		httpx.WriteError(w, http.StatusBadRequest, "unknown item type")
	default:
		slogx.FromContext(ctx).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
