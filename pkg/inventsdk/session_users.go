package inventsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every account, stripped of credential material. Requires
// a management role.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Users(), nil
	}
	var out []User
	if err := s.do(ctx, http.MethodGet, "/api/users", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser registers an account. With an empty Password the server
// generates an initial one.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if ds := s.demoData(); ds != nil {
		return ds.CreateUser(req), nil
	}
	var out User
	if err := s.do(ctx, http.MethodPost, "/api/users", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser replaces an account's editable fields. A non-empty Password
// resets the credential.
func (s *Session) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	if ds := s.demoData(); ds != nil {
		return ds.UpdateUser(id, req)
	}
	var out User
	path := fmt.Sprintf("/api/users/%d", id)
	if err := s.do(ctx, http.MethodPut, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes an account. Deleting the calling account is rejected.
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	if ds := s.demoData(); ds != nil {
		return ds.DeleteUser(id)
	}
	path := fmt.Sprintf("/api/users/%d", id)
	return s.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// UpdateProfile changes the caller's own display name and avatar, and keeps
// the in-memory session record in sync.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	if ds := s.demoData(); ds != nil {
		upd := UpdateUserRequest{
			RealName:  req.RealName,
			Email:     s.user.Email,
			Role:      s.user.Role,
			AvatarURL: s.user.AvatarURL,
		}
		if req.AvatarURL != "" {
			avatar := req.AvatarURL
			upd.AvatarURL = &avatar
		}
		out, err := ds.UpdateUser(s.user.ID, upd)
		if err != nil {
			return nil, err
		}
		s.user = out
		return out, nil
	}
	var out User
	if err := s.do(ctx, http.MethodPut, "/api/profile", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	s.user = &out
	return &out, nil
}

// Disable2FAForUser removes another account's second factor. Admin only.
func (s *Session) Disable2FAForUser(ctx context.Context, id int64) error {
	if s.demoData() != nil {
		return nil
	}
	var out MessageResponse
	path := fmt.Sprintf("/api/users/%d/disable-2fa", id)
	return s.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK)
}
