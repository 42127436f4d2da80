package inventsdk

import (
	"context"
	"net/http"
)

// Session is an authenticated client. The bearer token lives only in memory;
// restoring a persisted login goes through SDKClient.NewSession with a fresh
// token from a new login flow.
type Session struct {
	client *SDKClient
	user   *User
	token  string
}

// User returns the account this session was established for.
func (s *Session) User() *User {
	return s.user
}

// Token returns the raw bearer token.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) do(ctx context.Context, method, path string, payload, target any, expectedStatus int) error {
	return s.client.doJSON(ctx, method, path, payload, target, s.token, expectedStatus)
}

// demoData mirrors SDKClient.demoData for session operations.
func (s *Session) demoData() *demoDataset {
	return s.client.demoData()
}

// Disable2FA removes the caller's own active second factor.
func (s *Session) Disable2FA(ctx context.Context) error {
	if s.demoData() == nil {
		var out MessageResponse
		if err := s.do(ctx, http.MethodPost, "/api/disable-2fa", nil, &out, http.StatusOK); err != nil {
			return err
		}
	}
	if s.user != nil {
		s.user.MFAEnabled = false
	}
	return nil
}
