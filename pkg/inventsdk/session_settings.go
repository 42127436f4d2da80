package inventsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetSettings returns the full settings row, SSO and SMTP configuration
// included. Admin only; the unauthenticated read lives on the client.
func (s *Session) GetSettings(ctx context.Context) (*Settings, error) {
	if ds := s.demoData(); ds != nil {
		settings := ds.Settings()
		return &settings, nil
	}
	var out Settings
	if err := s.do(ctx, http.MethodGet, "/api/settings/full", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveSettings replaces the application settings. Admin only.
func (s *Session) SaveSettings(ctx context.Context, settings Settings) (*Settings, error) {
	if ds := s.demoData(); ds != nil {
		saved := ds.SaveSettings(settings)
		return &saved, nil
	}
	var out Settings
	if err := s.do(ctx, http.MethodPost, "/api/settings", settings, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Audit returns the newest audit entries, capped at limit. A limit of zero
// returns the server default page.
func (s *Session) Audit(ctx context.Context, limit int) ([]AuditEntry, error) {
	if ds := s.demoData(); ds != nil {
		return ds.Audit(limit), nil
	}
	path := "/api/audit"
	if limit > 0 {
		path += "?" + url.Values{"limit": {strconv.Itoa(limit)}}.Encode()
	}
	var out []AuditEntry
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
