// Package inventsdk is the Go client for the inventory service. It wraps the
// REST API, holds the client-side session and view state, and provides the
// demo-mode fixture dataset for offline evaluation.
package inventsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every API call. A hung backend surfaces as
// ErrServiceUnavailable instead of blocking the caller forever.
const DefaultTimeout = 10 * time.Second

// SDKClient is a client for the inventory service. It provides the
// unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	demo *DemoMode
}

// NewSDKClient creates an inventory service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// SetDemoMode attaches the demo switch. While it is active, data operations
// on this client and its sessions answer from the fixture dataset instead of
// the network.
func (c *SDKClient) SetDemoMode(d *DemoMode) {
	c.demo = d
}

// demoData returns the fixture dataset when demo mode is attached and
// active, nil otherwise.
func (c *SDKClient) demoData() *demoDataset {
	if c.demo != nil && c.demo.Active() {
		return c.demo.dataset()
	}
	return nil
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// doJSON performs a request with an optional JSON body and decodes the JSON
// response into target. Transport failures map to ErrServiceUnavailable;
// error responses map to the sentinel taxonomy.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	payload, target any,
	token string,
	expectedStatus int,
) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// No response at all: connectivity, DNS, timeout.
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, raw)
	}
	if target != nil {
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Login validates a username/password pair. The response is either a
// completed session or a pending second-factor flag; inspect Requires2FA and
// Requires2FASetup before using User/Token.
func (c *SDKClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/login",
		LoginRequest{Username: username, Password: password}, &out, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Verify2FA checks a TOTP code for a login held open on its second factor
// and returns the completed session.
func (c *SDKClient) Verify2FA(ctx context.Context, userID int64, code string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/verify-2fa",
		Verify2FARequest{UserID: userID, Code: code}, &out, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Generate2FA creates a pending TOTP secret for the user and returns it with
// its provisioning URI.
func (c *SDKClient) Generate2FA(ctx context.Context, userID int64) (*Generate2FAResponse, error) {
	var out Generate2FAResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/generate-2fa",
		Generate2FARequest{UserID: userID}, &out, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Enable2FA verifies a code against the pending secret, activates the factor
// and returns the completed session.
func (c *SDKClient) Enable2FA(ctx context.Context, userID int64, code string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/enable-2fa",
		Enable2FARequest{UserID: userID, Code: code}, &out, "", http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSettings fetches the public application settings. Open endpoint: the
// login view needs the company name and feature flags before any session
// exists. The full row, SMTP credentials included, is only available through
// Session.GetSettings.
func (c *SDKClient) GetSettings(ctx context.Context) (*PublicSettings, error) {
	if ds := c.demoData(); ds != nil {
		s := ds.Settings()
		return &PublicSettings{
			CompanyName:  s.CompanyName,
			SSOEnabled:   s.SSOEnabled,
			TwoFAEnabled: s.TwoFAEnabled,
			Require2FA:   s.Require2FA,
		}, nil
	}
	var out PublicSettings
	if err := c.doJSON(ctx, http.MethodGet, "/api/settings", nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status reports backend health. Used by the periodic status poll and by
// demo-mode deactivation to decide whether the live backend is reachable.
func (c *SDKClient) Status(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/status", nil, &out, "", http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DefaultStatusInterval is the period WatchStatus polls the backend at when
// the caller does not pick one.
const DefaultStatusInterval = 30 * time.Second

// WatchStatus polls backend health and calls fn whenever reachability
// changes, until ctx is cancelled. The first poll always reports so the
// caller learns the initial state within one interval; the poll timer is
// released on cancellation.
func (c *SDKClient) WatchStatus(ctx context.Context, interval time.Duration, fn func(healthy bool)) {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		known := false
		var last bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, err := c.Status(ctx)
				healthy := err == nil
				if !known || healthy != last {
					known, last = true, healthy
					fn(healthy)
				}
			}
		}
	}()
}

// NewSession wraps an existing token in an authenticated session, e.g. when
// restoring a persisted login.
func (c *SDKClient) NewSession(user *User, token string) *Session {
	return &Session{client: c, user: user, token: token}
}
