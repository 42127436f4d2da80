package inventsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// View is one of the four mutually exclusive screens the client presents.
type View int

const (
	ViewLogin View = iota
	ViewSetup2FA
	ViewVerify2FA
	ViewShell
)

func (v View) String() string {
	switch v {
	case ViewSetup2FA:
		return "setup-2fa"
	case ViewVerify2FA:
		return "verify-2fa"
	case ViewShell:
		return "shell"
	default:
		return "login"
	}
}

// Holder owns the client-side session state: the persisted login record, the
// session-scoped verified marker, the in-memory pending second-factor
// results and the bearer token of the active session. The token is never
// persisted; only the stripped user record is.
type Holder struct {
	Client *SDKClient
	Demo   *DemoMode

	local   Storage
	session Storage

	mu              sync.Mutex
	pendingSetupID  int64
	pendingVerifyID int64
	active          *Session
}

// NewHolder builds a holder over the two client stores. local is the durable
// store (persisted login record, demo flag, theme); session is cleared when
// the browser session ends (verified marker).
func NewHolder(client *SDKClient, demo *DemoMode, local, session Storage) *Holder {
	return &Holder{Client: client, Demo: demo, local: local, session: session}
}

// CurrentUser returns the persisted login record, or nil when none exists or
// it cannot be decoded.
func (h *Holder) CurrentUser() *User {
	raw, ok := h.local.Get(KeyCurrentUser)
	if !ok {
		return nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

// ActiveSession returns the authenticated session established by the current
// login flow, or nil when the session was restored from storage and no live
// token exists yet.
func (h *Holder) ActiveSession() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

func (h *Holder) verified() bool {
	v, ok := h.session.Get(Key2FAVerified)
	return ok && v == "true"
}

// Resolve decides which view to present. The steps are ordered and the first
// match wins:
//
//  1. a pending enrollment result routes to setup,
//  2. a pending verification result routes to the code prompt,
//  3. a persisted login with no second factor, or one already verified this
//     browser session, restores straight to the shell,
//  4. a persisted login with an unverified second factor re-enters the code
//     prompt (reload before the marker was set, or a fresh browser session),
//  5. otherwise the login form.
func (h *Holder) Resolve() View {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pendingSetupID != 0 {
		return ViewSetup2FA
	}
	if h.pendingVerifyID != 0 {
		return ViewVerify2FA
	}

	u := h.CurrentUser()
	if u == nil {
		return ViewLogin
	}
	if !u.MFAEnabled || h.verified() {
		return ViewShell
	}
	h.pendingVerifyID = u.ID
	return ViewVerify2FA
}

// Login runs the first factor and returns the next view. A completed login
// persists the user record and establishes the session; a second-factor
// result only parks the user id for the follow-up step. While demo mode is
// active the backend is never contacted: any password is accepted for the
// reserved demo identity and the fixture identity becomes the session.
func (h *Holder) Login(ctx context.Context, username, password string) (View, error) {
	if username == "" || password == "" {
		return ViewLogin, ErrInvalidCredentials
	}

	if h.Demo != nil && h.Demo.Active() {
		u, ok := h.Demo.Identity(username)
		if !ok {
			return ViewLogin, ErrInvalidCredentials
		}
		h.establish(u, "")
		return ViewShell, nil
	}

	resp, err := h.Client.Login(ctx, username, password)
	if err != nil {
		return ViewLogin, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	switch {
	case resp.Requires2FASetup:
		h.pendingSetupID = resp.UserID
		h.pendingVerifyID = 0
		return ViewSetup2FA, nil
	case resp.Requires2FA:
		h.pendingVerifyID = resp.UserID
		h.pendingSetupID = 0
		return ViewVerify2FA, nil
	case resp.User != nil:
		h.establishLocked(resp.User, resp.Token)
		return ViewShell, nil
	default:
		return ViewLogin, fmt.Errorf("unexpected login response")
	}
}

// VerifyCode completes a login held open on its second factor, whether the
// pending result came from Login or from the reload re-entry path.
func (h *Holder) VerifyCode(ctx context.Context, code string) (View, error) {
	h.mu.Lock()
	userID := h.pendingVerifyID
	h.mu.Unlock()
	if userID == 0 {
		return ViewLogin, fmt.Errorf("no verification pending")
	}

	resp, err := h.Client.Verify2FA(ctx, userID, code)
	if err != nil {
		// Wrong codes are retryable on the same screen.
		return ViewVerify2FA, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingVerifyID = 0
	h.session.Set(Key2FAVerified, "true")
	h.establishLocked(resp.User, resp.Token)
	return ViewShell, nil
}

// BeginSetup generates the enrollment secret for a login parked on forced
// 2FA setup and returns it with its provisioning URI.
func (h *Holder) BeginSetup(ctx context.Context) (*Generate2FAResponse, error) {
	h.mu.Lock()
	userID := h.pendingSetupID
	h.mu.Unlock()
	if userID == 0 {
		return nil, fmt.Errorf("no enrollment pending")
	}
	return h.Client.Generate2FA(ctx, userID)
}

// CompleteSetup confirms the enrollment code, activating the factor and
// establishing the session in one step.
func (h *Holder) CompleteSetup(ctx context.Context, code string) (View, error) {
	h.mu.Lock()
	userID := h.pendingSetupID
	h.mu.Unlock()
	if userID == 0 {
		return ViewLogin, fmt.Errorf("no enrollment pending")
	}

	resp, err := h.Client.Enable2FA(ctx, userID, code)
	if err != nil {
		return ViewSetup2FA, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingSetupID = 0
	h.session.Set(Key2FAVerified, "true")
	h.establishLocked(resp.User, resp.Token)
	return ViewShell, nil
}

// Logout clears the persisted login record, the verified marker and every
// in-memory pending result, returning the holder to the login view.
func (h *Holder) Logout() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pendingSetupID = 0
	h.pendingVerifyID = 0
	h.active = nil
	h.local.Delete(KeyCurrentUser)
	h.session.Delete(Key2FAVerified)
}

// UpdateCurrentUser replaces the persisted record after a profile edit so a
// reload restores the fresh data.
func (h *Holder) UpdateCurrentUser(u *User) {
	h.persist(u)
}

func (h *Holder) establish(u *User, token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.establishLocked(u, token)
}

// establishLocked persists the user and wires the active session. Demo
// logins carry no token; their session answers from fixtures, so the marker
// is set as well to keep reload resolution out of the verify screen.
func (h *Holder) establishLocked(u *User, token string) {
	h.pendingSetupID = 0
	h.pendingVerifyID = 0
	h.persist(u)
	if token == "" && u.MFAEnabled {
		h.session.Set(Key2FAVerified, "true")
	}
	h.active = h.Client.NewSession(u, token)
}

func (h *Holder) persist(u *User) {
	raw, err := json.Marshal(u)
	if err != nil {
		return
	}
	h.local.Set(KeyCurrentUser, string(raw))
}
