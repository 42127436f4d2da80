package inventsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	client  *SDKClient
	demo    *DemoMode
	local   *MemoryStorage
	session *MemoryStorage
	holder  *Holder
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	local := NewMemoryStorage()
	session := NewMemoryStorage()
	demo := NewDemoMode(local, session)
	client.SetDemoMode(demo)

	return &testEnv{
		client:  client,
		demo:    demo,
		local:   local,
		session: session,
		holder:  NewHolder(client, demo, local, session),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// authBackend fakes the three login outcomes: an immediate session, a
// second-factor hold, and a forced enrollment.
func authBackend(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		switch {
		case req.Username == "admin" && req.Password == "correct-horse":
			writeJSON(w, http.StatusOK, LoginResponse{
				User:  &User{ID: 1, Username: "admin", RealName: "Marcelo Reis", Role: RoleAdmin},
				Token: "token-1",
			})
		case req.Username == "secure" && req.Password == "correct-horse":
			writeJSON(w, http.StatusOK, LoginResponse{Requires2FA: true, UserID: 7})
		case req.Username == "rookie" && req.Password == "correct-horse":
			writeJSON(w, http.StatusOK, LoginResponse{Requires2FASetup: true, UserID: 9})
		default:
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		}
	})
	mux.HandleFunc("POST /api/verify-2fa", func(w http.ResponseWriter, r *http.Request) {
		var req Verify2FARequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.UserID == 7 && req.Code == "123456" {
			writeJSON(w, http.StatusOK, LoginResponse{
				User:  &User{ID: 7, Username: "secure", RealName: "Ana Souza", Role: RoleUser, MFAEnabled: true},
				Token: "token-7",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid code"})
	})
	mux.HandleFunc("POST /api/generate-2fa", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Generate2FAResponse{
			Secret:          "JBSWY3DPEHPK3PXP",
			ProvisioningURI: "otpauth://totp/inventario:rookie?secret=JBSWY3DPEHPK3PXP",
		})
	})
	mux.HandleFunc("POST /api/enable-2fa", func(w http.ResponseWriter, r *http.Request) {
		var req Enable2FARequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.UserID == 9 && req.Code == "654321" {
			writeJSON(w, http.StatusOK, LoginResponse{
				User:  &User{ID: 9, Username: "rookie", RealName: "João Silva", Role: RoleUser, MFAEnabled: true},
				Token: "token-9",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid code"})
	})
	return mux
}

func TestHolderLoginImmediateSession(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, authBackend(t))
	ctx := context.Background()

	view, err := env.holder.Login(ctx, "admin", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, ViewShell, view)

	u := env.holder.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "admin", u.Username)

	sess := env.holder.ActiveSession()
	require.NotNil(t, sess)
	require.Equal(t, "token-1", sess.Token())

	// A reload lands straight back in the shell: no second factor on the
	// account, no marker needed.
	require.Equal(t, ViewShell, env.holder.Resolve())
}

func TestHolderSecondFactorFlow(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, authBackend(t))
	ctx := context.Background()

	view, err := env.holder.Login(ctx, "secure", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, ViewVerify2FA, view)

	// The hold is in-memory only: nothing persisted, no session yet.
	require.Nil(t, env.holder.CurrentUser())
	require.Nil(t, env.holder.ActiveSession())
	require.Equal(t, ViewVerify2FA, env.holder.Resolve())

	// A wrong code keeps the prompt and allows immediate retry.
	view, err = env.holder.VerifyCode(ctx, "000000")
	require.ErrorIs(t, err, ErrInvalidCode)
	require.Equal(t, ViewVerify2FA, view)

	view, err = env.holder.VerifyCode(ctx, "123456")
	require.NoError(t, err)
	require.Equal(t, ViewShell, view)

	marker, ok := env.session.Get(Key2FAVerified)
	require.True(t, ok)
	require.Equal(t, "true", marker)

	u := env.holder.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "secure", u.Username)
	require.True(t, u.MFAEnabled)
	require.Equal(t, ViewShell, env.holder.Resolve())
}

func TestHolderInvalidCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, authBackend(t))

	view, err := env.holder.Login(context.Background(), "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, ViewLogin, view)

	// No state change of any kind.
	require.Nil(t, env.holder.CurrentUser())
	require.Nil(t, env.holder.ActiveSession())
	require.Equal(t, ViewLogin, env.holder.Resolve())
}

func TestHolderEmptyCredentialsNeverReachBackend(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend contacted for empty credentials: %s %s", r.Method, r.URL.Path)
	}))

	for _, c := range []struct{ username, password string }{
		{"", "correct-horse"},
		{"admin", ""},
		{"", ""},
	} {
		view, err := env.holder.Login(context.Background(), c.username, c.password)
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.Equal(t, ViewLogin, view)
	}
}

func TestHolderForcedEnrollment(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, authBackend(t))
	ctx := context.Background()

	view, err := env.holder.Login(ctx, "rookie", "correct-horse")
	require.NoError(t, err)
	require.Equal(t, ViewSetup2FA, view)
	require.Equal(t, ViewSetup2FA, env.holder.Resolve())

	gen, err := env.holder.BeginSetup(ctx)
	require.NoError(t, err)
	require.Equal(t, "JBSWY3DPEHPK3PXP", gen.Secret)
	require.Contains(t, gen.ProvisioningURI, "otpauth://totp/")

	// Wrong confirmation code keeps the enrollment retryable.
	view, err = env.holder.CompleteSetup(ctx, "111111")
	require.ErrorIs(t, err, ErrInvalidCode)
	require.Equal(t, ViewSetup2FA, view)
	require.Equal(t, ViewSetup2FA, env.holder.Resolve())

	view, err = env.holder.CompleteSetup(ctx, "654321")
	require.NoError(t, err)
	require.Equal(t, ViewShell, view)

	u := env.holder.CurrentUser()
	require.NotNil(t, u)
	require.True(t, u.MFAEnabled)
	_, ok := env.session.Get(Key2FAVerified)
	require.True(t, ok)
}

func TestHolderResolveOrder(t *testing.T) {
	t.Parallel()

	persist := func(t *testing.T, s Storage, u User) {
		t.Helper()
		raw, err := json.Marshal(u)
		require.NoError(t, err)
		s.Set(KeyCurrentUser, string(raw))
	}

	t.Run("empty state shows login", func(t *testing.T) {
		env := newTestEnv(t, authBackend(t))
		require.Equal(t, ViewLogin, env.holder.Resolve())
	})

	t.Run("persisted login without second factor restores shell", func(t *testing.T) {
		env := newTestEnv(t, authBackend(t))
		persist(t, env.local, User{ID: 1, Username: "admin"})
		require.Equal(t, ViewShell, env.holder.Resolve())
	})

	t.Run("persisted login with verified marker restores shell", func(t *testing.T) {
		env := newTestEnv(t, authBackend(t))
		persist(t, env.local, User{ID: 7, Username: "secure", MFAEnabled: true})
		env.session.Set(Key2FAVerified, "true")
		require.Equal(t, ViewShell, env.holder.Resolve())
	})

	t.Run("persisted login without marker re-enters verification", func(t *testing.T) {
		env := newTestEnv(t, authBackend(t))
		persist(t, env.local, User{ID: 7, Username: "secure", MFAEnabled: true})
		require.Equal(t, ViewVerify2FA, env.holder.Resolve())

		// The re-entry hold feeds VerifyCode without another first factor.
		view, err := env.holder.VerifyCode(context.Background(), "123456")
		require.NoError(t, err)
		require.Equal(t, ViewShell, view)
	})

	t.Run("corrupt persisted record falls back to login", func(t *testing.T) {
		env := newTestEnv(t, authBackend(t))
		env.local.Set(KeyCurrentUser, "{not json")
		require.Equal(t, ViewLogin, env.holder.Resolve())
	})
}

func TestHolderLogout(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, authBackend(t))
	ctx := context.Background()

	_, err := env.holder.Login(ctx, "secure", "correct-horse")
	require.NoError(t, err)
	_, err = env.holder.VerifyCode(ctx, "123456")
	require.NoError(t, err)

	env.holder.Logout()

	require.Nil(t, env.holder.CurrentUser())
	require.Nil(t, env.holder.ActiveSession())
	_, ok := env.session.Get(Key2FAVerified)
	require.False(t, ok)
	require.Equal(t, ViewLogin, env.holder.Resolve())
}

func TestHolderDemoLogin(t *testing.T) {
	t.Parallel()

	// Any request reaching the backend while demo mode is active is a bug.
	env := newTestEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("backend contacted in demo mode: %s %s", r.Method, r.URL.Path)
	}))
	env.demo.Activate()
	ctx := context.Background()

	view, err := env.holder.Login(ctx, DemoUsername, "whatever")
	require.NoError(t, err)
	require.Equal(t, ViewShell, view)

	u := env.holder.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "Marcelo Reis", u.RealName)

	// Unknown identities still fail, demo mode or not.
	view, err = env.holder.Login(ctx, "stranger", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, ViewLogin, view)

	// Data operations answer from fixtures.
	sess := env.holder.ActiveSession()
	require.NotNil(t, sess)
	equipment, err := sess.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, equipment, 5)

	settings, err := env.client.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, "MRR INFORMATICA (Demo)", settings.CompanyName)

	// Deactivation tears the whole session down and fires the reload hook.
	reloaded := false
	env.demo.SetReloadHook(func() { reloaded = true })
	env.demo.Deactivate()

	require.True(t, reloaded)
	require.False(t, env.demo.Active())
	require.Nil(t, env.holder.CurrentUser())
	require.Equal(t, ViewLogin, env.holder.Resolve())
}
