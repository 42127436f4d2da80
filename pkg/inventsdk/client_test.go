package inventsdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientErrorTaxonomy(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		case "/api/verify-2fa":
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid code"})
		case "/api/generate-2fa":
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "2FA is already enabled"})
		case "/api/users/99/disable-2fa":
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "user not found"})
		case "/api/status":
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database unreachable"})
		default:
			writeJSON(w, http.StatusTeapot, ErrorResponse{Error: "short and stout"})
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	ctx := context.Background()

	_, err := client.Login(ctx, "admin", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = client.Verify2FA(ctx, 1, "000000")
	require.ErrorIs(t, err, ErrInvalidCode)

	_, err = client.Generate2FA(ctx, 1)
	require.ErrorIs(t, err, ErrAlreadyEnabled)

	sess := client.NewSession(&User{ID: 1}, "token")
	err = sess.Disable2FAForUser(ctx, 99)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = client.Status(ctx)
	require.ErrorIs(t, err, ErrServiceUnavailable)

	// Unmapped statuses surface as APIError with the server message.
	_, err = sess.ListEquipment(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTeapot, apiErr.StatusCode)
	require.Equal(t, "short and stout", apiErr.Message)
}

func TestClientTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewSDKClient(srv.URL)
	_, err := client.Login(context.Background(), "admin", "correct-horse")

	// Connectivity failures are distinguishable from credential failures.
	require.ErrorIs(t, err, ErrServiceUnavailable)
	require.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestSessionSendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, []Equipment{})
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	sess := client.NewSession(&User{ID: 1, Username: "admin"}, "token-abc")

	_, err := sess.ListEquipment(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer token-abc", gotAuth)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client := NewSDKClient("https://inventario.example.com/")
	require.Equal(t, "https://inventario.example.com", client.BaseURL)
	require.Equal(t, "https://inventario.example.com/api/login", client.url("/api/login"))
}

func TestWatchStatusReportsTransitions(t *testing.T) {
	t.Parallel()

	var healthy atomic.Bool
	healthy.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan bool, 8)
	client.WatchStatus(ctx, 10*time.Millisecond, func(up bool) { updates <- up })

	// The first poll reports the initial state.
	select {
	case up := <-updates:
		require.True(t, up)
	case <-time.After(time.Second):
		t.Fatal("initial status never reported")
	}

	// A backend outage is observed as a single transition.
	healthy.Store(false)
	select {
	case up := <-updates:
		require.False(t, up)
	case <-time.After(time.Second):
		t.Fatal("outage never reported")
	}

	// Recovery flips it back.
	healthy.Store(true)
	select {
	case up := <-updates:
		require.True(t, up)
	case <-time.After(time.Second):
		t.Fatal("recovery never reported")
	}
}

func TestWatchStatusStopsOnCancel(t *testing.T) {
	t.Parallel()

	var polls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	}))
	defer srv.Close()

	client := NewSDKClient(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	client.WatchStatus(ctx, 5*time.Millisecond, func(bool) {})

	require.Eventually(t, func() bool { return polls.Load() > 0 }, time.Second, 5*time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	settled := polls.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, settled, polls.Load(), "polling must stop after cancellation")
}
