package inventsdk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestDemo() (*DemoMode, *MemoryStorage, *MemoryStorage) {
	local := NewMemoryStorage()
	session := NewMemoryStorage()
	return NewDemoMode(local, session), local, session
}

func TestDemoModeFlag(t *testing.T) {
	t.Parallel()

	demo, local, _ := newTestDemo()
	require.False(t, demo.Active())

	demo.Activate()
	require.True(t, demo.Active())
	v, ok := local.Get(KeyDemoMode)
	require.True(t, ok)
	require.Equal(t, "true", v)

	demo.Deactivate()
	require.False(t, demo.Active())
	v, ok = local.Get(KeyDemoMode)
	require.True(t, ok)
	require.Equal(t, "false", v)
}

func TestDemoDeactivateTearsDownSession(t *testing.T) {
	t.Parallel()

	demo, local, session := newTestDemo()
	demo.Activate()
	local.Set(KeyCurrentUser, `{"id":1,"username":"admin"}`)
	session.Set(Key2FAVerified, "true")
	local.Set(KeyTheme, "dark")

	reloads := 0
	demo.SetReloadHook(func() { reloads++ })
	demo.Deactivate()

	_, ok := local.Get(KeyCurrentUser)
	require.False(t, ok)
	_, ok = session.Get(Key2FAVerified)
	require.False(t, ok)
	require.Equal(t, 1, reloads)

	// The theme preference is not session state and survives.
	theme, ok := local.Get(KeyTheme)
	require.True(t, ok)
	require.Equal(t, "dark", theme)
}

func TestDemoWatchPropagatesToggle(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan bool, 4)
	demo.Watch(ctx, 10*time.Millisecond, func(active bool) {
		changes <- active
	})

	demo.Activate()
	select {
	case active := <-changes:
		require.True(t, active)
	case <-time.After(time.Second):
		t.Fatal("activation not observed by watcher")
	}

	demo.Deactivate()
	select {
	case active := <-changes:
		require.False(t, active)
	case <-time.After(time.Second):
		t.Fatal("deactivation not observed by watcher")
	}
}

func TestDemoWatchClampsInterval(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan bool, 1)
	// An hour-long interval would miss the bounded-latency contract; the
	// watcher clamps it to the default half second.
	demo.Watch(ctx, time.Hour, func(active bool) {
		changes <- active
	})

	demo.Activate()
	select {
	case <-changes:
	case <-time.After(2 * DefaultWatchInterval):
		t.Fatal("toggle not observed within the clamped interval")
	}
}

func TestDemoWatchStopsOnCancel(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()
	ctx, cancel := context.WithCancel(context.Background())

	changes := make(chan bool, 1)
	demo.Watch(ctx, 10*time.Millisecond, func(active bool) {
		changes <- active
	})
	cancel()

	// Give the watcher a moment to wind down, then toggle.
	time.Sleep(50 * time.Millisecond)
	demo.Activate()

	select {
	case <-changes:
		t.Fatal("cancelled watcher still reported a change")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDemoDatasetResetsPerActivation(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()
	demo.Activate()

	ds := demo.dataset()
	require.Len(t, ds.Equipment(), 5)
	require.NoError(t, ds.DeleteEquipment(101))
	require.Len(t, ds.Equipment(), 4)

	// Fixture edits do not leak into the next demo run.
	demo.Deactivate()
	demo.Activate()
	require.Len(t, demo.dataset().Equipment(), 5)
}

func TestDemoIdentity(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()

	u, ok := demo.Identity(DemoUsername)
	require.True(t, ok)
	require.Equal(t, "Marcelo Reis", u.RealName)
	require.Equal(t, RoleAdmin, u.Role)

	_, ok = demo.Identity("ana.tech")
	require.False(t, ok)
}

func TestDemoFixtureShapes(t *testing.T) {
	t.Parallel()

	demo, _, _ := newTestDemo()
	demo.Activate()
	ds := demo.dataset()

	require.Len(t, ds.Users(), 3)
	require.Len(t, ds.Licenses(), 4)
	require.Len(t, ds.Tickets(), 2)
	require.Len(t, ds.Audit(0), 3)

	totals := ds.Totals()
	require.Equal(t, 10, totals["Microsoft 365 Business Premium"])
	require.Equal(t, 50, totals["Windows 11 Pro"])

	tickets := ds.Tickets()
	require.Equal(t, TicketInProgress, tickets[0].Status)
	require.Equal(t, PriorityHigh, tickets[0].Priority)
}
