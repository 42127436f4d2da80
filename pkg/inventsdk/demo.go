package inventsdk

import (
	"context"
	"sync"
	"time"
)

// DemoUsername is the reserved identity demo mode logs in as. Any password
// is accepted for it while the mode is active.
const DemoUsername = "admin"

// DefaultWatchInterval is the demo-flag polling period. Watch clamps longer
// intervals down to this so a toggle made elsewhere is observed within half
// a second.
const DefaultWatchInterval = 500 * time.Millisecond

// DemoMode is the switch that redirects data access and login to an
// in-memory fixture dataset. The flag itself lives in durable client storage
// so it is shared across tabs and components; consumers poll it through
// Watch because that storage has no change notifications.
type DemoMode struct {
	local   Storage
	session Storage

	mu     sync.Mutex
	data   *demoDataset
	reload func()
}

// NewDemoMode wires the switch to the durable and session-scoped stores the
// rest of the client state lives in.
func NewDemoMode(local, session Storage) *DemoMode {
	return &DemoMode{local: local, session: session}
}

// Active reports whether the demo flag is currently set.
func (d *DemoMode) Active() bool {
	v, ok := d.local.Get(KeyDemoMode)
	return ok && v == "true"
}

// Activate sets the flag. The fixture dataset starts fresh on every
// activation so one demo run cannot leak edits into the next.
func (d *DemoMode) Activate() {
	d.mu.Lock()
	d.data = nil
	d.mu.Unlock()
	d.local.Set(KeyDemoMode, "true")
}

// Deactivate clears the flag and tears the session down completely: the
// persisted login record and the verified marker go with it, and the reload
// hook runs so no fixture-derived state survives into a real-backend
// session.
func (d *DemoMode) Deactivate() {
	d.local.Set(KeyDemoMode, "false")
	d.local.Delete(KeyCurrentUser)
	d.session.Delete(Key2FAVerified)

	d.mu.Lock()
	d.data = nil
	reload := d.reload
	d.mu.Unlock()

	if reload != nil {
		reload()
	}
}

// SetReloadHook registers the full-reload callback Deactivate invokes. In a
// browser-like host this reloads the application; tests observe teardown
// through it.
func (d *DemoMode) SetReloadHook(fn func()) {
	d.mu.Lock()
	d.reload = fn
	d.mu.Unlock()
}

// Watch polls the flag and calls fn with the new value whenever it changes,
// until ctx is cancelled. Intervals above DefaultWatchInterval are clamped
// so propagation stays within the half-second bound; the poll timer is
// released on cancellation.
func (d *DemoMode) Watch(ctx context.Context, interval time.Duration, fn func(active bool)) {
	if interval <= 0 || interval > DefaultWatchInterval {
		interval = DefaultWatchInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := d.Active()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if cur := d.Active(); cur != last {
					last = cur
					fn(cur)
				}
			}
		}
	}()
}

// dataset returns the live fixture set, creating it on first use after an
// activation.
func (d *DemoMode) dataset() *demoDataset {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.data == nil {
		d.data = newDemoDataset()
	}
	return d.data
}

// Identity resolves a login attempt against the fixture accounts. Only the
// reserved demo username is accepted; the password is ignored.
func (d *DemoMode) Identity(username string) (*User, bool) {
	if username != DemoUsername {
		return nil, false
	}
	for _, u := range demoUsers() {
		if u.Username == username {
			out := u
			return &out, true
		}
	}
	return nil, false
}
