package inventsdk

import "sync"

// Client storage keys. The durable entries survive restarts; the verified
// marker lives in session-scoped storage and disappears with the browser
// session, forcing second-factor re-verification on every new session.
const (
	KeyCurrentUser = "currentUser"  // durable: serialized stripped user record
	KeyDemoMode    = "demo_mode"    // durable: "true"/"false"
	KeyTheme       = "theme"        // durable: UI theme preference
	Key2FAVerified = "2fa_verified" // session-scoped: "true" once verified
)

// Storage is a string key-value store backing the client-side state. Durable
// and session-scoped state use two separate instances with independent
// lifetimes.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemoryStorage is an in-memory Storage, safe for concurrent use. It backs
// tests and headless deployments; embedders with real durable storage
// provide their own implementation.
type MemoryStorage struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
