// Package store provides the session-scoped key/value storage backing
// the wizard: the user-supplied API credential, the optional sheet
// endpoint, and the per-part audio cache. Values live for one process
// session; an explicit Clear is the only wipe, mirroring browser
// sessionStorage semantics.
package store

import "sync"

// Well-known keys.
const (
	KeyAPIKey   = "gemini_api_key"
	KeySheetURL = "sheet_url"
)

// KV is the injected session store abstraction. Implementations must be
// safe for concurrent use.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any previous value.
	Set(key, value string)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)

	// Clear removes every entry.
	Clear()
}

// Memory is the in-process KV used for a single interactive session.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory creates an empty session store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Get implements KV.
func (s *Memory) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

// Set implements KV.
func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

// Delete implements KV.
func (s *Memory) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// Clear implements KV.
func (s *Memory) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string]string)
}
