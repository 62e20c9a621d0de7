package utils

import "sync"

// ActionGuard enforces at most one in-flight request per key, where a key
// names a caller plus an action class (e.g. "generate:u123"). TryAcquire
// reports false while another request holds the key; a rejected caller is
// expected to fail fast rather than queue.
type ActionGuard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func NewActionGuard() *ActionGuard {
	return &ActionGuard{inFlight: make(map[string]bool)}
}

func (g *ActionGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inFlight[key] {
		return false
	}
	g.inFlight[key] = true
	return true
}

func (g *ActionGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
