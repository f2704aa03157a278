package auth

import "sync"

// RevocationList is a process-lifetime set of raw token strings revoked by
// logout. Entries are never pruned: an expired token in the set costs a map
// slot until the process restarts, and a restart forgets all revocations.
// Both are accepted limits of the in-memory design.
type RevocationList struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewRevocationList creates an empty revocation list
func NewRevocationList() *RevocationList {
	return &RevocationList{
		tokens: make(map[string]struct{}),
	}
}

// Revoke adds token to the list. Idempotent.
func (r *RevocationList) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}
}

// IsRevoked reports whether token has been revoked
func (r *RevocationList) IsRevoked(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}

// Len returns the number of revoked tokens held
func (r *RevocationList) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
