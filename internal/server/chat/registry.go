package chat

import "sync"

// Registry maps tokens to members and enforces username uniqueness.
// Lookups take the shared lock; Register and Join take the exclusive one.
type Registry struct {
	mu        sync.RWMutex
	members   map[Token]Member
	usernames map[string]Token
}

func NewRegistry() *Registry {
	return &Registry{
		members:   make(map[Token]Member),
		usernames: make(map[string]Token),
	}
}

// Register stores m under a fresh token equal to the current member count
// plus one. The caller guarantees the username is not taken.
func (r *Registry) Register(m Member) Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(m)
}

func (r *Registry) register(m Member) Token {
	token := Token(len(r.members) + 1)
	r.members[token] = m
	r.usernames[m.Username] = token
	return token
}

// HasUsername reports whether username is registered. Matching is exact and
// case-sensitive.
func (r *Registry) HasUsername(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.usernames[username]
	return ok
}

func (r *Registry) ResolveUsername(token Token) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[token]
	return m.Username, ok
}

// Join checks and registers m in one critical section, so concurrent joins
// with the same username admit exactly one. It returns (0, false) when the
// username is taken.
func (r *Registry) Join(m Member) (Token, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.usernames[m.Username]; taken {
		return 0, false
	}
	return r.register(m), true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
