package session

import (
	"context"
	"log"
	"sync"
	"time"
)

type entry struct {
	s        *Session
	lastSeen time.Time
}

// Store keeps sessions in memory and evicts the ones idle longer than ttl.
type Store struct {
	mu   sync.Mutex
	ttl  time.Duration
	deps Deps
	now  func() time.Time
	m    map[string]*entry
}

func NewStore(deps Deps, ttl time.Duration) *Store {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Store{ttl: ttl, deps: deps, now: now, m: make(map[string]*entry)}
}

// Open creates a session under id, replacing (and closing) any previous one.
func (st *Store) Open(id, user string, theme Theme, query string) *Session {
	s := New(id, NewAppContext(user, theme), st.deps, query)
	st.mu.Lock()
	old := st.m[id]
	st.m[id] = &entry{s: s, lastSeen: st.now()}
	st.mu.Unlock()
	if old != nil {
		old.s.Close()
	}
	return s
}

// Get returns the session and marks it as used.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.lastSeen = st.now()
	return e.s, nil
}

// Close removes a session and cancels its work.
func (st *Store) Close(id string) {
	st.mu.Lock()
	e, ok := st.m[id]
	delete(st.m, id)
	st.mu.Unlock()
	if ok {
		e.s.Close()
	}
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.m)
}

// Evict closes sessions idle for longer than the ttl and returns how many
// were removed.
func (st *Store) Evict() int {
	cutoff := st.now().Add(-st.ttl)
	var stale []*Session
	st.mu.Lock()
	for id, e := range st.m {
		if e.lastSeen.Before(cutoff) {
			stale = append(stale, e.s)
			delete(st.m, id)
		}
	}
	st.mu.Unlock()
	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

// Run evicts on every interval tick until ctx is done, then closes all
// remaining sessions.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			st.closeAll()
			return
		case <-ticker.C:
			if n := st.Evict(); n > 0 {
				log.Printf("session store: evicted %d idle sessions", n)
			}
		}
	}
}

func (st *Store) closeAll() {
	st.mu.Lock()
	all := st.m
	st.m = make(map[string]*entry)
	st.mu.Unlock()
	for _, e := range all {
		e.s.Close()
	}
}
