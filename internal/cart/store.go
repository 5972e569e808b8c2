// Package cart keeps per-session shopping carts in process memory, keyed by
// an opaque session identifier. Cart state is never persisted; the session
// cookie carries only the key. Mutations on one session are serialized by a
// per-session mutex so a concurrent double add cannot lose the quantity
// increment.
package cart

import (
	"sync"
	"time"
)

// Entry is one (product, quantity) pair in a session cart.
type Entry struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"quantity"`
}

type state struct {
	mu      sync.Mutex
	entries []Entry
	touched time.Time
}

// Store holds all live session carts.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*state
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*state)}
}

func (s *Store) get(sid string, create bool) *state {
	s.mu.RLock()
	st := s.carts[sid]
	s.mu.RUnlock()
	if st != nil || !create {
		return st
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st = s.carts[sid]; st == nil {
		st = &state{}
		s.carts[sid] = st
	}
	return st
}

// Add increments the quantity for productID, appending a new entry with
// quantity 1 on first add. It returns the number of distinct entries.
func (s *Store) Add(sid string, productID int64) int {
	st := s.get(sid, true)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.touched = time.Now()
	for i := range st.entries {
		if st.entries[i].ProductID == productID {
			st.entries[i].Quantity++
			return len(st.entries)
		}
	}
	st.entries = append(st.entries, Entry{ProductID: productID, Quantity: 1})
	return len(st.entries)
}

// Remove deletes the entry for productID. Removing an absent product is a
// no-op. It returns the number of distinct entries.
func (s *Store) Remove(sid string, productID int64) int {
	st := s.get(sid, false)
	if st == nil {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.touched = time.Now()
	for i := range st.entries {
		if st.entries[i].ProductID == productID {
			st.entries = append(st.entries[:i], st.entries[i+1:]...)
			break
		}
	}
	return len(st.entries)
}

// Exists reports whether a cart has ever been created for the session.
func (s *Store) Exists(sid string) bool {
	return s.get(sid, false) != nil
}

// Entries returns a snapshot of the session's cart.
func (s *Store) Entries(sid string) []Entry {
	st := s.get(sid, false)
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Entry, len(st.entries))
	copy(out, st.entries)
	return out
}

// Clear empties the session's cart, keeping the session itself alive.
func (s *Store) Clear(sid string) {
	st := s.get(sid, false)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.touched = time.Now()
	st.entries = nil
}

// Prune drops carts idle for longer than maxIdle and returns how many were
// removed. Run periodically by the application scheduler.
func (s *Store) Prune(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for sid, st := range s.carts {
		st.mu.Lock()
		idle := st.touched.Before(cutoff)
		st.mu.Unlock()
		if idle {
			delete(s.carts, sid)
			n++
		}
	}
	return n
}
