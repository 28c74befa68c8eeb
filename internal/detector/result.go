package detector

import "sync"

// ResultStore holds the most recent detection result. It is the single
// shared-mutable point between the detection completion path and the render
// loop: Publish runs on the landmarker's reader goroutine while Current is
// called once per displayed frame.
//
// At most one result is held, and it is always the one with the highest
// timestamp seen so far. Out-of-order completions are discarded, so a slow
// inference that finishes after a newer one never rolls the display back.
type ResultStore struct {
	mu     sync.RWMutex
	latest Result
	valid  bool
}

// NewResultStore returns an empty store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Publish adopts r as the current result iff its timestamp is newer than the
// stored one (or the store is empty). Returns whether r was adopted. A stale
// result is a routine race, not an error.
func (s *ResultStore) Publish(r Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid && r.TimestampMs <= s.latest.TimestampMs {
		return false
	}

	s.latest = r
	s.valid = true
	return true
}

// Current returns the latest adopted result and true, or a zero Result and
// false if nothing has been published yet. The returned value is a complete
// snapshot; callers must not mutate its slices.
func (s *ResultStore) Current() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.valid
}

// HandCount reports the number of hands in the latest result, or zero if the
// store is empty.
func (s *ResultStore) HandCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.valid {
		return 0
	}
	return len(s.latest.Hands)
}
