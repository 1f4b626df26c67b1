package service

import (
	"sync"
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
)

type storeEntry struct {
	run        *Run
	lastActive time.Time
}

// Store keeps in-progress runs in memory for the HTTP front-end. Nothing
// survives a restart.
type Store struct {
	mu   sync.Mutex
	runs map[string]*storeEntry
	now  func() time.Time
}

func NewStore() *Store {
	return &Store{runs: make(map[string]*storeEntry), now: time.Now}
}

func (s *Store) Add(r *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[r.ID] = &storeEntry{run: r, lastActive: s.now()}
}

// With runs fn while holding the run's lock, so one run is only ever
// driven by one request at a time.
func (s *Store) With(id string, fn func(r *Run) error) error {
	s.mu.Lock()
	e, ok := s.runs[id]
	if ok {
		e.lastActive = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return ErrRunNotFound
	}
	e.run.mu.Lock()
	defer e.run.mu.Unlock()
	return fn(e.run)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// Sweep drops runs that have not been touched for maxIdle and returns how
// many were removed. Finished runs are swept the same way; their outcome
// is already recorded.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, e := range s.runs {
		if e.lastActive.Before(cutoff) {
			delete(s.runs, id)
			removed++
		}
	}
	if removed > 0 {
		logging.Info("swept idle runs", logging.Fields{constants.LogFieldCount: removed})
	}
	return removed
}
