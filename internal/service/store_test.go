package service

import (
	"errors"
	"testing"
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/game"
)

func TestStore_WithAndSweep(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	stale, _ := NewRun(RunOptions{Mode: game.ModeGodMode})
	fresh, _ := NewRun(RunOptions{Mode: game.ModeGodMode})
	s.Add(stale)
	now = now.Add(20 * time.Minute)
	s.Add(fresh)

	called := false
	if err := s.With(fresh.ID, func(r *Run) error {
		called = r == fresh
		return nil
	}); err != nil || !called {
		t.Fatalf("expected fn to run on the stored run, err=%v", err)
	}
	if err := s.With("missing", func(*Run) error { return nil }); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}

	now = now.Add(15 * time.Minute)
	if removed := s.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 swept run, got %d", removed)
	}
	if s.Len() != 1 {
		t.Fatalf("expected fresh run to remain")
	}
	if err := s.With(stale.ID, func(*Run) error { return nil }); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("stale run should be gone, got %v", err)
	}
}

func TestStore_WithPropagatesError(t *testing.T) {
	s := NewStore()
	r, _ := NewRun(RunOptions{})
	s.Add(r)
	if err := s.With(r.ID, func(*Run) error { return ErrNotUpgrading }); !errors.Is(err, ErrNotUpgrading) {
		t.Fatalf("expected fn error, got %v", err)
	}
}
