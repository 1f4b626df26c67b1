package storage

import (
	"errors"

	"github.com/daniel-c5656/python-dungeon/internal/game"
)

var ErrRecordNotFound = errors.New("run record not found")

// Repository stores the outcome of finished runs.
type Repository interface {
	SaveRunRecord(r *game.RunRecord) error
	// GetRunRecord looks a record up by its run UUID.
	GetRunRecord(runID string) (*game.RunRecord, error)
	// ListRecentRuns returns the newest records first.
	ListRecentRuns(limit int) ([]game.RunRecord, error)
	GetRunStats() (*game.RunStats, error)
}
