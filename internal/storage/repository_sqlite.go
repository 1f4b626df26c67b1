package storage

import (
	"errors"

	"github.com/daniel-c5656/python-dungeon/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

// SaveRunRecord inserts the record, or updates it when a record for the same
// run already exists.
func (r *sqliteRepository) SaveRunRecord(rec *game.RunRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "run_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"outcome", "waves_cleared", "turns", "final_health",
			"max_health", "attack", "heal_amount", "finished_at", "updated_at",
		}),
	}).Create(rec).Error
}

func (r *sqliteRepository) GetRunRecord(runID string) (*game.RunRecord, error) {
	var rec game.RunRecord
	if err := r.db.Where("run_id = ?", runID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListRecentRuns(limit int) ([]game.RunRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	var out []game.RunRecord
	if err := r.db.Order("finished_at DESC").Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) GetRunStats() (*game.RunStats, error) {
	var row struct {
		Runs        int64
		Victories   int64
		Defeats     int64
		GodModeRuns int64
		BestWaves   int
	}
	err := r.db.Model(&game.RunRecord{}).Select(
		"COUNT(*) AS runs, "+
			"COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) AS victories, "+
			"COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0) AS defeats, "+
			"COALESCE(SUM(CASE WHEN mode = ? THEN 1 ELSE 0 END), 0) AS god_mode_runs, "+
			"COALESCE(MAX(waves_cleared), 0) AS best_waves",
		game.OutcomeVictory, game.OutcomeDefeat, game.ModeGodMode,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &game.RunStats{
		Runs:             row.Runs,
		Victories:        row.Victories,
		Defeats:          row.Defeats,
		GodModeRuns:      row.GodModeRuns,
		BestWavesCleared: row.BestWaves,
	}, nil
}
