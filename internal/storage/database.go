package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAndMigrate opens the sqlite database at dataSourceName, creating its
// parent directory when needed, and migrates the run history schema.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	if dir := filepath.Dir(dataSourceName); dir != "." && dataSourceName != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dataSourceName, err)
	}
	if err := db.AutoMigrate(&game.RunRecord{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	logging.Info("database ready", logging.Fields{"path": dataSourceName})
	return db, nil
}
