package main

import (
	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/storage"
)

func loadConfigOrExit() *config.LoadedConfig {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Missing or invalid dungeon configuration", err, nil)
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
