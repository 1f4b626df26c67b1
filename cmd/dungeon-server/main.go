package main

import (
	"github.com/daniel-c5656/python-dungeon/internal/api"
	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/daniel-c5656/python-dungeon/internal/version"
)

func main() {
	cfg := loadConfigOrExit()
	if err := logging.Configure(cfg.LogLevel, []string{"stdout"}); err != nil {
		logging.Fatal("Invalid log level", err, logging.Fields{"level": cfg.LogLevel})
	}
	defer logging.Sync()

	repo := createRepositoryOrExit(cfg.DatabasePath)
	store := service.NewStore()
	startIdleSweeper(store, cfg.SessionIdle)

	router := api.NewRouter(api.NewRunHandler(repo, store, cfg))

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.Version,
		"waves":                len(cfg.Campaign),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
