package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/daniel-c5656/python-dungeon/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	// The screen belongs to the UI; logs go to a file.
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
		if err := logging.Configure(cfg.LogLevel, []string{cfg.LogFile}); err != nil {
			logging.Discard()
		}
	} else {
		logging.Discard()
	}
	defer logging.Sync()

	var rec service.RunRecorder
	if db, err := storage.OpenAndMigrate(cfg.DatabasePath); err != nil {
		logging.Error("run history disabled", err, nil)
	} else {
		rec = storage.NewSQLiteRepository(db)
	}

	if _, err := tea.NewProgram(NewModel(cfg, rec)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
