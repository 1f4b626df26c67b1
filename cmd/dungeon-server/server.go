package main

import (
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/service"
)

// startIdleSweeper evicts runs nobody has touched for maxIdle.
func startIdleSweeper(store *service.Store, maxIdle time.Duration) {
	interval := maxIdle / 4
	if interval < time.Second {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			store.Sweep(maxIdle)
		}
	}()
}
