package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/daniel-c5656/python-dungeon/internal/storage"
)

// bot attacks the weakest enemy and heals when poisoned or low.
type bot struct {
	healBelow float64
	player    *game.Player
}

func (b bot) SelectAction(_ context.Context, snap engine.RosterSnapshot) (engine.Intent, error) {
	if b.player.Poison.Active || float64(snap.PlayerHealth) < b.healBelow*float64(b.player.MaxHealth) {
		return engine.HealIntent(), nil
	}
	return engine.Attack(engine.WeakestTarget(snap.Enemies)), nil
}

// SelectUpgrade spends one point at a time, keeping health and healing in
// proportion to damage.
func (b bot) SelectUpgrade(_ context.Context, p service.UpgradePrompt) (service.UpgradeChoice, error) {
	cat := game.UpgradeDamage
	switch {
	case p.Player.MaxHealth < 4*p.Player.Attack:
		cat = game.UpgradeHealth
	case p.Player.HealAmount < p.Player.MaxHealth/4:
		cat = game.UpgradeHealing
	}
	return service.UpgradeChoice{Upgrade: engine.Upgrade{Category: cat, Points: 1}}, nil
}

type tally map[engine.EventKind]int

func (t tally) Show(ev engine.Event) { t[ev.Kind]++ }

type summary struct {
	Runs            int                      `json:"runs"`
	Mode            game.Mode                `json:"mode"`
	FirstSeed       int64                    `json:"first_seed"`
	Victories       int                      `json:"victories"`
	Defeats         int                      `json:"defeats"`
	WinRate         float64                  `json:"win_rate"`
	AvgTurns        float64                  `json:"avg_turns"`
	AvgWavesCleared float64                  `json:"avg_waves_cleared"`
	DefeatsByWave   map[int]int              `json:"defeats_by_wave"`
	Events          map[engine.EventKind]int `json:"events"`
	Elapsed         string                   `json:"elapsed"`
}

func main() {
	n := flag.Int("n", 100, "number of runs to simulate")
	seed := flag.Int64("seed", 0, "first seed; run i uses seed+i (0 picks one from the clock)")
	godMode := flag.Bool("godmode", false, "simulate god mode runs")
	cfgPath := flag.String("config", "", "path to a dungeon config file")
	dbPath := flag.String("db", "", "optional sqlite path to record finished runs")
	healBelow := flag.Float64("heal-below", 0.35, "heal when health drops below this fraction of max")
	flag.Parse()

	// per-run info logs would drown the summary
	if err := logging.Configure("error", []string{"stderr"}); err != nil {
		os.Exit(2)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.LoadConfig(*cfgPath)
		if err != nil {
			logging.Fatal("invalid config", err, nil)
		}
		cfg = loaded
	}

	var rec service.RunRecorder
	if *dbPath != "" {
		db, err := storage.OpenAndMigrate(*dbPath)
		if err != nil {
			logging.Fatal("failed to open database", err, nil)
		}
		rec = storage.NewSQLiteRepository(db)
	}

	mode := game.ModeStandard
	if *godMode {
		mode = game.ModeGodMode
	}
	first := *seed
	if first == 0 {
		first = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	out := summary{Mode: mode, FirstSeed: first, DefeatsByWave: map[int]int{}}
	events := tally{}
	turns, waves := 0, 0
	for i := 0; i < *n; i++ {
		r, err := service.NewRun(service.RunOptions{
			Mode:     mode,
			Seed:     first + int64(i),
			Campaign: cfg.Campaign,
			Presets:  cfg.Presets,
		})
		if err != nil {
			logging.Fatal("failed to create run", err, nil)
		}
		in := bot{healBelow: *healBelow, player: r.Player}
		outcome, err := service.Play(ctx, rec, r, in, events)
		if err != nil {
			break
		}
		out.Runs++
		turns += r.Turns
		waves += r.WavesCleared
		switch outcome {
		case game.OutcomeVictory:
			out.Victories++
		case game.OutcomeDefeat:
			out.Defeats++
			out.DefeatsByWave[r.CurrentWave().Number]++
		}
	}
	if out.Runs > 0 {
		out.WinRate = float64(out.Victories) / float64(out.Runs)
		out.AvgTurns = float64(turns) / float64(out.Runs)
		out.AvgWavesCleared = float64(waves) / float64(out.Runs)
	}
	out.Events = events
	out.Elapsed = time.Since(start).Round(time.Millisecond).String()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		os.Exit(1)
	}
}
