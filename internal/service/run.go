package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

var (
	ErrRunFinished  = errors.New("run is already finished")
	ErrNotInCombat  = errors.New("run is not in combat")
	ErrNotUpgrading = errors.New("run is not choosing upgrades")
	ErrRunNotFound  = errors.New("run not found")
)

// RunRecorder receives the summary of every finished run.
type RunRecorder interface {
	SaveRunRecord(r *game.RunRecord) error
}

// RunOptions configures a new run. A zero Seed picks a time based one; an
// empty Campaign uses the built-in waves; zero presets use the built-in ones.
type RunOptions struct {
	Mode     game.Mode
	Seed     int64
	Campaign []game.WaveSpec
	Presets  config.Presets
}

const (
	phaseEventClear   = "clear"
	phaseEventAdvance = "advance"
	phaseEventFinish  = "finish"
)

// Run is one play-through of the campaign.
type Run struct {
	ID        string
	Mode      game.Mode
	Seed      int64
	Campaign  []game.WaveSpec
	Player    *game.Player
	Wave      *engine.Wave
	Upgrades  *engine.UpgradeSession
	WaveIndex int

	WavesCleared int
	Turns        int
	Outcome      game.Outcome
	FinishedAt   time.Time

	rng   engine.Rand
	phase *fsm.FSM
	mu    sync.Mutex
}

// NewRun builds the player from the mode's preset and starts the first wave.
func NewRun(opts RunOptions) (*Run, error) {
	mode := opts.Mode
	if mode == "" {
		mode = game.ModeStandard
	}
	if mode != game.ModeStandard && mode != game.ModeGodMode {
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
	campaign := game.DefaultCampaign()
	if len(opts.Campaign) > 0 {
		campaign = game.NumberCampaign(opts.Campaign)
	}
	presets := opts.Presets
	if presets.Standard == (game.PlayerPreset{}) {
		presets.Standard = game.StandardPreset
	}
	if presets.GodMode == (game.PlayerPreset{}) {
		presets.GodMode = game.GodModePreset
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &Run{
		ID:       uuid.NewString(),
		Mode:     mode,
		Seed:     seed,
		Campaign: campaign,
		Player:   game.NewPlayer(presets.For(mode)),
		rng:      engine.NewRand(seed),
		phase: fsm.NewFSM(
			string(game.PhaseCombat),
			fsm.Events{
				{Name: phaseEventClear, Src: []string{string(game.PhaseCombat)}, Dst: string(game.PhaseUpgrade)},
				{Name: phaseEventAdvance, Src: []string{string(game.PhaseUpgrade)}, Dst: string(game.PhaseCombat)},
				{Name: phaseEventFinish, Src: []string{string(game.PhaseCombat)}, Dst: string(game.PhaseFinished)},
			},
			fsm.Callbacks{},
		),
	}
	r.Wave = engine.NewWave(campaign[0], r.Player, r.rng)
	logging.Info("run started", logging.Fields{
		constants.LogFieldRunID: r.ID,
		constants.LogFieldMode:  r.Mode,
		constants.LogFieldSeed:  r.Seed,
	})
	return r, nil
}

// Phase returns which decision the run is waiting for.
func (r *Run) Phase() game.RunPhase { return game.RunPhase(r.phase.Current()) }

// CurrentWave returns the spec of the wave being fought or about to be fought.
func (r *Run) CurrentWave() game.WaveSpec { return r.Campaign[r.WaveIndex] }

// Opening announces the wave the run starts on.
func (r *Run) Opening() engine.Event {
	return engine.Event{Kind: engine.EventWaveStarted, Wave: r.CurrentWave().Number}
}

// Record summarises the run for storage.
func (r *Run) Record() *game.RunRecord {
	return &game.RunRecord{
		RunID:        r.ID,
		Mode:         r.Mode,
		Seed:         r.Seed,
		Outcome:      r.Outcome,
		WavesCleared: r.WavesCleared,
		Turns:        r.Turns,
		FinalHealth:  r.Player.Health,
		MaxHealth:    r.Player.MaxHealth,
		Attack:       r.Player.Attack,
		HealAmount:   r.Player.HealAmount,
		FinishedAt:   r.FinishedAt,
	}
}

func (r *Run) transition(event string) error {
	if err := r.phase.Event(context.Background(), event); err != nil {
		return fmt.Errorf("run %s: %w", r.ID, err)
	}
	return nil
}

// SubmitAction plays one combat turn. Clearing a non-final wave opens an
// upgrade cycle; clearing the final wave or losing finishes the run and
// hands the summary to repo. Engine validation errors are returned as is.
func SubmitAction(repo RunRecorder, r *Run, in engine.Intent) (*engine.TurnReport, error) {
	switch r.Phase() {
	case game.PhaseFinished:
		return nil, ErrRunFinished
	case game.PhaseUpgrade:
		return nil, ErrNotInCombat
	}

	report, err := r.Wave.PlayTurn(in)
	if err != nil {
		return nil, err
	}
	r.Turns++

	switch report.State {
	case game.WaveCleared:
		r.WavesCleared++
		if r.CurrentWave().Final {
			if err := r.finish(repo, game.OutcomeVictory); err != nil {
				return nil, err
			}
			report.Events = append(report.Events, engine.Event{Kind: engine.EventVictory, Wave: r.CurrentWave().Number})
			return report, nil
		}
		session, ev := engine.BeginUpgrades(r.Player)
		r.Upgrades = session
		if err := r.transition(phaseEventClear); err != nil {
			return nil, err
		}
		report.Events = append(report.Events, ev)
	case game.WavePlayerDefeated:
		if err := r.finish(repo, game.OutcomeDefeat); err != nil {
			return nil, err
		}
		report.Events = append(report.Events, engine.Event{Kind: engine.EventDefeat, Wave: r.CurrentWave().Number})
	}
	return report, nil
}

// SubmitUpgrade spends points. When the last point is spent the cycle closes
// and the next wave starts; the returned events cover both.
func SubmitUpgrade(r *Run, u engine.Upgrade) ([]engine.Event, error) {
	if err := requireUpgrading(r); err != nil {
		return nil, err
	}
	ev, err := r.Upgrades.Apply(u)
	if err != nil {
		return nil, err
	}
	logging.Info("upgrade applied", logging.Fields{
		constants.LogFieldRunID:    r.ID,
		constants.LogFieldCategory: u.Category,
		constants.LogFieldPoints:   u.Points,
	})
	events := []engine.Event{ev}
	if !r.Upgrades.Open() {
		more, err := advance(r)
		if err != nil {
			return nil, err
		}
		events = append(events, more...)
	}
	return events, nil
}

// FinishUpgrades ends the cycle early, keeping leftover points, and starts
// the next wave.
func FinishUpgrades(r *Run) ([]engine.Event, error) {
	if err := requireUpgrading(r); err != nil {
		return nil, err
	}
	return advance(r)
}

func requireUpgrading(r *Run) error {
	switch r.Phase() {
	case game.PhaseFinished:
		return ErrRunFinished
	case game.PhaseCombat:
		return ErrNotUpgrading
	}
	return nil
}

func advance(r *Run) ([]engine.Event, error) {
	events := r.Upgrades.Finish()
	r.Upgrades = nil
	r.WaveIndex++
	r.Wave = engine.NewWave(r.CurrentWave(), r.Player, r.rng)
	if err := r.transition(phaseEventAdvance); err != nil {
		return nil, err
	}
	return append(events, r.Opening()), nil
}

// finish closes the run. A failure to store the record is logged and does
// not undo the outcome.
func (r *Run) finish(repo RunRecorder, outcome game.Outcome) error {
	if err := r.transition(phaseEventFinish); err != nil {
		return err
	}
	r.Outcome = outcome
	r.FinishedAt = time.Now().UTC()
	fields := logging.Fields{
		constants.LogFieldRunID:   r.ID,
		constants.LogFieldOutcome: outcome,
		constants.LogFieldWave:    r.CurrentWave().Number,
		constants.LogFieldTurn:    r.Turns,
	}
	logging.Info("run finished", fields)
	if repo == nil {
		return nil
	}
	if err := repo.SaveRunRecord(r.Record()); err != nil {
		logging.Error("failed to save run record", err, fields)
	}
	return nil
}
