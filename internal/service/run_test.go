package service

import (
	"context"
	"errors"
	"testing"

	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
)

type mockRecorder struct {
	records []*game.RunRecord
	err     error
}

func (m *mockRecorder) SaveRunRecord(r *game.RunRecord) error {
	m.records = append(m.records, r)
	return m.err
}

// scriptedInput answers prompts from queues, falling back to attacking the
// first enemy and finishing upgrades.
type scriptedInput struct {
	actions  []engine.Intent
	upgrades []UpgradeChoice
	prompts  int
}

func (s *scriptedInput) SelectAction(ctx context.Context, snap engine.RosterSnapshot) (engine.Intent, error) {
	s.prompts++
	if len(s.actions) > 0 {
		in := s.actions[0]
		s.actions = s.actions[1:]
		return in, nil
	}
	return engine.Attack(0), nil
}

func (s *scriptedInput) SelectUpgrade(ctx context.Context, p UpgradePrompt) (UpgradeChoice, error) {
	s.prompts++
	if len(s.upgrades) > 0 {
		c := s.upgrades[0]
		s.upgrades = s.upgrades[1:]
		return c, nil
	}
	return UpgradeChoice{Finish: true}, nil
}

type recordingDisplay struct {
	events []engine.Event
}

func (d *recordingDisplay) Show(ev engine.Event) { d.events = append(d.events, ev) }

func (d *recordingDisplay) count(k engine.EventKind) int {
	n := 0
	for _, ev := range d.events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

func TestPlay_GodModeClearsCampaign(t *testing.T) {
	r, err := NewRun(RunOptions{Mode: game.ModeGodMode, Seed: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := &mockRecorder{}
	out := &recordingDisplay{}

	outcome, err := Play(context.Background(), rec, r, &scriptedInput{}, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.OutcomeVictory {
		t.Fatalf("expected victory, got %q", outcome)
	}
	// every enemy dies to one hit: 2+3+3+5+6+1 turns
	if r.Turns != 20 || r.WavesCleared != 6 {
		t.Fatalf("expected 20 turns over 6 waves, got %d turns, %d waves", r.Turns, r.WavesCleared)
	}
	if r.Player.UpgradePoints != 15 {
		t.Fatalf("expected 15 unspent points, got %d", r.Player.UpgradePoints)
	}
	if got := out.count(engine.EventWaveStarted); got != 6 {
		t.Fatalf("expected 6 wave_started events, got %d", got)
	}
	if got := out.count(engine.EventPointsGranted); got != 5 {
		t.Fatalf("expected points after 5 waves, got %d", got)
	}
	if out.count(engine.EventVictory) != 1 || out.count(engine.EventDefeat) != 0 {
		t.Fatalf("unexpected terminal events")
	}
	if len(rec.records) != 1 {
		t.Fatalf("expected one stored record, got %d", len(rec.records))
	}
	got := rec.records[0]
	if got.RunID != r.ID || got.Outcome != game.OutcomeVictory || got.Mode != game.ModeGodMode || got.Seed != 99 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestPlay_DefeatIsRecorded(t *testing.T) {
	r, err := NewRun(RunOptions{
		Seed:     7,
		Campaign: game.NumberCampaign([]game.WaveSpec{{Beetles: 1}}),
		Presets:  config.Presets{Standard: game.PlayerPreset{Health: 1, Attack: 1, Heal: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := &mockRecorder{err: errors.New("disk full")}
	out := &recordingDisplay{}

	outcome, err := Play(context.Background(), rec, r, &scriptedInput{}, out)
	if err != nil {
		t.Fatalf("a failing recorder must not fail the run: %v", err)
	}
	if outcome != game.OutcomeDefeat || r.Phase() != game.PhaseFinished {
		t.Fatalf("expected finished defeat, got %q in %q", outcome, r.Phase())
	}
	if out.count(engine.EventPlayerDefeated) != 1 || out.count(engine.EventDefeat) != 1 {
		t.Fatalf("expected defeat events, got %v", out.events)
	}
	if len(rec.records) != 1 || rec.records[0].Outcome != game.OutcomeDefeat || rec.records[0].WavesCleared != 0 {
		t.Fatalf("unexpected records: %+v", rec.records)
	}
	if _, err := SubmitAction(rec, r, engine.Attack(0)); !errors.Is(err, ErrRunFinished) {
		t.Fatalf("expected ErrRunFinished, got %v", err)
	}
}

func TestPlay_InvalidTargetIsReprompted(t *testing.T) {
	r, _ := NewRun(RunOptions{Mode: game.ModeGodMode, Seed: 3})
	in := &scriptedInput{actions: []engine.Intent{engine.Attack(7), {Kind: "flee"}}}
	out := &recordingDisplay{}

	if _, err := Play(context.Background(), nil, r, in, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.count(engine.EventInvalidTarget); got != 2 {
		t.Fatalf("expected 2 invalid_target events, got %d", got)
	}
	if r.Turns != 20 {
		t.Fatalf("invalid choices must not consume turns, got %d", r.Turns)
	}
}

func TestPlay_InvalidUpgradeIsReprompted(t *testing.T) {
	r, _ := NewRun(RunOptions{Mode: game.ModeGodMode, Seed: 3})
	in := &scriptedInput{upgrades: []UpgradeChoice{
		{Upgrade: engine.Upgrade{Category: "speed", Points: 1}},
		{Upgrade: engine.Upgrade{Category: game.UpgradeDamage, Points: 4}},
		{Upgrade: engine.Upgrade{Category: game.UpgradeDamage, Points: 1}},
	}}
	out := &recordingDisplay{}

	if _, err := Play(context.Background(), nil, r, in, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.count(engine.EventInvalidUpgrade) != 1 || out.count(engine.EventInvalidSpend) != 1 {
		t.Fatalf("expected one invalid_upgrade and one invalid_spend, got %v", out.events)
	}
	if r.Player.Attack != game.GodModePreset.Attack+10 {
		t.Fatalf("expected one damage upgrade, attack is %d", r.Player.Attack)
	}
	if r.Player.UpgradePoints != 14 {
		t.Fatalf("expected 14 points left, got %d", r.Player.UpgradePoints)
	}
}

func TestPlay_CancelledContext(t *testing.T) {
	r, _ := NewRun(RunOptions{Mode: game.ModeGodMode})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := &scriptedInput{}

	if _, err := Play(ctx, nil, r, in, &recordingDisplay{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if in.prompts != 0 {
		t.Fatalf("no prompt should be issued after cancellation")
	}
}

func TestSubmit_PhaseFlow(t *testing.T) {
	r, _ := NewRun(RunOptions{Mode: game.ModeGodMode, Seed: 11})
	if r.Phase() != game.PhaseCombat || r.CurrentWave().Number != 1 {
		t.Fatalf("run should start in combat on wave 1")
	}
	if _, err := FinishUpgrades(r); !errors.Is(err, ErrNotUpgrading) {
		t.Fatalf("expected ErrNotUpgrading, got %v", err)
	}
	if _, err := SubmitAction(nil, r, engine.Attack(5)); !errors.Is(err, engine.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := SubmitAction(nil, r, engine.Attack(0)); err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
	}
	if r.Phase() != game.PhaseUpgrade || r.Player.UpgradePoints != 3 {
		t.Fatalf("expected upgrade phase with 3 points, got %q/%d", r.Phase(), r.Player.UpgradePoints)
	}
	if _, err := SubmitAction(nil, r, engine.Attack(0)); !errors.Is(err, ErrNotInCombat) {
		t.Fatalf("expected ErrNotInCombat, got %v", err)
	}

	r.Player.Health = 5
	events, err := SubmitUpgrade(r, engine.Upgrade{Category: game.UpgradeHealth, Points: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 || events[1].Kind != engine.EventHealthRestored || events[2].Kind != engine.EventWaveStarted {
		t.Fatalf("spending the last point should start the next wave, got %v", events)
	}
	want := game.GodModePreset.Health + 60
	if r.Player.MaxHealth != want || r.Player.Health != want {
		t.Fatalf("expected health reset to %d, got %d/%d", want, r.Player.Health, r.Player.MaxHealth)
	}
	if r.Phase() != game.PhaseCombat || r.CurrentWave().Number != 2 || len(r.Wave.Roster) != 3 {
		t.Fatalf("expected wave 2 with 3 enemies")
	}
}

func TestNewRun_RejectsUnknownMode(t *testing.T) {
	if _, err := NewRun(RunOptions{Mode: "hard"}); err == nil {
		t.Fatalf("expected an error")
	}
}
