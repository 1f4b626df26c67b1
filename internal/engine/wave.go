package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/looplab/fsm"
)

var (
	ErrInvalidTarget = errors.New("target does not resolve to a live enemy")
	ErrInvalidAction = errors.New("unknown action")
	ErrWaveOver      = errors.New("wave is no longer active")
)

// IntentKind is the action a player can choose in combat.
type IntentKind string

const (
	IntentAttack IntentKind = "attack"
	IntentHeal   IntentKind = "heal"
)

// Intent is a player's choice for one turn. Target is a 0-based roster index
// and only matters for attacks.
type Intent struct {
	Kind   IntentKind
	Target int
}

// Attack returns an attack intent against the roster index.
func Attack(target int) Intent { return Intent{Kind: IntentAttack, Target: target} }

// HealIntent returns a heal intent.
func HealIntent() Intent { return Intent{Kind: IntentHeal} }

const (
	eventClear  = "clear"
	eventDefeat = "defeat"
)

// EnemyView is a read-only roster entry.
type EnemyView struct {
	Index   int          `json:"index"`
	Name    string       `json:"name"`
	Variant game.Variant `json:"variant"`
	Health  int          `json:"health"`
}

// RosterSnapshot is what a display shows at the start of a turn.
type RosterSnapshot struct {
	Wave         int         `json:"wave"`
	Turn         int         `json:"turn"`
	PlayerHealth int         `json:"player_health"`
	Poisoned     bool        `json:"poisoned"`
	Enemies      []EnemyView `json:"enemies"`
}

// TurnReport is everything that happened in one turn.
type TurnReport struct {
	Turn   int            `json:"turn"`
	Events []Event        `json:"events"`
	State  game.WaveState `json:"state"`
}

// Wave runs one combat encounter. It owns the roster and, for its lifetime,
// the player.
type Wave struct {
	Spec   game.WaveSpec
	Player *game.Player
	Roster []*game.Enemy
	Turns  int

	rng   Rand
	state *fsm.FSM
}

// NewWave builds the roster in variant order (beetles, spiders, wasps,
// mosquitos), numbering each variant from 1.
func NewWave(spec game.WaveSpec, p *game.Player, rng Rand) *Wave {
	roster := make([]*game.Enemy, 0, spec.Size())
	add := func(v game.Variant, n int) {
		for i := 1; i <= n; i++ {
			roster = append(roster, NewEnemy(v, i))
		}
	}
	add(game.VariantBeetle, spec.Beetles)
	add(game.VariantSpider, spec.Spiders)
	add(game.VariantWasp, spec.Wasps)
	add(game.VariantMosquito, spec.Mosquitos)
	return NewWaveWithRoster(spec, p, roster, rng)
}

// NewWaveWithRoster starts a wave against an explicit roster.
func NewWaveWithRoster(spec game.WaveSpec, p *game.Player, roster []*game.Enemy, rng Rand) *Wave {
	return &Wave{
		Spec:   spec,
		Player: p,
		Roster: roster,
		rng:    rng,
		state: fsm.NewFSM(
			string(game.WaveActive),
			fsm.Events{
				{Name: eventClear, Src: []string{string(game.WaveActive)}, Dst: string(game.WaveCleared)},
				{Name: eventDefeat, Src: []string{string(game.WaveActive)}, Dst: string(game.WavePlayerDefeated)},
			},
			fsm.Callbacks{},
		),
	}
}

// State returns the wave's current state.
func (w *Wave) State() game.WaveState { return game.WaveState(w.state.Current()) }

// Snapshot describes the roster and player health for display.
func (w *Wave) Snapshot() RosterSnapshot {
	enemies := make([]EnemyView, len(w.Roster))
	for i, e := range w.Roster {
		enemies[i] = EnemyView{Index: i, Name: e.Name, Variant: e.Variant, Health: e.Health}
	}
	return RosterSnapshot{
		Wave:         w.Spec.Number,
		Turn:         w.Turns + 1,
		PlayerHealth: w.Player.Health,
		Poisoned:     w.Player.Poison.Active,
		Enemies:      enemies,
	}
}

// Validate checks an intent against the live roster without touching state.
func (w *Wave) Validate(in Intent) error {
	if w.State() != game.WaveActive {
		return ErrWaveOver
	}
	switch in.Kind {
	case IntentAttack:
		if in.Target < 0 || in.Target >= len(w.Roster) {
			return ErrInvalidTarget
		}
	case IntentHeal:
	default:
		return ErrInvalidAction
	}
	return nil
}

// PlayTurn resolves one full turn: the player's action, every live enemy in
// roster order, then the poison tick. Defeat is only checked after all of
// it. An invalid intent returns an error and changes nothing.
func (w *Wave) PlayTurn(in Intent) (*TurnReport, error) {
	if err := w.Validate(in); err != nil {
		return nil, err
	}
	snap := w.Snapshot()
	w.Turns++
	tc := newTurnContext(w.rng)
	tc.add(Event{Kind: EventRoster, Wave: w.Spec.Number, Snapshot: &snap})

	switch in.Kind {
	case IntentAttack:
		target := w.Roster[in.Target]
		tc.playerAttack(w.Player, target)
		if !target.Alive() {
			tc.add(Event{Kind: EventEnemyEliminated, Target: target.Name})
			w.Roster = removeAt(w.Roster, in.Target)
			if len(w.Roster) == 0 {
				if err := w.transition(eventClear); err != nil {
					return nil, err
				}
				tc.add(Event{Kind: EventWaveCleared, Wave: w.Spec.Number})
				return w.report(tc), nil
			}
		}
	case IntentHeal:
		tc.healPlayer(w.Player)
	}

	for _, e := range w.Roster {
		tc.resolveMove(e, w.Player, w.Roster)
	}
	tc.tickPoison(w.Player)

	if w.Player.Health <= 0 {
		if err := w.transition(eventDefeat); err != nil {
			return nil, err
		}
		tc.add(Event{Kind: EventPlayerDefeated, Target: w.Player.Name, Wave: w.Spec.Number})
	}
	return w.report(tc), nil
}

// Result returns the terminal state of the wave; done is false while active.
func (w *Wave) Result() (state game.WaveState, done bool) {
	state = w.State()
	return state, state != game.WaveActive
}

func (w *Wave) transition(event string) error {
	if err := w.state.Event(context.Background(), event); err != nil {
		return fmt.Errorf("wave %d: %w", w.Spec.Number, err)
	}
	return nil
}

func (w *Wave) report(tc *turnContext) *TurnReport {
	return &TurnReport{Turn: w.Turns, Events: tc.events, State: w.State()}
}
