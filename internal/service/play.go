package service

import (
	"context"
	"errors"

	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
)

// UpgradePrompt is what an Input sees when choosing an upgrade.
type UpgradePrompt struct {
	Wave       int          `json:"wave"`
	Points     int          `json:"points"`
	Player     game.Player  `json:"player"`
	Categories []UpgradeOpt `json:"categories"`
}

// UpgradeOpt describes one category and its per-point gain.
type UpgradeOpt struct {
	Category game.UpgradeCategory `json:"category"`
	Gain     int                  `json:"gain"`
}

// UpgradeChoice is either an upgrade to apply or a request to move on.
type UpgradeChoice struct {
	Finish  bool
	Upgrade engine.Upgrade
}

// Input supplies the player's decisions.
type Input interface {
	SelectAction(ctx context.Context, snap engine.RosterSnapshot) (engine.Intent, error)
	SelectUpgrade(ctx context.Context, prompt UpgradePrompt) (UpgradeChoice, error)
}

// Display receives every event in order.
type Display interface {
	Show(ev engine.Event)
}

var upgradeOrder = []game.UpgradeCategory{game.UpgradeDamage, game.UpgradeHealth, game.UpgradeHealing}

// NewUpgradePrompt describes the open upgrade cycle of r.
func NewUpgradePrompt(r *Run) UpgradePrompt {
	opts := make([]UpgradeOpt, 0, len(upgradeOrder))
	for _, c := range upgradeOrder {
		g, _ := engine.UpgradeGain(c)
		opts = append(opts, UpgradeOpt{Category: c, Gain: g})
	}
	return UpgradePrompt{
		Wave:       r.CurrentWave().Number,
		Points:     r.Player.UpgradePoints,
		Player:     *r.Player,
		Categories: opts,
	}
}

// Play drives r to completion. Invalid choices are reported to out and the
// same decision is asked for again. ctx is checked between prompts only; a
// turn that has started always resolves.
func Play(ctx context.Context, repo RunRecorder, r *Run, in Input, out Display) (game.Outcome, error) {
	if r.Phase() == game.PhaseCombat && r.Turns == 0 {
		out.Show(r.Opening())
	}
	for {
		if err := ctx.Err(); err != nil {
			return game.OutcomeNone, err
		}
		switch r.Phase() {
		case game.PhaseFinished:
			return r.Outcome, nil

		case game.PhaseCombat:
			intent, err := in.SelectAction(ctx, r.Wave.Snapshot())
			if err != nil {
				return game.OutcomeNone, err
			}
			report, err := SubmitAction(repo, r, intent)
			switch {
			case errors.Is(err, engine.ErrInvalidTarget), errors.Is(err, engine.ErrInvalidAction):
				out.Show(engine.Event{Kind: engine.EventInvalidTarget, Wave: r.CurrentWave().Number})
				continue
			case err != nil:
				return game.OutcomeNone, err
			}
			show(out, report.Events)

		case game.PhaseUpgrade:
			choice, err := in.SelectUpgrade(ctx, NewUpgradePrompt(r))
			if err != nil {
				return game.OutcomeNone, err
			}
			var events []engine.Event
			if choice.Finish {
				events, err = FinishUpgrades(r)
			} else {
				events, err = SubmitUpgrade(r, choice.Upgrade)
			}
			switch {
			case errors.Is(err, engine.ErrInvalidUpgradeChoice):
				out.Show(engine.Event{Kind: engine.EventInvalidUpgrade, Category: choice.Upgrade.Category})
				continue
			case errors.Is(err, engine.ErrInvalidSpendAmount):
				out.Show(engine.Event{Kind: engine.EventInvalidSpend, Amount: choice.Upgrade.Points})
				continue
			case err != nil:
				return game.OutcomeNone, err
			}
			show(out, events)
		}
	}
}

func show(out Display, events []engine.Event) {
	for _, ev := range events {
		out.Show(ev)
	}
}
