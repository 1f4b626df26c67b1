package engine

import "github.com/daniel-c5656/python-dungeon/internal/game"

// --- Poison status ------------------------------------------------------

// applyPoison overwrites any existing poison; it never stacks.
func applyPoison(p *game.Player, attack int) int {
	p.Poison = game.Poison{Active: true, DamagePerTurn: attack / 4}
	return p.Poison.DamagePerTurn
}

func curePoison(p *game.Player) {
	p.Poison.Active = false
	p.Poison.TurnsElapsed = 0
}

// tickPoison runs once after the enemy phase while the player is poisoned.
func (tc *turnContext) tickPoison(p *game.Player) {
	if !p.Poison.Active {
		return
	}
	p.Health -= p.Poison.DamagePerTurn
	p.Poison.TurnsElapsed++
	tc.add(Event{Kind: EventPoisonTick, Target: p.Name, Amount: p.Poison.DamagePerTurn})
	if p.Poison.TurnsElapsed >= poisonTurns {
		curePoison(p)
		tc.add(Event{Kind: EventPoisonWornOff, Target: p.Name})
	}
}
