package engine

import (
	"fmt"

	"github.com/daniel-c5656/python-dungeon/internal/game"
)

// MoveKind is what an enemy decided to do on its turn.
type MoveKind string

const (
	MoveAttack     MoveKind = "attack"
	MoveArmor      MoveKind = "armor"
	MoveHealAll    MoveKind = "heal_all"
	MoveDistracted MoveKind = "distracted"
)

const (
	beetleArmor     = 10
	spiderHealBonus = 5
	poisonTurns     = 2
)

// Preset is the fixed starting stats of a variant.
type Preset struct {
	Health int
	Attack int
}

var presets = map[game.Variant]Preset{
	game.VariantBeetle:   {Health: 30, Attack: 12},
	game.VariantSpider:   {Health: 50, Attack: 22},
	game.VariantWasp:     {Health: 65, Attack: 35},
	game.VariantMosquito: {Health: 300, Attack: 55},
}

var displayNames = map[game.Variant]string{
	game.VariantBeetle:   "Beetle",
	game.VariantSpider:   "Spider",
	game.VariantWasp:     "Wasp",
	game.VariantMosquito: "Mosquito",
	game.VariantGeneric:  "Enemy",
}

// movePolicy selects a move with exactly one draw. Mosquito's poison check
// is a second decision point resolved after the attack lands.
type movePolicy func(rng Rand) MoveKind

var policies = map[game.Variant]movePolicy{
	game.VariantBeetle: func(rng Rand) MoveKind {
		if randint(rng, 1, 100) <= 80 {
			return MoveAttack
		}
		return MoveArmor
	},
	game.VariantSpider: func(rng Rand) MoveKind {
		if randint(rng, 1, 100) <= 85 {
			return MoveAttack
		}
		return MoveHealAll
	},
	game.VariantWasp: func(rng Rand) MoveKind {
		if randint(rng, 1, 5) == 3 {
			return MoveDistracted
		}
		return MoveAttack
	},
	game.VariantMosquito: func(rng Rand) MoveKind {
		if randint(rng, 1, 3) == 2 {
			return MoveDistracted
		}
		return MoveAttack
	},
}

// PresetFor returns the stat preset of a variant. Generic has none.
func PresetFor(v game.Variant) (Preset, bool) {
	p, ok := presets[v]
	return p, ok
}

// NewEnemy builds the ordinal-th enemy of a variant, e.g. "Spider 2".
func NewEnemy(v game.Variant, ordinal int) *game.Enemy {
	p := presets[v]
	return &game.Enemy{
		Name:    fmt.Sprintf("%s %d", displayNames[v], ordinal),
		Variant: v,
		Health:  p.Health,
		Attack:  p.Attack,
	}
}

// NewGenericEnemy builds an always-attacking enemy with explicit stats.
func NewGenericEnemy(name string, health, attack int) *game.Enemy {
	return &game.Enemy{Name: name, Variant: game.VariantGeneric, Health: health, Attack: attack}
}

// SelectMove runs the variant's move policy. Variants without a policy attack.
func SelectMove(rng Rand, e *game.Enemy) MoveKind {
	if policy, ok := policies[e.Variant]; ok {
		return policy(rng)
	}
	return MoveAttack
}

// resolveMove lets e take its turn against the player and its own roster.
func (tc *turnContext) resolveMove(e *game.Enemy, p *game.Player, roster []*game.Enemy) {
	switch SelectMove(tc.rng, e) {
	case MoveAttack:
		tc.enemyAttack(e, p)
		if e.Variant == game.VariantMosquito {
			tc.mosquitoSting(e, p)
		}
	case MoveArmor:
		e.Health += beetleArmor
		tc.add(Event{Kind: EventArmorApplied, Actor: e.Name, Amount: beetleArmor})
	case MoveHealAll:
		for _, other := range roster {
			if other.Alive() {
				other.Health += spiderHealBonus
			}
		}
		tc.add(Event{Kind: EventSpiderHealAll, Actor: e.Name, Amount: spiderHealBonus})
	case MoveDistracted:
		tc.add(Event{Kind: EventDistracted, Actor: e.Name, Variant: e.Variant})
	}
}

// mosquitoSting always draws, then poisons only if the attack was not dodged.
func (tc *turnContext) mosquitoSting(e *game.Enemy, p *game.Player) {
	if randint(tc.rng, 1, 2) == 2 && !p.Dodged {
		dmg := applyPoison(p, e.Attack)
		tc.add(Event{Kind: EventPoisonApplied, Actor: e.Name, Target: p.Name, Amount: dmg})
	}
}
