package engine

import "github.com/daniel-c5656/python-dungeon/internal/game"

// HitOutcome is the result of damage aimed at the player.
type HitOutcome string

const (
	Hit    HitOutcome = "hit"
	Dodged HitOutcome = "dodged"
)

const (
	dodgeHitMax   = 85 // randint(1,100) <= 85 lands
	critNormalMax = 8  // randint(1,10) < 9 is a normal hit
)

// ApplyDamage resolves an incoming hit on the player: 15% of hits are dodged.
// The dodge flag is left set for the rest of the turn.
func ApplyDamage(rng Rand, p *game.Player, amount int) (HitOutcome, Event) {
	tc := newTurnContext(rng)
	out := tc.damagePlayer(p, amount)
	return out, tc.events[len(tc.events)-1]
}

// Heal restores the player's fixed heal amount and cures poison. Health is
// not clamped to MaxHealth.
func Heal(p *game.Player) []Event {
	tc := newTurnContext(nil)
	tc.healPlayer(p)
	return tc.events
}

// PlayerAttack rolls the player's damage against e and applies it.
func PlayerAttack(rng Rand, p *game.Player, e *game.Enemy) []Event {
	tc := newTurnContext(rng)
	tc.playerAttack(p, e)
	return tc.events
}

func (tc *turnContext) damagePlayer(p *game.Player, amount int) HitOutcome {
	if randint(tc.rng, 1, 100) <= dodgeHitMax {
		p.Health -= amount
		p.Dodged = false
		tc.add(Event{Kind: EventPlayerDamaged, Target: p.Name, Amount: amount})
		return Hit
	}
	p.Dodged = true
	tc.add(Event{Kind: EventPlayerDodged, Target: p.Name})
	return Dodged
}

func (tc *turnContext) healPlayer(p *game.Player) {
	p.Health += p.HealAmount
	tc.add(Event{Kind: EventPlayerHealed, Target: p.Name, Amount: p.HealAmount})
	if p.Poison.Active {
		curePoison(p)
		tc.add(Event{Kind: EventPoisonCured, Target: p.Name})
	}
}

// playerAttack draws the critical check first, then the damage roll.
func (tc *turnContext) playerAttack(p *game.Player, e *game.Enemy) {
	lo, hi := damageRange(p.Attack)
	var dmg int
	if randint(tc.rng, 1, 10) <= critNormalMax {
		dmg = randint(tc.rng, lo, hi)
	} else {
		tc.add(Event{Kind: EventCritical, Actor: p.Name, Target: e.Name})
		dmg = randint(tc.rng, lo, hi) * 3 / 2
	}
	tc.damageEnemy(e, dmg)
}

func (tc *turnContext) damageEnemy(e *game.Enemy, amount int) {
	e.Health -= amount
	tc.add(Event{Kind: EventEnemyDamaged, Target: e.Name, Amount: amount})
}

// enemyAttack never crits; the player may still dodge.
func (tc *turnContext) enemyAttack(e *game.Enemy, p *game.Player) HitOutcome {
	tc.add(Event{Kind: EventEnemyAttack, Actor: e.Name, Target: p.Name})
	lo, hi := damageRange(e.Attack)
	return tc.damagePlayer(p, randint(tc.rng, lo, hi))
}
