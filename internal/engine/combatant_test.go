package engine

import (
	"testing"

	"github.com/daniel-c5656/python-dungeon/internal/game"
)

func TestApplyDamage_HitAndDodge(t *testing.T) {
	rng := newScripted(t, roll(1, 100, 85), roll(1, 100, 86))
	p := game.NewPlayer(game.StandardPreset)

	out, ev := ApplyDamage(rng, p, 15)
	if out != Hit || p.Health != 105 || p.Dodged {
		t.Fatalf("expected hit to 105 HP, got %v hp=%d dodged=%v", out, p.Health, p.Dodged)
	}
	if ev.Kind != EventPlayerDamaged || ev.Amount != 15 {
		t.Fatalf("unexpected event %+v", ev)
	}

	out, ev = ApplyDamage(rng, p, 15)
	if out != Dodged || p.Health != 105 || !p.Dodged {
		t.Fatalf("expected dodge at 105 HP, got %v hp=%d dodged=%v", out, p.Health, p.Dodged)
	}
	if ev.Kind != EventPlayerDodged {
		t.Fatalf("unexpected event %+v", ev)
	}
	rng.done()
}

func TestApplyDamage_DodgeFrequency(t *testing.T) {
	rng := NewRand(42)
	p := game.NewPlayer(game.PlayerPreset{Health: 1 << 30})
	const n = 100000
	dodges := 0
	for i := 0; i < n; i++ {
		before := p.Health
		out, _ := ApplyDamage(rng, p, 7)
		switch out {
		case Dodged:
			dodges++
			if p.Health != before {
				t.Fatalf("dodge changed health %d -> %d", before, p.Health)
			}
		case Hit:
			if p.Health != before-7 {
				t.Fatalf("hit: expected %d, got %d", before-7, p.Health)
			}
		}
	}
	rate := float64(dodges) / n
	if rate < 0.14 || rate > 0.16 {
		t.Fatalf("dodge rate %.4f outside [0.14, 0.16]", rate)
	}
}

func TestPlayerAttack_CriticalDrawOrder(t *testing.T) {
	// crit check first, then the magnitude roll
	rng := newScripted(t, roll(1, 10, 9), roll(22, 27, 27))
	p := game.NewPlayer(game.StandardPreset)
	e := NewEnemy(game.VariantSpider, 1)

	events := PlayerAttack(rng, p, e)
	rng.done()
	if len(events) != 2 || events[0].Kind != EventCritical || events[1].Kind != EventEnemyDamaged {
		t.Fatalf("unexpected events %+v", events)
	}
	if events[1].Amount != 40 || e.Health != 10 {
		t.Fatalf("expected 40 damage leaving 10 HP, got %d and %d", events[1].Amount, e.Health)
	}
}

func TestPlayerAttack_RangeAndCritFrequency(t *testing.T) {
	rng := NewRand(1234)
	p := game.NewPlayer(game.StandardPreset)
	lo, hi := damageRange(p.Attack)
	const n = 50000
	crits := 0
	for i := 0; i < n; i++ {
		e := game.Enemy{Name: "dummy", Health: 1000}
		events := PlayerAttack(rng, p, &e)
		dealt := 1000 - e.Health
		if events[0].Kind == EventCritical {
			crits++
			if dealt < lo*3/2 || dealt > hi*3/2 {
				t.Fatalf("critical damage %d outside [%d,%d]", dealt, lo*3/2, hi*3/2)
			}
			continue
		}
		if dealt < lo || dealt > hi {
			t.Fatalf("damage %d outside [%d,%d]", dealt, lo, hi)
		}
	}
	rate := float64(crits) / n
	if rate < 0.19 || rate > 0.21 {
		t.Fatalf("critical rate %.4f outside [0.19, 0.21]", rate)
	}
}

func TestHeal_NoClampAndCuresPoison(t *testing.T) {
	p := game.NewPlayer(game.StandardPreset)
	p.Poison = game.Poison{Active: true, DamagePerTurn: 13, TurnsElapsed: 1}

	events := Heal(p)
	if p.Health != 155 {
		t.Fatalf("expected heal above max to 155, got %d", p.Health)
	}
	if p.Poison.Active || p.Poison.TurnsElapsed != 0 {
		t.Fatalf("expected poison cured, got %+v", p.Poison)
	}
	if len(events) != 2 || events[1].Kind != EventPoisonCured {
		t.Fatalf("unexpected events %+v", events)
	}
}
