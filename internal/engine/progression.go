package engine

import (
	"errors"

	"github.com/daniel-c5656/python-dungeon/internal/game"
)

var (
	ErrInvalidUpgradeChoice = errors.New("unknown upgrade category")
	ErrInvalidSpendAmount   = errors.New("spend amount must be between 0 and the available points")
	ErrUpgradesClosed       = errors.New("upgrade cycle already finished")
)

// PointsPerWave is granted each time a non-final wave is cleared.
const PointsPerWave = 3

// Per-point stat gains.
var upgradeGains = map[game.UpgradeCategory]int{
	game.UpgradeDamage:  10,
	game.UpgradeHealth:  20,
	game.UpgradeHealing: 10,
}

// Upgrade spends Points on one category.
type Upgrade struct {
	Category game.UpgradeCategory `json:"category"`
	Points   int                  `json:"points"`
}

// UpgradeSession is one between-wave upgrade cycle. It stays open while the
// player has points and has not chosen to move on.
type UpgradeSession struct {
	Player   *game.Player
	finished bool
}

// UpgradeGain returns the per-point gain of a category.
func UpgradeGain(c game.UpgradeCategory) (int, bool) {
	g, ok := upgradeGains[c]
	return g, ok
}

// BeginUpgrades grants the wave reward and opens a cycle.
func BeginUpgrades(p *game.Player) (*UpgradeSession, Event) {
	p.UpgradePoints += PointsPerWave
	return &UpgradeSession{Player: p}, Event{Kind: EventPointsGranted, Target: p.Name, Amount: PointsPerWave}
}

// Open reports whether another upgrade may be chosen.
func (s *UpgradeSession) Open() bool {
	return !s.finished && s.Player.UpgradePoints > 0
}

// Points returns the points still available.
func (s *UpgradeSession) Points() int { return s.Player.UpgradePoints }

// Apply validates and applies one upgrade. Spending 0 is a cancelled upgrade
// that still counts as a completed choice.
func (s *UpgradeSession) Apply(u Upgrade) (Event, error) {
	if s.finished {
		return Event{}, ErrUpgradesClosed
	}
	gain, ok := upgradeGains[u.Category]
	if !ok {
		return Event{}, ErrInvalidUpgradeChoice
	}
	p := s.Player
	if u.Points < 0 || u.Points > p.UpgradePoints {
		return Event{}, ErrInvalidSpendAmount
	}
	if u.Points == 0 {
		return Event{Kind: EventUpgradeCanceled, Target: p.Name, Category: u.Category}, nil
	}
	delta := gain * u.Points
	switch u.Category {
	case game.UpgradeDamage:
		p.Attack += delta
	case game.UpgradeHealth:
		p.MaxHealth += delta
	case game.UpgradeHealing:
		p.HealAmount += delta
	}
	p.UpgradePoints -= u.Points
	return Event{Kind: EventUpgradeApplied, Target: p.Name, Category: u.Category, Amount: delta}, nil
}

// Finish closes the cycle and restores health to max. Leftover points stay
// with the player. Calling it twice is a no-op.
func (s *UpgradeSession) Finish() []Event {
	if s.finished {
		return nil
	}
	s.finished = true
	s.Player.Health = s.Player.MaxHealth
	return []Event{{Kind: EventHealthRestored, Target: s.Player.Name, Amount: s.Player.MaxHealth}}
}
