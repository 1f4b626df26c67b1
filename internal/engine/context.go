package engine

import "github.com/daniel-c5656/python-dungeon/internal/game"

// EventKind names something that happened during resolution. Front-ends
// turn events into text; the engine never formats messages.
type EventKind string

const (
	EventRoster          EventKind = "roster"
	EventCritical        EventKind = "critical"
	EventEnemyDamaged    EventKind = "enemy_damaged"
	EventEnemyEliminated EventKind = "enemy_eliminated"
	EventEnemyAttack     EventKind = "enemy_attack"
	EventPlayerDamaged   EventKind = "player_damaged"
	EventPlayerDodged    EventKind = "player_dodged"
	EventPlayerHealed    EventKind = "player_healed"
	EventArmorApplied    EventKind = "armor_applied"
	EventSpiderHealAll   EventKind = "spider_heal_all"
	EventDistracted      EventKind = "distracted"
	EventPoisonApplied   EventKind = "poison_applied"
	EventPoisonTick      EventKind = "poison_tick"
	EventPoisonCured     EventKind = "poison_cured"
	EventPoisonWornOff   EventKind = "poison_worn_off"
	EventWaveCleared     EventKind = "wave_cleared"
	EventPlayerDefeated  EventKind = "player_defeated"
	EventPointsGranted   EventKind = "points_granted"
	EventUpgradeApplied  EventKind = "upgrade_applied"
	EventUpgradeCanceled EventKind = "upgrade_cancelled"
	EventHealthRestored  EventKind = "health_restored"
	EventInvalidTarget   EventKind = "invalid_target"
	EventInvalidUpgrade  EventKind = "invalid_upgrade"
	EventInvalidSpend    EventKind = "invalid_spend"
	EventWaveStarted     EventKind = "wave_started"
	EventVictory         EventKind = "victory"
	EventDefeat          EventKind = "defeat"
)

// Event is a single structured announcement.
type Event struct {
	Kind     EventKind            `json:"kind"`
	Actor    string               `json:"actor,omitempty"`
	Variant  game.Variant         `json:"variant,omitempty"`
	Target   string               `json:"target,omitempty"`
	Amount   int                  `json:"amount,omitempty"`
	Category game.UpgradeCategory `json:"category,omitempty"`
	Wave     int                  `json:"wave,omitempty"`
	Snapshot *RosterSnapshot      `json:"snapshot,omitempty"`
}

// --- Turn context -------------------------------------------------------
type turnContext struct {
	rng    Rand
	events []Event
}

func newTurnContext(rng Rand) *turnContext {
	return &turnContext{rng: rng, events: make([]Event, 0, 16)}
}

func (tc *turnContext) add(ev Event) { tc.events = append(tc.events, ev) }
