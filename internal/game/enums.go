package game

// Variant identifies an enemy type. The set is closed.
type Variant string

const (
	VariantBeetle   Variant = "beetle"
	VariantSpider   Variant = "spider"
	VariantWasp     Variant = "wasp"
	VariantMosquito Variant = "mosquito"
	VariantGeneric  Variant = "generic"
)

// WaveState is the lifecycle of one wave. Cleared and PlayerDefeated are terminal.
type WaveState string

const (
	WaveActive         WaveState = "active"
	WaveCleared        WaveState = "cleared"
	WavePlayerDefeated WaveState = "player_defeated"
)

// RunPhase tells a front-end which decision the run is waiting for.
type RunPhase string

const (
	PhaseCombat   RunPhase = "combat"
	PhaseUpgrade  RunPhase = "upgrade"
	PhaseFinished RunPhase = "finished"
)

// Outcome is the terminal result of a run.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// Mode selects how the player is constructed.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeGodMode  Mode = "god_mode"
)

// UpgradeCategory is a stat that upgrade points can be spent on.
type UpgradeCategory string

const (
	UpgradeDamage  UpgradeCategory = "damage"
	UpgradeHealth  UpgradeCategory = "health"
	UpgradeHealing UpgradeCategory = "healing"
)
