package game

import (
	"time"

	"gorm.io/gorm"
)

// Poison is the damage-over-time status carried by the player.
type Poison struct {
	Active        bool `json:"active"`
	DamagePerTurn int  `json:"damage_per_turn"`
	TurnsElapsed  int  `json:"turns_elapsed"`
}

// Player is the persistent character of a run. It survives every wave and
// accumulates upgrades; health is only changed by the engine.
type Player struct {
	Name          string `json:"name"`
	Health        int    `json:"health"`
	MaxHealth     int    `json:"max_health"`
	Attack        int    `json:"attack"`
	HealAmount    int    `json:"heal_amount"`
	UpgradePoints int    `json:"upgrade_points"`
	// Dodged reports whether the last incoming attack missed. Poison
	// infliction reads it in the same turn.
	Dodged bool   `json:"dodged"`
	Poison Poison `json:"poison"`
}

// Enemy is a single roster member, created fresh for each wave.
type Enemy struct {
	Name    string  `json:"name"`
	Variant Variant `json:"variant"`
	Health  int     `json:"health"`
	Attack  int     `json:"attack"`
}

// Alive reports whether the enemy still belongs on a roster.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// PlayerPreset holds the starting stats of a player.
type PlayerPreset struct {
	Health int `json:"health" yaml:"health"`
	Attack int `json:"attack" yaml:"attack"`
	Heal   int `json:"heal" yaml:"heal"`
}

var (
	StandardPreset = PlayerPreset{Health: 120, Attack: 25, Heal: 35}
	GodModePreset  = PlayerPreset{Health: 69420, Attack: 69420, Heal: 69420}
)

// NewPlayer builds a fresh player from a preset.
func NewPlayer(p PlayerPreset) *Player {
	return &Player{
		Name:       "You",
		Health:     p.Health,
		MaxHealth:  p.Health,
		Attack:     p.Attack,
		HealAmount: p.Heal,
	}
}

// WaveSpec describes one wave of the campaign by enemy counts.
type WaveSpec struct {
	Number    int  `json:"number" yaml:"-"`
	Beetles   int  `json:"beetles" yaml:"beetles"`
	Spiders   int  `json:"spiders" yaml:"spiders"`
	Wasps     int  `json:"wasps" yaml:"wasps"`
	Mosquitos int  `json:"mosquitos" yaml:"mosquitos"`
	Final     bool `json:"final" yaml:"-"`
}

// Size returns the number of enemies the wave starts with.
func (w WaveSpec) Size() int { return w.Beetles + w.Spiders + w.Wasps + w.Mosquitos }

// DefaultCampaign returns the six waves of the dungeon, the last one flagged final.
func DefaultCampaign() []WaveSpec {
	return NumberCampaign([]WaveSpec{
		{Beetles: 2},
		{Beetles: 1, Spiders: 2},
		{Spiders: 2, Wasps: 1},
		{Beetles: 1, Spiders: 2, Wasps: 2},
		{Beetles: 2, Spiders: 1, Wasps: 3},
		{Mosquitos: 1},
	})
}

// NumberCampaign assigns wave numbers starting at 1 and flags the last wave final.
func NumberCampaign(waves []WaveSpec) []WaveSpec {
	out := make([]WaveSpec, len(waves))
	for i, w := range waves {
		w.Number = i + 1
		w.Final = i == len(waves)-1
		out[i] = w
	}
	return out
}

// RunRecord is the stored summary of a finished run.
type RunRecord struct {
	gorm.Model
	RunID        string    `json:"run_id" gorm:"uniqueIndex;size:36"`
	Mode         Mode      `json:"mode" gorm:"index"`
	Seed         int64     `json:"seed"`
	Outcome      Outcome   `json:"outcome" gorm:"index"`
	WavesCleared int       `json:"waves_cleared"`
	Turns        int       `json:"turns"`
	FinalHealth  int       `json:"final_health"`
	MaxHealth    int       `json:"max_health"`
	Attack       int       `json:"attack"`
	HealAmount   int       `json:"heal_amount"`
	FinishedAt   time.Time `json:"finished_at"`
}

// TableName keeps the table name explicit.
func (RunRecord) TableName() string { return "run_records" }

// RunStats aggregates stored run records.
type RunStats struct {
	Runs             int64 `json:"runs"`
	Victories        int64 `json:"victories"`
	Defeats          int64 `json:"defeats"`
	GodModeRuns      int64 `json:"god_mode_runs"`
	BestWavesCleared int   `json:"best_waves_cleared"`
}
