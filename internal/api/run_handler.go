package api

import (
	"github.com/daniel-c5656/python-dungeon/internal/config"
	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/daniel-c5656/python-dungeon/internal/storage"
	"github.com/gin-gonic/gin"
)

// RunHandler groups the run HTTP handlers.
type RunHandler struct {
	repo     storage.Repository
	store    *service.Store
	campaign []game.WaveSpec
	presets  config.Presets
}

// NewRunHandler wires the handlers to the run history repository, the
// in-memory session store and the configured campaign.
func NewRunHandler(repo storage.Repository, store *service.Store, cfg *config.LoadedConfig) *RunHandler {
	return &RunHandler{repo: repo, store: store, campaign: cfg.Campaign, presets: cfg.Presets}
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *RunHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(constants.RouteHealth, Health)

	api := r.Group(constants.RouteAPIPrefix)
	api.GET(constants.RouteVersion, Version)
	api.POST(constants.RouteRuns, h.CreateRun)
	api.GET(constants.RouteRunByID, h.GetRun)
	api.POST(constants.RouteRunAction, h.SubmitAction)
	api.POST(constants.RouteRunUpgrade, h.SubmitUpgrade)
	api.POST(constants.RouteRunUpgradeEnd, h.FinishUpgrades)
	api.GET(constants.RouteHistory, h.ListHistory)
	api.GET(constants.RouteStats, h.GetStats)
	return r
}

// EnemyJSON is a roster entry as clients see it; Number is 1-based.
type EnemyJSON struct {
	Number  int          `json:"number"`
	Name    string       `json:"name"`
	Variant game.Variant `json:"variant"`
	Health  int          `json:"health"`
}

// RunView is the response body for every run endpoint.
type RunView struct {
	ID           string                 `json:"id"`
	Mode         game.Mode              `json:"mode"`
	Seed         int64                  `json:"seed"`
	Phase        game.RunPhase          `json:"phase"`
	Outcome      game.Outcome           `json:"outcome,omitempty"`
	Wave         int                    `json:"wave"`
	WavesTotal   int                    `json:"waves_total"`
	WavesCleared int                    `json:"waves_cleared"`
	Turns        int                    `json:"turns"`
	Player       game.Player            `json:"player"`
	Enemies      []EnemyJSON            `json:"enemies"`
	Upgrade      *service.UpgradePrompt `json:"upgrade,omitempty"`
	Events       []engine.Event         `json:"events,omitempty"`
}

// newRunView renders r. Roster events are dropped; the roster is in Enemies.
func newRunView(r *service.Run, events []engine.Event) RunView {
	v := RunView{
		ID:           r.ID,
		Mode:         r.Mode,
		Seed:         r.Seed,
		Phase:        r.Phase(),
		Outcome:      r.Outcome,
		Wave:         r.CurrentWave().Number,
		WavesTotal:   len(r.Campaign),
		WavesCleared: r.WavesCleared,
		Turns:        r.Turns,
		Player:       *r.Player,
		Enemies:      []EnemyJSON{},
	}
	if v.Phase == game.PhaseCombat {
		for _, e := range r.Wave.Snapshot().Enemies {
			v.Enemies = append(v.Enemies, EnemyJSON{Number: e.Index + 1, Name: e.Name, Variant: e.Variant, Health: e.Health})
		}
	}
	if v.Phase == game.PhaseUpgrade {
		p := service.NewUpgradePrompt(r)
		v.Upgrade = &p
	}
	for _, ev := range events {
		if ev.Kind == engine.EventRoster {
			continue
		}
		v.Events = append(v.Events, ev)
	}
	return v
}
