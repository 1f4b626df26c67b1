package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/gin-gonic/gin"
)

type CreateRunPayload struct {
	GodMode bool  `json:"god_mode"`
	Seed    int64 `json:"seed"`
}

type ActionPayload struct {
	Action string `json:"action"`
	// Target is the 1-based enemy number shown to the player.
	Target int `json:"target"`
}

type UpgradePayload struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
}

// CreateRun starts a run and keeps it in the session store. An empty body
// starts a standard run with a random seed.
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req CreateRunPayload
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	mode := game.ModeStandard
	if req.GodMode {
		mode = game.ModeGodMode
	}
	r, err := service.NewRun(service.RunOptions{
		Mode:     mode,
		Seed:     req.Seed,
		Campaign: h.campaign,
		Presets:  h.presets,
	})
	if err != nil {
		logging.Error("failed to create run", err, logging.Fields{constants.LogFieldMode: mode})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRun})
		return
	}
	h.store.Add(r)
	c.JSON(http.StatusCreated, newRunView(r, []engine.Event{r.Opening()}))
}

// SubmitAction resolves one combat turn.
func (h *RunHandler) SubmitAction(c *gin.Context) {
	id := c.Param(constants.ParamRunID)
	if !isValidRunID(id) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var req ActionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	intent := engine.Intent{Kind: engine.IntentKind(req.Action), Target: req.Target - 1}

	var view RunView
	err := h.store.With(id, func(r *service.Run) error {
		report, err := service.SubmitAction(h.repo, r, intent)
		if err != nil {
			return err
		}
		view = newRunView(r, report.Events)
		return nil
	})
	if err != nil {
		abortWithRunError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitUpgrade spends upgrade points between waves.
func (h *RunHandler) SubmitUpgrade(c *gin.Context) {
	id := c.Param(constants.ParamRunID)
	if !isValidRunID(id) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var req UpgradePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	u := engine.Upgrade{Category: game.UpgradeCategory(req.Category), Points: req.Points}
	h.mutate(c, id, func(r *service.Run) ([]engine.Event, error) {
		return service.SubmitUpgrade(r, u)
	})
}

// FinishUpgrades keeps the remaining points and starts the next wave.
func (h *RunHandler) FinishUpgrades(c *gin.Context) {
	id := c.Param(constants.ParamRunID)
	if !isValidRunID(id) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	h.mutate(c, id, service.FinishUpgrades)
}

func (h *RunHandler) mutate(c *gin.Context, id string, fn func(*service.Run) ([]engine.Event, error)) {
	var view RunView
	err := h.store.With(id, func(r *service.Run) error {
		events, err := fn(r)
		if err != nil {
			return err
		}
		view = newRunView(r, events)
		return nil
	})
	if err != nil {
		abortWithRunError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
