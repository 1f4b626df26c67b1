package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/dedupe"
	"github.com/daniel-c5656/python-dungeon/internal/logging"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/daniel-c5656/python-dungeon/internal/storage"
	"github.com/gin-gonic/gin"
)

// GetRun returns a live run from the session store, or the stored record
// once the session has been swept.
func (h *RunHandler) GetRun(c *gin.Context) {
	id := c.Param(constants.ParamRunID)
	if !isValidRunID(id) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRunID})
		return
	}
	var view RunView
	err := h.store.With(id, func(r *service.Run) error {
		view = newRunView(r, nil)
		return nil
	})
	if err == nil {
		c.JSON(http.StatusOK, view)
		return
	}
	if !errors.Is(err, service.ErrRunNotFound) {
		abortWithRunError(c, err)
		return
	}

	rec, err := h.repo.GetRunRecord(id)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
			return
		}
		logging.Error("failed to load run record", err, logging.Fields{constants.LogFieldRunID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeHistory})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListHistory returns the most recent finished runs. Optional ?limit=N (1-100).
func (h *RunHandler) ListHistory(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	v, err, _ := dedupe.HistoryGroup.Do(fmt.Sprintf("history:%d", limit), func() (interface{}, error) {
		return h.repo.ListRecentRuns(limit)
	})
	if err != nil {
		logging.Error("failed to list run history", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHistory})
		return
	}
	out, err := MarshalIntoSnakeTimestamps(v)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedEncodeHistory})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetStats aggregates all stored runs.
func (h *RunHandler) GetStats(c *gin.Context) {
	v, err, _ := dedupe.StatsGroup.Do("stats", func() (interface{}, error) {
		return h.repo.GetRunStats()
	})
	if err != nil {
		logging.Error("failed to aggregate run stats", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
		return
	}
	c.JSON(http.StatusOK, v)
}
