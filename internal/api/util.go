package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/engine"
	"github.com/daniel-c5656/python-dungeon/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func isValidRunID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (CreatedAt, UpdatedAt, DeletedAt) to snake_case keys.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for from, to := range map[string]string{
			"CreatedAt": "created_at",
			"UpdatedAt": "updated_at",
			"DeletedAt": "deleted_at",
			"ID":        "id",
		} {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

// MarshalIntoSnakeTimestamps marshals v into JSON, decodes it back into a
// generic value and renames the embedded gorm.Model keys to snake_case.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}

// abortWithRunError maps service and engine errors to a status and a fixed
// message.
func abortWithRunError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, constants.ErrFailedStoreAction
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		status, msg = http.StatusNotFound, constants.ErrRunNotFound
	case errors.Is(err, service.ErrRunFinished):
		status, msg = http.StatusConflict, constants.ErrRunFinished
	case errors.Is(err, service.ErrNotInCombat):
		status, msg = http.StatusConflict, constants.ErrNotInCombat
	case errors.Is(err, service.ErrNotUpgrading):
		status, msg = http.StatusConflict, constants.ErrNotUpgrading
	case errors.Is(err, engine.ErrInvalidTarget):
		status, msg = http.StatusUnprocessableEntity, constants.ErrInvalidTarget
	case errors.Is(err, engine.ErrInvalidAction):
		status, msg = http.StatusBadRequest, constants.ErrInvalidAction
	case errors.Is(err, engine.ErrInvalidUpgradeChoice):
		status, msg = http.StatusBadRequest, constants.ErrInvalidUpgrade
	case errors.Is(err, engine.ErrInvalidSpendAmount):
		status, msg = http.StatusUnprocessableEntity, constants.ErrInvalidSpend
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}
