package constants

// Environment variable keys
const (
	EnvConfigPath = "DUNGEON_CONFIG"
	EnvDBPath     = "DUNGEON_DB"
	EnvAddr       = "DUNGEON_ADDR"
	EnvLogFile    = "DUNGEON_LOG"

	DefaultConfigPath = "./dungeon_config.yaml"
	DefaultDBPath     = "./data/dungeon.db"
	DefaultAddr       = ":8080"
	DefaultLogFile    = "./data/dungeon.log"
)

// Routes used by the server router
const (
	RouteAPIPrefix     = "/api"
	RouteHealth        = "/healthz"
	RouteVersion       = "/version"
	RouteRuns          = "/runs"
	RouteRunByID       = "/runs/:runID"
	RouteRunAction     = "/runs/:runID/action"
	RouteRunUpgrade    = "/runs/:runID/upgrade"
	RouteRunUpgradeEnd = "/runs/:runID/upgrade/finish"
	RouteHistory       = "/history"
	RouteStats         = "/stats"

	ParamRunID = "runID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Error messages returned by the API
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidRunID        = "Invalid run ID"
	ErrRunNotFound         = "Run not found"
	ErrRunFinished         = "Run is already finished"
	ErrNotInCombat         = "Run is not in combat"
	ErrNotUpgrading        = "Run is not choosing upgrades"
	ErrInvalidTarget       = "Target does not resolve to a live enemy"
	ErrInvalidAction       = "Unknown action; use attack or heal"
	ErrInvalidUpgrade      = "Unknown upgrade category; use damage, health or healing"
	ErrInvalidSpend        = "Spend amount must be between 0 and your available points"
	ErrFailedCreateRun     = "Failed to create run"
	ErrFailedStoreAction   = "Failed to resolve action"
	ErrFailedFetchHistory  = "Failed to fetch run history"
	ErrFailedFetchStats    = "Failed to fetch run stats"
	ErrFailedEncodeHistory = "Failed to encode run history"
)

// Logging field names
const (
	LogFieldRunID    = "run_id"
	LogFieldWave     = "wave"
	LogFieldTurn     = "turn"
	LogFieldMode     = "mode"
	LogFieldSeed     = "seed"
	LogFieldOutcome  = "outcome"
	LogFieldPhase    = "phase"
	LogFieldAddr     = "addr"
	LogFieldPath     = "path"
	LogFieldCount    = "count"
	LogFieldCategory = "category"
	LogFieldPoints   = "points"
)
