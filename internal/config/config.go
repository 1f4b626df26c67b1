package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/daniel-c5656/python-dungeon/internal/constants"
	"github.com/daniel-c5656/python-dungeon/internal/game"
	"gopkg.in/yaml.v3"
)

type serverSection struct {
	Address     string `yaml:"address"`
	SessionIdle string `yaml:"session_idle"`
}

type databaseSection struct {
	Path string `yaml:"path"`
}

type loggingSection struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type playerSection struct {
	Standard *game.PlayerPreset `yaml:"standard"`
	GodMode  *game.PlayerPreset `yaml:"god_mode"`
}

type rawConfig struct {
	Server   serverSection   `yaml:"server"`
	Database databaseSection `yaml:"database"`
	Logging  loggingSection  `yaml:"logging"`
	Players  playerSection   `yaml:"players"`
	Campaign []game.WaveSpec `yaml:"campaign"`
}

// Presets holds the starting stats for each mode.
type Presets struct {
	Standard game.PlayerPreset
	GodMode  game.PlayerPreset
}

// For returns the preset that applies to mode.
func (p Presets) For(mode game.Mode) game.PlayerPreset {
	if mode == game.ModeGodMode {
		return p.GodMode
	}
	return p.Standard
}

// LoadedConfig is the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress string
	SessionIdle   time.Duration
	DatabasePath  string
	LogLevel      string
	LogFile       string
	Presets       Presets
	Campaign      []game.WaveSpec
}

const defaultSessionIdle = 30 * time.Minute

// Default returns the built-in configuration.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: constants.DefaultAddr,
		SessionIdle:   defaultSessionIdle,
		DatabasePath:  constants.DefaultDBPath,
		LogLevel:      "info",
		LogFile:       constants.DefaultLogFile,
		Presets:       Presets{Standard: game.StandardPreset, GodMode: game.GodModePreset},
		Campaign:      game.DefaultCampaign(),
	}
}

// Load reads the file named by DUNGEON_CONFIG (or the default path) and
// applies DUNGEON_DB and DUNGEON_ADDR on top.
func Load() (*LoadedConfig, error) {
	path := os.Getenv(constants.EnvConfigPath)
	if path == "" {
		path = constants.DefaultConfigPath
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *LoadedConfig) {
	if v := strings.TrimSpace(os.Getenv(constants.EnvDBPath)); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.EnvAddr)); v != "" {
		cfg.ServerAddress = v
	}
	if v := strings.TrimSpace(os.Getenv(constants.EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
}

// LoadConfig reads the YAML file at path. A missing file yields the
// built-in defaults; every other read or parse failure is an error.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document. Omitted sections keep their
// defaults.
func Parse(b []byte) (*LoadedConfig, error) {
	var rc rawConfig
	if err := yaml.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	cfg := Default()
	if rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.Server.SessionIdle != "" {
		d, err := time.ParseDuration(rc.Server.SessionIdle)
		if err != nil {
			return nil, fmt.Errorf("server.session_idle: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("server.session_idle must be positive, got %s", d)
		}
		cfg.SessionIdle = d
	}
	if rc.Database.Path != "" {
		cfg.DatabasePath = rc.Database.Path
	}
	if rc.Logging.Level != "" {
		cfg.LogLevel = strings.ToLower(rc.Logging.Level)
	}
	if rc.Logging.File != "" {
		cfg.LogFile = rc.Logging.File
	}

	if rc.Players.Standard != nil {
		if err := validatePreset("players.standard", *rc.Players.Standard); err != nil {
			return nil, err
		}
		cfg.Presets.Standard = *rc.Players.Standard
	}
	if rc.Players.GodMode != nil {
		if err := validatePreset("players.god_mode", *rc.Players.GodMode); err != nil {
			return nil, err
		}
		cfg.Presets.GodMode = *rc.Players.GodMode
	}

	if rc.Campaign != nil {
		if err := ValidateCampaign(rc.Campaign); err != nil {
			return nil, err
		}
		cfg.Campaign = game.NumberCampaign(rc.Campaign)
	}
	return cfg, nil
}

func validatePreset(field string, p game.PlayerPreset) error {
	if p.Health <= 0 || p.Attack <= 0 || p.Heal <= 0 {
		return fmt.Errorf("%s: health, attack and heal must be positive", field)
	}
	return nil
}

// ValidateCampaign rejects empty campaigns, negative counts and empty waves.
func ValidateCampaign(waves []game.WaveSpec) error {
	if len(waves) == 0 {
		return errors.New("campaign is empty")
	}
	for i, w := range waves {
		if w.Beetles < 0 || w.Spiders < 0 || w.Wasps < 0 || w.Mosquitos < 0 {
			return fmt.Errorf("campaign wave %d: enemy counts must not be negative", i+1)
		}
		if w.Size() == 0 {
			return fmt.Errorf("campaign wave %d: needs at least one enemy", i+1)
		}
	}
	return nil
}
