package config

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HOKM_SIMULATIONS=200.
const EnvPrefix = "HOKM"

// Playout leader modes for Monte-Carlo continuations.
const (
	// PlayoutLeaderFixed starts every continuation trick at seat 0.
	PlayoutLeaderFixed = "fixed"
	// PlayoutLeaderWinner lets the previous trick's winner lead.
	PlayoutLeaderWinner = "winner"
)

type GameConfig struct {
	TargetTricks int `mapstructure:"target_tricks"`
	// HumanSeat is the 0-based seat driven from outside the engine, -1 for none.
	HumanSeat int    `mapstructure:"human_seat"`
	BotLevel  string `mapstructure:"bot_level"`
	// Simulations is the Monte-Carlo playout count per candidate card.
	Simulations int `mapstructure:"simulations"`
	Workers     int `mapstructure:"workers"`
	// MaxClonesPerDecision caps candidates x simulations for a single decision.
	MaxClonesPerDecision  int    `mapstructure:"max_clones_per_decision"`
	DecisionTimeoutMillis int    `mapstructure:"decision_timeout_ms"`
	PlayoutLeader         string `mapstructure:"playout_leader"`
	// Seed drives shuffles and playouts. Zero seeds from the clock.
	Seed     int64  `mapstructure:"seed"`
	Rounds   int    `mapstructure:"rounds"`
	LogLevel string `mapstructure:"log_level"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the configuration used when no file is given.
func Default() GameConfig {
	return GameConfig{
		TargetTricks:         7,
		HumanSeat:            0,
		BotLevel:             "montecarlo",
		Simulations:          50,
		Workers:              runtime.GOMAXPROCS(0),
		MaxClonesPerDecision: 20000,
		PlayoutLeader:        PlayoutLeaderFixed,
		Rounds:               100,
		LogLevel:             "info",
	}
}

// DecisionTimeout converts the configured timeout; zero means no deadline.
func (c GameConfig) DecisionTimeout() time.Duration {
	return time.Duration(c.DecisionTimeoutMillis) * time.Millisecond
}

// Validate rejects values the engine cannot run with.
func (c GameConfig) Validate() error {
	if c.TargetTricks < 1 || c.TargetTricks > 13 {
		return fmt.Errorf("target_tricks must be within 1..13, got %d", c.TargetTricks)
	}
	if c.HumanSeat < -1 || c.HumanSeat > 3 {
		return fmt.Errorf("human_seat must be within -1..3, got %d", c.HumanSeat)
	}
	if c.Simulations < 0 {
		return fmt.Errorf("simulations must not be negative, got %d", c.Simulations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.MaxClonesPerDecision < 0 {
		return fmt.Errorf("max_clones_per_decision must not be negative, got %d", c.MaxClonesPerDecision)
	}
	switch c.PlayoutLeader {
	case PlayoutLeaderFixed, PlayoutLeaderWinner:
	default:
		return fmt.Errorf("unknown playout_leader %q", c.PlayoutLeader)
	}
	return nil
}

// Read builds a configuration from defaults, an optional JSON file and
// HOKM_* environment variables, in increasing precedence.
func Read(path string) (GameConfig, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("target_tricks", def.TargetTricks)
	v.SetDefault("human_seat", def.HumanSeat)
	v.SetDefault("bot_level", def.BotLevel)
	v.SetDefault("simulations", def.Simulations)
	v.SetDefault("workers", def.Workers)
	v.SetDefault("max_clones_per_decision", def.MaxClonesPerDecision)
	v.SetDefault("decision_timeout_ms", def.DecisionTimeoutMillis)
	v.SetDefault("playout_leader", def.PlayoutLeader)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("rounds", def.Rounds)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return GameConfig{}, fmt.Errorf("failed to read game config: %w", err)
		}
	}

	var c GameConfig
	if err := v.Unmarshal(&c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config: %w", err)
	}
	return c, nil
}

// LoadGameConfig loads the process-wide game configuration from the given path.
// Only the first call has any effect.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := Read(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or the defaults if none was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
