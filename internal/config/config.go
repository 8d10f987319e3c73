// Package config loads blackjack.hcl.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/simulator"
)

// DefaultFile is the config file the CLI looks for.
const DefaultFile = "blackjack.hcl"

// Config is the complete configuration.
type Config struct {
	Rules    RulesConfig
	Log      LogConfig
	Simulate SimulateConfig
}

// RulesConfig holds table rules.
type RulesConfig struct {
	DealerMode string `hcl:"dealer_mode,optional"`
}

// LogConfig controls logging. An empty File logs to stderr.
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DefaultStake is the bot stake when none is configured.
const DefaultStake = 10

// SimulateConfig holds defaults for the simulate command.
type SimulateConfig struct {
	Rounds   int
	Players  int
	Stake    float64
	Strategy string
	StandOn  int
	Workers  int   // 0 means one per CPU
	Seed     int64 // 0 means time-based
}

// simulateBlock is the decoded simulate block. Stake is a pointer because
// zero is a valid stake and must not be replaced by the default.
type simulateBlock struct {
	Rounds   int      `hcl:"rounds,optional"`
	Players  int      `hcl:"players,optional"`
	Stake    *float64 `hcl:"stake,optional"`
	Strategy string   `hcl:"strategy,optional"`
	StandOn  int      `hcl:"stand_on,optional"`
	Workers  int      `hcl:"workers,optional"`
	Seed     int64    `hcl:"seed,optional"`
}

// file mirrors Config with every block optional.
type file struct {
	Rules    *RulesConfig   `hcl:"rules,block"`
	Log      *LogConfig     `hcl:"log,block"`
	Simulate *simulateBlock `hcl:"simulate,block"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{Simulate: SimulateConfig{Stake: DefaultStake}}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills in defaults for missing values.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c := &Config{Simulate: SimulateConfig{Stake: DefaultStake}}
	if raw.Rules != nil {
		c.Rules = *raw.Rules
	}
	if raw.Log != nil {
		c.Log = *raw.Log
	}
	if b := raw.Simulate; b != nil {
		c.Simulate = SimulateConfig{
			Rounds:   b.Rounds,
			Players:  b.Players,
			Stake:    DefaultStake,
			Strategy: b.Strategy,
			StandOn:  b.StandOn,
			Workers:  b.Workers,
			Seed:     b.Seed,
		}
		if b.Stake != nil {
			c.Simulate.Stake = *b.Stake
		}
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Rules.DealerMode == "" {
		c.Rules.DealerMode = game.Soft17.String()
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}

	s := &c.Simulate
	if s.Rounds == 0 {
		s.Rounds = 10000
	}
	if s.Players == 0 {
		s.Players = 3
	}
	if s.Strategy == "" {
		s.Strategy = bot.StrategyThreshold
	}
	if s.StandOn == 0 {
		s.StandOn = game.DealerStandOn
	}
}

// Validate checks modes, levels, strategies and ranges.
func (c *Config) Validate() error {
	if _, err := c.DealerMode(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	s := c.Simulate
	if s.Rounds < 1 {
		return fmt.Errorf("simulate.rounds must be positive, got %d", s.Rounds)
	}
	if s.Players < 1 || s.Players > simulator.MaxPlayers {
		return fmt.Errorf("simulate.players must be between 1 and %d, got %d", simulator.MaxPlayers, s.Players)
	}
	if s.Stake < 0 {
		return fmt.Errorf("simulate.stake must not be negative, got %v", s.Stake)
	}
	if !slices.Contains(bot.Strategies, s.Strategy) {
		return fmt.Errorf("simulate.strategy %q is not one of %v", s.Strategy, bot.Strategies)
	}
	if s.StandOn < 2 || s.StandOn > game.MaxScore {
		return fmt.Errorf("simulate.stand_on must be between 2 and %d, got %d", game.MaxScore, s.StandOn)
	}
	if s.Workers < 0 {
		return fmt.Errorf("simulate.workers must not be negative, got %d", s.Workers)
	}
	return nil
}

// DealerMode parses rules.dealer_mode.
func (c *Config) DealerMode() (game.DealerMode, error) {
	return game.ParseDealerMode(c.Rules.DealerMode)
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// BotConfig returns the simulate bot settings.
func (c *Config) BotConfig(logger *log.Logger) bot.Config {
	return bot.Config{
		Strategy: c.Simulate.Strategy,
		StandOn:  c.Simulate.StandOn,
		Logger:   logger,
	}
}
