// Package bot provides automatic draw deciders used by the simulator.
package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Strategy names accepted by New.
const (
	StrategyThreshold = "threshold"
	StrategyRandom    = "random"
	StrategyNever     = "never"
)

// Strategies lists every strategy New understands.
var Strategies = []string{StrategyThreshold, StrategyRandom, StrategyNever}

// Config selects and tunes a strategy.
type Config struct {
	Strategy string
	StandOn  int // threshold: stop drawing at this score or above
	Logger   *log.Logger
}

// New builds the decider named by cfg.Strategy. rng is only used by
// strategies that need randomness but is always required so callers don't
// have to know which ones do.
func New(cfg Config, rng randutil.Source) (game.Decider, error) {
	if rng == nil {
		return nil, fmt.Errorf("rng is required")
	}

	switch strings.ToLower(cfg.Strategy) {
	case StrategyThreshold, "":
		standOn := cfg.StandOn
		if standOn == 0 {
			standOn = game.DealerStandOn
		}
		if standOn < 2 || standOn > game.MaxScore {
			return nil, fmt.Errorf("stand-on score %d out of range 2..%d", standOn, game.MaxScore)
		}
		return NewThresholdBot(standOn, cfg.Logger), nil
	case StrategyRandom:
		return NewRandBot(rng, cfg.Logger), nil
	case StrategyNever:
		return NeverBot{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", cfg.Strategy, strings.Join(Strategies, ", "))
	}
}

// NeverBot stands on whatever it was dealt.
type NeverBot struct{}

// ShouldDraw implements game.Decider.
func (NeverBot) ShouldDraw(context.Context, game.PlayerView) (bool, error) {
	return false, nil
}
