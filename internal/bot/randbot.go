package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// RandBot flips a coin for every decision.
type RandBot struct {
	rng    randutil.Source
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng randutil.Source, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

// ShouldDraw implements game.Decider.
func (r *RandBot) ShouldDraw(_ context.Context, view game.PlayerView) (bool, error) {
	draw := r.rng.IntN(2) == 1
	if r.logger != nil {
		r.logger.Debug("rand-bot decision", "player", view.Name, "score", view.Score, "draw", draw)
	}
	return draw, nil
}
