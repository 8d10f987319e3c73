package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
)

// ThresholdBot draws while its score is below StandOn, the same fixed rule
// the dealer plays, but with the player's soft-ace scoring.
type ThresholdBot struct {
	StandOn int
	logger  *log.Logger
}

// NewThresholdBot creates a ThresholdBot. A nil logger is allowed.
func NewThresholdBot(standOn int, logger *log.Logger) *ThresholdBot {
	return &ThresholdBot{StandOn: standOn, logger: logger}
}

// ShouldDraw implements game.Decider.
func (b *ThresholdBot) ShouldDraw(_ context.Context, view game.PlayerView) (bool, error) {
	draw := view.Score < b.StandOn
	if b.logger != nil {
		b.logger.Debug("threshold-bot decision", "player", view.Name, "score", view.Score, "standOn", b.StandOn, "draw", draw)
	}
	return draw, nil
}
