package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

// roundConfig holds everything NewRound needs beyond the required arguments.
type roundConfig struct {
	drawer     Drawer // If nil, a standard weighted deck built from the RNG
	dealerMode DealerMode
	logger     *log.Logger
	reporter   Reporter
	sessionID  string
}

// WithDrawer replaces the deck. Tests use it to script exact card sequences.
func WithDrawer(d Drawer) RoundOption {
	return func(c *roundConfig) {
		c.drawer = d
	}
}

// WithDealerMode sets how the dealer counts aces. Default is Soft17.
func WithDealerMode(mode DealerMode) RoundOption {
	return func(c *roundConfig) {
		c.dealerMode = mode
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) {
		c.logger = logger
	}
}

// WithReporter sets where status events go. Default is NopReporter.
func WithReporter(r Reporter) RoundOption {
	return func(c *roundConfig) {
		c.reporter = r
	}
}

// WithSessionID tags the round's logs and result.
func WithSessionID(id string) RoundOption {
	return func(c *roundConfig) {
		c.sessionID = id
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
