package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"

	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
)

// PlayCmd plays one round with the players at the terminal.
type PlayCmd struct {
	Seed       int64  `help:"Deck seed, 0 picks one from the clock" env:"BLACKJACK_SEED"`
	DealerMode string `help:"How the dealer counts aces: soft17 or hard17 (overrides config)" env:"BLACKJACK_DEALER_MODE"`
	NoColor    bool   `help:"Disable colours" env:"BLACKJACK_NO_COLOR"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if c.DealerMode != "" {
		cfg.Rules.DealerMode = c.DealerMode
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	mode, err := cfg.DealerMode()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signalContext()
	defer stop()

	var opts []console.PrinterOption
	if c.NoColor {
		opts = append(opts, console.WithColorProfile(termenv.Ascii))
	}
	printer := console.NewPrinter(os.Stdout, opts...)
	prompter := console.NewPrompter(os.Stdin, os.Stdout, logger)

	printer.Title("Blackjack")
	entries, err := prompter.CollectPlayers(ctx)
	if err != nil {
		return fmt.Errorf("collect players: %w", err)
	}

	seed := randutil.Seed(c.Seed)
	session := gameid.Generate()
	logger.Info("Starting round", "session", session, "seed", seed, "players", len(entries), "dealer_mode", mode)

	round := game.NewRound(randutil.New(seed), entries, prompter,
		game.WithDealerMode(mode),
		game.WithLogger(logger),
		game.WithReporter(printer),
		game.WithSessionID(session),
	)
	result, err := round.Play(ctx)
	if err != nil {
		return fmt.Errorf("round %s: %w", session, err)
	}

	printer.Summary(result)
	return nil
}
