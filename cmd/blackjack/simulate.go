package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays many bot rounds. Zero-valued flags fall back to the
// simulate block of the config file.
type SimulateCmd struct {
	Rounds     int           `help:"Number of rounds" env:"BLACKJACK_ROUNDS"`
	Players    int           `help:"Bots per round" env:"BLACKJACK_PLAYERS"`
	Stake      *float64      `help:"Stake per bot" env:"BLACKJACK_STAKE"`
	Strategy   string        `help:"Bot strategy: threshold, random or never" env:"BLACKJACK_STRATEGY"`
	StandOn    int           `help:"Score at which threshold bots stop drawing" env:"BLACKJACK_STAND_ON"`
	Workers    int           `help:"Parallel workers, 0 uses the config or one per CPU" env:"BLACKJACK_WORKERS"`
	Seed       int64         `help:"Base seed, round i uses seed+i; 0 picks one" env:"BLACKJACK_SEED"`
	DealerMode string        `help:"How the dealer counts aces: soft17 or hard17" env:"BLACKJACK_DEALER_MODE"`
	Progress   time.Duration `help:"Log progress at this interval (0 disables)" default:"0s"`
	Output     string        `help:"Write a JSON report to this file" type:"path"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	c.applyTo(cfg)
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

	s := cfg.Simulate
	sim := simulator.New(simulator.Config{
		Rounds:     s.Rounds,
		Players:    s.Players,
		Stake:      s.Stake,
		Bot:        cfg.BotConfig(logger),
		DealerMode: mode,
		Seed:       randutil.Seed(s.Seed),
		Workers:    s.Workers,
		Progress:   c.Progress,
		Logger:     logger,
	})

	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	renderSummary(os.Stdout, report.Summary())

	if c.Output != "" {
		if err := report.WriteJSON(c.Output); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info("Report written", "path", c.Output)
	}
	return nil
}

// applyTo overrides config values with any flags that were set.
func (c *SimulateCmd) applyTo(cfg *config.Config) {
	s := &cfg.Simulate
	if c.Rounds != 0 {
		s.Rounds = c.Rounds
	}
	if c.Players != 0 {
		s.Players = c.Players
	}
	if c.Stake != nil {
		s.Stake = *c.Stake
	}
	if c.Strategy != "" {
		s.Strategy = c.Strategy
	}
	if c.StandOn != 0 {
		s.StandOn = c.StandOn
	}
	if c.Workers != 0 {
		s.Workers = c.Workers
	}
	if c.Seed != 0 {
		s.Seed = c.Seed
	}
	if c.DealerMode != "" {
		cfg.Rules.DealerMode = c.DealerMode
	}
}

func renderSummary(w io.Writer, s simulator.Summary) {
	pct := func(v float64) string { return strconv.FormatFloat(v*100, 'f', 2, 64) + "%" }
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Row("Simulation", s.ID).
		Row("Rounds", strconv.Itoa(s.Rounds)).
		Row("Hands", strconv.Itoa(s.Hands)).
		Row("Strategy", s.Strategy).
		Row("Dealer", s.DealerMode).
		Row("Seed", strconv.FormatInt(s.Seed, 10)).
		Row("Mean return", num(s.MeanReturn)).
		Row("Std dev", num(s.StdDev)).
		Row("95% CI", fmt.Sprintf("[%s, %s]", num(s.CI95Low), num(s.CI95High))).
		Row("Median", num(s.Median)).
		Row("P5 / P25", num(s.P05)+" / "+num(s.P25)).
		Row("P75 / P95", num(s.P75)+" / "+num(s.P95))

	for _, o := range []game.Outcome{game.OutcomeWin, game.OutcomeDealerBust, game.OutcomeLoss, game.OutcomeBust} {
		t.Row(o.String()+" rate", pct(s.OutcomeRates[o.String()]))
	}
	t.Row("Dealer bust rate", pct(s.DealerBustRate))
	for i, m := range s.SeatMeans {
		t.Row(fmt.Sprintf("Seat %d mean", i+1), num(m))
	}
	t.Row("Elapsed", (time.Duration(s.ElapsedMillis) * time.Millisecond).String())

	fmt.Fprintln(w, t.Render())
}
