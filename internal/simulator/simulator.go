package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/gameid"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// MaxPlayers is the largest table the 52-card deck serves without running
// out in practice.
const MaxPlayers = 7

// Config holds configuration for running simulations
type Config struct {
	Rounds     int
	Players    int
	Stake      float64
	Bot        bot.Config
	DealerMode game.DealerMode
	Seed       int64 // round i is seeded with Seed+i
	Workers    int   // 0 means GOMAXPROCS
	Progress   time.Duration
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Simulator plays many independent rounds with bot players.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Report is the outcome of a simulation run.
type Report struct {
	ID      string
	Config  Config
	Stats   *statistics.Statistics
	Elapsed time.Duration
}

// Run plays every round and aggregates the results. Each round owns its RNG,
// deck and bots, so the aggregate only depends on the seed.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Players <= 0 || cfg.Players > MaxPlayers {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", MaxPlayers, cfg.Players)
	}

	id := gameid.GenerateWithRandSource(randutil.New(cfg.Seed))
	logger := cfg.Logger.With("simulation", id)
	logger.Info("Starting simulation", "rounds", cfg.Rounds, "players", cfg.Players, "strategy", cfg.Bot.Strategy, "workers", cfg.Workers, "seed", cfg.Seed)

	start := cfg.Clock.Now()
	var completed atomic.Int64

	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	if cfg.Progress > 0 {
		cfg.Clock.TickerFunc(progressCtx, cfg.Progress, func() error {
			logger.Info("Simulation progress", "completed", completed.Load(), "rounds", cfg.Rounds)
			return nil
		}, "simulator", "progress")
	}

	// Rounds are split into contiguous blocks, each aggregated on its own and
	// merged in block order, so the result does not depend on scheduling.
	blocks := blockBounds(cfg.Rounds, cfg.Workers*blocksPerWorker)
	partials := make([]*statistics.Statistics, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for b, bounds := range blocks {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := bounds[0]; i < bounds[1]; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				seed := cfg.Seed + int64(i)
				result, err := s.playRound(gctx, seed)
				if err != nil {
					return fmt.Errorf("round %d (seed %d): %w", i, seed, err)
				}
				stats.AddRound(result, seed)
				completed.Add(1)
			}
			partials[b] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stopProgress()

	stats := &statistics.Statistics{}
	for _, p := range partials {
		stats.Merge(p)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{
		ID:      id,
		Config:  cfg,
		Stats:   stats,
		Elapsed: cfg.Clock.Since(start),
	}
	logger.Info("Simulation complete", "hands", stats.Hands, "mean", stats.Mean(), "elapsed", report.Elapsed)
	return report, nil
}

// blocksPerWorker keeps workers busy when block costs vary.
const blocksPerWorker = 4

// blockBounds splits [0, n) into at most parts contiguous half-open ranges.
func blockBounds(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	bounds := make([][2]int, 0, parts)
	for b := range parts {
		bounds = append(bounds, [2]int{b * n / parts, (b + 1) * n / parts})
	}
	return bounds
}

// playRound plays a single seeded round with one bot per seat.
func (s *Simulator) playRound(ctx context.Context, seed int64) (*game.RoundResult, error) {
	rng := randutil.New(seed)

	decider, err := bot.New(s.config.Bot, rng)
	if err != nil {
		return nil, err
	}

	entries := make([]game.PlayerEntry, s.config.Players)
	for i := range entries {
		entries[i] = game.PlayerEntry{Name: fmt.Sprintf("bot-%d", i+1), Stake: s.config.Stake}
	}

	round := game.NewRound(rng, entries, decider,
		game.WithDealerMode(s.config.DealerMode),
		game.WithSessionID(fmt.Sprintf("seed-%d", seed)),
	)
	return round.Play(ctx)
}
