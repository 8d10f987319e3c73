package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

// Round runs a single round of blackjack: deal, player passes, dealer
// auto-play and payout. A Round is single-use and not safe for concurrent
// use.
type Round struct {
	Players []*Player
	Dealer  *Dealer

	drawer    Drawer
	decider   Decider
	reporter  Reporter
	logger    *log.Logger
	sessionID string

	dealt   bool
	settled bool
}

// RoundResult is the final state of a settled round.
type RoundResult struct {
	SessionID   string
	DealerMode  DealerMode
	DealerScore int
	DealerBust  bool
	DealerCards []deck.Value
	Players     []PlayerResult
}

// PlayerResult is one player's final state.
type PlayerResult struct {
	Name    string
	Stake   float64
	Money   float64
	Score   int
	Cards   []deck.Value
	Outcome Outcome
}

// Net returns what the player gained or lost relative to the stake.
func (r PlayerResult) Net() float64 {
	return r.Money - r.Stake
}

// NewRound creates a round for the given players. The RNG is required so
// that every round's randomness is explicit and can be seeded; it feeds the
// standard weighted deck unless WithDrawer replaces it.
//
//	rng := randutil.New(42)
//	r := NewRound(rng, entries, decider, WithDealerMode(Hard17))
//	result, err := r.Play(ctx)
func NewRound(rng randutil.Source, entries []PlayerEntry, decider Decider, opts ...RoundOption) *Round {
	if rng == nil {
		panic("rng is required for round creation")
	}
	if decider == nil {
		panic("decider is required for round creation")
	}
	if len(entries) == 0 {
		panic("at least 1 player required")
	}

	cfg := &roundConfig{dealerMode: Soft17}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.drawer == nil {
		cfg.drawer = deck.NewStandard(rng)
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	if cfg.reporter == nil {
		cfg.reporter = NopReporter{}
	}

	players := make([]*Player, len(entries))
	for i, e := range entries {
		players[i] = NewPlayer(i, e)
	}

	logger := cfg.logger
	if cfg.sessionID != "" {
		logger = logger.With("session", cfg.sessionID)
	}

	return &Round{
		Players:   players,
		Dealer:    NewDealer(cfg.dealerMode),
		drawer:    cfg.drawer,
		decider:   decider,
		reporter:  cfg.reporter,
		logger:    logger,
		sessionID: cfg.sessionID,
	}
}

// Play runs the whole round and returns its result.
func (r *Round) Play(ctx context.Context) (*RoundResult, error) {
	if err := r.Deal(); err != nil {
		return nil, err
	}
	if err := r.PlayPlayers(ctx); err != nil {
		return nil, err
	}
	if err := r.PlayDealer(); err != nil {
		return nil, err
	}
	return r.Settle(), nil
}

// Deal gives the dealer one card and each player two, in seat order.
func (r *Round) Deal() error {
	if r.dealt {
		return fmt.Errorf("round already dealt")
	}
	r.dealt = true

	if err := r.draw(r.Dealer.Hand); err != nil {
		return fmt.Errorf("deal to dealer: %w", err)
	}

	for _, p := range r.Players {
		for range 2 {
			if err := r.draw(p.Hand); err != nil {
				return fmt.Errorf("deal to %s: %w", p.Name, err)
			}
		}

		r.logger.Debug("Dealt starting hand", "player", p.Name, "cards", deck.FormatValues(p.Cards()), "score", p.Score())
		r.reporter.Report(StartingHandEvent{
			Player:    p.Name,
			Cards:     p.Cards(),
			Score:     p.Score(),
			Blackjack: p.IsBlackjack(),
		})
	}

	r.logger.Debug("Dealer shows", "cards", deck.FormatValues(r.Dealer.Cards()))
	return nil
}

// PlayPlayers offers cards to every player still in, pass after pass, until
// a whole pass goes by with no draws. Declining ends that player's turn for
// the round. Busting zeroes the player's money and does not count as a draw.
func (r *Round) PlayPlayers(ctx context.Context) error {
	for pass := 1; ; pass++ {
		drew := false

		for _, p := range r.Players {
			if !p.CanDraw() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			draw, err := r.decider.ShouldDraw(ctx, p.View(r.Dealer.Cards()))
			if err != nil {
				return fmt.Errorf("decision for %s: %w", p.Name, err)
			}
			if !draw {
				p.Stood = true
				r.logger.Debug("Player stands", "player", p.Name, "score", p.Score(), "pass", pass)
				r.reporter.Report(StandEvent{Player: p.Name, Score: p.Score()})
				continue
			}

			v, err := r.drawer.Draw()
			if err != nil {
				return fmt.Errorf("draw for %s: %w", p.Name, err)
			}
			p.AddCard(v)

			if p.Score() > MaxScore {
				lost := p.Money
				p.Money = 0
				p.Outcome = OutcomeBust
				r.logger.Debug("Player busts", "player", p.Name, "card", v, "score", p.Score(), "lost", lost)
				r.reporter.Report(BustEvent{Player: p.Name, Card: v, Score: p.Score(), Lost: lost})
				continue
			}

			drew = true
			r.logger.Debug("Player draws", "player", p.Name, "card", v, "score", p.Score(), "pass", pass)
			r.reporter.Report(DrawEvent{Player: p.Name, Card: v, Score: p.Score()})
		}

		if !drew {
			r.logger.Debug("Player phase complete", "passes", pass)
			return nil
		}
	}
}

// PlayDealer runs the dealer's fixed strategy to completion.
func (r *Round) PlayDealer() error {
	if err := r.Dealer.Play(r.drawer); err != nil {
		return err
	}

	score := r.Dealer.Score()
	r.logger.Debug("Dealer finished", "cards", deck.FormatValues(r.Dealer.Cards()), "score", score, "mode", r.Dealer.Mode)
	if score > MaxScore {
		r.reporter.Report(DealerBustEvent{Cards: r.Dealer.Cards(), Score: score})
	} else {
		r.reporter.Report(DealerStandEvent{Cards: r.Dealer.Cards(), Score: score})
	}
	return nil
}

// Settle pays out every player who did not bust and returns the result.
// A dealer bust doubles survivors' money. Otherwise only a strictly higher
// score pays, at 2.5x; a tie pays nothing, same as a loss.
func (r *Round) Settle() *RoundResult {
	dealerScore := r.Dealer.Score()
	dealerBust := dealerScore > MaxScore

	if !r.settled {
		r.settled = true

		for _, p := range r.Players {
			if p.Score() > MaxScore {
				continue
			}

			amount := p.Money
			switch {
			case dealerBust:
				p.Money *= DealerBustMultiplier
				p.Outcome = OutcomeDealerBust
			case p.Score() > dealerScore:
				p.Money *= WinMultiplier
				p.Outcome = OutcomeWin
			default:
				p.Outcome = OutcomeLoss
			}

			r.logger.Info("Player settled", "player", p.Name, "outcome", p.Outcome, "score", p.Score(), "dealer", dealerScore, "money", p.Money)
			r.reporter.Report(PayoutEvent{
				Player:      p.Name,
				Outcome:     p.Outcome,
				Score:       p.Score(),
				DealerScore: dealerScore,
				Amount:      amount,
				Money:       p.Money,
			})
		}
	}

	result := &RoundResult{
		SessionID:   r.sessionID,
		DealerMode:  r.Dealer.Mode,
		DealerScore: dealerScore,
		DealerBust:  dealerBust,
		DealerCards: r.Dealer.Cards(),
		Players:     make([]PlayerResult, len(r.Players)),
	}
	for i, p := range r.Players {
		result.Players[i] = PlayerResult{
			Name:    p.Name,
			Stake:   p.Stake,
			Money:   p.Money,
			Score:   p.Score(),
			Cards:   p.Cards(),
			Outcome: p.Outcome,
		}
	}
	return result
}

func (r *Round) draw(h *Hand) error {
	v, err := r.drawer.Draw()
	if err != nil {
		return err
	}
	h.AddCard(v)
	return nil
}
