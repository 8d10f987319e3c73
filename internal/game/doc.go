// Package game implements the rules of a single blackjack round.
//
// The main type is Round, which deals from a weighted deck, offers cards to
// each player through a Decider, plays the dealer's fixed strategy and pays
// out.
//
// # Basic Usage
//
//	r := game.NewRound(randutil.New(42), []game.PlayerEntry{
//	    {Name: "Alice", Stake: 10},
//	    {Name: "Bob", Stake: 5},
//	}, decider, game.WithReporter(printer))
//	result, err := r.Play(ctx)
//
// # Scoring
//
// Players and the dealer count aces differently. A player holds the first
// ace as a soft ace that is valued 11 or 1 whenever the score is read, and
// every further ace counts 1 (DynamicSoftAce). The dealer values each ace
// when it is drawn, 11 under Soft17 or 1 under Hard17, and never revises
// it (FixedAceMode). The dealer can therefore bust on an ace.
//
// # Deterministic Testing
//
// Seed the RNG with randutil.New, or script every card with WithDrawer:
//
//	r := game.NewRound(randutil.New(0), entries, decider,
//	    game.WithDrawer(game.MustScript("10, 10,10, 6,10")))
package game
