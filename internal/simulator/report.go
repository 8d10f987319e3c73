package simulator

import (
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// Summary is the JSON shape of a report.
type Summary struct {
	ID             string             `json:"id"`
	Rounds         int                `json:"rounds"`
	Players        int                `json:"players"`
	Hands          int                `json:"hands"`
	Stake          float64            `json:"stake"`
	Strategy       string             `json:"strategy"`
	StandOn        int                `json:"stand_on,omitempty"`
	DealerMode     string             `json:"dealer_mode"`
	Seed           int64              `json:"seed"`
	MeanReturn     float64            `json:"mean_return"`
	StdDev         float64            `json:"std_dev"`
	CI95Low        float64            `json:"ci95_low"`
	CI95High       float64            `json:"ci95_high"`
	Median         float64            `json:"median"`
	P05            float64            `json:"p05"`
	P25            float64            `json:"p25"`
	P75            float64            `json:"p75"`
	P95            float64            `json:"p95"`
	OutcomeRates   map[string]float64 `json:"outcome_rates"`
	DealerBustRate float64            `json:"dealer_bust_rate"`
	SeatMeans      []float64          `json:"seat_means"`
	ElapsedMillis  int64              `json:"elapsed_ms"`
}

// Summary flattens the report for output.
func (r *Report) Summary() Summary {
	low, high := r.Stats.ConfidenceInterval95()

	rates := make(map[string]float64)
	for _, o := range []game.Outcome{game.OutcomeWin, game.OutcomeDealerBust, game.OutcomeLoss, game.OutcomeBust} {
		rates[o.String()] = r.Stats.Rate(o)
	}

	seats := make([]float64, len(r.Stats.Seats))
	for i, s := range r.Stats.Seats {
		seats[i] = s.Mean()
	}

	return Summary{
		ID:             r.ID,
		Rounds:         r.Stats.Rounds,
		Players:        r.Config.Players,
		Hands:          r.Stats.Hands,
		Stake:          r.Config.Stake,
		Strategy:       r.Config.Bot.Strategy,
		StandOn:        r.Config.Bot.StandOn,
		DealerMode:     r.Config.DealerMode.String(),
		Seed:           r.Config.Seed,
		MeanReturn:     r.Stats.Mean(),
		StdDev:         r.Stats.StdDev(),
		CI95Low:        low,
		CI95High:       high,
		Median:         r.Stats.Median(),
		P05:            r.Stats.Percentile(0.05),
		P25:            r.Stats.Percentile(0.25),
		P75:            r.Stats.Percentile(0.75),
		P95:            r.Stats.Percentile(0.95),
		OutcomeRates:   rates,
		DealerBustRate: r.Stats.DealerBustRate(),
		SeatMeans:      seats,
		ElapsedMillis:  r.Elapsed.Milliseconds(),
	}
}

// WriteJSON writes the summary to filename atomically.
func (r *Report) WriteJSON(filename string) error {
	return fileutil.WriteJSONAtomic(filename, r.Summary(), 0o644)
}
