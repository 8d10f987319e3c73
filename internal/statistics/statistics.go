package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// Result is one player's outcome in one simulated round.
type Result struct {
	Return  float64      // net result per unit staked (win = +1.5, loss = 0, bust = -1)
	Seed    int64        // RNG seed of the round (for replay)
	Seat    int          // player's seat, 0-based
	Outcome game.Outcome // how the hand ended
}

// ResultFor converts a settled player into a Result.
func ResultFor(p game.PlayerResult, seat int, seed int64) Result {
	ret := 0.0
	if p.Stake > 0 {
		ret = p.Net() / p.Stake
	}
	return Result{Return: ret, Seed: seed, Seat: seat, Outcome: p.Outcome}
}

// SeatStats tracks results for a single seat.
type SeatStats struct {
	Hands   int
	Sum     float64
	SumSq   float64
	Outcome map[game.Outcome]int
}

// Mean returns the seat's mean return.
func (s SeatStats) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Statistics accumulates player returns across simulated rounds.
type Statistics struct {
	Hands  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // All values, for median/percentile

	Outcomes map[game.Outcome]int
	Seats    []SeatStats

	Rounds      int
	DealerBusts int
}

// Mean returns the arithmetic mean return per hand.
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
	if v < 0 {
		// rounding on near-constant data
		return 0
	}
	return v
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates one player's result.
func (s *Statistics) Add(result Result) {
	s.Hands++
	s.Sum += result.Return
	s.SumSq += result.Return * result.Return
	s.Values = append(s.Values, result.Return)

	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}
	s.Outcomes[result.Outcome]++

	if result.Seat >= 0 {
		for len(s.Seats) <= result.Seat {
			s.Seats = append(s.Seats, SeatStats{Outcome: make(map[game.Outcome]int)})
		}
		seat := &s.Seats[result.Seat]
		seat.Hands++
		seat.Sum += result.Return
		seat.SumSq += result.Return * result.Return
		seat.Outcome[result.Outcome]++
	}
}

// AddRound incorporates every player of a settled round.
func (s *Statistics) AddRound(round *game.RoundResult, seed int64) {
	s.Rounds++
	if round.DealerBust {
		s.DealerBusts++
	}
	for i, p := range round.Players {
		s.Add(ResultFor(p, i, seed))
	}
}

// Merge folds other into s. Values keep s's results first.
func (s *Statistics) Merge(other *Statistics) {
	s.Hands += other.Hands
	s.Sum += other.Sum
	s.SumSq += other.SumSq
	s.Values = append(s.Values, other.Values...)
	s.Rounds += other.Rounds
	s.DealerBusts += other.DealerBusts

	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}
	for o, n := range other.Outcomes {
		s.Outcomes[o] += n
	}

	for i, seat := range other.Seats {
		for len(s.Seats) <= i {
			s.Seats = append(s.Seats, SeatStats{Outcome: make(map[game.Outcome]int)})
		}
		dst := &s.Seats[i]
		dst.Hands += seat.Hands
		dst.Sum += seat.Sum
		dst.SumSq += seat.SumSq
		for o, n := range seat.Outcome {
			dst.Outcome[o] += n
		}
	}
}

// Rate returns the fraction of hands that ended with outcome o.
func (s *Statistics) Rate(o game.Outcome) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Outcomes[o]) / float64(s.Hands)
}

// DealerBustRate returns the fraction of rounds in which the dealer busted.
func (s *Statistics) DealerBustRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.DealerBusts) / float64(s.Rounds)
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}

// Validate checks that the counters agree with each other.
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}

	if len(s.Values) != s.Hands {
		return fmt.Errorf("values array length (%d) does not match hands count (%d)",
			len(s.Values), s.Hands)
	}

	outcomes := 0
	for o, n := range s.Outcomes {
		if o == game.OutcomePending {
			return fmt.Errorf("%d hands were never settled", n)
		}
		outcomes += n
	}
	if outcomes != s.Hands {
		return fmt.Errorf("outcome total (%d) does not match hands count (%d)", outcomes, s.Hands)
	}

	seatHands := 0
	for _, seat := range s.Seats {
		seatHands += seat.Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match hands count (%d)", seatHands, s.Hands)
	}

	if s.DealerBusts > s.Rounds {
		return fmt.Errorf("dealer busts (%d) exceed rounds (%d)", s.DealerBusts, s.Rounds)
	}

	return nil
}
