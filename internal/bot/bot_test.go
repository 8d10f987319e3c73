package bot

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

func TestThresholdBot(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	b := NewThresholdBot(17, logger)

	tests := []struct {
		score int
		draw  bool
	}{
		{4, true},
		{16, true},
		{17, false},
		{20, false},
	}
	for _, tt := range tests {
		draw, err := b.ShouldDraw(context.Background(), game.PlayerView{Name: "bot", Score: tt.score})
		require.NoError(t, err)
		assert.Equal(t, tt.draw, draw, "score %d", tt.score)
	}
}

func TestRandBotUsesBothAnswers(t *testing.T) {
	b := NewRandBot(randutil.New(7), nil)

	seen := map[bool]int{}
	for range 200 {
		draw, err := b.ShouldDraw(context.Background(), game.PlayerView{Score: 12})
		require.NoError(t, err)
		seen[draw]++
	}
	assert.Positive(t, seen[true])
	assert.Positive(t, seen[false])
}

func TestNeverBot(t *testing.T) {
	draw, err := NeverBot{}.ShouldDraw(context.Background(), game.PlayerView{Score: 4})
	require.NoError(t, err)
	assert.False(t, draw)
}

func TestNew(t *testing.T) {
	rng := randutil.New(1)

	d, err := New(Config{Strategy: "threshold", StandOn: 15}, rng)
	require.NoError(t, err)
	require.IsType(t, &ThresholdBot{}, d)
	assert.Equal(t, 15, d.(*ThresholdBot).StandOn)

	d, err = New(Config{}, rng)
	require.NoError(t, err)
	assert.Equal(t, game.DealerStandOn, d.(*ThresholdBot).StandOn)

	d, err = New(Config{Strategy: "RANDOM"}, rng)
	require.NoError(t, err)
	assert.IsType(t, &RandBot{}, d)

	d, err = New(Config{Strategy: "never"}, rng)
	require.NoError(t, err)
	assert.IsType(t, NeverBot{}, d)

	_, err = New(Config{Strategy: "chart"}, rng)
	assert.Error(t, err)

	_, err = New(Config{Strategy: "threshold", StandOn: 30}, rng)
	assert.Error(t, err)

	_, err = New(Config{}, nil)
	assert.Error(t, err)
}
