package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/simulator"
)

func TestSimulateCmdApplyTo(t *testing.T) {
	stake := 0.0
	cmd := SimulateCmd{Rounds: 50, Stake: &stake, Strategy: "never", DealerMode: "hard17"}

	cfg := config.Default()
	cmd.applyTo(cfg)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Simulate.Rounds)
	assert.Equal(t, 3, cfg.Simulate.Players, "unset flags keep config values")
	assert.Equal(t, 0.0, cfg.Simulate.Stake)
	assert.Equal(t, "never", cfg.Simulate.Strategy)
	assert.Equal(t, "hard17", cfg.Rules.DealerMode)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, simulator.Summary{
		ID:           "01h5n0et5q6mt3v7ms1234abcd",
		Rounds:       10,
		Hands:        30,
		Strategy:     "threshold",
		DealerMode:   "soft17",
		MeanReturn:   -0.125,
		OutcomeRates: map[string]float64{"win": 0.5},
		SeatMeans:    []float64{0.1, 0.2, 0.3},
	})

	out := buf.String()
	assert.Contains(t, out, "01h5n0et5q6mt3v7ms1234abcd")
	assert.Contains(t, out, "-0.1250")
	assert.Contains(t, out, "50.00%")
	assert.Contains(t, out, "Seat 3 mean")
}

func TestLoadConfigGlobalsOverride(t *testing.T) {
	g := &Globals{Config: t.TempDir() + "/missing.hcl", LogLevel: "debug", LogFile: "x.log"}
	cfg, err := loadConfig(g)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "x.log", cfg.Log.File)
}
