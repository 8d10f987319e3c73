package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomePending, "pending"},
		{OutcomeBust, "bust"},
		{OutcomeDealerBust, "dealer_bust"},
		{OutcomeWin, "win"},
		{OutcomeLoss, "loss"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestEventRecorderOfType(t *testing.T) {
	rec := &EventRecorder{}
	rec.Report(DrawEvent{Player: "Alice", Card: 5, Score: 15})
	rec.Report(StandEvent{Player: "Bob", Score: 18})
	rec.Report(DrawEvent{Player: "Alice", Card: 3, Score: 18})

	draws := rec.OfType(EventDraw)
	assert.Len(t, draws, 2)
	assert.Equal(t, 18, draws[1].(DrawEvent).Score)
	assert.Len(t, rec.OfType(EventStand), 1)
	assert.Empty(t, rec.OfType(EventPayout))
}

func TestAdapters(t *testing.T) {
	var got []Event
	var r Reporter = ReporterFunc(func(e Event) { got = append(got, e) })
	r.Report(DealerStandEvent{Score: 17})
	assert.Len(t, got, 1)

	var d Decider = DeciderFunc(func(_ context.Context, v PlayerView) (bool, error) {
		return v.Score < 12, nil
	})
	draw, err := d.ShouldDraw(context.Background(), PlayerView{Score: 11})
	assert.NoError(t, err)
	assert.True(t, draw)

	NopReporter{}.Report(PayoutEvent{})
}
