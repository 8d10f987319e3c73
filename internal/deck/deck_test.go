package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/randutil"
)

// fixedSource always returns the same sample, clamped to the range.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestNewStandard(t *testing.T) {
	d := NewStandard(randutil.New(1))

	assert.Equal(t, 52, d.TotalWeight())
	assert.Equal(t, 10, d.Len())

	entries := d.Entries()
	expected := []Entry{
		{2, 4}, {3, 4}, {4, 4}, {5, 4}, {6, 4}, {7, 4}, {8, 4}, {9, 4}, {10, 16}, {Ace, 4},
	}
	assert.Equal(t, expected, entries)
}

func TestNewRequiresRNG(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestAddEntryRejectsNegativeWeight(t *testing.T) {
	d := New(randutil.New(1))
	assert.Panics(t, func() { d.AddEntry(5, -1) })
}

func TestDrawWalksEntriesInOrder(t *testing.T) {
	tests := []struct {
		name   string
		sample int
		want   Value
	}{
		{"first entry", 0, 2},
		{"last slot of first entry", 3, 2},
		{"second entry", 4, 3},
		{"tens start at 32", 32, 10},
		{"last slot is an ace", 51, Ace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewStandard(fixedSource(tt.sample))
			got, err := d.Draw()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 51, d.TotalWeight())
		})
	}
}

func TestDrawDecrementsDrawnEntry(t *testing.T) {
	d := New(fixedSource(5)).AddEntry(2, 4).AddEntry(3, 4)

	v, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, Value(3), v)
	assert.Equal(t, 4, d.Remaining(2))
	assert.Equal(t, 3, d.Remaining(3))
	assert.Equal(t, 7, d.TotalWeight())
}

func TestDrawSkipsEmptyEntries(t *testing.T) {
	d := New(fixedSource(0)).AddEntry(2, 0).AddEntry(7, 1)

	v, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, Value(7), v)
}

func TestDrawWholeDeck(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d := NewStandard(randutil.New(seed))
		counts := map[Value]int{}

		for n := 1; n <= 52; n++ {
			before := d.Entries()
			v, err := d.Draw()
			require.NoError(t, err)

			for _, e := range before {
				if e.Value == v {
					require.Positive(t, e.Remaining, "drew %s with no copies left", v)
				}
			}
			counts[v]++
			require.Equal(t, 52-n, d.TotalWeight())

			sum := 0
			for _, e := range d.Entries() {
				require.GreaterOrEqual(t, e.Remaining, 0)
				sum += e.Remaining
			}
			require.Equal(t, d.TotalWeight(), sum)
		}

		for v := MinValue; v <= 9; v++ {
			assert.Equal(t, 4, counts[v], "value %s", v)
		}
		assert.Equal(t, 16, counts[10])
		assert.Equal(t, 4, counts[Ace])
	}
}

func TestDrawExhausted(t *testing.T) {
	d := New(randutil.New(3)).AddEntry(9, 1)

	_, err := d.Draw()
	require.NoError(t, err)

	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 0, d.TotalWeight())
}

func TestDrawDeterministicForSeed(t *testing.T) {
	a := NewStandard(randutil.New(42))
	b := NewStandard(randutil.New(42))

	for range 52 {
		va, err := a.Draw()
		require.NoError(t, err)
		vb, err := b.Draw()
		require.NoError(t, err)
		assert.Equal(t, va, vb)
	}
}
