package stats

import (
	"testing"

	"github.com/diariotrade/diario/trade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win(date string, points string, createdAt int64) trade.Trade {
	return trade.Trade{
		ID:        trade.NewID(),
		Date:      date,
		Symbol:    "WIN",
		Mode:      trade.Points(points),
		Contracts: "1",
		CreatedAt: createdAt,
	}
}

func TestSortedDeterministic(t *testing.T) {
	t.Parallel()

	a := win("2024-01-02", "10", 100)
	b := win("2024-01-02", "20", 200)
	c := win("2024-01-01", "30", 300)

	s1 := Sorted([]trade.Trade{b, c, a})
	s2 := Sorted([]trade.Trade{a, b, c})

	require.Equal(t, s1, s2, "input order must not matter")
	assert.Equal(t, c.ID, s1[0].ID)
	assert.Equal(t, a.ID, s1[1].ID, "same-day ties break on CreatedAt")
	assert.Equal(t, b.ID, s1[2].ID)
}

func TestTotalEquityIgnoresFilters(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	ts := []trade.Trade{
		win("2024-01-01", "100", 1), // 100*0.2 - 0.25 = 19.75
		win("2024-01-02", "-50", 2), // -50*0.2 - 0.25 = -10.25
	}

	assert.InDelta(t, 50000+19.75-10.25, TotalEquity(ts, cfg), 1e-9)
}

func TestEquityBefore(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	ts := []trade.Trade{
		win("2024-01-03", "100", 3),
		win("2024-01-01", "100", 1),
		win("2024-01-02", "100", 2),
	}

	assert.InDelta(t, 50000.0, EquityBefore("2024-01-01", ts, cfg), 1e-9)
	assert.InDelta(t, 50000+19.75, EquityBefore("2024-01-02", ts, cfg), 1e-9)
	assert.InDelta(t, 50000+3*19.75, EquityBefore("2024-09-01", ts, cfg), 1e-9)
}

func TestCurveSeedsFromBaseline(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	filtered := []trade.Trade{
		win("2024-02-01", "10", 1), // net 1.75
		win("2024-02-01", "-10", 2), // net -2.25
	}

	curve := Curve(filtered, 48000, cfg)
	require.Len(t, curve, 2)

	assert.Equal(t, 0, curve[0].Index)
	assert.InDelta(t, 48001.75, curve[0].Equity, 1e-9)
	assert.InDelta(t, 1.75, curve[0].Pnl, 1e-9)
	assert.InDelta(t, 47999.5, curve[1].Equity, 1e-9)
	assert.Equal(t, "2024-02-01", curve[1].Date)
}

func TestCurveSortsInput(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	a := win("2024-02-01", "10", 1)
	b := win("2024-02-02", "-10", 2)
	c := win("2024-02-02", "20", 3)

	got := Curve([]trade.Trade{c, a, b}, 50000, cfg)
	want := Curve([]trade.Trade{a, b, c}, 50000, cfg)

	require.Equal(t, want, got, "input order must not matter")
	assert.Equal(t, "2024-02-01", got[0].Date)
}

func TestCurveEmpty(t *testing.T) {
	t.Parallel()

	curve := Curve(nil, 50000, testConfig())
	assert.Empty(t, curve)
	assert.NotNil(t, curve)
}
