package stats

import (
	"testing"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.Config {
	return config.Default().Normalize()
}

func TestContracts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"2", 2},
		{"1", 1},
		{"3,9", 3},
		{"0", 1},
		{"-5", 1},
		{"", 1},
		{"abc", 1},
	}
	for _, c := range cases {
		tr := trade.Trade{Contracts: c.in}
		assert.Equal(t, c.want, Contracts(tr), "Contracts(%q)", c.in)
	}
}

func TestPointsModeMath(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Symbol: "WIN", Mode: trade.Points("10"), Contracts: "2"}

	assert.InDelta(t, 0.5, Fee(tr, cfg), 1e-9)   // 2 * 0.25
	assert.InDelta(t, 4.0, Gross(tr, cfg), 1e-9) // 10 * 0.2 * 2
	assert.InDelta(t, 3.5, Net(tr, cfg), 1e-9)
}

func TestPnlModeNotMultipliedByContracts(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Symbol: "WIN", Mode: trade.Pnl("100"), Contracts: "1"}
	assert.InDelta(t, 99.75, Net(tr, cfg), 1e-9)

	// Direct amount already includes sizing: more contracts only
	// raises the fee, never the gross.
	tr.Contracts = "4"
	assert.InDelta(t, 100.0, Gross(tr, cfg), 1e-9)
	assert.InDelta(t, 99.0, Net(tr, cfg), 1e-9)
}

func TestNegativePoints(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Symbol: "WIN", Mode: trade.Points("-80,25"), Contracts: "2"}
	assert.InDelta(t, -80.25*0.2*2-0.5, Net(tr, cfg), 1e-9)
}

func TestUnparsableValuesDegradeToZeroGross(t *testing.T) {
	t.Parallel()

	cfg := testConfig()

	tr := trade.Trade{Symbol: "WIN", Mode: trade.Points("12,"), Contracts: "1"}
	assert.Zero(t, Gross(tr, cfg))
	assert.InDelta(t, -0.25, Net(tr, cfg), 1e-9, "fee still applies")

	tr = trade.Trade{Symbol: "WIN", Mode: trade.Pnl("oops"), Contracts: "1"}
	assert.Zero(t, Gross(tr, cfg))
}

func TestDefaultSymbolIsWIN(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Mode: trade.Points("10"), Contracts: "1"}
	assert.InDelta(t, 2.0, Gross(tr, cfg), 1e-9)
	assert.InDelta(t, 0.25, Fee(tr, cfg), 1e-9)
}

func TestUnknownSymbolContributesNothing(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Symbol: "OUTRO", Mode: trade.Points("500"), Contracts: "3"}
	assert.Zero(t, Gross(tr, cfg))
	assert.Zero(t, Fee(tr, cfg))
}

func TestFeeOverrideWins(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr := trade.Trade{Symbol: "WIN", Mode: trade.Points("10"), Contracts: "4", FeeOverride: "1,10"}

	// Override returned verbatim, no contract multiplication.
	assert.InDelta(t, 1.1, Fee(tr, cfg), 1e-9)

	// Unparsable override falls through to the computed fee.
	tr.FeeOverride = "n/a"
	assert.InDelta(t, 1.0, Fee(tr, cfg), 1e-9)
}
