// Package stats is the trade statistics engine: per-trade fees and
// P&L, the capital equity curve, daily aggregates, and the dashboard
// summary. Every function is pure — it takes a trade snapshot plus a
// normalized config and returns freshly allocated results, so callers
// can recompute on every change without locks or invalidation.
package stats

import (
	"math"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/numparse"
	"github.com/diariotrade/diario/trade"
)

// Contracts interprets the contracts text: floor to an integer, never
// below 1, defaulting to 1 when unparsable.
func Contracts(t trade.Trade) int {
	c := numparse.Clamp(numparse.Parse(t.Contracts), 1)
	n := int(math.Floor(c))
	if n < 1 {
		return 1
	}
	return n
}

// Fee returns the cost charged for a trade. A finite FeeOverride wins
// outright and is returned verbatim, bypassing contract
// multiplication; otherwise the fee is contracts times the symbol's
// configured per-operation cost (zero for unknown symbols).
func Fee(t trade.Trade, cfg config.Config) float64 {
	if t.FeeOverride != "" {
		if v := numparse.Parse(t.FeeOverride); !math.IsNaN(v) {
			return v
		}
	}
	return float64(Contracts(t)) * cfg.CostPerOp(symbol(t))
}

// Gross returns the raw P&L before fees. Points mode converts signed
// points through the symbol's point value and contract count; direct
// mode returns the entered amount as-is (it already includes contract
// sizing). Unparsable values contribute zero.
func Gross(t trade.Trade, cfg config.Config) float64 {
	switch t.Mode.Kind {
	case trade.KindPnl:
		return numparse.Clamp(numparse.Parse(t.Mode.Value), 0)
	default:
		points := numparse.Clamp(numparse.Parse(t.Mode.Value), 0)
		return points * cfg.PointValue(symbol(t)) * float64(Contracts(t))
	}
}

// Net is the gross P&L minus the fee.
func Net(t trade.Trade, cfg config.Config) float64 {
	return Gross(t, cfg) - Fee(t, cfg)
}

func symbol(t trade.Trade) string {
	if t.Symbol == "" {
		return trade.SymbolWIN
	}
	return t.Symbol
}
