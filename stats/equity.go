package stats

import (
	"sort"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

// Point is one step of the equity curve: the running capital after a
// trade, plus that trade's net contribution.
type Point struct {
	Index  int     `json:"index"`
	Date   string  `json:"date"`
	Equity float64 `json:"equity"`
	Pnl    float64 `json:"pnl"`
}

// Sorted returns a copy of ts in chronological order: date ascending,
// creation time ascending within a day. Input order never influences
// the result, which keeps every equity figure deterministic.
func Sorted(ts []trade.Trade) []trade.Trade {
	out := make([]trade.Trade, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// TotalEquity is the current total capital: initial capital plus the
// net of every trade, regardless of any active view filter.
func TotalEquity(ts []trade.Trade, cfg config.Config) float64 {
	equity := cfg.CapitalInitial
	for _, t := range ts {
		equity += Net(t, cfg)
	}
	return equity
}

// EquityBefore is the capital immediately before cutoff: initial
// capital plus the net of every trade dated strictly earlier. It walks
// the sorted sequence and stops at the first trade on or after the
// cutoff date.
func EquityBefore(cutoff string, ts []trade.Trade, cfg config.Config) float64 {
	equity := cfg.CapitalInitial
	for _, t := range Sorted(ts) {
		if t.Date >= cutoff {
			break
		}
		equity += Net(t, cfg)
	}
	return equity
}

// Curve accumulates equity over a filtered trade set, starting from
// baseline (the capital just before the window, not zero) so a narrow
// view still shows a true capital trajectory. Curve owns the ordering:
// input may arrive in any order and is sorted chronologically here,
// like EquityBefore.
func Curve(filtered []trade.Trade, baseline float64, cfg config.Config) []Point {
	equity := baseline
	points := make([]Point, 0, len(filtered))
	for i, t := range Sorted(filtered) {
		net := Net(t, cfg)
		equity += net
		points = append(points, Point{Index: i, Date: t.Date, Equity: equity, Pnl: net})
	}
	return points
}
