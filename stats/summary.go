package stats

import (
	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

// Summary is the dashboard view of a (possibly filtered) trade window.
// Everything here is derived; recomputing from the same inputs yields
// identical output.
type Summary struct {
	CapitalInitial float64 `json:"capitalInitial"`
	CapitalCurrent float64 `json:"capitalCurrent"`

	PeriodStart        string  `json:"periodStart"`
	PeriodEnd          string  `json:"periodEnd"`
	PeriodStartCapital float64 `json:"periodStartCapital"`
	PeriodEndCapital   float64 `json:"periodEndCapital"`
	PeriodPnl          float64 `json:"periodPnl"`
	PeriodPct          float64 `json:"periodPct"`

	NTrades     int     `json:"nTrades"`
	WinRate     float64 `json:"winRate"`
	AvgWin      float64 `json:"avgWin"`
	AvgLoss     float64 `json:"avgLoss"` // kept signed negative
	Expectancy  float64 `json:"expectancy"`
	MaxDrawdown float64 `json:"maxDrawdown"` // always <= 0

	Curve []Point     `json:"curve"`
	Daily []DayBucket `json:"daily"`
}

// Summarize computes the dashboard summary for the filtered window of
// a trade log. The full log supplies the capital baseline: the window
// starts from the equity just before its first trade, and
// CapitalCurrent always reflects every trade regardless of filters.
func Summarize(all, filtered []trade.Trade, cfg config.Config) Summary {
	s := Summary{
		CapitalInitial: cfg.CapitalInitial,
		CapitalCurrent: TotalEquity(all, cfg),
		NTrades:        len(filtered),
	}

	sorted := Sorted(filtered)
	baseline := cfg.CapitalInitial
	if len(sorted) > 0 {
		s.PeriodStart = sorted[0].Date
		s.PeriodEnd = sorted[len(sorted)-1].Date
		baseline = EquityBefore(s.PeriodStart, all, cfg)
	}

	s.Curve = Curve(sorted, baseline, cfg)
	s.Daily = Daily(sorted, cfg)

	s.PeriodStartCapital = baseline
	s.PeriodEndCapital = baseline
	if len(s.Curve) > 0 {
		s.PeriodEndCapital = s.Curve[len(s.Curve)-1].Equity
	}
	s.PeriodPnl = s.PeriodEndCapital - s.PeriodStartCapital
	if s.PeriodStartCapital > 0 {
		s.PeriodPct = s.PeriodPnl / s.PeriodStartCapital
	}

	var wins, losses int
	var winSum, lossSum float64
	for _, t := range sorted {
		net := Net(t, cfg)
		switch {
		case net > 0:
			wins++
			winSum += net
		case net < 0:
			losses++
			lossSum += net
		}
	}

	if len(sorted) > 0 {
		s.WinRate = float64(wins) / float64(len(sorted))
	}
	if wins > 0 {
		s.AvgWin = winSum / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = lossSum / float64(losses) // stays negative
	}
	// Signed expected value per trade, not a magnitude ratio: the
	// negative average loss carries its sign into the second term.
	s.Expectancy = s.WinRate*s.AvgWin + (1-s.WinRate)*s.AvgLoss

	s.MaxDrawdown = maxDrawdown(baseline, s.Curve)
	return s
}

// maxDrawdown walks the curve tracking the running equity peak and
// retains the most negative (equity-peak)/peak seen. A non-positive
// peak contributes zero rather than a meaningless ratio.
func maxDrawdown(baseline float64, curve []Point) float64 {
	peak := baseline
	var maxDD float64
	for _, p := range curve {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak <= 0 {
			continue
		}
		if dd := (p.Equity - peak) / peak; dd < maxDD {
			maxDD = dd
		}
	}
	return maxDD
}
