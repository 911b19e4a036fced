// Package risk classifies the current trading day and decides whether
// further trading should be gated. The classifier is stateless: every
// call re-derives the status from the trade log and config, so there is
// no transition history to persist or invalidate.
package risk

import (
	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

// Status is the day's gating state.
type Status string

const (
	StatusNormal Status = "NORMAL" // free to trade
	StatusStop   Status = "STOP"   // daily loss cutoff hit
	StatusMeta   Status = "META"   // daily profit target hit
	StatusLimite Status = "LIMITE" // trade count limit reached
)

// Decision is the evaluated day state exposed to dashboards.
type Decision struct {
	Status      Status  `json:"status"`
	Blocked     bool    `json:"blocked"`
	TodayNet    float64 `json:"todayNet"`
	TodayPct    float64 `json:"todayPct"`
	TodayTrades int     `json:"todayTrades"`
}

// Evaluate classifies a day given its trades and the equity at its
// start. Rules apply in fixed priority: no trades is NORMAL outright;
// then the loss cutoff, then the profit target, then the trade count
// limit. STOP and META outrank LIMITE even when both conditions hold.
func Evaluate(today []trade.Trade, equityBefore float64, cfg config.Config) Decision {
	d := Decision{Status: StatusNormal, TodayTrades: len(today)}

	for _, t := range today {
		d.TodayNet += stats.Net(t, cfg)
	}
	if equityBefore > 0 {
		d.TodayPct = d.TodayNet / equityBefore
	}

	if len(today) == 0 {
		return d
	}

	switch {
	case d.TodayPct <= cfg.StopDailyPct:
		d.Status = StatusStop
	case d.TodayPct >= cfg.TargetDailyPct:
		d.Status = StatusMeta
	case len(today) >= cfg.MaxTradesPerDay:
		d.Status = StatusLimite
	}

	d.Blocked = d.Status != StatusNormal
	return d
}

// EvaluateDay runs Evaluate for one calendar day of a full trade log,
// deriving the day's trades and its starting equity from the log.
func EvaluateDay(all []trade.Trade, day string, cfg config.Config) Decision {
	return Evaluate(stats.ByDate(all, day), stats.EquityBefore(day, all, cfg), cfg)
}
