// Package config holds the journal configuration in two forms: the raw
// text the operator typed, and the normalized numeric form every engine
// call consumes. Normalization happens before each computation; the raw
// text is what gets persisted and exported, so a half-typed value never
// corrupts stored state.
package config

import (
	"math"

	"github.com/diariotrade/diario/numparse"
	"github.com/diariotrade/diario/trade"
)

// Text is the configuration exactly as entered. Every field accepts
// both comma and dot decimals ("0,01" / "0.01" / "1.234,56").
type Text struct {
	CapitalInitial  string `json:"capitalInitial" yaml:"capitalInitial"`
	MaxTradesPerDay string `json:"maxTradesPerDay" yaml:"maxTradesPerDay"`
	StopDailyPct    string `json:"stopDailyPct" yaml:"stopDailyPct"`
	TargetDailyPct  string `json:"targetDailyPct" yaml:"targetDailyPct"`
	RiskPerTradePct string `json:"riskPerTradePct" yaml:"riskPerTradePct"`
	WinPointValue   string `json:"winPointValue" yaml:"winPointValue"`
	WdoPointValue   string `json:"wdoPointValue" yaml:"wdoPointValue"`
	WinCostPerOp    string `json:"winCostPerOp" yaml:"winCostPerOp"`
	WdoCostPerOp    string `json:"wdoCostPerOp" yaml:"wdoCostPerOp"`
}

// Config is the normalized numeric form. Missing symbol keys in the
// maps read as zero, which makes unknown symbols contribute nothing.
type Config struct {
	CapitalInitial  float64
	MaxTradesPerDay int
	StopDailyPct    float64 // expected negative
	TargetDailyPct  float64 // expected positive
	RiskPerTradePct float64

	PointValueBySymbol map[string]float64
	CostPerOpBySymbol  map[string]float64
}

// Default returns the stock configuration: 50k capital, 3 trades/day,
// -1% daily stop, +1% daily target, WIN/WDO contract values
// pre-filled.
func Default() Text {
	return Text{
		CapitalInitial:  "50000",
		MaxTradesPerDay: "3",
		StopDailyPct:    "-0,01",
		TargetDailyPct:  "0,01",
		RiskPerTradePct: "0,0025",
		WinPointValue:   "0,2",
		WdoPointValue:   "10",
		WinCostPerOp:    "0,25",
		WdoCostPerOp:    "1,20",
	}
}

// Normalize parses every field, substituting the documented default
// for anything unparsable. It never fails: the engine must stay usable
// while the operator is mid-edit.
func (t Text) Normalize() Config {
	maxTrades := 3
	if v := numparse.Parse(t.MaxTradesPerDay); !math.IsNaN(v) {
		maxTrades = int(math.Floor(v))
		if maxTrades < 1 {
			maxTrades = 1
		}
	}

	return Config{
		CapitalInitial:  numparse.Clamp(numparse.Parse(t.CapitalInitial), 0),
		MaxTradesPerDay: maxTrades,
		StopDailyPct:    numparse.Clamp(numparse.Parse(t.StopDailyPct), -0.01),
		TargetDailyPct:  numparse.Clamp(numparse.Parse(t.TargetDailyPct), 0.01),
		RiskPerTradePct: numparse.Clamp(numparse.Parse(t.RiskPerTradePct), 0.0025),
		PointValueBySymbol: map[string]float64{
			trade.SymbolWIN: numparse.Clamp(numparse.Parse(t.WinPointValue), 0.2),
			trade.SymbolWDO: numparse.Clamp(numparse.Parse(t.WdoPointValue), 10),
		},
		CostPerOpBySymbol: map[string]float64{
			trade.SymbolWIN: numparse.Clamp(numparse.Parse(t.WinCostPerOp), 0.25),
			trade.SymbolWDO: numparse.Clamp(numparse.Parse(t.WdoCostPerOp), 1.2),
		},
	}
}

// PointValue returns the per-point value for sym, zero when unknown.
func (c Config) PointValue(sym string) float64 {
	return c.PointValueBySymbol[sym]
}

// CostPerOp returns the per-contract cost for sym, zero when unknown.
func (c Config) CostPerOp(sym string) float64 {
	return c.CostPerOpBySymbol[sym]
}

// RiskPerTradeCash approximates the currency amount at risk per trade.
func (c Config) RiskPerTradeCash() float64 {
	capital := c.CapitalInitial
	if capital < 0 {
		capital = 0
	}
	risk := c.RiskPerTradePct
	if risk < 0 {
		risk = 0
	}
	return capital * risk
}

// Merge overlays the non-empty fields of other onto t, mirroring how
// imported snapshots update only the keys they carry.
func (t Text) Merge(other Text) Text {
	fields := []struct {
		dst *string
		src string
	}{
		{&t.CapitalInitial, other.CapitalInitial},
		{&t.MaxTradesPerDay, other.MaxTradesPerDay},
		{&t.StopDailyPct, other.StopDailyPct},
		{&t.TargetDailyPct, other.TargetDailyPct},
		{&t.RiskPerTradePct, other.RiskPerTradePct},
		{&t.WinPointValue, other.WinPointValue},
		{&t.WdoPointValue, other.WdoPointValue},
		{&t.WinCostPerOp, other.WinCostPerOp},
		{&t.WdoCostPerOp, other.WdoCostPerOp},
	}
	for _, f := range fields {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return t
}
