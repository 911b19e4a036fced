// Package trade defines the journal's trade record.
//
// A trade carries exactly one monetary input, selected by its entry
// mode: a signed points value converted through the symbol's point
// value, or a direct P&L amount. Monetary fields stay as entered text;
// all numeric interpretation happens in the stats package so a
// malformed record degrades to its documented fallback instead of
// failing at the edges.
package trade

import (
	"time"
)

// Known symbols. The set is open: unrecognized symbols are carried
// through and simply resolve to zero point value and zero fee.
const (
	SymbolWIN = "WIN"
	SymbolWDO = "WDO"
)

// EntryKind selects which monetary input a trade carries.
type EntryKind string

const (
	KindPoints EntryKind = "points"
	KindPnl    EntryKind = "pnl"
)

// Mode is the tagged entry-mode variant. Only one value exists per
// trade; switching mode replaces the whole variant, so points and a
// direct amount can never disagree on the same record.
type Mode struct {
	Kind  EntryKind
	Value string
}

// Points builds a points-mode entry from signed points text.
func Points(value string) Mode {
	return Mode{Kind: KindPoints, Value: value}
}

// Pnl builds a direct-amount entry from signed currency text.
func Pnl(value string) Mode {
	return Mode{Kind: KindPnl, Value: value}
}

// Trade is one journaled operation. Instances are treated as immutable
// snapshots by the engine; edits replace fields wholesale.
type Trade struct {
	ID        string
	Date      string // ISO calendar day, "2006-01-02"
	Symbol    string
	Mode      Mode
	Contracts string // entered text, interpreted by stats.Contracts
	Tag       string

	// FeeOverride, when it parses to a finite number, replaces the
	// computed fee entirely. Legacy escape hatch for imported records
	// whose costs were entered per trade rather than configured.
	FeeOverride string

	CreatedAt int64 // unix milliseconds, tie-break for same-day ordering
}

// New builds a trade with a fresh ULID and creation timestamp.
func New(date, symbol string, mode Mode, contracts, tag string) Trade {
	return Trade{
		ID:        NewID(),
		Date:      date,
		Symbol:    symbol,
		Mode:      mode,
		Contracts: contracts,
		Tag:       tag,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// Today returns the current calendar date in ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}
