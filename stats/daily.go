package stats

import (
	"sort"
	"strings"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

// DayBucket aggregates one calendar day of a filtered trade set.
type DayBucket struct {
	Date   string  `json:"date"`
	Net    float64 `json:"net"`
	Trades int     `json:"trades"`
}

// Daily groups trades by date, summing net P&L and counting trades per
// day, ascending by date.
func Daily(filtered []trade.Trade, cfg config.Config) []DayBucket {
	byDate := make(map[string]*DayBucket)
	for _, t := range filtered {
		b, ok := byDate[t.Date]
		if !ok {
			b = &DayBucket{Date: t.Date}
			byDate[t.Date] = b
		}
		b.Net += Net(t, cfg)
		b.Trades++
	}

	out := make([]DayBucket, 0, len(byDate))
	for _, b := range byDate {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TagAll is the tag filter value that matches every trade.
const TagAll = "ALL"

// Filter narrows a trade set by exact date and tag. Empty date or the
// TagAll tag pass everything for that dimension.
func Filter(ts []trade.Trade, date, tag string) []trade.Trade {
	out := make([]trade.Trade, 0, len(ts))
	for _, t := range ts {
		if date != "" && t.Date != date {
			continue
		}
		if tag != "" && tag != TagAll && t.Tag != tag {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ByDate returns the trades of a single calendar day.
func ByDate(ts []trade.Trade, date string) []trade.Trade {
	return Filter(ts, date, "")
}

// Tags lists the distinct non-empty tags, sorted.
func Tags(ts []trade.Trade) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range ts {
		tag := strings.TrimSpace(t.Tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
