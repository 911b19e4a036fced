package trade

import (
	"encoding/json"
	"strings"
)

// loose is a JSON field that may arrive as a string, a bare number, or
// null. Older exports stored points and amounts as numbers; everything
// is normalized to text here.
type loose string

func (l *loose) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = loose(s)
		return nil
	}
	*l = loose(b)
	return nil
}

func (l loose) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

// Record is the flattened wire shape used by exports and older
// snapshots: points and pnl live in separate optional fields and mode
// may be missing entirely. The engine never touches this shape; it is
// converted through Normalize at the boundary.
type Record struct {
	ID          string `json:"id"`
	CreatedAt   int64  `json:"createdAt"`
	Date        string `json:"date"`
	Symbol      string `json:"symbol"`
	Mode        string `json:"mode,omitempty"`
	Points      loose  `json:"points,omitempty"`
	Pnl         loose  `json:"pnl,omitempty"`
	Contracts   loose  `json:"contracts"`
	Tag         string `json:"tag,omitempty"`
	FeeOverride loose  `json:"feeOverride,omitempty"`
}

// Normalize converts a wire record into a Trade, inferring the entry
// mode for legacy records: a points-like value present means points,
// otherwise the record is treated as a direct amount.
func (r Record) Normalize() Trade {
	t := Trade{
		ID:          r.ID,
		Date:        r.Date,
		Symbol:      r.Symbol,
		Contracts:   string(r.Contracts),
		Tag:         strings.TrimSpace(r.Tag),
		FeeOverride: string(r.FeeOverride),
		CreatedAt:   r.CreatedAt,
	}
	if t.ID == "" {
		t.ID = NewID()
	}

	switch EntryKind(r.Mode) {
	case KindPoints:
		t.Mode = Points(string(r.Points))
	case KindPnl:
		t.Mode = Pnl(string(r.Pnl))
	default:
		if strings.TrimSpace(string(r.Points)) != "" {
			t.Mode = Points(string(r.Points))
		} else {
			t.Mode = Pnl(string(r.Pnl))
		}
	}
	return t
}

// ToRecord flattens a Trade back into the wire shape. Only the active
// monetary field is written.
func (t Trade) ToRecord() Record {
	r := Record{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		Date:        t.Date,
		Symbol:      t.Symbol,
		Mode:        string(t.Mode.Kind),
		Contracts:   loose(t.Contracts),
		Tag:         t.Tag,
		FeeOverride: loose(t.FeeOverride),
	}
	switch t.Mode.Kind {
	case KindPnl:
		r.Pnl = loose(t.Mode.Value)
	default:
		r.Points = loose(t.Mode.Value)
	}
	return r
}
