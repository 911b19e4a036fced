package journal

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/stats"
	"github.com/diariotrade/diario/trade"
)

// WriteCSV renders the history table as CSV: one row per trade with
// its derived fee and net P&L columns.
func WriteCSV(w io.Writer, ts []trade.Trade, cfg config.Config) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"id", "date", "symbol", "contracts", "mode", "value", "fee", "net", "tag"}); err != nil {
		return err
	}
	for _, t := range stats.Sorted(ts) {
		err := cw.Write([]string{
			t.ID,
			t.Date,
			t.Symbol,
			strconv.Itoa(stats.Contracts(t)),
			string(t.Mode.Kind),
			t.Mode.Value,
			f(stats.Fee(t, cfg)),
			f(stats.Net(t, cfg)),
			t.Tag,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
