package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Normalize()
	ts := []trade.Trade{
		{ID: "b", Date: "2024-04-11", Symbol: "WIN", Mode: trade.Pnl("100"), Contracts: "1", CreatedAt: 2},
		{ID: "a", Date: "2024-04-10", Symbol: "WIN", Mode: trade.Points("10"), Contracts: "2", Tag: "pullback", CreatedAt: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ts, cfg))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "date", "symbol", "contracts", "mode", "value", "fee", "net", "tag"}, rows[0])
	// Chronological order regardless of input order.
	assert.Equal(t, []string{"a", "2024-04-10", "WIN", "2", "points", "10", "0.50", "3.50", "pullback"}, rows[1])
	assert.Equal(t, []string{"b", "2024-04-11", "WIN", "1", "pnl", "100", "0.25", "99.75", ""}, rows[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, config.Default().Normalize()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
