package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := newTestSQLite(t)
	dst := newTestSQLite(t)

	a := sample("2024-04-10", "120,5", 100)
	b := sample("2024-04-11", "-80", 200)
	require.NoError(t, src.Add(ctx, a))
	require.NoError(t, src.Add(ctx, b))

	text := config.Default()
	text.CapitalInitial = "60000"
	hist := Hist{Date: "2024-04-10", Tag: "ALL"}

	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, Export(ctx, path, src, text, hist))

	gotText, gotHist, err := Import(ctx, path, dst, config.Default())
	require.NoError(t, err)

	assert.Equal(t, "60000", gotText.CapitalInitial)
	assert.Equal(t, hist, gotHist)

	trades, err := dst.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, a, trades[0])
	assert.Equal(t, b, trades[1])
}

func TestImportReplacesExistingTrades(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := newTestSQLite(t)
	dst := newTestSQLite(t)

	require.NoError(t, src.Add(ctx, sample("2024-04-10", "10", 1)))
	require.NoError(t, dst.Add(ctx, sample("2020-01-01", "99", 1)))

	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, Export(ctx, path, src, config.Default(), Hist{}))

	_, _, err := Import(ctx, path, dst, config.Default())
	require.NoError(t, err)

	trades, err := dst.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "2024-04-10", trades[0].Date)
}

func TestImportDuplicateIDKeepsExistingTrades(t *testing.T) {
	t.Parallel()

	// Two records sharing an id violate the primary key; the import
	// must fail without touching the stored log.
	raw := `{
		"version": 5,
		"configText": {},
		"trades": [
			{"id": "t_dup", "createdAt": 1700000000000, "date": "2023-11-20", "symbol": "WIN", "points": "10", "contracts": "1"},
			{"id": "t_dup", "createdAt": 1700000100000, "date": "2023-11-21", "symbol": "WIN", "points": "20", "contracts": "1"}
		],
		"hist": {"date": "", "tag": "ALL"}
	}`

	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	ctx := context.Background()
	j := newTestSQLite(t)
	existing := sample("2020-01-01", "99", 1)
	require.NoError(t, j.Add(ctx, existing))

	_, _, err := Import(ctx, path, j, config.Default())
	require.Error(t, err)

	trades, err := j.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, existing, trades[0])
}

func TestImportLegacySnapshot(t *testing.T) {
	t.Parallel()

	// A v5 browser export: no mode tags, numeric fields, partial
	// configText.
	raw := `{
		"version": 5,
		"configText": {"capitalInitial": "55000"},
		"trades": [
			{"id": "t_1", "createdAt": 1700000000000, "date": "2023-11-20", "symbol": "WIN", "points": 120.5, "contracts": 2},
			{"id": "t_2", "createdAt": 1700000100000, "date": "2023-11-20", "symbol": "WDO", "pnl": "-120,00", "contracts": 1}
		],
		"hist": {"date": "", "tag": "ALL"}
	}`

	path := filepath.Join(t.TempDir(), "legacy.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	ctx := context.Background()
	j := newTestSQLite(t)

	text, hist, err := Import(ctx, path, j, config.Default())
	require.NoError(t, err)

	assert.Equal(t, "55000", text.CapitalInitial)
	assert.Equal(t, "3", text.MaxTradesPerDay, "absent keys keep base values")
	assert.Equal(t, "ALL", hist.Tag)

	trades, err := j.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, trade.KindPoints, trades[0].Mode.Kind)
	assert.Equal(t, "120.5", trades[0].Mode.Value)
	assert.Equal(t, trade.KindPnl, trades[1].Mode.Kind)
	assert.Equal(t, "-120,00", trades[1].Mode.Value)
}
