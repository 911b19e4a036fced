package trade

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsIdentity(t *testing.T) {
	t.Parallel()

	a := New("2024-03-01", SymbolWIN, Points("120,5"), "2", "pullback")
	b := New("2024-03-01", SymbolWIN, Points("120,5"), "2", "pullback")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Less(t, a.ID, b.ID, "ULIDs should be time-ordered")
	assert.NotZero(t, a.CreatedAt)
}

func TestNormalizeLegacyPoints(t *testing.T) {
	t.Parallel()

	// Legacy record: no mode tag, points field present.
	r := Record{ID: "t_1", Date: "2024-01-02", Symbol: "WIN", Points: "150", Contracts: "2"}
	tr := r.Normalize()

	assert.Equal(t, KindPoints, tr.Mode.Kind)
	assert.Equal(t, "150", tr.Mode.Value)
}

func TestNormalizeLegacyPnl(t *testing.T) {
	t.Parallel()

	r := Record{ID: "t_2", Date: "2024-01-02", Symbol: "WDO", Pnl: "-120,00", Contracts: "1"}
	tr := r.Normalize()

	assert.Equal(t, KindPnl, tr.Mode.Kind)
	assert.Equal(t, "-120,00", tr.Mode.Value)
}

func TestNormalizeExplicitModeWins(t *testing.T) {
	t.Parallel()

	// Disagreeing legacy fields: the mode tag decides, the other field
	// is dropped.
	r := Record{ID: "t_3", Mode: "pnl", Points: "999", Pnl: "50"}
	tr := r.Normalize()

	assert.Equal(t, KindPnl, tr.Mode.Kind)
	assert.Equal(t, "50", tr.Mode.Value)
}

func TestNormalizeGeneratesMissingID(t *testing.T) {
	t.Parallel()

	tr := Record{Date: "2024-01-02", Pnl: "10"}.Normalize()
	assert.NotEmpty(t, tr.ID)
}

func TestRoundTripRecord(t *testing.T) {
	t.Parallel()

	orig := New("2024-05-06", SymbolWDO, Pnl("180,50"), "3", "abertura")
	orig.FeeOverride = "2,40"

	got := orig.ToRecord().Normalize()
	assert.Equal(t, orig, got)
}

func TestToRecordDropsInactiveField(t *testing.T) {
	t.Parallel()

	r := New("2024-05-06", SymbolWIN, Points("80"), "1", "").ToRecord()
	assert.Equal(t, "80", string(r.Points))
	assert.Empty(t, string(r.Pnl))
}

func TestRecordUnmarshalNumericFields(t *testing.T) {
	t.Parallel()

	// Very old exports wrote numbers, not strings.
	raw := `{"id":"t_9","date":"2023-11-20","symbol":"WIN","points":120.5,"contracts":2,"createdAt":1700000000000}`

	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "120.5", string(r.Points))
	assert.Equal(t, "2", string(r.Contracts))

	tr := r.Normalize()
	assert.Equal(t, KindPoints, tr.Mode.Kind)
	assert.Equal(t, int64(1700000000000), tr.CreatedAt)
}
