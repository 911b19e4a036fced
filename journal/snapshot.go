package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/diariotrade/diario/config"
	"github.com/diariotrade/diario/trade"
)

// snapshotVersion matches the browser app's export format so files
// move between the two unchanged.
const snapshotVersion = 5

// Hist captures the history-view filters carried inside a snapshot.
type Hist struct {
	Date string `json:"date"`
	Tag  string `json:"tag"`
}

// Snapshot is the portable JSON payload: raw config text, the full
// trade log in wire shape, and the saved history filters.
type Snapshot struct {
	Version    int            `json:"version"`
	ConfigText config.Text    `json:"configText"`
	Trades     []trade.Record `json:"trades"`
	Hist       Hist           `json:"hist"`
}

// Export writes the journal and config to a snapshot file.
func Export(ctx context.Context, path string, j *SQLite, text config.Text, hist Hist) error {
	trades, err := j.ListAll(ctx)
	if err != nil {
		return err
	}

	snap := Snapshot{
		Version:    snapshotVersion,
		ConfigText: text,
		Trades:     make([]trade.Record, 0, len(trades)),
		Hist:       hist,
	}
	for _, t := range trades {
		snap.Trades = append(snap.Trades, t.ToRecord())
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Import reads a snapshot file, replaces the stored trade log with its
// trades (normalizing legacy-shaped records), and returns the config
// text merged over base. Records missing a mode tag are inferred:
// points when a points value is present, direct amount otherwise.
func Import(ctx context.Context, path string, j *SQLite, base config.Text) (config.Text, Hist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, Hist{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return base, Hist{}, fmt.Errorf("parse snapshot: %w", err)
	}

	trades := make([]trade.Trade, 0, len(snap.Trades))
	for _, r := range snap.Trades {
		trades = append(trades, r.Normalize())
	}
	if err := j.ReplaceAll(ctx, trades); err != nil {
		return base, Hist{}, err
	}

	return base.Merge(snap.ConfigText), snap.Hist, nil
}
