// Package journal persists the trade log. It owns the storage formats
// — SQLite rows, JSON snapshots, CSV exports — and hands the engine
// plain trade slices; no statistics live here.
package journal

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/diariotrade/diario/trade"
)

// SQLite stores the journal in a single-file database. Trades are kept
// in their flattened wire shape (mode + value columns) and normalized
// through the trade package on the way out.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the journal database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// Add inserts a trade.
func (j *SQLite) Add(ctx context.Context, t trade.Trade) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO trades
		(id, created_at, date, symbol, mode, value, contracts, tag, fee_override)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.CreatedAt, t.Date, t.Symbol, string(t.Mode.Kind),
		t.Mode.Value, t.Contracts, t.Tag, t.FeeOverride,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// Update replaces a trade's fields wholesale. The entry mode column
// pair is rewritten together, so a mode switch can never leave a stale
// value behind.
func (j *SQLite) Update(ctx context.Context, t trade.Trade) error {
	res, err := j.db.ExecContext(ctx, `
		UPDATE trades
		SET date = ?, symbol = ?, mode = ?, value = ?, contracts = ?, tag = ?, fee_override = ?
		WHERE id = ?`,
		t.Date, t.Symbol, string(t.Mode.Kind), t.Mode.Value,
		t.Contracts, t.Tag, t.FeeOverride, t.ID,
	)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", t.ID)
	}
	return nil
}

// Get returns a single trade by ID.
func (j *SQLite) Get(ctx context.Context, id string) (trade.Trade, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, created_at, date, symbol, mode, value, contracts, tag, fee_override
		FROM trades WHERE id = ?`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return trade.Trade{}, fmt.Errorf("trade %q not found", id)
	}
	if err != nil {
		return trade.Trade{}, err
	}
	return t, nil
}

// Delete removes one trade by ID.
func (j *SQLite) Delete(ctx context.Context, id string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

// DeleteDay removes every trade with an exact date match and reports
// how many were removed.
func (j *SQLite) DeleteDay(ctx context.Context, date string) (int64, error) {
	res, err := j.db.ExecContext(ctx, `DELETE FROM trades WHERE date = ?`, date)
	if err != nil {
		return 0, fmt.Errorf("delete day: %w", err)
	}
	return res.RowsAffected()
}

// DeleteAll clears the journal.
func (j *SQLite) DeleteAll(ctx context.Context) error {
	if _, err := j.db.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return fmt.Errorf("clear trades: %w", err)
	}
	return nil
}

// ReplaceAll swaps the whole trade log for ts in one transaction. If
// any insert fails the transaction rolls back and the stored log is
// left as it was.
func (j *SQLite) ReplaceAll(ctx context.Context, ts []trade.Trade) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades`); err != nil {
		return fmt.Errorf("clear trades: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trades
		(id, created_at, date, symbol, mode, value, contracts, tag, fee_override)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range ts {
		_, err := stmt.ExecContext(ctx,
			t.ID, t.CreatedAt, t.Date, t.Symbol, string(t.Mode.Kind),
			t.Mode.Value, t.Contracts, t.Tag, t.FeeOverride,
		)
		if err != nil {
			return fmt.Errorf("insert trade %q: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// ListAll returns every trade in chronological order (date ascending,
// creation time within a day).
func (j *SQLite) ListAll(ctx context.Context) ([]trade.Trade, error) {
	return j.list(ctx, `
		SELECT id, created_at, date, symbol, mode, value, contracts, tag, fee_override
		FROM trades ORDER BY date ASC, created_at ASC`)
}

// ListByDate returns the trades of one calendar day.
func (j *SQLite) ListByDate(ctx context.Context, date string) ([]trade.Trade, error) {
	return j.list(ctx, `
		SELECT id, created_at, date, symbol, mode, value, contracts, tag, fee_override
		FROM trades WHERE date = ? ORDER BY date ASC, created_at ASC`, date)
}

// ListByTag returns the trades carrying an exact tag.
func (j *SQLite) ListByTag(ctx context.Context, tag string) ([]trade.Trade, error) {
	return j.list(ctx, `
		SELECT id, created_at, date, symbol, mode, value, contracts, tag, fee_override
		FROM trades WHERE tag = ? ORDER BY date ASC, created_at ASC`, tag)
}

func (j *SQLite) list(ctx context.Context, query string, args ...any) ([]trade.Trade, error) {
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	var out []trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(s scanner) (trade.Trade, error) {
	var t trade.Trade
	var mode string
	err := s.Scan(
		&t.ID, &t.CreatedAt, &t.Date, &t.Symbol,
		&mode, &t.Mode.Value, &t.Contracts, &t.Tag, &t.FeeOverride,
	)
	if err != nil {
		return trade.Trade{}, err
	}
	t.Mode.Kind = trade.EntryKind(mode)
	return t, nil
}
