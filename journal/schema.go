package journal

const schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	date TEXT NOT NULL,
	symbol TEXT NOT NULL,
	mode TEXT NOT NULL,
	value TEXT NOT NULL,
	contracts TEXT NOT NULL,
	tag TEXT NOT NULL DEFAULT '',
	fee_override TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
CREATE INDEX IF NOT EXISTS idx_trades_tag ON trades(tag);
`
