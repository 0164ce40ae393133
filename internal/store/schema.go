package store

// schemaSQL creates the ledger tables. Months are stored as "YYYY-MM" text
// and amounts as exact decimal text, never floats.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS monthly_records (
	month            TEXT PRIMARY KEY,
	earned_income    TEXT NOT NULL DEFAULT '0',
	expense          TEXT NOT NULL DEFAULT '0',
	asset_adjustment TEXT NOT NULL DEFAULT '0',
	total_asset      TEXT,
	updated_at       TEXT NOT NULL
);
`
