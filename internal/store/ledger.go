// Package store provides the SQLite-backed ledger of recorded monthly
// activity. It is the persistence collaborator the engine reads from: the
// CLI loads records here and hands them to the engine as plain values.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/weijiayao/finance-tracker/internal/domain"
	"github.com/weijiayao/finance-tracker/pkg/dateutil"
)

// Ledger provides SQLite-backed monthly record storage.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Ledger, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Ledger{db: db}, nil
}

// Close closes the ledger database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Upsert stores the record for its month, overwriting any existing one.
func (l *Ledger) Upsert(rec domain.MonthlyRecord) error {
	var totalAsset any
	if rec.TotalAsset != nil {
		totalAsset = rec.TotalAsset.String()
	}

	_, err := l.db.Exec(`
		INSERT INTO monthly_records (month, earned_income, expense, asset_adjustment, total_asset, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			earned_income    = excluded.earned_income,
			expense          = excluded.expense,
			asset_adjustment = excluded.asset_adjustment,
			total_asset      = excluded.total_asset,
			updated_at       = excluded.updated_at`,
		dateutil.FormatMonth(rec.Month),
		rec.EarnedIncome.String(),
		rec.Expense.String(),
		rec.AssetAdjustment.String(),
		totalAsset,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting record for %s: %w", dateutil.FormatMonth(rec.Month), err)
	}
	return nil
}

// Get returns the record for a month, or nil when none was recorded.
func (l *Ledger) Get(month time.Time) (*domain.MonthlyRecord, error) {
	row := l.db.QueryRow(`
		SELECT month, earned_income, expense, asset_adjustment, total_asset
		FROM monthly_records WHERE month = ?`,
		dateutil.FormatMonth(month))

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading record for %s: %w", dateutil.FormatMonth(month), err)
	}
	return rec, nil
}

// List returns all recorded months in ascending month order.
func (l *Ledger) List() ([]domain.MonthlyRecord, error) {
	rows, err := l.db.Query(`
		SELECT month, earned_income, expense, asset_adjustment, total_asset
		FROM monthly_records ORDER BY month`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.MonthlyRecord
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// Delete removes the record for a month. Deleting an absent month is not an
// error.
func (l *Ledger) Delete(month time.Time) error {
	_, err := l.db.Exec(`DELETE FROM monthly_records WHERE month = ?`, dateutil.FormatMonth(month))
	if err != nil {
		return fmt.Errorf("deleting record for %s: %w", dateutil.FormatMonth(month), err)
	}
	return nil
}

func scanRecord(scan func(dest ...any) error) (*domain.MonthlyRecord, error) {
	var monthStr, incomeStr, expenseStr, adjustmentStr string
	var totalAssetStr sql.NullString

	if err := scan(&monthStr, &incomeStr, &expenseStr, &adjustmentStr, &totalAssetStr); err != nil {
		return nil, err
	}

	month, err := dateutil.ParseMonth(monthStr)
	if err != nil {
		return nil, fmt.Errorf("bad month %q: %w", monthStr, err)
	}

	rec := domain.MonthlyRecord{Month: month}
	if rec.EarnedIncome, err = decimal.NewFromString(incomeStr); err != nil {
		return nil, fmt.Errorf("bad earned_income %q: %w", incomeStr, err)
	}
	if rec.Expense, err = decimal.NewFromString(expenseStr); err != nil {
		return nil, fmt.Errorf("bad expense %q: %w", expenseStr, err)
	}
	if rec.AssetAdjustment, err = decimal.NewFromString(adjustmentStr); err != nil {
		return nil, fmt.Errorf("bad asset_adjustment %q: %w", adjustmentStr, err)
	}
	if totalAssetStr.Valid {
		total, err := decimal.NewFromString(totalAssetStr.String)
		if err != nil {
			return nil, fmt.Errorf("bad total_asset %q: %w", totalAssetStr.String, err)
		}
		rec.TotalAsset = &total
	}
	return &rec, nil
}
