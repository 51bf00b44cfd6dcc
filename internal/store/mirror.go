// Package store mirrors the ledger and budgets into a SQLite database for
// ad hoc querying. The CSV and budget files stay authoritative.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/theirongolddev/spendlog/internal/model"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Mirror is an open SQLite export database.
type Mirror struct {
	db *sql.DB
}

// Open opens or creates the database at dbPath and applies pending
// migrations.
func Open(dbPath string) (*Mirror, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)&_pragma=synchronous(normal)"
	if err := migrateUp(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening export db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening export db: %w", err)
	}
	return &Mirror{db: db}, nil
}

// Close closes the database.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// Export replaces both tables with the given records and budgets in one
// transaction. Records are numbered by their position in expenses.
func (m *Mirror) Export(ctx context.Context, expenses []model.Expense, budgets map[string]decimal.Decimal) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM budgets"); err != nil {
		return fmt.Errorf("clearing budgets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO expenses
		(position, date, month, category_code, category, amount, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range expenses {
		month := e.Date
		if len(month) > len(model.MonthLayout) {
			month = month[:len(model.MonthLayout)]
		}
		_, err := stmt.ExecContext(ctx, i+1, e.Date, month,
			e.Category.Code(), e.Category.Label(), e.Amount.String(), e.Description)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}

	for month, amount := range budgets {
		_, err := tx.ExecContext(ctx, "INSERT INTO budgets (month, amount) VALUES (?, ?)",
			month, amount.String())
		if err != nil {
			return fmt.Errorf("inserting budget %s: %w", month, err)
		}
	}

	return tx.Commit()
}

// MonthTotal is the exported spending for one month.
type MonthTotal struct {
	Month string
	Spent decimal.Decimal
}

// MonthTotals reads back per-month spending, oldest first. Amounts are
// stored as text and summed here so no precision is lost to SQLite REAL.
func (m *Mirror) MonthTotals(ctx context.Context) ([]MonthTotal, error) {
	rows, err := m.db.QueryContext(ctx, "SELECT month, amount FROM expenses")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var month, raw string
		if err := rows.Scan(&month, &raw); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("month %s: %w", month, err)
		}
		totals[month] = totals[month].Add(amount)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]MonthTotal, 0, len(totals))
	for month, spent := range totals {
		out = append(out, MonthTotal{Month: month, Spent: spent})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// ExpenseCount returns the number of exported records.
func (m *Mirror) ExpenseCount(ctx context.Context) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}

// BudgetCount returns the number of exported budgets.
func (m *Mirror) BudgetCount(ctx context.Context) (int, error) {
	var count int
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM budgets").Scan(&count)
	return count, err
}
