package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/castlewood/finsight/internal/model"
)

// SaveTransactions saves transactions, ignoring duplicates by content hash.
// It returns the number of newly inserted rows.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (hash, date, amount, category, description)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, txn := range transactions {
		result, err := stmt.ExecContext(ctx,
			txn.GenerateHash(),
			txn.Date.Format(time.RFC3339),
			txn.Amount,
			txn.NormalizedCategory(),
			txn.Description,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction: %w", err)
		}
		if rows, err := result.RowsAffected(); err == nil {
			inserted += int(rows)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// ListTransactions returns transactions ordered by date. Zero start/end
// bounds are unbounded.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	query := `SELECT date, amount, category, description FROM transactions`
	var args []any
	switch {
	case !start.IsZero() && !end.IsZero():
		query += ` WHERE date >= ? AND date <= ?`
		args = append(args, start.Format(time.RFC3339), end.Format(time.RFC3339))
	case !start.IsZero():
		query += ` WHERE date >= ?`
		args = append(args, start.Format(time.RFC3339))
	case !end.IsZero():
		query += ` WHERE date <= ?`
		args = append(args, end.Format(time.RFC3339))
	}
	query += ` ORDER BY date ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var dateStr string
		var description sql.NullString
		if err := rows.Scan(&dateStr, &txn.Amount, &txn.Category, &description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date: %w", err)
		}
		txn.Description = description.String
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// NewestTransactionDate returns the date of the most recent stored
// transaction, or the zero time when the store is empty.
func (s *SQLiteStorage) NewestTransactionDate(ctx context.Context) (time.Time, error) {
	if err := validateContext(ctx); err != nil {
		return time.Time{}, err
	}

	var dateStr sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(date) FROM transactions`).Scan(&dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query newest transaction: %w", err)
	}
	if !dateStr.Valid {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, dateStr.String)
}
