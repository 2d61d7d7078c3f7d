package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/insightchat/analytics/internal/core/storage"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// pqForeignKeyViolation is the SQLSTATE raised when vendor_id references no vendor.
const pqForeignKeyViolation = "23503"

// mapWriteError translates driver errors from inserts into storage sentinels.
func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, storage.ErrUnknownVendor)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullTime maps an open (zero) bound to SQL NULL.
func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// nullString maps an empty optional column to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// parseSum converts a NUMERIC rendered as text into an exact decimal.
func parseSum(valueStr string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse sum %q: %w", valueStr, err)
	}
	return value, nil
}
