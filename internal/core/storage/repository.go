package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	v1 "github.com/insightchat/analytics/internal/api/v1"
	"github.com/insightchat/analytics/internal/core/aggregation"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownVendor is returned when a transaction or order references a vendor that does not exist.
	ErrUnknownVendor = errors.New("referenced vendor does not exist")

	// ErrUnsupported is returned for table / operation combinations that have no meaning,
	// e.g. summing the vendors table or bounding a vendor count by time.
	ErrUnsupported = errors.New("unsupported store operation")
)

// Table names one of the durable tables.
type Table string

const (
	TableVendors      Table = "vendors"
	TableTransactions Table = "transactions"
	TableOrders       Table = "orders"
)

// GroupKey names a grouping dimension for GroupedSum.
type GroupKey string

const (
	// GroupByMonth buckets by calendar month only; keys are aggregation.MonthKey values.
	GroupByMonth GroupKey = "month"

	// GroupByYearMonth buckets by calendar year and month; keys are aggregation.YearMonthKey values.
	GroupByYearMonth GroupKey = "year_month"

	// GroupByVendorName joins to vendors (inner join) and groups by vendor name.
	GroupByVendorName GroupKey = "vendor_name"
)

// GroupedSum is one (key, sum) row of a grouped aggregate.
type GroupedSum struct {
	Key string
	Sum decimal.Decimal
}

// SplitSum is the sum of a monetary column over every row and over the rows
// recorded at or after a cut-off, taken from the same read.
type SplitSum struct {
	Total  decimal.Decimal
	Recent decimal.Decimal
}

// RecordStore is the read side of the Record Store.
// Every method returns zero / empty results (never an error) when no rows match.
type RecordStore interface {
	// SumAmount sums the monetary column of table (transactions.amount,
	// orders.total_amount) over rows whose timestamp falls in window.
	SumAmount(ctx context.Context, table Table, window aggregation.TimeRange) (decimal.Decimal, error)

	// SumAmountSplit sums the monetary column of table over all rows and over
	// rows whose timestamp is at or after since. Both sums observe one snapshot,
	// so Recent never exceeds Total for non-negative amounts.
	SumAmountSplit(ctx context.Context, table Table, since time.Time) (SplitSum, error)

	// CountRows counts rows of table whose timestamp falls in window.
	// The vendors table has no timestamp and only accepts an unbounded window.
	CountRows(ctx context.Context, table Table, window aggregation.TimeRange) (int64, error)

	// GroupedSum sums the monetary column of table grouped by key, restricted to window.
	// Rows are ordered by key ascending. Groups without rows are absent.
	GroupedSum(ctx context.Context, table Table, key GroupKey, window aggregation.TimeRange) ([]GroupedSum, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// RecordWriter is the write side of the Record Store. Inserts assign an ID when
// the record has none. Referential integrity is enforced here: inserting a
// transaction or order for an unknown vendor fails with ErrUnknownVendor.
type RecordWriter interface {
	InsertVendor(ctx context.Context, vendor *v1.Vendor) error
	InsertTransaction(ctx context.Context, txn *v1.Transaction) error

	// InsertOrder recomputes the order total from quantity and unit price before writing.
	InsertOrder(ctx context.Context, order *v1.Order) error

	// Reset deletes every order, transaction and vendor.
	Reset(ctx context.Context) error
}

// Store is a Record Store with both sides.
type Store interface {
	RecordStore
	RecordWriter
	Close() error
}

// ValidateAggregate checks that an aggregate read is meaningful for table.
// Shared by store implementations so they reject the same combinations.
func ValidateAggregate(table Table, key GroupKey, window aggregation.TimeRange, sum bool) error {
	switch table {
	case TableTransactions, TableOrders:
	case TableVendors:
		if sum || key != "" {
			return fmt.Errorf("%w: vendors have no monetary column", ErrUnsupported)
		}
		if !window.Unbounded() {
			return fmt.Errorf("%w: vendors have no timestamp", ErrUnsupported)
		}
	default:
		return fmt.Errorf("%w: unknown table %q", ErrUnsupported, table)
	}

	switch key {
	case "", GroupByMonth, GroupByYearMonth, GroupByVendorName:
	default:
		return fmt.Errorf("%w: unknown group key %q", ErrUnsupported, key)
	}
	return nil
}
