package postgres

import (
	"fmt"

	"github.com/insightchat/analytics/internal/core/storage"
)

// SQL for the record tables. Column names follow the reporting schema that the
// NL-to-SQL collaborator generates queries against, so they must not drift.

const (
	queryInsertVendor = `
		INSERT INTO vendors (id, name, category, contact_email)
		VALUES ($1, $2, $3, $4)
	`

	queryInsertTransaction = `
		INSERT INTO transactions (id, vendor_id, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	// queryInsertOrder writes the total computed by the caller in the same statement
	// as its inputs; the table CHECK constraint rejects any mismatch.
	queryInsertOrder = `
		INSERT INTO orders (
			id, vendor_id, product_name, quantity,
			unit_price, total_amount, order_date, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	queryResetTables = `TRUNCATE TABLE orders, transactions, vendors`

	queryCountVendors = `SELECT COUNT(*) FROM vendors`

	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_name = $1
		)
	`
)

// aggregateColumns maps each aggregatable table to its monetary and timestamp columns.
var aggregateColumns = map[storage.Table]struct {
	amount    string
	timestamp string
}{
	storage.TableTransactions: {amount: "amount", timestamp: "date"},
	storage.TableOrders:       {amount: "total_amount", timestamp: "order_date"},
}

// windowPredicate bounds the timestamp column by the half-open range [$1, $2).
// A NULL bound is open.
const windowPredicate = `($1::timestamptz IS NULL OR t.%[1]s >= $1)
		  AND ($2::timestamptz IS NULL OR t.%[1]s < $2)`

func sumAmountQuery(table storage.Table) string {
	cols := aggregateColumns[table]
	return fmt.Sprintf(`
		SELECT COALESCE(SUM(t.%s), 0)::text
		FROM %s t
		WHERE `+fmt.Sprintf(windowPredicate, cols.timestamp)+`
	`, cols.amount, table)
}

// sumAmountSplitQuery returns the total and the part at or after $1 in one statement.
func sumAmountSplitQuery(table storage.Table) string {
	cols := aggregateColumns[table]
	return fmt.Sprintf(`
		SELECT COALESCE(SUM(t.%[1]s), 0)::text,
		       COALESCE(SUM(t.%[1]s) FILTER (WHERE t.%[2]s >= $1), 0)::text
		FROM %[3]s t
	`, cols.amount, cols.timestamp, table)
}

func countRowsQuery(table storage.Table) string {
	cols := aggregateColumns[table]
	return fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s t
		WHERE `+fmt.Sprintf(windowPredicate, cols.timestamp)+`
	`, table)
}

// groupedSumQuery returns (bucket, sum) rows ordered by bucket ascending.
// Month buckets are computed in UTC so they agree with aggregation.MonthKey.
func groupedSumQuery(table storage.Table, key storage.GroupKey) string {
	cols := aggregateColumns[table]

	var bucket, join string
	switch key {
	case storage.GroupByMonth:
		bucket = fmt.Sprintf(`TO_CHAR(t.%s AT TIME ZONE 'UTC', 'MM')`, cols.timestamp)
	case storage.GroupByYearMonth:
		bucket = fmt.Sprintf(`TO_CHAR(t.%s AT TIME ZONE 'UTC', 'YYYY-MM')`, cols.timestamp)
	case storage.GroupByVendorName:
		bucket = `v.name`
		join = `
		INNER JOIN vendors v ON v.id = t.vendor_id`
	}

	return fmt.Sprintf(`
		SELECT %[1]s AS bucket, SUM(t.%[2]s)::text
		FROM %[3]s t%[4]s
		WHERE `+fmt.Sprintf(windowPredicate, cols.timestamp)+`
		GROUP BY %[1]s
		ORDER BY %[1]s ASC
	`, bucket, cols.amount, table, join)
}
