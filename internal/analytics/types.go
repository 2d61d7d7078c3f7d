package analytics

import (
	"github.com/shopspring/decimal"
)

// ChangeMode selects how period-over-period change indicators are produced.
type ChangeMode string

const (
	// ChangePlaceholder returns fixed indicator strings.
	ChangePlaceholder ChangeMode = "placeholder"

	// ChangeComputed compares the trailing growth window with the window before it.
	ChangeComputed ChangeMode = "computed"
)

// Placeholder change indicators returned in ChangePlaceholder mode.
const (
	PlaceholderRevenueChange = "+20.1%"
	PlaceholderVendorsChange = "+8.2%"
	PlaceholderOrdersChange  = "+12.5%"
	PlaceholderGrowthChange  = "+4.3%"
)

// ValidChangeMode reports whether mode is supported.
func ValidChangeMode(mode ChangeMode) bool {
	return mode == ChangePlaceholder || mode == ChangeComputed
}

// MetricsSnapshot is the summary view of the record tables at one instant.
type MetricsSnapshot struct {
	TotalRevenue  decimal.Decimal
	ActiveVendors int64
	TotalOrders   int64

	// GrowthRate is the share of all-time revenue earned inside the trailing
	// growth window, as a percentage. It is a concentration ratio, not a
	// period-over-period growth rate.
	GrowthRate decimal.Decimal

	Changes ChangeIndicators
}

// ChangeIndicators carries the signed percentage strings shown next to each metric.
type ChangeIndicators struct {
	Revenue string
	Vendors string
	Orders  string
	Growth  string
}

// TrendPoint is the revenue of one calendar month bucket.
type TrendPoint struct {
	// Key is the bucket key: "01".."12", or "2026-01" when year-qualified.
	Key     string
	Label   string
	Revenue decimal.Decimal
}

// VendorSpend is one entry of the vendor ranking.
type VendorSpend struct {
	Vendor string
	Spend  decimal.Decimal
}
