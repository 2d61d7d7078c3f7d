package reporting

// MetricsResponse is the dashboard summary. Every field is display-formatted.
type MetricsResponse struct {
	TotalRevenue  string `json:"totalRevenue" yaml:"totalRevenue"`
	RevenueChange string `json:"revenueChange" yaml:"revenueChange"`
	ActiveVendors string `json:"activeVendors" yaml:"activeVendors"`
	VendorsChange string `json:"vendorsChange" yaml:"vendorsChange"`
	TotalOrders   string `json:"totalOrders" yaml:"totalOrders"`
	OrdersChange  string `json:"ordersChange" yaml:"ordersChange"`
	GrowthRate    string `json:"growthRate" yaml:"growthRate"`
	GrowthChange  string `json:"growthChange" yaml:"growthChange"`
}

// TrendPoint is one month of the revenue trend.
type TrendPoint struct {
	Month   string  `json:"month" yaml:"month"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}

// VendorSpend is one entry of the top-vendors ranking.
type VendorSpend struct {
	Vendor string  `json:"vendor" yaml:"vendor"`
	Spend  float64 `json:"spend" yaml:"spend"`
}

// ChatRequest is the body of a natural-language query.
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}
