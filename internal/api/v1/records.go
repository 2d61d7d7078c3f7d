package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultOrderStatus is applied when an order is created without a status.
const DefaultOrderStatus = "pending"

// Vendor is a supplier referenced by transactions and orders.
// Vendors are created by an administrative process and are immutable afterwards.
type Vendor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

// Validate ensures the vendor has all required attributes.
func (v *Vendor) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(v.Category) == "" {
		return fmt.Errorf("category is required")
	}
	return nil
}

// Transaction is a single payment to a vendor.
// Transactions are never updated; they are only removed by a bulk reset.
type Transaction struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`

	// Date is when the payment occurred. Aggregation windows are evaluated against it.
	Date time.Time `json:"date"`
}

// Validate ensures the transaction envelope is complete.
// Amount sign is not checked here: non-negative amounts are a convention of the
// write API, not of the record itself.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.VendorID) == "" {
		return fmt.Errorf("vendorId is required")
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}

// RoundAmount rounds Amount to cents, the precision the stores persist.
// Stores call it immediately before persisting.
func (t *Transaction) RoundAmount() {
	t.Amount = t.Amount.Round(2)
}

// Order is a purchase of a product from a vendor.
type Order struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendorId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`

	// TotalAmount is denormalized: it always equals Quantity × UnitPrice.
	// Only NewOrder and RecomputeTotal write it.
	TotalAmount decimal.Decimal `json:"totalAmount"`

	OrderDate time.Time `json:"orderDate"`
	Status    string    `json:"status"`
}

// NewOrder builds an order with its total computed from quantity and unit price.
func NewOrder(vendorID, productName string, quantity int64, unitPrice decimal.Decimal, orderDate time.Time, status string) *Order {
	o := &Order{
		VendorID:    vendorID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		OrderDate:   orderDate,
		Status:      status,
	}
	o.RecomputeTotal()
	return o
}

// RecomputeTotal rounds UnitPrice to cents, sets TotalAmount from Quantity and UnitPrice,
// and applies the default status.
// Stores call it immediately before persisting so no write path can skip it.
func (o *Order) RecomputeTotal() {
	o.UnitPrice = o.UnitPrice.Round(2)
	o.TotalAmount = o.UnitPrice.Mul(decimal.NewFromInt(o.Quantity))
	if strings.TrimSpace(o.Status) == "" {
		o.Status = DefaultOrderStatus
	}
}

// Validate ensures the order has all required attributes.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.VendorID) == "" {
		return fmt.Errorf("vendorId is required")
	}
	if strings.TrimSpace(o.ProductName) == "" {
		return fmt.Errorf("productName is required")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("quantity must be a positive integer")
	}
	if o.OrderDate.IsZero() {
		return fmt.Errorf("orderDate is required")
	}
	return nil
}
