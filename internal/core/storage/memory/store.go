package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	v1 "github.com/insightchat/analytics/internal/api/v1"
	"github.com/insightchat/analytics/internal/core/aggregation"
	"github.com/insightchat/analytics/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Store is an in-memory implementation of storage.Store.
// Useful for testing and local development.
type Store struct {
	mu           sync.RWMutex
	vendors      map[string]v1.Vendor
	transactions []v1.Transaction
	orders       []v1.Order
}

// NewStore creates an empty in-memory record store.
func NewStore() *Store {
	return &Store{
		vendors: make(map[string]v1.Vendor),
	}
}

// row is the projection of a transaction or order the aggregates work on.
type row struct {
	vendorID string
	amount   decimal.Decimal
	at       time.Time
}

func (s *Store) InsertVendor(_ context.Context, vendor *v1.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	if _, exists := s.vendors[vendor.ID]; exists {
		return fmt.Errorf("insert vendor: duplicate id %q", vendor.ID)
	}

	// Store a copy to prevent external modification
	s.vendors[vendor.ID] = *vendor
	return nil
}

func (s *Store) InsertTransaction(_ context.Context, txn *v1.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[txn.VendorID]; !ok {
		return fmt.Errorf("insert transaction: vendor %q: %w", txn.VendorID, storage.ErrUnknownVendor)
	}
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	txn.RoundAmount()

	s.transactions = append(s.transactions, *txn)
	return nil
}

func (s *Store) InsertOrder(_ context.Context, order *v1.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[order.VendorID]; !ok {
		return fmt.Errorf("insert order: vendor %q: %w", order.VendorID, storage.ErrUnknownVendor)
	}
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.RecomputeTotal()

	s.orders = append(s.orders, *order)
	return nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	s.transactions = nil
	s.vendors = make(map[string]v1.Vendor)
	return nil
}

func (s *Store) SumAmount(ctx context.Context, table storage.Table, window aggregation.TimeRange) (decimal.Decimal, error) {
	if err := storage.ValidateAggregate(table, "", window, true); err != nil {
		return decimal.Zero, err
	}
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var amounts []decimal.Decimal
	for _, r := range s.rows(table) {
		if window.Contains(r.at) {
			amounts = append(amounts, r.amount)
		}
	}
	return aggregation.Fold(aggregation.OpSum, amounts), nil
}

func (s *Store) SumAmountSplit(ctx context.Context, table storage.Table, since time.Time) (storage.SplitSum, error) {
	if err := storage.ValidateAggregate(table, "", aggregation.TimeRange{}, true); err != nil {
		return storage.SplitSum{}, err
	}
	if err := ctx.Err(); err != nil {
		return storage.SplitSum{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var all, recent []decimal.Decimal
	for _, r := range s.rows(table) {
		all = append(all, r.amount)
		if !r.at.Before(since) {
			recent = append(recent, r.amount)
		}
	}
	return storage.SplitSum{
		Total:  aggregation.Fold(aggregation.OpSum, all),
		Recent: aggregation.Fold(aggregation.OpSum, recent),
	}, nil
}

func (s *Store) CountRows(ctx context.Context, table storage.Table, window aggregation.TimeRange) (int64, error) {
	if err := storage.ValidateAggregate(table, "", window, false); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []decimal.Decimal
	if table == storage.TableVendors {
		matched = make([]decimal.Decimal, len(s.vendors))
	} else {
		for _, r := range s.rows(table) {
			if window.Contains(r.at) {
				matched = append(matched, r.amount)
			}
		}
	}
	return aggregation.Fold(aggregation.OpCount, matched).IntPart(), nil
}

func (s *Store) GroupedSum(ctx context.Context, table storage.Table, key storage.GroupKey, window aggregation.TimeRange) ([]storage.GroupedSum, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: group key is required", storage.ErrUnsupported)
	}
	if err := storage.ValidateAggregate(table, key, window, true); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reducer := aggregation.Operators[aggregation.OpSum]
	groups := make(map[string]decimal.Decimal)
	for _, r := range s.rows(table) {
		if !window.Contains(r.at) {
			continue
		}

		var groupKey string
		switch key {
		case storage.GroupByMonth:
			groupKey = aggregation.MonthKey(r.at)
		case storage.GroupByYearMonth:
			groupKey = aggregation.YearMonthKey(r.at)
		case storage.GroupByVendorName:
			vendor, ok := s.vendors[r.vendorID]
			if !ok {
				continue // inner join
			}
			groupKey = vendor.Name
		}

		if current, exists := groups[groupKey]; exists {
			groups[groupKey] = reducer.Apply(current, r.amount)
			continue
		}
		groups[groupKey] = reducer.Initial(r.amount)
	}

	results := make([]storage.GroupedSum, 0, len(groups))
	for k, sum := range groups {
		results = append(results, storage.GroupedSum{Key: k, Sum: sum})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})
	return results, nil
}

// Ping always succeeds for the in-memory store.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// rows must be called with s.mu held.
func (s *Store) rows(table storage.Table) []row {
	switch table {
	case storage.TableTransactions:
		out := make([]row, len(s.transactions))
		for i, t := range s.transactions {
			out[i] = row{vendorID: t.VendorID, amount: t.Amount, at: t.Date}
		}
		return out
	case storage.TableOrders:
		out := make([]row, len(s.orders))
		for i, o := range s.orders {
			out[i] = row{vendorID: o.VendorID, amount: o.TotalAmount, at: o.OrderDate}
		}
		return out
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
