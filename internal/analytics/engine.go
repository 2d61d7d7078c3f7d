package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/insightchat/analytics/internal/core/aggregation"
	"github.com/insightchat/analytics/internal/core/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultQueryTimeout   = 5 * time.Second
	DefaultGrowthWindow   = 30 * 24 * time.Hour
	DefaultTrendMonths    = 6
	DefaultTopVendorLimit = 5
)

// ErrDataAccess marks any failure of the underlying Record Store, including timeouts.
var ErrDataAccess = errors.New("data access failed")

// Options tunes the Engine. Zero fields fall back to the defaults above.
type Options struct {
	QueryTimeout       time.Duration
	GrowthWindow       time.Duration
	TrendMonths        int
	YearQualifiedTrend bool
	ChangeMode         ChangeMode
}

// Engine computes the analytics views from a Record Store.
// It holds no mutable state; every call reads the store afresh.
type Engine struct {
	store storage.RecordStore
	opts  Options
	nowFn func() time.Time
}

// NewEngine creates an Engine over store.
func NewEngine(store storage.RecordStore, opts Options) *Engine {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}
	if opts.GrowthWindow <= 0 {
		opts.GrowthWindow = DefaultGrowthWindow
	}
	if opts.TrendMonths <= 0 {
		opts.TrendMonths = DefaultTrendMonths
	}
	if !ValidChangeMode(opts.ChangeMode) {
		opts.ChangeMode = ChangePlaceholder
	}

	return &Engine{
		store: store,
		opts:  opts,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ComputeMetrics returns total revenue, vendor and order counts, the growth
// ratio and the change indicators. Sub-queries run concurrently; any failure
// fails the whole snapshot.
func (e *Engine) ComputeMetrics(ctx context.Context) (*MetricsSnapshot, error) {
	now := e.nowFn()
	recentWindow := aggregation.TrailingWindow(now, e.opts.GrowthWindow)

	var (
		snapshot MetricsSnapshot
		revenue  storage.SplitSum
	)

	g, gctx := errgroup.WithContext(ctx)
	// Total and recent revenue come from one read so the ratio stays within 0..100.
	g.Go(func() error {
		var err error
		revenue, err = e.splitSum(gctx, storage.TableTransactions, recentWindow.From)
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.ActiveVendors, err = e.count(gctx, storage.TableVendors, aggregation.TimeRange{})
		return err
	})
	g.Go(func() error {
		var err error
		snapshot.TotalOrders, err = e.count(gctx, storage.TableOrders, aggregation.TimeRange{})
		return err
	})

	var changes ChangeIndicators
	if e.opts.ChangeMode == ChangeComputed {
		g.Go(func() error {
			var err error
			changes, err = e.computeChanges(gctx, now)
			return err
		})
	} else {
		changes = ChangeIndicators{
			Revenue: PlaceholderRevenueChange,
			Vendors: PlaceholderVendorsChange,
			Orders:  PlaceholderOrdersChange,
			Growth:  PlaceholderGrowthChange,
		}
	}

	if err := g.Wait(); err != nil {
		slog.Error("[Engine] Failed to compute metrics", "error", err)
		return nil, err
	}

	snapshot.TotalRevenue = revenue.Total
	snapshot.GrowthRate = aggregation.PercentOf(revenue.Recent, revenue.Total)
	snapshot.Changes = changes
	return &snapshot, nil
}

// computeChanges compares the trailing growth window with the one before it.
// Growth change is the difference in percentage points between the growth
// ratio now and the ratio as it stood when the trailing window began.
func (e *Engine) computeChanges(ctx context.Context, now time.Time) (ChangeIndicators, error) {
	size := e.opts.GrowthWindow
	current := aggregation.TrailingWindow(now, size)
	previous := aggregation.PreviousWindow(now, size)

	revenue, err := e.splitSum(ctx, storage.TableTransactions, current.From)
	if err != nil {
		return ChangeIndicators{}, err
	}
	previousRevenue, err := e.sum(ctx, storage.TableTransactions, previous)
	if err != nil {
		return ChangeIndicators{}, err
	}
	currentOrders, err := e.count(ctx, storage.TableOrders, current)
	if err != nil {
		return ChangeIndicators{}, err
	}
	previousOrders, err := e.count(ctx, storage.TableOrders, previous)
	if err != nil {
		return ChangeIndicators{}, err
	}
	// Revenue recorded before the trailing window started.
	totalBefore := revenue.Total.Sub(revenue.Recent)

	growthNow := aggregation.PercentOf(revenue.Recent, revenue.Total)
	growthBefore := aggregation.PercentOf(previousRevenue, totalBefore)

	return ChangeIndicators{
		Revenue: aggregation.FormatSignedPercent(aggregation.PercentChange(revenue.Recent, previousRevenue)),
		Vendors: aggregation.FormatSignedPercent(decimal.Zero),
		Orders: aggregation.FormatSignedPercent(aggregation.PercentChange(
			decimal.NewFromInt(currentOrders), decimal.NewFromInt(previousOrders))),
		Growth: aggregation.FormatSignedPercent(growthNow.Sub(growthBefore)),
	}, nil
}

// ComputeRevenueTrend sums transaction amounts per calendar month over the
// trailing months. Months without transactions are absent. Month-only buckets
// are ordered by month number; year-qualified buckets chronologically.
func (e *Engine) ComputeRevenueTrend(ctx context.Context) ([]TrendPoint, error) {
	window := aggregation.TrailingMonths(e.nowFn(), e.opts.TrendMonths)

	key := storage.GroupByMonth
	if e.opts.YearQualifiedTrend {
		key = storage.GroupByYearMonth
	}

	rows, err := e.groupedSum(ctx, storage.TableTransactions, key, window)
	if err != nil {
		slog.Error("[Engine] Failed to compute revenue trend", "error", err)
		return nil, err
	}

	points := make([]TrendPoint, 0, len(rows))
	for _, row := range rows {
		label, err := trendLabel(key, row.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
		}
		points = append(points, TrendPoint{Key: row.Key, Label: label, Revenue: row.Sum})
	}

	// Both key layouts are zero-padded, so lexical order is calendar order.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Key < points[j].Key
	})
	return points, nil
}

func trendLabel(key storage.GroupKey, bucket string) (string, error) {
	if key == storage.GroupByYearMonth {
		t, err := aggregation.ParseYearMonthKey(bucket)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %d", aggregation.MonthLabel(t.Month()), t.Year()), nil
	}

	month, err := aggregation.ParseMonthKey(bucket)
	if err != nil {
		return "", err
	}
	return aggregation.MonthLabel(month), nil
}

// ComputeTopVendors ranks vendors by total transaction spend, descending, ties
// broken by vendor name ascending, truncated to limit (DefaultTopVendorLimit
// when limit is not positive). Vendors without transactions are absent.
func (e *Engine) ComputeTopVendors(ctx context.Context, limit int) ([]VendorSpend, error) {
	if limit <= 0 {
		limit = DefaultTopVendorLimit
	}

	rows, err := e.groupedSum(ctx, storage.TableTransactions, storage.GroupByVendorName, aggregation.TimeRange{})
	if err != nil {
		slog.Error("[Engine] Failed to compute top vendors", "error", err)
		return nil, err
	}

	ranking := make([]VendorSpend, 0, len(rows))
	for _, row := range rows {
		ranking = append(ranking, VendorSpend{Vendor: row.Key, Spend: row.Sum})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if c := ranking[i].Spend.Cmp(ranking[j].Spend); c != 0 {
			return c > 0
		}
		return ranking[i].Vendor < ranking[j].Vendor
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

func (e *Engine) sum(ctx context.Context, table storage.Table, window aggregation.TimeRange) (decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.QueryTimeout)
	defer cancel()

	value, err := e.store.SumAmount(ctx, table, window)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: sum %s: %w", ErrDataAccess, table, err)
	}
	return value, nil
}

func (e *Engine) splitSum(ctx context.Context, table storage.Table, since time.Time) (storage.SplitSum, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.QueryTimeout)
	defer cancel()

	value, err := e.store.SumAmountSplit(ctx, table, since)
	if err != nil {
		return storage.SplitSum{}, fmt.Errorf("%w: split sum %s: %w", ErrDataAccess, table, err)
	}
	return value, nil
}

func (e *Engine) count(ctx context.Context, table storage.Table, window aggregation.TimeRange) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.QueryTimeout)
	defer cancel()

	value, err := e.store.CountRows(ctx, table, window)
	if err != nil {
		return 0, fmt.Errorf("%w: count %s: %w", ErrDataAccess, table, err)
	}
	return value, nil
}

func (e *Engine) groupedSum(ctx context.Context, table storage.Table, key storage.GroupKey, window aggregation.TimeRange) ([]storage.GroupedSum, error) {
	ctx, cancel := context.WithTimeout(ctx, e.opts.QueryTimeout)
	defer cancel()

	rows, err := e.store.GroupedSum(ctx, table, key, window)
	if err != nil {
		return nil, fmt.Errorf("%w: grouped sum %s by %s: %w", ErrDataAccess, table, key, err)
	}
	return rows, nil
}
