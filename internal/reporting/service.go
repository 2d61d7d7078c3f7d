package reporting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/insightchat/analytics/internal/analytics"
	"github.com/insightchat/analytics/internal/core/aggregation"
	"github.com/insightchat/analytics/internal/nlquery"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid report query")

// Engine computes the analytics views.
type Engine interface {
	ComputeMetrics(ctx context.Context) (*analytics.MetricsSnapshot, error)
	ComputeRevenueTrend(ctx context.Context) ([]analytics.TrendPoint, error)
	ComputeTopVendors(ctx context.Context, limit int) ([]analytics.VendorSpend, error)
}

// QueryGenerator turns a natural-language question into a query and result set.
type QueryGenerator interface {
	Generate(ctx context.Context, question string) (*nlquery.Result, error)
}

// Service is the Reporting Façade: it formats engine snapshots for external
// callers and relays natural-language questions to the collaborator.
type Service struct {
	engine        Engine
	generator     QueryGenerator
	topVendorsMax int
}

// NewService creates a new reporting service. topVendorsMax is both the
// default and the upper bound of the top-vendors limit.
func NewService(engine Engine, generator QueryGenerator, topVendorsMax int) *Service {
	if topVendorsMax <= 0 {
		topVendorsMax = analytics.DefaultTopVendorLimit
	}

	return &Service{
		engine:        engine,
		generator:     generator,
		topVendorsMax: topVendorsMax,
	}
}

// GetMetrics returns the formatted summary metrics.
func (s *Service) GetMetrics(ctx context.Context) (*MetricsResponse, error) {
	snapshot, err := s.engine.ComputeMetrics(ctx)
	if err != nil {
		return nil, err
	}

	return &MetricsResponse{
		TotalRevenue:  aggregation.FormatCurrency(snapshot.TotalRevenue),
		RevenueChange: snapshot.Changes.Revenue,
		ActiveVendors: strconv.FormatInt(snapshot.ActiveVendors, 10),
		VendorsChange: snapshot.Changes.Vendors,
		TotalOrders:   strconv.FormatInt(snapshot.TotalOrders, 10),
		OrdersChange:  snapshot.Changes.Orders,
		GrowthRate:    aggregation.FormatPercent(snapshot.GrowthRate, 1),
		GrowthChange:  snapshot.Changes.Growth,
	}, nil
}

// GetRevenueTrend returns the monthly revenue trend.
func (s *Service) GetRevenueTrend(ctx context.Context) ([]TrendPoint, error) {
	points, err := s.engine.ComputeRevenueTrend(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, TrendPoint{
			Month:   p.Label,
			Revenue: p.Revenue.InexactFloat64(),
		})
	}
	return out, nil
}

// GetTopVendors returns at most limit vendors ranked by spend.
// A zero limit means the configured maximum.
func (s *Service) GetTopVendors(ctx context.Context, limit int) ([]VendorSpend, error) {
	if limit == 0 {
		limit = s.topVendorsMax
	}
	if limit < 1 || limit > s.topVendorsMax {
		return nil, invalidQueryf("limit must be between 1 and %d", s.topVendorsMax)
	}

	ranking, err := s.engine.ComputeTopVendors(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]VendorSpend, 0, len(ranking))
	for _, r := range ranking {
		out = append(out, VendorSpend{
			Vendor: r.Vendor,
			Spend:  r.Spend.InexactFloat64(),
		})
	}
	return out, nil
}

// SubmitNaturalLanguageQuery relays question to the NL-to-SQL collaborator
// and returns its answer unchanged.
func (s *Service) SubmitNaturalLanguageQuery(ctx context.Context, question string) (*nlquery.Result, error) {
	if strings.TrimSpace(question) == "" {
		return nil, invalidQueryf("query is required")
	}

	result, err := s.generator.Generate(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("generate sql: %w", err)
	}
	return result, nil
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
