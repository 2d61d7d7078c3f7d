package aggregation

import (
	"github.com/shopspring/decimal"
)

// Supported reduce operators.
const (
	OpCount = "count"
	OpSum   = "sum"
)

// Aggregator defines the reduce semantics of an aggregation operator.
// Stores that aggregate in process (the in-memory store) fold rows through
// these instead of switching on the operator.
type Aggregator interface {
	// Initial returns the aggregate value after the very first row for a key.
	// count → 1; sum → the incoming value itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming value into an existing aggregate.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Operators is the registry of all supported aggregation operators.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
}

// Fold reduces values with the named operator. An empty input yields zero, never an error.
func Fold(op string, values []decimal.Decimal) decimal.Decimal {
	agg, ok := Operators[op]
	if !ok || len(values) == 0 {
		return decimal.Zero
	}
	acc := agg.Initial(values[0])
	for _, v := range values[1:] {
		acc = agg.Apply(acc, v)
	}
	return acc
}

// countAgg increments by 1 per row. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }

// sumAgg accumulates the exact decimal sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }
