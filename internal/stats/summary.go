package stats

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// Overview holds the scalar dashboard metrics for one dataset.
type Overview struct {
	TotalSpend       decimal.Decimal
	TransactionCount int
	SupplierCount    int
	CategoryCount    int
	AvgTransaction   decimal.Decimal
}

// Summarize computes the overview stat-card values. Distinct counts are
// taken after sentinel substitution, so blank-supplier records count as one
// "Unknown" supplier. Empty input yields all zeros.
func Summarize(records []model.Record) Overview {
	totals := aggregate.Totals(records)

	o := Overview{
		TotalSpend:       totals.Amount,
		TransactionCount: totals.Count,
		SupplierCount:    len(aggregate.GroupBy(records, model.Record.SupplierKey)),
		CategoryCount:    len(aggregate.GroupBy(records, model.Record.CategoryKey)),
	}
	if totals.Count > 0 {
		o.AvgTransaction = totals.Amount.Div(decimal.NewFromInt(int64(totals.Count)))
	}
	return o
}
