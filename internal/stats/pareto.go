package stats

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// ParetoRow is one supplier in a cumulative spend ranking.
type ParetoRow struct {
	Supplier          string
	Amount            decimal.Decimal
	CumulativePercent float64
}

// Pareto ranks suppliers by spend and annotates each with the cumulative
// percentage of total spend covered so far. With a zero total every
// cumulative percentage is 0.
func Pareto(records []model.Record) []ParetoRow {
	ranked := aggregate.Ranked(aggregate.GroupBy(records, model.Record.SupplierKey))
	total := aggregate.Totals(records).Amount

	rows := make([]ParetoRow, 0, len(ranked))
	cumulative := decimal.Zero
	for _, b := range ranked {
		cumulative = cumulative.Add(b.Total)
		var pct float64
		if total.IsPositive() {
			pct = cumulative.InexactFloat64() / total.InexactFloat64() * 100
		}
		rows = append(rows, ParetoRow{Supplier: b.Key, Amount: b.Total, CumulativePercent: pct})
	}
	return rows
}

// TailRow is one supplier inside the tail-spend segment.
type TailRow struct {
	Supplier string
	Amount   decimal.Decimal
	Count    int
}

// TailResult summarizes the long tail of low-spend suppliers.
type TailResult struct {
	Suppliers    []TailRow
	Count        int
	Spend        decimal.Decimal
	SpendPercent float64
}

// TailSpend collects the lowest-ranked suppliers whose combined spend stays
// under thresholdPercent of the total (default business setting is 20).
// Suppliers are accumulated from the bottom of the ranking upward.
func TailSpend(records []model.Record, thresholdPercent int) TailResult {
	ranked := aggregate.Ranked(aggregate.GroupBy(records, model.Record.SupplierKey))
	total := aggregate.Totals(records).Amount
	thresholdAmount := total.Mul(decimal.NewFromInt(int64(thresholdPercent))).Div(decimal.NewFromInt(100))

	res := TailResult{Spend: decimal.Zero}
	for i := len(ranked) - 1; i >= 0; i-- {
		if res.Spend.GreaterThanOrEqual(thresholdAmount) {
			break
		}
		b := ranked[i]
		res.Spend = res.Spend.Add(b.Total)
		res.Suppliers = append(res.Suppliers, TailRow{Supplier: b.Key, Amount: b.Total, Count: b.Count})
	}
	res.Count = len(res.Suppliers)
	if total.IsPositive() {
		res.SpendPercent = res.Spend.InexactFloat64() / total.InexactFloat64() * 100
	}
	return res
}
