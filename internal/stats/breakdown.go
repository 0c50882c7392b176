package stats

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// Row is one ranked (label, amount, count) line for a chart or table.
type Row struct {
	Label  string
	Amount decimal.Decimal
	Count  int
}

// BySupplier returns the ranked spend breakdown by supplier.
func BySupplier(records []model.Record) []Row {
	return breakdown(records, model.Record.SupplierKey)
}

// ByCategory returns the ranked spend breakdown by category.
func ByCategory(records []model.Record) []Row {
	return breakdown(records, model.Record.CategoryKey)
}

// ByLocation returns the ranked spend breakdown by location.
func ByLocation(records []model.Record) []Row {
	return breakdown(records, model.Record.LocationKey)
}

func breakdown(records []model.Record, keyFn aggregate.KeyFunc) []Row {
	ranked := aggregate.Ranked(aggregate.GroupBy(records, keyFn))
	rows := make([]Row, 0, len(ranked))
	for _, b := range ranked {
		rows = append(rows, Row{Label: b.Key, Amount: b.Total, Count: b.Count})
	}
	return rows
}
