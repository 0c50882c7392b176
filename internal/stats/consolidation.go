package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// A category becomes a consolidation candidate above this many distinct
// suppliers.
const consolidationMinSuppliers = 2

// Flat savings estimate applied to a candidate category's spend.
var consolidationSavingsRate = decimal.NewFromFloat(0.10)

// SupplierSpend is one supplier's spend inside a category.
type SupplierSpend struct {
	Supplier string
	Spend    decimal.Decimal
}

// ConsolidationOpportunity flags a category bought from enough distinct
// suppliers that consolidating them could cut cost.
type ConsolidationOpportunity struct {
	Category         string
	SupplierCount    int
	TotalSpend       decimal.Decimal
	Suppliers        []SupplierSpend // spend descending
	PotentialSavings decimal.Decimal
}

// Consolidation returns categories purchased from more than two distinct
// suppliers, most fragmented first, each with its supplier spend ranking
// and a 10% savings estimate on the category's spend.
func Consolidation(records []model.Record) []ConsolidationOpportunity {
	byCategory := make(map[string][]model.Record)
	for _, r := range records {
		key := r.CategoryKey()
		byCategory[key] = append(byCategory[key], r)
	}

	var out []ConsolidationOpportunity
	for category, subset := range byCategory {
		ranked := aggregate.Ranked(aggregate.GroupBy(subset, model.Record.SupplierKey))
		if len(ranked) <= consolidationMinSuppliers {
			continue
		}

		total := aggregate.Totals(subset).Amount
		suppliers := make([]SupplierSpend, 0, len(ranked))
		for _, b := range ranked {
			suppliers = append(suppliers, SupplierSpend{Supplier: b.Key, Spend: b.Total})
		}
		out = append(out, ConsolidationOpportunity{
			Category:         category,
			SupplierCount:    len(ranked),
			TotalSpend:       total,
			Suppliers:        suppliers,
			PotentialSavings: total.Mul(consolidationSavingsRate),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SupplierCount != out[j].SupplierCount {
			return out[i].SupplierCount > out[j].SupplierCount
		}
		if !out[i].TotalSpend.Equal(out[j].TotalSpend) {
			return out[i].TotalSpend.GreaterThan(out[j].TotalSpend)
		}
		return out[i].Category < out[j].Category
	})
	return out
}
