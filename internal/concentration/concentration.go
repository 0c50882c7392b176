package concentration

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// Level classifies supplier concentration risk from the HHI.
type Level string

const (
	Low      Level = "Low"
	Moderate Level = "Moderate"
	High     Level = "High"
)

// Fixed business thresholds. HHI bands follow the standard antitrust
// cutoffs on the 0-10000 scale.
const (
	moderateHHI        = 1500.0
	highHHI            = 2500.0
	topN               = 3
	elevatedTopPercent = 50.0
)

// EntityShare is one supplier's slice of total spend.
type EntityShare struct {
	Key          string
	Total        decimal.Decimal
	SharePercent float64
}

// Result holds the concentration statistics for one dataset.
type Result struct {
	Entities    []EntityShare
	HHI         float64
	Top3Percent float64
	Risk        Level
	Elevated    bool
}

// Analyze computes per-supplier spend shares, the Herfindahl-Hirschman
// Index, and the top-3 concentration ratio for a dataset. Zero-total
// datasets produce all-zero shares rather than a division error. The HHI
// is a sum of squared shares, so its value does not depend on how ties
// among equal-amount suppliers are ordered.
func Analyze(records []model.Record) Result {
	buckets := aggregate.GroupBy(records, model.Record.SupplierKey)
	ranked := aggregate.Ranked(buckets)
	total := aggregate.Totals(records).Amount.InexactFloat64()

	res := Result{Entities: make([]EntityShare, 0, len(ranked))}
	var topTotal decimal.Decimal
	for i, b := range ranked {
		var share float64
		if total != 0 {
			share = b.Total.InexactFloat64() / total * 100
		}
		res.Entities = append(res.Entities, EntityShare{
			Key:          b.Key,
			Total:        b.Total,
			SharePercent: share,
		})
		res.HHI += share * share
		if i < topN {
			topTotal = topTotal.Add(b.Total)
		}
	}
	if total != 0 {
		res.Top3Percent = topTotal.InexactFloat64() / total * 100
	}
	res.Risk = Classify(res.HHI)
	res.Elevated = res.Top3Percent > elevatedTopPercent
	return res
}

// Classify maps an HHI value to its risk band.
func Classify(hhi float64) Level {
	switch {
	case hhi >= highHHI:
		return High
	case hhi >= moderateHHI:
		return Moderate
	default:
		return Low
	}
}
