package drilldown

import (
	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

// Selector names one entity value within a drillable dimension. The
// model.Unknown sentinel is a valid Name and selects the records whose
// underlying field is blank.
type Selector struct {
	Entity model.EntityType
	Name   string
}

// Result is the narrowed dataset plus its share of the parent total.
type Result struct {
	Records         []model.Record
	PercentOfParent float64
}

// Resolve filters parent down to the records whose selected dimension
// matches the selector and computes the subset's share of the parent
// total. Matching uses the grouping key, so a drill-down opened from an
// aggregate bucket always reconciles with that bucket: summing
// PercentOfParent over every distinct value of a dimension gives 100.
// A zero parent total yields percent 0.
func Resolve(parent []model.Record, sel Selector) Result {
	sub := make([]model.Record, 0)
	for _, r := range parent {
		if sel.Entity.Key(r) == sel.Name {
			sub = append(sub, r)
		}
	}

	parentTotal := aggregate.Totals(parent).Amount
	var percent float64
	if !parentTotal.IsZero() {
		subTotal := aggregate.Totals(sub).Amount
		percent = subTotal.InexactFloat64() / parentTotal.InexactFloat64() * 100
	}
	return Result{Records: sub, PercentOfParent: percent}
}
