package filter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Criteria is a conjunctive record predicate. A nil/empty dimension matches
// every record; the zero Criteria is the identity filter. Date and amount
// bounds are inclusive. String sets are case-sensitive exact matches
// against the raw field value, never the Unknown sentinel.
type Criteria struct {
	Start *time.Time
	End   *time.Time

	Suppliers  []string
	Categories []string
	Locations  []string

	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsEmpty reports whether no dimension is constrained.
func (c Criteria) IsEmpty() bool {
	return c.Start == nil && c.End == nil &&
		len(c.Suppliers) == 0 && len(c.Categories) == 0 && len(c.Locations) == 0 &&
		c.MinAmount == nil && c.MaxAmount == nil
}

// Apply returns the subsequence of records matching every constrained
// dimension, in original order. It is total: a record missing a constrained
// field simply does not match, and an empty criteria returns the input
// unchanged.
func Apply(records []model.Record, c Criteria) []model.Record {
	if c.IsEmpty() {
		return records
	}

	suppliers := toSet(c.Suppliers)
	categories := toSet(c.Categories)
	locations := toSet(c.Locations)

	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matches(r, c, suppliers, categories, locations) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r model.Record, c Criteria, suppliers, categories, locations map[string]bool) bool {
	if c.Start != nil && r.Date.Before(*c.Start) {
		return false
	}
	if c.End != nil && r.Date.After(*c.End) {
		return false
	}
	if len(suppliers) > 0 && !suppliers[r.Supplier] {
		return false
	}
	if len(categories) > 0 && !categories[r.Category] {
		return false
	}
	if len(locations) > 0 && !locations[r.Location] {
		return false
	}
	if c.MinAmount != nil && r.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && r.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	return true
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
