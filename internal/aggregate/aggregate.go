package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// Bucket accumulates one group's slice of a dataset.
type Bucket struct {
	Key   string
	Count int
	Total decimal.Decimal
}

// KeyFunc maps a record to its grouping key. Key functions substitute
// model.Unknown for blank fields so no record is silently excluded.
type KeyFunc func(model.Record) string

// GroupBy buckets records by keyFn. Every record lands in exactly one
// bucket, so bucket totals and counts always reconcile exactly with
// Totals over the same dataset.
func GroupBy(records []model.Record, keyFn KeyFunc) map[string]Bucket {
	buckets := make(map[string]Bucket)
	for _, r := range records {
		key := keyFn(r)
		b := buckets[key]
		b.Key = key
		b.Count++
		b.Total = b.Total.Add(r.Amount)
		buckets[key] = b
	}
	return buckets
}

// Ranked flattens buckets into a deterministic ranked list: total
// descending, ties broken by key ascending.
func Ranked(buckets map[string]Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Summary holds whole-dataset totals.
type Summary struct {
	Amount decimal.Decimal
	Count  int
}

// Totals reduces a dataset to its total amount and record count. Empty
// input yields zero values, never an error.
func Totals(records []model.Record) Summary {
	var s Summary
	for _, r := range records {
		s.Amount = s.Amount.Add(r.Amount)
		s.Count++
	}
	return s
}
