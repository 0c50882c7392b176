package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRecords() []model.Record {
	return []model.Record{
		{Supplier: "Acme", Category: "IT", Location: "Austin", Date: date(2025, 1, 10), Amount: dec("100.00")},
		{Supplier: "Globex", Category: "IT", Location: "Boston", Date: date(2025, 2, 15), Amount: dec("250.00")},
		{Supplier: "", Category: "Office", Location: "", Date: date(2025, 3, 20), Amount: dec("75.50")},
		{Supplier: "Acme", Category: "Office", Location: "Austin", Date: date(2025, 4, 1), Amount: dec("500.00")},
	}
}

func TestApply_IdentityCriteria(t *testing.T) {
	records := testRecords()

	got := Apply(records, Criteria{})

	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i], got[i], "order must be preserved")
	}
}

func TestApply_DateRangeInclusive(t *testing.T) {
	records := testRecords()
	start := date(2025, 2, 15)
	end := date(2025, 3, 20)

	got := Apply(records, Criteria{Start: &start, End: &end})

	require.Len(t, got, 2)
	assert.Equal(t, "Globex", got[0].Supplier)
	assert.Equal(t, "Office", got[1].Category)
}

func TestApply_SupplierSetIsCaseSensitiveRawMatch(t *testing.T) {
	records := testRecords()

	got := Apply(records, Criteria{Suppliers: []string{"acme"}})
	assert.Empty(t, got, "matching is case-sensitive")

	got = Apply(records, Criteria{Suppliers: []string{"Acme"}})
	require.Len(t, got, 2)

	// Filtering by the sentinel value must not pick up blank-field records:
	// substitution happens at grouping time, not filtering time.
	got = Apply(records, Criteria{Suppliers: []string{model.Unknown}})
	assert.Empty(t, got)
}

func TestApply_BlankFieldFailsConstrainedDimension(t *testing.T) {
	records := testRecords()

	got := Apply(records, Criteria{Locations: []string{"Austin", "Boston"}})
	require.Len(t, got, 2, "blank-location record excluded")
	for _, r := range got {
		assert.NotEmpty(t, r.Location)
	}

	// Unconstrained location keeps the blank-location record.
	got = Apply(records, Criteria{Categories: []string{"Office"}})
	require.Len(t, got, 2)
	assert.Equal(t, "", got[0].Supplier)
}

func TestApply_AmountRangeInclusive(t *testing.T) {
	records := testRecords()
	min := dec("100.00")
	max := dec("250.00")

	got := Apply(records, Criteria{MinAmount: &min, MaxAmount: &max})

	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("100.00")))
	assert.True(t, got[1].Amount.Equal(dec("250.00")))
}

func TestApply_DimensionsAreConjunctive(t *testing.T) {
	records := testRecords()
	start := date(2025, 3, 1)

	got := Apply(records, Criteria{
		Suppliers: []string{"Acme"},
		Start:     &start,
	})

	require.Len(t, got, 1)
	assert.Equal(t, date(2025, 4, 1), got[0].Date)
}

func TestApply_Idempotent(t *testing.T) {
	records := testRecords()
	c := Criteria{Categories: []string{"IT"}}

	once := Apply(records, c)
	twice := Apply(once, c)

	assert.Equal(t, once, twice)
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Criteria{Suppliers: []string{"Acme"}})
	assert.Empty(t, got)
}
