package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens-dev/spendlens/internal/model"
)

func TestConsolidation(t *testing.T) {
	// IT has 3 suppliers and Office has 4; Travel's 2 suppliers fall
	// under the candidate threshold.
	records := []model.Record{
		rec("Acme", "IT", "500.00", date(2025, 1, 1)),
		rec("Globex", "IT", "300.00", date(2025, 1, 2)),
		rec("Initech", "IT", "200.00", date(2025, 1, 3)),
		rec("O1", "Office", "100.00", date(2025, 1, 4)),
		rec("O2", "Office", "100.00", date(2025, 1, 5)),
		rec("O3", "Office", "100.00", date(2025, 1, 6)),
		rec("O4", "Office", "100.00", date(2025, 1, 7)),
		rec("AirCo", "Travel", "900.00", date(2025, 1, 8)),
		rec("RailCo", "Travel", "900.00", date(2025, 1, 9)),
	}

	opps := Consolidation(records)

	require.Len(t, opps, 2)

	// Most fragmented category first.
	office := opps[0]
	assert.Equal(t, "Office", office.Category)
	assert.Equal(t, 4, office.SupplierCount)
	assert.True(t, office.TotalSpend.Equal(dec("400.00")))
	assert.True(t, office.PotentialSavings.Equal(dec("40.00")))

	it := opps[1]
	assert.Equal(t, "IT", it.Category)
	assert.Equal(t, 3, it.SupplierCount)
	assert.True(t, it.TotalSpend.Equal(dec("1000.00")))
	assert.True(t, it.PotentialSavings.Equal(dec("100.00")))

	// Suppliers ranked by spend within the category.
	require.Len(t, it.Suppliers, 3)
	assert.Equal(t, "Acme", it.Suppliers[0].Supplier)
	assert.Equal(t, "Globex", it.Suppliers[1].Supplier)
	assert.Equal(t, "Initech", it.Suppliers[2].Supplier)
	assert.True(t, it.Suppliers[0].Spend.Equal(dec("500.00")))
}

func TestConsolidation_CountTieBreaksOnSpend(t *testing.T) {
	records := []model.Record{
		rec("A1", "Alpha", "10.00", date(2025, 1, 1)),
		rec("A2", "Alpha", "10.00", date(2025, 1, 2)),
		rec("A3", "Alpha", "10.00", date(2025, 1, 3)),
		rec("B1", "Beta", "50.00", date(2025, 1, 4)),
		rec("B2", "Beta", "50.00", date(2025, 1, 5)),
		rec("B3", "Beta", "50.00", date(2025, 1, 6)),
	}

	opps := Consolidation(records)

	require.Len(t, opps, 2)
	assert.Equal(t, "Beta", opps[0].Category, "equal supplier counts order by spend")
	assert.Equal(t, "Alpha", opps[1].Category)
}

func TestConsolidation_BlankFieldsBucketed(t *testing.T) {
	records := []model.Record{
		rec("Acme", "", "100.00", date(2025, 1, 1)),
		rec("Globex", "", "50.00", date(2025, 1, 2)),
		rec("", "", "25.00", date(2025, 1, 3)),
	}

	opps := Consolidation(records)

	require.Len(t, opps, 1)
	assert.Equal(t, model.Unknown, opps[0].Category)
	assert.Equal(t, 3, opps[0].SupplierCount)
	assert.Equal(t, model.Unknown, opps[0].Suppliers[2].Supplier)
}

func TestConsolidation_NoCandidates(t *testing.T) {
	records := []model.Record{
		rec("Acme", "IT", "100.00", date(2025, 1, 1)),
		rec("Globex", "IT", "50.00", date(2025, 1, 2)),
	}

	assert.Empty(t, Consolidation(records))
	assert.Empty(t, Consolidation(nil))
}
