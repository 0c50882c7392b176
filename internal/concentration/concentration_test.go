package concentration

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

func rec(supplier, amount string) model.Record {
	return model.Record{
		Supplier: supplier,
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:   dec(amount),
	}
}

func TestAnalyze_ConcentratedSpend(t *testing.T) {
	// S1 600, S2 300, S3 100 -> shares 60/30/10, HHI 4600, top-3 100%.
	records := []model.Record{
		rec("S1", "600.00"),
		rec("S2", "300.00"),
		rec("S3", "100.00"),
	}

	r := Analyze(records)

	require.Len(t, r.Entities, 3)
	assert.Equal(t, "S1", r.Entities[0].Key)
	assert.InDelta(t, 60.0, r.Entities[0].SharePercent, 1e-9)
	assert.InDelta(t, 30.0, r.Entities[1].SharePercent, 1e-9)
	assert.InDelta(t, 10.0, r.Entities[2].SharePercent, 1e-9)
	assert.InDelta(t, 4600.0, r.HHI, 1e-9)
	assert.Equal(t, High, r.Risk)
	assert.InDelta(t, 100.0, r.Top3Percent, 1e-9)
	assert.True(t, r.Elevated)
}

func TestAnalyze_Empty(t *testing.T) {
	r := Analyze(nil)

	assert.Empty(t, r.Entities)
	assert.Zero(t, r.HHI)
	assert.Zero(t, r.Top3Percent)
	assert.Equal(t, Low, r.Risk)
	assert.False(t, r.Elevated)
}

func TestAnalyze_ZeroTotalDataset(t *testing.T) {
	records := []model.Record{rec("A", "0"), rec("B", "0")}

	r := Analyze(records)

	require.Len(t, r.Entities, 2)
	for _, e := range r.Entities {
		assert.Zero(t, e.SharePercent)
	}
	assert.Zero(t, r.HHI)
	assert.Zero(t, r.Top3Percent)
}

func TestAnalyze_Monopoly(t *testing.T) {
	r := Analyze([]model.Record{rec("OnlyCorp", "1234.56")})

	assert.InDelta(t, 10000.0, r.HHI, 1e-6)
	assert.Equal(t, High, r.Risk)
	assert.InDelta(t, 100.0, r.Top3Percent, 1e-6)
}

func TestAnalyze_UniformSpendApproachesZero(t *testing.T) {
	var records []model.Record
	for i := 0; i < 100; i++ {
		records = append(records, rec("S"+string(rune('A'+i%26))+string(rune('a'+i/26)), "10.00"))
	}

	r := Analyze(records)

	// 100 equal suppliers -> HHI = 100 * 1^2 = 100.
	assert.InDelta(t, 100.0, r.HHI, 1e-6)
	assert.Equal(t, Low, r.Risk)
}

func TestAnalyze_SharesSumTo100(t *testing.T) {
	records := []model.Record{
		rec("A", "33.33"), rec("B", "123.45"), rec("C", "0.01"),
		rec("D", "999.99"), rec("E", "42.00"),
	}

	r := Analyze(records)

	var sum float64
	for _, e := range r.Entities {
		sum += e.SharePercent
	}
	assert.InEpsilon(t, 100.0, sum, 1e-6)
}

func TestAnalyze_HHIIndependentOfTieOrder(t *testing.T) {
	// Three suppliers with equal spend: HHI is a sum of squares, so any
	// ordering of the tie gives the same value.
	records := []model.Record{rec("B", "100"), rec("A", "100"), rec("C", "100")}

	r := Analyze(records)

	expected := 3 * (100.0 / 3.0) * (100.0 / 3.0)
	assert.InDelta(t, expected, r.HHI, 1e-9)
}

func TestClassify_Bands(t *testing.T) {
	tests := []struct {
		hhi  float64
		want Level
	}{
		{0, Low},
		{1499.99, Low},
		{1500, Moderate},
		{2499.99, Moderate},
		{2500, High},
		{10000, High},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.hhi), "hhi=%v", tt.hhi)
	}
}

func TestAnalyze_TopThreeWithFewerEntities(t *testing.T) {
	records := []model.Record{rec("A", "70"), rec("B", "30")}

	r := Analyze(records)

	assert.InDelta(t, 100.0, r.Top3Percent, 1e-9)
	assert.True(t, r.Elevated)
}
