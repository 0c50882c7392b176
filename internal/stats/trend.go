package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/model"
)

const monthKeyFormat = "2006-01"

// TrendPoint is one month's spend in a chronological series.
type TrendPoint struct {
	Month  string // "2006-01"
	Amount decimal.Decimal
	Count  int
}

// MonthlyTrend returns per-month totals for the trailing window of months,
// oldest first. The window is measured back from asOf so results are
// reproducible in tests.
func MonthlyTrend(records []model.Record, months int, asOf time.Time) []TrendPoint {
	cutoff := asOf.AddDate(0, 0, -months*30)

	var windowed []model.Record
	for _, r := range records {
		if !r.Date.Before(cutoff) {
			windowed = append(windowed, r)
		}
	}

	buckets := aggregate.GroupBy(windowed, func(r model.Record) string {
		return r.Date.Format(monthKeyFormat)
	})

	points := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		points = append(points, TrendPoint{Month: b.Key, Amount: b.Total, Count: b.Count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// MonthAverage is the average spend for one calendar month across years.
type MonthAverage struct {
	Month        string // "Jan" .. "Dec"
	AverageSpend decimal.Decimal
	Occurrences  int // distinct (year, month) cells observed
}

// Seasonality averages each calendar month's total spend across all years
// in the dataset. It always returns 12 rows; months with no data report a
// zero average and zero occurrences.
func Seasonality(records []model.Record) []MonthAverage {
	// Total per (year, month) cell first, then average cells per month.
	cells := aggregate.GroupBy(records, func(r model.Record) string {
		return r.Date.Format(monthKeyFormat)
	})

	sums := make(map[time.Month]decimal.Decimal)
	counts := make(map[time.Month]int)
	for key, b := range cells {
		t, err := time.Parse(monthKeyFormat, key)
		if err != nil {
			continue
		}
		sums[t.Month()] = sums[t.Month()].Add(b.Total)
		counts[t.Month()]++
	}

	out := make([]MonthAverage, 0, 12)
	for m := time.January; m <= time.December; m++ {
		row := MonthAverage{Month: m.String()[:3], Occurrences: counts[m]}
		if counts[m] > 0 {
			row.AverageSpend = sums[m].Div(decimal.NewFromInt(int64(counts[m])))
		}
		out = append(out, row)
	}
	return out
}

// YearRow is one year's totals in a year-over-year comparison.
type YearRow struct {
	Year           int
	TotalSpend     decimal.Decimal
	Count          int
	AvgTransaction decimal.Decimal
	GrowthPercent  float64
	HasGrowth      bool // false for the first year (nothing to compare)
}

// YearOverYear returns per-year totals in ascending year order with growth
// against the prior year. Growth is 0 when the prior total is 0.
func YearOverYear(records []model.Record) []YearRow {
	buckets := aggregate.GroupBy(records, func(r model.Record) string {
		return r.Date.Format("2006")
	})

	years := make([]int, 0, len(buckets))
	byYear := make(map[int]aggregate.Bucket, len(buckets))
	for key, b := range buckets {
		t, err := time.Parse("2006", key)
		if err != nil {
			continue
		}
		years = append(years, t.Year())
		byYear[t.Year()] = b
	}
	sort.Ints(years)

	rows := make([]YearRow, 0, len(years))
	for i, y := range years {
		b := byYear[y]
		row := YearRow{Year: y, TotalSpend: b.Total, Count: b.Count}
		if b.Count > 0 {
			row.AvgTransaction = b.Total.Div(decimal.NewFromInt(int64(b.Count)))
		}
		if i > 0 {
			row.HasGrowth = true
			prev := byYear[years[i-1]].Total
			if prev.IsPositive() {
				diff := b.Total.Sub(prev)
				row.GrowthPercent = diff.InexactFloat64() / prev.InexactFloat64() * 100
			}
		}
		rows = append(rows, row)
	}
	return rows
}
