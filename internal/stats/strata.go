package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens-dev/spendlens/internal/model"
)

// CategoryProfile describes one category's spend and supplier footprint.
type CategoryProfile struct {
	Category      string
	Spend         decimal.Decimal
	SupplierCount int
	Count         int
}

// Strata is the Kraljic-style quadrant split of categories.
type Strata struct {
	Strategic  []CategoryProfile // high spend, few suppliers
	Leverage   []CategoryProfile // high spend, many suppliers
	Bottleneck []CategoryProfile // low spend, few suppliers
	Tactical   []CategoryProfile // low spend, many suppliers
}

// Stratify splits categories into quadrants using the median category
// spend and the median distinct-supplier count as the axis cutoffs.
// At-or-above-median spend counts as high; at-or-below-median supplier
// count counts as few.
func Stratify(records []model.Record) Strata {
	type catAcc struct {
		spend     decimal.Decimal
		count     int
		suppliers map[string]bool
	}
	acc := make(map[string]*catAcc)
	for _, r := range records {
		key := r.CategoryKey()
		a := acc[key]
		if a == nil {
			a = &catAcc{suppliers: make(map[string]bool)}
			acc[key] = a
		}
		a.spend = a.spend.Add(r.Amount)
		a.count++
		a.suppliers[r.SupplierKey()] = true
	}

	profiles := make([]CategoryProfile, 0, len(acc))
	for key, a := range acc {
		profiles = append(profiles, CategoryProfile{
			Category:      key,
			Spend:         a.spend,
			SupplierCount: len(a.suppliers),
			Count:         a.count,
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		if !profiles[i].Spend.Equal(profiles[j].Spend) {
			return profiles[i].Spend.GreaterThan(profiles[j].Spend)
		}
		return profiles[i].Category < profiles[j].Category
	})

	medianSpend := medianDecimal(profiles)
	medianSuppliers := medianSupplierCount(profiles)

	var s Strata
	for _, p := range profiles {
		highSpend := p.Spend.GreaterThanOrEqual(medianSpend)
		fewSuppliers := p.SupplierCount <= medianSuppliers
		switch {
		case highSpend && fewSuppliers:
			s.Strategic = append(s.Strategic, p)
		case highSpend:
			s.Leverage = append(s.Leverage, p)
		case fewSuppliers:
			s.Bottleneck = append(s.Bottleneck, p)
		default:
			s.Tactical = append(s.Tactical, p)
		}
	}
	return s
}

func medianDecimal(profiles []CategoryProfile) decimal.Decimal {
	if len(profiles) == 0 {
		return decimal.Zero
	}
	spends := make([]decimal.Decimal, len(profiles))
	for i, p := range profiles {
		spends[i] = p.Spend
	}
	sort.Slice(spends, func(i, j int) bool { return spends[i].LessThan(spends[j]) })
	return spends[len(spends)/2]
}

func medianSupplierCount(profiles []CategoryProfile) int {
	if len(profiles) == 0 {
		return 0
	}
	counts := make([]int, len(profiles))
	for i, p := range profiles {
		counts[i] = p.SupplierCount
	}
	sort.Ints(counts)
	return counts[len(counts)/2]
}
