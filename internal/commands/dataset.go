package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/filter"
	"github.com/spendlens-dev/spendlens/internal/loader"
	"github.com/spendlens-dev/spendlens/internal/model"
)

const flagDateFormat = "2006-01-02"

// datasetFlags binds the shared data-file and filter flags used by every
// analytics subcommand.
type datasetFlags struct {
	file       string
	from, to   string
	suppliers  []string
	categories []string
	locations  []string
	minAmount  string
	maxAmount  string
}

func (d *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.file, "file", "", "spend data file (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&d.from, "from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&d.to, "to", "", "end date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&d.suppliers, "supplier", nil, "restrict to supplier (repeatable)")
	cmd.Flags().StringSliceVar(&d.categories, "category", nil, "restrict to category (repeatable)")
	cmd.Flags().StringSliceVar(&d.locations, "location", nil, "restrict to location (repeatable)")
	cmd.Flags().StringVar(&d.minAmount, "min-amount", "", "minimum amount, inclusive")
	cmd.Flags().StringVar(&d.maxAmount, "max-amount", "", "maximum amount, inclusive")
}

// criteria converts the flag values into a filter.Criteria.
func (d *datasetFlags) criteria() (filter.Criteria, error) {
	c := filter.Criteria{
		Suppliers:  d.suppliers,
		Categories: d.categories,
		Locations:  d.locations,
	}

	if d.from != "" {
		t, err := time.Parse(flagDateFormat, d.from)
		if err != nil {
			return c, fmt.Errorf("parsing --from %q: %w", d.from, err)
		}
		c.Start = &t
	}
	if d.to != "" {
		t, err := time.Parse(flagDateFormat, d.to)
		if err != nil {
			return c, fmt.Errorf("parsing --to %q: %w", d.to, err)
		}
		c.End = &t
	}
	if d.minAmount != "" {
		v, err := decimal.NewFromString(d.minAmount)
		if err != nil {
			return c, fmt.Errorf("parsing --min-amount %q: %w", d.minAmount, err)
		}
		c.MinAmount = &v
	}
	if d.maxAmount != "" {
		v, err := decimal.NewFromString(d.maxAmount)
		if err != nil {
			return c, fmt.Errorf("parsing --max-amount %q: %w", d.maxAmount, err)
		}
		c.MaxAmount = &v
	}
	return c, nil
}

// load reads the data file, applies the filter flags, and returns the
// filtered dataset together with the upload batch result.
func (d *datasetFlags) load(cfg *config.Config) ([]model.Record, *loader.Result, error) {
	res, err := loader.LoadFile(d.file, loader.Options{
		SkipDuplicates: cfg.Loader.SkipDuplicates,
		DateFormats:    cfg.Loader.DateFormats,
	})
	if err != nil {
		return nil, nil, err
	}

	crit, err := d.criteria()
	if err != nil {
		return nil, nil, err
	}
	return filter.Apply(res.Records, crit), res, nil
}

// money renders a decimal amount with the workspace currency label.
func money(cfg *config.Config, v decimal.Decimal) string {
	return fmt.Sprintf("%s %s", cfg.Workspace.Currency, v.StringFixed(2))
}
