package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/model"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newSuppliersCommand(opts *globalOptions) *cobra.Command {
	return newBreakdownCommand(opts, "suppliers", "Ranked spend breakdown by supplier", stats.BySupplier)
}

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	return newBreakdownCommand(opts, "categories", "Ranked spend breakdown by category", stats.ByCategory)
}

func newLocationsCommand(opts *globalOptions) *cobra.Command {
	return newBreakdownCommand(opts, "locations", "Ranked spend breakdown by location", stats.ByLocation)
}

func newBreakdownCommand(opts *globalOptions, use, short string, breakdown func([]model.Record) []stats.Row) *cobra.Command {
	ds := &datasetFlags{}
	var limit int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			rows := breakdown(records)
			max := limit
			if max == 0 {
				max = cfg.Analytics.ChartLimit
			}
			if max > 0 && len(rows) > max {
				rows = rows[:max]
			}

			out := cmd.OutOrStdout()
			for i, row := range rows {
				fmt.Fprintf(out, "%3d. %-30s %16s  (%d transactions)\n",
					i+1, row.Label, money(cfg, row.Amount), row.Count)
			}

			opts.audit(cmd, cfg, "view", use, res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows (0 = workspace default)")
	return cmd
}
