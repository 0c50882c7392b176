package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newYoYCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "yoy",
		Short: "Year-over-year spend comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, y := range stats.YearOverYear(records) {
				growth := "     -"
				if y.HasGrowth {
					growth = fmt.Sprintf("%+.2f%%", y.GrowthPercent)
				}
				fmt.Fprintf(out, "%d  %16s  avg %12s  %d transactions  %s\n",
					y.Year, money(cfg, y.TotalSpend), money(cfg, y.AvgTransaction), y.Count, growth)
			}

			opts.audit(cmd, cfg, "view", "yoy", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}
