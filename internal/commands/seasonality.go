package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newSeasonalityCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "seasonality",
		Short: "Average spend per calendar month across years",
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
			for _, m := range stats.Seasonality(records) {
				fmt.Fprintf(out, "%s  %16s  (%d months observed)\n",
					m.Month, money(cfg, m.AverageSpend), m.Occurrences)
			}

			opts.audit(cmd, cfg, "view", "seasonality", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}
