package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newTrendCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}
	var months int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Monthly spend trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			window := months
			if window == 0 {
				window = cfg.Analytics.TrendMonths
			}

			out := cmd.OutOrStdout()
			for _, p := range stats.MonthlyTrend(records, window, time.Now()) {
				fmt.Fprintf(out, "%s  %16s  (%d transactions)\n", p.Month, money(cfg, p.Amount), p.Count)
			}

			opts.audit(cmd, cfg, "view", "trend", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	cmd.Flags().IntVar(&months, "months", 0, "trailing window in months (0 = workspace default)")
	return cmd
}
