package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newParetoCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "pareto",
		Short: "Cumulative supplier spend ranking (80/20 analysis)",
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
			for i, row := range stats.Pareto(records) {
				fmt.Fprintf(out, "%3d. %-30s %16s  cumulative %6.2f%%\n",
					i+1, row.Supplier, money(cfg, row.Amount), row.CumulativePercent)
			}

			opts.audit(cmd, cfg, "view", "pareto", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}

func newTailCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}
	var threshold int

	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Long-tail supplier spend analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			pct := threshold
			if pct == 0 {
				pct = cfg.Analytics.TailThresholdPercent
			}

			tail := stats.TailSpend(records, pct)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tail suppliers: %d, spend %s (%.2f%% of total)\n\n",
				tail.Count, money(cfg, tail.Spend), tail.SpendPercent)
			for _, s := range tail.Suppliers {
				fmt.Fprintf(out, "  %-30s %16s  (%d transactions)\n",
					s.Supplier, money(cfg, s.Amount), s.Count)
			}

			opts.audit(cmd, cfg, "view", "tail", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	cmd.Flags().IntVar(&threshold, "threshold", 0, "tail threshold percent (0 = workspace default)")
	return cmd
}
