package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/concentration"
)

func newRiskCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Supplier concentration and risk statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			r := concentration.Analyze(records)
			out := cmd.OutOrStdout()
			for _, e := range r.Entities {
				fmt.Fprintf(out, "%-30s %16s  %6.2f%%\n", e.Key, money(cfg, e.Total), e.SharePercent)
			}
			fmt.Fprintf(out, "\nHHI:                 %.0f (%s risk)\n", r.HHI, r.Risk)
			fmt.Fprintf(out, "Top-3 concentration: %.2f%%\n", r.Top3Percent)
			if r.Elevated {
				fmt.Fprintln(out, "Top-3 concentration exceeds 50% of spend")
			}

			opts.audit(cmd, cfg, "view", "risk", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}
