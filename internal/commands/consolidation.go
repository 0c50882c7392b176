package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newConsolidationCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "consolidation",
		Short: "Supplier consolidation opportunities by category",
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
			opps := stats.Consolidation(records)
			if len(opps) == 0 {
				fmt.Fprintln(out, "No consolidation opportunities (no category has more than 2 suppliers)")
			}
			for _, o := range opps {
				fmt.Fprintf(out, "%-30s %d suppliers, spend %s, potential savings %s\n",
					o.Category, o.SupplierCount, money(cfg, o.TotalSpend), money(cfg, o.PotentialSavings))
				for _, s := range o.Suppliers {
					fmt.Fprintf(out, "  %-30s %16s\n", s.Supplier, money(cfg, s.Spend))
				}
				fmt.Fprintln(out)
			}

			opts.audit(cmd, cfg, "view", "consolidation", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}
