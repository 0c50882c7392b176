package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Overview statistics for the filtered dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			o := stats.Summarize(records)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total spend:         %s\n", money(cfg, o.TotalSpend))
			fmt.Fprintf(out, "Transactions:        %d\n", o.TransactionCount)
			fmt.Fprintf(out, "Suppliers:           %d\n", o.SupplierCount)
			fmt.Fprintf(out, "Categories:          %d\n", o.CategoryCount)
			fmt.Fprintf(out, "Average transaction: %s\n", money(cfg, o.AvgTransaction))

			opts.audit(cmd, cfg, "view", "summary", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}
