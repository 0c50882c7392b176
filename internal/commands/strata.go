package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/config"
	"github.com/spendlens-dev/spendlens/internal/stats"
)

func newStrataCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Kraljic-style category stratification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			s := stats.Stratify(records)
			out := cmd.OutOrStdout()
			printQuadrant(out, cfg, "Strategic (high spend, few suppliers)", s.Strategic)
			printQuadrant(out, cfg, "Leverage (high spend, many suppliers)", s.Leverage)
			printQuadrant(out, cfg, "Bottleneck (low spend, few suppliers)", s.Bottleneck)
			printQuadrant(out, cfg, "Tactical (low spend, many suppliers)", s.Tactical)

			opts.audit(cmd, cfg, "view", "strata", res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	return cmd
}

func printQuadrant(out io.Writer, cfg *config.Config, title string, profiles []stats.CategoryProfile) {
	fmt.Fprintf(out, "%s\n", title)
	if len(profiles) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for _, p := range profiles {
		fmt.Fprintf(out, "  %-30s %16s  %d suppliers, %d transactions\n",
			p.Category, money(cfg, p.Spend), p.SupplierCount, p.Count)
	}
	fmt.Fprintln(out)
}
