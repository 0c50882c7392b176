package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/aggregate"
	"github.com/spendlens-dev/spendlens/internal/drilldown"
	"github.com/spendlens-dev/spendlens/internal/model"
)

const drillRowLimit = 20

func newDrillCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}
	var entity, name string

	cmd := &cobra.Command{
		Use:   "drill",
		Short: "Drill into one entity's slice of the filtered dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapViewAnalytics); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			entityType, err := model.ParseEntityType(entity)
			if err != nil {
				return err
			}

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			dr := drilldown.Resolve(records, drilldown.Selector{Entity: entityType, Name: name})
			totals := aggregate.Totals(dr.Records)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s = %q: %d transactions, %s (%.2f%% of parent)\n\n",
				entity, name, totals.Count, money(cfg, totals.Amount), dr.PercentOfParent)

			for i, r := range dr.Records {
				if i == drillRowLimit {
					fmt.Fprintf(out, "  ... and %d more\n", len(dr.Records)-drillRowLimit)
					break
				}
				fmt.Fprintf(out, "  %s  %-24s %-20s %14s\n",
					r.Date.Format("2006-01-02"), r.SupplierKey(), r.CategoryKey(), money(cfg, r.Amount))
			}

			opts.audit(cmd, cfg, "view", "drill:"+entity+"="+name, res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	cmd.Flags().StringVar(&entity, "entity", "", "entity type: supplier, category, or location (required)")
	_ = cmd.MarkFlagRequired("entity")
	cmd.Flags().StringVar(&name, "name", "", "entity name; \"Unknown\" selects blank-field records (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
