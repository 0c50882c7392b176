package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/export"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	ds := &datasetFlags{}
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered dataset to CSV or XLSX",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapExportData); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			records, res, err := ds.load(cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			switch strings.ToLower(filepath.Ext(outPath)) {
			case ".csv":
				err = export.WriteCSV(f, records)
			case ".xlsx":
				err = export.WriteXLSX(f, records, cfg.Workspace.Name)
			default:
				return fmt.Errorf("unsupported export extension %q (want .csv or .xlsx)", filepath.Ext(outPath))
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), outPath)
			opts.audit(cmd, cfg, "export", outPath, res.BatchID)
			return nil
		},
	}

	ds.register(cmd)
	cmd.Flags().StringVar(&outPath, "out", "", "output file, .csv or .xlsx (required)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
