package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/loader"
)

func newUploadCommand(opts *globalOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Validate a spend file and report the import outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.requireCapability(access.CapUploadData); err != nil {
				return err
			}
			cfg := opts.loadConfig()

			res, err := loader.LoadFile(file, loader.Options{
				SkipDuplicates: cfg.Loader.SkipDuplicates,
				DateFormats:    cfg.Loader.DateFormats,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Batch:      %s\n", res.BatchID)
			fmt.Fprintf(out, "Rows:       %d\n", res.Total)
			fmt.Fprintf(out, "Imported:   %d\n", res.Imported)
			fmt.Fprintf(out, "Duplicates: %d\n", res.Duplicates)
			fmt.Fprintf(out, "Failed:     %d\n", res.Failed)
			for _, re := range res.Errors {
				fmt.Fprintf(out, "  %s\n", re.Error())
			}

			opts.audit(cmd, cfg, "upload", file, res.BatchID)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "spend data file (.csv or .xlsx)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
