package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/access"
	"github.com/spendlens-dev/spendlens/internal/auditlog"
	"github.com/spendlens-dev/spendlens/internal/buildinfo"
	"github.com/spendlens-dev/spendlens/internal/config"
)

// globalOptions holds root-level persistent flag values shared by every
// subcommand.
type globalOptions struct {
	configPath string
	role       string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "spendlens",
		Short:   "Procurement spend analytics",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "spendlens.yaml", "workspace config file")
	rootCmd.PersistentFlags().StringVar(&opts.role, "role", string(access.RoleAdmin), "acting role for permission checks")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newUploadCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newSuppliersCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand(opts))
	rootCmd.AddCommand(newLocationsCommand(opts))
	rootCmd.AddCommand(newRiskCommand(opts))
	rootCmd.AddCommand(newDrillCommand(opts))
	rootCmd.AddCommand(newTrendCommand(opts))
	rootCmd.AddCommand(newSeasonalityCommand(opts))
	rootCmd.AddCommand(newYoYCommand(opts))
	rootCmd.AddCommand(newParetoCommand(opts))
	rootCmd.AddCommand(newTailCommand(opts))
	rootCmd.AddCommand(newStrataCommand(opts))
	rootCmd.AddCommand(newConsolidationCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))

	return rootCmd
}

// loadConfig reads the workspace config, falling back to defaults when the
// file is absent so analytics commands work on a bare data file.
func (o *globalOptions) loadConfig() *config.Config {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Default("spendlens")
	}
	return cfg
}

// requireCapability gates a UI action on the acting role.
func (o *globalOptions) requireCapability(c access.Capability) error {
	role := access.Role(o.role)
	if !access.Valid(role) {
		return fmt.Errorf("unknown role %q", o.role)
	}
	if !access.Can(role, c) {
		return fmt.Errorf("role %q may not %s", o.role, c)
	}
	return nil
}

// audit appends one audit trail entry when the workspace enables it.
// Audit failures are reported but never fail the command.
func (o *globalOptions) audit(cmd *cobra.Command, cfg *config.Config, action, resource, batchID string) {
	if !cfg.Audit.Enabled {
		return
	}
	user := cfg.Audit.User
	if user == "" {
		user = "cli"
	}
	err := auditlog.Append(".", []auditlog.Entry{{
		Timestamp: time.Now(),
		User:      user,
		Action:    action,
		Resource:  resource,
		BatchID:   batchID,
	}})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: audit log: %v\n", err)
	}
}
