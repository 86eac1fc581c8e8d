package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Load tables, staff and menu items from a YAML file",
		Long: `Load tables, staff and menu items from a YAML file.

Entries whose name already exists are skipped.

Example:
  restaurant seed configs/seed.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(rootOpts.EnvFile)
			if err != nil {
				return err
			}

			seed, err := ReadSeedFile(args[0])
			if err != nil {
				return err
			}

			logger, err := NewLogger(cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg, logger)
			if err != nil {
				return err
			}
			defer closeDatabase(db, logger)

			report, err := ApplySeed(cmd.Context(), NewCompositionRoot(cfg, db, logger), seed)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"seeded %d tables, %d staff, %d menu items (%d skipped)\n",
				report.Tables, report.Staff, report.MenuItems, report.Skipped,
			)
			return err
		},
	}
}
