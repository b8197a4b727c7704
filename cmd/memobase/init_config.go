package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DayoWang/memobase/internal/config"
	"github.com/spf13/cobra"
)

func newInitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration to a file",
		Long: `Write the built-in default configuration to path (the --config value when
omitted). An existing file is left alone unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		// Runs without a session so a broken config file can be replaced.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := mustGetString(cmd, "config")
			if len(args) == 1 {
				path = args[0]
			}

			if !mustGetBool(cmd, "force") {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("failed to create %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(path, config.DefaultConfigBytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}
