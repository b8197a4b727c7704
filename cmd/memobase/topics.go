package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/DayoWang/memobase/internal/profile"
	"github.com/spf13/cobra"
)

var errNoSession = errors.New("session not initialized")

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Print the effective profile topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd)
			if s == nil {
				return errNoSession
			}
			topics := s.topics
			if mustGetBool(cmd, "defaults") {
				topics = s.configurator.Defaults()
			}
			fmt.Fprintln(cmd.OutOrStdout(), profile.RenderAll(topics))
			return nil
		},
	}
	cmd.Flags().Bool("defaults", false, "Print the built-in topics, ignoring config overrides")
	return cmd
}

func newSubtopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtopics <topic>",
		Short: "Print the sub-topics of one topic",
		Long: `Print the sub-topics of every topic with the given name. The name is
unified first, so "Basic Info" finds basic_info. Prints None when nothing matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd)
			if s == nil {
				return errNoSession
			}
			lines := profile.Subtopics(profile.Unify(args[0]), s.topics)
			fmt.Fprintln(cmd.OutOrStdout(), lines.String())
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the effective profile topics as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd)
			if s == nil {
				return errNoSession
			}
			out, err := profile.ExportYAML(s.topics)
			if err != nil {
				return err
			}

			path := mustGetString(cmd, "output")
			if path == "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			s.logger.Info("exported profile topics", "path", path, "topics", len(s.topics))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write YAML to this file instead of stdout")
	return cmd
}
