package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DayoWang/memobase/internal/app"
	"github.com/DayoWang/memobase/internal/config"
	"github.com/DayoWang/memobase/internal/profile"
	"github.com/DayoWang/memobase/internal/prompts"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yaml"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const sessionKey contextKey = iota

// session is built once per invocation and shared by all subcommands.
type session struct {
	logger       *slog.Logger
	cfg          *config.Config
	configurator *profile.Configurator
	topics       []profile.Topic
	prompts      *prompts.Registry
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "memobase",
		Short: "Inspect profile topics and prompt templates",
		Long: `memobase resolves the user profile taxonomy (built-in topics merged with
overwrite_user_profiles / additional_user_profiles from the config file) and
prints it the way extraction prompts embed it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadEnv(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			}

			s, err := newSession(cmd, mustGetString(cmd, "config"), mustGetBool(cmd, "verbose"))
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), sessionKey, s))
			return nil
		},
	}

	root.PersistentFlags().String("config", defaultConfigPath, "Path to config file (missing file means defaults)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Verbose debug output")

	root.AddCommand(
		newTopicsCmd(),
		newSubtopicsCmd(),
		newExportCmd(),
		newPromptCmd(),
		newInitConfigCmd(),
	)
	return root
}

func newSession(cmd *cobra.Command, cfgPath string, verbose bool) (*session, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger := app.NewLogger(cmd.ErrOrStderr(), level)

	defaults, err := profile.DefaultTopics()
	if err != nil {
		return nil, err
	}
	configurator := profile.NewConfigurator(defaults, logger)
	topics, err := configurator.Effective(cfg.Profile.Overrides())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile topics: %w", err)
	}

	return &session{
		logger:       logger,
		cfg:          cfg,
		configurator: configurator,
		topics:       topics,
		prompts:      prompts.NewDefaultRegistry(),
	}, nil
}

// getSession retrieves the session from context.
func getSession(cmd *cobra.Command) *session {
	if s := cmd.Context().Value(sessionKey); s != nil {
		return s.(*session)
	}
	return nil
}

// mustGetString retrieves a string flag, panicking if it was never defined.
func mustGetString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q: %v", name, err))
	}
	return v
}

// mustGetBool retrieves a bool flag, panicking if it was never defined.
func mustGetBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q: %v", name, err))
	}
	return v
}
