package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt [id]",
		Short: "Print a prompt template, or list prompt IDs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := getSession(cmd)
			if s == nil {
				return errNoSession
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(out, strings.Join(s.prompts.IDs(), "\n"))
				return nil
			}

			if !s.prompts.Has(args[0]) {
				return fmt.Errorf("unknown prompt %q (available: %s)", args[0], strings.Join(s.prompts.IDs(), ", "))
			}
			p := s.prompts.Get(args[0])

			if mustGetBool(cmd, "kwargs") {
				data, err := json.Marshal(p.Kwargs().Map())
				if err != nil {
					return fmt.Errorf("failed to encode kwargs: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprint(out, p.Prompt())
			return nil
		},
	}
	cmd.Flags().Bool("kwargs", false, "Print the request metadata as JSON instead of the template")
	return cmd
}
