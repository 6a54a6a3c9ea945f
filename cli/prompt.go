package cli

import (
	"github.com/spf13/cobra"

	"subnet-planner/ui"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		pageSize uint64
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Plan subnets with line-by-line prompts",
		Long:  "Ask for a CIDR block and a count on the terminal, re-prompting on invalid input. Useful where the full-screen planner cannot run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			console := ui.NewConsole(cmd.OutOrStdout(), a.cfg.Output.Color && !noColor)
			return ui.RunInteractiveMode(ui.NewPrompter(cmd.InOrStdin(), console), a.proc, pageSize)
		},
	}

	cmd.Flags().Uint64Var(&pageSize, "page-size", 16, "Subnets shown before asking to continue (0 for all)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
