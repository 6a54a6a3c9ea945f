package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/ui"
)

type calcOptions struct {
	offset  uint64
	limit   uint64
	save    bool
	noColor bool
}

func newCalcCmd(a *app) *cobra.Command {
	opts := &calcOptions{}

	cmd := &cobra.Command{
		Use:   "calc [flags] CIDR COUNT",
		Short: "Partition a CIDR block and print the subnets",
		Long: `Partition CIDR into at least COUNT equal subnets and print them.

Flags must come before the arguments, so a negative COUNT reaches the
validator instead of being read as a flag.`,
		Example: `  subnet-planner calc 10.0.0.0/24 4
  subnet-planner calc --format json --limit 10 172.16.0.0/12 1000
  subnet-planner calc --save 192.168.0.0/16 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, false); err != nil {
				return err
			}
			return runCalc(cmd, a, opts, args[0], args[1])
		},
	}
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringP("format", "f", "", "Output format: text, json or yaml")
	cmd.Flags().Uint64Var(&opts.offset, "offset", 0, "Index of the first subnet to print")
	cmd.Flags().Uint64Var(&opts.limit, "limit", 0, "Number of subnets to print (0 for all)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Also write the full plan to the output directory")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored text output")

	return cmd
}

func runCalc(cmd *cobra.Command, a *app, opts *calcOptions, cidr, count string) error {
	out := cmd.OutOrStdout()
	req := processor.Request{CIDR: cidr, Count: count, Offset: opts.offset, Limit: opts.limit}

	part, err := a.proc.Plan(req)
	if err != nil {
		return err
	}

	format := a.cfg.Output.Format
	switch format {
	case models.FormatText:
		console := ui.NewConsole(out, a.cfg.Output.Color && !opts.noColor)
		console.PrintPlan(part, opts.offset, opts.limit)
	default:
		resp, err := a.proc.Calculate(req)
		if err != nil {
			return err
		}
		if err := a.writer.Encode(out, resp, format); err != nil {
			return err
		}
	}

	if !opts.save {
		return nil
	}

	report, err := a.proc.Report(part)
	if err != nil {
		return err
	}
	saveFormat := models.FormatYAML
	if format == models.FormatJSON {
		saveFormat = models.FormatJSON
	}
	path, err := a.writer.WriteReport(report, saveFormat)
	if err != nil {
		return err
	}
	a.logger.Info("report written", "path", path, "subnets", report.Total)
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", path)
	return nil
}
