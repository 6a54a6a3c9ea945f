// Package cli wires the planner into a cobra command tree: the full-screen
// planner by default, plus calc, prompt, config and version subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"subnet-planner/config"
	"subnet-planner/models"
	"subnet-planner/processor"
	"subnet-planner/tui"
	"subnet-planner/ui"
	"subnet-planner/utils"
)

var (
	version   = "dev" // set by the linker
	gitCommit = "unknown"
	buildDate = ""
)

// Exit codes returned by Execute.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInputError = 2
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfgFile string

	cfg       *models.Config
	logger    *log.Logger
	logCloser io.Closer
	proc      *processor.Processor
	writer    *utils.ReportWriter
}

// setup loads configuration and builds the logger and processor. The
// full-screen UI owns the terminal, so it logs to the configured file only.
func (a *app) setup(cmd *cobra.Command, fullScreen bool) error {
	cfg, used, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if fullScreen {
		a.logger, a.logCloser, err = utils.OpenLogFile(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = utils.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	}
	if err != nil {
		return err
	}

	if used != "" {
		a.logger.Debug("config loaded", "file", used)
	}
	a.proc = processor.NewProcessor(cfg, a.logger)
	a.writer = utils.NewReportWriter(cfg.Output.Directory)
	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// NewRootCmd builds the command tree. Each call returns independent state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "subnet-planner",
		Short: "Split an IPv4 CIDR block into equal-size subnets",
		Long: `Subnet Planner divides an IPv4 network into the smallest uniform set of
subnets that satisfies a requested count. The count is rounded up to the
next power of two; each subnet is reported with its netmask, broadcast
address and usable host range.

Without a subcommand the full-screen planner starts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, true); err != nil {
				return err
			}
			defer a.close()
			return tui.Run(a.cfg, a.proc, a.writer, a.logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "Path to a TOML configuration file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("output-dir", "", "Directory for exported reports")
	flags.Int("max-records", 0, "Largest number of subnets to materialise for json, yaml and exports (0 for no limit)")

	root.AddCommand(
		newCalcCmd(a),
		newPromptCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		ui.NewConsole(os.Stderr, true).PrintError(err)
		return exitCode(err)
	}
	return ExitOK
}

func exitCode(err error) int {
	var pe *models.PlanError
	if errors.As(err, &pe) {
		return ExitInputError
	}
	return ExitFailure
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "subnet-planner %s (commit %s", version, gitCommit)
			if buildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), ", built %s", buildDate)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ")")
		},
	}
}
