package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hoppxi/zbacklight/internal/config"
	"github.com/hoppxi/zbacklight/internal/utils"
	"github.com/hoppxi/zbacklight/pkg/backlightinfo"
	"github.com/hoppxi/zbacklight/pkg/operation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "0.1.0"

const usage = `Usage: zbacklight <option> [percent]

Options:
  -get             Print the current brightness in percent
  -set <percent>   Set the brightness to percent (0-100)
  -inc <percent>   Raise the brightness by percent points
  -dec <percent>   Lower the brightness by percent points

Commands:
  info             Print the backlight state as JSON or YAML
`

var rootCmd = &cobra.Command{
	Use:     "zbacklight",
	Version: Version,
	Short:   "Read and adjust the display backlight",
	Long:    "zbacklight reads and writes the kernel backlight control files",
	// -get, -set, -inc and -dec are single dash long options, which pflag
	// would split into shorthands.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			switch args[0] {
			case "-h", "-help", "--help":
				_, err := fmt.Fprint(cmd.OutOrStdout(), usage)
				return err
			case "-version", "--version":
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "zbacklight version %s\n", Version)
				return err
			}
		}

		op, err := ParseOperation(args)
		if err != nil {
			return err
		}

		log := newLogger()
		defer func() { _ = log.Sync() }()

		return run(cmd.OutOrStdout(), op, config.Config.Paths(), log)
	},
}

// run loads the snapshot before dispatching, for Get as well.
func run(out io.Writer, op operation.Operation, paths backlightinfo.Paths, log *zap.Logger) error {
	info, err := backlightinfo.Load(paths, log)
	if err != nil {
		return err
	}

	return operation.NewDisplay(paths, out, log).Apply(op, *info)
}

func newLogger() *zap.Logger {
	return utils.NewLogger(config.Config.Load().GetString(config.KeyLogLevel))
}

// ExecuteArgs runs the command line args (without the program name). A
// leading option goes straight to the root command: cobra would otherwise
// drop "-set" and take its value as a subcommand name, as in "-set info".
func ExecuteArgs(args []string) error {
	if len(args) > 0 && strings.HasPrefix(args[0], "-") {
		return rootCmd.RunE(rootCmd, args)
	}

	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func Execute() {
	if err := ExecuteArgs(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
