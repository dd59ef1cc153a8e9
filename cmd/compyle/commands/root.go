// Package commands provides the CLI commands for the compyle tool.
package commands

import (
	"io"
	"strings"

	"compyle/internal/config"
	"compyle/internal/debug"
	"compyle/internal/parser"

	"github.com/charmbracelet/fang"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every command.
type options struct {
	configPath    string
	showParsing   bool
	showInterpret bool
	showTranspile bool
}

// NewRootCmd builds the compyle command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "compyle [program|file]...",
		Short: "Toy language interpreter and Python transpiler",
		Long: `compyle runs programs of a small arithmetic language with exact rationals.

Each argument is a path to a program file or, if no such file exists, the
program text itself. Without arguments an interactive session is started.

Usage:
  compyle 'a := 3' '>>> (a / 4)'    Run statements given as arguments
  compyle prog.cpl                  Run a program file
  compyle transpile prog.cpl        Print the equivalent Python program
  compyle                           Start the REPL`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(cmd, opts)
			}
			return runPrograms(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the config file (default $COMPYLE_CONFIG or ~/.compyle/config.toml)")
	flags.BoolVar(&opts.showParsing, "show-parsing", false, "Show parsing details")
	flags.BoolVar(&opts.showInterpret, "show-interpret", false, "Show statement interpretation details")
	flags.BoolVar(&opts.showTranspile, "show-transpile", false, "Show transpiled source code")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newTranspileCmd(opts))
	rootCmd.AddCommand(newREPLCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the configuration and builds the debug logger writing to the
// command's error stream. Flags add channels to those from the config file.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *debug.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath, false)
	} else {
		cfg, err = config.Load(config.DefaultPath(), true)
	}
	if err != nil {
		return nil, nil, err
	}

	channels, err := cfg.DebugChannels()
	if err != nil {
		return nil, nil, err
	}
	for ch, on := range map[debug.Channel]bool{
		debug.Parsing:   o.showParsing,
		debug.Interpret: o.showInterpret,
		debug.Transpile: o.showTranspile,
	} {
		if on {
			channels = append(channels, ch)
		}
	}
	return cfg, debug.New(cmd.ErrOrStderr(), channels...), nil
}

func newParserOptions(cfg *config.Config, log *debug.Logger) []parser.Option {
	return []parser.Option{
		parser.WithMaxDepth(cfg.Parser.MaxDepth),
		parser.WithLogger(log),
	}
}

func newParser(cfg *config.Config, log *debug.Logger) *parser.ToyParser {
	return parser.NewToyParser(newParserOptions(cfg, log)...)
}

var errorColor = color.New(color.FgRed)

// PrintError is the fang error handler.
func PrintError(w io.Writer, _ fang.Styles, err error) {
	printError(w, err)
}

// printError reports err in red on w.
func printError(w io.Writer, err error) {
	_, _ = errorColor.Fprintln(w, strings.TrimRight(err.Error(), "\n"))
}
