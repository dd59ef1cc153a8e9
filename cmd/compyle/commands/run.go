package commands

import (
	"fmt"

	"compyle/internal/interpret"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [program|file]...",
		Short: "Run toy-language programs",
		Long: `Run toy-language programs and print every evaluated value on its own line.

Examples:
  compyle run prog.cpl
  compyle run 'foo := 2 : 3' 'bar := (foo / 3)' '>>> bar'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrograms(cmd, opts, args)
		},
	}
}

// runPrograms parses all inputs as one program and prints each reported
// value as soon as it is computed. Execution stops at the first error.
func runPrograms(cmd *cobra.Command, opts *options, args []string) error {
	cfg, log, err := opts.setup(cmd)
	if err != nil {
		return err
	}

	source, err := readInputs(args)
	if err != nil {
		return err
	}

	program, err := newParser(cfg, log).Parse(source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for v, err := range interpret.Run(program, interpret.WithLogger(log)) {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
	}
	return nil
}
