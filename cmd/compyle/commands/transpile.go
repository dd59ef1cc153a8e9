package commands

import (
	"fmt"
	"os"

	"compyle/internal/transpiler"
	"compyle/internal/transpiler/generator"
	"compyle/internal/transpiler/transformer"

	"github.com/spf13/cobra"
)

func newTranspileCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "transpile [program|file]...",
		Short: "Transpile toy-language programs to Python",
		Long: `Transpile toy-language programs to a standalone Python program.

Binds are specialized at transpile time exactly as the interpreter would
specialize them, so the generated program prints the same values.

Examples:
  compyle transpile prog.cpl                 # Output to stdout
  compyle transpile prog.cpl -o prog.py      # Output to file
  compyle transpile 'a := 3' '>>> (a / 2)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			source, err := readInputs(args)
			if err != nil {
				return err
			}

			t := transpiler.NewToyToPythonTranspiler(
				transpiler.NewToyParser(newParserOptions(cfg, log)...),
				transformer.NewToyProgramTransformer(log),
				generator.NewPythonCodeGenerator(),
			)
			code, err := t.Transpile(source)
			if err != nil {
				return fmt.Errorf("transpilation failed: %w", err)
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), code)
				return err
			}
			if err := os.WriteFile(output, []byte(code), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated Python code saved to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output .py file")
	return cmd
}
