package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"compyle/internal/interpret"
	"compyle/internal/parser"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const banner = `I heard you like to eval
so we put an eval in your eval
so you can eval while you eval
Type :names to list bindings, :quit to exit.`

func newREPLCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd, opts)
		},
	}
}

func runREPL(cmd *cobra.Command, opts *options) error {
	cfg, log, err := opts.setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := cfg.HistoryPath(); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &session{
		parser: newParser(cfg, log),
		interp: interpret.New(interpret.WithLogger(log)),
		out:    out,
		errOut: cmd.ErrOrStderr(),
	}
	for {
		line, err := ln.Prompt(cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if s.handle(line) {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
	}
}

// session executes REPL input against one persistent interpreter. Errors
// are reported and the session continues.
type session struct {
	parser *parser.ToyParser
	interp *interpret.Interpreter
	out    io.Writer
	errOut io.Writer
	lineNo int
}

// handle processes one line of input and reports whether the session ends.
func (s *session) handle(line string) bool {
	s.lineNo++

	switch cmd := strings.TrimSpace(line); {
	case cmd == ":quit":
		return true
	case cmd == ":names":
		ns := s.interp.Namespace()
		for _, name := range ns.Names() {
			e, _ := ns.Get(name)
			fmt.Fprintf(s.out, "%s := %s\n", name, e)
		}
		return false
	case strings.HasPrefix(cmd, ":"):
		fmt.Fprintf(s.errOut, "unknown command %s. Type :quit to exit.\n", cmd)
		return false
	}

	stmt, ok, err := s.parser.ParseLine(line, s.lineNo)
	if err != nil {
		printError(s.errOut, err)
		return false
	}
	if !ok {
		return false
	}

	v, reported, err := s.interp.Execute(stmt)
	if err != nil {
		printError(s.errOut, err)
		return false
	}
	if reported {
		fmt.Fprintln(s.out, v)
	}
	return false
}
