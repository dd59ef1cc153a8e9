package main

import (
	"context"
	"os"

	"compyle/cmd/compyle/commands"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.Background(), commands.NewRootCmd(),
		fang.WithVersion(commands.Version),
		fang.WithCommit(commands.GitCommit),
		fang.WithErrorHandler(commands.PrintError),
	); err != nil {
		os.Exit(1)
	}
}
