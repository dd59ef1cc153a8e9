package commands

import (
	"fmt"
	"os"
	"strings"
)

// readInputs joins the program text of every argument. An argument naming
// an existing file contributes the file's content; any other argument is
// taken as program text.
func readInputs(args []string) (string, error) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || info.IsDir() {
			parts = append(parts, arg)
			continue
		}
		content, err := os.ReadFile(arg)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		parts = append(parts, strings.TrimRight(string(content), "\n"))
	}
	return strings.Join(parts, "\n"), nil
}
