package interpret_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"github.com/stretchr/testify/require"
)

// readProgram returns the source of testdata/programs/name.
// In Bazel tests, it uses runfiles to find the file.
// Outside of Bazel, it falls back to finding go.mod and using the module root.
func readProgram(t *testing.T, name string) string {
	t.Helper()
	rel := filepath.Join("testdata", "programs", name)

	path, err := bazel.Runfile(rel)
	if err != nil {
		path = filepath.Join(moduleRoot(t), rel)
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func moduleRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found")
		dir = parent
	}
}
