package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestExamples_UpToDate checks every examples/<name>/plan.yaml against the
// data_vector.impala committed next to it.
func TestExamples_UpToDate(t *testing.T) {
	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	plans, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*", "plan.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, plans)

	for _, plan := range plans {
		dir := filepath.Dir(plan)

		t.Run(filepath.Base(dir), func(t *testing.T) {
			generated := filepath.Join(dir, "data_vector.impala")
			_, err := os.Stat(generated)
			require.NoError(t, err)

			res := runCLI(t, "check", "-c", plan, "-o", generated)
			require.Equal(t, 0, res.code, "%s\n%s", res.stdout, res.stderr)
		})
	}
}
