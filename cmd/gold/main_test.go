package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The graft registry caches components on first use, so the scenarios share
// one workspace and run sequentially.
func TestRun(t *testing.T) {
	t.Setenv("GOLD_NO_PROGRESS", "1")
	t.Chdir(t.TempDir())

	manifest := `
targets:
  app:
    kind: executable
    sources: [main.c]
`
	require.NoError(t, os.WriteFile("gold.yaml", []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile("main.c", []byte("int main(void) { return 0; }\n"), 0o644))

	assert.Equal(t, 0, run([]string{"version"}), "version must succeed")
	assert.Equal(t, 1, run([]string{"frobnicate"}), "unknown commands must fail")
	assert.Equal(t, 0, run([]string{"clean"}), "clean on a fresh workspace must succeed")
}
