// cmd/web-completions/main_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp directory
// PURPOSE: Test writing the packaged completion scripts

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/web/pkg/complete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "completions")
	require.NoError(t, writeAll(dir))

	for _, d := range complete.Dialects() {
		name, ok := scriptFiles[d]
		require.True(t, ok, "no file name for %s", d)

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		expected, err := complete.Emit(d, "web", "web")
		require.NoError(t, err)
		assert.Equal(t, expected, string(data))
	}
}
