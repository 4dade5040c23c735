package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "plain.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o600))

	ok, err := DirExists(tempDir)
	require.NoError(t, err)
	assert.True(t, ok, "an existing directory should report true")

	ok, err = DirExists(filepath.Join(tempDir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok, "a missing path should report false without error")

	ok, err = DirExists(filePath)
	require.NoError(t, err)
	assert.False(t, ok, "a regular file should report false")
}
