package hclconf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/buildstamp/internal/emit"
)

// writeSettings writes an HCL settings file into a temp dir and returns its path.
func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "buildstamp.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullSettingsFile(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
output {
  path = "build"
  type = "C++"
}

constants {
  release_major = 3
  product       = "frobnicator"
  experimental  = true
}
`)

	settings, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "build", settings.OutputPath)
	assert.Equal(t, "C++", settings.OutputType)

	// Constants come back sorted by name regardless of file order.
	require.Len(t, settings.Constants, 3)
	assert.Equal(t, []emit.Constant{
		{Name: "experimental", Value: true},
		{Name: "product", Value: "frobnicator"},
		{Name: "release_major", Value: int64(3)},
	}, settings.Constants)
}

func TestLoad_ConstantsOnly(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
constants {
  product = "frobnicator"
}
`)

	settings, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, settings.OutputPath)
	assert.Empty(t, settings.OutputType)
	require.Len(t, settings.Constants, 1)
}

func TestLoad_PartialOutputBlock(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
output {
  type = "C"
}
`)

	settings, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, settings.OutputPath)
	assert.Equal(t, "C", settings.OutputType)
	assert.Empty(t, settings.Constants)
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))

	require.Error(t, err)
}

func TestLoad_UnparsableFileFails(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
output {
  path = "build"
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_UnsupportedConstantTypeFails(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
constants {
  flags = ["a", "b"]
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestLoad_NonIntegerNumberFails(t *testing.T) {
	t.Parallel()

	path := writeSettings(t, `
constants {
  ratio = 1.5
}
`)

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}
