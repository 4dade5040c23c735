// Package emit renders a resolved build number into the selected dialect's
// source text and replaces the artifact file on disk.
package emit

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/buildstamp/internal/ctxlog"
	"github.com/vk/buildstamp/internal/dialect"
)

// Constant is an extra named constant rendered into the artifact alongside
// the build number. Value holds a string, an int64 or a bool; the settings
// loader guarantees the set.
type Constant struct {
	Name  string
	Value any
}

// Emitter writes generated source artifacts into one output directory.
type Emitter struct {
	dir string
}

// New creates an Emitter rooted at the given output directory.
func New(dir string) *Emitter {
	return &Emitter{dir: dir}
}

// Emit renders the build number (plus any extra constants) in the spec's
// dialect and writes the artifact file, replacing any previous one. It
// returns the path of the written file.
func (e *Emitter) Emit(ctx context.Context, spec dialect.OutputSpec, build uint32, extras []Constant) (string, error) {
	logger := ctxlog.FromContext(ctx)

	var text string
	switch spec.Dialect {
	case dialect.C:
		text = renderC(build, extras)
	case dialect.CPlusPlus:
		text = renderCPlusPlus(build, extras)
	case dialect.CSharp:
		text = renderCSharp(build, extras)
	default:
		return "", fmt.Errorf("cannot emit dialect %q", spec.Dialect)
	}

	path := filepath.Join(e.dir, spec.FileName)

	// Replace, never append: drop the previous artifact first. A missing
	// file is not an error.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to remove previous artifact %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", path, err)
	}
	logger.Debug("Artifact written.", "path", path, "dialect", spec.Dialect.String(), "build", build)

	return path, nil
}
