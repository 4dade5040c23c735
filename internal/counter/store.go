// Package counter owns the persisted build counter: a single-line plain-text
// file holding the decimal value of the last emitted build number.
//
// Resolution is a read-modify-write of that file and is not atomic across
// processes. Concurrent invocations against the same output directory race on
// the counter file; this is an accepted limitation of the tool.
package counter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vk/buildstamp/internal/ctxlog"
)

const (
	// Start is the value the counter resets to on first run and on range wrap.
	Start uint32 = 1
	// Max is the largest value the counter may hold.
	Max uint32 = 99999
	// FileName is the counter file name inside the output directory.
	FileName = "build_no.dat"
)

// Store loads, bounds, increments and persists the build counter for one
// output directory.
type Store struct {
	dir string
}

// New creates a Store rooted at the given output directory. The directory
// must already exist; callers validate that before resolving.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the counter file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Resolve determines the build number for the current invocation.
//
// With an explicit start value, that value is used directly (normalized into
// range) and the counter file is neither read nor written; the bypass is
// total and deliberate. Otherwise the persisted value is read, incremented,
// normalized into [Start, Max] and written back. A missing counter file and
// an unparsable one both resolve to Start. Any other I/O failure aborts the
// resolution.
func (s *Store) Resolve(ctx context.Context, explicit *uint64) (uint32, error) {
	logger := ctxlog.FromContext(ctx)

	if explicit != nil {
		value := clamp(*explicit)
		logger.Debug("Explicit start value supplied, counter file untouched.", "value", value)
		return value, nil
	}

	var resolved uint64
	raw, err := os.ReadFile(s.Path())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run in this directory: nothing to increment, the bound
		// step below turns the unresolved zero into Start.
		logger.Debug("No counter file found.", "path", s.Path())
	case err != nil:
		return 0, fmt.Errorf("failed to read counter file %s: %w", s.Path(), err)
	default:
		text := strings.TrimSpace(string(raw))
		parsed, parseErr := strconv.ParseUint(text, 10, 64)
		if parseErr != nil {
			logger.Warn("Counter file content is not a number, resetting.", "path", s.Path(), "content", text)
			resolved = uint64(Start)
		} else {
			resolved = parsed + 1
		}
	}

	value := clamp(resolved)

	if err := os.WriteFile(s.Path(), []byte(strconv.FormatUint(uint64(value), 10)), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write counter file %s: %w", s.Path(), err)
	}
	logger.Debug("Counter persisted.", "path", s.Path(), "value", value)

	return value, nil
}

// clamp normalizes a resolved value into [Start, Max]; zero and out-of-range
// values reset to Start.
func clamp(v uint64) uint32 {
	if v == 0 || v > uint64(Max) {
		return Start
	}
	return uint32(v)
}
