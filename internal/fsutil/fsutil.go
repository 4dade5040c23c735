// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
)

// DirExists reports whether path names an existing directory. A path that
// exists but is not a directory reports false with no error.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
