// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBuildFiles are the names looked up, in order, when a directory is
// given instead of a build file.
var DefaultBuildFiles = []string{"build.xml", "build.hcl"}

// ErrNoBuildFile is returned when a directory holds none of DefaultBuildFiles.
var ErrNoBuildFile = errors.New("no build file found")

// ResolveBuildFile turns path into the absolute path of a build file. A
// regular file is returned as is; a directory is searched for the first of
// DefaultBuildFiles it contains.
func ResolveBuildFile(path string) (string, error) {
	if path == "" {
		panic("path must not be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("build file %s: %w", path, err)
	}
	if !info.IsDir() {
		return abs, nil
	}

	for _, name := range DefaultBuildFiles {
		candidate := filepath.Join(abs, name)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoBuildFile, abs)
}
