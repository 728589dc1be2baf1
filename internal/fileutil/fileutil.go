// Package fileutil provides temp-workspace and path utility functions.
package fileutil

import (
	"fmt"
	"os"
)

// TempWorkspace creates a temporary directory for one pipeline run.
// Returns the directory path and a cleanup function that removes the
// directory and everything in it. Callers must invoke cleanup on every
// exit path to avoid filesystem litter.
func TempWorkspace(prefix string) (dir string, cleanup func(), err error) {
	dir, err = os.MkdirTemp("", prefix)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp workspace: %w", err)
	}
	cleanup = func() { _ = os.RemoveAll(dir) }
	return dir, cleanup, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
