// Package output handles the plain-text files at stage boundaries.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureExt appends ext to name unless it already carries it. Stage
// commands accept names with or without extension.
func EnsureExt(name, ext string) string {
	if filepath.Ext(name) != ext {
		return name + ext
	}
	return name
}

// WriteText writes content to path atomically: the file is written next to
// its destination and renamed into place, so a failed stage never leaves a
// partial output file. Parent directories are created as needed.
func WriteText(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	return nil
}
