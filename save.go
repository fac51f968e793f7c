package binarc

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile serializes the archive and writes it to path atomically
// (temp file + rename). Entry source offsets are updated to match the new
// file, which becomes the archive's backing file for lazy loads.
func (a *Archive) WriteFile(path string) error {
	data, err := a.Write(true)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}
	a.path = path
	a.SetModified(false)
	return nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".binarc-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
