// Package fsio is the default filesystem binding for callers of this
// module: a byte-slice loader and an atomic byte-slice writer. The core
// NBT/MCA codecs never call this package directly — they accept bytes in
// and return bytes (or delegate to a caller-supplied writer) out — but
// most callers want a working filesystem binding out of the box.
package fsio

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the entire file at path into memory.
func Load(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fsio: load %s: %w", path, err)
	}
	return b, nil
}

// Write atomically replaces the file at path with data: it creates any
// missing parent directories, writes to a temp file in the same
// directory, fsyncs it, then renames it into place.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("fsio: create parent dir for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, ".nbtkit-tmp-*")
	if err != nil {
		return fmt.Errorf("fsio: create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("fsio: write temp file for %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsio: sync temp file for %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("fsio: close temp file for %s: %w", path, err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("fsio: rename temp file into %s: %w", path, err)
	}
	return nil
}
