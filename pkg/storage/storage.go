package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage writes result files under a base directory.
type Storage struct {
	Dir string
}

// Path returns where name would be written.
func (s *Storage) Path(name string) string {
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// SaveFile replaces name with content. The file is written to a temporary
// sibling first, so a failed write never leaves a truncated result.
func (s *Storage) SaveFile(name string, content []byte) (string, error) {
	target := s.Path(name)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wto-*.tmp")
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("error saving file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	return target, nil
}

func (s *Storage) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
