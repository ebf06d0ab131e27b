package cart

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the persistence port for a cart snapshot. Read returns nil data
// when no snapshot exists yet; both operations may fail, and failures are
// non-fatal to the cart itself.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStorage persists the cart snapshot as a single JSON file
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to the given path
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

var _ Storage = (*FileStorage)(nil)

// Read returns the stored snapshot, or nil when none has been written yet
func (fs *FileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}
	return data, nil
}

// Write overwrites the stored snapshot
func (fs *FileStorage) Write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return fmt.Errorf("failed to create cart directory: %w", err)
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}
