package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSessionStorage persists each session key as its own file under a
// state directory, so a single field write never rewrites the others.
type FileSessionStorage struct {
	basePath string
}

// NewFileSessionStorage creates the state directory if needed.
func NewFileSessionStorage(basePath string) (*FileSessionStorage, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session state directory: %w", err)
	}

	return &FileSessionStorage{
		basePath: basePath,
	}, nil
}

func (fs *FileSessionStorage) keyPath(key string) string {
	return filepath.Join(fs.basePath, key)
}

func (fs *FileSessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(fs.keyPath(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session key %s: %w", key, err)
	}
	return string(data), true, nil
}

func (fs *FileSessionStorage) Set(ctx context.Context, key, value string) error {
	// Write-then-rename so a crash mid-write cannot leave a torn value.
	tmp := fs.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write session key %s: %w", key, err)
	}
	if err := os.Rename(tmp, fs.keyPath(key)); err != nil {
		return fmt.Errorf("failed to commit session key %s: %w", key, err)
	}
	return nil
}

func (fs *FileSessionStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(fs.keyPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

func (fs *FileSessionStorage) Close() error {
	return nil
}
