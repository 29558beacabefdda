package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one file per key inside a directory.
type FileStore struct {
	Dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("file store needs a data directory")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating data directory: %v", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (f *FileStore) path(key Key) string {
	return filepath.Join(f.Dir, string(key)+".json")
}

func (f *FileStore) Get(_ context.Context, key Key) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", key, err)
	}
	return data, nil
}

// Put writes to a temp file and renames it over the old one.
func (f *FileStore) Put(_ context.Context, key Key, value []byte) error {
	tmp, err := os.CreateTemp(f.Dir, string(key)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %s: %v", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing %s: %v", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("error saving %s: %v", key, err)
	}
	return nil
}

func (f *FileStore) Delete(_ context.Context, key Key) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error deleting %s: %v", key, err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
