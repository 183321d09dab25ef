// Package file persists cache entries as one file per key in a directory.
// Writes go through a temporary file and a rename, so a reader sees either the
// previous value or the new one.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// Store is a directory-backed CacheStore
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: slog.Default().With("component", "filecache"),
	}, nil
}

// Dir returns the directory entries are stored in
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the value stored under key. A missing file is a miss.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry %s: %w", key, err)
	}
	return data, true, nil
}

// Put atomically replaces the file for key
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(value)); err != nil {
		return fmt.Errorf("writing cache entry %s: %w", key, err)
	}

	s.logger.Debug("stored cache entry", "path", path, "bytes", len(value))
	return nil
}

// UpdatedAt returns the modification time of the file for key
func (s *Store) UpdatedAt(_ context.Context, key string) (time.Time, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return time.Time{}, false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading cache entry %s: %w", key, err)
	}
	return info.ModTime().UTC(), true, nil
}

func (s *Store) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid cache key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
