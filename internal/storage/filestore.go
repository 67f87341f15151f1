// Package storage persists the user profile document on disk.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/internal/domain"
)

// ErrNoProfile is returned by Load when the profile file does not exist yet.
var ErrNoProfile = errors.New("profile does not exist")

// FileStore keeps one user document in a YAML, JSON or TOML file; the format follows
// the file extension.
type FileStore struct {
	path   string
	format config.DocumentFormat
	parser *config.InputParser
	mu     sync.Mutex
}

// NewFileStore returns a store for path.
func NewFileStore(path string) (*FileStore, error) {
	format, err := config.FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return &FileStore{
		path:   path,
		format: format,
		parser: config.NewInputParser(),
	}, nil
}

// Path returns the file the store reads and writes.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads and validates the profile.
func (fs *FileStore) Load(_ context.Context) (*domain.User, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", fs.path, ErrNoProfile)
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	user, err := fs.parser.Parse(fs.format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fs.path, err)
	}
	return user, nil
}

// Save writes the profile through a temporary file in the same directory so a
// failed write never leaves a truncated document behind.
func (fs *FileStore) Save(_ context.Context, user *domain.User) error {
	data, err := config.Encode(fs.format, user)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".profile-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("failed to replace profile: %w", err)
	}
	return nil
}
