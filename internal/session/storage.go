package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Storage persists the raw token string between console runs. Implementations
// store nothing but the token; identity is always rederived from it.
type Storage interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

const tokenFileName = "token"

// FileStorage keeps the token in a single file under the user's config
// directory, created with owner-only permissions.
type FileStorage struct {
	path string
}

// DefaultTokenPath returns ~/.warehouse-console/token.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".warehouse-console", tokenFileName), nil
}

// NewFileStorage creates file-backed storage at path, creating the parent
// directory with 0700 permissions. An empty path uses DefaultTokenPath.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		var err error
		path, err = DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create token directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

// Load reads the persisted token. A missing file is not an error.
func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token with owner-only permissions.
func (s *FileStorage) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the token file. Clearing an already-absent token is a no-op.
func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// MemoryStorage holds the token in memory. Used by tests and by callers that
// must not touch the filesystem.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStorage creates empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the stored token.
func (s *MemoryStorage) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

// Save stores the token.
func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear discards the stored token.
func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
