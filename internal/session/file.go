package session

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"coursetrack/internal/model"
)

var _ model.SessionStore = (*FileStore)(nil)

// FileStore persists the active user id as decimal text in a flat file. The
// file is created on login and removed on logout.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
	}
}

// Load returns the persisted user id. A missing or empty file means no
// session and maps to model.ErrNotFound.
func (s *FileStore) Load() (int64, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, model.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session file: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return 0, model.ErrNotFound
	}

	id, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse session file: %w", err)
	}

	return id, nil
}

func (s *FileStore) Save(userID int64) error {
	if err := os.WriteFile(s.path, []byte(strconv.FormatInt(userID, 10)), 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}
