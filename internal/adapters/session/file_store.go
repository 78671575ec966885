// Package session persists the signed-in session between CLI runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// FileStore keeps the session as a JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) providers.SessionStore {
	return &FileStore{path: path}
}

// Save writes the session, replacing any previous one
func (s *FileStore) Save(ctx context.Context, session *entities.Session) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("failed to encode session", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apperrors.NewInternalError("failed to create session directory", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return apperrors.NewInternalError("failed to create session file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.NewInternalError("failed to write session file", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewInternalError("failed to write session file", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return apperrors.NewInternalError("failed to replace session file", err)
	}
	return nil
}

// Load reads the session
func (s *FileStore) Load(ctx context.Context) (*entities.Session, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewNotFoundError("no saved session")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read session file", err)
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.NewInternalError(fmt.Sprintf("corrupt session file %s", s.path), err)
	}
	return &session, nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.NewInternalError("failed to remove session file", err)
	}
	return nil
}
