// Package credentials supplies the active user's identity and API token.
// The store is a JSON file written atomically, in the same manner as the
// rest of the on-disk state.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoUser is returned when no user is logged in. Callers must treat this
// as "no user" and clear any user-scoped state.
var ErrNoUser = errors.New("no active user")

// Credentials holds the active account's identity and token.
type Credentials struct {
	UserID string `json:"user_id"`
	Token  string `json:"token,omitempty"`
}

// Store is the interface the engine depends on for identity resolution.
type Store interface {
	// Active returns the current credentials, or ErrNoUser.
	Active() (Credentials, error)
	// SetActive records the active account.
	SetActive(Credentials) error
	// Clear forgets the active account.
	Clear() error
}

// FileStore persists credentials in a JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Active reads the stored credentials.
func (s *FileStore) Active() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credentials{}, ErrNoUser
		}
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// Corrupted file counts as logged out.
		return Credentials{}, ErrNoUser
	}
	if creds.UserID == "" {
		return Credentials{}, ErrNoUser
	}
	return creds, nil
}

// SetActive writes the credentials atomically.
func (s *FileStore) SetActive(creds Credentials) error {
	if creds.UserID == "" {
		return errors.New("credentials require a user identity")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}

// Clear removes the stored credentials.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// StaticStore returns fixed credentials, for tests and scripted use.
type StaticStore struct {
	Credentials Credentials
}

// Active returns the fixed credentials, or ErrNoUser when unset.
func (s *StaticStore) Active() (Credentials, error) {
	if s.Credentials.UserID == "" {
		return Credentials{}, ErrNoUser
	}
	return s.Credentials, nil
}

// SetActive replaces the fixed credentials.
func (s *StaticStore) SetActive(creds Credentials) error {
	s.Credentials = creds
	return nil
}

// Clear forgets the fixed credentials.
func (s *StaticStore) Clear() error {
	s.Credentials = Credentials{}
	return nil
}
