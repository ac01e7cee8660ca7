package client

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

// CredentialStore persists the issued token and user profile between
// requests, the way a browser client keeps them in local storage.
type CredentialStore interface {
	Token() string
	User() *User
	Save(token string, user *User) error
	Clear() error
}

// MemoryStore keeps credentials for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *User
}

// NewMemoryStore returns an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *MemoryStore) Save(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

// FileStore persists credentials as JSON at a fixed path so sessions
// survive process restarts.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileCredentials struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// NewFileStore returns a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() fileCredentials {
	var creds fileCredentials
	b, err := os.ReadFile(s.path)
	if err != nil {
		return creds
	}
	_ = json.Unmarshal(b, &creds)
	return creds
}

func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Token
}

func (s *FileStore) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().User
}

func (s *FileStore) Save(token string, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(fileCredentials{Token: token, User: user})
	if err != nil {
		return err
	}
	// 0600: the file holds a bearer credential.
	return os.WriteFile(s.path, b, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
