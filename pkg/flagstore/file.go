package flagstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultFileName is the state file name inside the config directory.
const DefaultFileName = "state.json"

// FileStore keeps flags in a single JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store in dir.
// If dir is empty, defaults to ~/.config/repocards/
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "repocards")
	}
	return &FileStore{path: filepath.Join(dir, DefaultFileName)}, nil
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() map[string]bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]bool{}
	}
	flags := map[string]bool{}
	if err := json.Unmarshal(data, &flags); err != nil {
		return map[string]bool{}
	}
	return flags
}

func (s *FileStore) save(flags map[string]bool) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(key string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.load()[key]
	return v, ok
}

func (s *FileStore) Set(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags := s.load()
	flags[key] = value
	return s.save(flags)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flags := s.load()
	if _, ok := flags[key]; !ok {
		return nil
	}
	delete(flags, key)
	return s.save(flags)
}

var _ Store = (*FileStore)(nil)
