package app

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Store is the key-value contract both components persist to. Values are
// strings (JSON-serialized records); the full value is rewritten on every
// mutation, there is no incremental persistence.
type Store interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// MemStore is an in-memory Store, used by tests and throwaway sessions.
type MemStore struct {
	items map[string]string
}

// NewMemStore constructs an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]string)}
}

// GetItem returns the value for key.
func (s *MemStore) GetItem(key string) (string, bool) {
	v, ok := s.items[key]
	return v, ok
}

// SetItem stores value under key.
func (s *MemStore) SetItem(key, value string) error {
	s.items[key] = value
	return nil
}

// RemoveItem deletes key. Removing an absent key is not an error.
func (s *MemStore) RemoveItem(key string) error {
	delete(s.items, key)
	return nil
}

// FileStore is a Store backed by a single JSON file. The key map is loaded
// once at construction and every mutation rewrites the whole file, so two
// FileStores on the same path behave like two browser tabs sharing storage:
// each holds its own copy and writes are last-writer-wins.
type FileStore struct {
	path  string
	mu    sync.RWMutex
	items map[string]string
}

// NewFileStore opens (or initializes) a FileStore at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, items: make(map[string]string)}
	if err := s.Reload(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

// Reload replaces the in-memory copy with the file contents.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	items := make(map[string]string)
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// GetItem returns the value for key from the in-memory copy.
func (s *FileStore) GetItem(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// SetItem stores value under key and rewrites the backing file.
func (s *FileStore) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return s.saveLocked()
}

// RemoveItem deletes key and rewrites the backing file. Removing an absent
// key is not an error.
func (s *FileStore) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return s.saveLocked()
}

// saveLocked writes the store to disk (caller must hold the lock).
func (s *FileStore) saveLocked() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return err
	}

	// Keep the previous state around
	if _, err := os.Stat(s.path); err == nil {
		backupFile := s.path + BackupSuffix
		if err := os.Rename(s.path, backupFile); err != nil {
			log.Printf("Warning: failed to create backup: %v", err)
		}
	}

	// Write to temp file first, then rename into place
	tmpFile := s.path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return err
	}
	return os.Rename(tmpFile, s.path)
}
