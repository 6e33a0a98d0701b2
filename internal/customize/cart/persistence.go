package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore persists the cart as a JSON file, standing in for the browser's
// local storage: read once at startup, rewritten after every mutation,
// last writer wins.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (f *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStore) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(f.path, data, 0o644)
}

// MemoryStore is an in-memory Persistence for tests.
type MemoryStore struct {
	items []Item
	// Saves counts Save calls, letting tests assert write-after-mutation.
	Saves int
}

func NewMemoryStore(initial []Item) *MemoryStore { return &MemoryStore{items: initial} }

func (m *MemoryStore) Load() ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryStore) Save(items []Item) error {
	m.items = make([]Item, len(items))
	copy(m.items, items)
	m.Saves++
	return nil
}
