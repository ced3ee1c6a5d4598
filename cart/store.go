package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// StorageKey is the fixed key the cart is persisted under.
const StorageKey = "woodlandCart"

// Store persists cart contents between sessions.
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStore keeps the cart as a JSON file in a directory, one file per
// storage key.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey+".json")}
}

func (s *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}
	return items, nil
}

func (s *FileStore) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	return nil
}
