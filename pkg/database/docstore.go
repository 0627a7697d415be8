package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DocStore 單一 JSON 文件作為 document store
// 所有寫入走同一把鎖，避免 read-modify-write 競爭
type DocStore struct {
	path string
	mu   sync.RWMutex
}

// document 頂層 section name -> raw JSON
type document map[string]json.RawMessage

// OpenDocStore open or create the backing file
func OpenDocStore(path string) (*DocStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create docstore directory: %w", err)
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			return nil, fmt.Errorf("failed to create docstore file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat docstore file: %w", err)
	}

	return &DocStore{path: path}, nil
}

// Path returns the backing file path
func (s *DocStore) Path() string {
	return s.path
}

func (s *DocStore) load() (document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read docstore file: %w", err)
	}
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode docstore file: %w", err)
	}
	return doc, nil
}

// persist 先寫 temp 再 rename，避免讀到寫一半的文件
func (s *DocStore) persist(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode docstore document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write docstore temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace docstore file: %w", err)
	}
	return nil
}

// ViewSection decode one section snapshot under the read lock
// 未知 section 回傳零值，不是 error
func ViewSection[T any](s *DocStore, section string) (T, error) {
	var out T

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return out, err
	}

	raw, ok := doc[section]
	if !ok {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode section %q: %w", section, err)
	}
	return out, nil
}

// UpdateSection read-modify-write one section under the store-wide write lock
// fn 收到的是當前 section 內容 (不存在時為零值)，回傳要寫回的內容
func UpdateSection[T any](s *DocStore, section string, fn func(T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	var cur T
	if raw, ok := doc[section]; ok {
		if err := json.Unmarshal(raw, &cur); err != nil {
			return fmt.Errorf("failed to decode section %q: %w", section, err)
		}
	}

	next, err := fn(cur)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode section %q: %w", section, err)
	}
	doc[section] = raw

	return s.persist(doc)
}
