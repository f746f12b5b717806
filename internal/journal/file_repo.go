package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Repository abstracts durable storage of the whole check-in log.
// Save rewrites the single named record; Load reads it once at startup.
type Repository interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// NopRepository keeps the log in memory only.
type NopRepository struct{}

func (NopRepository) Load() ([]Entry, error) { return nil, nil }
func (NopRepository) Save([]Entry) error     { return nil }

// FileRepository stores the log as one JSON array on disk.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	return &FileRepository{path: path}, nil
}

// Load returns the persisted log. A missing, empty or unparseable file
// yields an empty log: local persistence is a best-effort cache and
// corruption must not block startup.
func (r *FileRepository) Load() ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	var entries []Entry
	dec := json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		// Corrupt payload: start empty rather than failing startup.
		return nil, nil
	}
	return entries, nil
}

func (r *FileRepository) Save(entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open write: %w", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
