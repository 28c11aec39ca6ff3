// Package store persists pipeline documents as flat files keyed by
// logical name. There is at most one writer per document and no
// concurrent invocations, so no locking is needed.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound reports a document that has not been written yet.
var ErrNotFound = errors.New("document not found")

// Logical document names used by the pipeline.
const (
	Description = "description"
	Profile     = "profile"
	Billing     = "billing"
	Report      = "report"
)

// fileNames keeps the on-disk names of the original tool so existing
// data directories remain readable.
var fileNames = map[string]string{
	Description: "project_description.txt",
	Profile:     "project_profile.json",
	Billing:     "mock_billing.json",
	Report:      "cost_optimization_report.json",
}

// Store is a flat-file document store rooted at a data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Path resolves a logical document name to its file path.
func (s *Store) Path(name string) string {
	file, ok := fileNames[name]
	if !ok {
		file = name + ".json"
	}
	return filepath.Join(s.dir, file)
}

// Exists reports whether the named document has been written.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// ReadJSON reads the named document into v.
func (s *Store) ReadJSON(name string, v any) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}

// WriteJSON writes v as the named document. The write goes through a
// temp file and rename, so a crash mid-write leaves the previous
// document intact.
func (s *Store) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return s.writeAtomic(name, append(data, '\n'))
}

// ReadText reads the named document as plain text.
func (s *Store) ReadText(name string) (string, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

// WriteText writes plain text as the named document.
func (s *Store) WriteText(name, text string) error {
	return s.writeAtomic(name, []byte(text))
}

func (s *Store) writeAtomic(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := s.Path(name)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
