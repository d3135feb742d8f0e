package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sajidul-dev/adboard/backend/internal/models"
)

// FileStore persists each collection as a pretty-printed JSON array file.
//
// Layout:
//
//	data_dir/
//	  users.json
//	  posts.json
//	  ...
//
// Writes go to a temp file in the same directory followed by a rename, so a
// crash mid-write leaves the previous file intact and readers never see a
// half-written array.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// ReadAll returns the stored documents; a missing file is an empty
// collection, not an error.
func (s *FileStore) ReadAll(ctx context.Context, collection string) ([]models.Document, error) {
	if err := Validate(collection); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Document{}, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}
	var docs []models.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupted, collection, err)
	}
	return docs, nil
}

// WriteAll replaces the collection file via write-new-then-rename.
func (s *FileStore) WriteAll(ctx context.Context, collection string, docs []models.Document) error {
	if err := Validate(collection); err != nil {
		return err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	tmp, err := os.CreateTemp(s.dir, collection+".*.tmp")
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit collection %s: %w", collection, err)
	}
	return nil
}
