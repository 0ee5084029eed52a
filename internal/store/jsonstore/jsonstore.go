package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/store"
)

// JSON-backed memo storage. Single file, human-readable, portable.
// No locking; writes come only from `pagedlist seed`.

// DataFileName is used when no path is configured.
const DataFileName = "memos.json"

// DefaultPath resolves DataFileName in the working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DataFileName), nil
}

// Load reads every memo in the file. A missing file is an empty list.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save overwrites the file with items.
func Save(path string, items []model.Item) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Source pages the file's memos. The file is re-read for every first-page
// request so that a refresh picks up edits.
type Source struct {
	path string
	mem  *store.MemorySource
}

// NewSource returns a source over the file at path.
func NewSource(path string) *Source {
	return &Source{path: path, mem: store.NewMemorySource(nil)}
}

// ListPage implements store.Source.
func (s *Source) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	if req.First() {
		items, err := Load(s.path)
		if err != nil {
			return model.PageResponse{}, fmt.Errorf("load %s: %w", s.path, err)
		}
		s.mem.Replace(items)
	}
	return s.mem.ListPage(ctx, req)
}
