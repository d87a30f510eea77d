package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"examprep/internal/domain"
	"go.uber.org/zap"
)

// fileStore persists one JSON document per entity under a dedicated
// directory. The directory is created lazily on first write, and every
// read round-trips through disk: there is no in-memory cache, the file
// is the sole source of truth.
type fileStore[T any] struct {
	dir string
	log *zap.Logger
}

func newFileStore[T any](dir string, log *zap.Logger) *fileStore[T] {
	return &fileStore[T]{dir: dir, log: log}
}

func (s *fileStore[T]) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the entity via a temp file and rename so a reader never
// observes a half-written document.
func (s *fileStore[T]) Save(id string, entity *T) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+id+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write entity: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush entity: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path(id)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace entity file: %w", err)
	}
	return nil
}

// Get loads an entity by id. Missing, unreadable and corrupt files are
// all reported as ErrNotFound; decode failures never escape this
// boundary.
func (s *fileStore[T]) Get(id string) (*T, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		s.log.Warn("skipping corrupt entity file",
			zap.String("path", s.path(id)), zap.Error(err))
		return nil, domain.ErrNotFound
	}
	return &entity, nil
}

// List returns every loadable entity. Unreadable files are skipped with
// a warning rather than failing the listing.
func (s *fileStore[T]) List() ([]*T, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*T{}, nil
		}
		return nil, fmt.Errorf("failed to read store directory: %w", err)
	}

	var result []*T
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		entity, err := s.Get(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		result = append(result, entity)
	}
	return result, nil
}

// Delete removes the entity file; a missing entity is a reported error.
func (s *fileStore[T]) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete entity file: %w", err)
	}
	return nil
}
