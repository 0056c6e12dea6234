// Package storage implements the file storage engine for hbnb records.
// All live records sit in one in-memory registry keyed "<Kind>.<id>";
// Save writes the whole registry to a single JSON document and Reload
// reads it back, rebuilding each record through the models kind registry.
//
// A FileStorage is not safe for concurrent use.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/hbnb/pkg/models"
)

// Engine errors.
var (
	ErrMalformedFile = errors.New("malformed storage file")
	ErrNotFound      = errors.New("object not found")
)

// FileStorage is the storage engine. It implements models.Storage.
type FileStorage struct {
	path    string
	objects map[string]models.Model
	logger  *zap.Logger
}

var _ models.Storage = (*FileStorage)(nil)

// Option configures a FileStorage.
type Option func(*FileStorage)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *FileStorage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFileStorage returns an empty engine backed by cfg.FilePath. It does
// not touch the file; call Reload, or use Open.
func NewFileStorage(cfg Config, opts ...Option) (*FileStorage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &FileStorage{
		path:    cfg.FilePath,
		objects: make(map[string]models.Model),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Open returns an engine backed by cfg.FilePath, already reloaded.
func Open(cfg Config, opts ...Option) (*FileStorage, error) {
	s, err := NewFileStorage(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStorage) Path() string {
	return s.path
}

// All returns the live registry. Callers share it with the engine.
func (s *FileStorage) All() map[string]models.Model {
	return s.objects
}

// New registers m under "<Kind>.<id>", replacing any record with that key.
func (s *FileStorage) New(m models.Model) {
	s.objects[models.Key(m)] = m
}

// Save writes every registered record to the backing file, replacing its
// previous content.
func (s *FileStorage) Save() error {
	doc := make(map[string]map[string]any, len(s.objects))
	for key, m := range s.objects {
		doc[key] = models.ToMap(m)
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", s.path, err)
	}
	if err := writeFile(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("saved objects", zap.String("path", s.path), zap.Int("count", len(doc)))
	return nil
}

// Reload reads the backing file and registers every record in it under
// its stored key. A missing file leaves the registry as it is. Any
// malformed entry or unknown kind aborts the reload before the registry
// is touched.
func (s *FileStorage) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no storage file, starting empty", zap.String("path", s.path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc map[string]map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedFile, s.path, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: %s: not a JSON object", ErrMalformedFile, s.path)
	}

	loaded := make(map[string]models.Model, len(doc))
	for key, attrs := range doc {
		if attrs == nil {
			return fmt.Errorf("%w: %s: entry %q is null", ErrMalformedFile, s.path, key)
		}
		kind, ok := attrs[models.KindKey].(string)
		if !ok {
			return fmt.Errorf("entry %q: %w: missing %s", key, models.ErrUnknownKind, models.KindKey)
		}
		m, err := models.FromMap(s, kind, attrs)
		if err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		loaded[key] = m
	}

	for key, m := range loaded {
		s.objects[key] = m
	}
	s.logger.Debug("reloaded objects", zap.String("path", s.path), zap.Int("count", len(loaded)))
	return nil
}

// Get returns the record registered under kind and id.
func (s *FileStorage) Get(kind, id string) (models.Model, error) {
	key := models.KeyOf(kind, id)
	m, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return m, nil
}

// Delete removes the record registered under kind and id from the
// registry. The backing file changes on the next Save.
func (s *FileStorage) Delete(kind, id string) error {
	key := models.KeyOf(kind, id)
	if _, ok := s.objects[key]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	delete(s.objects, key)
	s.logger.Debug("deleted object", zap.String("key", key))
	return nil
}

// Filter returns the registered records of kind sorted by key. An empty
// kind returns every record.
func (s *FileStorage) Filter(kind string) []models.Model {
	keys := make([]string, 0, len(s.objects))
	for key, m := range s.objects {
		if kind == "" || m.Kind() == kind {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]models.Model, len(keys))
	for i, key := range keys {
		out[i] = s.objects[key]
	}
	return out
}

// Count returns the number of registered records of kind, or of every
// kind when kind is empty.
func (s *FileStorage) Count(kind string) int {
	if kind == "" {
		return len(s.objects)
	}
	n := 0
	for _, m := range s.objects {
		if m.Kind() == kind {
			n++
		}
	}
	return n
}
