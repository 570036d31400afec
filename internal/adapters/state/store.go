// Package state persists compilation records between invocations.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where records are stored relative to the working directory.
// Record keys are manifest-root-resolved paths, so the same store file works
// for any manifest reachable from that directory.
const DefaultPath = ".gold/records.json"

var _ ports.RecordStore = (*Store)(nil)

type fileFormat struct {
	Sources   map[string]domain.Record `json:"sources"`
	Artifacts map[string]domain.Record `json:"artifacts"`
}

// Store implements ports.RecordStore using a flat JSON file. Records are
// buffered in memory; Flush writes them out in one piece so an interrupted
// run never leaves a half-written store behind a successful-looking record.
type Store struct {
	path string

	mu        sync.RWMutex
	sources   map[string]domain.Record
	artifacts map[string]domain.Record
}

// NewStore creates a RecordStore backed by the file at the given path,
// loading any existing records.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:      filepath.Clean(path),
		sources:   make(map[string]domain.Record),
		artifacts: make(map[string]domain.Record),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read record store")
	}
	if len(data) == 0 {
		return nil
	}

	var file fileFormat
	if err := json.Unmarshal(data, &file); err != nil {
		return zerr.Wrap(err, "failed to unmarshal record store")
	}
	if file.Sources != nil {
		s.sources = file.Sources
	}
	if file.Artifacts != nil {
		s.artifacts = file.Artifacts
	}
	return nil
}

// Source retrieves the record for a source file path.
func (s *Store) Source(path string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sources[path]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// PutSource stores the record for a source file.
func (s *Store) PutSource(record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[record.Path] = record
	return nil
}

// Artifact retrieves the record for a target's linked artifact.
func (s *Store) Artifact(target string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.artifacts[target]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// PutArtifact stores the record for a target's linked artifact.
func (s *Store) PutArtifact(target string, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifacts[target] = record
	return nil
}

// Flush writes the buffered records to disk.
func (s *Store) Flush() error {
	s.mu.RLock()
	file := fileFormat{Sources: s.sources, Artifacts: s.artifacts}
	data, err := json.MarshalIndent(file, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.Wrap(err, "failed to marshal record store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for record store")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write record store")
	}
	return nil
}

// Discard drops every record and removes the backing file. Missing files are
// not an error, so Discard is idempotent.
func (s *Store) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sources = make(map[string]domain.Record)
	s.artifacts = make(map[string]domain.Record)

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove record store")
	}
	return nil
}
