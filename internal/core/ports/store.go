package ports

import "github.com/goldbuild/gold/internal/core/domain"

// RecordStore persists compilation records across invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Source retrieves the record for a source file path.
	// Returns nil, nil if not found.
	Source(path string) (*domain.Record, error)

	// PutSource stores the record for a source file. The write is buffered
	// until Flush.
	PutSource(record domain.Record) error

	// Artifact retrieves the record for a target's linked artifact.
	// Returns nil, nil if not found.
	Artifact(target string) (*domain.Record, error)

	// PutArtifact stores the record for a target's linked artifact.
	PutArtifact(target string, record domain.Record) error

	// Flush writes the buffered records to disk.
	Flush() error

	// Discard drops every record and removes the backing file. Missing
	// files are not an error.
	Discard() error
}
