package ports

import (
	"context"

	"github.com/goldbuild/gold/internal/core/domain"
)

// ChangeDetector decides whether files are stale relative to their recorded
// state.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type ChangeDetector interface {
	// IsStale reports whether path must be reprocessed: no record exists,
	// the file's modification signature differs from the recorded one, or
	// the recorded flags hash differs from flagsHash.
	IsStale(path, flagsHash string, record *domain.Record) (bool, error)

	// StaleSet probes many paths concurrently and returns the stale ones as
	// a set. The lookup callback supplies the record for each path.
	StaleSet(ctx context.Context, paths []string, flagsHash string, lookup func(path string) *domain.Record) (map[string]bool, error)

	// Snapshot captures the current signature of path combined with the
	// flags it was just processed with, for persisting after a successful
	// action.
	Snapshot(path, flagsHash string) (domain.Record, error)

	// Exists reports whether path exists on disk.
	Exists(path string) bool

	// FlagsSignature computes the signature of an ordered flag list, the
	// value compared against a record's recorded flags.
	FlagsSignature(flags []string) string
}
