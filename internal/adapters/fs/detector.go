package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.ChangeDetector = (*Detector)(nil)

// Detector implements ports.ChangeDetector. A file is stale when no record
// exists, when its modification signature differs from the recorded one, or
// when the recorded flags differ from the ones about to be used. The mtime
// comparison is the cheap path; content is only hashed when the mtime moved.
type Detector struct {
	hasher *Hasher
}

// NewDetector creates a new Detector.
func NewDetector(hasher *Hasher) *Detector {
	return &Detector{hasher: hasher}
}

// IsStale reports whether path must be reprocessed relative to record.
func (d *Detector) IsStale(path, flagsHash string, record *domain.Record) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, domain.Annotate(domain.ErrMissingSource, "path", path)
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", path)
	}

	if record == nil {
		return true, nil
	}
	if record.FlagsHash != flagsHash {
		return true, nil
	}
	if info.ModTime().UnixNano() == record.MTimeNanos {
		return false, nil
	}

	// The mtime moved but the content may be unchanged, e.g. after a
	// checkout. Fall back to the content hash.
	hash, err := d.hasher.FileHash(path)
	if err != nil {
		return false, err
	}
	return hash != record.ContentHash, nil
}

// StaleSet probes paths concurrently, bounded by the CPU count, and returns
// the set of stale ones.
func (d *Detector) StaleSet(ctx context.Context, paths []string, flagsHash string, lookup func(path string) *domain.Record) (map[string]bool, error) {
	var mu sync.Mutex
	stale := make(map[string]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			isStale, err := d.IsStale(path, flagsHash, lookup(path))
			if err != nil {
				return err
			}
			if isStale {
				mu.Lock()
				stale[path] = true
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stale, nil
}

// Snapshot captures the current signature of path for persisting after a
// successful action.
func (d *Detector) Snapshot(path, flagsHash string) (domain.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Record{}, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}

	hash, err := d.hasher.FileHash(path)
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		Path:        path,
		MTimeNanos:  info.ModTime().UnixNano(),
		ContentHash: hash,
		FlagsHash:   flagsHash,
		BuiltAt:     time.Now(),
	}, nil
}

// Exists reports whether path exists on disk.
func (d *Detector) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FlagsSignature computes the signature of an ordered flag list.
func (d *Detector) FlagsSignature(flags []string) string {
	return d.hasher.FlagsHash(flags)
}
