package domain

import "time"

// Record is the persisted compilation record for one file: the modification
// signature and the flags it was last processed with. Records are the only
// state with cross-invocation lifetime; the change detector compares them
// against the current filesystem to decide staleness.
type Record struct {
	Path        string    `json:"path"`
	MTimeNanos  int64     `json:"mtime_nanos"`
	ContentHash string    `json:"content_hash"`
	FlagsHash   string    `json:"flags_hash"`
	BuiltAt     time.Time `json:"built_at"`
}
