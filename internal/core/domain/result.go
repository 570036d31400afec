package domain

// TargetStatus represents the build status of a target. Each target moves
// through one cycle per invocation: Unevaluated, then UpToDate or Planned,
// then Built, Failed, or Skipped.
type TargetStatus string

const (
	// StatusUnevaluated indicates the target has not been planned yet.
	StatusUnevaluated TargetStatus = "Unevaluated"
	// StatusUpToDate indicates planning found no action needed.
	StatusUpToDate TargetStatus = "UpToDate"
	// StatusPlanned indicates the target has actions waiting to run.
	StatusPlanned TargetStatus = "Planned"
	// StatusRunning indicates the target's actions are executing.
	StatusRunning TargetStatus = "Running"
	// StatusBuilt indicates all of the target's actions succeeded.
	StatusBuilt TargetStatus = "Built"
	// StatusFailed indicates one of the target's actions failed.
	StatusFailed TargetStatus = "Failed"
	// StatusSkipped indicates a dependency failed, so the target was never
	// attempted.
	StatusSkipped TargetStatus = "Skipped"
)

// Terminal reports whether the status is an end state for this invocation.
func (s TargetStatus) Terminal() bool {
	switch s {
	case StatusUpToDate, StatusBuilt, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// BuildResult aggregates the outcome of one execution: per-target status,
// the failed and skipped targets in topological order, and the captured
// toolchain diagnostics per failed target.
type BuildResult struct {
	Statuses    map[string]TargetStatus
	Failed      []string
	Diagnostics map[string]string

	Compiled int
	Linked   int
	UpToDate int
}

// HasFailures reports whether any target failed or was skipped.
func (r *BuildResult) HasFailures() bool {
	return len(r.Failed) > 0
}
