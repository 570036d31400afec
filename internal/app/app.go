// Package app implements the top-level build, clean, and run operations.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"github.com/goldbuild/gold/internal/engine/planner"
	"github.com/goldbuild/gold/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App wires the engine components behind the operations the CLI dispatches
// to.
type App struct {
	loader    ports.ConfigLoader
	planner   *planner.Planner
	scheduler *scheduler.Scheduler
	artifacts ports.ArtifactStore
	store     ports.RecordStore
	tracer    ports.Tracer
	logger    ports.Logger

	manifest    string
	parallelism int
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	plnr *planner.Planner,
	sched *scheduler.Scheduler,
	artifacts ports.ArtifactStore,
	store ports.RecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		loader:      loader,
		planner:     plnr,
		scheduler:   sched,
		artifacts:   artifacts,
		store:       store,
		tracer:      tracer,
		logger:      logger,
		parallelism: runtime.NumCPU(),
	}
}

// SetManifest overrides the manifest path looked up on the next load.
func (a *App) SetManifest(path string) {
	a.manifest = path
}

// SetParallelism bounds the worker count used for execution.
func (a *App) SetParallelism(n int) {
	if n > 0 {
		a.parallelism = n
	}
}

// Build resolves the graph, plans the required actions, executes them, and
// persists the updated compilation records. With force every target is
// rebuilt regardless of staleness.
func (a *App) Build(ctx context.Context, force bool) (*domain.BuildResult, error) {
	project, err := a.loader.Load(a.manifest)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return a.build(ctx, project, force)
}

func (a *App) build(ctx context.Context, project *domain.Project, force bool) (*domain.BuildResult, error) {
	start := time.Now()

	plan, err := a.planner.Plan(ctx, project, force)
	if err != nil {
		return nil, zerr.Wrap(err, "planning failed")
	}

	if plan.Empty() {
		a.logger.Info("all targets up to date", "targets", len(plan.UpToDate))
		return upToDateResult(plan), nil
	}

	planned := make([]string, len(plan.Targets))
	for i := range plan.Targets {
		planned[i] = plan.Targets[i].Target
	}
	a.tracer.EmitPlan(ctx, planned)
	for _, name := range plan.UpToDate {
		_, span := a.tracer.Start(ctx, "target "+name)
		span.Cached()
	}

	result, runErr := a.scheduler.Run(ctx, project.Graph, plan, a.parallelism)

	// Records for actions that completed cleanly are kept even when other
	// targets failed, so the next invocation does not redo finished work.
	if err := a.store.Flush(); err != nil {
		return result, errors.Join(runErr, err)
	}

	a.logger.Info("build finished",
		"elapsed", formatElapsed(time.Since(start)),
		"compiled", result.Compiled,
		"linked", result.Linked,
		"up_to_date", result.UpToDate,
	)

	if runErr != nil {
		a.reportFailures(result)
		return result, zerr.Wrap(runErr, "build execution failed")
	}
	return result, nil
}

// reportFailures logs every independent failure found, not just the first.
func (a *App) reportFailures(result *domain.BuildResult) {
	for _, name := range result.Failed {
		switch result.Statuses[name] {
		case domain.StatusFailed:
			a.logger.Warn("target failed", "target", name, "diagnostics", result.Diagnostics[name])
		case domain.StatusSkipped:
			a.logger.Warn("target skipped", "target", name)
		}
	}
}

// Clean deletes all known artifacts for every target and discards the
// compilation records. Missing files are not an error.
func (a *App) Clean(ctx context.Context) error {
	project, err := a.loader.Load(a.manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if err := a.artifacts.Clean(project.Graph); err != nil {
		return err
	}
	return a.store.Discard()
}

// Run builds the project, then invokes the primary executable target's
// artifact and returns its exit code.
func (a *App) Run(ctx context.Context, args []string) (int, error) {
	project, err := a.loader.Load(a.manifest)
	if err != nil {
		return 0, zerr.Wrap(err, "failed to load configuration")
	}
	if _, err := a.build(ctx, project, false); err != nil {
		return 0, err
	}
	return a.artifacts.Run(ctx, project.Graph, args)
}

// Close flushes the progress recording session.
func (a *App) Close() error {
	return a.tracer.Close()
}

func upToDateResult(plan *domain.Plan) *domain.BuildResult {
	statuses := make(map[string]domain.TargetStatus, len(plan.UpToDate))
	for _, name := range plan.UpToDate {
		statuses[name] = domain.StatusUpToDate
	}
	return &domain.BuildResult{
		Statuses: statuses,
		UpToDate: len(plan.UpToDate),
	}
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	s := int(d.Seconds())
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm %ds", s/60, s%60)
}
