// Package scheduler executes planned build actions with bounded parallelism.
package scheduler

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
	"github.com/goldbuild/gold/internal/engine/planner"
	"go.trai.ch/zerr"
)

// Scheduler runs a plan's actions respecting the partial order implied by
// target dependencies. Actions for a dependency complete before actions for
// a dependent begin; independent subtrees run concurrently, bounded by the
// worker count.
type Scheduler struct {
	toolchain ports.Toolchain
	detector  ports.ChangeDetector
	store     ports.RecordStore
	tracer    ports.Tracer
	logger    ports.Logger

	mu       sync.RWMutex
	statuses map[string]domain.TargetStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	toolchain ports.Toolchain,
	detector ports.ChangeDetector,
	store ports.RecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		toolchain: toolchain,
		detector:  detector,
		store:     store,
		tracer:    tracer,
		logger:    logger,
	}
}

func (s *Scheduler) setStatus(name string, status domain.TargetStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[name] = status
}

func (s *Scheduler) status(name string) domain.TargetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statuses[name]
}

// Run executes the plan with the given parallelism. On any action failure
// that target's subtree is skipped while independent subtrees run to
// completion; the aggregate domain.ErrBuildFailed is returned alongside the
// full result once all work has finished.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, plan *domain.Plan, parallelism int) (*domain.BuildResult, error) {
	if parallelism < 1 {
		parallelism = 1
	}

	s.mu.Lock()
	s.statuses = make(map[string]domain.TargetStatus, graph.TargetCount())
	for target := range graph.Walk() {
		s.statuses[target.Name] = domain.StatusUnevaluated
	}
	for _, name := range plan.UpToDate {
		s.statuses[name] = domain.StatusUpToDate
	}
	for i := range plan.Targets {
		s.statuses[plan.Targets[i].Target] = domain.StatusPlanned
	}
	s.mu.Unlock()

	state := s.newRunState(ctx, plan, parallelism)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	return s.finish(ctx, graph, plan, state)
}

func (s *Scheduler) finish(ctx context.Context, graph *domain.Graph, plan *domain.Plan, state *runState) (*domain.BuildResult, error) {
	// Planned targets that never ran lost a dependency: mark them skipped.
	s.mu.Lock()
	for name, status := range s.statuses {
		if status == domain.StatusPlanned {
			s.statuses[name] = domain.StatusSkipped
		}
	}
	statuses := make(map[string]domain.TargetStatus, len(s.statuses))
	for name, status := range s.statuses {
		statuses[name] = status
	}
	s.mu.Unlock()

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	var failed []string
	for _, name := range order {
		if statuses[name] == domain.StatusFailed || statuses[name] == domain.StatusSkipped {
			failed = append(failed, name)
		}
	}

	result := &domain.BuildResult{
		Statuses:    statuses,
		Failed:      failed,
		Diagnostics: state.diagnostics,
		Compiled:    state.compiled,
		Linked:      state.linked,
		UpToDate:    len(plan.UpToDate),
	}

	if ctx.Err() != nil {
		return result, errors.Join(state.errs, ctx.Err())
	}
	if len(failed) > 0 {
		aggregate := domain.Annotate(domain.ErrBuildFailed, "targets", strings.Join(failed, ", "))
		return result, errors.Join(aggregate, state.errs)
	}
	return result, nil
}

type result struct {
	target      string
	err         error
	diagnostics string
	compiled    int
	linked      bool
}

type runState struct {
	ctx         context.Context
	s           *Scheduler
	parallelism int

	plans    map[string]domain.TargetPlan
	inDegree map[string]int
	ready    []string
	active   int

	resultsCh   chan result
	errs        error
	diagnostics map[string]string
	compiled    int
	linked      int
}

func (s *Scheduler) newRunState(ctx context.Context, plan *domain.Plan, parallelism int) *runState {
	plans := make(map[string]domain.TargetPlan, len(plan.Targets))
	inDegree := make(map[string]int, len(plan.Targets))

	// Plan order is topological, so the initial ready queue preserves it.
	var ready []string
	for _, targetPlan := range plan.Targets {
		plans[targetPlan.Target] = targetPlan
		inDegree[targetPlan.Target] = len(targetPlan.Dependencies)
		if len(targetPlan.Dependencies) == 0 {
			ready = append(ready, targetPlan.Target)
		}
	}

	return &runState{
		ctx:         ctx,
		s:           s,
		parallelism: parallelism,
		plans:       plans,
		inDegree:    inDegree,
		ready:       ready,
		resultsCh:   make(chan result, parallelism),
		diagnostics: make(map[string]string),
	}
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.setStatus(name, domain.StatusRunning)

		go func(plan domain.TargetPlan) {
			state.resultsCh <- state.s.executeTarget(state.ctx, plan)
		}(state.plans[name])
	}
}

func (state *runState) handleResult(res result) {
	state.active--
	state.compiled += res.compiled
	if res.linked {
		state.linked++
	}

	if res.err != nil {
		state.s.setStatus(res.target, domain.StatusFailed)
		if res.diagnostics != "" {
			state.diagnostics[res.target] = res.diagnostics
		}
		wrapped := zerr.With(zerr.Wrap(res.err, "target failed"), "target", res.target)
		state.errs = errors.Join(state.errs, wrapped)
		// Dependents are never enqueued; finish marks them skipped.
		return
	}

	state.s.setStatus(res.target, domain.StatusBuilt)
	state.s.logger.Info("target built", "target", res.target, "compiled", res.compiled)
	for name, plan := range state.plans {
		for _, dep := range plan.Dependencies {
			if dep != res.target {
				continue
			}
			state.inDegree[name]--
			if state.inDegree[name] == 0 {
				state.ready = append(state.ready, name)
			}
		}
	}
}

// executeTarget runs a target's compile actions followed by its link action,
// persisting a record after each successful action. An action that did not
// complete cleanly leaves no record behind.
func (s *Scheduler) executeTarget(ctx context.Context, plan domain.TargetPlan) result {
	res := result{target: plan.Target}

	for i := range plan.Compiles {
		action := &plan.Compiles[i]
		diagnostics, err := s.runAction(ctx, action)
		if err != nil {
			res.err, res.diagnostics = err, diagnostics
			return res
		}
		res.compiled++

		record, err := s.detector.Snapshot(action.Source, s.detector.FlagsSignature(action.Flags))
		if err != nil {
			res.err = err
			return res
		}
		if err := s.store.PutSource(record); err != nil {
			res.err = err
			return res
		}
	}

	if plan.Link != nil {
		diagnostics, err := s.runAction(ctx, plan.Link)
		if err != nil {
			res.err, res.diagnostics = err, diagnostics
			return res
		}
		res.linked = true

		// Dependency artifacts are in their final state here, so the
		// signature captures the hashes this link actually consumed.
		signature, err := planner.LinkSignature(s.detector, s.store, plan.Link.Flags, plan.LinkDeps)
		if err != nil {
			res.err = err
			return res
		}
		record, err := s.detector.Snapshot(plan.Link.Output, signature)
		if err != nil {
			res.err = err
			return res
		}
		if err := s.store.PutArtifact(plan.Target, record); err != nil {
			res.err = err
			return res
		}
	}

	return res
}

func (s *Scheduler) runAction(ctx context.Context, action *domain.Action) (string, error) {
	_, span := s.tracer.Start(ctx, action.ID())
	diagnostics, err := s.toolchain.Invoke(ctx, action)
	if diagnostics != "" {
		_, _ = span.Write([]byte(diagnostics))
	}
	span.Done(err)
	return diagnostics, err
}

// Statuses returns a copy of the per-target statuses from the last run.
func (s *Scheduler) Statuses() map[string]domain.TargetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make(map[string]domain.TargetStatus, len(s.statuses))
	for name, status := range s.statuses {
		statuses[name] = status
	}
	return statuses
}
