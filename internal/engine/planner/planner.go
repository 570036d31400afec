// Package planner computes the set of build actions a build must execute.
package planner

import (
	"context"

	"github.com/goldbuild/gold/internal/core/domain"
	"github.com/goldbuild/gold/internal/core/ports"
)

// Planner turns a finalized graph and change-detection results into the
// minimal ordered action set, or the full set when forced.
type Planner struct {
	detector ports.ChangeDetector
	store    ports.RecordStore
}

// NewPlanner creates a new Planner.
func NewPlanner(detector ports.ChangeDetector, store ports.RecordStore) *Planner {
	return &Planner{detector: detector, store: store}
}

// Plan computes the actions required to bring the project up to date. With
// force, every source is compiled and every target linked regardless of
// staleness. Targets with no work are skipped entirely and reported in the
// plan's UpToDate list.
func (p *Planner) Plan(ctx context.Context, project *domain.Project, force bool) (*domain.Plan, error) {
	graph := project.Graph
	if !graph.Finalized() {
		return nil, domain.ErrGraphNotFinalized
	}

	order, err := graph.TopologicalOrder()
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{Force: force}
	planned := make(map[string]bool, len(order))

	for _, name := range order {
		target, _ := graph.Target(name)

		targetPlan, upToDate, err := p.planTarget(ctx, project, target, planned, force)
		if err != nil {
			return nil, err
		}
		if upToDate {
			plan.UpToDate = append(plan.UpToDate, name)
			continue
		}

		planned[name] = true
		plan.Targets = append(plan.Targets, *targetPlan)
	}

	return plan, nil
}

func (p *Planner) planTarget(
	ctx context.Context,
	project *domain.Project,
	target *domain.Target,
	planned map[string]bool,
	force bool,
) (*domain.TargetPlan, bool, error) {
	compileFlags := resolveCompileFlags(target)
	flagsHash := p.detector.FlagsSignature(compileFlags)

	stale, err := p.staleSources(ctx, target, flagsHash, force)
	if err != nil {
		return nil, false, err
	}

	compiles := make([]domain.Action, 0, len(stale))
	for _, source := range target.Sources {
		if !stale[source] {
			continue
		}
		compiles = append(compiles, domain.Action{
			Kind:       domain.ActionCompile,
			Target:     target.Name,
			TargetKind: target.Kind,
			Compiler:   project.Compiler,
			Source:     source,
			Output:     domain.ObjectPath(source),
			Flags:      compileFlags,
		})
	}

	// The link step is stale when any own object was just recompiled, any
	// dependency target is being relinked, or the artifact record no longer
	// matches. This propagation is what forces relinking of everything
	// above a changed leaf library.
	linkStale := force || len(compiles) > 0
	deps := make([]string, 0, len(target.Dependencies))
	linkDeps := make([]string, 0, len(target.Dependencies))
	for _, dep := range target.Dependencies {
		if _, ok := project.Graph.Target(dep); ok {
			linkDeps = append(linkDeps, dep)
		}
		if planned[dep] {
			linkStale = true
			deps = append(deps, dep)
		}
	}

	if !linkStale {
		relink, err := p.linkStale(target, linkDeps)
		if err != nil {
			return nil, false, err
		}
		linkStale = relink
	}
	if !linkStale {
		return nil, true, nil
	}

	link := p.linkAction(project, target)
	return &domain.TargetPlan{
		Target:       target.Name,
		Dependencies: deps,
		LinkDeps:     linkDeps,
		Compiles:     compiles,
		Link:         &link,
	}, false, nil
}

// linkStale reports whether the artifact must be relinked even though no own
// object changed and no dependency is planned this run. The artifact may be
// missing, never have been recorded (a previous run failed or was cancelled
// before its link finished), or its recorded signature may no longer match
// the link flags and dependency artifact hashes.
func (p *Planner) linkStale(target *domain.Target, linkDeps []string) (bool, error) {
	artifact := target.ArtifactPath()
	if !p.detector.Exists(artifact) {
		return true, nil
	}
	record, err := p.store.Artifact(target.Name)
	if err != nil {
		return false, err
	}
	if record == nil {
		return true, nil
	}
	signature, err := LinkSignature(p.detector, p.store, target.LinkFlags, linkDeps)
	if err != nil {
		return false, err
	}
	return p.detector.IsStale(artifact, signature, record)
}

// LinkSignature hashes a target's link flags together with the recorded
// artifact hashes of its dependency targets. A dependency relinked by an
// earlier invocation changes the signature, so each dependent relinks even
// when that invocation failed before reaching it.
func LinkSignature(detector ports.ChangeDetector, store ports.RecordStore, flags, linkDeps []string) (string, error) {
	tokens := make([]string, 0, len(flags)+len(linkDeps))
	tokens = append(tokens, flags...)
	for _, dep := range linkDeps {
		record, err := store.Artifact(dep)
		if err != nil {
			return "", err
		}
		hash := ""
		if record != nil {
			hash = record.ContentHash
		}
		tokens = append(tokens, dep+"="+hash)
	}
	return detector.FlagsSignature(tokens), nil
}

func (p *Planner) staleSources(ctx context.Context, target *domain.Target, flagsHash string, force bool) (map[string]bool, error) {
	stale := make(map[string]bool, len(target.Sources))

	if force {
		for _, source := range target.Sources {
			stale[source] = true
		}
		return stale, nil
	}

	lookup := func(path string) *domain.Record {
		record, err := p.store.Source(path)
		if err != nil {
			return nil
		}
		return record
	}
	stale, err := p.detector.StaleSet(ctx, target.Sources, flagsHash, lookup)
	if err != nil {
		return nil, err
	}

	// A fresh source with a missing object still needs compiling.
	for _, source := range target.Sources {
		if !stale[source] && !p.detector.Exists(domain.ObjectPath(source)) {
			stale[source] = true
		}
	}
	return stale, nil
}

// linkAction builds the link step: the target's objects, the artifacts of
// its static library dependencies, and the link inputs of its directly
// declared external dependencies. External flags do not propagate through
// target-to-target edges.
func (p *Planner) linkAction(project *domain.Project, target *domain.Target) domain.Action {
	inputs := target.ObjectPaths()
	var sysLibs []string

	for _, dep := range target.Dependencies {
		if depTarget, ok := project.Graph.Target(dep); ok {
			inputs = append(inputs, depTarget.ArtifactPath())
			continue
		}
		if external, ok := project.Graph.External(dep); ok {
			switch external.Kind {
			case domain.ExternalStaticLib:
				inputs = append(inputs, external.LinkInput())
			case domain.ExternalSystemLib:
				sysLibs = append(sysLibs, external.Name)
			}
		}
	}

	return domain.Action{
		Kind:       domain.ActionLink,
		Target:     target.Name,
		TargetKind: target.Kind,
		Compiler:   project.Compiler,
		Inputs:     inputs,
		Output:     target.ArtifactPath(),
		Flags:      target.LinkFlags,
		SysLibs:    sysLibs,
	}
}

// resolveCompileFlags is the union of the target's own flags and include
// directories. Include directories are compile-step only and never
// inherited across dependencies.
func resolveCompileFlags(target *domain.Target) []string {
	flags := make([]string, 0, len(target.CompileFlags)+len(target.IncludeDirs))
	flags = append(flags, target.CompileFlags...)
	for _, dir := range target.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}
	return flags
}
