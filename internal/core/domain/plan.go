package domain

// TargetPlan groups the actions planned for one target: its stale compile
// actions followed by an optional link action.
type TargetPlan struct {
	Target string

	// Dependencies are the planned targets this plan must wait for. Targets
	// that planning found up to date impose no ordering.
	Dependencies []string

	// LinkDeps are all dependency targets whose artifacts feed the link
	// step, planned or not, in declaration order. Their recorded artifact
	// hashes are folded into the link record's signature.
	LinkDeps []string

	Compiles []Action
	Link     *Action
}

// Actions returns the target's actions in execution order.
func (p *TargetPlan) Actions() []Action {
	actions := make([]Action, 0, len(p.Compiles)+1)
	actions = append(actions, p.Compiles...)
	if p.Link != nil {
		actions = append(actions, *p.Link)
	}
	return actions
}

// Plan is the ordered set of actions one build will execute. Targets appear
// in topological order; fully up-to-date targets carry no plan and are
// listed separately so skipping is observable.
type Plan struct {
	Targets  []TargetPlan
	UpToDate []string
	Force    bool
}

// ActionCount returns the total number of planned actions.
func (p *Plan) ActionCount() int {
	n := 0
	for i := range p.Targets {
		n += len(p.Targets[i].Compiles)
		if p.Targets[i].Link != nil {
			n++
		}
	}
	return n
}

// Empty reports whether the plan contains no actions.
func (p *Plan) Empty() bool {
	return len(p.Targets) == 0
}
