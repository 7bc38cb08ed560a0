package pipeline

import (
	"fmt"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
)

// GroupPipeline chains stages over the columns of one ColumnGroup.
type GroupPipeline struct {
	Group  ColumnGroup
	Stages []Stage
}

func NewGroupPipeline(group ColumnGroup, stages ...Stage) *GroupPipeline {
	return &GroupPipeline{Group: group, Stages: stages}
}

// Fit fits every stage in order, feeding each stage's transformed output
// into the next stage's fit. It returns the learned states and the output of
// the last stage.
func (p *GroupPipeline) Fit(X *core.Block) ([]State, *core.Block, error) {
	states := make([]State, len(p.Stages))
	for i, step := range p.Stages {
		st, err := step.Fit(X)
		if err != nil {
			return nil, nil, fmt.Errorf("%s pipeline: fit %s: %w", p.Group.Name, step.Name(), err)
		}
		X, err = step.Transform(X, st)
		if err != nil {
			return nil, nil, fmt.Errorf("%s pipeline: transform %s: %w", p.Group.Name, step.Name(), err)
		}
		states[i] = st
	}
	return states, X, nil
}

// Transform replays the stages with previously learned states.
func (p *GroupPipeline) Transform(X *core.Block, states []State) (*core.Block, error) {
	if len(states) != len(p.Stages) {
		return nil, fmt.Errorf("%s pipeline: %d states for %d stages", p.Group.Name, len(states), len(p.Stages))
	}
	var err error
	for i, step := range p.Stages {
		X, err = step.Transform(X, states[i])
		if err != nil {
			return nil, fmt.Errorf("%s pipeline: transform %s: %w", p.Group.Name, step.Name(), err)
		}
	}
	return X, nil
}

// OutputNames lists the columns the pipeline produces, in order.
func (p *GroupPipeline) OutputNames() []string {
	names := append([]string(nil), p.Group.Columns...)
	for _, step := range p.Stages {
		if e, ok := step.(Encoder); ok {
			names = e.OutputNames(names)
		}
	}
	return names
}
