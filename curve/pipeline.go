package curve

import (
	"fmt"

	"github.com/koldar/phdtester-go/funcdict"
)

// Pipeline is an ordered list of Changer stages.
type Pipeline struct {
	stages []Changer
}

// NewPipeline builds a Pipeline from stages, run in order.
func NewPipeline(stages ...Changer) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run threads (status, fd) through every stage in order, inserting no
// implicit normalization: per SPEC_FULL.md §4.7, entering a
// RequireSameXAxis() stage while the running status isn't SameX is an error
// — callers compose an explicit normalizing changer (e.g.
// ReplaceNaNWithPrevious) ahead of such stages themselves.
func (p *Pipeline) Run(fd *funcdict.FunctionsDict) (*funcdict.FunctionsDict, error) {
	status := Unknown
	if fd.FunctionsShareSameXAxis() {
		status = SameX
	}
	current := fd
	for _, stage := range p.stages {
		if stage.RequireSameXAxis() && status != SameX {
			return nil, fmt.Errorf("%w: stage %q entered with status %s", ErrXAxisNotNormalized, stage.Name(), status)
		}
		newStatus, newFd, err := stage.AlterCurves(current)
		if err != nil {
			return nil, fmt.Errorf("curve: stage %q: %w", stage.Name(), err)
		}
		current = newFd
		status = newStatus
	}
	return current, nil
}
