package domain

import (
	"fmt"

	"github.com/codeclear/unveil/internal/model"
)

// Pass is one named rewrite unit bound to a shared tree. Execute mutates the
// tree in place; its only other output is an error on a contract violation
// such as StructuralScopeError.
type Pass interface {
	Name() string
	Execute() error
}

// Reporter is implemented by passes that count their rewrites.
type Reporter interface {
	Report() model.PassReport
}

// Pipeline runs an ordered pass list against one shared tree, strictly in
// sequence and never concurrently. The same pass may occupy several slots
// when the schedule deliberately reruns it after another pass exposes new
// rewrite opportunities.
type Pipeline struct {
	passes  []Pass
	trace   func(pass string)
	reports []model.PassReport
}

// NewPipeline builds a pipeline over the given slots. trace, when non-nil, is
// called with each pass name right before that pass runs.
func NewPipeline(passes []Pass, trace func(pass string)) *Pipeline {
	return &Pipeline{passes: passes, trace: trace}
}

// Run executes every pass in order. On error the pipeline stops immediately;
// mutations already applied by earlier passes stay in the tree, so the caller
// holds a partially rewritten tree on this path and must not treat a run as
// transactional.
func (p *Pipeline) Run() error {
	p.reports = p.reports[:0]
	for _, pass := range p.passes {
		if p.trace != nil {
			p.trace(pass.Name())
		}
		if err := pass.Execute(); err != nil {
			return fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
		if reporter, ok := pass.(Reporter); ok {
			p.reports = append(p.reports, reporter.Report())
		}
	}
	return nil
}

// Reports returns one report per reporting pass slot from the latest Run.
func (p *Pipeline) Reports() []model.PassReport {
	return p.reports
}
