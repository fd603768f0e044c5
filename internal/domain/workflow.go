package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/codeclear/unveil/internal/adapter"
	"github.com/codeclear/unveil/internal/controller"
	"github.com/codeclear/unveil/internal/model"
)

// PipelineFactory builds the configured pass pipeline bound to root. The
// passes package provides the canonical implementation; it is injected here
// because passes build on this package.
type PipelineFactory func(root *model.Node, cfg model.Config, trace func(pass string)) (*Pipeline, error)

// Workflow coordinates loading, rewriting, and saving a batch of trees.
type Workflow interface {
	Run(args RunArgs) error
}

// RunArgs parameterizes one batch run.
type RunArgs struct {
	Inputs []model.Path
	// OutDir receives the rewritten trees; empty writes next to each input.
	OutDir string
	// Format overrides the output codec ("json" or "msgpack"); empty keeps
	// each input's format.
	Format string
	// Threads bounds how many files process in parallel. Each file owns its
	// tree and its pipeline, so files are independent; within one tree the
	// pipeline stays strictly sequential.
	Threads int
}

type workflow struct {
	store adapter.ScriptStore
	ui    controller.UI
	build PipelineFactory
	cfg   model.Config
}

// NewWorkflow creates a Workflow with the provided collaborators.
func NewWorkflow(store adapter.ScriptStore, ui controller.UI, build PipelineFactory, cfg model.Config) Workflow {
	return &workflow{store: store, ui: ui, build: build, cfg: cfg}
}

// Run rewrites every input tree and prints the summary. The first failing
// file aborts the batch; files already written stay on disk.
func (w *workflow) Run(args RunArgs) error {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	reports := make([]model.FileReport, len(args.Inputs))

	var group errgroup.Group
	group.SetLimit(threads)
	for i, input := range args.Inputs {
		i, input := i, input
		group.Go(func() error {
			report, err := w.processTree(input, args)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	return w.ui.DisplaySummary(reports)
}

// processTree runs the configured pipeline over one input file. When the
// pipeline fails the output file is never written, so on-disk artifacts stay
// all-or-nothing even though the in-memory tree is not.
func (w *workflow) processTree(input model.Path, args RunArgs) (model.FileReport, error) {
	root, err := w.store.Load(input)
	if err != nil {
		return model.FileReport{}, fmt.Errorf("load %s: %w", input, err)
	}

	var trace func(pass string)
	if w.cfg.Verbose {
		trace = func(pass string) { w.ui.TracePass(input, pass) }
	}

	pipeline, err := w.build(root, w.cfg, trace)
	if err != nil {
		return model.FileReport{}, fmt.Errorf("configure %s: %w", input, err)
	}

	if err := pipeline.Run(); err != nil {
		return model.FileReport{}, fmt.Errorf("rewrite %s: %w", input, err)
	}

	output := outputPath(input, args.OutDir, args.Format)
	if err := w.store.Save(output, root); err != nil {
		return model.FileReport{}, fmt.Errorf("save %s: %w", output, err)
	}

	return model.FileReport{Input: input, Output: output, Passes: pipeline.Reports()}, nil
}

// outputPath derives the destination for a rewritten tree. The ".clean"
// infix keeps the default destination from clobbering the input.
func outputPath(input model.Path, outDir, format string) model.Path {
	ext := filepath.Ext(string(input))
	if format != "" {
		ext = "." + format
	}

	base := strings.TrimSuffix(filepath.Base(string(input)), filepath.Ext(string(input)))
	dir := filepath.Dir(string(input))
	if outDir != "" {
		dir = outDir
	}

	return model.Path(filepath.Join(dir, base+".clean"+ext))
}
