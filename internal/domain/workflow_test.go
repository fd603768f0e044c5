package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeclear/unveil/internal/model"
)

type memoryStore struct {
	mu    sync.Mutex
	trees map[model.Path]*model.Node
	saved map[model.Path]*model.Node
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		trees: make(map[model.Path]*model.Node),
		saved: make(map[model.Path]*model.Node),
	}
}

func (s *memoryStore) Load(path model.Path) (*model.Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, ok := s.trees[path]
	if !ok {
		return nil, errors.New("no such tree")
	}
	return tree.Clone(), nil
}

func (s *memoryStore) Save(path model.Path, root *model.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[path] = root
	return nil
}

type recordingUI struct {
	mu        sync.Mutex
	traces    []string
	summaries [][]model.FileReport
}

func (u *recordingUI) TracePass(input model.Path, pass string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.traces = append(u.traces, string(input)+":"+pass)
}

func (u *recordingUI) DisplaySummary(reports []model.FileReport) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.summaries = append(u.summaries, reports)
	return nil
}

func (u *recordingUI) DisplayPasses([]model.PassInfo) error { return nil }

// countingPass counts executions so tests can see the factory wiring work.
// Pipelines for different files run on parallel workers, hence the atomic.
type countingPass struct {
	runs *atomic.Int32
}

func (p *countingPass) Name() string { return "counting" }

func (p *countingPass) Execute() error {
	p.runs.Add(1)
	return nil
}

func simpleTree() *model.Node {
	return model.Program(
		model.Decl(model.BindConst, "a", model.Array(model.Number(1))),
		model.ExprStmt(model.Index(model.Ident("a"), model.Number(0))),
	)
}

func TestWorkflow_RunSavesCleanTrees(t *testing.T) {
	store := newMemoryStore()
	store.trees["scripts/one.json"] = simpleTree()
	store.trees["scripts/two.json"] = simpleTree()

	ui := &recordingUI{}
	var runs atomic.Int32
	build := func(root *model.Node, _ model.Config, trace func(string)) (*Pipeline, error) {
		return NewPipeline([]Pass{&countingPass{runs: &runs}}, trace), nil
	}

	wf := NewWorkflow(store, ui, build, model.DefaultConfig())
	err := wf.Run(RunArgs{
		Inputs:  []model.Path{"scripts/one.json", "scripts/two.json"},
		Threads: 2,
	})
	require.NoError(t, err)

	require.Equal(t, int32(2), runs.Load())
	require.Contains(t, store.saved, model.Path("scripts/one.clean.json"))
	require.Contains(t, store.saved, model.Path("scripts/two.clean.json"))

	require.Len(t, ui.summaries, 1)
	require.Len(t, ui.summaries[0], 2)
	require.Equal(t, model.Path("scripts/one.json"), ui.summaries[0][0].Input)
}

func TestWorkflow_VerboseTraces(t *testing.T) {
	store := newMemoryStore()
	store.trees["a.json"] = simpleTree()

	ui := &recordingUI{}
	var runs atomic.Int32
	build := func(root *model.Node, _ model.Config, trace func(string)) (*Pipeline, error) {
		return NewPipeline([]Pass{&countingPass{runs: &runs}}, trace), nil
	}

	cfg := model.DefaultConfig()
	cfg.Verbose = true

	wf := NewWorkflow(store, ui, build, cfg)
	require.NoError(t, wf.Run(RunArgs{Inputs: []model.Path{"a.json"}}))
	require.Equal(t, []string{"a.json:counting"}, ui.traces)
}

func TestWorkflow_QuietByDefault(t *testing.T) {
	store := newMemoryStore()
	store.trees["a.json"] = simpleTree()

	ui := &recordingUI{}
	var runs atomic.Int32
	build := func(root *model.Node, _ model.Config, trace func(string)) (*Pipeline, error) {
		return NewPipeline([]Pass{&countingPass{runs: &runs}}, trace), nil
	}

	wf := NewWorkflow(store, ui, build, model.DefaultConfig())
	require.NoError(t, wf.Run(RunArgs{Inputs: []model.Path{"a.json"}}))
	require.Empty(t, ui.traces)
}

func TestWorkflow_LoadErrorAbortsBatch(t *testing.T) {
	store := newMemoryStore()
	ui := &recordingUI{}
	build := func(root *model.Node, _ model.Config, trace func(string)) (*Pipeline, error) {
		return NewPipeline(nil, trace), nil
	}

	wf := NewWorkflow(store, ui, build, model.DefaultConfig())
	err := wf.Run(RunArgs{Inputs: []model.Path{"missing.json"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.json")
	require.Empty(t, ui.summaries, "no summary for a failed batch")
}

func TestWorkflow_PipelineErrorSkipsSave(t *testing.T) {
	store := newMemoryStore()
	store.trees["a.json"] = simpleTree()
	ui := &recordingUI{}

	boom := errors.New("boom")
	var executed []string
	build := func(root *model.Node, _ model.Config, trace func(string)) (*Pipeline, error) {
		return NewPipeline([]Pass{
			&fakePass{name: "failing", executed: &executed, err: boom},
		}, trace), nil
	}

	wf := NewWorkflow(store, ui, build, model.DefaultConfig())
	err := wf.Run(RunArgs{Inputs: []model.Path{"a.json"}})
	require.ErrorIs(t, err, boom)
	require.Empty(t, store.saved)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    model.Path
		outDir   string
		format   string
		expected model.Path
	}{
		{"default", "scripts/app.json", "", "", "scripts/app.clean.json"},
		{"output dir", "scripts/app.json", "out", "", "out/app.clean.json"},
		{"format override", "scripts/app.json", "", "msgpack", "scripts/app.clean.msgpack"},
		{"both", "app.bin", "out", "json", "out/app.clean.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := outputPath(tt.input, tt.outDir, tt.format); result != tt.expected {
				t.Fatalf("outputPath() = %q, expected %q", result, tt.expected)
			}
		})
	}
}
