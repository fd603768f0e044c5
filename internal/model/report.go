package model

// Path represents a file system path.
type Path string

// PassReport summarises the rewrites one pass slot applied to one tree.
type PassReport struct {
	Pass    string
	Rounds  int // discovery/rewrite rounds that found work
	Inlined int // accesses replaced with literal copies
	Removed int // declarations dropped by cleanup
}

// FileReport holds the pipeline outcome for a single input tree.
type FileReport struct {
	Input  Path
	Output Path
	Passes []PassReport
}

// PassInfo describes a known pass for the list command.
type PassInfo struct {
	Name    string
	Enabled bool
	Detail  string
}
