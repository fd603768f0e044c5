// Package controller provides the terminal output surfaces for pipeline runs.
package controller

import (
	m "github.com/codeclear/unveil/internal/model"
)

// UI defines the interface for pipeline observability output.
// Implementations can use different output methods.
type UI interface {
	// TracePass prints a line naming the pass about to run on input.
	TracePass(input m.Path, pass string)
	// DisplaySummary shows the per-file rewrite counts for a finished run.
	DisplaySummary(reports []m.FileReport) error
	// DisplayPasses shows the known passes for the active configuration.
	DisplayPasses(infos []m.PassInfo) error
}
