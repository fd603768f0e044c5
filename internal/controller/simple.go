package controller

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/codeclear/unveil/internal/model"
)

var (
	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	enabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// TracePass prints one trace line; runs on parallel file workers, hence the
// lock.
func (s *SimpleUI) TracePass(input m.Path, pass string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s\n", traceStyle.Render(fmt.Sprintf("[%s] running pass %s", input, pass)))
}

// DisplaySummary renders one table row per pass slot per file.
func (s *SimpleUI) DisplaySummary(reports []m.FileReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totalInlined, totalRemoved int

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Pass", "Rounds", "Inlined", "Removed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, report := range reports {
		for _, pass := range report.Passes {
			table.Append([]string{
				string(report.Input),
				pass.Pass,
				fmt.Sprintf("%d", pass.Rounds),
				fmt.Sprintf("%d", pass.Inlined),
				fmt.Sprintf("%d", pass.Removed),
			})

			totalInlined += pass.Inlined
			totalRemoved += pass.Removed
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		"",
		fmt.Sprintf("%d", totalInlined),
		fmt.Sprintf("%d", totalRemoved),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayPasses lists the known passes and whether the configuration enables
// them.
func (s *SimpleUI) DisplayPasses(infos []m.PassInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(infos) == 0 {
		s.printf("No passes registered\n")
		return nil
	}

	for _, info := range infos {
		state := offStyle.Render("disabled")
		if info.Enabled {
			state = enabledStyle.Render("enabled")
		}

		s.printf("%s  %s  (%s)\n", info.Name, state, info.Detail)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
