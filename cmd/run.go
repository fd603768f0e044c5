package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codeclear/unveil/internal/adapter"
	"github.com/codeclear/unveil/internal/controller"
	"github.com/codeclear/unveil/internal/domain"
	"github.com/codeclear/unveil/internal/domain/passes"
	m "github.com/codeclear/unveil/internal/model"
)

var runParallelFlag int
var runOutputFlag string
var runFormatFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [trees...]",
		Short: "Run the rewrite pipeline over serialized program trees",
		Long: `Run loads each serialized tree, applies the configured rewrite
passes in order, and writes the result as <name>.clean.<ext> next to the
input (or into --output). A failing file aborts the batch; its output file
is not written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := adapter.LoadConfig(configFlag)
			if err != nil {
				return err
			}
			if verboseFlag {
				cfg.Verbose = true
			}

			inputs := make([]m.Path, 0, len(args))
			for _, arg := range args {
				inputs = append(inputs, m.Path(arg))
			}

			ui := controller.NewSimpleUI(c)
			wf := domain.NewWorkflow(store, ui, passes.Build, cfg)

			return wf.Run(domain.RunArgs{
				Inputs:  inputs,
				OutDir:  runOutputFlag,
				Format:  runFormatFlag,
				Threads: runParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&runParallelFlag, "parallel", "p", 1, "number of files to process in parallel")
	cmd.Flags().StringVarP(&runOutputFlag, "output", "o", "", "directory for rewritten trees (default: alongside inputs)")
	cmd.Flags().StringVarP(&runFormatFlag, "format", "f", "", "output format override: json or msgpack")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
