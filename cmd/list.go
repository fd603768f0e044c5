package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codeclear/unveil/internal/adapter"
	"github.com/codeclear/unveil/internal/controller"
	"github.com/codeclear/unveil/internal/domain/passes"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the passes the active configuration schedules",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := adapter.LoadConfig(configFlag)
			if err != nil {
				return err
			}

			return controller.NewSimpleUI(c).DisplayPasses(passes.Describe(cfg))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
