// Package cmd provides the root command and CLI setup for unveil.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeclear/unveil/internal/adapter"
)

var store = adapter.NewScriptStore()

var configFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unveil",
		Short: "Static deobfuscator for serialized program trees",
		Long: `Unveil statically rewrites parsed program trees to undo common
obfuscation transformations, starting with literal-array indirection.

Inputs and outputs are serialized trees (.json or .msgpack) produced and
consumed by an external parser and printer; unveil never parses or prints
program text itself.`,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a TOML pipeline configuration")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print a trace line for each pass before it runs")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
