// Package main is the entrypoint for the sophia CLI.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()

	// Bare "sophia -v" keeps working like the original status script.
	args := os.Args[1:]
	if len(args) > 0 && strings.HasPrefix(args[0], "-") &&
		args[0] != "-h" && args[0] != "--help" {
		args = append([]string{"status"}, args...)
	}
	if len(args) == 0 {
		args = []string{"status"}
	}
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sophia",
		Short:        "Tools for the ALCF Sophia inference service",
		SilenceUsage: true,
	}

	root.AddCommand(newStatusCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newServeCmd())

	return root
}
