// Package main provides the sfc command, a compiler for single-file
// components.
//
// Usage:
//
//	sfc compile [path...]    Compile .vue files to JavaScript modules
//	sfc check [path...]      Check .vue files without writing output
//	sfc version              Print version information
//
// Examples:
//
//	sfc compile ./...            Recursively compile all .vue files
//	sfc compile ./components     Compile the files in a directory
//	sfc compile --stdout App.vue Print the compiled module
//	sfc check App.vue            Report errors only
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sfc",
		Short: "Compile single-file components into JavaScript modules",
		Long: `sfc compiles .vue single-file components into ES modules.

Each <template> becomes a render function attached to the component object
declared by the <script> and <script setup> blocks. Settings are read from
sfc.yaml in the current directory, or from the file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		compileCmd(),
		checkCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sfc version %s\n", version)
		},
	}
}
