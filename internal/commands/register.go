// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/session"

	// Import translators to auto-register
	_ "github.com/aekobear/gdext/internal/translate/rust"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gdext",
		Short: "Generate engine bindings from a Godot extension API dump",
	}

	registerInitCmd(rootCmd)
	registerAPICmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerAPICmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "api",
		Short:             "Inspect the extension API dump",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerAPIClassesCmd(cmd)
	registerAPIDescribeCmd(cmd)
	registerAPIResolveCmd(cmd)

	parent.AddCommand(cmd)
}
