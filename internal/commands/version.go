// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the gdext CLI version",
		Example: `  # Show version information
  gdext version`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}

	parent.AddCommand(cmd)
}
