// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/session"
)

func registerAPIClassesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List all classes in the extension API dump",
		Long: `List all classes defined in the extension API dump.
Displays class names, parent classes, API types, and enum counts.`,
		Example: `  # List classes
  gdext api classes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runAPIClasses(ctx)
		},
	}

	parent.AddCommand(cmd)
}

func runAPIClasses(ctx *session.Context) error {
	names := ctx.Registry.Names()
	if len(names) == 0 {
		fmt.Println("No classes defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tINHERITS\tAPI\tENUMS")

	for _, name := range names {
		class := ctx.Registry.Class(name)

		inherits := class.Inherits
		if inherits == "" {
			inherits = "-"
		}
		apiType := class.APIType
		if apiType == "" {
			apiType = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", class.Name, inherits, apiType, len(class.Enums))
	}

	return w.Flush()
}
