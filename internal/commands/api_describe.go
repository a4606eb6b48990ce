// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/prompts"
	"github.com/aekobear/gdext/internal/session"
	"github.com/aekobear/gdext/internal/translate"
)

func registerAPIDescribeCmd(parent *cobra.Command) {
	var format string

	cmd := &cobra.Command{
		Use:   "describe <class>",
		Short: "Show one class from the extension API dump",
		Long: `Show a single engine class: its parent, API type, and declared enums
with their enumerators, plus the module name the binding target assigns it.`,
		Example: `  # Describe a class
  gdext api describe HTTPRequest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runAPIDescribe(ctx, args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "rust", "Binding target used for naming")

	parent.AddCommand(cmd)
}

func runAPIDescribe(ctx *session.Context, name, format string) error {
	class := ctx.Registry.Class(name)
	if class == nil {
		return fmt.Errorf("class %q not found in API dump", name)
	}

	translator, err := translate.Get(format)
	if err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Class", Value: class.Name},
		{Label: "Module", Value: translator.ModuleName(class.Name)},
	}
	if class.Inherits != "" {
		fields = append(fields, prompts.ResultField{Label: "Inherits", Value: class.Inherits})
	}
	if class.APIType != "" {
		fields = append(fields, prompts.ResultField{Label: "API type", Value: class.APIType})
	}
	prompts.PrintResult(fields, "")

	if len(class.Enums) == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ENUM\tKIND\tENUMERATOR\tVALUE")
	for _, enum := range class.Enums {
		kind := "enum"
		if enum.IsBitfield {
			kind = "bitfield"
		}
		for _, value := range enum.Values {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", enum.Name, kind, value.Name, value.Value)
		}
		if len(enum.Values) == 0 {
			_, _ = fmt.Fprintf(w, "%s\t%s\t-\t-\n", enum.Name, kind)
		}
	}

	return w.Flush()
}
