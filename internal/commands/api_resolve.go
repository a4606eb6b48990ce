// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/session"
	"github.com/aekobear/gdext/internal/translate/rust"
)

func registerAPIResolveCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "resolve <type>...",
		Short: "Resolve raw type names against the API dump",
		Long: `Resolve one or more raw type names, as they appear in the extension API
dump, to their Rust binding representation. Useful for checking how a schema
string will be classified before generating.`,
		Example: `  # Resolve a few type names
  gdext api resolve int "enum::Variant.Type" PackedInt32Array Node`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runAPIResolve(ctx, args)
		},
	}

	parent.AddCommand(cmd)
}

func runAPIResolve(ctx *session.Context, raws []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "RAW\tKIND\tRUST")

	for _, raw := range raws {
		ty := rust.ResolveType(raw, ctx.Registry)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", raw, tyKind(ty), ty.Code())
	}

	return w.Flush()
}

func tyKind(ty rust.Ty) string {
	switch ty.(type) {
	case rust.BuiltinIdent:
		return "builtin"
	case rust.BuiltinGeneric:
		return "builtin generic"
	case rust.EngineEnum:
		return "engine enum"
	case rust.EngineClass:
		return "engine class"
	default:
		return "unknown"
	}
}
