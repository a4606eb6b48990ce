// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/prompts"
	"github.com/aekobear/gdext/internal/session"
	"github.com/aekobear/gdext/internal/translate"
)

type generateOptions struct {
	classes string
	format  string
	output  string
	all     bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate binding sources from the extension API dump",
		Long: fmt.Sprintf(`Generate binding sources for engine classes and global enums.

Available targets: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  gdext generate

  # Generate specific classes
  gdext generate --class Node,HTTPRequest

  # Generate everything into a custom directory
  gdext generate --all --output src/gen`,
		PersistentPreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.classes, "class", "c", "", "Class name(s), comma-separated")
	cmd.Flags().StringVar(&opts.format, "format", "", fmt.Sprintf("Binding target (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (defaults to the configured one)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate all classes")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	if opts.all && opts.classes != "" {
		return fmt.Errorf("--all and --class are mutually exclusive")
	}

	// Resolve selected classes from flags
	var selected []string

	if opts.all {
		selected = ctx.Registry.Names()
	} else if opts.classes != "" {
		for _, name := range strings.Split(opts.classes, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if !ctx.Registry.IsEngineClass(name) {
				return fmt.Errorf("class %q not found in API dump", name)
			}
			selected = append(selected, name)
		}
	}

	format := opts.format
	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}

	// Prompt for any missing values
	if !opts.all || format == "" || output == "" {
		err = prompts.RunGenerateForm(&selected, &format, &output, ctx.Registry.Names(), translate.Available())
		if err != nil {
			return err
		}
	}

	if len(selected) == 0 {
		return fmt.Errorf("no classes selected")
	}

	translator, err := translate.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported target %q. Available targets: %s",
			format, strings.Join(translate.Available(), ", "))
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Generating %d class(es) for %s (engine %s)...\n",
		len(selected), format, ctx.API.EngineVersion())

	var errs []string
	successCount := 0

	// Global enums go into their own module file alongside the classes.
	if data, gerr := translator.TranslateGlobals(ctx.API.GlobalEnums); gerr != nil {
		errs = append(errs, fmt.Sprintf("global: %v", gerr))
	} else {
		outFile := filepath.Join(output, "global"+translator.FileExtension())
		if werr := os.WriteFile(outFile, data, 0o600); werr != nil {
			errs = append(errs, fmt.Sprintf("global: %v", werr))
		} else {
			fmt.Printf("  %s\n", outFile)
			successCount++
		}
	}

	for _, name := range selected {
		class := ctx.Registry.Class(name)

		data, terr := translator.TranslateClass(class, ctx.Registry)
		if terr != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, terr))
			continue
		}

		outFile := filepath.Join(output, translator.ModuleName(name)+translator.FileExtension())

		if werr := os.WriteFile(outFile, data, 0o600); werr != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, werr))
			continue
		}
		fmt.Printf("  %s\n", outFile)
		successCount++
	}

	fmt.Printf("\nSuccessfully generated %d file(s)\n", successCount)

	if len(errs) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
		return fmt.Errorf("failed to generate %d file(s)", len(errs))
	}

	return nil
}
