// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aekobear/gdext/internal/config"
	"github.com/aekobear/gdext/internal/prompts"
	"github.com/aekobear/gdext/internal/session"
)

type initOptions struct {
	api    string
	output string
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a gdext project in the current directory",
		Long: `Initialize a gdext project by writing a gdext.yaml configuration file
pointing at the engine's extension_api.json dump.`,
		Example: `  # Interactive mode
  gdext init

  # Non-interactive
  gdext init --api extension_api.json --output gen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.api, "api", "", "Path to extension_api.json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory for generated sources")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	if _, err := os.Stat(session.ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists", session.ConfigFileName)
	}

	if opts.api == "" {
		if err := prompts.RunInitForm(&opts.api, &opts.output); err != nil {
			return err
		}
	}

	if opts.output == "" {
		opts.output = "gen"
	}

	cfg := &config.Config{
		Version: config.CurrentConfigVersion,
		API:     opts.api,
		Output:  opts.output,
	}
	if err := cfg.Save(session.ConfigFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", session.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "API dump", Value: cfg.API},
		{Label: "Output", Value: cfg.Output},
	}, "Project initialized")

	return nil
}
