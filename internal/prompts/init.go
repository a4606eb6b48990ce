// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package prompts

import "github.com/charmbracelet/huh"

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(apiPath, output *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to extension_api.json").
				Placeholder("extension_api.json").
				Validate(requiredValidator("api path")).
				Value(apiPath),
			huh.NewInput().
				Title("Output directory for generated sources").
				Placeholder("gen").
				Value(output),
		),
	).WithTheme(Theme()).Run()
}
