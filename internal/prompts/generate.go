// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for whatever the generate command was not given on
// the command line: the target, the classes to generate, and the output
// directory. Pointers already holding a value keep it and their field is
// skipped.
func RunGenerateForm(classes *[]string, format, output *string, classNames, formats []string) error {
	var groups []*huh.Group

	if *format == "" {
		if len(formats) == 1 {
			*format = formats[0]
		} else {
			options := make([]huh.Option[string], len(formats))
			for i, f := range formats {
				options[i] = huh.NewOption(f, f)
			}
			groups = append(groups, huh.NewGroup(
				huh.NewSelect[string]().
					Title("Binding target").
					Options(options...).
					Value(format),
			))
		}
	}

	if len(*classes) == 0 {
		options := make([]huh.Option[string], len(classNames))
		for i, name := range classNames {
			options[i] = huh.NewOption(name, name)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Classes to generate").
				Options(options...).
				Filterable(true).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return errors.New("select at least one class")
					}
					return nil
				}).
				Value(classes),
		))
	}

	if *output == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Output directory").
				Placeholder("gen").
				Validate(requiredValidator("output directory")).
				Value(output),
		))
	}

	if len(groups) == 0 {
		return nil
	}

	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
