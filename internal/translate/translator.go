// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

// Package translate defines the translator registry and the contracts shared
// by all binding targets.
package translate

import (
	"fmt"
	"sort"

	"github.com/aekobear/gdext/internal/extapi"
)

// Translator defines the interface all binding targets must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "rust")
	Name() string

	// ModuleName returns the target-convention module name (and file stem)
	// for an engine class name.
	ModuleName(className string) string

	// TranslateClass converts one engine class declaration to binding source.
	// The registry is consulted when resolving type references.
	TranslateClass(class *extapi.Class, registry ClassRegistry) ([]byte, error)

	// TranslateGlobals converts the dump's global enums to binding source.
	TranslateGlobals(enums []extapi.Enum) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".rs")
	FileExtension() string
}

var translators = make(map[string]Translator)

// Register adds a translator to the registry.
func Register(t Translator) {
	translators[t.Name()] = t
}

// Get retrieves a translator by name.
func Get(name string) (Translator, error) {
	t, ok := translators[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func Available() []string {
	names := make([]string, 0, len(translators))
	for name := range translators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
