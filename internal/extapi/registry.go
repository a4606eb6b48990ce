// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package extapi

import "sort"

// Registry answers "is this name a known engine class" for the type
// resolver, and provides deterministic iteration over the declared classes.
// It is populated once from a parsed API and read-only afterwards.
type Registry struct {
	classes map[string]*Class
	names   []string // sorted class names
}

// NewRegistry builds a Registry from a parsed API dump.
func NewRegistry(api *API) *Registry {
	classes := make(map[string]*Class, len(api.Classes))
	names := make([]string, 0, len(api.Classes))
	for i := range api.Classes {
		class := &api.Classes[i]
		classes[class.Name] = class
		names = append(names, class.Name)
	}
	sort.Strings(names)

	return &Registry{
		classes: classes,
		names:   names,
	}
}

// IsEngineClass reports whether name is a class declared by the engine.
func (r *Registry) IsEngineClass(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// Class returns the declaration for name, or nil if unknown.
func (r *Registry) Class(name string) *Class {
	return r.classes[name]
}

// Names returns all class names in sorted order.
func (r *Registry) Names() []string {
	return r.names
}
