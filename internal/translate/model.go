// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package translate

// ClassRegistry reports whether a name refers to a class provided by the
// engine, as opposed to a builtin type of the binding. It is injected into
// type resolution so resolution stays a pure function over its inputs;
// implementations must be read-only for the duration of a call.
type ClassRegistry interface {
	IsEngineClass(name string) bool
}

// ClassRegistryFunc adapts a plain function to a ClassRegistry.
type ClassRegistryFunc func(name string) bool

// IsEngineClass calls f.
func (f ClassRegistryFunc) IsEngineClass(name string) bool { return f(name) }
