// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import (
	"strings"

	"github.com/aekobear/gdext/internal/translate"
)

// hardcodedTypes maps raw names whose generic resolution would be wrong or
// inconsistent straight to a builtin identifier. Entries here win over every
// other rule, including the enum:: qualifier parsing below.
var hardcodedTypes = map[string]string{
	"int":    "i64",
	"float":  "f64",
	"String": "GodotString",

	// The dump qualifies these as enums, but the binding models them as
	// builtin types.
	"enum::Variant.Type":     "VariantType",
	"enum::Variant.Operator": "VariantOperator",
	"enum::Vector3.Axis":     "Vector3Axis",
}

// ResolveType classifies a raw type name from the API dump into its Rust
// representation. Resolution is total: a name matching no rule is assumed to
// already be a valid binding type and passes through unchanged, so one odd
// schema entry degrades to reviewable output instead of failing a run.
//
// TODO cache results per registry; resolution is called once per occurrence.
func ResolveType(raw string, registry translate.ClassRegistry) Ty {
	if hardcoded, ok := hardcodedTypes[raw]; ok {
		return BuiltinIdent{Ident: hardcoded}
	}

	qualified, isEnum := strings.CutPrefix(raw, "enum::")
	if !isEnum {
		qualified, isEnum = strings.CutPrefix(raw, "bitfield::")
	}

	switch {
	case isEnum:
		if class, enum, found := strings.Cut(qualified, "."); found {
			// Class-local enum
			return EngineEnum{Module: ToModuleName(class), Name: enum}
		}
		// Global enum
		return EngineEnum{Module: GlobalModule, Name: qualified}

	case strings.HasPrefix(raw, "Packed"):
		// PackedScene is a class, not a packed array; require the suffix too.
		if strings.HasSuffix(raw, "Array") {
			return BuiltinIdent{Ident: strings.TrimPrefix(raw, "Packed")}
		}

	case strings.HasPrefix(raw, "typedarray::"):
		elem := strings.TrimPrefix(raw, "typedarray::")
		if packed, ok := strings.CutPrefix(elem, "Packed"); ok {
			return BuiltinIdent{Ident: packed}
		}
		return BuiltinGeneric{Container: "TypedArray", Elem: ResolveType(elem, registry)}
	}

	if registry.IsEngineClass(raw) {
		return EngineClass{Class: raw}
	}

	// Unchanged
	return BuiltinIdent{Ident: raw}
}
