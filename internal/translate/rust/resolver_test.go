// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aekobear/gdext/internal/translate"
)

// testRegistry recognizes a fixed set of engine classes.
var testRegistry = translate.ClassRegistryFunc(func(name string) bool {
	switch name {
	case "Node", "Object", "PackedScene", "HTTPRequest":
		return true
	}
	return false
})

func TestResolveType(t *testing.T) {
	tests := []struct {
		raw  string
		want Ty
	}{
		// Hardcoded overrides.
		{"int", BuiltinIdent{Ident: "i64"}},
		{"float", BuiltinIdent{Ident: "f64"}},
		{"String", BuiltinIdent{Ident: "GodotString"}},

		// Qualified enums and bitfields.
		{"enum::Error", EngineEnum{Module: "global", Name: "Error"}},
		{"bitfield::KeyModifierMask", EngineEnum{Module: "global", Name: "KeyModifierMask"}},
		{"enum::Foo.Bar", EngineEnum{Module: "foo", Name: "Bar"}},
		{"enum::HTTPRequest.Result", EngineEnum{Module: "http_request", Name: "Result"}},
		{"bitfield::Mesh.ArrayFormat", EngineEnum{Module: "mesh", Name: "ArrayFormat"}},

		// Packed arrays: prefix and suffix both required.
		{"PackedInt32Array", BuiltinIdent{Ident: "Int32Array"}},
		{"PackedByteArray", BuiltinIdent{Ident: "ByteArray"}},
		{"PackedScene", EngineClass{Class: "PackedScene"}},

		// Typed arrays.
		{"typedarray::PackedByteArray", BuiltinIdent{Ident: "ByteArray"}},
		{"typedarray::int", BuiltinGeneric{Container: "TypedArray", Elem: BuiltinIdent{Ident: "i64"}}},
		{"typedarray::Node", BuiltinGeneric{Container: "TypedArray", Elem: EngineClass{Class: "Node"}}},

		// Engine classes.
		{"Node", EngineClass{Class: "Node"}},
		{"Object", EngineClass{Class: "Object"}},

		// Fallback: unrecognized names pass through unchanged.
		{"Vector2", BuiltinIdent{Ident: "Vector2"}},
		{"SomethingUnknown", BuiltinIdent{Ident: "SomethingUnknown"}},
		{"", BuiltinIdent{Ident: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveType(tt.raw, testRegistry))
		})
	}
}

// The override table is checked before qualifier parsing: raw names that
// carry the enum:: prefix but have an override must take the override. This
// ordering is load-bearing; a new override for a qualified name silently
// wins over the enum path.
func TestResolveType_OverridesPrecedeQualifiers(t *testing.T) {
	tests := []struct {
		raw  string
		want Ty
	}{
		{"enum::Variant.Type", BuiltinIdent{Ident: "VariantType"}},
		{"enum::Variant.Operator", BuiltinIdent{Ident: "VariantOperator"}},
		{"enum::Vector3.Axis", BuiltinIdent{Ident: "Vector3Axis"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ResolveType(tt.raw, testRegistry)
			assert.Equal(t, tt.want, got)
			assert.IsType(t, BuiltinIdent{}, got, "override must not resolve as EngineEnum")
		})
	}

	// A qualified name that is not in the override table still parses as an
	// enum path.
	assert.Equal(t,
		EngineEnum{Module: "vector_3", Name: "Sign"},
		ResolveType("enum::Vector3.Sign", testRegistry))
}

func TestTyCode(t *testing.T) {
	tests := []struct {
		ty   Ty
		want string
	}{
		{BuiltinIdent{Ident: "i64"}, "i64"},
		{BuiltinGeneric{Container: "TypedArray", Elem: BuiltinIdent{Ident: "f64"}}, "TypedArray<f64>"},
		{BuiltinGeneric{Container: "TypedArray", Elem: EngineClass{Class: "Node"}}, "TypedArray<Gd<Node>>"},
		{EngineEnum{Module: "node", Name: "ProcessMode"}, "node::ProcessMode"},
		{EngineEnum{Module: GlobalModule, Name: "Error"}, "global::Error"},
		{EngineClass{Class: "HTTPRequest"}, "Gd<HTTPRequest>"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ty.Code())
	}
}
