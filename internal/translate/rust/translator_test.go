// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import (
	"strings"
	"testing"

	"github.com/aekobear/gdext/internal/extapi"
	"github.com/aekobear/gdext/internal/translate"
)

func TestTranslator_TranslateClass(t *testing.T) {
	tests := []struct {
		name     string
		class    extapi.Class
		wantCode []string // Expected code snippets
	}{
		{
			name: "class with plain enum",
			class: extapi.Class{
				Name:     "Node",
				Inherits: "Object",
				Enums: []extapi.Enum{
					{
						Name: "ProcessMode",
						Values: []extapi.EnumValue{
							{Name: "PROCESS_MODE_INHERIT", Value: 0},
							{Name: "PROCESS_MODE_DISABLED", Value: 4},
						},
					},
				},
			},
			wantCode: []string{
				"// Engine class Node (module node).",
				"// Inherits Gd<Object>.",
				"#[repr(transparent)]",
				"#[derive(Copy, Clone, Eq, PartialEq, Debug, Hash)]",
				"pub struct ProcessMode {",
				"ord: i32,",
				"pub const fn ord(self) -> i64 {",
				"pub const PROCESS_MODE_INHERIT: Self = Self { ord: 0 };",
				"pub const PROCESS_MODE_DISABLED: Self = Self { ord: 4 };",
			},
		},
		{
			name: "class with bitfield",
			class: extapi.Class{
				Name:     "RenderingServer",
				Inherits: "Object",
				Enums: []extapi.Enum{
					{
						Name:       "ArrayFormat",
						IsBitfield: true,
						Values: []extapi.EnumValue{
							{Name: "ARRAY_FORMAT_VERTEX", Value: 1},
							{Name: "ARRAY_FORMAT_NORMAL", Value: 2},
						},
					},
				},
			},
			wantCode: []string{
				"// Engine class RenderingServer (module rendering_server).",
				"pub const UNSET: Self = Self { ord: 0 };",
				"impl std::ops::BitOr for ArrayFormat {",
				"Self { ord: self.ord | rhs.ord }",
			},
		},
		{
			name: "acronym class name",
			class: extapi.Class{
				Name: "HTTPRequest",
			},
			wantCode: []string{
				"// Engine class HTTPRequest (module http_request).",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator := New()
			got, err := translator.TranslateClass(&tt.class, testRegistry)
			if err != nil {
				t.Fatalf("TranslateClass() error = %v", err)
			}

			gotStr := string(got)
			for _, want := range tt.wantCode {
				if !strings.Contains(gotStr, want) {
					t.Errorf("TranslateClass() missing expected code snippet:\nwant: %q\ngot:\n%s", want, gotStr)
				}
			}
		})
	}
}

func TestTranslator_TranslateGlobals(t *testing.T) {
	translator := New()
	got, err := translator.TranslateGlobals([]extapi.Enum{
		{
			Name: "Error",
			Values: []extapi.EnumValue{
				{Name: "OK", Value: 0},
				{Name: "FAILED", Value: 1},
			},
		},
		{
			Name:       "KeyModifierMask",
			IsBitfield: true,
			Values: []extapi.EnumValue{
				{Name: "KEY_MASK_SHIFT", Value: 33554432},
			},
		},
	})
	if err != nil {
		t.Fatalf("TranslateGlobals() error = %v", err)
	}

	gotStr := string(got)
	for _, want := range []string{
		"// Global scope enums and bitfields.",
		"pub struct Error {",
		"pub const OK: Self = Self { ord: 0 };",
		"pub struct KeyModifierMask {",
		"pub const KEY_MASK_SHIFT: Self = Self { ord: 33554432 };",
		"impl std::ops::BitOr for KeyModifierMask {",
	} {
		if !strings.Contains(gotStr, want) {
			t.Errorf("TranslateGlobals() missing expected code snippet:\nwant: %q\ngot:\n%s", want, gotStr)
		}
	}
}

func TestTranslator_Registered(t *testing.T) {
	translator, err := translate.Get("rust")
	if err != nil {
		t.Fatalf("Get(rust) error = %v", err)
	}
	if got := translator.FileExtension(); got != ".rs" {
		t.Errorf("FileExtension() = %q, want .rs", got)
	}
	if got := translator.ModuleName("HTTPRequest"); got != "http_request" {
		t.Errorf("ModuleName(HTTPRequest) = %q, want http_request", got)
	}
}
