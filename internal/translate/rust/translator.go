// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/aekobear/gdext/internal/extapi"
	"github.com/aekobear/gdext/internal/translate"
)

//go:embed *.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "*.tmpl"))

// Translator emits Rust binding source for engine classes and global enums.
type Translator struct{}

// New creates a rust Translator.
func New() *Translator {
	return &Translator{}
}

func init() {
	translate.Register(New())
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "rust"
}

// FileExtension returns the file extension for Rust source files.
func (t *Translator) FileExtension() string {
	return ".rs"
}

// ModuleName returns the binding-convention module name for an engine class.
func (t *Translator) ModuleName(className string) string {
	return ToModuleName(className)
}

type classData struct {
	Class    string
	Module   string
	Inherits string // resolved handle type of the parent class, if any
	Enums    []EnumDefinition
}

type globalData struct {
	Enums []EnumDefinition
}

// TranslateClass renders the module file for one engine class: its enums and
// bitfields, under a header identifying the class and its parent.
func (t *Translator) TranslateClass(class *extapi.Class, registry translate.ClassRegistry) ([]byte, error) {
	data := classData{
		Class:  class.Name,
		Module: ToModuleName(class.Name),
		Enums:  buildEnums(class.Enums),
	}
	if class.Inherits != "" {
		data.Inherits = ResolveType(class.Inherits, registry).Code()
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "class.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// TranslateGlobals renders the module file holding the dump's global enums.
func (t *Translator) TranslateGlobals(enums []extapi.Enum) ([]byte, error) {
	data := globalData{Enums: buildEnums(enums)}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "global.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

func buildEnums(enums []extapi.Enum) []EnumDefinition {
	defs := make([]EnumDefinition, len(enums))
	for i, enum := range enums {
		defs[i] = BuildEnum(enum)
	}
	return defs
}
