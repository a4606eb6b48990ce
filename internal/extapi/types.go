// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

// Package extapi parses Godot's extension_api.json dump into a typed model
// and exposes a lookup registry over the engine classes it declares.
package extapi

// API is the parsed extension_api.json document.
type API struct {
	Header      Header      `json:"header"`
	GlobalEnums []Enum      `json:"global_enums"`
	Classes     []Class     `json:"classes"`
	Singletons  []Singleton `json:"singletons"`
}

// Header identifies the engine build the dump was produced from.
type Header struct {
	VersionMajor    int    `json:"version_major"`
	VersionMinor    int    `json:"version_minor"`
	VersionPatch    int    `json:"version_patch"`
	VersionStatus   string `json:"version_status"`
	VersionBuild    string `json:"version_build"`
	VersionFullName string `json:"version_full_name"`
}

// Class is a single engine class declaration.
type Class struct {
	Name           string `json:"name"`
	IsRefcounted   bool   `json:"is_refcounted"`
	IsInstantiable bool   `json:"is_instantiable"`
	Inherits       string `json:"inherits"`
	APIType        string `json:"api_type"`
	Enums          []Enum `json:"enums"`
}

// Enum is an enum or bitfield declaration, either class-local or global.
// Values keep the order they appear in the dump.
type Enum struct {
	Name       string      `json:"name"`
	IsBitfield bool        `json:"is_bitfield"`
	Values     []EnumValue `json:"values"`
}

// EnumValue is a single enumerator. Ordinals are not required to be unique
// within an enum; Godot declares aliases with equal values.
type EnumValue struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

// Singleton maps a singleton name to its backing class.
type Singleton struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
