// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

// Package rust maps engine API declarations to the Rust binding convention:
// module and identifier naming, type-name resolution, and enum/bitfield
// definitions consumed by the emission templates.
package rust

// Ty is the resolved Rust representation of a raw type name from the API
// dump. It is a closed sum: exactly the four cases below exist, and exactly
// one applies to any given raw name.
type Ty interface {
	// Code returns the Rust source form of the type.
	Code() string

	rustTy()
}

// BuiltinIdent is a builtin or primitive type referenced by bare name.
type BuiltinIdent struct {
	Ident string
}

// BuiltinGeneric is a parametrized builtin container, e.g. TypedArray<i64>.
type BuiltinGeneric struct {
	Container string
	Elem      Ty
}

// EngineEnum is a path to a generated enum or bitfield type, either
// class-local (module::Name) or global (global::Name).
type EngineEnum struct {
	Module string
	Name   string
}

// EngineClass is a reference-counted handle to an engine object class.
type EngineClass struct {
	Class string
}

// GlobalModule is the module path EngineEnum uses for enums declared outside
// any class.
const GlobalModule = "global"

func (t BuiltinIdent) Code() string { return t.Ident }

func (t BuiltinGeneric) Code() string { return t.Container + "<" + t.Elem.Code() + ">" }

func (t EngineEnum) Code() string { return t.Module + "::" + t.Name }

func (t EngineClass) Code() string { return "Gd<" + t.Class + ">" }

func (BuiltinIdent) rustTy()   {}
func (BuiltinGeneric) rustTy() {}
func (EngineEnum) rustTy()     {}
func (EngineClass) rustTy()    {}
