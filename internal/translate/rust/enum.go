// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import "github.com/aekobear/gdext/internal/extapi"

// Ord is the storage of a generated enum value: a 32-bit signed ordinal in a
// single-field value type. 32 bits hold every value the engine currently
// declares and match the default enum width of the engine ABI. Ord is a
// plain comparable value; equality, hashing and copies are structural.
type Ord struct {
	ord int32
}

// Unset is the bitfield value with no flags set.
var Unset = Ord{}

// OrdOf wraps a declared ordinal.
func OrdOf(v int32) Ord {
	return Ord{ord: v}
}

// Value returns the ordinal widened to 64 bits, matching the public
// interface of the generated type: the engine's scripting layer exposes
// integers uniformly as 64-bit, and future engine versions may declare
// values that outgrow 32 bits.
func (o Ord) Value() int64 {
	return int64(o.ord)
}

// Combine ORs two bitfield values into one of the same type. Delegating to
// the underlying integer makes the operation associative and commutative,
// with Unset as identity.
func (o Ord) Combine(other Ord) Ord {
	return Ord{ord: o.ord | other.ord}
}

// Enumerator is one named constant of a generated enum type. Ordinals are
// not necessarily unique; the engine declares aliases with equal values, and
// each alias stays a distinct constant.
type Enumerator struct {
	Name    string
	Ordinal Ord
}

// EnumDefinition is the full definition of one generated enum or bitfield
// type, as structured data for the emission templates. Bitfield definitions
// additionally carry the Unset constant and bitwise-OR combination in the
// emitted type.
type EnumDefinition struct {
	Name        string
	Bitfield    bool
	Enumerators []Enumerator
}

// BuildEnum converts an enum declaration from the API dump into its
// generated-type definition. Names pass through SafeIdent so a declaration
// that happens to collide with a Rust keyword still yields a legal type.
func BuildEnum(enum extapi.Enum) EnumDefinition {
	enumerators := make([]Enumerator, len(enum.Values))
	for i, value := range enum.Values {
		enumerators[i] = Enumerator{
			Name:    SafeIdent(value.Name),
			Ordinal: OrdOf(value.Value),
		}
	}

	return EnumDefinition{
		Name:        SafeIdent(enum.Name),
		Bitfield:    enum.IsBitfield,
		Enumerators: enumerators,
	}
}
