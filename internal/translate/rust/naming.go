// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gdext Authors

package rust

import "strings"

// moduleNameCorrections patches snake_case results the general conversion
// cannot get right. These are literal first-occurrence substring rewrites,
// applied in order; new exceptions are appended here rather than folded into
// the conversion pass.
//
//   - VisualShaderNodeVec3Uniform => visual_shader_node_vec_3_uniform
//   - GDNativeLibrary => gd_native_library
//   - GDScriptFunctionState => gd_script_function_state
var moduleNameCorrections = []struct {
	pattern     string
	replacement string
}{
	{"_vec_3", "_vec3_"},
	{"gd_native", "gdnative"},
	{"gd_script", "gdscript"},
}

// ToModuleName converts a PascalCase engine class name to the snake_case
// module name used in the generated bindings, e.g. "Node2D" => "node_2d" and
// "HTTPRequest" => "http_request". Total over any input; an empty name maps
// to an empty name.
func ToModuleName(className string) string {
	// Remove underscores up front so the pass only sees case transitions.
	stripped := make([]byte, 0, len(className))
	for i := 0; i < len(className); i++ {
		if className[i] != '_' {
			stripped = append(stripped, className[i])
		}
	}

	result := make([]byte, 0, len(stripped)+4)
	for i, current := range stripped {
		// 2-lookbehind over already-processed characters plus 1-lookahead.
		// End of name does not count as lower, so a trailing run like the
		// "EQ21" in "AudioEffectEQ21" stays unsplit.
		nextLower := i+1 < len(stripped) && isLower(stripped[i+1])

		// An acronym run ending in a word: split before its last capital
		// ("HTTPRequest" => http_request). The two-back check requires a
		// run of at least three, which keeps pairs like the "2D" in
		// "Node2D" together.
		capsToLower := i >= 2 &&
			isUpperOrDigit(stripped[i-1]) &&
			isUpperOrDigit(current) &&
			nextLower &&
			isUpperOrDigit(stripped[i-2])

		// camelCase boundary; digits count as uppercase ("Node2D" => node_2d).
		lowerToUpper := i >= 1 && isLower(stripped[i-1]) && isUpperOrDigit(current)

		if capsToLower || lowerToUpper {
			result = append(result, '_')
		}
		result = append(result, toLower(current))
	}

	name := string(result)
	for _, c := range moduleNameCorrections {
		if idx := strings.Index(name, c.pattern); idx >= 0 {
			name = name[:idx] + c.replacement + name[idx+len(c.pattern):]
		}
	}

	// A module literally named gdnative would be clobbered by a glob import
	// of the gdnative crate in generated code.
	if name == "gdnative" {
		return "gdnative_"
	}

	return name
}

func isUpperOrDigit(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// rustKeywords is the full Rust reserved-word set: the 2015 lexer keywords,
// the 2018 additions, words reserved for future editions, and the
// capitalized Self type keyword.
// See https://doc.rust-lang.org/reference/keywords.html
var rustKeywords = map[string]struct{}{
	// Lexer
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"else": {}, "enum": {}, "extern": {}, "false": {}, "fn": {}, "for": {},
	"if": {}, "impl": {}, "in": {}, "let": {}, "loop": {}, "match": {},
	"mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {}, "return": {},
	"self": {}, "Self": {}, "static": {}, "struct": {}, "super": {},
	"trait": {}, "true": {}, "type": {}, "unsafe": {}, "use": {},
	"where": {}, "while": {},

	// Lexer 2018+
	"async": {}, "await": {}, "dyn": {},

	// Reserved
	"abstract": {}, "become": {}, "box": {}, "do": {}, "final": {},
	"macro": {}, "override": {}, "priv": {}, "typeof": {}, "unsized": {},
	"virtual": {}, "yield": {},

	// Reserved 2018+
	"try": {},
}

// SafeIdent escapes identifiers colliding with a Rust keyword by appending a
// trailing underscore. The match is exact and case-sensitive.
func SafeIdent(name string) string {
	if _, reserved := rustKeywords[name]; reserved {
		return name + "_"
	}
	return name
}
