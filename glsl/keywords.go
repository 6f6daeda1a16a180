// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gerred/penumbra/sexp"
)

// infixText returns the GLSL operator token for an infix form.
// Logical operator names are translated (and -> &&); the rest pass through.
func infixText(name string) (string, bool) {
	switch name {
	case "+", "-", "*", "/", "<", "<=", ">", ">=":
		return name, true
	case "=":
		return "==", true
	case "and":
		return "&&", true
	case "or":
		return "||", true
	case "xor":
		return "^^", true
	default:
		return "", false
	}
}

// unaryText returns the GLSL operator token for a prefix form.
func unaryText(name string) (string, bool) {
	switch name {
	case "++", "--", "-":
		return name, true
	case "not":
		return "!", true
	default:
		return "", false
	}
}

// assignmentText returns the GLSL assignment token for an assignment form.
// declare and set! both assign with =; declare additionally allows a bare
// l-value (a declaration with no initializer).
func assignmentText(name string) (string, bool) {
	switch name {
	case "declare", "set!":
		return "=", true
	case "+=", "-=", "*=":
		return name, true
	default:
		return "", false
	}
}

// isMemberOp reports whether an operator name is a member/swizzle accessor,
// such as .xyz or .s0.
func isMemberOp(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// glslName rewrites a hyphenated-lowercase symbol name to GLSL underscore
// form: model-view becomes model_view.
func glslName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// builtinName translates a keyword to the GLSL builtin identifier it
// references: :model-view-matrix becomes gl_ModelViewMatrix.
func builtinName(k sexp.Keyword) string {
	var sb strings.Builder
	sb.WriteString("gl_")
	for _, segment := range strings.Split(k.Name, "-") {
		sb.WriteString(capitalize(segment))
	}
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
