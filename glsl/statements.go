// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gerred/penumbra/sexp"
)

// renderStatements renders a sequence of forms as statements. Forms that
// render to blank text are dropped; every other rendering is terminated
// with ";" and a newline unless it already ends in a newline, which is
// how block forms avoid double terminators.
func renderStatements(nodes []sexp.Node) (string, error) {
	var sb strings.Builder
	for _, node := range nodes {
		s, err := renderNode(node)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		sb.WriteString(s)
		if !strings.HasSuffix(s, "\n") {
			sb.WriteString(";\n")
		}
	}
	return sb.String(), nil
}

// indentBlock prefixes every line of a rendered block body with two
// spaces. Blank lines stay blank.
func indentBlock(s string) string {
	if s == "" {
		return s
	}
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(s, "\n"), "\n") {
		if line != "" {
			sb.WriteString("  ")
			sb.WriteString(line)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// renderBlock renders a brace-delimited block under a header line.
func renderBlock(header, body string) string {
	return header + "\n{\n" + indentBlock(body) + "}\n"
}

// renderIf renders (if cond then) and (if cond then else).
func renderIf(args []sexp.Node) (string, error) {
	if len(args) != 2 && len(args) != 3 {
		return "", fmt.Errorf("if: takes a condition, a then branch, and an optional else branch")
	}
	cond, err := renderNode(args[0])
	if err != nil {
		return "", err
	}
	then, err := renderStatements(args[1:2])
	if err != nil {
		return "", err
	}

	out := renderBlock("if ("+cond+")", then)
	if len(args) == 3 {
		els, err := renderStatements(args[2:3])
		if err != nil {
			return "", err
		}
		out += renderBlock("else", els)
	}
	return out, nil
}

// renderWhile renders (while cond body...).
func renderWhile(args []sexp.Node) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("while: needs a condition")
	}
	cond, err := renderNode(args[0])
	if err != nil {
		return "", err
	}
	body, err := renderStatements(args[1:])
	if err != nil {
		return "", err
	}
	return renderBlock("while ("+cond+")", body), nil
}

// renderFor renders (for init cond step body...).
func renderFor(args []sexp.Node) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("for: needs an initializer, a condition, and a step")
	}
	init, err := renderNode(args[0])
	if err != nil {
		return "", err
	}
	cond, err := renderNode(args[1])
	if err != nil {
		return "", err
	}
	step, err := renderNode(args[2])
	if err != nil {
		return "", err
	}
	body, err := renderStatements(args[3:])
	if err != nil {
		return "", err
	}
	return renderBlock("for ("+init+"; "+cond+"; "+step+")", body), nil
}

// renderReturn renders (return) and (return value).
func renderReturn(args []sexp.Node) (string, error) {
	switch len(args) {
	case 0:
		return "return", nil
	case 1:
		value, err := renderNode(args[0])
		if err != nil {
			return "", err
		}
		return "return " + value, nil
	default:
		return "", fmt.Errorf("return: takes at most one value")
	}
}

// renderMain renders the GLSL entry point: void main() wrapping the body.
func renderMain(args []sexp.Node) (string, error) {
	body, err := renderStatements(args)
	if err != nil {
		return "", err
	}
	return renderBlock("void main()", body), nil
}

// renderDefn renders a function definition:
// (defn float square (float x) (return (* x x))) renders as
//
//	float square(float x)
//	{
//	  return x * x;
//	}
func renderDefn(args []sexp.Node) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("defn: needs a return type, a name, and a parameter list")
	}

	ret, err := renderLValue(args[0])
	if err != nil {
		return "", err
	}
	name, ok := args[1].(sexp.Symbol)
	if !ok {
		return "", fmt.Errorf("defn: function name must be a symbol, got %s", args[1])
	}
	params, err := renderParams(args[2])
	if err != nil {
		return "", err
	}
	body, err := renderStatements(args[3:])
	if err != nil {
		return "", err
	}

	header := ret + " " + glslName(name.Name) + "(" + params + ")"
	return renderBlock(header, body), nil
}

// renderParams renders a function parameter list. A single typed pair
// (float x) renders directly; a wrapped list ((float a) (float b))
// renders each pair, comma-joined.
func renderParams(node sexp.Node) (string, error) {
	call, ok := node.(sexp.Call)
	if !ok {
		return renderLValue(node)
	}

	elems := call.Elements()
	if _, wrapped := elems[0].(sexp.Call); !wrapped {
		return renderLValue(call)
	}

	parts := make([]string, 0, len(elems))
	for _, elem := range elems {
		s, err := renderLValue(elem)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}
