// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gerred/penumbra/sexp"
)

// Options configures GLSL source generation.
type Options struct {
	// Extensions is prepended verbatim before the declaration section.
	// Use it for #extension pragmas; the text is not parsed.
	Extensions string

	// Namespaces are the binding tables that import forms resolve
	// against, keyed by namespace name.
	Namespaces map[string]*Namespace
}

// DefaultOptions returns options with no extensions and no namespaces.
func DefaultOptions() Options {
	return Options{
		Namespaces: make(map[string]*Namespace),
	}
}

// CompileVertex generates vertex shader GLSL source from a declaration
// list and a shader body. The body is wrapped in a main entry point,
// macro-expanded, import-resolved, and emitted after the declarations.
func CompileVertex(decls []sexp.Node, body []sexp.Node, options Options) (string, error) {
	return compileShader(decls, body, options)
}

// CompileFragment generates fragment shader GLSL source. It is identical
// to CompileVertex except that attribute declarations are filtered out
// first: attribute-qualified variables are vertex-stage-only.
func CompileFragment(decls []sexp.Node, body []sexp.Node, options Options) (string, error) {
	filtered := make([]sexp.Node, 0, len(decls))
	for _, decl := range decls {
		if isAttributeDecl(decl) {
			continue
		}
		filtered = append(filtered, decl)
	}
	return compileShader(filtered, body, options)
}

func isAttributeDecl(decl sexp.Node) bool {
	call, ok := declTarget(decl).(sexp.Call)
	if !ok {
		return false
	}
	op, ok := call.Op.(sexp.Symbol)
	return ok && op.Name == "attribute"
}

// declTarget unwraps a declare form to the declaration it qualifies.
// Bare declarations pass through.
func declTarget(decl sexp.Node) sexp.Node {
	call, ok := decl.(sexp.Call)
	if !ok || len(call.Args) == 0 {
		return decl
	}
	if op, ok := call.Op.(sexp.Symbol); ok && op.Name == "declare" {
		return call.Args[0]
	}
	return decl
}

// compileShader runs the three translation passes and assembles the
// output: extension text, then declarations, then the generated body
// with imported definitions ahead of the entry point.
func compileShader(decls []sexp.Node, body []sexp.Node, options Options) (string, error) {
	root := sexp.Node(sexp.List(sexp.Sym("main"), body...))

	expanded, err := Expand(root)
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	chunks, err := Generate(expanded, options.Namespaces)
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}

	var sb strings.Builder
	if options.Extensions != "" {
		sb.WriteString(options.Extensions)
		if !strings.HasSuffix(options.Extensions, "\n") {
			sb.WriteByte('\n')
		}
	}

	declSection, err := renderDeclarations(decls)
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	sb.WriteString(declSection)

	bodySection, err := renderStatements(chunks)
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	sb.WriteString(bodySection)

	return sb.String(), nil
}

// renderDeclarations renders the declaration section: each declaration
// is a declare form terminated with ";". Declarations arriving already
// wrapped in declare (as top-level source forms do) render as given,
// which is what lets a declaration carry an initializer.
func renderDeclarations(decls []sexp.Node) (string, error) {
	wrapped := make([]sexp.Node, len(decls))
	for i, decl := range decls {
		if call, ok := decl.(sexp.Call); ok {
			if op, ok := call.Op.(sexp.Symbol); ok && op.Name == "declare" {
				wrapped[i] = decl
				continue
			}
		}
		wrapped[i] = sexp.List(sexp.Sym("declare"), decl)
	}
	return renderStatements(wrapped)
}
