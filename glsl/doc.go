// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl translates shader expression trees to GLSL source text.
//
// Translation runs in three passes:
//
//   - Expand rewrites macro forms (let, ->) to core forms.
//   - Generate resolves import forms against namespaces, lifting the
//     imported definitions ahead of the entry point.
//   - Emission renders the tree as indented, ;-terminated GLSL.
//
// # Basic Usage
//
//	source, err := glsl.CompileVertex(decls, body, glsl.DefaultOptions())
//
// CompileFragment is identical except that attribute declarations are
// filtered out, since attribute-qualified variables are restricted to
// the vertex stage.
//
// # Operators
//
// Infix forms translate their operator names to GLSL tokens (= becomes
// ==, and becomes &&). Operators with no specialized renderer fall
// through to generic call rendering, head(arg, ...), which is how GLSL
// builtin functions pass through without an entry per name. The
// translator performs no semantic validation: an invalid tree produces
// GLSL the native shader compiler will reject.
package glsl
