// Package penumbra compiles S-expression shader trees to GLSL source.
//
// Shader programs are written as expression trees, either built
// programmatically from sexp nodes or parsed from textual form. The
// compiler runs three passes: macro expansion (let bindings, threading),
// generation (resolving import forms against namespaces of reusable
// definitions), and emission (rendering the tree as GLSL text).
//
// The package provides a simple, high-level API for shader compilation as
// well as lower-level access to the individual passes.
//
// Example usage:
//
//	forms, err := penumbra.Parse(`
//	(declare (varying (vec3 color)))
//	(set! :frag-color (vec4 color 1.0))
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	decls, body := penumbra.SplitDeclarations(forms)
//	source, err := penumbra.CompileFragmentSource(decls, body, penumbra.DefaultOptions())
//
// For direct control over the passes, use the glsl package:
//
//	expanded, _ := glsl.Expand(tree)
//	chunks, _ := glsl.Generate(expanded, namespaces)
//	text, err := glsl.Emit(chunks[0])
package penumbra

import (
	"fmt"

	"github.com/gerred/penumbra/glsl"
	"github.com/gerred/penumbra/glsllib"
	"github.com/gerred/penumbra/sexp"
)

// CompileOptions configures shader compilation.
type CompileOptions struct {
	// Extensions is prepended verbatim to the output, ahead of the
	// declaration section. Use it for #extension pragmas.
	Extensions string

	// Namespaces are the binding tables import forms resolve against,
	// keyed by namespace name.
	Namespaces map[string]*glsl.Namespace
}

// DefaultOptions returns options with the built-in shaderlib namespace
// registered, so shaders can import its definitions out of the box.
func DefaultOptions() CompileOptions {
	return CompileOptions{
		Namespaces: map[string]*glsl.Namespace{
			glsllib.Name: glsllib.Namespace(),
		},
	}
}

// CompileVertexSource compiles a declaration list and a shader body to
// vertex shader GLSL source.
//
// The body is wrapped in a main entry point, macro-expanded,
// import-resolved against the configured namespaces, and emitted after
// the declarations. Identical inputs produce identical output.
func CompileVertexSource(decls []sexp.Node, body []sexp.Node, opts CompileOptions) (string, error) {
	return glsl.CompileVertex(decls, body, backendOptions(opts))
}

// CompileFragmentSource compiles a declaration list and a shader body to
// fragment shader GLSL source.
//
// It is identical to CompileVertexSource except that attribute
// declarations are dropped: the same declaration list can feed both
// stages of a shader pair.
func CompileFragmentSource(decls []sexp.Node, body []sexp.Node, opts CompileOptions) (string, error) {
	return glsl.CompileFragment(decls, body, backendOptions(opts))
}

func backendOptions(opts CompileOptions) glsl.Options {
	return glsl.Options{
		Extensions: opts.Extensions,
		Namespaces: opts.Namespaces,
	}
}

// Parse reads textual shader forms into expression trees.
//
// The input is a sequence of top-level forms. Parse is the first stage
// of source-driven compilation; trees built programmatically skip it.
func Parse(source string) ([]sexp.Node, error) {
	lexer := sexp.NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenization error: %w", err)
	}

	parser := sexp.NewParser(tokens)
	forms, err := parser.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return forms, nil
}

// SplitDeclarations partitions top-level forms into the declaration list
// and the shader body: forms whose operator is declare are declarations,
// everything else is body, with relative order preserved on both sides.
func SplitDeclarations(forms []sexp.Node) (decls, body []sexp.Node) {
	for _, form := range forms {
		if isDeclareForm(form) {
			decls = append(decls, form)
		} else {
			body = append(body, form)
		}
	}
	return decls, body
}

func isDeclareForm(form sexp.Node) bool {
	call, ok := form.(sexp.Call)
	if !ok {
		return false
	}
	op, ok := call.Op.(sexp.Symbol)
	return ok && op.Name == "declare"
}

// Expand rewrites every macro form in a tree to core forms.
//
// This is the first pass of compilation. The returned tree contains no
// let or threading forms.
func Expand(node sexp.Node) (sexp.Node, error) {
	return glsl.Expand(node)
}

// Generate resolves import forms against namespaces, returning the
// program as top-level chunks with imported definitions ahead of their
// first use.
//
// This is the second pass. Each (namespace, symbol) pair resolves at
// most once per compilation.
func Generate(root sexp.Node, namespaces map[string]*glsl.Namespace) ([]sexp.Node, error) {
	return glsl.Generate(root, namespaces)
}
