// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"sort"

	"github.com/gerred/penumbra/sexp"
)

// maxGenerateIterations bounds the import worklist defensively. A shader
// library deep enough to hit this is a dependency cycle in practice.
const maxGenerateIterations = 1000

// Namespace is a named table of importable shader definitions.
// Populate namespaces before compiling; compilation never mutates them,
// so a populated namespace is safe to share across concurrent compiles.
type Namespace struct {
	name     string
	bindings map[string]sexp.Node
}

// NewNamespace creates an empty namespace with the given name. The name
// is what import clauses refer to: (import (name symbol ...)).
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:     name,
		bindings: make(map[string]sexp.Node),
	}
}

// Name returns the namespace name used in import clauses.
func (ns *Namespace) Name() string { return ns.name }

// Bind associates a symbol with a definition tree, replacing any
// previous binding.
func (ns *Namespace) Bind(symbol string, value sexp.Node) {
	ns.bindings[symbol] = value
}

// Resolve looks up the definition bound to a symbol.
func (ns *Namespace) Resolve(symbol string) (sexp.Node, bool) {
	value, ok := ns.bindings[symbol]
	return value, ok
}

// Symbols returns the bound symbol names in sorted order.
func (ns *Namespace) Symbols() []string {
	syms := make([]string, 0, len(ns.bindings))
	for s := range ns.bindings {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// Generate resolves the import forms in a macro-expanded tree against the
// supplied namespaces and returns the program as an ordered sequence of
// top-level statement chunks.
//
// The worklist starts with the root as the only chunk. Each round scans
// the most recently added chunk for import forms, resolves them, wraps
// the resolved definitions in a do form, macro-expands it, and appends it
// as the next chunk; resolved definitions may themselves import, so the
// loop runs until a scan finds nothing new. Each (namespace, symbol) pair
// resolves at most once. The chunk list is reversed before returning so
// that generated definitions precede their first use, with the root last.
func Generate(root sexp.Node, namespaces map[string]*Namespace) ([]sexp.Node, error) {
	body := []sexp.Node{root}
	tail := root
	seen := make(map[string]struct{})

	for iter := 0; ; iter++ {
		if iter >= maxGenerateIterations {
			return nil, fmt.Errorf("generate: import expansion did not settle after %d rounds", maxGenerateIterations)
		}
		generated, err := collectImports(tail, namespaces, seen)
		if err != nil {
			return nil, err
		}
		if len(generated) == 0 {
			break
		}
		expanded, err := Expand(sexp.List(sexp.Sym("do"), generated...))
		if err != nil {
			return nil, err
		}
		body = append(body, expanded)
		tail = expanded
	}

	for l, r := 0, len(body)-1; l < r; l, r = l+1, r-1 {
		body[l], body[r] = body[r], body[l]
	}
	return body, nil
}

// collectImports walks a tree in document order and resolves every import
// form it contains, returning the resolved definitions.
func collectImports(node sexp.Node, namespaces map[string]*Namespace, seen map[string]struct{}) ([]sexp.Node, error) {
	call, ok := node.(sexp.Call)
	if !ok {
		return nil, nil
	}

	if op, ok := call.Op.(sexp.Symbol); ok && op.Name == "import" {
		return resolveImport(call, namespaces, seen)
	}

	var out []sexp.Node
	for _, elem := range call.Elements() {
		generated, err := collectImports(elem, namespaces, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, generated...)
	}
	return out, nil
}

// resolveImport resolves one (import (namespace symbol ...) ...) form.
// Symbols already resolved in this compilation are skipped, so importing
// the same definition twice emits it once.
func resolveImport(call sexp.Call, namespaces map[string]*Namespace, seen map[string]struct{}) ([]sexp.Node, error) {
	var out []sexp.Node
	for _, clause := range call.Args {
		cl, ok := clause.(sexp.Call)
		if !ok {
			return nil, fmt.Errorf("import: expected (namespace symbols...) clause, got %s", clause)
		}
		nsSym, ok := cl.Op.(sexp.Symbol)
		if !ok {
			return nil, fmt.Errorf("import: namespace must be a symbol, got %s", cl.Op)
		}
		ns, ok := namespaces[nsSym.Name]
		if !ok {
			return nil, fmt.Errorf("import: unknown namespace %q", nsSym.Name)
		}
		for _, symNode := range cl.Args {
			sym, ok := symNode.(sexp.Symbol)
			if !ok {
				return nil, fmt.Errorf("import: expected symbol, got %s", symNode)
			}
			key := nsSym.Name + "/" + sym.Name
			if _, done := seen[key]; done {
				continue
			}
			seen[key] = struct{}{}
			value, ok := ns.Resolve(sym.Name)
			if !ok {
				return nil, fmt.Errorf("import: namespace %q has no binding for %q", nsSym.Name, sym.Name)
			}
			out = append(out, value)
		}
	}
	return out, nil
}
