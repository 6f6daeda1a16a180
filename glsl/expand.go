// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gerred/penumbra/sexp"
)

// Expand rewrites every macro form in a tree to core forms, returning an
// equivalent tree with no macro form remaining. The walk is top-down: a
// node is rewritten until no macro applies to it, then its children are
// expanded, so a macro expanding into a macro-containing subtree is still
// fully processed.
func Expand(node sexp.Node) (sexp.Node, error) {
	for {
		replacement, changed, err := expandMacro(node)
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
		node = replacement
	}

	call, ok := node.(sexp.Call)
	if !ok {
		return node, nil
	}

	op, err := Expand(call.Op)
	if err != nil {
		return nil, err
	}
	args := make([]sexp.Node, len(call.Args))
	for i, arg := range call.Args {
		expanded, err := Expand(arg)
		if err != nil {
			return nil, err
		}
		args[i] = expanded
	}
	return sexp.Call{Op: op, Args: args}, nil
}

// expandMacro applies at most one macro rewrite at the given node.
// Forms that are not macro calls pass through unchanged.
func expandMacro(node sexp.Node) (sexp.Node, bool, error) {
	call, ok := node.(sexp.Call)
	if !ok {
		return node, false, nil
	}
	op, ok := call.Op.(sexp.Symbol)
	if !ok {
		return node, false, nil
	}

	switch op.Name {
	case "let":
		out, err := expandLet(call)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	case "->":
		out, err := expandThread(call)
		if err != nil {
			return nil, false, err
		}
		return out, true, nil
	default:
		return node, false, nil
	}
}

// expandLet rewrites (let [a 1 b 2] body...) to
// (do (set! a 1) (set! b 2) body...).
func expandLet(call sexp.Call) (sexp.Node, error) {
	if len(call.Args) == 0 {
		return nil, fmt.Errorf("let: missing binding list")
	}

	var bindings []sexp.Node
	switch b := call.Args[0].(type) {
	case sexp.Empty:
		// no bindings
	case sexp.Call:
		bindings = b.Elements()
	default:
		return nil, fmt.Errorf("let: bindings must be a list, got %s", call.Args[0])
	}
	if len(bindings)%2 != 0 {
		return nil, fmt.Errorf("let: odd number of binding forms")
	}

	stmts := make([]sexp.Node, 0, len(bindings)/2+len(call.Args)-1)
	for i := 0; i < len(bindings); i += 2 {
		stmts = append(stmts, sexp.List(sexp.Sym("set!"), bindings[i], bindings[i+1]))
	}
	stmts = append(stmts, call.Args[1:]...)
	return sexp.List(sexp.Sym("do"), stmts...), nil
}

// expandThread rewrites (-> x f (g y)) to (g (f x) y): the initial value
// is threaded as the first argument into each subsequent form, left to
// right. A bare symbol step f is treated as (f x).
func expandThread(call sexp.Call) (sexp.Node, error) {
	if len(call.Args) == 0 {
		return nil, fmt.Errorf("->: needs an initial value")
	}

	acc := call.Args[0]
	for _, step := range call.Args[1:] {
		if sc, ok := step.(sexp.Call); ok {
			args := make([]sexp.Node, 0, len(sc.Args)+1)
			args = append(args, acc)
			args = append(args, sc.Args...)
			acc = sexp.Call{Op: sc.Op, Args: args}
		} else {
			acc = sexp.List(step, acc)
		}
	}
	return acc, nil
}
