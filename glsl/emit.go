// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gerred/penumbra/sexp"
)

// Emit renders a fully expanded, fully generated tree as GLSL text.
// Expression forms render without a trailing terminator; block forms
// (main, defn, if, while, for, do) render as complete newline-terminated
// statements.
func Emit(node sexp.Node) (string, error) {
	return renderNode(node)
}

// renderNode renders a single node. Dispatch order: atoms first, then
// call forms by operator.
func renderNode(node sexp.Node) (string, error) {
	switch k := node.(type) {
	case sexp.Symbol:
		return glslName(k.Name), nil
	case sexp.Keyword:
		return builtinName(k), nil
	case sexp.Literal:
		return k.String(), nil
	case sexp.Empty:
		return "", nil
	case sexp.Call:
		return renderCall(k)
	default:
		return "", fmt.Errorf("unsupported node kind: %T", node)
	}
}

// renderCall renders a call form. Member/swizzle access is checked before
// the operator switch so that accessor names never reach the generic call
// renderer; operators with no specialized renderer fall through to generic
// call rendering, which is what lets GLSL builtin functions pass through
// without an entry per name.
func renderCall(call sexp.Call) (string, error) {
	op, ok := call.Op.(sexp.Symbol)
	if !ok {
		return renderGenericCall(call)
	}

	if isMemberOp(op.Name) {
		return renderMember(call)
	}

	switch op.Name {
	case "+", "*", "/", "=", "and", "or", "xor", "<", "<=", ">", ">=":
		return renderInfix(op.Name, call.Args)
	case "-":
		if len(call.Args) == 1 {
			return renderUnary(op.Name, call.Args)
		}
		return renderInfix(op.Name, call.Args)
	case "not", "++", "--":
		return renderUnary(op.Name, call.Args)
	case "declare", "set!", "+=", "-=", "*=":
		return renderAssignment(op.Name, call.Args)
	case "nth":
		return renderIndex(call.Args)
	case "import":
		// compile-time directive, resolved during generation
		return "", nil
	case "do":
		return renderStatements(call.Args)
	case "if":
		return renderIf(call.Args)
	case "while":
		return renderWhile(call.Args)
	case "for":
		return renderFor(call.Args)
	case "return":
		return renderReturn(call.Args)
	case "main":
		return renderMain(call.Args)
	case "defn":
		return renderDefn(call.Args)
	default:
		return renderGenericCall(call)
	}
}

// renderOperand renders a node appearing as an operand of another
// operator. A bare two-operand infix rendering is parenthesized so the
// emitted text preserves the tree's evaluation order.
func renderOperand(node sexp.Node) (string, error) {
	s, err := renderNode(node)
	if err != nil {
		return "", err
	}
	if rendersBareInfix(node) {
		return "(" + s + ")", nil
	}
	return s, nil
}

// rendersBareInfix reports whether node renders as an unparenthesized
// infix expression. Only the two-operand form renders bare; n-ary folds
// parenthesize themselves.
func rendersBareInfix(node sexp.Node) bool {
	call, ok := node.(sexp.Call)
	if !ok || len(call.Args) != 2 {
		return false
	}
	op, ok := call.Op.(sexp.Symbol)
	if !ok {
		return false
	}
	_, isInfix := infixText(op.Name)
	return isInfix
}
