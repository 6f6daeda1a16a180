// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gerred/penumbra/sexp"
)

// renderInfix renders an infix operator form. The two-operand form
// renders bare; forms with more operands fold left with each step
// parenthesized, so (- a b c) renders as ((a - b) - c) and evaluation
// order survives textually.
func renderInfix(name string, args []sexp.Node) (string, error) {
	text, _ := infixText(name)

	switch len(args) {
	case 0:
		return "", fmt.Errorf("%s: needs at least one operand", name)
	case 1:
		return renderOperand(args[0])
	case 2:
		left, err := renderOperand(args[0])
		if err != nil {
			return "", err
		}
		right, err := renderOperand(args[1])
		if err != nil {
			return "", err
		}
		return left + " " + text + " " + right, nil
	}

	acc, err := renderOperand(args[0])
	if err != nil {
		return "", err
	}
	for _, arg := range args[1:] {
		operand, err := renderOperand(arg)
		if err != nil {
			return "", err
		}
		acc = "(" + acc + " " + text + " " + operand + ")"
	}
	return acc, nil
}

// renderUnary renders a prefix operator form such as (not x) or (++ i).
func renderUnary(name string, args []sexp.Node) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%s: takes exactly one operand", name)
	}
	text, _ := unaryText(name)
	operand, err := renderOperand(args[0])
	if err != nil {
		return "", err
	}
	return text + operand, nil
}

// renderAssignment renders declare, set! and the compound assignment
// forms. A one-operand declare is a declaration with no initializer and
// renders as the bare l-value.
func renderAssignment(name string, args []sexp.Node) (string, error) {
	text, _ := assignmentText(name)

	switch len(args) {
	case 1:
		return renderLValue(args[0])
	case 2:
		lvalue, err := renderLValue(args[0])
		if err != nil {
			return "", err
		}
		rvalue, err := renderNode(args[1])
		if err != nil {
			return "", err
		}
		return lvalue + " " + text + " " + rvalue, nil
	default:
		return "", fmt.Errorf("%s: takes one or two operands", name)
	}
}

// renderIndex renders (nth a i) as a[i].
func renderIndex(args []sexp.Node) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("nth: takes a base and an index")
	}
	base, err := renderOperand(args[0])
	if err != nil {
		return "", err
	}
	index, err := renderNode(args[1])
	if err != nil {
		return "", err
	}
	return base + "[" + index + "]", nil
}

// renderMember renders a member/swizzle access form: (.xyz position)
// renders as position.xyz.
func renderMember(call sexp.Call) (string, error) {
	op := call.Op.(sexp.Symbol)
	if len(call.Args) != 1 {
		return "", fmt.Errorf("%s: member access takes exactly one operand", op.Name)
	}
	base, err := renderOperand(call.Args[0])
	if err != nil {
		return "", err
	}
	return base + op.Name, nil
}

// renderGenericCall renders head(arg, arg, ...) for any operator with no
// specialized renderer. Unknown operators are deliberately not an error:
// this is how the several hundred GLSL builtin functions pass through.
func renderGenericCall(call sexp.Call) (string, error) {
	head, err := renderNode(call.Op)
	if err != nil {
		return "", err
	}

	args := make([]string, 0, len(call.Args))
	for _, arg := range call.Args {
		s, err := renderNode(arg)
		if err != nil {
			return "", err
		}
		args = append(args, s)
	}
	return head + "(" + strings.Join(args, ", ") + ")", nil
}

// renderLValue renders the left side of assignments and declarations,
// and function parameters. Compound forms such as a typed declaration
// pair (uniform (vec3 color)) render by recursively rendering each
// element and space-joining: uniform vec3 color. Indexed forms keep
// their bracket rendering so array declarations come out as lights[8].
func renderLValue(node sexp.Node) (string, error) {
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
		if op, ok := k.Op.(sexp.Symbol); ok {
			if isMemberOp(op.Name) {
				return renderMember(k)
			}
			if op.Name == "nth" {
				return renderIndex(k.Args)
			}
		}
		parts := make([]string, 0, len(k.Args)+1)
		for _, elem := range k.Elements() {
			s, err := renderLValue(elem)
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("unsupported node kind: %T", node)
	}
}
