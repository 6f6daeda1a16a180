// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"testing"

	"github.com/gerred/penumbra/sexp"
)

// =============================================================================
// Test: statement sequences
// =============================================================================

func TestGLSL_StatementSequences(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
		want string
	}{
		{"two_statements",
			sexp.List(sexp.Sym("do"),
				sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1)),
				sexp.List(sexp.Sym("set!"), sexp.Sym("b"), sexp.Int(2))),
			"a = 1;\nb = 2;\n"},
		{"blank_forms_dropped",
			sexp.List(sexp.Sym("do"),
				sexp.Empty{},
				sexp.List(sexp.Sym("import"), sexp.List(sexp.Sym("shaderlib"), sexp.Sym("square"))),
				sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1))),
			"a = 1;\n"},
		{"nested_do_flattens_textually",
			sexp.List(sexp.Sym("do"),
				sexp.List(sexp.Sym("do"),
					sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1)),
					sexp.List(sexp.Sym("set!"), sexp.Sym("b"), sexp.Int(2))),
				sexp.List(sexp.Sym("return"), sexp.Sym("a"))),
			"a = 1;\nb = 2;\nreturn a;\n"},
		{"block_form_keeps_own_newline",
			sexp.List(sexp.Sym("do"),
				sexp.List(sexp.Sym("if"), sexp.Sym("c"),
					sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1))),
				sexp.List(sexp.Sym("set!"), sexp.Sym("b"), sexp.Int(2))),
			"if (c)\n{\n  a = 1;\n}\nb = 2;\n"},
		{"all_blank", sexp.List(sexp.Sym("do"), sexp.Empty{}, sexp.Empty{}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emit(t, tt.node); got != tt.want {
				t.Errorf("Emit(%s) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Test: branches and loops
// =============================================================================

func TestGLSL_Branches(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
		want string
	}{
		{"if",
			sexp.List(sexp.Sym("if"),
				sexp.List(sexp.Sym("<"), sexp.Sym("a"), sexp.Sym("b")),
				sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Sym("b"))),
			"if (a < b)\n{\n  a = b;\n}\n"},
		{"if_else",
			sexp.List(sexp.Sym("if"),
				sexp.Sym("lit"),
				sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Float(1)),
				sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Float(0))),
			"if (lit)\n{\n  a = 1.0;\n}\nelse\n{\n  a = 0.0;\n}\n"},
		{"if_with_do_branch",
			sexp.List(sexp.Sym("if"), sexp.Sym("c"),
				sexp.List(sexp.Sym("do"),
					sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1)),
					sexp.List(sexp.Sym("set!"), sexp.Sym("b"), sexp.Int(2)))),
			"if (c)\n{\n  a = 1;\n  b = 2;\n}\n"},
		{"if_discard",
			sexp.List(sexp.Sym("if"),
				sexp.List(sexp.Sym("<"), sexp.Sym("alpha"), sexp.Float(0.1)),
				sexp.Sym("discard")),
			"if (alpha < 0.1)\n{\n  discard;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emit(t, tt.node); got != tt.want {
				t.Errorf("Emit(%s) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

func TestGLSL_Loops(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
		want string
	}{
		{"while",
			sexp.List(sexp.Sym("while"),
				sexp.List(sexp.Sym("<"), sexp.Sym("i"), sexp.Int(8)),
				sexp.List(sexp.Sym("+="), sexp.Sym("sum"),
					sexp.List(sexp.Sym("nth"), sexp.Sym("values"), sexp.Sym("i"))),
				sexp.List(sexp.Sym("++"), sexp.Sym("i"))),
			"while (i < 8)\n{\n  sum += values[i];\n  ++i;\n}\n"},
		{"for",
			sexp.List(sexp.Sym("for"),
				sexp.List(sexp.Sym("declare"),
					sexp.List(sexp.Sym("int"), sexp.Sym("i")), sexp.Int(0)),
				sexp.List(sexp.Sym("<"), sexp.Sym("i"), sexp.Int(4)),
				sexp.List(sexp.Sym("++"), sexp.Sym("i")),
				sexp.List(sexp.Sym("+="), sexp.Sym("sum"),
					sexp.List(sexp.Sym("nth"), sexp.Sym("values"), sexp.Sym("i")))),
			"for (int i = 0; i < 4; ++i)\n{\n  sum += values[i];\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emit(t, tt.node); got != tt.want {
				t.Errorf("Emit(%s) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

// =============================================================================
// Test: functions and entry points
// =============================================================================

func TestGLSL_Return(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
		want string
	}{
		{"bare", sexp.List(sexp.Sym("return")), "return"},
		{"value",
			sexp.List(sexp.Sym("return"),
				sexp.List(sexp.Sym("*"), sexp.Sym("x"), sexp.Sym("x"))),
			"return x * x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emit(t, tt.node); got != tt.want {
				t.Errorf("Emit(%s) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

func TestGLSL_Main(t *testing.T) {
	node := sexp.List(sexp.Sym("main"),
		sexp.List(sexp.Sym("set!"), sexp.Key("frag-color"), sexp.Sym("color")))

	want := "void main()\n{\n  gl_FragColor = color;\n}\n"
	if got := emit(t, node); got != want {
		t.Errorf("Emit(%s) = %q, want %q", node, got, want)
	}
}

func TestGLSL_MainNestedBlockIndents(t *testing.T) {
	node := sexp.List(sexp.Sym("main"),
		sexp.List(sexp.Sym("if"), sexp.Sym("c"),
			sexp.List(sexp.Sym("set!"), sexp.Sym("a"), sexp.Int(1))))

	want := "void main()\n{\n  if (c)\n  {\n    a = 1;\n  }\n}\n"
	if got := emit(t, node); got != want {
		t.Errorf("Emit(%s) = %q, want %q", node, got, want)
	}
}

func TestGLSL_Defn(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
		want string
	}{
		{"single_param",
			sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("square"),
				sexp.List(sexp.Sym("float"), sexp.Sym("x")),
				sexp.List(sexp.Sym("return"), sexp.List(sexp.Sym("*"), sexp.Sym("x"), sexp.Sym("x")))),
			"float square(float x)\n{\n  return x * x;\n}\n"},
		{"two_params",
			sexp.List(sexp.Sym("defn"), sexp.Sym("vec3"), sexp.Sym("scale-add"),
				sexp.List(
					sexp.List(sexp.Sym("vec3"), sexp.Sym("v")),
					sexp.List(sexp.Sym("float"), sexp.Sym("s"))),
				sexp.List(sexp.Sym("return"), sexp.List(sexp.Sym("+"), sexp.Sym("v"), sexp.Sym("s")))),
			"vec3 scale_add(vec3 v, float s)\n{\n  return v + s;\n}\n"},
		{"no_params",
			sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("zero"), sexp.Empty{},
				sexp.List(sexp.Sym("return"), sexp.Float(0))),
			"float zero()\n{\n  return 0.0;\n}\n"},
		{"multi_statement_body",
			sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("twice"),
				sexp.List(sexp.Sym("float"), sexp.Sym("x")),
				sexp.List(sexp.Sym("declare"), sexp.List(sexp.Sym("float"), sexp.Sym("y")),
					sexp.List(sexp.Sym("*"), sexp.Sym("x"), sexp.Float(2))),
				sexp.List(sexp.Sym("return"), sexp.Sym("y"))),
			"float twice(float x)\n{\n  float y = x * 2.0;\n  return y;\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := emit(t, tt.node); got != tt.want {
				t.Errorf("Emit(%s) = %q, want %q", tt.node, got, tt.want)
			}
		})
	}
}

func TestGLSL_DefnErrors(t *testing.T) {
	tests := []struct {
		name string
		node sexp.Node
	}{
		{"too_few_args", sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Sym("f"))},
		{"name_not_symbol",
			sexp.List(sexp.Sym("defn"), sexp.Sym("float"), sexp.Int(1),
				sexp.Empty{}, sexp.List(sexp.Sym("return"), sexp.Float(0)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Emit(tt.node); err == nil {
				t.Errorf("Emit(%s) succeeded, want error", tt.node)
			}
		})
	}
}
