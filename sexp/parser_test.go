package sexp

import (
	"testing"
)

func parseSource(t *testing.T, source string) []Node {
	t.Helper()
	tokens, err := NewLexer(source).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	forms, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return forms
}

func TestParserAtoms(t *testing.T) {
	tests := []struct {
		input string
		want  Node
	}{
		{"x", Sym("x")},
		{"model-view", Sym("model-view")},
		{":model-view-matrix", Key("model-view-matrix")},
		{"1", Int(1)},
		{"-4", Int(-4)},
		{"1.5", Float(1.5)},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"()", Empty{}},
		{"[]", Empty{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			forms := parseSource(t, tt.input)
			if len(forms) != 1 {
				t.Fatalf("Expected 1 form, got %d", len(forms))
			}
			if !Equal(forms[0], tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, forms[0], tt.want)
			}
		})
	}
}

func TestParserCalls(t *testing.T) {
	tests := []struct {
		input string
		want  Node
	}{
		{"(+ x 1)", List(Sym("+"), Sym("x"), Int(1))},
		{"(.xyz position)", List(Sym(".xyz"), Sym("position"))},
		{"(set! a 1.0)", List(Sym("set!"), Sym("a"), Float(1))},
		{"(vec3 0.0 0.0 1.0)", List(Sym("vec3"), Float(0), Float(0), Float(1))},
		{"(uniform (mat4 shadow-map))", List(Sym("uniform"), List(Sym("mat4"), Sym("shadow-map")))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			forms := parseSource(t, tt.input)
			if len(forms) != 1 {
				t.Fatalf("Expected 1 form, got %d", len(forms))
			}
			if !Equal(forms[0], tt.want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, forms[0], tt.want)
			}
		})
	}
}

func TestParserBracketsReadLikeParens(t *testing.T) {
	forms := parseSource(t, "(let [a 1 b 2] (return a))")
	if len(forms) != 1 {
		t.Fatalf("Expected 1 form, got %d", len(forms))
	}

	want := List(Sym("let"),
		List(Sym("a"), Int(1), Sym("b"), Int(2)),
		List(Sym("return"), Sym("a")))
	if !Equal(forms[0], want) {
		t.Errorf("Parse = %s, want %s", forms[0], want)
	}
}

func TestParserMultipleTopLevelForms(t *testing.T) {
	forms := parseSource(t, "(declare (uniform (vec3 color)))\n(set! :frag-color (vec4 color 1.0))")
	if len(forms) != 2 {
		t.Fatalf("Expected 2 forms, got %d", len(forms))
	}
}

func TestParserErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed paren", "(+ x 1"},
		{"unclosed bracket", "[a 1"},
		{"stray close", ")"},
		{"mismatched close", "(a b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize error: %v", err)
			}
			if _, err := NewParser(tokens).Parse(); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestParserErrorHasPosition(t *testing.T) {
	tokens, err := NewLexer("(a\n   ]").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	_, err = NewParser(tokens).Parse()
	if err == nil {
		t.Fatal("Expected parse error")
	}

	srcErr, ok := err.(*SourceError)
	if !ok {
		t.Fatalf("Expected *SourceError, got %T", err)
	}
	if srcErr.Line != 2 {
		t.Errorf("Expected error on line 2, got %d", srcErr.Line)
	}
}
