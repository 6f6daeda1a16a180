// Package sexp defines the expression tree that shader programs are
// written in, plus a textual reader for it.
//
// A shader program is a Lisp-style symbolic expression tree. Trees are
// normally built programmatically with the constructor helpers:
//
//	body := sexp.List(sexp.Sym("set!"), sexp.Key("frag-color"),
//	    sexp.List(sexp.Sym("vec4"), sexp.Sym("color"), sexp.Float(1)))
//
// # Components
//
// The sexp package consists of several components:
//
//   - Node: the closed set of tree node kinds (Call, Symbol, Keyword, Literal, Empty)
//   - Lexer: tokenizes textual shader expressions
//   - Parser: builds trees from tokens
//
// # Textual form
//
// The reader accepts parenthesized forms, with square brackets
// interchangeable with parens (conventional for binding lists and
// declarations), ; line comments, :name keywords, true/false, and
// integer and float literals:
//
//	(let [a 1 b 2]
//	  (return a))
//
//	tokens, err := sexp.NewLexer(source).Tokenize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	forms, err := sexp.NewParser(tokens).Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Nodes are immutable values: every transformation over a tree builds a
// new tree and shares unchanged subtrees.
package sexp
