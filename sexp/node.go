package sexp

import (
	"fmt"
	"strconv"
	"strings"
)

// Node represents a node in a shader expression tree.
// Nodes are immutable values; transformations build new trees.
type Node interface {
	node()
	fmt.Stringer
}

// Call represents a parenthesized form: an operator followed by arguments.
// The operator is usually a Symbol but may be any node (for example a typed
// parameter pair appearing first in a parameter list).
type Call struct {
	Op   Node
	Args []Node
}

func (Call) node() {}

// Elements returns the operator and arguments as a single ordered slice.
func (c Call) Elements() []Node {
	elems := make([]Node, 0, len(c.Args)+1)
	elems = append(elems, c.Op)
	return append(elems, c.Args...)
}

func (c Call) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range c.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Symbol represents an identifier. Names are case-sensitive and use
// hyphenated-lowercase convention (model-view); emission rewrites hyphens
// to underscores.
type Symbol struct {
	Name string
}

func (Symbol) node() {}

func (s Symbol) String() string { return s.Name }

// Keyword represents a builtin-binding reference (:model-view-matrix),
// rewritten during emission to a GLSL builtin identifier (gl_ModelViewMatrix).
type Keyword struct {
	Name string
}

func (Keyword) node() {}

func (k Keyword) String() string { return ":" + k.Name }

// Literal represents a literal constant value.
type Literal struct {
	Value LiteralValue
}

func (Literal) node() {}

func (l Literal) String() string {
	switch v := l.Value.(type) {
	case LiteralF32:
		return FormatFloat(float32(v))
	case LiteralI32:
		return strconv.FormatInt(int64(v), 10)
	case LiteralBool:
		if v {
			return "true"
		}
		return "false"
	default:
		return "0"
	}
}

// LiteralValue represents the value of a literal.
type LiteralValue interface {
	literalValue()
}

// LiteralF32 represents a 32-bit float literal.
type LiteralF32 float32

func (LiteralF32) literalValue() {}

// LiteralI32 represents a 32-bit signed integer literal.
type LiteralI32 int32

func (LiteralI32) literalValue() {}

// LiteralBool represents a boolean literal.
type LiteralBool bool

func (LiteralBool) literalValue() {}

// Empty represents the empty form (). It renders as empty text.
type Empty struct{}

func (Empty) node() {}

func (Empty) String() string { return "()" }

// List constructs a call node from an operator and arguments.
func List(op Node, args ...Node) Call {
	return Call{Op: op, Args: args}
}

// Sym constructs a symbol node.
func Sym(name string) Symbol { return Symbol{Name: name} }

// Key constructs a keyword node.
func Key(name string) Keyword { return Keyword{Name: name} }

// Float constructs a float literal node.
func Float(v float32) Literal { return Literal{Value: LiteralF32(v)} }

// Int constructs an integer literal node.
func Int(v int32) Literal { return Literal{Value: LiteralI32(v)} }

// Bool constructs a boolean literal node.
func Bool(v bool) Literal { return Literal{Value: LiteralBool(v)} }

// Equal reports whether two trees are structurally identical.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Call:
		y, ok := b.(Call)
		if !ok || len(x.Args) != len(y.Args) {
			return false
		}
		if !Equal(x.Op, y.Op) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Name == y.Name
	case Keyword:
		y, ok := b.(Keyword)
		return ok && x.Name == y.Name
	case Literal:
		y, ok := b.(Literal)
		return ok && x.Value == y.Value
	case Empty:
		_, ok := b.(Empty)
		return ok
	default:
		return false
	}
}

// FormatFloat formats a float32 so it reads back as a float literal.
func FormatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
