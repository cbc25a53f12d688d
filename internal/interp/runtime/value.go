// Package runtime defines the value representation, environments and
// typed errors of the MicroScheme interpreter.
package runtime

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// Value is the result of evaluating an expression. A value either wraps
// a datum node directly, pairs a lambda node with its defining
// environment (a closure), names a primitive, or is the unspecified
// value produced by forms with no useful result.
type Value interface {
	// Type returns the value's kind name, used in error messages.
	Type() string

	// String returns the display form of the value.
	String() string
}

// Datum wraps an AST node as a runtime value. Literals evaluate to the
// node itself, so mutation through set-car! and friends is visible to
// every value sharing the node.
type Datum struct {
	Node *ast.Node
}

// NewDatum wraps a node.
func NewDatum(node *ast.Node) *Datum {
	return &Datum{Node: node}
}

// NewNumber wraps a number in a fresh NUMBER node.
func NewNumber(n *number.Complex) *Datum {
	return &Datum{Node: ast.NewNumber(n)}
}

// NewBoolean wraps a boolean in a fresh BOOLEAN node.
func NewBoolean(b bool) *Datum {
	return &Datum{Node: ast.NewBoolean(b)}
}

// NewString wraps a string in a fresh STRING node.
func NewString(s string) *Datum {
	return &Datum{Node: ast.NewString(s)}
}

// NewCharacter wraps a character in a fresh CHARACTER node.
func NewCharacter(ch rune) *Datum {
	return &Datum{Node: ast.NewCharacter(ch)}
}

// EmptyList is the canonical empty list as a value.
var EmptyList = &Datum{Node: ast.Empty}

// Type returns the scheme-level kind of the wrapped node.
func (d *Datum) Type() string {
	switch d.Node.Kind {
	case ast.NUMBER:
		return "number"
	case ast.STRING:
		return "string"
	case ast.BOOLEAN:
		return "boolean"
	case ast.CHARACTER:
		return "character"
	case ast.SYMBOL, ast.QUASISYMBOL:
		return "symbol"
	case ast.LIST:
		if d.Node.IsEmptyList() {
			return "empty list"
		}
		return "pair"
	case ast.VECTOR:
		return "vector"
	default:
		return d.Node.Kind.String()
	}
}

// String returns the display form of the wrapped node.
func (d *Datum) String() string {
	return ast.DisplayString(d.Node)
}

// Closure pairs a lambda node with the environment visible at the point
// the lambda was evaluated.
type Closure struct {
	Lambda *ast.Node
	Env    *Environment
}

// Type returns "procedure".
func (c *Closure) Type() string {
	return "procedure"
}

// String returns the opaque procedure marker; closures never print
// their body.
func (c *Closure) String() string {
	return "#<procedure>"
}

// PrimitiveRef is a reference to a primitive by its registry name.
// Application discriminates on it and dispatches into the registry, so
// primitives are first-class: (define f +) binds f to the same
// reference + resolves to.
type PrimitiveRef struct {
	Name string
}

// Type returns "procedure"; primitives satisfy procedure? exactly like
// closures do.
func (p *PrimitiveRef) Type() string {
	return "procedure"
}

// String returns the primitive's marker with its name.
func (p *PrimitiveRef) String() string {
	return "#<primitive:" + p.Name + ">"
}

type unspecified struct{}

// Unspecified is the value of define, set!, an empty begin and other
// forms with no observable result.
var Unspecified Value = unspecified{}

func (unspecified) Type() string {
	return "unspecified"
}

func (unspecified) String() string {
	return ""
}

// IsTruthy implements the language's truthiness rule: the boolean false
// is the only falsey value. Zero, the empty list and the empty string
// are all true.
func IsTruthy(v Value) bool {
	if d, ok := v.(*Datum); ok && d.Node.Kind == ast.BOOLEAN {
		return d.Node.Bool
	}
	return true
}
