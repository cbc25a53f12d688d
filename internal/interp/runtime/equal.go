package runtime

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
)

// Eq implements eq?: identity over references for pairs, vectors and
// closures, name equality for primitives, value equality for atoms.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case *Datum:
		bv, ok := b.(*Datum)
		if !ok {
			return false
		}
		if av.Node == bv.Node {
			return true
		}
		if av.Node.IsPair() || bv.Node.IsPair() ||
			av.Node.Kind == ast.VECTOR || bv.Node.Kind == ast.VECTOR {
			return false
		}
		return atomEqual(av.Node, bv.Node)
	case *Closure:
		return a == b
	case *PrimitiveRef:
		bv, ok := b.(*PrimitiveRef)
		return ok && av.Name == bv.Name
	default:
		return a == b
	}
}

// Equal implements equal?: recursive structural comparison over lists
// and vectors, value equality for atoms. Cycles created through
// set-car!/set-cdr! terminate: a pair of cells already under comparison
// is taken as equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Datum:
		bv, ok := b.(*Datum)
		return ok && equalNodes(av.Node, bv.Node, map[nodePair]bool{})
	case *Closure:
		return a == b
	case *PrimitiveRef:
		bv, ok := b.(*PrimitiveRef)
		return ok && av.Name == bv.Name
	default:
		return a == b
	}
}

type nodePair struct {
	a, b *ast.Node
}

func equalNodes(a, b *ast.Node, inProgress map[nodePair]bool) bool {
	if a == b {
		return true
	}
	if a.Kind != b.Kind {
		// SYMBOL and QUASISYMBOL compare by their datum text.
		if isSymbolKind(a.Kind) && isSymbolKind(b.Kind) {
			return a.Text == b.Text
		}
		return false
	}
	switch a.Kind {
	case ast.LIST:
		if a.IsEmptyList() || b.IsEmptyList() {
			return a.IsEmptyList() && b.IsEmptyList()
		}
		pair := nodePair{a, b}
		if inProgress[pair] {
			return true
		}
		inProgress[pair] = true
		defer delete(inProgress, pair)
		return equalNodes(a.Car(), b.Car(), inProgress) &&
			equalNodes(a.Cdr(), b.Cdr(), inProgress)
	case ast.VECTOR:
		if len(a.Children) != len(b.Children) {
			return false
		}
		pair := nodePair{a, b}
		if inProgress[pair] {
			return true
		}
		inProgress[pair] = true
		defer delete(inProgress, pair)
		for i := range a.Children {
			if !equalNodes(a.Children[i], b.Children[i], inProgress) {
				return false
			}
		}
		return true
	default:
		return atomEqual(a, b)
	}
}

// atomEqual compares two atoms of the same or symbol-compatible kind.
func atomEqual(a, b *ast.Node) bool {
	if a.Kind != b.Kind && !(isSymbolKind(a.Kind) && isSymbolKind(b.Kind)) {
		return false
	}
	switch a.Kind {
	case ast.NUMBER:
		return a.Num.Equal(b.Num)
	case ast.STRING, ast.SYMBOL, ast.QUASISYMBOL, ast.VARIABLE:
		return a.Text == b.Text
	case ast.BOOLEAN:
		return a.Bool == b.Bool
	case ast.CHARACTER:
		return a.Char == b.Char
	case ast.LIST:
		return a.IsEmptyList() && b.IsEmptyList()
	default:
		return a == b
	}
}

func isSymbolKind(k ast.Kind) bool {
	return k == ast.SYMBOL || k == ast.QUASISYMBOL
}
