// Package ast defines the node representation shared by MicroScheme
// syntax trees and runtime data.
//
// There is a single tagged node type rather than an interface hierarchy:
// evaluation of a literal yields the node itself, quoted data is plain
// node structure, and set-car!/set-cdr!/vector-set! mutate child slots in
// place. Nodes are aliased through pointers, so a mutation of a shared
// cons cell is visible through every reference to that cell.
package ast

import (
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// Kind tags a node with its syntactic or data role.
type Kind int

const (
	ROOT        Kind = iota // program: top-level forms as children
	SEQUENCE                // begin block: body forms as children
	NUMBER                  // arbitrary-precision complex literal
	STRING                  // string literal
	BOOLEAN                 // #t / #f
	CHARACTER               // #\x
	SYMBOL                  // quoted identifier datum
	QUASISYMBOL             // symbol produced by quasiquote; reserved
	LIST                    // cons cell (car, cdr) or the empty list (no children)
	VECTOR                  // ordered element sequence
	VARIABLE                // identifier reference
	COND                    // alternating predicate/consequent children, optional trailing else
	LAMBDA                  // Names = formals, children = body
	LETREC                  // Names = bound names, child 0 = SEQUENCE of right-hand sides, rest = body
	SET                     // Text = target identifier, child 0 = expression
	SETCAR                  // children = target, expression
	SETCDR                  // children = target, expression
	SETVECTOR               // children = target, index, expression
	DO                      // Names = loop vars, children = SEQ(inits), SEQ(steps), test, SEQ(results), SEQ(body)
	DECLARATION             // Text = name, child 0 = expression
	APPLICATION             // child 0 = operator, rest = operands
	APPLY                   // children = procedure, argument list expression
	EVAL                    // child 0 = expression
	AND                     // operands as children
	OR                      // operands as children
)

var kindNames = map[Kind]string{
	ROOT:        "root",
	SEQUENCE:    "begin",
	NUMBER:      "number",
	STRING:      "string",
	BOOLEAN:     "boolean",
	CHARACTER:   "character",
	SYMBOL:      "symbol",
	QUASISYMBOL: "quasisymbol",
	LIST:        "list",
	VECTOR:      "vector",
	VARIABLE:    "variable",
	COND:        "cond",
	LAMBDA:      "lambda",
	LETREC:      "letrec",
	SET:         "set!",
	SETCAR:      "set-car!",
	SETCDR:      "set-cdr!",
	SETVECTOR:   "vector-set!",
	DO:          "do",
	DECLARATION: "define",
	APPLICATION: "application",
	APPLY:       "apply",
	EVAL:        "eval",
	AND:         "and",
	OR:          "or",
}

// String returns the kind's name for diagnostics and AST dumps.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is one element of the tree. Children is the ordered child
// sequence; the remaining fields are kind-specific payloads.
type Node struct {
	Kind     Kind
	Children []*Node
	Pos      lexer.Position

	Num   *number.Complex // NUMBER
	Text  string          // STRING, SYMBOL, VARIABLE, SET, DECLARATION
	Char  rune            // CHARACTER
	Bool  bool            // BOOLEAN
	Names []string        // LAMBDA formals, LETREC and DO binding names
}

// Empty is the canonical empty list. It is shared by every use across
// the process; emptiness and identity checks rely on that.
var Empty = &Node{Kind: LIST}

// NewNumber returns a NUMBER node.
func NewNumber(n *number.Complex) *Node {
	return &Node{Kind: NUMBER, Num: n}
}

// NewString returns a STRING node.
func NewString(s string) *Node {
	return &Node{Kind: STRING, Text: s}
}

// NewBoolean returns a BOOLEAN node.
func NewBoolean(b bool) *Node {
	return &Node{Kind: BOOLEAN, Bool: b}
}

// NewCharacter returns a CHARACTER node.
func NewCharacter(ch rune) *Node {
	return &Node{Kind: CHARACTER, Char: ch}
}

// NewSymbol returns a SYMBOL node with the given datum text.
func NewSymbol(text string) *Node {
	return &Node{Kind: SYMBOL, Text: text}
}

// NewVariable returns a VARIABLE reference node.
func NewVariable(name string) *Node {
	return &Node{Kind: VARIABLE, Text: name}
}

// Cons returns a fresh cons cell with the given car and cdr.
func Cons(car, cdr *Node) *Node {
	return &Node{Kind: LIST, Children: []*Node{car, cdr}}
}

// NewVector returns a VECTOR node over the given elements.
func NewVector(elems []*Node) *Node {
	return &Node{Kind: VECTOR, Children: elems}
}

// IsEmptyList reports whether n is the empty list. Any childless LIST
// node counts, though the parser and the primitives only ever produce
// the Empty singleton.
func (n *Node) IsEmptyList() bool {
	return n.Kind == LIST && len(n.Children) == 0
}

// IsPair reports whether n is a non-empty cons cell.
func (n *Node) IsPair() bool {
	return n.Kind == LIST && len(n.Children) == 2
}

// Car returns the first child of a pair. The caller must have checked
// IsPair.
func (n *Node) Car() *Node {
	return n.Children[0]
}

// Cdr returns the second child of a pair. The caller must have checked
// IsPair.
func (n *Node) Cdr() *Node {
	return n.Children[1]
}

// Elements walks the cdr chain and returns the elements and whether the
// chain terminates in the empty list (a proper list). For improper lists
// the trailing non-list datum is not included in the element slice.
// Cyclic chains terminate with proper == false.
func (n *Node) Elements() (elems []*Node, proper bool) {
	seen := map[*Node]bool{}
	cur := n
	for {
		if cur.IsEmptyList() {
			return elems, true
		}
		if !cur.IsPair() || seen[cur] {
			return elems, false
		}
		seen[cur] = true
		elems = append(elems, cur.Car())
		cur = cur.Cdr()
	}
}

// ListFromElements builds a proper list node from the given elements.
func ListFromElements(elems []*Node) *Node {
	list := Empty
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}
