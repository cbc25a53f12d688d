package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// Argument checking helpers shared by the primitive implementations.
// Every check produces the typed errors of the runtime package so the
// driver can report callee, position and expected kind uniformly.

func checkArity(callee string, args []runtime.Value, want int) error {
	if len(args) != want {
		return &runtime.ArityError{Callee: callee, Expected: want, Got: len(args)}
	}
	return nil
}

func checkMinArity(callee string, args []runtime.Value, min int) error {
	if len(args) < min {
		return &runtime.ArityError{Callee: callee, Expected: min, Got: len(args), AtLeast: true}
	}
	return nil
}

// datumArg unwraps a value to its node, rejecting closures and
// primitive references.
func datumArg(callee string, pos int, v runtime.Value, expected string) (*ast.Node, error) {
	d, ok := v.(*runtime.Datum)
	if !ok {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: expected, Actual: v.Type()}
	}
	return d.Node, nil
}

func numberArg(callee string, pos int, v runtime.Value) (*number.Complex, error) {
	node, err := datumArg(callee, pos, v, "number")
	if err != nil {
		return nil, err
	}
	if node.Kind != ast.NUMBER {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "number", Actual: v.Type()}
	}
	return node.Num, nil
}

// realArg unwraps a number and verifies the real subset.
func realArg(callee string, pos int, v runtime.Value) (*number.Complex, error) {
	n, err := numberArg(callee, pos, v)
	if err != nil {
		return nil, err
	}
	if !n.IsReal() {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "real number", Actual: "complex number"}
	}
	return n, nil
}

// integerArg unwraps a number and verifies it is a real integer.
func integerArg(callee string, pos int, v runtime.Value) (*number.Complex, error) {
	n, err := numberArg(callee, pos, v)
	if err != nil {
		return nil, err
	}
	if !n.IsInteger() {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "integer", Actual: v.String()}
	}
	return n, nil
}

func stringArg(callee string, pos int, v runtime.Value) (string, error) {
	node, err := datumArg(callee, pos, v, "string")
	if err != nil {
		return "", err
	}
	if node.Kind != ast.STRING {
		return "", &runtime.TypeError{Callee: callee, Position: pos, Expected: "string", Actual: v.Type()}
	}
	return node.Text, nil
}

func charArg(callee string, pos int, v runtime.Value) (rune, error) {
	node, err := datumArg(callee, pos, v, "character")
	if err != nil {
		return 0, err
	}
	if node.Kind != ast.CHARACTER {
		return 0, &runtime.TypeError{Callee: callee, Position: pos, Expected: "character", Actual: v.Type()}
	}
	return node.Char, nil
}

// pairArg unwraps a value to a non-empty cons cell.
func pairArg(callee string, pos int, v runtime.Value) (*ast.Node, error) {
	node, err := datumArg(callee, pos, v, "pair")
	if err != nil {
		return nil, err
	}
	if node.IsEmptyList() {
		return nil, &runtime.DomainError{Callee: callee, Message: "empty list"}
	}
	if !node.IsPair() {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "pair", Actual: v.Type()}
	}
	return node, nil
}

// listNodeArg unwraps a value to a list node, empty or not.
func listNodeArg(callee string, pos int, v runtime.Value) (*ast.Node, error) {
	node, err := datumArg(callee, pos, v, "list")
	if err != nil {
		return nil, err
	}
	if node.Kind != ast.LIST {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "list", Actual: v.Type()}
	}
	return node, nil
}

func vectorArg(callee string, pos int, v runtime.Value) (*ast.Node, error) {
	node, err := datumArg(callee, pos, v, "vector")
	if err != nil {
		return nil, err
	}
	if node.Kind != ast.VECTOR {
		return nil, &runtime.TypeError{Callee: callee, Position: pos, Expected: "vector", Actual: v.Type()}
	}
	return node, nil
}

// indexArg unwraps a real integer index and range-checks it.
func indexArg(callee string, pos int, v runtime.Value, length int) (int, error) {
	n, err := integerArg(callee, pos, v)
	if err != nil {
		return 0, err
	}
	i := int(n.Int64())
	if i < 0 || i >= length {
		return 0, &runtime.DomainError{Callee: callee, Message: "index out of range"}
	}
	return i, nil
}

// boolValue wraps a Go bool as a boolean value.
func boolValue(b bool) runtime.Value {
	return runtime.NewBoolean(b)
}

// isKind reports whether the value is a datum of the given kind.
func isKind(v runtime.Value, kind ast.Kind) bool {
	d, ok := v.(*runtime.Datum)
	return ok && d.Node.Kind == kind
}
