package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Vector Primitives
// =============================================================================

// Vector implements vector: a fresh vector over the operands.
func Vector(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	elems := make([]*ast.Node, len(args))
	for i, arg := range args {
		node, err := datumArg("vector", i+1, arg, "datum")
		if err != nil {
			return nil, err
		}
		elems[i] = node
	}
	return runtime.NewDatum(ast.NewVector(elems)), nil
}

// VectorRef implements vector-ref with a range-checked real integer
// index.
func VectorRef(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("vector-ref", args, 2); err != nil {
		return nil, err
	}
	vec, err := vectorArg("vector-ref", 1, args[0])
	if err != nil {
		return nil, err
	}
	i, err := indexArg("vector-ref", 2, args[1], len(vec.Children))
	if err != nil {
		return nil, err
	}
	return runtime.NewDatum(vec.Children[i]), nil
}

// VectorLength implements vector-length.
func VectorLength(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("vector-length", args, 1); err != nil {
		return nil, err
	}
	vec, err := vectorArg("vector-length", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(number.FromInt64(int64(len(vec.Children)))), nil
}

// VectorP implements vector?.
func VectorP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("vector?", args, 1); err != nil {
		return nil, err
	}
	return boolValue(isKind(args[0], ast.VECTOR)), nil
}
