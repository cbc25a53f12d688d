package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// =============================================================================
// Comparison Primitives
// =============================================================================

// orderingOp builds the chained ordering primitives <, <=, >, >=.
// Ordering is only defined on reals.
func orderingOp(name string, holds func(cmp int) bool) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkMinArity(name, args, 2); err != nil {
			return nil, err
		}
		prev, err := realArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		for i, arg := range args[1:] {
			n, err := realArg(name, i+2, arg)
			if err != nil {
				return nil, err
			}
			if !holds(prev.Cmp(n)) {
				return boolValue(false), nil
			}
			prev = n
		}
		return boolValue(true), nil
	}
}

// NumEqual implements =, comparing both components so it is defined on
// complex operands too.
func NumEqual(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkMinArity("=", args, 2); err != nil {
		return nil, err
	}
	first, err := numberArg("=", 1, args[0])
	if err != nil {
		return nil, err
	}
	for i, arg := range args[1:] {
		n, err := numberArg("=", i+2, arg)
		if err != nil {
			return nil, err
		}
		if !first.Equal(n) {
			return boolValue(false), nil
		}
	}
	return boolValue(true), nil
}
