package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Transcendental Primitives
// =============================================================================

// transcendentalOp builds a complex-capable one-argument primitive.
func transcendentalOp(name string, op func(*number.Complex) *number.Complex) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		n, err := numberArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(op(n)), nil
	}
}

// realTranscendentalOp builds a one-argument primitive restricted to
// real input. The inverse hyperbolic family lives here.
func realTranscendentalOp(name string, op func(*number.Complex) *number.Complex) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		n, err := realArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewNumber(op(n)), nil
	}
}
