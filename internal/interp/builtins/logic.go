package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// =============================================================================
// Logic Primitives
// =============================================================================

// Not implements not: true only for the false boolean, per the
// language's single-falsey-value rule.
func Not(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("not", args, 1); err != nil {
		return nil, err
	}
	return boolValue(!runtime.IsTruthy(args[0])), nil
}

// EqualP implements equal?: recursive structural comparison.
func EqualP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("equal?", args, 2); err != nil {
		return nil, err
	}
	return boolValue(runtime.Equal(args[0], args[1])), nil
}

// EqP implements eq?: reference identity for compound data, value
// equality for atoms.
func EqP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("eq?", args, 2); err != nil {
		return nil, err
	}
	return boolValue(runtime.Eq(args[0], args[1])), nil
}
