package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Random Primitives
// =============================================================================

// One generator is shared process-wide through the Context; seeding it
// affects every subsequent draw.

// Random implements random: a real in [0, 1).
func Random(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("random", args, 0); err != nil {
		return nil, err
	}
	return runtime.NewNumber(number.FromFloat64(ctx.Rand.Float64())), nil
}

// RandomInteger implements random-integer: an integer drawn uniformly
// from [lo, hi], inclusive on both ends.
func RandomInteger(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("random-integer", args, 2); err != nil {
		return nil, err
	}
	lo, err := integerArg("random-integer", 1, args[0])
	if err != nil {
		return nil, err
	}
	hi, err := integerArg("random-integer", 2, args[1])
	if err != nil {
		return nil, err
	}
	a, b := lo.Int64(), hi.Int64()
	if a > b {
		return nil, &runtime.DomainError{Callee: "random-integer", Message: "empty range"}
	}
	return runtime.NewNumber(number.FromInt64(a + ctx.Rand.Int63n(b-a+1))), nil
}

// RandomDouble implements random-double: a real drawn uniformly from
// [lo, hi).
func RandomDouble(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("random-double", args, 2); err != nil {
		return nil, err
	}
	lo, err := realArg("random-double", 1, args[0])
	if err != nil {
		return nil, err
	}
	hi, err := realArg("random-double", 2, args[1])
	if err != nil {
		return nil, err
	}
	if lo.Cmp(hi) > 0 {
		return nil, &runtime.DomainError{Callee: "random-double", Message: "empty range"}
	}
	span := hi.Sub(lo)
	scale := number.FromFloat64(ctx.Rand.Float64())
	return runtime.NewNumber(lo.Add(span.Mul(scale))), nil
}

// RandomSetSeed implements random-set-seed!; it returns an unspecified
// value.
func RandomSetSeed(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("random-set-seed!", args, 1); err != nil {
		return nil, err
	}
	n, err := integerArg("random-set-seed!", 1, args[0])
	if err != nil {
		return nil, err
	}
	ctx.Rand.Seed(n.Int64())
	return runtime.Unspecified, nil
}
