package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Character Primitives
// =============================================================================

// charOrderingOp builds the chained character comparisons, ordered by
// code unit.
func charOrderingOp(name string, holds func(cmp int) bool) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkMinArity(name, args, 2); err != nil {
			return nil, err
		}
		prev, err := charArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		for i, arg := range args[1:] {
			ch, err := charArg(name, i+2, arg)
			if err != nil {
				return nil, err
			}
			if !holds(compareRunes(prev, ch)) {
				return boolValue(false), nil
			}
			prev = ch
		}
		return boolValue(true), nil
	}
}

func compareRunes(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// CharToInteger implements char->integer.
func CharToInteger(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("char->integer", args, 1); err != nil {
		return nil, err
	}
	ch, err := charArg("char->integer", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(number.FromInt64(int64(ch))), nil
}

// IntegerToChar implements integer->char.
func IntegerToChar(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("integer->char", args, 1); err != nil {
		return nil, err
	}
	n, err := integerArg("integer->char", 1, args[0])
	if err != nil {
		return nil, err
	}
	code := n.Int64()
	if code < 0 || code > 0x10FFFF {
		return nil, &runtime.DomainError{Callee: "integer->char", Message: "code point out of range"}
	}
	return runtime.NewCharacter(rune(code)), nil
}
