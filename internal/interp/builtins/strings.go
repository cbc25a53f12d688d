package builtins

import (
	"strings"

	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// String Primitives
// =============================================================================

// String contents are UTF-8; lengths and indices count runes, matching
// the lexer's column convention.

// StringAppend implements string-append.
func StringAppend(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	var sb strings.Builder
	for i, arg := range args {
		s, err := stringArg("string-append", i+1, arg)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s)
	}
	return runtime.NewString(sb.String()), nil
}

// StringLength implements string-length.
func StringLength(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("string-length", args, 1); err != nil {
		return nil, err
	}
	s, err := stringArg("string-length", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(number.FromInt64(int64(len([]rune(s))))), nil
}

// StringRef implements string-ref with a range-checked index.
func StringRef(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("string-ref", args, 2); err != nil {
		return nil, err
	}
	s, err := stringArg("string-ref", 1, args[0])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	i, err := indexArg("string-ref", 2, args[1], len(runes))
	if err != nil {
		return nil, err
	}
	return runtime.NewCharacter(runes[i]), nil
}

// Substring implements substring; the bounds must satisfy
// 0 <= start <= end <= length.
func Substring(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("substring", args, 3); err != nil {
		return nil, err
	}
	s, err := stringArg("substring", 1, args[0])
	if err != nil {
		return nil, err
	}
	start, err := integerArg("substring", 2, args[1])
	if err != nil {
		return nil, err
	}
	end, err := integerArg("substring", 3, args[2])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	i, j := int(start.Int64()), int(end.Int64())
	if i < 0 || j < i || j > len(runes) {
		return nil, &runtime.DomainError{Callee: "substring", Message: "bounds out of range"}
	}
	return runtime.NewString(string(runes[i:j])), nil
}

// stringOrderingOp builds the chained lexicographic string comparisons.
func stringOrderingOp(name string, holds func(cmp int) bool) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkMinArity(name, args, 2); err != nil {
			return nil, err
		}
		prev, err := stringArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		for i, arg := range args[1:] {
			s, err := stringArg(name, i+2, arg)
			if err != nil {
				return nil, err
			}
			if !holds(strings.Compare(prev, s)) {
				return boolValue(false), nil
			}
			prev = s
		}
		return boolValue(true), nil
	}
}
