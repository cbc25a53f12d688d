package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// =============================================================================
// Type Predicates
// =============================================================================

// The structural predicates never coerce: they test the kind of the
// value, nothing else.

// kindPredicate builds a one-argument predicate over a node kind.
func kindPredicate(name string, kind ast.Kind) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		return boolValue(isKind(args[0], kind)), nil
	}
}

// NumberP implements number?.
var NumberP = kindPredicate("number?", ast.NUMBER)

// StringP implements string?.
var StringP = kindPredicate("string?", ast.STRING)

// CharP implements char?.
var CharP = kindPredicate("char?", ast.CHARACTER)

// BooleanP implements boolean?.
var BooleanP = kindPredicate("boolean?", ast.BOOLEAN)

// SymbolP implements symbol?.
func SymbolP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("symbol?", args, 1); err != nil {
		return nil, err
	}
	return boolValue(isKind(args[0], ast.SYMBOL) || isKind(args[0], ast.QUASISYMBOL)), nil
}

// RealP implements real?: a number whose imaginary component is zero.
func RealP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("real?", args, 1); err != nil {
		return nil, err
	}
	d, ok := args[0].(*runtime.Datum)
	return boolValue(ok && d.Node.Kind == ast.NUMBER && d.Node.Num.IsReal()), nil
}

// IntegerP implements integer?: a real with an integral value.
func IntegerP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("integer?", args, 1); err != nil {
		return nil, err
	}
	d, ok := args[0].(*runtime.Datum)
	return boolValue(ok && d.Node.Kind == ast.NUMBER && d.Node.Num.IsInteger()), nil
}

// ProcedureP implements procedure?: true for closures and primitive
// references alike.
func ProcedureP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("procedure?", args, 1); err != nil {
		return nil, err
	}
	switch args[0].(type) {
	case *runtime.Closure, *runtime.PrimitiveRef:
		return boolValue(true), nil
	}
	return boolValue(false), nil
}

// signPredicate builds zero?/positive?/negative? over one real operand.
func signPredicate(name string, holds func(sign int) bool) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		n, err := realArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		return boolValue(holds(n.Sign())), nil
	}
}

// parityPredicate builds even?/odd? over one real integer operand.
func parityPredicate(name string, want int64) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		n, err := integerArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		mod := n.Int64() % 2
		if mod < 0 {
			mod += 2
		}
		return boolValue(mod == want), nil
	}
}
