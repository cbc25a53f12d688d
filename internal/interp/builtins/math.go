package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Arithmetic Primitives
// =============================================================================

// Add implements +. With no operands the sum is 0.
func Add(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	acc := number.Zero()
	for i, arg := range args {
		n, err := numberArg("+", i+1, arg)
		if err != nil {
			return nil, err
		}
		acc = acc.Add(n)
	}
	return runtime.NewNumber(acc), nil
}

// Sub implements -. With a single operand it negates.
func Sub(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkMinArity("-", args, 1); err != nil {
		return nil, err
	}
	first, err := numberArg("-", 1, args[0])
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return runtime.NewNumber(first.Neg()), nil
	}
	acc := first
	for i, arg := range args[1:] {
		n, err := numberArg("-", i+2, arg)
		if err != nil {
			return nil, err
		}
		acc = acc.Sub(n)
	}
	return runtime.NewNumber(acc), nil
}

// Mul implements *. With no operands the product is 1.
func Mul(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	acc := number.One()
	for i, arg := range args {
		n, err := numberArg("*", i+1, arg)
		if err != nil {
			return nil, err
		}
		acc = acc.Mul(n)
	}
	return runtime.NewNumber(acc), nil
}

// Div implements /. A single operand yields its reciprocal. A zero
// divisor anywhere is a domain error.
func Div(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkMinArity("/", args, 1); err != nil {
		return nil, err
	}
	first, err := numberArg("/", 1, args[0])
	if err != nil {
		return nil, err
	}
	acc := first
	rest := args[1:]
	posOffset := 2
	if len(args) == 1 {
		acc = number.One()
		rest = args
		posOffset = 1
	}
	for i, arg := range rest {
		n, err := numberArg("/", i+posOffset, arg)
		if err != nil {
			return nil, err
		}
		q, err := acc.Div(n)
		if err != nil {
			return nil, &runtime.DomainError{Callee: "/", Message: "division by zero"}
		}
		acc = q
	}
	return runtime.NewNumber(acc), nil
}

// Pow implements **.
func Pow(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("**", args, 2); err != nil {
		return nil, err
	}
	base, err := numberArg("**", 1, args[0])
	if err != nil {
		return nil, err
	}
	exp, err := numberArg("**", 2, args[1])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(base.Pow(exp)), nil
}

// Log implements the natural logarithm.
func Log(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("log", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("log", 1, args[0])
	if err != nil {
		return nil, err
	}
	r, err := n.Log()
	if err != nil {
		return nil, &runtime.DomainError{Callee: "log", Message: "log of zero"}
	}
	return runtime.NewNumber(r), nil
}

// Exp implements e ** x.
func Exp(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("exp", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("exp", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(n.Exp()), nil
}

// Sqrt implements the square root.
func Sqrt(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("sqrt", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("sqrt", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(n.Sqrt()), nil
}

// roundingOp builds the floor/ceiling/round/truncate primitives, which
// all take one real operand.
func roundingOp(name string, op func(*number.Complex) *number.Complex) BuiltinFunc {
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

// divisionOp builds modulo/remainder, two real operands with a non-zero
// divisor.
func divisionOp(name string, op func(z, w *number.Complex) (*number.Complex, error)) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 2); err != nil {
			return nil, err
		}
		z, err := realArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		w, err := realArg(name, 2, args[1])
		if err != nil {
			return nil, err
		}
		r, err := op(z, w)
		if err != nil {
			return nil, &runtime.DomainError{Callee: name, Message: "division by zero"}
		}
		return runtime.NewNumber(r), nil
	}
}

// Quotient implements quotient as truncated division.
func Quotient(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("quotient", args, 2); err != nil {
		return nil, err
	}
	z, err := realArg("quotient", 1, args[0])
	if err != nil {
		return nil, err
	}
	w, err := realArg("quotient", 2, args[1])
	if err != nil {
		return nil, err
	}
	q, err := z.Div(w)
	if err != nil {
		return nil, &runtime.DomainError{Callee: "quotient", Message: "division by zero"}
	}
	return runtime.NewNumber(q.Truncate()), nil
}

// Abs implements the absolute value of a real.
func Abs(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("abs", args, 1); err != nil {
		return nil, err
	}
	n, err := realArg("abs", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(n.Abs()), nil
}

// extremumOp builds min/max over one or more reals.
func extremumOp(name string, keep func(cmp int) bool) BuiltinFunc {
	return func(ctx *Context, args []runtime.Value) (runtime.Value, error) {
		if err := checkMinArity(name, args, 1); err != nil {
			return nil, err
		}
		best, err := realArg(name, 1, args[0])
		if err != nil {
			return nil, err
		}
		for i, arg := range args[1:] {
			n, err := realArg(name, i+2, arg)
			if err != nil {
				return nil, err
			}
			if keep(n.Cmp(best)) {
				best = n
			}
		}
		return runtime.NewNumber(best), nil
	}
}

// =============================================================================
// Complex Component Primitives
// =============================================================================

// RealPart implements real-part.
func RealPart(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("real-part", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("real-part", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(n.RealPart()), nil
}

// ImagPart implements imag-part.
func ImagPart(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("imag-part", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("imag-part", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewNumber(n.ImagPart()), nil
}
