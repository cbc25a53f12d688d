package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Pair and List Primitives
// =============================================================================

// Cons implements cons: a fresh mutable cell over the two operands.
// Operands must be data; procedures cannot live in list structure
// because cells hold nodes.
func Cons(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("cons", args, 2); err != nil {
		return nil, err
	}
	car, err := datumArg("cons", 1, args[0], "datum")
	if err != nil {
		return nil, err
	}
	cdr, err := datumArg("cons", 2, args[1], "datum")
	if err != nil {
		return nil, err
	}
	return runtime.NewDatum(ast.Cons(car, cdr)), nil
}

// List implements list: a proper list over the operands.
func List(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	elems := make([]*ast.Node, len(args))
	for i, arg := range args {
		node, err := datumArg("list", i+1, arg, "datum")
		if err != nil {
			return nil, err
		}
		elems[i] = node
	}
	return runtime.NewDatum(ast.ListFromElements(elems)), nil
}

// Car implements car; the empty list has no car.
func Car(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("car", args, 1); err != nil {
		return nil, err
	}
	pair, err := pairArg("car", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewDatum(pair.Car()), nil
}

// Cdr implements cdr; the empty list has no cdr.
func Cdr(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("cdr", args, 1); err != nil {
		return nil, err
	}
	pair, err := pairArg("cdr", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewDatum(pair.Cdr()), nil
}

// NullP implements null?.
func NullP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("null?", args, 1); err != nil {
		return nil, err
	}
	d, ok := args[0].(*runtime.Datum)
	return boolValue(ok && d.Node.IsEmptyList()), nil
}

// PairP implements pair?.
func PairP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("pair?", args, 1); err != nil {
		return nil, err
	}
	d, ok := args[0].(*runtime.Datum)
	return boolValue(ok && d.Node.IsPair()), nil
}

// ListP implements list?: true iff the cdr chain terminates in the
// empty list.
func ListP(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("list?", args, 1); err != nil {
		return nil, err
	}
	d, ok := args[0].(*runtime.Datum)
	if !ok || d.Node.Kind != ast.LIST {
		return boolValue(false), nil
	}
	_, proper := d.Node.Elements()
	return boolValue(proper), nil
}

// Length implements length over proper lists.
func Length(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("length", args, 1); err != nil {
		return nil, err
	}
	node, err := listNodeArg("length", 1, args[0])
	if err != nil {
		return nil, err
	}
	elems, proper := node.Elements()
	if !proper {
		return nil, &runtime.TypeError{Callee: "length", Position: 1, Expected: "proper list", Actual: "improper list"}
	}
	return runtime.NewNumber(number.FromInt64(int64(len(elems)))), nil
}

// Append implements append. Every operand but the last must be a proper
// list; the last may be any datum, yielding an improper result. The
// cells of all but the last operand are copied, so append never mutates
// its operands.
func Append(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.EmptyList, nil
	}
	last, err := datumArg("append", len(args), args[len(args)-1], "datum")
	if err != nil {
		return nil, err
	}
	result := last
	for i := len(args) - 2; i >= 0; i-- {
		node, err := listNodeArg("append", i+1, args[i])
		if err != nil {
			return nil, err
		}
		elems, proper := node.Elements()
		if !proper {
			return nil, &runtime.TypeError{Callee: "append", Position: i + 1, Expected: "proper list", Actual: "improper list"}
		}
		for j := len(elems) - 1; j >= 0; j-- {
			result = ast.Cons(elems[j], result)
		}
	}
	return runtime.NewDatum(result), nil
}

// Reverse implements reverse over proper lists.
func Reverse(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("reverse", args, 1); err != nil {
		return nil, err
	}
	node, err := listNodeArg("reverse", 1, args[0])
	if err != nil {
		return nil, err
	}
	elems, proper := node.Elements()
	if !proper {
		return nil, &runtime.TypeError{Callee: "reverse", Position: 1, Expected: "proper list", Actual: "improper list"}
	}
	result := ast.Empty
	for _, elem := range elems {
		result = ast.Cons(elem, result)
	}
	return runtime.NewDatum(result), nil
}
