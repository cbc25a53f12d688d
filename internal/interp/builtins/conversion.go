package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// =============================================================================
// Conversion Primitives
// =============================================================================

// NumberToString implements number->string using the display form, so
// (string->number (number->string r)) round-trips for every r.
func NumberToString(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("number->string", args, 1); err != nil {
		return nil, err
	}
	n, err := numberArg("number->string", 1, args[0])
	if err != nil {
		return nil, err
	}
	return runtime.NewString(n.String()), nil
}

// StringToNumber implements string->number: parse the string as a
// signed decimal and return #f when it does not parse.
func StringToNumber(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("string->number", args, 1); err != nil {
		return nil, err
	}
	s, err := stringArg("string->number", 1, args[0])
	if err != nil {
		return nil, err
	}
	n, parseErr := number.Parse(s)
	if parseErr != nil {
		return boolValue(false), nil
	}
	return runtime.NewNumber(n), nil
}

// ListToString implements list->string over a proper list of
// characters.
func ListToString(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("list->string", args, 1); err != nil {
		return nil, err
	}
	node, err := listNodeArg("list->string", 1, args[0])
	if err != nil {
		return nil, err
	}
	elems, proper := node.Elements()
	if !proper {
		return nil, &runtime.TypeError{Callee: "list->string", Position: 1, Expected: "proper list", Actual: "improper list"}
	}
	runes := make([]rune, len(elems))
	for i, elem := range elems {
		if elem.Kind != ast.CHARACTER {
			return nil, &runtime.TypeError{Callee: "list->string", Position: 1, Expected: "list of characters", Actual: "list containing " + runtime.NewDatum(elem).Type()}
		}
		runes[i] = elem.Char
	}
	return runtime.NewString(string(runes)), nil
}

// StringToList implements string->list.
func StringToList(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("string->list", args, 1); err != nil {
		return nil, err
	}
	s, err := stringArg("string->list", 1, args[0])
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	elems := make([]*ast.Node, len(runes))
	for i, r := range runes {
		elems[i] = ast.NewCharacter(r)
	}
	return runtime.NewDatum(ast.ListFromElements(elems)), nil
}
