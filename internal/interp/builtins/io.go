package builtins

import (
	"fmt"
	"strings"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// =============================================================================
// Output Primitives
// =============================================================================

// Display implements the display primitive: write the display form of
// the argument, no newline.
func Display(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("display", args, 1); err != nil {
		return nil, err
	}
	fmt.Fprint(ctx.Out, args[0].String())
	return runtime.Unspecified, nil
}

// Displayln implements displayln: display followed by a newline.
func Displayln(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("displayln", args, 1); err != nil {
		return nil, err
	}
	fmt.Fprintln(ctx.Out, args[0].String())
	return runtime.Unspecified, nil
}

// Newline implements newline: write a single line break.
func Newline(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("newline", args, 0); err != nil {
		return nil, err
	}
	fmt.Fprintln(ctx.Out)
	return runtime.Unspecified, nil
}

// Printf implements the printf primitive. The format string uses ~
// directives: ~s/~d/~l display the argument generically, ~x/~o/~b
// render the integer real part in hex/octal/binary, ~g expects a
// boolean, ~c a character, ~y a symbol. ~~ emits a literal tilde and
// ~n a line break; neither consumes an argument.
func Printf(ctx *Context, args []runtime.Value) (runtime.Value, error) {
	if err := checkMinArity("printf", args, 1); err != nil {
		return nil, err
	}
	format, err := stringArg("printf", 1, args[0])
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	operands := args[1:]
	next := 0
	take := func() (runtime.Value, error) {
		if next >= len(operands) {
			return nil, &runtime.ArityError{Callee: "printf", Expected: next + 2, Got: len(args), AtLeast: true}
		}
		v := operands[next]
		next++
		return v, nil
	}

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '~' {
			sb.WriteRune(runes[i])
			continue
		}
		i++
		if i >= len(runes) {
			return nil, runtime.Semanticf("printf: dangling ~ at end of format string")
		}
		switch runes[i] {
		case 's', 'd', 'l':
			v, err := take()
			if err != nil {
				return nil, err
			}
			sb.WriteString(v.String())
		case 'x', 'o', 'b':
			v, err := take()
			if err != nil {
				return nil, err
			}
			n, err := integerArg("printf", next+1, v)
			if err != nil {
				return nil, err
			}
			base := map[rune]int{'x': 16, 'o': 8, 'b': 2}[runes[i]]
			sb.WriteString(n.RadixString(base))
		case 'g':
			v, err := take()
			if err != nil {
				return nil, err
			}
			if !isKind(v, ast.BOOLEAN) {
				return nil, &runtime.TypeError{Callee: "printf", Position: next + 1, Expected: "boolean", Actual: v.Type()}
			}
			sb.WriteString(v.String())
		case 'c':
			v, err := take()
			if err != nil {
				return nil, err
			}
			ch, err := charArg("printf", next+1, v)
			if err != nil {
				return nil, err
			}
			sb.WriteRune(ch)
		case 'y':
			v, err := take()
			if err != nil {
				return nil, err
			}
			if !isKind(v, ast.SYMBOL) && !isKind(v, ast.QUASISYMBOL) {
				return nil, &runtime.TypeError{Callee: "printf", Position: next + 1, Expected: "symbol", Actual: v.Type()}
			}
			sb.WriteString(v.String())
		case 'n':
			sb.WriteByte('\n')
		case '~':
			sb.WriteByte('~')
		default:
			return nil, runtime.Semanticf("printf: unknown directive ~%c", runes[i])
		}
	}
	fmt.Fprint(ctx.Out, sb.String())
	return runtime.Unspecified, nil
}
