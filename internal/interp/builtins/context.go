package builtins

import (
	"io"
	"math/rand"

	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// BuiltinFunc is the implementation signature of every primitive: the
// evaluated operand list in, a value or a typed runtime error out.
type BuiltinFunc func(ctx *Context, args []runtime.Value) (runtime.Value, error)

// Context carries the interpreter facilities a primitive may need:
// the output writer display and printf target, the shared process-wide
// random generator, and an Apply callback into the evaluator so
// higher-order primitives can invoke procedures without an import
// cycle.
type Context struct {
	Out  io.Writer
	Rand *rand.Rand

	// Apply invokes a procedure value (closure or primitive) on
	// already-evaluated arguments.
	Apply func(fn runtime.Value, args []runtime.Value) (runtime.Value, error)
}
