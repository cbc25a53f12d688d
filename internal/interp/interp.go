// Package interp implements the MicroScheme evaluator and the top-level
// driver that threads a program's forms through the global environment.
package interp

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/interp/builtins"
	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
)

// Interpreter evaluates programs against a single global environment.
// The global frame is seeded with a reference to every primitive, so
// primitives are ordinary first-class values: (define f +) binds f to
// the same reference + resolves to.
type Interpreter struct {
	global   *runtime.Environment
	registry *builtins.Registry
	ctx      *builtins.Context
	errOut   io.Writer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithErrorOutput directs runtime error reports; it defaults to the
// main output writer.
func WithErrorOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.errOut = w
	}
}

// WithRandomSeed makes the shared random generator deterministic.
func WithRandomSeed(seed int64) Option {
	return func(i *Interpreter) {
		i.ctx.Rand = rand.New(rand.NewSource(seed))
	}
}

// New creates an Interpreter writing program output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		global:   runtime.NewEnvironment(),
		registry: builtins.DefaultRegistry,
		errOut:   out,
	}
	i.ctx = &builtins.Context{
		Out:   out,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Apply: i.Apply,
	}
	for _, name := range i.registry.Names() {
		i.global.Define(name, &runtime.PrimitiveRef{Name: name})
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// GlobalEnv returns the interpreter's global environment.
func (i *Interpreter) GlobalEnv() *runtime.Environment {
	return i.global
}

// Run iterates the top-level forms of a ROOT node in order, evaluating
// each against the global environment. An evaluation error aborts its
// form only: the error is reported and the remaining forms still run.
// Run returns the number of failed forms.
func (i *Interpreter) Run(program *ast.Node) int {
	failed := 0
	for _, form := range program.Children {
		if _, err := i.Eval(form, i.global); err != nil {
			failed++
			fmt.Fprintf(i.errOut, "error: %v\n", err)
		}
	}
	return failed
}

// EvalForm evaluates a single form against the global environment and
// returns its value. Used by the REPL and the embedding API.
func (i *Interpreter) EvalForm(form *ast.Node) (runtime.Value, error) {
	return i.Eval(form, i.global)
}
