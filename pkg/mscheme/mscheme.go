// Package mscheme is the embedding API of the MicroScheme interpreter.
//
// An Engine compiles source text into a Program and runs it against a
// persistent global environment, so successive Run calls see each
// other's definitions:
//
//	engine, _ := mscheme.New(mscheme.WithOutput(os.Stdout))
//	program, err := engine.Compile(`(display (+ 1 2))`)
//	if err != nil { ... }
//	if err := engine.Run(program); err != nil { ... }
package mscheme

import (
	"fmt"
	"io"
	"os"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/errors"
	"github.com/mscheme-lang/go-mscheme/internal/interp"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/parser"
)

// Engine compiles and runs MicroScheme programs.
type Engine struct {
	out      io.Writer
	errOut   io.Writer
	seed     *int64
	interp   *interp.Interpreter
	filename string
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput directs program output (display, printf). Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.out = w
	}
}

// WithErrorOutput directs runtime error reports. Defaults to the main
// output writer.
func WithErrorOutput(w io.Writer) Option {
	return func(e *Engine) {
		e.errOut = w
	}
}

// WithRandomSeed makes the engine's random primitives deterministic.
func WithRandomSeed(seed int64) Option {
	return func(e *Engine) {
		s := seed
		e.seed = &s
	}
}

// WithFilename sets the name used in compile diagnostics.
func WithFilename(name string) Option {
	return func(e *Engine) {
		e.filename = name
	}
}

// New creates an Engine with a fresh global environment.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{out: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	if e.errOut == nil {
		e.errOut = e.out
	}
	interpOpts := []interp.Option{interp.WithErrorOutput(e.errOut)}
	if e.seed != nil {
		interpOpts = append(interpOpts, interp.WithRandomSeed(*e.seed))
	}
	e.interp = interp.New(e.out, interpOpts...)
	return e, nil
}

// Program is a compiled MicroScheme program.
type Program struct {
	root   *ast.Node
	source string
}

// Compile parses source text into a Program. Parse errors are returned
// as a single error whose message carries the caret-formatted
// diagnostics; nothing is evaluated.
func (e *Engine) Compile(source string) (*Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	root := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		formatted := errors.FromParseErrors(errs, source, e.filename)
		return nil, fmt.Errorf("%s", errors.FormatErrors(formatted, false))
	}
	return &Program{root: root, source: source}, nil
}

// Run evaluates the program's top-level forms in order against the
// engine's global environment. A form that fails is reported to the
// error writer and the remaining forms still run; Run returns an error
// when any form failed.
func (e *Engine) Run(program *Program) error {
	if failed := e.interp.Run(program.root); failed > 0 {
		return fmt.Errorf("%d form(s) failed", failed)
	}
	return nil
}

// RunScript compiles and runs source text in one step.
func (e *Engine) RunScript(source string) error {
	program, err := e.Compile(source)
	if err != nil {
		return err
	}
	return e.Run(program)
}
