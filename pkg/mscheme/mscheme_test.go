package mscheme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	engine, err := New(WithOutput(&out), WithRandomSeed(1))
	require.NoError(t, err)
	return engine, &out
}

func TestCompileAndRun(t *testing.T) {
	engine, out := newEngine(t)

	program, err := engine.Compile(`(display (+ 1 2 3))`)
	require.NoError(t, err)
	require.NoError(t, engine.Run(program))
	assert.Equal(t, "6", out.String())
}

func TestRunScript(t *testing.T) {
	engine, out := newEngine(t)
	require.NoError(t, engine.RunScript(`(display (* 6 7))`))
	assert.Equal(t, "42", out.String())
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	engine, out := newEngine(t)

	require.NoError(t, engine.RunScript(`(define x 40)`))
	require.NoError(t, engine.RunScript(`(display (+ x 2))`))
	assert.Equal(t, "42", out.String())
}

func TestCompileErrorCarriesDiagnostics(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.Compile("(define x\n  (lambda (1) 1))")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected identifier")
	assert.Contains(t, err.Error(), "^", "diagnostics carry a caret")
}

func TestCompileErrorNamesFile(t *testing.T) {
	var out bytes.Buffer
	engine, err := New(WithOutput(&out), WithFilename("broken.scm"))
	require.NoError(t, err)

	_, err = engine.Compile("(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.scm")
}

func TestRunReportsFailedFormsAndContinues(t *testing.T) {
	var out, errOut bytes.Buffer
	engine, err := New(WithOutput(&out), WithErrorOutput(&errOut))
	require.NoError(t, err)

	runErr := engine.RunScript(`
		(display "a")
		(car '())
		(display "b")`)
	require.Error(t, runErr)
	assert.Equal(t, "ab", out.String())
	assert.Contains(t, errOut.String(), "car")
}

func TestEndToEndScenario(t *testing.T) {
	engine, out := newEngine(t)

	source := `
		(define (sum-squares l)
		  (if (null? l)
		      0
		      (+ (* (car l) (car l)) (sum-squares (cdr l)))))
		(displayln (sum-squares '(1 2 3 4)))
	`
	require.NoError(t, engine.RunScript(source))
	assert.Equal(t, "30\n", out.String())
}
