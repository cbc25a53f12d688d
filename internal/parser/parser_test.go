package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mscheme-lang/go-mscheme/internal/ast"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
)

func parse(t *testing.T, input string) *ast.Node {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "input %q", input)
	return program
}

func parseOne(t *testing.T, input string) *ast.Node {
	t.Helper()
	program := parse(t, input)
	require.Len(t, program.Children, 1)
	return program.Children[0]
}

func parseErrors(t *testing.T, input string) []Error {
	t.Helper()
	p := New(lexer.New(input))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors(), "input %q parsed cleanly", input)
	return p.Errors()
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
	}{
		{"42", ast.NUMBER},
		{`"hi"`, ast.STRING},
		{"#t", ast.BOOLEAN},
		{`#\a`, ast.CHARACTER},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.kind, parseOne(t, tt.input).Kind)
		})
	}
}

func TestVariableReference(t *testing.T) {
	node := parseOne(t, "x")
	require.Equal(t, ast.VARIABLE, node.Kind)
	assert.Equal(t, "x", node.Text)
}

func TestDefineValue(t *testing.T) {
	node := parseOne(t, "(define x 42)")
	require.Equal(t, ast.DECLARATION, node.Kind)
	assert.Equal(t, "x", node.Text)
	require.Len(t, node.Children, 1)
	assert.Equal(t, ast.NUMBER, node.Children[0].Kind)
}

func TestDefineFunctionSugar(t *testing.T) {
	node := parseOne(t, "(define (add a b) (+ a b))")
	require.Equal(t, ast.DECLARATION, node.Kind)
	assert.Equal(t, "add", node.Text)

	lambda := node.Children[0]
	require.Equal(t, ast.LAMBDA, lambda.Kind)
	assert.Equal(t, []string{"a", "b"}, lambda.Names)
	require.Len(t, lambda.Children, 1)
	assert.Equal(t, ast.APPLICATION, lambda.Children[0].Kind)
}

func TestIfBecomesCond(t *testing.T) {
	node := parseOne(t, "(if #t 1 2)")
	require.Equal(t, ast.COND, node.Kind)
	require.Len(t, node.Children, 3)

	node = parseOne(t, "(if #t 1)")
	require.Equal(t, ast.COND, node.Kind)
	require.Len(t, node.Children, 2)
}

func TestCondClauses(t *testing.T) {
	node := parseOne(t, "(cond ((= x 1) 1) ((= x 2) 2) (else 3))")
	require.Equal(t, ast.COND, node.Kind)
	// two predicate/consequent pairs plus the else consequent
	require.Len(t, node.Children, 5)
}

func TestLambda(t *testing.T) {
	node := parseOne(t, "(lambda (x) x)")
	require.Equal(t, ast.LAMBDA, node.Kind)
	assert.Equal(t, []string{"x"}, node.Names)
	require.Len(t, node.Children, 1)
}

func TestGreekLambda(t *testing.T) {
	node := parseOne(t, "(λ (x) x)")
	require.Equal(t, ast.LAMBDA, node.Kind)
}

func TestLambdaMultiFormBody(t *testing.T) {
	node := parseOne(t, "(lambda () (display 1) 2)")
	require.Equal(t, ast.LAMBDA, node.Kind)
	assert.Empty(t, node.Names)
	assert.Len(t, node.Children, 2)
}

func TestBegin(t *testing.T) {
	node := parseOne(t, "(begin 1 2 3)")
	require.Equal(t, ast.SEQUENCE, node.Kind)
	assert.Len(t, node.Children, 3)
}

func TestQuotedSymbol(t *testing.T) {
	node := parseOne(t, "'foo")
	require.Equal(t, ast.SYMBOL, node.Kind)
	assert.Equal(t, "foo", node.Text)
}

func TestQuotedList(t *testing.T) {
	node := parseOne(t, "'(1 2 3)")
	require.Equal(t, ast.LIST, node.Kind)
	elems, proper := node.Elements()
	require.True(t, proper)
	assert.Len(t, elems, 3)
}

func TestQuoteForm(t *testing.T) {
	node := parseOne(t, "(quote (a b))")
	require.Equal(t, ast.LIST, node.Kind)
	elems, _ := node.Elements()
	require.Len(t, elems, 2)
	assert.Equal(t, ast.SYMBOL, elems[0].Kind)
}

func TestQuotedEmptyListIsSingleton(t *testing.T) {
	node := parseOne(t, "'()")
	assert.Same(t, ast.Empty, node)
}

func TestDottedDatum(t *testing.T) {
	node := parseOne(t, "'(1 . 2)")
	require.True(t, node.IsPair())
	assert.Equal(t, ast.NUMBER, node.Car().Kind)
	assert.Equal(t, ast.NUMBER, node.Cdr().Kind)
	assert.Equal(t, "(1 . 2)", ast.DisplayString(node))
}

func TestQuotedSpecialFormNamesAreSymbols(t *testing.T) {
	node := parseOne(t, "'(if lambda do)")
	elems, _ := node.Elements()
	require.Len(t, elems, 3)
	for _, elem := range elems {
		assert.Equal(t, ast.SYMBOL, elem.Kind)
	}
}

func TestVectorLiteral(t *testing.T) {
	node := parseOne(t, "#(1 2 3)")
	require.Equal(t, ast.VECTOR, node.Kind)
	assert.Len(t, node.Children, 3)
}

func TestLetDesugarsToApplication(t *testing.T) {
	node := parseOne(t, "(let ((x 1) (y 2)) (+ x y))")
	require.Equal(t, ast.APPLICATION, node.Kind)
	require.Len(t, node.Children, 3) // lambda + two init expressions

	lambda := node.Children[0]
	require.Equal(t, ast.LAMBDA, lambda.Kind)
	assert.Equal(t, []string{"x", "y"}, lambda.Names)
}

func TestLetStarDesugarsToNestedApplications(t *testing.T) {
	node := parseOne(t, "(let* ((x 1) (y x)) y)")
	require.Equal(t, ast.APPLICATION, node.Kind)
	require.Len(t, node.Children, 2) // single-parameter lambda + init

	outer := node.Children[0]
	require.Equal(t, ast.LAMBDA, outer.Kind)
	assert.Equal(t, []string{"x"}, outer.Names)

	inner := outer.Children[0]
	require.Equal(t, ast.APPLICATION, inner.Kind)
	innerLambda := inner.Children[0]
	require.Equal(t, ast.LAMBDA, innerLambda.Kind)
	assert.Equal(t, []string{"y"}, innerLambda.Names)
}

func TestLetrec(t *testing.T) {
	node := parseOne(t, "(letrec ((f (lambda (n) (f n)))) (f 1))")
	require.Equal(t, ast.LETREC, node.Kind)
	assert.Equal(t, []string{"f"}, node.Names)
	require.Len(t, node.Children, 2)
	assert.Equal(t, ast.SEQUENCE, node.Children[0].Kind)
	assert.Len(t, node.Children[0].Children, 1)
}

func TestSetForms(t *testing.T) {
	node := parseOne(t, "(set! x 1)")
	require.Equal(t, ast.SET, node.Kind)
	assert.Equal(t, "x", node.Text)

	node = parseOne(t, "(set-car! l 1)")
	require.Equal(t, ast.SETCAR, node.Kind)
	assert.Len(t, node.Children, 2)

	node = parseOne(t, "(set-cdr! l 1)")
	require.Equal(t, ast.SETCDR, node.Kind)

	node = parseOne(t, "(vector-set! v 0 1)")
	require.Equal(t, ast.SETVECTOR, node.Kind)
	assert.Len(t, node.Children, 3)
}

func TestDo(t *testing.T) {
	node := parseOne(t, "(do ((i 0 (+ i 1)) (s 0 (+ s i))) ((= i 5) s) (display i))")
	require.Equal(t, ast.DO, node.Kind)
	assert.Equal(t, []string{"i", "s"}, node.Names)
	require.Len(t, node.Children, 5)

	assert.Len(t, node.Children[0].Children, 2) // inits
	assert.Len(t, node.Children[1].Children, 2) // steps
	assert.Len(t, node.Children[3].Children, 1) // results
	assert.Len(t, node.Children[4].Children, 1) // body
}

func TestDoDefaultStep(t *testing.T) {
	node := parseOne(t, "(do ((i 0)) (#t i))")
	require.Equal(t, ast.DO, node.Kind)
	step := node.Children[1].Children[0]
	require.Equal(t, ast.VARIABLE, step.Kind)
	assert.Equal(t, "i", step.Text)
}

func TestAndOrApplyEval(t *testing.T) {
	assert.Equal(t, ast.AND, parseOne(t, "(and 1 2)").Kind)
	assert.Equal(t, ast.OR, parseOne(t, "(or 1 2)").Kind)
	assert.Equal(t, ast.APPLY, parseOne(t, "(apply + '(1 2))").Kind)
	assert.Equal(t, ast.EVAL, parseOne(t, "(eval '(+ 1 2))").Kind)
}

func TestApplication(t *testing.T) {
	node := parseOne(t, "(f 1 2)")
	require.Equal(t, ast.APPLICATION, node.Kind)
	require.Len(t, node.Children, 3)
	assert.Equal(t, ast.VARIABLE, node.Children[0].Kind)
}

func TestEmptyCombinationIsEmptyList(t *testing.T) {
	node := parseOne(t, "()")
	assert.Same(t, ast.Empty, node)
}

func TestMultipleTopLevelForms(t *testing.T) {
	program := parse(t, "(define x 1) (display x)")
	assert.Len(t, program.Children, 2)
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"(define)",
		"(define 42 1)",
		"(lambda x x)",
		"(lambda (1) x)",
		"(if)",
		"(cond)",
		"(let (x 1) x)",
		"(set! 42 1)",
		"(do i (#t))",
		"')",
		"(a . b)",
		"(unclosed",
		")",
		"(cond (else 1) (#t 2))",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parseErrors(t, input)
		})
	}
}

func TestErrorPositions(t *testing.T) {
	errs := parseErrors(t, "\n  )")
	require.NotEmpty(t, errs)
	assert.Equal(t, 2, errs[0].Pos.Line)
	assert.Equal(t, 3, errs[0].Pos.Column)
}
