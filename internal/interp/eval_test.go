package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mscheme-lang/go-mscheme/internal/interp/runtime"
	"github.com/mscheme-lang/go-mscheme/internal/lexer"
	"github.com/mscheme-lang/go-mscheme/internal/parser"
)

// run parses and evaluates source and returns the program's output and
// the errors of the individual top-level forms.
func run(t *testing.T, source string) (string, []error) {
	t.Helper()
	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parse errors for %q", source)

	var out bytes.Buffer
	i := New(&out, WithRandomSeed(1))
	var errs []error
	for _, form := range program.Children {
		if _, err := i.Eval(form, i.GlobalEnv()); err != nil {
			errs = append(errs, err)
		}
	}
	return out.String(), errs
}

// expectOutput asserts that source runs without errors and writes want.
func expectOutput(t *testing.T, source, want string) {
	t.Helper()
	got, errs := run(t, source)
	require.Empty(t, errs, "evaluation errors for %q", source)
	assert.Equal(t, want, got)
}

// expectError asserts that some top-level form fails and returns the
// first error.
func expectError(t *testing.T, source string) error {
	t.Helper()
	_, errs := run(t, source)
	require.NotEmpty(t, errs, "expected an error for %q", source)
	return errs[0]
}

func TestArithmeticScenario(t *testing.T) {
	expectOutput(t, `(display (+ 1 2 3))`, "6")
}

func TestFactorialScenario(t *testing.T) {
	expectOutput(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(display (fact 6))`,
		"720")
}

func TestCounterClosureScenario(t *testing.T) {
	expectOutput(t, `
		(define c (let ((x 0)) (lambda () (set! x (+ x 1)) x)))
		(display (c)) (display (c)) (display (c))`,
		"123")
}

func TestSetCarScenario(t *testing.T) {
	expectOutput(t, `
		(define l (list 1 2 3))
		(set-car! (cdr l) 99)
		(display l)`,
		"(1 99 3)")
}

func TestDoLoopScenario(t *testing.T) {
	expectOutput(t, `(display (do ((i 0 (+ i 1)) (s 0 (+ s i))) ((= i 5) s)))`, "10")
}

func TestUserMapScenario(t *testing.T) {
	expectOutput(t, `
		(define (map-like f l)
		  (if (null? l)
		      '()
		      (cons (f (car l)) (map-like f (cdr l)))))
		(display (map-like (lambda (x) (* x x)) '(1 2 3)))`,
		"(1 4 9)")
}

func TestSelfEvaluatingLiterals(t *testing.T) {
	expectOutput(t, `(display 42)`, "42")
	expectOutput(t, `(display "hi")`, "hi")
	expectOutput(t, `(display #t)`, "#t")
	expectOutput(t, `(display #\c)`, "c")
	expectOutput(t, `(display '())`, "()")
	expectOutput(t, `(display #(1 2))`, "#(1 2)")
}

func TestTruthinessOnlyFalseIsFalse(t *testing.T) {
	expectOutput(t, `(display (if 0 "t" "f"))`, "t")
	expectOutput(t, `(display (if '() "t" "f"))`, "t")
	expectOutput(t, `(display (if "" "t" "f"))`, "t")
	expectOutput(t, `(display (if #f "t" "f"))`, "f")
	expectOutput(t, `(display (not 0))`, "#f")
	expectOutput(t, `(display (not '()))`, "#f")
}

func TestIfWithoutElseIsUnspecified(t *testing.T) {
	expectOutput(t, `(if #f 1)`, "")
}

func TestCond(t *testing.T) {
	expectOutput(t, `
		(define (classify x)
		  (cond ((< x 0) "neg")
		        ((= x 0) "zero")
		        (else "pos")))
		(display (classify -3))
		(display (classify 0))
		(display (classify 9))`,
		"negzeropos")
}

func TestAndOr(t *testing.T) {
	expectOutput(t, `(display (and))`, "#t")
	expectOutput(t, `(display (or))`, "#f")
	expectOutput(t, `(display (and 1 2 3))`, "3")
	expectOutput(t, `(display (and 1 #f 3))`, "#f")
	expectOutput(t, `(display (or #f 2 3))`, "2")
	// short circuit: the unbound variable is never evaluated
	expectOutput(t, `(display (or 1 boom))`, "1")
	expectOutput(t, `(display (and #f boom))`, "#f")
}

func TestBeginReturnsLastValue(t *testing.T) {
	expectOutput(t, `(display (begin 1 2 3))`, "3")
	expectOutput(t, `(begin)`, "")
}

func TestLexicalScopeAndShadowing(t *testing.T) {
	expectOutput(t, `
		(define x 1)
		(define (f x) (* x 10))
		(display (f 5))
		(display x)`,
		"501")
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	expectOutput(t, `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add3 (make-adder 3))
		(define add7 (make-adder 7))
		(display (add3 1))
		(display (add7 1))`,
		"48")
}

func TestSetVisibleThroughCapture(t *testing.T) {
	expectOutput(t, `
		(define x 1)
		(define (get) x)
		(set! x 42)
		(display (get))`,
		"42")
}

func TestLetStarSeesEarlierBindings(t *testing.T) {
	expectOutput(t, `(display (let* ((x 2) (y (* x 3))) (+ x y)))`, "8")
}

func TestLetrecMutualRecursion(t *testing.T) {
	expectOutput(t, `
		(display
		  (letrec ((even? (lambda (n) (if (= n 0) #t (odd? (- n 1)))))
		           (odd?  (lambda (n) (if (= n 0) #f (even? (- n 1))))))
		    (even? 10)))`,
		"#t")
}

func TestDoRunsInConstantStack(t *testing.T) {
	// this many iterations would overflow any recursion-based loop
	expectOutput(t, `(display (do ((i 0 (+ i 1))) ((= i 100000) i)))`, "100000")
}

func TestDoStepsSeePreStepBindings(t *testing.T) {
	// s steps from the pre-step i: (i s) go 0,0 -> 1,0 -> 2,1 -> 3,2 -> 4,3
	expectOutput(t, `(display (do ((i 0 (+ i 1)) (s 0 i)) ((= i 4) s)))`, "3")
}

func TestSetCdrBuildsImproperList(t *testing.T) {
	expectOutput(t, `
		(define l (list 1 2))
		(set-cdr! (cdr l) 3)
		(display l)`,
		"(1 2 . 3)")
}

func TestSharedCellMutationVisibleEverywhere(t *testing.T) {
	expectOutput(t, `
		(define a (list 1 2))
		(define b (cons 0 a))
		(set-car! a 99)
		(display b)`,
		"(0 99 2)")
}

func TestVectorSet(t *testing.T) {
	expectOutput(t, `
		(define v (vector 1 2 3))
		(vector-set! v 1 99)
		(display v)`,
		"#(1 99 3)")
}

func TestApply(t *testing.T) {
	expectOutput(t, `(display (apply + '(1 2 3)))`, "6")
	expectOutput(t, `
		(define (add a b) (+ a b))
		(display (apply add (list 4 5)))`,
		"9")
}

func TestEvalQuotedDatum(t *testing.T) {
	expectOutput(t, `(display (eval '(+ 1 2)))`, "3")
	expectOutput(t, `(display (eval '(car (quote (7 8)))))`, "7")
	expectOutput(t, `(display (eval 5))`, "5")
}

func TestPrimitivesAreFirstClass(t *testing.T) {
	expectOutput(t, `
		(define f +)
		(display (f 1 2))`,
		"3")
	expectOutput(t, `(display (procedure? +))`, "#t")
	expectOutput(t, `(display (procedure? (lambda (x) x)))`, "#t")
	expectOutput(t, `(display (procedure? 3))`, "#f")
}

func TestSymbolsEvaluateToThemselves(t *testing.T) {
	expectOutput(t, `(display 'foo)`, "foo")
	expectOutput(t, `(display (symbol? 'foo))`, "#t")
}

func TestUnboundIdentifier(t *testing.T) {
	err := expectError(t, `(display nope)`)
	var unbound *runtime.UnboundIdentifierError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "nope", unbound.Name)
}

func TestSetOnUndefinedIdentifierFails(t *testing.T) {
	err := expectError(t, `(set! ghost 1)`)
	var semantic *runtime.SemanticError
	require.ErrorAs(t, err, &semantic)
}

func TestArityMismatch(t *testing.T) {
	err := expectError(t, `((lambda (x y) x) 1)`)
	var arity *runtime.ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, 2, arity.Expected)
	assert.Equal(t, 1, arity.Got)
}

func TestApplyNonProcedureFails(t *testing.T) {
	err := expectError(t, `(3 4)`)
	var semantic *runtime.SemanticError
	require.ErrorAs(t, err, &semantic)
}

func TestApplyRequiresProperList(t *testing.T) {
	err := expectError(t, `(apply + 3)`)
	var semantic *runtime.SemanticError
	require.ErrorAs(t, err, &semantic)
}

func TestCarOfEmptyListFails(t *testing.T) {
	err := expectError(t, `(car '())`)
	var domain *runtime.DomainError
	require.ErrorAs(t, err, &domain)

	err = expectError(t, `(cdr '())`)
	require.ErrorAs(t, err, &domain)
}

func TestDivisionByZeroFails(t *testing.T) {
	err := expectError(t, `(/ 1 0)`)
	var domain *runtime.DomainError
	require.ErrorAs(t, err, &domain)
}

func TestVectorIndexOutOfRangeFails(t *testing.T) {
	err := expectError(t, `(vector-ref (vector 1 2) 2)`)
	var domain *runtime.DomainError
	require.ErrorAs(t, err, &domain)

	err = expectError(t, `(vector-ref (vector 1 2) -1)`)
	require.ErrorAs(t, err, &domain)
}

func TestSubstringBoundsFail(t *testing.T) {
	err := expectError(t, `(substring "hello" 3 2)`)
	var domain *runtime.DomainError
	require.ErrorAs(t, err, &domain)

	err = expectError(t, `(substring "hello" 0 9)`)
	require.ErrorAs(t, err, &domain)
}

func TestTypeMismatchCarriesDetail(t *testing.T) {
	err := expectError(t, `(+ 1 "two")`)
	var typeErr *runtime.TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "+", typeErr.Callee)
	assert.Equal(t, 2, typeErr.Position)
	assert.Equal(t, "number", typeErr.Expected)
	assert.Equal(t, "string", typeErr.Actual)
}

func TestSetCarRequiresPair(t *testing.T) {
	_ = expectError(t, `(set-car! 5 1)`)
	err := expectError(t, `(set-car! '() 1)`)
	var domain *runtime.DomainError
	require.ErrorAs(t, err, &domain)
}

func TestDriverContinuesAfterError(t *testing.T) {
	source := `
		(display 1)
		(car '())
		(display 2)`
	p := parser.New(lexer.New(source))
	program := p.ParseProgram()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	var errOut bytes.Buffer
	i := New(&out, WithErrorOutput(&errOut))
	failed := i.Run(program)

	assert.Equal(t, 1, failed)
	assert.Equal(t, "12", out.String())
	assert.Contains(t, errOut.String(), "car")
}

func TestReEvaluationYieldsEqualResult(t *testing.T) {
	source := `(display (let ((xs '(1 2 3))) (cons 0 xs)))`
	first, errs := run(t, source)
	require.Empty(t, errs)
	second, errs := run(t, source)
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}

func TestNumberStringRoundTrip(t *testing.T) {
	expectOutput(t, `(display (= 3.25 (string->number (number->string 3.25))))`, "#t")
	expectOutput(t, `(display (= -17 (string->number (number->string -17))))`, "#t")
}

func TestStringListRoundTrip(t *testing.T) {
	expectOutput(t, `(display (list->string (string->list "scheme")))`, "scheme")
	expectOutput(t, `(display (string->list "ab"))`, "(a b)")
}

func TestQuotientRemainderIdentity(t *testing.T) {
	expectOutput(t, `
		(define (check n m)
		  (= n (+ (* (quotient n m) m) (remainder n m))))
		(display (and (check 17 5) (check -17 5) (check 17 -5) (check -17 -5)))`,
		"#t")
}

func TestDeepClosureOverLetrec(t *testing.T) {
	expectOutput(t, `
		(display
		  (letrec ((fib (lambda (n)
		                  (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))))
		    (fib 15)))`,
		"610")
}

func TestPrintfDirectives(t *testing.T) {
	expectOutput(t, `(printf "~s and ~d" 1 "two")`, "1 and two")
	expectOutput(t, `(printf "~x ~o ~b" 255 8 5)`, "ff 10 101")
	expectOutput(t, `(printf "~g" #t)`, "#t")
	expectOutput(t, `(printf "~c~c" #\h #\i)`, "hi")
	expectOutput(t, `(printf "~y" 'sym)`, "sym")
	expectOutput(t, `(printf "100~~")`, "100~")
	expectOutput(t, `(printf "a~nb")`, "a\nb")
}

func TestPrintfErrors(t *testing.T) {
	_ = expectError(t, `(printf "~s")`)
	_ = expectError(t, `(printf "~q" 1)`)
	_ = expectError(t, `(printf "~g" 1)`)
}

func TestComplexArithmetic(t *testing.T) {
	expectOutput(t, `(display (sqrt -4))`, "0+2i")
	expectOutput(t, `(display (real-part (sqrt -4)))`, "0")
	expectOutput(t, `(display (imag-part (sqrt -4)))`, "2")
	expectOutput(t, `(display (* (sqrt -1) (sqrt -1)))`, "-1")
}

func TestOrderingRejectsComplex(t *testing.T) {
	err := expectError(t, `(< (sqrt -4) 1)`)
	var typeErr *runtime.TypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestRandomIsSeeded(t *testing.T) {
	first, errs := run(t, `(random-set-seed! 7) (display (random-integer 0 100)) (display " ") (display (random-integer 0 100))`)
	require.Empty(t, errs)
	second, errs := run(t, `(random-set-seed! 7) (display (random-integer 0 100)) (display " ") (display (random-integer 0 100))`)
	require.Empty(t, errs)
	assert.Equal(t, first, second)
}
