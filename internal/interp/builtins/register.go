package builtins

import (
	"github.com/mscheme-lang/go-mscheme/internal/number"
)

// DefaultRegistry is the global registry of primitive procedures,
// populated on package initialization. The evaluator resolves variable
// references against it as a fallback, and the interpreter seeds the
// global environment from it so primitives are first-class values.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry()
	RegisterAll(DefaultRegistry)
}

// RegisterAll registers every primitive with the given registry. This
// allows creating custom registries with a different primitive set.
func RegisterAll(r *Registry) {
	RegisterIOPrimitives(r)
	RegisterArithmeticPrimitives(r)
	RegisterTranscendentalPrimitives(r)
	RegisterComparisonPrimitives(r)
	RegisterLogicPrimitives(r)
	RegisterListPrimitives(r)
	RegisterVectorPrimitives(r)
	RegisterPredicatePrimitives(r)
	RegisterStringPrimitives(r)
	RegisterCharacterPrimitives(r)
	RegisterConversionPrimitives(r)
	RegisterRandomPrimitives(r)
}

// RegisterIOPrimitives registers the output primitives.
func RegisterIOPrimitives(r *Registry) {
	r.Register("display", Display, CategoryIO, "Writes the display form of the argument")
	r.Register("displayln", Displayln, CategoryIO, "Writes the display form of the argument and a newline")
	r.Register("newline", Newline, CategoryIO, "Writes a line break")
	r.Register("printf", Printf, CategoryIO, "Writes a format string with ~ directives")
}

// RegisterArithmeticPrimitives registers the arithmetic primitives.
func RegisterArithmeticPrimitives(r *Registry) {
	r.Register("+", Add, CategoryArithmetic, "Returns the sum of the operands")
	r.Register("-", Sub, CategoryArithmetic, "Subtracts; negates a single operand")
	r.Register("*", Mul, CategoryArithmetic, "Returns the product of the operands")
	r.Register("/", Div, CategoryArithmetic, "Divides; rejects a zero divisor")
	r.Register("**", Pow, CategoryArithmetic, "Raises base to exponent")
	r.Register("log", Log, CategoryArithmetic, "Natural logarithm")
	r.Register("exp", Exp, CategoryArithmetic, "e raised to the operand")
	r.Register("sqrt", Sqrt, CategoryArithmetic, "Square root")
	r.Register("floor", roundingOp("floor", (*number.Complex).Floor), CategoryArithmetic, "Largest integer not greater than the operand")
	r.Register("ceiling", roundingOp("ceiling", (*number.Complex).Ceiling), CategoryArithmetic, "Smallest integer not less than the operand")
	r.Register("round", roundingOp("round", (*number.Complex).Round), CategoryArithmetic, "Nearest integer, halves away from zero")
	r.Register("truncate", roundingOp("truncate", (*number.Complex).Truncate), CategoryArithmetic, "Integer part, rounding toward zero")
	r.Register("modulo", divisionOp("modulo", (*number.Complex).Modulo), CategoryArithmetic, "Remainder with the divisor's sign")
	r.Register("remainder", divisionOp("remainder", (*number.Complex).Remainder), CategoryArithmetic, "Remainder with the dividend's sign")
	r.Register("quotient", Quotient, CategoryArithmetic, "Truncated quotient")
	r.Register("abs", Abs, CategoryArithmetic, "Absolute value of a real")
	r.Register("min", extremumOp("min", func(cmp int) bool { return cmp < 0 }), CategoryArithmetic, "Smallest of the operands")
	r.Register("max", extremumOp("max", func(cmp int) bool { return cmp > 0 }), CategoryArithmetic, "Largest of the operands")
	r.Register("real-part", RealPart, CategoryArithmetic, "Real component of a number")
	r.Register("imag-part", ImagPart, CategoryArithmetic, "Imaginary component of a number")
}

// RegisterTranscendentalPrimitives registers the trigonometric and
// hyperbolic family. The inverse hyperbolic functions require real
// input; everything else is complex-capable.
func RegisterTranscendentalPrimitives(r *Registry) {
	r.Register("sin", transcendentalOp("sin", (*number.Complex).Sin), CategoryTranscendental, "Sine")
	r.Register("cos", transcendentalOp("cos", (*number.Complex).Cos), CategoryTranscendental, "Cosine")
	r.Register("tan", transcendentalOp("tan", (*number.Complex).Tan), CategoryTranscendental, "Tangent")
	r.Register("asin", transcendentalOp("asin", (*number.Complex).Asin), CategoryTranscendental, "Arc sine")
	r.Register("acos", transcendentalOp("acos", (*number.Complex).Acos), CategoryTranscendental, "Arc cosine")
	r.Register("atan", transcendentalOp("atan", (*number.Complex).Atan), CategoryTranscendental, "Arc tangent")
	r.Register("sinh", transcendentalOp("sinh", (*number.Complex).Sinh), CategoryTranscendental, "Hyperbolic sine")
	r.Register("cosh", transcendentalOp("cosh", (*number.Complex).Cosh), CategoryTranscendental, "Hyperbolic cosine")
	r.Register("tanh", transcendentalOp("tanh", (*number.Complex).Tanh), CategoryTranscendental, "Hyperbolic tangent")
	r.Register("asinh", realTranscendentalOp("asinh", (*number.Complex).Asinh), CategoryTranscendental, "Inverse hyperbolic sine")
	r.Register("acosh", realTranscendentalOp("acosh", (*number.Complex).Acosh), CategoryTranscendental, "Inverse hyperbolic cosine")
	r.Register("atanh", realTranscendentalOp("atanh", (*number.Complex).Atanh), CategoryTranscendental, "Inverse hyperbolic tangent")
}

// RegisterComparisonPrimitives registers ordering and numeric equality.
func RegisterComparisonPrimitives(r *Registry) {
	r.Register("<", orderingOp("<", func(cmp int) bool { return cmp < 0 }), CategoryComparison, "Strictly increasing")
	r.Register("<=", orderingOp("<=", func(cmp int) bool { return cmp <= 0 }), CategoryComparison, "Non-decreasing")
	r.Register(">", orderingOp(">", func(cmp int) bool { return cmp > 0 }), CategoryComparison, "Strictly decreasing")
	r.Register(">=", orderingOp(">=", func(cmp int) bool { return cmp >= 0 }), CategoryComparison, "Non-increasing")
	r.Register("=", NumEqual, CategoryComparison, "Numeric equality over both components")
}

// RegisterLogicPrimitives registers not, equal? and eq?.
func RegisterLogicPrimitives(r *Registry) {
	r.Register("not", Not, CategoryLogic, "True only for the false boolean")
	r.Register("equal?", EqualP, CategoryLogic, "Recursive structural equality")
	r.Register("eq?", EqP, CategoryLogic, "Reference identity; value equality for atoms")
}

// RegisterListPrimitives registers the pair and list primitives.
func RegisterListPrimitives(r *Registry) {
	r.Register("cons", Cons, CategoryList, "Fresh mutable pair")
	r.Register("list", List, CategoryList, "Proper list of the operands")
	r.Register("car", Car, CategoryList, "First slot of a pair")
	r.Register("cdr", Cdr, CategoryList, "Second slot of a pair")
	r.Register("null?", NullP, CategoryList, "True for the empty list")
	r.Register("pair?", PairP, CategoryList, "True for a non-empty pair")
	r.Register("list?", ListP, CategoryList, "True for a proper list")
	r.Register("length", Length, CategoryList, "Element count of a proper list")
	r.Register("append", Append, CategoryList, "Concatenation of lists")
	r.Register("reverse", Reverse, CategoryList, "Reversal of a proper list")
}

// RegisterVectorPrimitives registers the vector primitives.
func RegisterVectorPrimitives(r *Registry) {
	r.Register("vector", Vector, CategoryVector, "Fresh vector of the operands")
	r.Register("vector-ref", VectorRef, CategoryVector, "Element at a range-checked index")
	r.Register("vector-length", VectorLength, CategoryVector, "Element count")
	r.Register("vector?", VectorP, CategoryVector, "True for a vector")
}

// RegisterPredicatePrimitives registers the structural type predicates.
func RegisterPredicatePrimitives(r *Registry) {
	r.Register("number?", NumberP, CategoryPredicate, "True for a number")
	r.Register("real?", RealP, CategoryPredicate, "True for a number with zero imaginary part")
	r.Register("integer?", IntegerP, CategoryPredicate, "True for a real integer")
	r.Register("char?", CharP, CategoryPredicate, "True for a character")
	r.Register("string?", StringP, CategoryPredicate, "True for a string")
	r.Register("symbol?", SymbolP, CategoryPredicate, "True for a symbol")
	r.Register("boolean?", BooleanP, CategoryPredicate, "True for a boolean")
	r.Register("procedure?", ProcedureP, CategoryPredicate, "True for closures and primitives")
	r.Register("zero?", signPredicate("zero?", func(sign int) bool { return sign == 0 }), CategoryPredicate, "True for zero")
	r.Register("positive?", signPredicate("positive?", func(sign int) bool { return sign > 0 }), CategoryPredicate, "True for a positive real")
	r.Register("negative?", signPredicate("negative?", func(sign int) bool { return sign < 0 }), CategoryPredicate, "True for a negative real")
	r.Register("even?", parityPredicate("even?", 0), CategoryPredicate, "True for an even integer")
	r.Register("odd?", parityPredicate("odd?", 1), CategoryPredicate, "True for an odd integer")
}

// RegisterStringPrimitives registers the string primitives.
func RegisterStringPrimitives(r *Registry) {
	r.Register("string-append", StringAppend, CategoryString, "Concatenation of strings")
	r.Register("string-length", StringLength, CategoryString, "Rune count of a string")
	r.Register("string-ref", StringRef, CategoryString, "Character at a range-checked index")
	r.Register("substring", Substring, CategoryString, "Slice between checked bounds")
	r.Register("string=?", stringOrderingOp("string=?", func(cmp int) bool { return cmp == 0 }), CategoryString, "String equality")
	r.Register("string<?", stringOrderingOp("string<?", func(cmp int) bool { return cmp < 0 }), CategoryString, "Lexicographically increasing")
	r.Register("string<=?", stringOrderingOp("string<=?", func(cmp int) bool { return cmp <= 0 }), CategoryString, "Lexicographically non-decreasing")
	r.Register("string>?", stringOrderingOp("string>?", func(cmp int) bool { return cmp > 0 }), CategoryString, "Lexicographically decreasing")
	r.Register("string>=?", stringOrderingOp("string>=?", func(cmp int) bool { return cmp >= 0 }), CategoryString, "Lexicographically non-increasing")
}

// RegisterCharacterPrimitives registers the character primitives.
func RegisterCharacterPrimitives(r *Registry) {
	r.Register("char=?", charOrderingOp("char=?", func(cmp int) bool { return cmp == 0 }), CategoryCharacter, "Character equality")
	r.Register("char<?", charOrderingOp("char<?", func(cmp int) bool { return cmp < 0 }), CategoryCharacter, "Increasing code units")
	r.Register("char<=?", charOrderingOp("char<=?", func(cmp int) bool { return cmp <= 0 }), CategoryCharacter, "Non-decreasing code units")
	r.Register("char>?", charOrderingOp("char>?", func(cmp int) bool { return cmp > 0 }), CategoryCharacter, "Decreasing code units")
	r.Register("char>=?", charOrderingOp("char>=?", func(cmp int) bool { return cmp >= 0 }), CategoryCharacter, "Non-increasing code units")
	r.Register("char->integer", CharToInteger, CategoryCharacter, "Code point of a character")
	r.Register("integer->char", IntegerToChar, CategoryCharacter, "Character for a code point")
}

// RegisterConversionPrimitives registers conversions between kinds.
func RegisterConversionPrimitives(r *Registry) {
	r.Register("number->string", NumberToString, CategoryConversion, "Display form of a number")
	r.Register("string->number", StringToNumber, CategoryConversion, "Parses a decimal; #f on failure")
	r.Register("list->string", ListToString, CategoryConversion, "String from a proper list of characters")
	r.Register("string->list", StringToList, CategoryConversion, "Proper list of a string's characters")
}

// RegisterRandomPrimitives registers the shared random generator's
// primitives.
func RegisterRandomPrimitives(r *Registry) {
	r.Register("random", Random, CategoryRandom, "Uniform real in [0, 1)")
	r.Register("random-integer", RandomInteger, CategoryRandom, "Uniform integer, inclusive on both ends")
	r.Register("random-double", RandomDouble, CategoryRandom, "Uniform real in [lo, hi)")
	r.Register("random-set-seed!", RandomSetSeed, CategoryRandom, "Seeds the shared generator")
}
