// Package number implements the arbitrary-precision complex arithmetic
// engine backing MicroScheme numbers.
//
// A number is a pair of big.Float components carried at 256 bits of
// mantissa precision. A number is real iff its imaginary component is
// exactly zero; integer-valued numbers are reals with an integral real
// component. Exact operations (add, sub, mul, div, comparison, floor and
// friends) stay in big.Float arithmetic. Exp of a real, Log of a positive
// real, Sqrt of a non-negative real and Pow of a positive real base use
// github.com/ALTree/bigfloat at full precision, and Pow of a real base
// with an integral exponent uses exact binary exponentiation; all other
// operands and the trigonometric family round-trip through complex128,
// trading precision for coverage.
package number

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"strings"

	"github.com/ALTree/bigfloat"
)

// Prec is the mantissa precision, in bits, of every component.
const Prec = 256

// Complex is an arbitrary-precision complex number. The zero value is not
// usable; construct values through the package constructors.
type Complex struct {
	re, im *big.Float
}

func newFloat() *big.Float {
	return new(big.Float).SetPrec(Prec)
}

// New returns a number with the given real and imaginary components.
// The components are copied.
func New(re, im *big.Float) *Complex {
	return &Complex{
		re: newFloat().Set(re),
		im: newFloat().Set(im),
	}
}

// FromFloat64 returns a real number with the given value.
func FromFloat64(f float64) *Complex {
	return &Complex{re: newFloat().SetFloat64(f), im: newFloat()}
}

// FromInt64 returns a real integer number with the given value.
func FromInt64(i int64) *Complex {
	return &Complex{re: newFloat().SetInt64(i), im: newFloat()}
}

// FromComplex128 returns the number closest to the given complex128.
func FromComplex128(c complex128) *Complex {
	return &Complex{
		re: newFloat().SetFloat64(real(c)),
		im: newFloat().SetFloat64(imag(c)),
	}
}

// Zero returns the number 0.
func Zero() *Complex {
	return &Complex{re: newFloat(), im: newFloat()}
}

// One returns the number 1.
func One() *Complex {
	return FromInt64(1)
}

// Parse reads a signed decimal with an optional fractional part and
// returns it as a real number.
func Parse(s string) (*Complex, error) {
	re, _, err := big.ParseFloat(s, 10, Prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal %q", s)
	}
	return &Complex{re: re, im: newFloat()}, nil
}

// Re returns a copy of the real component.
func (z *Complex) Re() *big.Float {
	return newFloat().Set(z.re)
}

// Im returns a copy of the imaginary component.
func (z *Complex) Im() *big.Float {
	return newFloat().Set(z.im)
}

// RealPart returns the real component as a real number.
func (z *Complex) RealPart() *Complex {
	return New(z.re, newFloat())
}

// ImagPart returns the imaginary component as a real number.
func (z *Complex) ImagPart() *Complex {
	return New(z.im, newFloat())
}

// IsReal reports whether the imaginary component is exactly zero.
func (z *Complex) IsReal() bool {
	return z.im.Sign() == 0
}

// IsInteger reports whether z is a real with an integral value.
func (z *Complex) IsInteger() bool {
	return z.IsReal() && z.re.IsInt()
}

// IsZero reports whether both components are zero.
func (z *Complex) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// Int64 returns the integral value of z. It must only be called when
// IsInteger holds; values outside the int64 range saturate.
func (z *Complex) Int64() int64 {
	i, _ := z.re.Int64()
	return i
}

// Add returns z + w.
func (z *Complex) Add(w *Complex) *Complex {
	return &Complex{
		re: newFloat().Add(z.re, w.re),
		im: newFloat().Add(z.im, w.im),
	}
}

// Sub returns z - w.
func (z *Complex) Sub(w *Complex) *Complex {
	return &Complex{
		re: newFloat().Sub(z.re, w.re),
		im: newFloat().Sub(z.im, w.im),
	}
}

// Neg returns -z.
func (z *Complex) Neg() *Complex {
	return &Complex{
		re: newFloat().Neg(z.re),
		im: newFloat().Neg(z.im),
	}
}

// Mul returns z * w.
func (z *Complex) Mul(w *Complex) *Complex {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := newFloat().Mul(z.re, w.re)
	bd := newFloat().Mul(z.im, w.im)
	ad := newFloat().Mul(z.re, w.im)
	bc := newFloat().Mul(z.im, w.re)
	return &Complex{
		re: newFloat().Sub(ac, bd),
		im: newFloat().Add(ad, bc),
	}
}

// Div returns z / w. Division by zero is an error.
func (z *Complex) Div(w *Complex) (*Complex, error) {
	if w.IsZero() {
		return nil, fmt.Errorf("division by zero")
	}
	// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
	cc := newFloat().Mul(w.re, w.re)
	dd := newFloat().Mul(w.im, w.im)
	denom := newFloat().Add(cc, dd)

	ac := newFloat().Mul(z.re, w.re)
	bd := newFloat().Mul(z.im, w.im)
	bc := newFloat().Mul(z.im, w.re)
	ad := newFloat().Mul(z.re, w.im)

	return &Complex{
		re: newFloat().Quo(newFloat().Add(ac, bd), denom),
		im: newFloat().Quo(newFloat().Sub(bc, ad), denom),
	}, nil
}

// Cmp compares the real values of z and w. Both operands must be real;
// ordering of non-reals is rejected at the primitive layer.
func (z *Complex) Cmp(w *Complex) int {
	return z.re.Cmp(w.re)
}

// Equal reports componentwise equality.
func (z *Complex) Equal(w *Complex) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// Sign returns the sign of the real component.
func (z *Complex) Sign() int {
	return z.re.Sign()
}

// toComplex128 projects z onto complex128 for the operations that have no
// arbitrary-precision implementation.
func (z *Complex) toComplex128() complex128 {
	re, _ := z.re.Float64()
	im, _ := z.im.Float64()
	return complex(re, im)
}

// Pow returns z ** w. Real bases with integral exponents use exact binary
// exponentiation, positive real bases with other real exponents are
// computed at full precision; everything else goes through complex128.
func (z *Complex) Pow(w *Complex) *Complex {
	if z.IsReal() && w.IsReal() {
		if w.IsInteger() {
			return z.powInt(w.Int64())
		}
		if z.re.Sign() > 0 {
			return &Complex{re: bigfloat.Pow(z.re, w.re), im: newFloat()}
		}
	}
	return FromComplex128(cmplx.Pow(z.toComplex128(), w.toComplex128()))
}

// powInt computes z**n by binary exponentiation, staying at full
// precision for any real or complex base.
func (z *Complex) powInt(n int64) *Complex {
	if n < 0 {
		r, err := One().Div(z.powInt(-n))
		if err != nil {
			// 0 ** negative; surface as infinity like the float path would.
			return FromFloat64(math.Inf(1))
		}
		return r
	}
	result := One()
	base := New(z.re, z.im)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Log returns the natural logarithm of z. Positive reals stay at full
// precision; zero is a domain error.
func (z *Complex) Log() (*Complex, error) {
	if z.IsZero() {
		return nil, fmt.Errorf("log of zero")
	}
	if z.IsReal() && z.re.Sign() > 0 {
		return &Complex{re: bigfloat.Log(z.re), im: newFloat()}, nil
	}
	return FromComplex128(cmplx.Log(z.toComplex128())), nil
}

// Exp returns e ** z.
func (z *Complex) Exp() *Complex {
	if z.IsReal() {
		return &Complex{re: bigfloat.Exp(z.re), im: newFloat()}
	}
	return FromComplex128(cmplx.Exp(z.toComplex128()))
}

// Sqrt returns the square root of z.
func (z *Complex) Sqrt() *Complex {
	if z.IsReal() && z.re.Sign() >= 0 {
		return &Complex{re: bigfloat.Sqrt(z.re), im: newFloat()}
	}
	return FromComplex128(cmplx.Sqrt(z.toComplex128()))
}

// Floor returns the largest integer not greater than the real value of z.
// The receiver must be real.
func (z *Complex) Floor() *Complex {
	i, acc := z.re.Int(nil)
	f := newFloat().SetInt(i)
	if acc == big.Above && z.re.Sign() < 0 {
		// truncation rounded toward zero; step one down
		f.Sub(f, newFloat().SetInt64(1))
	}
	return &Complex{re: f, im: newFloat()}
}

// Ceiling returns the smallest integer not less than the real value of z.
// The receiver must be real.
func (z *Complex) Ceiling() *Complex {
	i, acc := z.re.Int(nil)
	f := newFloat().SetInt(i)
	if acc == big.Below && z.re.Sign() > 0 {
		f.Add(f, newFloat().SetInt64(1))
	}
	return &Complex{re: f, im: newFloat()}
}

// Truncate returns the integer part of z, rounding toward zero.
// The receiver must be real.
func (z *Complex) Truncate() *Complex {
	i, _ := z.re.Int(nil)
	return &Complex{re: newFloat().SetInt(i), im: newFloat()}
}

// Round rounds the real value of z to the nearest integer, halves away
// from zero. The receiver must be real.
func (z *Complex) Round() *Complex {
	half := new(big.Float).SetPrec(Prec).SetFloat64(0.5)
	shifted := newFloat()
	if z.re.Sign() >= 0 {
		shifted.Add(z.re, half)
		return (&Complex{re: shifted, im: newFloat()}).Floor()
	}
	shifted.Sub(z.re, half)
	return (&Complex{re: shifted, im: newFloat()}).Ceiling()
}

// Modulo returns z mod w with the sign of the divisor w. Both operands
// must be real and w non-zero.
func (z *Complex) Modulo(w *Complex) (*Complex, error) {
	if w.re.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q, _ := z.Div(w)
	r := z.Sub(w.Mul(q.Floor()))
	return r, nil
}

// Remainder returns the remainder of z / w with the sign of the dividend
// z. Both operands must be real and w non-zero.
func (z *Complex) Remainder(w *Complex) (*Complex, error) {
	if w.re.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q, _ := z.Div(w)
	r := z.Sub(w.Mul(q.Truncate()))
	return r, nil
}

// Abs returns the absolute value of a real z.
func (z *Complex) Abs() *Complex {
	return &Complex{re: newFloat().Abs(z.re), im: newFloat()}
}

// complexFunc applies a complex128 function to z.
func (z *Complex) complexFunc(f func(complex128) complex128) *Complex {
	return FromComplex128(f(z.toComplex128()))
}

// Trigonometric and hyperbolic family. All of these round-trip through
// complex128; the primitive layer restricts the inverse hyperbolic
// functions to real inputs.

func (z *Complex) Sin() *Complex   { return z.complexFunc(cmplx.Sin) }
func (z *Complex) Cos() *Complex   { return z.complexFunc(cmplx.Cos) }
func (z *Complex) Tan() *Complex   { return z.complexFunc(cmplx.Tan) }
func (z *Complex) Asin() *Complex  { return z.complexFunc(cmplx.Asin) }
func (z *Complex) Acos() *Complex  { return z.complexFunc(cmplx.Acos) }
func (z *Complex) Atan() *Complex  { return z.complexFunc(cmplx.Atan) }
func (z *Complex) Sinh() *Complex  { return z.complexFunc(cmplx.Sinh) }
func (z *Complex) Cosh() *Complex  { return z.complexFunc(cmplx.Cosh) }
func (z *Complex) Tanh() *Complex  { return z.complexFunc(cmplx.Tanh) }
func (z *Complex) Asinh() *Complex { return z.complexFunc(cmplx.Asinh) }
func (z *Complex) Acosh() *Complex { return z.complexFunc(cmplx.Acosh) }
func (z *Complex) Atanh() *Complex { return z.complexFunc(cmplx.Atanh) }

// String renders the display form: the real component alone when the
// imaginary component is zero, a+bi / a-bi otherwise. Trailing
// fractional zeros are trimmed.
func (z *Complex) String() string {
	if z.IsReal() {
		return formatComponent(z.re)
	}
	im := formatComponent(z.im)
	if z.im.Sign() >= 0 {
		return formatComponent(z.re) + "+" + im + "i"
	}
	return formatComponent(z.re) + im + "i"
}

// formatComponent formats one big.Float component, trimming trailing
// fractional zeros and a dangling decimal point.
func formatComponent(f *big.Float) string {
	if f.IsInt() {
		// Integral values print without a fractional part at all.
		i, _ := f.Int(nil)
		return i.String()
	}
	s := f.Text('f', 24)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// RadixString renders the integral real part of z in the given base
// (2, 8 or 16). The receiver must be a real integer.
func (z *Complex) RadixString(base int) string {
	i, _ := z.re.Int(nil)
	return i.Text(base)
}
