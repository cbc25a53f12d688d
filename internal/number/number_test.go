package number

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"3.14", "3.14"},
		{"-0.5", "-0.5"},
		{"10.0", "10"},
		{"0", "0"},
		{"2.500", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "--1"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestComplexString(t *testing.T) {
	n := FromComplex128(complex(1, 2))
	assert.Equal(t, "1+2i", n.String())

	n = FromComplex128(complex(1, -2))
	assert.Equal(t, "1-2i", n.String())

	assert.Equal(t, "3", FromComplex128(complex(3, 0)).String())
}

func TestRealAndIntegerPredicates(t *testing.T) {
	assert.True(t, FromInt64(5).IsReal())
	assert.True(t, FromInt64(5).IsInteger())
	assert.True(t, FromFloat64(2.5).IsReal())
	assert.False(t, FromFloat64(2.5).IsInteger())
	assert.False(t, FromComplex128(complex(1, 1)).IsReal())
	assert.False(t, FromComplex128(complex(1, 1)).IsInteger())
}

func TestArithmetic(t *testing.T) {
	a, b := FromInt64(10), FromInt64(4)

	assert.Equal(t, "14", a.Add(b).String())
	assert.Equal(t, "6", a.Sub(b).String())
	assert.Equal(t, "40", a.Mul(b).String())
	assert.Equal(t, "2.5", mustDiv(t, a, b).String())
	assert.Equal(t, "-10", a.Neg().String())
}

func TestComplexMultiplication(t *testing.T) {
	// (1+2i)(3+4i) = 3+4i+6i-8 = -5+10i
	a := FromComplex128(complex(1, 2))
	b := FromComplex128(complex(3, 4))
	assert.Equal(t, "-5+10i", a.Mul(b).String())
}

func TestDivisionByZero(t *testing.T) {
	_, err := FromInt64(1).Div(Zero())
	assert.Error(t, err)
}

func TestPow(t *testing.T) {
	assert.Equal(t, "1024", FromInt64(2).Pow(FromInt64(10)).String())
	assert.Equal(t, "1", FromInt64(7).Pow(Zero()).String())
	assert.Equal(t, "0.25", FromInt64(2).Pow(FromInt64(-2)).String())
	// negative base with integral exponent stays exact
	assert.Equal(t, "-8", FromInt64(-2).Pow(FromInt64(3)).String())
}

func TestRounding(t *testing.T) {
	tests := []struct {
		input                        float64
		floor, ceil, round, truncate string
	}{
		{2.5, "2", "3", "3", "2"},
		{-2.5, "-3", "-2", "-3", "-2"},
		{2.0, "2", "2", "2", "2"},
		{-0.3, "-1", "0", "0", "0"},
		{7.1, "7", "8", "7", "7"},
	}

	for _, tt := range tests {
		n := FromFloat64(tt.input)
		assert.Equal(t, tt.floor, n.Floor().String(), "floor %v", tt.input)
		assert.Equal(t, tt.ceil, n.Ceiling().String(), "ceiling %v", tt.input)
		assert.Equal(t, tt.round, n.Round().String(), "round %v", tt.input)
		assert.Equal(t, tt.truncate, n.Truncate().String(), "truncate %v", tt.input)
	}
}

func TestModuloAndRemainderSigns(t *testing.T) {
	// modulo takes the divisor's sign, remainder the dividend's.
	tests := []struct {
		a, b          int64
		modulo, remdr string
	}{
		{7, 3, "1", "1"},
		{-7, 3, "2", "-1"},
		{7, -3, "-2", "1"},
		{-7, -3, "-1", "-1"},
	}

	for _, tt := range tests {
		a, b := FromInt64(tt.a), FromInt64(tt.b)
		m, err := a.Modulo(b)
		require.NoError(t, err)
		r, err := a.Remainder(b)
		require.NoError(t, err)
		assert.Equal(t, tt.modulo, m.String(), "modulo %d %d", tt.a, tt.b)
		assert.Equal(t, tt.remdr, r.String(), "remainder %d %d", tt.a, tt.b)
	}
}

func TestModuloByZero(t *testing.T) {
	_, err := FromInt64(1).Modulo(Zero())
	assert.Error(t, err)
	_, err = FromInt64(1).Remainder(Zero())
	assert.Error(t, err)
}

func TestQuotientIdentity(t *testing.T) {
	// n = (n quot m)*m + (n rem m) for a few sign combinations
	for _, pair := range [][2]int64{{17, 5}, {-17, 5}, {17, -5}, {-17, -5}} {
		n, m := FromInt64(pair[0]), FromInt64(pair[1])
		q, err := n.Div(m)
		require.NoError(t, err)
		r, err := n.Remainder(m)
		require.NoError(t, err)
		back := q.Truncate().Mul(m).Add(r)
		assert.True(t, back.Equal(n), "%d %d", pair[0], pair[1])
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	n := FromFloat64(12.5)
	l, err := n.Log()
	require.NoError(t, err)
	back := l.Exp()
	diff := back.Sub(n).Abs()
	assert.True(t, diff.Cmp(FromFloat64(1e-15)) < 0, "got %s", back)
}

func TestLogOfZero(t *testing.T) {
	_, err := Zero().Log()
	assert.Error(t, err)
}

func TestSqrtOfNegativeIsComplex(t *testing.T) {
	r := FromInt64(-4).Sqrt()
	assert.False(t, r.IsReal())
	assert.Equal(t, "0+2i", r.String())
}

func TestCmpAndEqual(t *testing.T) {
	assert.Equal(t, -1, FromInt64(1).Cmp(FromInt64(2)))
	assert.Equal(t, 0, FromInt64(2).Cmp(FromFloat64(2)))
	assert.Equal(t, 1, FromInt64(3).Cmp(FromInt64(2)))

	assert.True(t, FromComplex128(complex(1, 2)).Equal(FromComplex128(complex(1, 2))))
	assert.False(t, FromComplex128(complex(1, 2)).Equal(FromComplex128(complex(1, 3))))
}

func TestRadixString(t *testing.T) {
	n := FromInt64(255)
	assert.Equal(t, "ff", n.RadixString(16))
	assert.Equal(t, "377", n.RadixString(8))
	assert.Equal(t, "11111111", n.RadixString(2))
}

func TestComponents(t *testing.T) {
	n := FromComplex128(complex(3, -4))
	assert.Equal(t, "3", n.RealPart().String())
	assert.Equal(t, "-4", n.ImagPart().String())
	assert.True(t, n.RealPart().IsReal())
}

func mustDiv(t *testing.T, a, b *Complex) *Complex {
	t.Helper()
	r, err := a.Div(b)
	require.NoError(t, err)
	return r
}
