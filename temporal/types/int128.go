package types

import (
	"cmp"
	"math/bits"
	"strconv"
)

// Int128 is a signed 128-bit integer in two's complement.
type Int128 struct {
	hi int64
	lo uint64
}

// Int128From64 returns v widened to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// MulInt64 returns the full 128-bit product of a and b.
func MulInt64(a, b int64) Int128 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// Convert the unsigned high word to the signed product.
	if a < 0 {
		hi -= uint64(b)
	}
	if b < 0 {
		hi -= uint64(a)
	}
	return Int128{hi: int64(hi), lo: lo}
}

// Add returns x + y, wrapping on overflow.
func (x Int128) Add(y Int128) Int128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	return Int128{hi: x.hi + y.hi + int64(carry), lo: lo}
}

// Cmp returns -1 if x < y, 0 if x == y, and +1 if x > y.
func (x Int128) Cmp(y Int128) int {
	if c := cmp.Compare(x.hi, y.hi); c != 0 {
		return c
	}
	return cmp.Compare(x.lo, y.lo)
}

// Hi returns the high 64 bits of x.
func (x Int128) Hi() int64 { return x.hi }

// Lo returns the low 64 bits of x.
func (x Int128) Lo() uint64 { return x.lo }

// String returns the decimal representation of x.
func (x Int128) String() string {
	hi, lo := uint64(x.hi), x.lo
	neg := x.hi < 0
	if neg {
		// Two's complement negation of the magnitude.
		hi, lo = ^hi, ^lo+1
		if lo == 0 {
			hi++
		}
	}

	b := make([]byte, 0, 40)
	if neg {
		b = append(b, '-')
	}
	if hi == 0 {
		return string(strconv.AppendUint(b, lo, 10))
	}

	// hi is at most 1<<63, below the divisor, so the quotient fits.
	const tenTo19 = 10_000_000_000_000_000_000
	quo, rem := bits.Div64(hi, lo, tenTo19)
	b = strconv.AppendUint(b, quo, 10)
	digits := strconv.AppendUint(make([]byte, 0, 20), rem, 10)
	for i := len(digits); i < 19; i++ {
		b = append(b, '0')
	}
	return string(append(b, digits...))
}
