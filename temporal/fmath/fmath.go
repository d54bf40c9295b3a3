// Package fmath provides the PostgreSQL float8 trigonometric functions
// sin(), cos(), atan(), and atan2(). They differ from the math package in
// how they treat special values: NaN inputs always produce NaN, infinite
// inputs to Sin and Cos are errors, and infinite results are errors.
package fmath

import (
	"fmt"
	"math"

	"github.com/theory/pgtemporal/temporal/dterr"
)

var (
	// ErrInput indicates an input outside the domain of a function.
	ErrInput = fmt.Errorf("%w: input is out of range", dterr.ErrRange)

	// ErrOverflow indicates an infinite result.
	ErrOverflow = fmt.Errorf("%w: value out of range: overflow", dterr.ErrRange)
)

// Sin returns the sine of the radian argument x. Returns ErrInput if x is
// infinite.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/float.c
func Sin(x float64) (float64, error) {
	return periodic(math.Sin, x)
}

// Cos returns the cosine of the radian argument x. Returns ErrInput if x
// is infinite.
func Cos(x float64) (float64, error) {
	return periodic(math.Cos, x)
}

// Atan returns the arctangent, in radians, of x.
func Atan(x float64) (float64, error) {
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	return finite(math.Atan(x))
}

// Atan2 returns the arctangent of y/x in radians, using the signs of the
// two to determine the quadrant. Returns NaN if either is NaN.
func Atan2(y, x float64) (float64, error) {
	if math.IsNaN(y) || math.IsNaN(x) {
		return math.NaN(), nil
	}
	return finite(math.Atan2(y, x))
}

func periodic(fn func(float64) float64, x float64) (float64, error) {
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	if math.IsInf(x, 0) {
		return 0, ErrInput
	}
	return finite(fn(x))
}

func finite(res float64) (float64, error) {
	if math.IsInf(res, 0) {
		return 0, ErrOverflow
	}
	return res, nil
}
