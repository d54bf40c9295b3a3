// Package checked provides overflow-checked integer arithmetic.
package checked

import "golang.org/x/exp/constraints"

// Add returns a + b and true if the sum overflows T.
func Add[T constraints.Signed](a, b T) (T, bool) {
	sum := a + b
	return sum, (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0)
}

// Sub returns a - b and true if the difference overflows T.
func Sub[T constraints.Signed](a, b T) (T, bool) {
	diff := a - b
	return diff, (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0)
}

// Mul returns a * b and true if the product overflows T.
func Mul[T constraints.Signed](a, b T) (T, bool) {
	switch {
	case a == 0 || b == 0:
		return 0, false
	case b == -1:
		return Neg(a)
	case a == -1:
		return Neg(b)
	}
	prod := a * b
	return prod, prod/b != a
}

// Neg returns -a and true if the negation overflows T, which happens only
// for the minimum value of T.
func Neg[T constraints.Signed](a T) (T, bool) {
	return -a, a != 0 && a == -a
}
