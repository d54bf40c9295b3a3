// Package dterr defines the error kinds reported by the pgtemporal packages.
//
// Every failure is one of three kinds, each identified by a sentinel error
// that callers test with [errors.Is]:
//
//   - [ErrParse]: the input literal is malformed.
//   - [ErrRange]: the input is well-formed but its value cannot be
//     represented.
//   - [ErrDomain]: the operation is undefined for the given values, such as
//     the difference between an infinite and a finite timestamp.
package dterr

import (
	"errors"
	"fmt"
)

var (
	// ErrParse wraps errors for malformed date, time, and interval literals.
	ErrParse = errors.New("parse")

	// ErrRange wraps errors for values outside the representable range.
	ErrRange = errors.New("range")

	// ErrDomain wraps errors for operations undefined for their operands.
	ErrDomain = errors.New("domain")
)

// Kind identifies the kind of an error returned by pgtemporal.
type Kind int

const (
	// KindNone indicates a nil error or one not raised by pgtemporal.
	KindNone Kind = iota

	// KindParse indicates an [ErrParse] error.
	KindParse

	// KindRange indicates an [ErrRange] error.
	KindRange

	// KindDomain indicates an [ErrDomain] error.
	KindDomain
)

//nolint:gochecknoglobals
var kindNames = [...]string{
	KindNone:   "none",
	KindParse:  "parse",
	KindRange:  "range",
	KindDomain: "domain",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindOf returns the Kind of err.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrRange):
		return KindRange
	case errors.Is(err, ErrDomain):
		return KindDomain
	default:
		return KindNone
	}
}

// BadFormat returns an ErrParse error for src, which could not be parsed as
// a value of type typeName.
func BadFormat(typeName, src string) error {
	return fmt.Errorf(
		"%w: invalid input syntax for type %v: %q",
		ErrParse, typeName, src,
	)
}

// FieldOverflow returns an ErrRange error for src, which contains a
// date/time field value out of range.
func FieldOverflow(src string) error {
	return fmt.Errorf("%w: date/time field value out of range: %q", ErrRange, src)
}

// IntervalOverflow returns an ErrRange error for src, which contains an
// interval field value out of range.
func IntervalOverflow(src string) error {
	return fmt.Errorf("%w: interval field value out of range: %q", ErrRange, src)
}

// ZoneOverflow returns an ErrRange error for src, which contains a time zone
// displacement out of range.
func ZoneOverflow(src string) error {
	return fmt.Errorf("%w: time zone displacement out of range: %q", ErrRange, src)
}
