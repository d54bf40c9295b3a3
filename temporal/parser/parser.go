// Package parser tokenizes and decodes PostgreSQL date, time, timestamp, and
// interval literals.
//
// Parsing happens in two steps, following the PostgreSQL datetime input
// routines. [Lex] breaks the input into typed fields: numbers, words, dates
// with embedded separators, times with embedded colons, and signed values.
// [DecodeDateTime] and [DecodeInterval] then interpret those fields,
// applying the heuristics PostgreSQL uses to decide which field is the year,
// month, or day.
//
// The decoders return civil fields, not values: the types package converts
// them to dates, timestamps, and intervals and performs the final range
// checks.
package parser

import (
	"fmt"

	"github.com/theory/pgtemporal/temporal/dterr"
)

// Errors returned by the lexer and decoders. Each wraps one of the dterr
// kinds; callers add the input string and type name.
var (
	// ErrBadFormat indicates input that cannot be parsed.
	ErrBadFormat = fmt.Errorf("%w: bad format", dterr.ErrParse)

	// ErrFieldOverflow indicates a date or time field out of range.
	ErrFieldOverflow = fmt.Errorf("%w: field overflow", dterr.ErrRange)

	// ErrMDFieldOverflow indicates a month or day field out of range,
	// possibly because of the configured field order.
	ErrMDFieldOverflow = fmt.Errorf("%w: month or day field overflow", dterr.ErrRange)

	// ErrIntervalOverflow indicates an interval field out of range.
	ErrIntervalOverflow = fmt.Errorf("%w: interval field overflow", dterr.ErrRange)

	// ErrTZDispOverflow indicates a time zone displacement out of range.
	ErrTZDispOverflow = fmt.Errorf("%w: time zone displacement overflow", dterr.ErrRange)
)

// Order defines the order of the year, month, and day fields in ambiguous
// numeric dates such as 01/02/03.
type Order int

const (
	// OrderMDY reads ambiguous dates as month, day, year. The default.
	OrderMDY Order = iota

	// OrderYMD reads ambiguous dates as year, month, day.
	OrderYMD

	// OrderDMY reads ambiguous dates as day, month, year.
	OrderDMY
)

// String returns the PostgreSQL DateStyle name of o.
func (o Order) String() string {
	switch o {
	case OrderYMD:
		return "YMD"
	case OrderDMY:
		return "DMY"
	case OrderMDY:
		return "MDY"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}
