// Package types provides PostgreSQL-compatible date, timestamp, and interval
// types.
//
// It makes every effort to duplicate the behavior of the PostgreSQL date,
// timestamp, timestamptz, and interval types: the same input syntax, the
// same output for every DateStyle, the same calendar arithmetic, and the
// same overflow checks. Values are plain integers and structs: a [Date] is
// a count of days since 2000-01-01, a [Timestamp] or [TimestampTZ] is a
// count of microseconds since 2000-01-01 00:00:00, and an [Interval] holds
// months, days, and microseconds separately.
//
// Formatting and parsing take a [Config] that carries the DateStyle, the
// date field order, and the session UTC offset, rather than reading them
// from global state.
package types

import (
	"errors"
	"fmt"

	"github.com/theory/pgtemporal/temporal/dterr"
	"github.com/theory/pgtemporal/temporal/parser"
)

var (
	// ErrParse wraps errors for malformed literals.
	ErrParse = dterr.ErrParse

	// ErrRange wraps errors for values outside the representable range.
	ErrRange = dterr.ErrRange

	// ErrDomain wraps errors for operations undefined for their operands.
	ErrDomain = dterr.ErrDomain

	// ErrScan wraps scanning and unmarshaling errors.
	ErrScan = errors.New("scan")
)

// DateTime defines the interface for the date and timestamp types.
type DateTime interface {
	// IsFinite returns false for the infinity and -infinity values.
	IsFinite() bool

	// Format returns the text representation for the DateStyle and offset
	// in cfg.
	Format(cfg Config) (string, error)

	// String returns the text representation for DefaultConfig.
	String() string
}

// parseError converts an error from the parser into an error reporting src
// and typeName.
func parseError(err error, typeName, src string) error {
	switch {
	case errors.Is(err, parser.ErrFieldOverflow), errors.Is(err, parser.ErrMDFieldOverflow):
		return dterr.FieldOverflow(src)
	case errors.Is(err, parser.ErrIntervalOverflow):
		return dterr.IntervalOverflow(src)
	case errors.Is(err, parser.ErrTZDispOverflow):
		return dterr.ZoneOverflow(src)
	default:
		return dterr.BadFormat(typeName, src)
	}
}

// outOfRange returns an ErrRange error reporting that the value of src
// cannot be represented by typeName.
func outOfRange(typeName, src string) error {
	return fmt.Errorf("%w: %v out of range: %q", ErrRange, typeName, src)
}

// Errors reporting arithmetic results out of range.
var (
	errDateRange      = fmt.Errorf("%w: date out of range", ErrRange)
	errTimestampRange = fmt.Errorf("%w: timestamp out of range", ErrRange)
	errIntervalRange  = fmt.Errorf("%w: interval out of range", ErrRange)
)
