package types

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/temporal/calendar"
	"github.com/theory/pgtemporal/temporal/hash"
	"github.com/theory/pgtemporal/temporal/parser"
)

// Date represents the PostgreSQL date type: the number of days since
// 2000-01-01.
type Date int32

const (
	// DateNoBegin is -infinity, earlier than every other date.
	DateNoBegin Date = math.MinInt32

	// DateNoEnd is infinity, later than every other date.
	DateNoEnd Date = math.MaxInt32

	// MinDate is the earliest finite date, 4714-11-24 BC.
	MinDate Date = -calendar.PostgresEpochJDate

	// EndDate is one past the latest finite date, 5874898-01-01.
	EndDate Date = calendar.DateEndJulian - calendar.PostgresEpochJDate

	// epochDate is 1970-01-01.
	epochDate Date = calendar.UnixEpochJDate - calendar.PostgresEpochJDate
)

// ParseDate parses src into a Date. It accepts a calendar date in any of the
// formats PostgreSQL accepts, with an optional time that is ignored, as
// well as epoch, infinity, -infinity, now, today, tomorrow, and yesterday.
// Ambiguous numeric dates are read in cfg.Order, and cfg.Clock resolves the
// relative keywords. Returns ErrParse for bad syntax and ErrRange for dates
// outside the supported range.
func ParseDate(src string, cfg Config) (Date, error) {
	f, err := parser.ParseDateTime(src, cfg.parserOptions())
	if err != nil {
		return 0, parseError(err, "date", src)
	}

	switch f.Kind {
	case parser.KindLate:
		return DateNoEnd, nil
	case parser.KindEarly:
		return DateNoBegin, nil
	case parser.KindEpoch:
		return epochDate, nil
	case parser.KindDate:
	}

	d, err := DateFromCivil(f.Year, f.Month, f.Day)
	if err != nil {
		return 0, outOfRange("date", src)
	}
	return d, nil
}

// DateFromCivil returns the Date for the proleptic Gregorian year, month,
// and day. Years before 1 AD are astronomical: 0 is 1 BC. Returns ErrRange
// if the date is invalid or out of range.
func DateFromCivil(year, month, day int) (Date, error) {
	jd, err := calendar.DaysFromCivil(year, month, day)
	if err != nil {
		return 0, err
	}
	d := Date(jd - calendar.PostgresEpochJDate)
	if !d.IsValid() {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d", errDateRange, year, month, day)
	}
	return d, nil
}

// DateFromTime returns the Date of the year, month, and day of t in its
// location.
func DateFromTime(t time.Time) (Date, error) {
	year, month, day := t.Date()
	return DateFromCivil(year, int(month), day)
}

// IsFinite returns false if d is infinity or -infinity.
func (d Date) IsFinite() bool {
	return d != DateNoBegin && d != DateNoEnd
}

// IsValid returns true if d is a finite date within the supported range.
func (d Date) IsValid() bool {
	return MinDate <= d && d < EndDate
}

// Civil returns the proleptic Gregorian year, month, and day of d. The
// result is meaningless unless d is valid.
func (d Date) Civil() (year, month, day int) {
	return calendar.CivilFromDays(int(d) + calendar.PostgresEpochJDate)
}

// Format returns the text representation of d in the style and order of
// cfg. Returns ErrRange if d is neither infinite nor valid.
func (d Date) Format(cfg Config) (string, error) {
	b, err := d.AppendFormat(make([]byte, 0, 16), cfg)
	return string(b), err
}

// AppendFormat is like Format but appends the text representation to b.
func (d Date) AppendFormat(b []byte, cfg Config) ([]byte, error) {
	switch {
	case d == DateNoBegin:
		return append(b, "-infinity"...), nil
	case d == DateNoEnd:
		return append(b, "infinity"...), nil
	case !d.IsValid():
		return b, errDateRange
	}
	var c civil
	c.year, c.month, c.day = d.Civil()
	return encodeDateOnly(b, c, cfg), nil
}

// String returns the ISO representation of d, e.g. 2024-01-02.
func (d Date) String() string {
	s, err := d.Format(Config{})
	if err != nil {
		return fmt.Sprintf("Date(%d)", int32(d))
	}
	return s
}

// Compare returns -1 if d is before u, +1 if d is after u, and 0 if they're
// the same.
func (d Date) Compare(u Date) int {
	return cmp.Compare(d, u)
}

// Hash returns the PostgreSQL hash of d, the same as for an int4.
func (d Date) Hash() uint32 {
	return hash.Int32(int32(d))
}

// HashExtended returns the seeded 64-bit PostgreSQL hash of d.
func (d Date) HashExtended(seed uint64) uint64 {
	return hash.Int32Extended(int32(d), seed)
}

// AddDays returns d plus days days. Infinite dates are returned unchanged.
// Returns ErrRange if the result is out of range.
func (d Date) AddDays(days int32) (Date, error) {
	if !d.IsFinite() {
		return d, nil
	}
	res, over := checked.Add(int32(d), days)
	if over || !Date(res).IsValid() {
		return 0, errDateRange
	}
	return Date(res), nil
}

// Sub returns the number of days from u to d. Returns ErrDomain if either
// is infinite and ErrRange if the difference overflows.
func (d Date) Sub(u Date) (int32, error) {
	if !d.IsFinite() || !u.IsFinite() {
		return 0, fmt.Errorf("%w: cannot subtract infinite dates", ErrDomain)
	}
	days, over := checked.Sub(int32(d), int32(u))
	if over {
		return 0, errDateRange
	}
	return days, nil
}

// ToTimestamp returns d as a timestamp at midnight. Returns ErrRange if d is
// too late for a timestamp.
func (d Date) ToTimestamp() (Timestamp, error) {
	switch {
	case d == DateNoBegin:
		return TimestampNoBegin, nil
	case d == DateNoEnd:
		return TimestampNoEnd, nil
	case d >= calendar.TimestampEndJulian-calendar.PostgresEpochJDate:
		return 0, fmt.Errorf("%w: date out of range for timestamp", ErrRange)
	}
	return Timestamp(int64(d) * calendar.USecsPerDay), nil
}

// ToTimestampTZ returns d as a timestamp with time zone at midnight in the
// offset of cfg. Returns ErrRange if the result is out of range.
func (d Date) ToTimestampTZ(cfg Config) (TimestampTZ, error) {
	ts, err := d.ToTimestamp()
	if err != nil {
		return 0, err
	}
	return ts.ToTimestampTZ(cfg)
}

// AddInterval returns the timestamp at midnight of d plus iv.
func (d Date) AddInterval(iv Interval) (Timestamp, error) {
	ts, err := d.ToTimestamp()
	if err != nil {
		return 0, err
	}
	return ts.AddInterval(iv)
}

// SubInterval returns the timestamp at midnight of d minus iv.
func (d Date) SubInterval(iv Interval) (Timestamp, error) {
	ts, err := d.ToTimestamp()
	if err != nil {
		return 0, err
	}
	return ts.SubInterval(iv)
}

// Time returns d as a time.Time at midnight UTC. Returns false if d is
// infinite.
func (d Date) Time() (time.Time, bool) {
	if !d.IsFinite() {
		return time.Time{}, false
	}
	year, month, day := d.Civil()
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
