package types

import (
	"cmp"
	"fmt"
	"math"
	"time"

	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/temporal/calendar"
	"github.com/theory/pgtemporal/temporal/hash"
)

// TimestampTZ represents the PostgreSQL timestamp with time zone type: the
// number of microseconds since 2000-01-01 00:00:00 UTC. The offset is not
// stored; it applies only when parsing and formatting.
type TimestampTZ int64

const (
	// TimestampTZNoBegin is -infinity, earlier than every other timestamp.
	TimestampTZNoBegin TimestampTZ = math.MinInt64

	// TimestampTZNoEnd is infinity, later than every other timestamp.
	TimestampTZNoEnd TimestampTZ = math.MaxInt64
)

// ParseTimestampTZ parses src into a TimestampTZ rounded to precision p. It
// accepts the same input as ParseTimestamp plus a time zone offset or
// abbreviation. Input without a zone is read in cfg.Offset. Returns
// ErrParse for bad syntax and ErrRange for values outside the supported
// range or an invalid precision.
func ParseTimestampTZ(src string, p Precision, cfg Config) (TimestampTZ, error) {
	ts, err := parseTimestamp(src, p, true, cfg)
	return TimestampTZ(ts), err
}

// TimestampTZFromTime returns the TimestampTZ for the instant t, truncated
// to microseconds. Returns ErrRange if the result is out of range.
func TimestampTZFromTime(t time.Time) (TimestampTZ, error) {
	ts, over := checked.Mul(t.Unix()-unixEpochSecs, calendar.USecsPerSec)
	if !over {
		ts, over = checked.Add(ts, int64(t.Nanosecond()/1000))
	}
	if over || !IsValidTimestamp(ts) {
		return 0, errTimestampRange
	}
	return TimestampTZ(ts), nil
}

// IsFinite returns false if ts is infinity or -infinity.
func (ts TimestampTZ) IsFinite() bool {
	return ts != TimestampTZNoBegin && ts != TimestampTZNoEnd
}

// IsValid returns true if ts is finite and within the supported range.
func (ts TimestampTZ) IsValid() bool {
	return IsValidTimestamp(int64(ts))
}

// Format returns the text representation of ts at the offset and in the
// style and order of cfg. Returns ErrRange if ts cannot be decoded at the
// offset.
func (ts TimestampTZ) Format(cfg Config) (string, error) {
	b, err := ts.AppendFormat(make([]byte, 0, 40), cfg)
	return string(b), err
}

// AppendFormat is like Format but appends the text representation to b.
func (ts TimestampTZ) AppendFormat(b []byte, cfg Config) ([]byte, error) {
	switch ts {
	case TimestampTZNoBegin:
		return append(b, "-infinity"...), nil
	case TimestampTZNoEnd:
		return append(b, "infinity"...), nil
	}
	local, over := checked.Add(int64(ts), int64(cfg.Offset)*calendar.USecsPerSec)
	if over {
		return b, errTimestampRange
	}
	c, ok := microsToCivil(local)
	if !ok {
		return b, errTimestampRange
	}
	return encodeDateTime(b, c, true, cfg.Offset, cfg), nil
}

// String returns the ISO representation of ts in UTC, e.g.
// 2024-01-02 10:04:05+00.
func (ts TimestampTZ) String() string {
	s, err := ts.Format(Config{})
	if err != nil {
		return fmt.Sprintf("TimestampTZ(%d)", int64(ts))
	}
	return s
}

// Compare returns -1 if ts is before u, +1 if ts is after u, and 0 if
// they're the same.
func (ts TimestampTZ) Compare(u TimestampTZ) int {
	return cmp.Compare(ts, u)
}

// Hash returns the PostgreSQL hash of ts, the same as for an int8.
func (ts TimestampTZ) Hash() uint32 {
	return hash.Int64(int64(ts))
}

// HashExtended returns the seeded 64-bit PostgreSQL hash of ts.
func (ts TimestampTZ) HashExtended(seed uint64) uint64 {
	return hash.Int64Extended(int64(ts), seed)
}

// Round returns ts rounded to precision p. Returns ErrRange for an invalid
// precision.
func (ts TimestampTZ) Round(p Precision) (TimestampTZ, error) {
	v := int64(ts)
	if err := AdjustTimestampForTypmod(&v, p); err != nil {
		return ts, err
	}
	return TimestampTZ(v), nil
}

// AddInterval returns ts plus iv. Months are added first, clamping the day
// to the end of the resulting month, then days, then microseconds. The
// calendar fields are computed in UTC. Infinite timestamps are returned
// unchanged. Returns ErrRange if the result is out of range.
func (ts TimestampTZ) AddInterval(iv Interval) (TimestampTZ, error) {
	return addInterval(ts, iv)
}

// SubInterval returns ts minus iv, ts plus iv with every field negated.
func (ts TimestampTZ) SubInterval(iv Interval) (TimestampTZ, error) {
	return subInterval(ts, iv)
}

// Sub returns the justified interval from u to ts. Returns ErrDomain if
// either is infinite and ErrRange if the difference overflows.
func (ts TimestampTZ) Sub(u TimestampTZ) (Interval, error) {
	return difference(ts, u)
}

// ToTimestamp returns the local time of ts at the offset of cfg. Returns
// ErrRange if the result is out of range.
func (ts TimestampTZ) ToTimestamp(cfg Config) (Timestamp, error) {
	if !ts.IsFinite() {
		return Timestamp(ts), nil
	}
	res, over := checked.Add(int64(ts), int64(cfg.Offset)*calendar.USecsPerSec)
	if over || !IsValidTimestamp(res) {
		return 0, errTimestampRange
	}
	return Timestamp(res), nil
}

// ToDate returns the date of ts at the offset of cfg.
func (ts TimestampTZ) ToDate(cfg Config) (Date, error) {
	local, err := ts.ToTimestamp(cfg)
	if err != nil {
		return 0, err
	}
	return local.ToDate()
}

// Time returns ts as a time.Time in the location of cfg. Returns false if
// ts is infinite.
func (ts TimestampTZ) Time(cfg Config) (time.Time, bool) {
	if !ts.IsFinite() {
		return time.Time{}, false
	}
	return microsToTime(int64(ts)).In(cfg.Location()), true
}
