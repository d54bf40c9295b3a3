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

// Timestamp represents the PostgreSQL timestamp without time zone type:
// the number of microseconds since 2000-01-01 00:00:00 in an unspecified
// time zone.
type Timestamp int64

const (
	// TimestampNoBegin is -infinity, earlier than every other timestamp.
	TimestampNoBegin Timestamp = math.MinInt64

	// TimestampNoEnd is infinity, later than every other timestamp.
	TimestampNoEnd Timestamp = math.MaxInt64

	// MinTimestamp is the earliest finite timestamp, 4714-11-24 00:00:00 BC.
	MinTimestamp int64 = -211813488000000000

	// EndTimestamp is one past the latest finite timestamp,
	// 294277-01-01 00:00:00.
	EndTimestamp int64 = 9223371331200000000

	// epochTimestamp is 1970-01-01 00:00:00.
	epochTimestamp int64 = -946684800000000

	// unixEpochSecs is the number of seconds from 1970-01-01 to 2000-01-01.
	unixEpochSecs = (calendar.PostgresEpochJDate - calendar.UnixEpochJDate) * calendar.SecsPerDay
)

// IsValidTimestamp returns true if the microsecond timestamp ts is finite
// and within the supported range.
func IsValidTimestamp(ts int64) bool {
	return MinTimestamp <= ts && ts < EndTimestamp
}

// ParseTimestamp parses src into a Timestamp rounded to precision p. It
// accepts a date and time in any of the formats PostgreSQL accepts, as well
// as epoch, infinity, -infinity, now, today, tomorrow, and yesterday. A time
// zone in src is ignored. Returns ErrParse for bad syntax and ErrRange for
// values outside the supported range or an invalid precision.
func ParseTimestamp(src string, p Precision, cfg Config) (Timestamp, error) {
	ts, err := parseTimestamp(src, p, false, cfg)
	return Timestamp(ts), err
}

// parseTimestamp parses src into microseconds since 2000-01-01 00:00:00.
// When withTZ is true it subtracts the offset parsed from src, or
// cfg.Offset if src has none, to produce a UTC instant.
func parseTimestamp(src string, p Precision, withTZ bool, cfg Config) (int64, error) {
	typeName := "timestamp"
	if withTZ {
		typeName = "timestamp with time zone"
	}

	f, err := parser.ParseDateTime(src, cfg.parserOptions())
	if err != nil {
		return 0, parseError(err, typeName, src)
	}

	var ts int64
	switch f.Kind {
	case parser.KindLate:
		ts = math.MaxInt64
	case parser.KindEarly:
		ts = math.MinInt64
	case parser.KindEpoch:
		ts = epochTimestamp
	case parser.KindDate:
		offset := 0
		if withTZ {
			offset = cfg.Offset
			if f.HasOffset {
				offset = f.Offset
			}
		}
		c := civil{f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Fsec}
		var ok bool
		if ts, ok = civilToMicros(c, offset); !ok {
			return 0, outOfRange("timestamp", src)
		}
	}

	if err := AdjustTimestampForTypmod(&ts, p); err != nil {
		return 0, err
	}
	return ts, nil
}

// civilToMicros converts c, a local time at offset seconds east of
// Greenwich, to microseconds since 2000-01-01 00:00:00 UTC. Returns false
// if the result is out of range.
func civilToMicros(c civil, offset int) (int64, bool) {
	if !calendar.IsValidJulian(c.year, c.month, c.day) {
		return 0, false
	}
	date := int64(calendar.Date2J(c.year, c.month, c.day) - calendar.PostgresEpochJDate)
	tod := ((int64(c.hour)*calendar.MinsPerHour+int64(c.minute))*calendar.SecsPerMinute+int64(c.second))*calendar.USecsPerSec + c.fsec

	ts, over := checked.Mul(date, calendar.USecsPerDay)
	if over {
		return 0, false
	}
	if ts, over = checked.Add(ts, tod); over {
		return 0, false
	}
	if ts, over = checked.Sub(ts, int64(offset)*calendar.USecsPerSec); over {
		return 0, false
	}
	return ts, IsValidTimestamp(ts)
}

// microsToCivil converts microseconds since 2000-01-01 00:00:00 to civil
// fields. Returns false if the Julian day of ts is out of range.
func microsToCivil(ts int64) (civil, bool) {
	date := ts / calendar.USecsPerDay
	tod := ts % calendar.USecsPerDay
	if tod < 0 {
		tod += calendar.USecsPerDay
		date--
	}

	date += calendar.PostgresEpochJDate
	if date < 0 || date > math.MaxInt32 {
		return civil{}, false
	}

	var c civil
	c.year, c.month, c.day = calendar.CivilFromDays(int(date))
	c.hour = int(tod / calendar.USecsPerHour)
	tod -= int64(c.hour) * calendar.USecsPerHour
	c.minute = int(tod / calendar.USecsPerMinute)
	tod -= int64(c.minute) * calendar.USecsPerMinute
	c.second = int(tod / calendar.USecsPerSec)
	c.fsec = tod - int64(c.second)*calendar.USecsPerSec
	return c, true
}

// TimestampFromCivil returns the Timestamp for the proleptic Gregorian date
// and time of day. Returns ErrRange if the result is out of range.
func TimestampFromCivil(year, month, day, hour, minute, sec int, usec int64) (Timestamp, error) {
	ts, ok := civilToMicros(civil{year, month, day, hour, minute, sec, usec}, 0)
	if !ok {
		return 0, errTimestampRange
	}
	return Timestamp(ts), nil
}

// TimestampFromTime returns the Timestamp for the wall clock date and time
// of t in its location, truncated to microseconds.
func TimestampFromTime(t time.Time) (Timestamp, error) {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return TimestampFromCivil(year, int(month), day, hour, minute, sec, int64(t.Nanosecond()/1000))
}

// IsFinite returns false if ts is infinity or -infinity.
func (ts Timestamp) IsFinite() bool {
	return ts != TimestampNoBegin && ts != TimestampNoEnd
}

// IsValid returns true if ts is finite and within the supported range.
func (ts Timestamp) IsValid() bool {
	return IsValidTimestamp(int64(ts))
}

// Format returns the text representation of ts in the style and order of
// cfg. Returns ErrRange if ts cannot be decoded.
func (ts Timestamp) Format(cfg Config) (string, error) {
	b, err := ts.AppendFormat(make([]byte, 0, 32), cfg)
	return string(b), err
}

// AppendFormat is like Format but appends the text representation to b.
func (ts Timestamp) AppendFormat(b []byte, cfg Config) ([]byte, error) {
	switch ts {
	case TimestampNoBegin:
		return append(b, "-infinity"...), nil
	case TimestampNoEnd:
		return append(b, "infinity"...), nil
	}
	c, ok := microsToCivil(int64(ts))
	if !ok {
		return b, errTimestampRange
	}
	return encodeDateTime(b, c, false, 0, cfg), nil
}

// String returns the ISO representation of ts, e.g. 2024-01-02 10:04:05.
func (ts Timestamp) String() string {
	s, err := ts.Format(Config{})
	if err != nil {
		return fmt.Sprintf("Timestamp(%d)", int64(ts))
	}
	return s
}

// Compare returns -1 if ts is before u, +1 if ts is after u, and 0 if
// they're the same.
func (ts Timestamp) Compare(u Timestamp) int {
	return cmp.Compare(ts, u)
}

// Hash returns the PostgreSQL hash of ts, the same as for an int8.
func (ts Timestamp) Hash() uint32 {
	return hash.Int64(int64(ts))
}

// HashExtended returns the seeded 64-bit PostgreSQL hash of ts.
func (ts Timestamp) HashExtended(seed uint64) uint64 {
	return hash.Int64Extended(int64(ts), seed)
}

// Round returns ts rounded to precision p. Returns ErrRange for an invalid
// precision.
func (ts Timestamp) Round(p Precision) (Timestamp, error) {
	v := int64(ts)
	if err := AdjustTimestampForTypmod(&v, p); err != nil {
		return ts, err
	}
	return Timestamp(v), nil
}

// AddInterval returns ts plus iv. Months are added first, clamping the day
// to the end of the resulting month, then days, then microseconds.
// Infinite timestamps are returned unchanged. Returns ErrRange if the
// result is out of range.
func (ts Timestamp) AddInterval(iv Interval) (Timestamp, error) {
	return addInterval(ts, iv)
}

// SubInterval returns ts minus iv, ts plus iv with every field negated.
func (ts Timestamp) SubInterval(iv Interval) (Timestamp, error) {
	return subInterval(ts, iv)
}

// Sub returns the justified interval from u to ts. Returns ErrDomain if
// either is infinite and ErrRange if the difference overflows.
func (ts Timestamp) Sub(u Timestamp) (Interval, error) {
	return difference(ts, u)
}

// ToDate returns the date of ts.
func (ts Timestamp) ToDate() (Date, error) {
	switch ts {
	case TimestampNoBegin:
		return DateNoBegin, nil
	case TimestampNoEnd:
		return DateNoEnd, nil
	}
	c, ok := microsToCivil(int64(ts))
	if !ok {
		return 0, errTimestampRange
	}
	return DateFromCivil(c.year, c.month, c.day)
}

// ToTimestampTZ interprets ts as a local time at the offset of cfg and
// returns the corresponding instant. Returns ErrRange if the result is out
// of range.
func (ts Timestamp) ToTimestampTZ(cfg Config) (TimestampTZ, error) {
	if !ts.IsFinite() {
		return TimestampTZ(ts), nil
	}
	res, over := checked.Sub(int64(ts), int64(cfg.Offset)*calendar.USecsPerSec)
	if over || !IsValidTimestamp(res) {
		return 0, errTimestampRange
	}
	return TimestampTZ(res), nil
}

// Time returns ts as a time.Time in UTC. Returns false if ts is infinite.
func (ts Timestamp) Time() (time.Time, bool) {
	if !ts.IsFinite() {
		return time.Time{}, false
	}
	return microsToTime(int64(ts)), true
}

// microsToTime converts microseconds since 2000-01-01 00:00:00 UTC to a
// time.Time in UTC.
func microsToTime(ts int64) time.Time {
	sec := ts / calendar.USecsPerSec
	usec := ts % calendar.USecsPerSec
	if usec < 0 {
		usec += calendar.USecsPerSec
		sec--
	}
	return time.Unix(sec+unixEpochSecs, usec*1000).UTC()
}
