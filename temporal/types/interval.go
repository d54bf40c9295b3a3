package types

import (
	"math"
	"strconv"

	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/temporal/calendar"
	"github.com/theory/pgtemporal/temporal/hash"
	"github.com/theory/pgtemporal/temporal/parser"
)

// Interval represents the PostgreSQL interval type. Months, days, and
// microseconds are kept separate because months and days vary in length:
// they are never normalized into one another except by JustifyHours.
type Interval struct {
	Months int32
	Days   int32
	Micros int64
}

//nolint:gochecknoglobals
var (
	// IntervalNoBegin is the -infinity interval, with every field at its
	// minimum.
	IntervalNoBegin = Interval{math.MinInt32, math.MinInt32, math.MinInt64}

	// IntervalNoEnd is the infinity interval, with every field at its
	// maximum.
	IntervalNoEnd = Interval{math.MaxInt32, math.MaxInt32, math.MaxInt64}
)

// ParseInterval parses src into an Interval. It accepts the PostgreSQL
// "postgres" interval syntax, such as "1 year 2 mons 3 days 04:05:06.789",
// "@ 1 day ago", or "-1 days +02:00:00", as well as infinity, -infinity,
// and epoch. Returns ErrParse for bad syntax and ErrRange for fields out of
// range.
func ParseInterval(src string) (Interval, error) {
	f, err := parser.ParseInterval(src)
	if err != nil {
		return Interval{}, parseError(err, "interval", src)
	}
	return Interval{Months: f.Months, Days: f.Days, Micros: f.Micros}, nil
}

// IsFinite returns false for IntervalNoBegin and IntervalNoEnd.
func (iv Interval) IsFinite() bool {
	return iv != IntervalNoBegin && iv != IntervalNoEnd
}

// Add returns the field-wise sum of iv and u. Returns ErrRange if any field
// overflows.
func (iv Interval) Add(u Interval) (Interval, error) {
	months, over1 := checked.Add(iv.Months, u.Months)
	days, over2 := checked.Add(iv.Days, u.Days)
	micros, over3 := checked.Add(iv.Micros, u.Micros)
	if over1 || over2 || over3 {
		return Interval{}, errIntervalRange
	}
	return Interval{months, days, micros}, nil
}

// Sub returns the field-wise difference of iv and u. Returns ErrRange if
// any field overflows.
func (iv Interval) Sub(u Interval) (Interval, error) {
	months, over1 := checked.Sub(iv.Months, u.Months)
	days, over2 := checked.Sub(iv.Days, u.Days)
	micros, over3 := checked.Sub(iv.Micros, u.Micros)
	if over1 || over2 || over3 {
		return Interval{}, errIntervalRange
	}
	return Interval{months, days, micros}, nil
}

// Neg returns iv with every field negated. Returns ErrRange if any field
// is at its minimum value.
func (iv Interval) Neg() (Interval, error) {
	months, over1 := checked.Neg(iv.Months)
	days, over2 := checked.Neg(iv.Days)
	micros, over3 := checked.Neg(iv.Micros)
	if over1 || over2 || over3 {
		return Interval{}, errIntervalRange
	}
	return Interval{months, days, micros}, nil
}

// JustifyHours moves whole days out of the microseconds into the days,
// leaving less than a day of microseconds with the same sign as the days.
// Returns ErrRange if the days overflow.
func (iv Interval) JustifyHours() (Interval, error) {
	wholeDays := iv.Micros / calendar.USecsPerDay
	micros := iv.Micros % calendar.USecsPerDay

	days, over := checked.Add(int64(iv.Days), wholeDays)
	if over || days > math.MaxInt32 || days < math.MinInt32 {
		return Interval{}, errIntervalRange
	}

	switch {
	case days > 0 && micros < 0:
		micros += calendar.USecsPerDay
		days--
	case days < 0 && micros > 0:
		micros -= calendar.USecsPerDay
		days++
	}

	return Interval{Months: iv.Months, Days: int32(days), Micros: micros}, nil
}

// linear returns iv as a 128-bit count of microseconds, assuming 30-day
// months and 24-hour days.
func (iv Interval) linear() Int128 {
	dayFraction := iv.Micros % calendar.USecsPerDay
	days := iv.Micros / calendar.USecsPerDay
	days += int64(iv.Months) * calendar.DaysPerMonth
	days += int64(iv.Days)
	return Int128From64(dayFraction).Add(MulInt64(days, calendar.USecsPerDay))
}

// Compare returns -1 if iv is shorter than u, +1 if iv is longer than u, and
// 0 if they're the same length, assuming 30-day months and 24-hour days.
// Thus 1 mon compares equal to 30 days, even though adding them to a
// timestamp may produce different results.
func (iv Interval) Compare(u Interval) int {
	return iv.linear().Cmp(u.linear())
}

// Equal returns true if iv and u have the same length as defined by
// Compare.
func (iv Interval) Equal(u Interval) bool {
	return iv.Compare(u) == 0
}

// Hash returns the PostgreSQL hash of iv. Intervals that compare as equal
// have the same hash.
func (iv Interval) Hash() uint32 {
	return hash.Int64(int64(iv.linear().Lo()))
}

// HashExtended returns the seeded 64-bit PostgreSQL hash of iv.
func (iv Interval) HashExtended(seed uint64) uint64 {
	return hash.Int64Extended(int64(iv.linear().Lo()), seed)
}

// Format returns the text representation of iv in the PostgreSQL
// "postgres" IntervalStyle, e.g. "1 year 2 mons 3 days 04:05:06.789".
func (iv Interval) Format() string {
	return string(iv.AppendFormat(make([]byte, 0, 48)))
}

// AppendFormat is like Format but appends the text representation to b.
func (iv Interval) AppendFormat(b []byte) []byte {
	switch iv {
	case IntervalNoBegin:
		return append(b, "-infinity"...)
	case IntervalNoEnd:
		return append(b, "infinity"...)
	}

	micros := iv.Micros
	hour := micros / calendar.USecsPerHour
	micros -= hour * calendar.USecsPerHour
	minute := micros / calendar.USecsPerMinute
	micros -= minute * calendar.USecsPerMinute
	sec := micros / calendar.USecsPerSec
	fsec := micros - sec*calendar.USecsPerSec

	p := intervalPrinter{buf: b, isZero: true}
	p.part(int64(iv.Months/calendar.MonthsPerYear), "year")
	p.part(int64(iv.Months%calendar.MonthsPerYear), "mon")
	p.part(int64(iv.Days), "day")
	b = p.buf

	if p.isZero || hour != 0 || minute != 0 || sec != 0 || fsec != 0 {
		if !p.isZero {
			b = append(b, ' ')
		}
		if hour < 0 || minute < 0 || sec < 0 || fsec < 0 {
			b = append(b, '-')
		} else if p.isBefore {
			b = append(b, '+')
		}
		b = appendZeroPad(b, abs(hour), 2)
		b = append(b, ':')
		b = appendZeroPad(b, abs(minute), 2)
		b = append(b, ':')
		b = appendSeconds(b, int(sec), fsec)
	}
	return b
}

// String returns the text representation of iv.
func (iv Interval) String() string {
	return iv.Format()
}

// intervalPrinter appends the date parts of an interval.
type intervalPrinter struct {
	buf      []byte
	isZero   bool
	isBefore bool
}

// part appends a nonzero value with its units, pluralized. A value
// following a negative value gets an explicit plus sign.
func (p *intervalPrinter) part(value int64, units string) {
	if value == 0 {
		return
	}
	if !p.isZero {
		p.buf = append(p.buf, ' ')
	}
	if p.isBefore && value > 0 {
		p.buf = append(p.buf, '+')
	}
	p.buf = strconv.AppendInt(p.buf, value, 10)
	p.buf = append(p.buf, ' ')
	p.buf = append(p.buf, units...)
	if value != 1 {
		p.buf = append(p.buf, 's')
	}
	p.isBefore = value < 0
	p.isZero = false
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
