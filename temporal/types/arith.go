package types

import (
	"fmt"
	"math"

	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/temporal/calendar"
)

// instant constrains the microsecond timestamp types.
type instant interface {
	~int64
}

func isFiniteMicros(v int64) bool {
	return v != math.MinInt64 && v != math.MaxInt64
}

// addInterval adds iv to ts: months first, clamping the day of the month,
// then days, then microseconds. Infinite timestamps absorb any interval.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c
func addInterval[T instant](ts T, iv Interval) (T, error) {
	v := int64(ts)
	if !isFiniteMicros(v) {
		return ts, nil
	}

	if iv.Months != 0 {
		c, ok := microsToCivil(v)
		if !ok {
			return ts, errTimestampRange
		}
		mon := c.month + int(iv.Months)
		switch {
		case mon > calendar.MonthsPerYear:
			c.year += (mon - 1) / calendar.MonthsPerYear
			c.month = (mon-1)%calendar.MonthsPerYear + 1
		case mon < 1:
			c.year += mon/calendar.MonthsPerYear - 1
			c.month = mon%calendar.MonthsPerYear + calendar.MonthsPerYear
		default:
			c.month = mon
		}
		if dim := calendar.DaysInMonth(c.year, c.month); c.day > dim {
			c.day = dim
		}
		if v, ok = civilToMicros(c, 0); !ok {
			return ts, errTimestampRange
		}
	}

	if iv.Days != 0 {
		c, ok := microsToCivil(v)
		if !ok {
			return ts, errTimestampRange
		}
		jd := int64(calendar.Date2J(c.year, c.month, c.day)) + int64(iv.Days)
		if jd < 0 || jd > math.MaxInt32 {
			return ts, errTimestampRange
		}
		c.year, c.month, c.day = calendar.CivilFromDays(int(jd))
		if v, ok = civilToMicros(c, 0); !ok {
			return ts, errTimestampRange
		}
	}

	v, over := checked.Add(v, iv.Micros)
	if over || !IsValidTimestamp(v) {
		return ts, errTimestampRange
	}
	return T(v), nil
}

// subInterval adds the negation of iv to ts.
func subInterval[T instant](ts T, iv Interval) (T, error) {
	neg, err := iv.Neg()
	if err != nil {
		return ts, err
	}
	return addInterval(ts, neg)
}

// difference returns a minus b as an interval of days and microseconds
// with whole days justified out of the microseconds.
func difference[T instant](a, b T) (Interval, error) {
	if !isFiniteMicros(int64(a)) || !isFiniteMicros(int64(b)) {
		return Interval{}, fmt.Errorf("%w: cannot subtract infinite timestamps", ErrDomain)
	}
	micros, over := checked.Sub(int64(a), int64(b))
	if over {
		return Interval{}, errIntervalRange
	}
	return Interval{Micros: micros}.JustifyHours()
}
