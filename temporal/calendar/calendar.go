// Package calendar converts between proleptic Gregorian calendar dates and
// Julian day numbers the same way PostgreSQL does.
//
// Years are astronomical: year 0 is 1 BC, year -1 is 2 BC, and so on. The
// conversions are exact inverses of each other for every date from
// 4714-11-24 BC (Julian day 0) through 5874898-05-31.
package calendar

import (
	"fmt"

	"github.com/theory/pgtemporal/temporal/dterr"
)

// Julian day numbers of the epochs used by PostgreSQL.
const (
	// PostgresEpochJDate is the Julian day number of 2000-01-01, day zero
	// for dates and timestamps.
	PostgresEpochJDate = 2451545

	// UnixEpochJDate is the Julian day number of 1970-01-01.
	UnixEpochJDate = 2440588

	// DateEndJulian is one past the last Julian day representable as a
	// date, 5874898-01-01.
	DateEndJulian = 2147483494

	// TimestampEndJulian is one past the last Julian day representable as a
	// timestamp, 294277-01-01.
	TimestampEndJulian = 109203528
)

// Limits of the range accepted by the Julian day routines.
const (
	JulianMinYear  = -4713
	JulianMinMonth = 11
	JulianMinDay   = 24
	JulianMaxYear  = 5874898
	JulianMaxMonth = 6
	JulianMaxDay   = 3
)

// Calendar units.
const (
	MonthsPerYear  = 12
	DaysPerMonth   = 30 // assumed days per month when there is no context
	DaysPerWeek    = 7
	HoursPerDay    = 24
	MinsPerHour    = 60
	SecsPerMinute  = 60
	SecsPerHour    = 3600
	SecsPerDay     = 86400
	USecsPerSec    = int64(1000000)
	USecsPerMinute = int64(60000000)
	USecsPerHour   = int64(3600000000)
	USecsPerDay    = int64(86400000000)
)

// dayTab holds the days per month for common and leap years, followed by a
// zero sentinel.
//
//nolint:gochecknoglobals
var dayTab = [2][13]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 0},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 0},
}

// IsLeapYear returns true if year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year. Returns 0 if month
// is not in the range 1-12.
func DaysInMonth(year, month int) int {
	if month < 1 || month > MonthsPerYear {
		return 0
	}
	leap := 0
	if IsLeapYear(year) {
		leap = 1
	}
	return dayTab[leap][month-1]
}

// IsValidJulian returns true if year and month fall within the range that
// Date2J can convert without overflow. The day is not examined.
func IsValidJulian(year, month, _ int) bool {
	return (year > JulianMinYear || (year == JulianMinYear && month >= JulianMinMonth)) &&
		(year < JulianMaxYear || (year == JulianMaxYear && month < JulianMaxMonth))
}

// Date2J returns the Julian day number for year, month, and day. It performs
// no validation; use DaysFromCivil for checked conversion.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/datetime.c
func Date2J(year, month, day int) int {
	if month > 2 {
		month++
		year += 4800
	} else {
		month += 13
		year += 4799
	}

	century := year / 100
	julian := year*365 - 32167
	julian += year/4 - century + century/4
	julian += 7834*month/256 + day

	return julian
}

// CivilFromDays returns the year, month, and day of Julian day number jd. It
// is the exact inverse of Date2J for every non-negative int32 day number.
func CivilFromDays(jd int) (year, month, day int) {
	// Unsigned 32-bit arithmetic throughout, as in PostgreSQL.
	julian := uint32(jd) //nolint:gosec
	julian += 32044
	quad := julian / 146097
	extra := (julian-quad*146097)*4 + 3
	julian += 60 + quad*3 + extra/146097
	quad = julian / 1461
	julian -= quad * 1461
	y := julian * 4 / 1461
	if y != 0 {
		julian = (julian+305)%365 + 123
	} else {
		julian = (julian+306)%366 + 123
	}
	y += quad * 4
	year = int(y) - 4800
	quad = julian * 2141 / 65536
	day = int(julian - 7834*quad/256)
	month = int((quad+10)%MonthsPerYear + 1)
	return year, month, day
}

// DaysFromCivil returns the Julian day number for year, month, and day.
// Returns an error if month or day do not name a day in the calendar, or if
// the date lies outside the range of the Julian day routines. Range checks
// happen before conversion.
func DaysFromCivil(year, month, day int) (int, error) {
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf(
			"%w: date/time field value out of range: %d-%02d-%02d",
			dterr.ErrRange, year, month, day,
		)
	}
	if !IsValidJulian(year, month, day) {
		return 0, fmt.Errorf(
			"%w: date out of range: %d-%02d-%02d",
			dterr.ErrRange, year, month, day,
		)
	}
	jd := Date2J(year, month, day)
	if jd < 0 {
		return 0, fmt.Errorf(
			"%w: date out of range: %d-%02d-%02d",
			dterr.ErrRange, year, month, day,
		)
	}
	return jd, nil
}

// DayOfWeek returns the day of the week of Julian day number jd, where 0 is
// Sunday and 6 is Saturday.
func DayOfWeek(jd int) int {
	jd++
	jd %= DaysPerWeek
	if jd < 0 {
		jd += DaysPerWeek
	}
	return jd
}
