package calendar

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/pgtemporal/temporal/dterr"
)

func TestDate2J(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		year  int
		month int
		day   int
		jd    int
	}{
		{"julian_zero", JulianMinYear, JulianMinMonth, JulianMinDay, 0},
		{"unix_epoch", 1970, 1, 1, UnixEpochJDate},
		{"postgres_epoch", 2000, 1, 1, PostgresEpochJDate},
		{"date_end", JulianMaxYear, 1, 1, DateEndJulian},
		{"timestamp_end", 294277, 1, 1, TimestampEndJulian},
		{"julian_max", JulianMaxYear, JulianMaxMonth, JulianMaxDay, math.MaxInt32},
		{"leap_day", 2020, 2, 29, 2458909},
		{"one_bc", 0, 12, 31, 1721425},
		{"one_ad", 1, 1, 1, 1721426},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)

			a.Equal(tc.jd, Date2J(tc.year, tc.month, tc.day))
			y, m, d := CivilFromDays(tc.jd)
			a.Equal(tc.year, y)
			a.Equal(tc.month, m)
			a.Equal(tc.day, d)
		})
	}
}

func TestCivilRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	// Every date near the bottom of the range.
	for jd := range 800 {
		y, m, d := CivilFromDays(jd)
		a.Equal(jd, Date2J(y, m, d), "jd %d", jd)
	}

	// Sample the rest of the range with a prime stride.
	for jd := 0; jd < math.MaxInt32-9973; jd += 9973 {
		y, m, d := CivilFromDays(jd)
		if !a.Equal(jd, Date2J(y, m, d), "jd %d", jd) {
			break
		}
	}

	// Every day of a few years around the leap cycles.
	for _, year := range []int{-4712, -1, 0, 1, 1582, 1900, 2000, 2024, 2100, 294276} {
		for month := 1; month <= MonthsPerYear; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				jd, err := DaysFromCivil(year, month, day)
				require.NoError(t, err)
				y, m, d := CivilFromDays(jd)
				a.Equal([3]int{year, month, day}, [3]int{y, m, d})
			}
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, year := range []int{2000, 2004, 2020, 2024, 1600, 0, -4, 400} {
		a.True(IsLeapYear(year), "%d", year)
	}
	for _, year := range []int{1900, 2100, 2021, 2023, 1, -1, 100} {
		a.False(IsLeapYear(year), "%d", year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(31, DaysInMonth(2021, 1))
	a.Equal(28, DaysInMonth(2021, 2))
	a.Equal(29, DaysInMonth(2020, 2))
	a.Equal(28, DaysInMonth(1900, 2))
	a.Equal(29, DaysInMonth(2000, 2))
	a.Equal(30, DaysInMonth(2021, 4))
	a.Equal(31, DaysInMonth(2021, 12))
	a.Zero(DaysInMonth(2021, 0))
	a.Zero(DaysInMonth(2021, 13))
}

func TestIsValidJulian(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(IsValidJulian(JulianMinYear, JulianMinMonth, 1))
	a.False(IsValidJulian(JulianMinYear, JulianMinMonth-1, 30))
	a.False(IsValidJulian(JulianMinYear-1, 12, 31))
	a.True(IsValidJulian(JulianMaxYear, JulianMaxMonth-1, 31))
	a.False(IsValidJulian(JulianMaxYear, JulianMaxMonth, 1))
	a.False(IsValidJulian(JulianMaxYear+1, 1, 1))
	a.True(IsValidJulian(2024, 6, 15))
}

func TestDaysFromCivilErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		year  int
		month int
		day   int
	}{
		{2021, 2, 29},
		{2021, 4, 31},
		{2021, 13, 1},
		{2021, 0, 1},
		{2021, 1, 0},
		{JulianMinYear, JulianMinMonth, 1},
		{JulianMinYear, 1, 1},
		{JulianMaxYear, JulianMaxMonth, 1},
		{JulianMaxYear + 1, 1, 1},
	} {
		t.Run(fmt.Sprintf("%d-%d-%d", tc.year, tc.month, tc.day), func(t *testing.T) {
			t.Parallel()
			_, err := DaysFromCivil(tc.year, tc.month, tc.day)
			require.Error(t, err)
			require.ErrorIs(t, err, dterr.ErrRange)
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(6, DayOfWeek(PostgresEpochJDate))      // Saturday
	a.Equal(4, DayOfWeek(UnixEpochJDate))          // Thursday
	a.Equal(1, DayOfWeek(Date2J(2024, 4, 29)))     // Monday
	a.Equal(1, DayOfWeek(0))                       // Monday, 4714-11-24 BC
	a.Equal(0, DayOfWeek(-1))                      // Sunday
	a.Equal(0, DayOfWeek(Date2J(2021, 2, 28)))     // Sunday
	a.Equal(5, DayOfWeek(Date2J(JulianMinYear, 11, 28)))
}
