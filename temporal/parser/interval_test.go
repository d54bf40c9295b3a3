package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		exp  IntervalFields
	}{
		{
			name: "postgres_output",
			src:  "1 year 2 mons 3 days 04:05:06.789",
			exp:  IntervalFields{Months: 14, Days: 3, Micros: 14706789000},
		},
		{
			name: "at_ago",
			src:  "@ 1 day ago",
			exp:  IntervalFields{Days: -1},
		},
		{
			name: "ago_everything",
			src:  "1 mon 2 days 03:00:00 ago",
			exp:  IntervalFields{Months: -1, Days: -2, Micros: -10800000000},
		},
		{
			name: "fractional_years",
			src:  "1.5 years",
			exp:  IntervalFields{Months: 18},
		},
		{
			name: "fractional_months",
			src:  "1.5 months",
			exp:  IntervalFields{Months: 1, Days: 15},
		},
		{
			name: "fractional_days",
			src:  "1.5 days",
			exp:  IntervalFields{Days: 1, Micros: 43200000000},
		},
		{
			name: "negative_fractional_days",
			src:  "-1.5 days",
			exp:  IntervalFields{Days: -1, Micros: -43200000000},
		},
		{
			name: "fractional_weeks",
			src:  "1.5 weeks",
			exp:  IntervalFields{Days: 10, Micros: 43200000000},
		},
		{
			name: "weeks",
			src:  "2 weeks",
			exp:  IntervalFields{Days: 14},
		},
		{
			name: "bare_seconds",
			src:  "90",
			exp:  IntervalFields{Micros: 90000000},
		},
		{
			name: "bare_fractional_seconds",
			src:  "1.5",
			exp:  IntervalFields{Micros: 1500000},
		},
		{
			name: "leading_decimal",
			src:  ".25 hours",
			exp:  IntervalFields{Micros: 900000000},
		},
		{
			name: "signed_time",
			src:  "-1 days +02:00:00",
			exp:  IntervalFields{Days: -1, Micros: 7200000000},
		},
		{
			name: "negative_time",
			src:  "-1 days -02:00:00",
			exp:  IntervalFields{Days: -1, Micros: -7200000000},
		},
		{
			name: "minutes_seconds",
			src:  "10 minutes 30 seconds",
			exp:  IntervalFields{Micros: 630000000},
		},
		{
			name: "abbreviations",
			src:  "1 y 2 mon 3 d 4 h 5 m 6 s",
			exp:  IntervalFields{Months: 14, Days: 3, Micros: 14706000000},
		},
		{
			name: "sub_seconds",
			src:  "5 ms 7 us",
			exp:  IntervalFields{Micros: 5007},
		},
		{
			name: "decades_centuries_millennia",
			src:  "1 millennium 2 centuries 3 decades",
			exp:  IntervalFields{Months: 12000 + 2400 + 360},
		},
		{
			name: "long_hours",
			src:  "100:00:00",
			exp:  IntervalFields{Micros: 360000000000},
		},
		{
			name: "minutes_to_seconds",
			src:  "04:05.5",
			exp:  IntervalFields{Micros: 245500000},
		},
		{
			name: "infinity",
			src:  "infinity",
			exp:  IntervalFields{math.MaxInt32, math.MaxInt32, math.MaxInt64},
		},
		{
			name: "minus_infinity",
			src:  "-infinity",
			exp:  IntervalFields{math.MinInt32, math.MinInt32, math.MinInt64},
		},
		{
			name: "epoch",
			src:  "epoch",
			exp:  IntervalFields{},
		},
		{
			name: "max_days",
			src:  "2147483647 days",
			exp:  IntervalFields{Days: math.MaxInt32},
		},
		{
			name: "min_months",
			src:  "-2147483648 mons",
			exp:  IntervalFields{Months: math.MinInt32},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			fields, err := ParseInterval(tc.src)
			r.NoError(err)
			a.Equal(tc.exp, fields)
		})
	}
}

func TestParseIntervalErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", ErrBadFormat},
		{"unknown_unit", "1 fortnight", ErrBadFormat},
		{"repeated_unit", "1 day 2 days", ErrBadFormat},
		{"repeated_time", "1 hour 02:00:00", ErrBadFormat},
		{"ago_only", "ago", ErrBadFormat},
		{"ago_not_last", "1 day ago 2 hours", ErrBadFormat},
		{"bare_unit", "days", ErrBadFormat},
		{"trailing_point", "1. day", ErrBadFormat},
		{"date", "2024-01-02", ErrBadFormat},
		{"days_overflow", "2147483648 days", ErrIntervalOverflow},
		{"years_overflow", "178956971 years", ErrIntervalOverflow},
		{"weeks_overflow", "306783379 weeks", ErrIntervalOverflow},
		{"seconds_overflow", "9223372036854775807 seconds", ErrIntervalOverflow},
		{"int_overflow", "99999999999999999999 us", ErrIntervalOverflow},
		{"minute_60", "10:60:00", ErrIntervalOverflow},
		{"second_60", "10:00:60", ErrIntervalOverflow},
		{"ago_min_months", "-2147483648 mons ago", ErrIntervalOverflow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseInterval(tc.src)
			require.ErrorIs(t, err, tc.err)
		})
	}
}
