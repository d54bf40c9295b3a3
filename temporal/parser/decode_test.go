package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 10, 30, 45, 123456789, time.FixedZone("", 3600))

	for _, tc := range []struct {
		name  string
		src   string
		order Order
		exp   Fields
	}{
		{
			name: "iso_date",
			src:  "2024-01-02",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "mdy",
			src:  "01/02/2024",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name:  "dmy",
			src:   "01/02/2024",
			order: OrderDMY,
			exp:   Fields{Year: 2024, Month: 2, Day: 1},
		},
		{
			name:  "ymd",
			src:   "24-01-02",
			order: OrderYMD,
			exp:   Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "three_digit_year_first",
			src:  "999-01-02",
			exp:  Fields{Year: 999, Month: 1, Day: 2},
		},
		{
			name: "text_month",
			src:  "Jan 2, 2024",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "day_before_text_month",
			src:  "2 January 2024",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "embedded_text_month",
			src:  "02-jan-2024",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "embedded_text_month_year_first",
			src:  "2024-Jan-02",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name:  "embedded_text_month_ymd_swap",
			src:   "02-jan-2024",
			order: OrderYMD,
			exp:   Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "run_together_date",
			src:  "20240102",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "run_together_short_date",
			src:  "240102",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "two_digit_year_1900s",
			src:  "1/2/99",
			exp:  Fields{Year: 1999, Month: 1, Day: 2},
		},
		{
			name: "two_digit_year_2000s",
			src:  "1/2/05",
			exp:  Fields{Year: 2005, Month: 1, Day: 2},
		},
		{
			name: "bc",
			src:  "January 8, 99 BC",
			exp:  Fields{Year: -98, Month: 1, Day: 8},
		},
		{
			name: "ad",
			src:  "2024-01-02 AD",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "day_of_week",
			src:  "Tuesday 2024-01-02",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "time",
			src:  "2024-01-02 10:04:05",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5},
		},
		{
			name: "time_before_date",
			src:  "10:04 2024-01-02",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4},
		},
		{
			name: "fractional_seconds",
			src:  "2024-01-02 10:04:05.123456",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5, Fsec: 123456},
		},
		{
			name: "fraction_rounds_half_even",
			src:  "2024-01-02 10:04:05.0000005",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5, Fsec: 0},
		},
		{
			name: "fraction_rounds_up",
			src:  "2024-01-02 10:04:05.9999999",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5, Fsec: 1000000},
		},
		{
			name: "minutes_seconds",
			src:  "2024-01-02 04:05.5",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Minute: 4, Second: 5, Fsec: 500000},
		},
		{
			name: "iso_8601_zulu",
			src:  "2024-01-02T10:04:05Z",
			exp: Fields{
				Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5,
				HasOffset: true,
			},
		},
		{
			name: "iso_8601_run_together",
			src:  "2024-01-02T101112.5",
			exp: Fields{
				Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 11, Second: 12,
				Fsec: 500000,
			},
		},
		{
			name: "run_together_time",
			src:  "2024-01-02 1011",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 11},
		},
		{
			name: "run_together_date_time",
			src:  "20240102 101112",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 11, Second: 12},
		},
		{
			name: "offset_colon",
			src:  "2024-01-02 10:04:05+05:30",
			exp: Fields{
				Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5,
				Offset: 19800, HasOffset: true,
			},
		},
		{
			name: "offset_run_together",
			src:  "2024-01-02 10:04:05 -0800",
			exp: Fields{
				Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5,
				Offset: -28800, HasOffset: true,
			},
		},
		{
			name: "zone_abbrev",
			src:  "2024-01-02 10:04:05 PST",
			exp: Fields{
				Year: 2024, Month: 1, Day: 2, Hour: 10, Minute: 4, Second: 5,
				Offset: -28800, HasOffset: true,
			},
		},
		{
			name: "pm",
			src:  "2024-01-02 10:04 PM",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 22, Minute: 4},
		},
		{
			name: "twelve_am",
			src:  "2024-01-02 12:30 am",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 0, Minute: 30},
		},
		{
			name: "twelve_pm",
			src:  "2024-01-02 12:30 pm",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 12, Minute: 30},
		},
		{
			name: "midnight_24",
			src:  "2024-01-02 24:00:00",
			exp:  Fields{Year: 2024, Month: 1, Day: 2, Hour: 24},
		},
		{
			name: "leap_second",
			src:  "2016-12-31 23:59:60",
			exp:  Fields{Year: 2016, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 60},
		},
		{
			name: "allballs",
			src:  "2024-01-02 allballs",
			exp:  Fields{Year: 2024, Month: 1, Day: 2},
		},
		{
			name: "epoch",
			src:  "epoch",
			exp:  Fields{Kind: KindEpoch},
		},
		{
			name: "infinity",
			src:  "Infinity",
			exp:  Fields{Kind: KindLate},
		},
		{
			name: "plus_infinity",
			src:  "+infinity",
			exp:  Fields{Kind: KindLate},
		},
		{
			name: "minus_infinity",
			src:  "-infinity",
			exp:  Fields{Kind: KindEarly},
		},
		{
			name: "now",
			src:  "now",
			exp: Fields{
				Year: 2024, Month: 3, Day: 15, Hour: 10, Minute: 30, Second: 45,
				Fsec: 123456, Offset: 3600, HasOffset: true,
			},
		},
		{
			name: "today",
			src:  "today",
			exp:  Fields{Year: 2024, Month: 3, Day: 15},
		},
		{
			name: "tomorrow",
			src:  "tomorrow",
			exp:  Fields{Year: 2024, Month: 3, Day: 16},
		},
		{
			name: "yesterday_with_time",
			src:  "yesterday 10:00",
			exp:  Fields{Year: 2024, Month: 3, Day: 14, Hour: 10},
		},
		{
			name: "leap_day",
			src:  "2024-02-29",
			exp:  Fields{Year: 2024, Month: 2, Day: 29},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			fields, err := ParseDateTime(tc.src, Options{Order: tc.order, Now: now})
			r.NoError(err)
			a.Equal(tc.exp, fields)
		})
	}
}

func TestParseDateTimeErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		src   string
		order Order
		err   error
	}{
		{"empty", "", OrderMDY, ErrBadFormat},
		{"unknown_word", "foo", OrderMDY, ErrBadFormat},
		{"time_only", "10:04:05", OrderMDY, ErrBadFormat},
		{"partial_date", "2024-01", OrderMDY, ErrBadFormat},
		{"two_times", "2024-01-02 10:00 11:00", OrderMDY, ErrBadFormat},
		{"two_zones", "2024-01-02 10:00 +05 +06", OrderMDY, ErrBadFormat},
		{"epoch_with_time", "epoch 10:00", OrderMDY, ErrBadFormat},
		{"infinity_with_date", "2024-01-02 infinity", OrderMDY, ErrBadFormat},
		{"iso_time_missing", "2024-01-02T", OrderMDY, ErrBadFormat},
		{"iso_time_short", "2024-01-02T10", OrderMDY, ErrBadFormat},
		{"ago", "2024-01-02 ago", OrderMDY, ErrBadFormat},
		{"bad_fraction", "2024-01-02 10:04:05.", OrderMDY, ErrBadFormat},
		{"today_without_now", "today", OrderMDY, ErrBadFormat},
		{"year_zero", "0000-01-01", OrderMDY, ErrFieldOverflow},
		{"bc_year_zero", "Jan 1 0 BC", OrderMDY, ErrFieldOverflow},
		{"feb_30", "2024-02-30", OrderMDY, ErrFieldOverflow},
		{"feb_29_common", "2023-02-29", OrderMDY, ErrFieldOverflow},
		{"month_13", "2024-13-01", OrderMDY, ErrMDFieldOverflow},
		{"day_32", "2024-01-32", OrderMDY, ErrMDFieldOverflow},
		{"ymd_year_as_day", "01/02/2024", OrderYMD, ErrMDFieldOverflow},
		{"dmy_month_13", "01/13/2024", OrderDMY, ErrMDFieldOverflow},
		{"hour_25", "2024-01-02 25:00:00", OrderMDY, ErrFieldOverflow},
		{"after_24", "2024-01-02 24:00:01", OrderMDY, ErrFieldOverflow},
		{"minute_60", "2024-01-02 10:60:00", OrderMDY, ErrFieldOverflow},
		{"second_61", "2024-01-02 10:00:61", OrderMDY, ErrFieldOverflow},
		{"pm_hour_13", "2024-01-02 13:00 PM", OrderMDY, ErrFieldOverflow},
		{"huge_hour", "2024-01-02 3000000000:00", OrderMDY, ErrFieldOverflow},
		{"huge_year", "99999999999-01-01", OrderMDY, ErrFieldOverflow},
		{"tz_hour_16", "2024-01-02 10:00+16", OrderMDY, ErrTZDispOverflow},
		{"tz_minute_60", "2024-01-02 10:00+05:60", OrderMDY, ErrTZDispOverflow},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			opts := Options{Order: tc.order}
			if tc.name != "today_without_now" {
				opts.Now = time.Now()
			}
			_, err := ParseDateTime(tc.src, opts)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeTimezone(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		src string
		exp int
		err error
	}{
		{"+5", 18000, nil},
		{"-5", -18000, nil},
		{"+05", 18000, nil},
		{"+0530", 19800, nil},
		{"-0800", -28800, nil},
		{"+05:30", 19800, nil},
		{"-05:30:15", -19815, nil},
		{"+15:59:59", 57599, nil},
		{"+16", 0, ErrTZDispOverflow},
		{"+1600", 0, ErrTZDispOverflow},
		{"+05:60", 0, ErrTZDispOverflow},
		{"+05:30:60", 0, ErrTZDispOverflow},
		{"+05:30x", 0, ErrBadFormat},
		{"5", 0, ErrBadFormat},
		{"+", 0, ErrBadFormat},
	} {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			off, err := decodeTimezone(tc.src)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, off)
		})
	}
}

func TestZoneOffset(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	off, ok := ZoneOffset("utc")
	a.True(ok)
	a.Zero(off)

	off, ok = ZoneOffset("pdt")
	a.True(ok)
	a.Equal(-25200, off)

	off, ok = ZoneOffset("cest")
	a.True(ok)
	a.Equal(7200, off)

	_, ok = ZoneOffset("jan")
	a.False(ok)

	_, ok = ZoneOffset("nope")
	a.False(ok)

	zones := ZoneAbbrevs()
	a.Contains(zones, "z")
	a.Equal(-18000, zones["est"])
	a.NotContains(zones, "jan")
}
