package types

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ sql.Scanner              = (*Date)(nil)
	_ sql.Scanner              = (*Timestamp)(nil)
	_ sql.Scanner              = (*TimestampTZ)(nil)
	_ sql.Scanner              = (*Interval)(nil)
	_ driver.Valuer            = Date(0)
	_ driver.Valuer            = Timestamp(0)
	_ driver.Valuer            = TimestampTZ(0)
	_ driver.Valuer            = Interval{}
	_ encoding.TextMarshaler   = Date(0)
	_ encoding.TextUnmarshaler = (*Interval)(nil)
	_ json.Marshaler           = TimestampTZ(0)
	_ json.Unmarshaler         = (*Timestamp)(nil)
	_ DateTime                 = Date(0)
	_ DateTime                 = Timestamp(0)
	_ DateTime                 = TimestampTZ(0)
)

func TestScan(t *testing.T) {
	t.Parallel()

	type scanner interface {
		sql.Scanner
		driver.Valuer
	}

	for _, tc := range []struct {
		name  string
		dst   func() scanner
		src   any
		exp   any
		value string
	}{
		{
			name:  "date_string",
			dst:   func() scanner { return new(Date) },
			src:   "2024-01-02",
			exp:   Date(8767),
			value: "2024-01-02",
		},
		{
			name:  "date_bytes",
			dst:   func() scanner { return new(Date) },
			src:   []byte("infinity"),
			exp:   DateNoEnd,
			value: "infinity",
		},
		{
			name:  "date_time",
			dst:   func() scanner { return new(Date) },
			src:   time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			exp:   Date(8767),
			value: "2024-01-02",
		},
		{
			name:  "timestamp_string",
			dst:   func() scanner { return new(Timestamp) },
			src:   "2024-01-02 03:04:05.5",
			exp:   Timestamp(jan2),
			value: "2024-01-02 03:04:05.5",
		},
		{
			name:  "timestamp_time",
			dst:   func() scanner { return new(Timestamp) },
			src:   time.Date(2024, 1, 2, 3, 4, 5, 500000000, time.UTC),
			exp:   Timestamp(jan2),
			value: "2024-01-02 03:04:05.5",
		},
		{
			name:  "timestamptz_string",
			dst:   func() scanner { return new(TimestampTZ) },
			src:   "2024-01-02 08:04:05.5+05",
			exp:   TimestampTZ(jan2),
			value: "2024-01-02 03:04:05.5+00",
		},
		{
			name:  "timestamptz_time",
			dst:   func() scanner { return new(TimestampTZ) },
			src:   time.Date(2024, 1, 1, 22, 4, 5, 500000000, time.FixedZone("", -5*3600)),
			exp:   TimestampTZ(jan2),
			value: "2024-01-02 03:04:05.5+00",
		},
		{
			name:  "interval_bytes",
			dst:   func() scanner { return new(Interval) },
			src:   []byte("1 day 02:00:00"),
			exp:   Interval{Days: 1, Micros: 7200000000},
			value: "1 day 02:00:00",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			dst := tc.dst()
			r.NoError(dst.Scan(tc.src))
			a.Equal(tc.exp, deref(dst))

			val, err := dst.Value()
			r.NoError(err)
			a.Equal(tc.value, val)
		})
	}
}

func deref(v any) any {
	switch v := v.(type) {
	case *Date:
		return *v
	case *Timestamp:
		return *v
	case *TimestampTZ:
		return *v
	case *Interval:
		return *v
	}
	return v
}

func TestScanNil(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, src := range []any{nil, "", []byte{}} {
		d := Date(42)
		r.NoError(d.Scan(src))
		a.Equal(Date(42), d)

		iv := Interval{Days: 1}
		r.NoError(iv.Scan(src))
		a.Equal(Interval{Days: 1}, iv)
	}
}

func TestScanErrors(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	var d Date
	err := d.Scan(42)
	r.EqualError(err, "scan: unable to scan type int into Date")
	r.ErrorIs(err, ErrScan)

	var ts Timestamp
	err = ts.Scan(true)
	r.EqualError(err, "scan: unable to scan type bool into Timestamp")

	var tz TimestampTZ
	err = tz.Scan(3.14)
	r.EqualError(err, "scan: unable to scan type float64 into TimestampTZ")

	var iv Interval
	err = iv.Scan(time.Now())
	r.ErrorIs(err, ErrScan)
	r.Contains(err.Error(), "into Interval")

	err = d.Scan("foo")
	r.EqualError(err, `scan: parse: invalid input syntax for type date: "foo"`)
	r.ErrorIs(err, ErrScan)
	r.ErrorIs(err, ErrParse)

	err = ts.Scan(time.Date(300000, 1, 1, 0, 0, 0, 0, time.UTC))
	r.ErrorIs(err, ErrScan)
	r.ErrorIs(err, ErrRange)

	err = iv.Scan([]byte("2147483648 days"))
	r.ErrorIs(err, ErrScan)
	r.ErrorIs(err, ErrRange)
}

func TestText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	text, err := Date(8767).MarshalText()
	r.NoError(err)
	a.Equal("2024-01-02", string(text))
	var d Date
	r.NoError(d.UnmarshalText(text))
	a.Equal(Date(8767), d)

	text, err = Timestamp(jan2).MarshalText()
	r.NoError(err)
	a.Equal("2024-01-02 03:04:05.5", string(text))
	var ts Timestamp
	r.NoError(ts.UnmarshalText(text))
	a.Equal(Timestamp(jan2), ts)

	text, err = TimestampTZ(jan2).MarshalText()
	r.NoError(err)
	a.Equal("2024-01-02 03:04:05.5+00", string(text))
	var tz TimestampTZ
	r.NoError(tz.UnmarshalText(text))
	a.Equal(TimestampTZ(jan2), tz)

	text, err = Interval{Months: 14}.MarshalText()
	r.NoError(err)
	a.Equal("1 year 2 mons", string(text))
	var iv Interval
	r.NoError(iv.UnmarshalText(text))
	a.Equal(Interval{Months: 14}, iv)

	err = iv.UnmarshalText([]byte("nope"))
	r.ErrorIs(err, ErrScan)
	r.ErrorIs(err, ErrParse)

	_, err = Date(EndDate).MarshalText()
	r.ErrorIs(err, ErrRange)
}

func TestJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	type row struct {
		D  Date        `json:"d"`
		TS Timestamp   `json:"ts"`
		TZ TimestampTZ `json:"tz"`
		IV Interval    `json:"iv"`
	}

	src := row{
		D:  Date(8767),
		TS: Timestamp(jan2),
		TZ: TimestampTZ(jan2),
		IV: Interval{Days: -1, Micros: 7200000000},
	}
	exp := `{"d":"2024-01-02","ts":"2024-01-02T03:04:05.5","tz":"2024-01-02T03:04:05.5+00:00","iv":"-1 days +02:00:00"}`

	data, err := json.Marshal(src)
	r.NoError(err)
	a.JSONEq(exp, string(data))

	var dst row
	r.NoError(json.Unmarshal(data, &dst))
	a.Equal(src, dst)

	inf := row{D: DateNoEnd, TS: TimestampNoBegin, TZ: TimestampTZNoEnd, IV: IntervalNoBegin}
	data, err = json.Marshal(inf)
	r.NoError(err)
	a.JSONEq(`{"d":"infinity","ts":"-infinity","tz":"infinity","iv":"-infinity"}`, string(data))
	dst = row{}
	r.NoError(json.Unmarshal(data, &dst))
	a.Equal(inf, dst)

	var d Date
	err = d.UnmarshalJSON([]byte("42"))
	r.ErrorIs(err, ErrScan)
	err = d.UnmarshalJSON([]byte(`"2021-02-30"`))
	r.ErrorIs(err, ErrScan)
	r.ErrorIs(err, ErrRange)

	_, err = json.Marshal(Timestamp(-9223372036854775807))
	r.Error(err)
}
