//nolint:godot
package types_test

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/theory/pgtemporal/temporal/types"
)

// Postgres:
//
//	david=# set datestyle = 'German';
//	SET
//	david=# select '2024-01-02'::date;
//	    date
//	------------
//	 02.01.2024
//	(1 row)
//
// [types.Date]:
func ExampleParseDate() {
	style, order, err := types.ParseDateStyle("German")
	if err != nil {
		log.Fatal(err)
	}
	cfg := types.Config{Style: style, Order: order}

	date, err := types.ParseDate("2024-01-02", cfg)
	if err != nil {
		log.Fatal(err)
	}
	str, _ := date.Format(cfg)
	fmt.Println(str)
	// Output: 02.01.2024
}

// Postgres:
//
//	david=# set time zone 'America/New_York';
//	SET
//	david=# select '2023-08-15 12:34:56.789+05'::timestamptz(2);
//	        timestamptz
//	---------------------------
//	 2023-08-15 03:34:56.79-04
//	(1 row)
//
// [types.TimestampTZ]:
func ExampleParseTimestampTZ() {
	cfg := types.Config{Offset: -4 * 3600}
	ts, err := types.ParseTimestampTZ("2023-08-15 12:34:56.789+05", 2, cfg)
	if err != nil {
		log.Fatal(err)
	}
	str, _ := ts.Format(cfg)
	fmt.Println(str)
	// Output: 2023-08-15 03:34:56.79-04
}

// Postgres:
//
//	david=# select '2021-01-31'::timestamp + '1 mon', '2020-01-31'::timestamp + '1 mon';
//	      ?column?       |      ?column?
//	---------------------+---------------------
//	 2021-02-28 00:00:00 | 2020-02-29 00:00:00
//	(1 row)
//
// [types.Timestamp]:
func ExampleTimestamp_AddInterval() {
	month := types.Interval{Months: 1}
	for _, src := range []string{"2021-01-31", "2020-01-31"} {
		ts, err := types.ParseTimestamp(src, types.Unconstrained, types.Config{})
		if err != nil {
			log.Fatal(err)
		}
		res, err := ts.AddInterval(month)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res)
	}
	// Output:
	// 2021-02-28 00:00:00
	// 2020-02-29 00:00:00
}

// Postgres:
//
//	david=# select '2021-01-03 12:30'::timestamp - '2021-01-01 10:00'::timestamp;
//	    ?column?
//	-----------------
//	 2 days 02:30:00
//	(1 row)
//
//	david=# select 'infinity'::timestamp - '2021-01-01'::timestamp;
//	ERROR:  cannot subtract infinite timestamps
//
// [types.Timestamp]:
func ExampleTimestamp_Sub() {
	cfg := types.Config{}
	t1, _ := types.ParseTimestamp("2021-01-03 12:30", types.Unconstrained, cfg)
	t2, _ := types.ParseTimestamp("2021-01-01 10:00", types.Unconstrained, cfg)

	iv, err := t1.Sub(t2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(iv)

	_, err = types.TimestampNoEnd.Sub(t2)
	fmt.Println(err, errors.Is(err, types.ErrDomain))
	// Output:
	// 2 days 02:30:00
	// domain: cannot subtract infinite timestamps true
}

// Postgres:
//
//	david=# select '1 mon'::interval = '30 days', justify_hours('1 day -00:00:00.000001');
//	 ?column? | justify_hours
//	----------+-----------------
//	 t        | 23:59:59.999999
//	(1 row)
//
// [types.Interval]:
func ExampleInterval_Compare() {
	month, _ := types.ParseInterval("1 mon")
	days, _ := types.ParseInterval("30 days")
	fmt.Println(month.Compare(days) == 0, month.Hash() == days.Hash())

	iv, _ := types.ParseInterval("1 day -00:00:00.000001")
	just, _ := iv.JustifyHours()
	fmt.Println(just)
	// Output:
	// true true
	// 23:59:59.999999
}

// Postgres:
//
//	david=# select 'today'::date, 'tomorrow'::timestamp;
//	    date    |      timestamp
//	------------+---------------------
//	 2024-03-15 | 2024-03-16 00:00:00
//	(1 row)
//
// [types.Config]:
func Example_clock() {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	cfg := types.Config{Clock: clock}

	today, _ := types.ParseDate("today", cfg)
	tomorrow, _ := types.ParseTimestamp("tomorrow", types.Unconstrained, cfg)
	fmt.Println(today, tomorrow)
	// Output: 2024-03-15 2024-03-16 00:00:00
}
