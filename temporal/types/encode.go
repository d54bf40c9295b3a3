package types

import (
	"strconv"

	"github.com/theory/pgtemporal/temporal/calendar"
	"golang.org/x/exp/constraints"
)

// civil holds broken-down date and time fields. Years are astronomical.
type civil struct {
	year, month, day     int
	hour, minute, second int
	fsec                 int64
}

//nolint:gochecknoglobals
var (
	monthAbbrevs = [...]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	dayAbbrevs = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// appendZeroPad appends the decimal representation of non-negative v
// left-padded with zeros to width digits.
func appendZeroPad[T constraints.Integer](b []byte, v T, width int) []byte {
	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], int64(v), 10)
	for i := len(digits); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, digits...)
}

// appendYear appends year padded to four digits. BC years are appended as
// positive numbers; the caller appends the BC suffix.
func appendYear(b []byte, year int) []byte {
	if year <= 0 {
		year = -(year - 1)
	}
	return appendZeroPad(b, year, 4)
}

// appendSeconds appends the absolute value of sec padded to two digits and
// the absolute value of fsec as a fraction without trailing zeros.
func appendSeconds(b []byte, sec int, fsec int64) []byte {
	if sec < 0 {
		sec = -sec
	}
	b = appendZeroPad(b, sec, 2)
	if fsec == 0 {
		return b
	}
	if fsec < 0 {
		fsec = -fsec
	}

	b = append(b, '.')
	start := len(b)
	b = appendZeroPad(b, fsec, 6)
	end := len(b)
	for end > start && b[end-1] == '0' {
		end--
	}
	return b[:end]
}

// appendBC appends the BC suffix for years before 1 AD.
func appendBC(b []byte, year int) []byte {
	if year <= 0 {
		b = append(b, " BC"...)
	}
	return b
}

// encodeDateOnly appends the date fields of c in the style and order of
// cfg.
func encodeDateOnly(b []byte, c civil, cfg Config) []byte {
	switch cfg.Style {
	case StyleISO, StyleXSD:
		b = appendYear(b, c.year)
		b = append(b, '-')
		b = appendZeroPad(b, c.month, 2)
		b = append(b, '-')
		b = appendZeroPad(b, c.day, 2)
	case StyleSQL:
		b = appendDayMonth(b, c, cfg.Order, '/')
		b = append(b, '/')
		b = appendYear(b, c.year)
	case StyleGerman:
		b = appendDayMonth(b, c, OrderDMY, '.')
		b = append(b, '.')
		b = appendYear(b, c.year)
	default:
		b = appendDayMonth(b, c, cfg.Order, '-')
		b = append(b, '-')
		b = appendYear(b, c.year)
	}
	return appendBC(b, c.year)
}

// appendDayMonth appends the numeric day and month of c separated by sep,
// day first for DMY and month first otherwise.
func appendDayMonth(b []byte, c civil, order DateOrder, sep byte) []byte {
	first, second := c.month, c.day
	if order == OrderDMY {
		first, second = second, first
	}
	b = appendZeroPad(b, first, 2)
	b = append(b, sep)
	return appendZeroPad(b, second, 2)
}

// appendClock appends hh:mm:ss with optional fractional seconds.
func appendClock(b []byte, c civil) []byte {
	b = appendZeroPad(b, c.hour, 2)
	b = append(b, ':')
	b = appendZeroPad(b, c.minute, 2)
	b = append(b, ':')
	return appendSeconds(b, c.second, c.fsec)
}

// encodeDateTime appends the date and time fields of c in the style and
// order of cfg. When printTZ is true it appends the zone: cfg.ZoneLabel if
// set and the style is not ISO or XSD, otherwise the numeric offset in
// seconds east of Greenwich.
func encodeDateTime(b []byte, c civil, printTZ bool, offset int, cfg Config) []byte {
	label := cfg.ZoneLabel
	switch cfg.Style {
	case StyleISO, StyleXSD:
		b = appendYear(b, c.year)
		b = append(b, '-')
		b = appendZeroPad(b, c.month, 2)
		b = append(b, '-')
		b = appendZeroPad(b, c.day, 2)
		if cfg.Style == StyleISO {
			b = append(b, ' ')
		} else {
			b = append(b, 'T')
		}
		b = appendClock(b, c)
		if printTZ {
			b = encodeTimezone(b, offset, cfg.Style)
		}
	case StyleSQL, StyleGerman:
		if cfg.Style == StyleSQL {
			b = appendDayMonth(b, c, cfg.Order, '/')
			b = append(b, '/')
		} else {
			b = appendDayMonth(b, c, OrderDMY, '.')
			b = append(b, '.')
		}
		b = appendYear(b, c.year)
		b = append(b, ' ')
		b = appendClock(b, c)
		if printTZ {
			if label != "" {
				b = append(b, ' ')
				b = append(b, label...)
			} else {
				b = encodeTimezone(b, offset, cfg.Style)
			}
		}
	default:
		jd := calendar.Date2J(c.year, c.month, c.day)
		b = append(b, dayAbbrevs[calendar.DayOfWeek(jd)]...)
		b = append(b, ' ')
		if cfg.Order == OrderDMY {
			b = appendZeroPad(b, c.day, 2)
			b = append(b, ' ')
			b = append(b, monthAbbrevs[c.month-1]...)
		} else {
			b = append(b, monthAbbrevs[c.month-1]...)
			b = append(b, ' ')
			b = appendZeroPad(b, c.day, 2)
		}
		b = append(b, ' ')
		b = appendClock(b, c)
		b = append(b, ' ')
		b = appendYear(b, c.year)
		if printTZ {
			b = append(b, ' ')
			if label != "" {
				b = append(b, label...)
			} else {
				b = encodeTimezone(b, offset, cfg.Style)
			}
		}
	}
	return appendBC(b, c.year)
}

// encodeTimezone appends the numeric UTC offset, given in seconds east of
// Greenwich, as ±hh, ±hh:mm, or ±hh:mm:ss, showing only as much precision
// as needed. The XSD style always includes the minutes.
func encodeTimezone(b []byte, offset int, style DateStyle) []byte {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	sec := offset % calendar.SecsPerMinute
	minute := offset / calendar.SecsPerMinute
	hour := minute / calendar.MinsPerHour
	minute %= calendar.MinsPerHour

	b = append(b, sign)
	b = appendZeroPad(b, hour, 2)
	if sec != 0 || minute != 0 || style == StyleXSD {
		b = append(b, ':')
		b = appendZeroPad(b, minute, 2)
	}
	if sec != 0 {
		b = append(b, ':')
		b = appendZeroPad(b, sec, 2)
	}
	return b
}
