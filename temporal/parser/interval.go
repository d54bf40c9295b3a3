package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/theory/pgtemporal/internal/checked"
	"github.com/theory/pgtemporal/temporal/calendar"
)

// IntervalFields contains the months, days, and microseconds decoded from an
// interval string.
type IntervalFields struct {
	Months int32
	Days   int32
	Micros int64
}

// Unit mask bits recording which interval units have been set.
const (
	iMicrosecond = 1 << iota
	iMillisecond
	iSecond
	iMinute
	iHour
	iDay
	iWeek
	iMonth
	iYear
	iDecade
	iCentury
	iMillennium

	iTime = iHour | iMinute | iSecond
)

type intervalDecoder struct {
	months int64
	days   int64
	usec   int64
	fmask  int
}

// ParseInterval lexes and decodes src as an interval.
func ParseInterval(src string) (IntervalFields, error) {
	tokens, err := Lex(src)
	if err != nil {
		return IntervalFields{}, err
	}
	return DecodeInterval(tokens)
}

// DecodeInterval interprets tokens as a PostgreSQL-style interval: an
// optional leading @, a series of numbers each followed by a unit such as
// day or hours, an optional hh:mm:ss time, and an optional trailing ago
// that negates the whole interval. A number without a unit is seconds.
// Fractional units spill into smaller fields: years into months, months
// and weeks into days, and days into microseconds.
//
// The words infinity, +infinity, and -infinity decode to intervals with
// every field set to its maximum or minimum value, and epoch decodes to the
// zero interval.
//
// Returns ErrBadFormat for unrecognized or repeated units and
// ErrIntervalOverflow for fields out of range.
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/datetime.c
func DecodeInterval(tokens []Token) (IntervalFields, error) {
	if len(tokens) == 0 {
		return IntervalFields{}, ErrBadFormat
	}

	if len(tokens) == 1 && (tokens[0].Kind == TokenString || tokens[0].Kind == TokenSpecial) {
		switch tokens[0].Text {
		case "infinity", "+infinity":
			return IntervalFields{math.MaxInt32, math.MaxInt32, math.MaxInt64}, nil
		case "-infinity":
			return IntervalFields{math.MinInt32, math.MinInt32, math.MinInt64}, nil
		case "epoch":
			return IntervalFields{}, nil
		}
	}

	d := &intervalDecoder{}
	ago := false
	for i := 0; i < len(tokens); i++ {
		var err error
		switch tok := tokens[i]; tok.Kind {
		case TokenTime:
			err = d.addTime(tok.Text, false)
		case TokenTZ:
			if strings.Contains(tok.Text[1:], ":") {
				err = d.addTime(tok.Text[1:], tok.Text[0] == '-')
				break
			}
			fallthrough
		case TokenNumber:
			u := unitSecond
			if i+1 < len(tokens) && tokens[i+1].Kind == TokenString {
				if next, ok := intervalUnits[tokens[i+1].Text]; ok && next != unitAgo {
					u = next
					i++
				}
			}
			err = d.addNumber(tok.Text, u)
		case TokenString:
			if u, ok := intervalUnits[tok.Text]; !ok || u != unitAgo || i != len(tokens)-1 {
				return IntervalFields{}, ErrBadFormat
			}
			ago = true
		default:
			err = ErrBadFormat
		}
		if err != nil {
			return IntervalFields{}, err
		}
	}

	if d.fmask == 0 {
		return IntervalFields{}, ErrBadFormat
	}
	if ago {
		if err := d.negate(); err != nil {
			return IntervalFields{}, err
		}
	}
	return d.fields(), nil
}

// mark records that the units in mask have been set.
func (d *intervalDecoder) mark(mask int) error {
	if d.fmask&mask != 0 {
		return ErrBadFormat
	}
	d.fmask |= mask
	return nil
}

// addTime adds an h:mm:ss[.fff] or mm:ss.fff time. Hours are unlimited.
func (d *intervalDecoder) addTime(text string, neg bool) error {
	if err := d.mark(iTime); err != nil {
		return err
	}

	hour, minute, sec, fsec, err := decodeTime(text)
	if err != nil {
		return toIntervalError(err)
	}
	if hour < 0 || minute < 0 || minute > 59 || sec < 0 || sec > 59 || fsec < 0 || fsec > calendar.USecsPerSec {
		return ErrIntervalOverflow
	}

	usec := ((int64(hour)*calendar.MinsPerHour+int64(minute))*calendar.SecsPerMinute+int64(sec))*calendar.USecsPerSec + fsec
	if neg {
		usec = -usec
	}
	return d.addMicros(usec)
}

// addNumber adds a signed integer or decimal number of unit u.
func (d *intervalDecoder) addNumber(text string, u unit) error {
	neg := false
	if text[0] == '+' || text[0] == '-' {
		neg = text[0] == '-'
		text = text[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(text, ".")
	if intPart == "" && !hasFrac {
		return ErrBadFormat
	}

	var val int64
	if intPart != "" {
		var err error
		if val, err = strconv.ParseInt(intPart, 10, 64); err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return ErrIntervalOverflow
			}
			return ErrBadFormat
		}
	}

	var fval float64
	if hasFrac {
		if fracPart == "" {
			return ErrBadFormat
		}
		for i := range len(fracPart) {
			if !isDigit(fracPart[i]) {
				return ErrBadFormat
			}
		}
		fval, _ = strconv.ParseFloat("0."+fracPart, 64)
	}
	if neg {
		val, fval = -val, -fval
	}

	switch u {
	case unitMicrosecond:
		return d.addScaled(iMicrosecond, val, fval, 1)
	case unitMillisecond:
		return d.addScaled(iMillisecond, val, fval, 1000)
	case unitSecond:
		return d.addScaled(iSecond, val, fval, calendar.USecsPerSec)
	case unitMinute:
		return d.addScaled(iMinute, val, fval, calendar.USecsPerMinute)
	case unitHour:
		return d.addScaled(iHour, val, fval, calendar.USecsPerHour)
	case unitDay:
		if err := d.mark(iDay); err != nil {
			return err
		}
		if err := d.addDays(val, 1); err != nil {
			return err
		}
		return d.addFractMicros(fval, calendar.USecsPerDay)
	case unitWeek:
		if err := d.mark(iWeek); err != nil {
			return err
		}
		if err := d.addDays(val, calendar.DaysPerWeek); err != nil {
			return err
		}
		return d.addFractDays(fval, calendar.DaysPerWeek)
	case unitMonth:
		if err := d.mark(iMonth); err != nil {
			return err
		}
		if err := d.addMonths(val, 1); err != nil {
			return err
		}
		return d.addFractDays(fval, calendar.DaysPerMonth)
	case unitYear:
		return d.addYears(iYear, val, fval, 1)
	case unitDecade:
		return d.addYears(iDecade, val, fval, 10)
	case unitCentury:
		return d.addYears(iCentury, val, fval, 100)
	case unitMillennium:
		return d.addYears(iMillennium, val, fval, 1000)
	default:
		return ErrBadFormat
	}
}

// addScaled adds val + fval units of scale microseconds, rounding any
// fractional microsecond.
func (d *intervalDecoder) addScaled(mask int, val int64, fval float64, scale int64) error {
	if err := d.mark(mask); err != nil {
		return err
	}
	usec, over := checked.Mul(val, scale)
	if over {
		return ErrIntervalOverflow
	}
	if err := d.addMicros(usec); err != nil {
		return err
	}
	return d.addFractMicros(fval, scale)
}

// addYears adds val + fval years of scale years each. The fraction spills
// into whole months, rounded.
func (d *intervalDecoder) addYears(mask int, val int64, fval float64, scale int64) error {
	if err := d.mark(mask); err != nil {
		return err
	}
	if err := d.addMonths(val, scale*calendar.MonthsPerYear); err != nil {
		return err
	}
	if fval == 0 {
		return nil
	}
	extra := math.RoundToEven(fval * float64(scale) * calendar.MonthsPerYear)
	if extra > math.MaxInt32 || extra < math.MinInt32 {
		return ErrIntervalOverflow
	}
	return d.addMonths(int64(extra), 1)
}

// addMonths adds val months of scale months each.
func (d *intervalDecoder) addMonths(val, scale int64) error {
	months, over := checked.Mul(val, scale)
	if over {
		return ErrIntervalOverflow
	}
	if d.months, over = checked.Add(d.months, months); over || d.months > math.MaxInt32 || d.months < math.MinInt32 {
		return ErrIntervalOverflow
	}
	return nil
}

// addDays adds val days of scale days each.
func (d *intervalDecoder) addDays(val, scale int64) error {
	days, over := checked.Mul(val, scale)
	if over {
		return ErrIntervalOverflow
	}
	if d.days, over = checked.Add(d.days, days); over || d.days > math.MaxInt32 || d.days < math.MinInt32 {
		return ErrIntervalOverflow
	}
	return nil
}

// addFractDays adds frac units of scale days, spilling the fractional day
// into microseconds.
func (d *intervalDecoder) addFractDays(frac float64, scale int64) error {
	if frac == 0 {
		return nil
	}
	frac *= float64(scale)
	extra := int64(frac)
	if err := d.addDays(extra, 1); err != nil {
		return err
	}
	return d.addFractMicros(frac-float64(extra), calendar.USecsPerDay)
}

// addFractMicros adds frac units of scale microseconds, rounding any
// fractional microsecond half to even.
func (d *intervalDecoder) addFractMicros(frac float64, scale int64) error {
	if frac == 0 {
		return nil
	}
	frac *= float64(scale)
	usec := int64(frac)
	usec += int64(math.RoundToEven(frac - float64(usec)))
	return d.addMicros(usec)
}

// addMicros adds usec microseconds.
func (d *intervalDecoder) addMicros(usec int64) error {
	var over bool
	if d.usec, over = checked.Add(d.usec, usec); over {
		return ErrIntervalOverflow
	}
	return nil
}

// negate negates every field, for a trailing ago.
func (d *intervalDecoder) negate() error {
	var over bool
	if d.usec, over = checked.Neg(d.usec); over {
		return ErrIntervalOverflow
	}
	d.months, d.days = -d.months, -d.days
	if d.months > math.MaxInt32 || d.days > math.MaxInt32 {
		return ErrIntervalOverflow
	}
	return nil
}

func (d *intervalDecoder) fields() IntervalFields {
	return IntervalFields{
		Months: int32(d.months),
		Days:   int32(d.days),
		Micros: d.usec,
	}
}

// toIntervalError reports field overflows as interval overflows.
func toIntervalError(err error) error {
	if errors.Is(err, ErrFieldOverflow) {
		return ErrIntervalOverflow
	}
	return err
}
