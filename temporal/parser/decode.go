package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theory/pgtemporal/temporal/calendar"
)

// Kind identifies the kind of value decoded by DecodeDateTime.
type Kind int

const (
	// KindDate is a finite date and time.
	KindDate Kind = iota

	// KindEpoch is the epoch keyword, 1970-01-01 00:00:00 UTC.
	KindEpoch

	// KindLate is the infinity keyword, later than all other values.
	KindLate

	// KindEarly is the -infinity keyword, earlier than all other values.
	KindEarly
)

// Fields contains the civil date and time fields decoded from a date/time
// string.
type Fields struct {
	Kind   Kind
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	// Fsec is the fractional second in microseconds, between 0 and 1000000
	// inclusive.
	Fsec int64

	// Offset is the UTC offset in seconds east of Greenwich. Only valid
	// when HasOffset is true.
	Offset    int
	HasOffset bool
}

// Options configure DecodeDateTime.
type Options struct {
	// Order determines how to read ambiguous numeric dates.
	Order Order

	// Now resolves the keywords now, today, tomorrow, and yesterday. Its
	// location determines the local date and the offset for now. Decoding
	// those keywords fails with ErrBadFormat when Now is the zero value.
	Now time.Time
}

// Field mask bits recording which fields have been set.
const (
	fYear = 1 << iota
	fMonth
	fDay
	fTime
	fTZ
	fDOW
	fMeridian
	fEra
	fSpecial

	fDate = fYear | fMonth | fDay
)

// maxTZDispHour is the largest hour accepted in a numeric time zone.
const maxTZDispHour = 15

type decoder struct {
	opts      Options
	f         Fields
	fmask     int
	textMonth bool
	twoDigits bool
	bc        bool
	meridian  int
}

// ParseDateTime lexes and decodes src.
func ParseDateTime(src string, opts Options) (Fields, error) {
	tokens, err := Lex(src)
	if err != nil {
		return Fields{}, err
	}
	return DecodeDateTime(tokens, opts)
}

// DecodeDateTime interprets tokens as a date with an optional time and time
// zone, or as one of the special values epoch, infinity, and -infinity. A
// date is required. Returns ErrBadFormat for unrecognized or conflicting
// fields, ErrFieldOverflow or ErrMDFieldOverflow for fields out of range,
// and ErrTZDispOverflow for an out of range numeric time zone.
func DecodeDateTime(tokens []Token, opts Options) (Fields, error) {
	if len(tokens) == 0 {
		return Fields{}, ErrBadFormat
	}

	d := &decoder{opts: opts, meridian: -1}
	for i := 0; i < len(tokens); i++ {
		var err error
		switch tok := tokens[i]; tok.Kind {
		case TokenDate:
			err = d.decodeDate(tok.Text)
		case TokenTime:
			err = d.decodeTimeField(tok.Text)
		case TokenTZ:
			err = d.decodeTZField(tok.Text)
		case TokenNumber:
			err = d.decodeNumberToken(tok.Text)
		case TokenString, TokenSpecial:
			kw, ok := dateKeywords[tok.Text]
			if !ok {
				return Fields{}, ErrBadFormat
			}
			if kw.typ != kwISOTime {
				err = d.applyKeyword(kw)
				break
			}

			// ISO 8601 time designator: a time must follow.
			i++
			if i >= len(tokens) {
				return Fields{}, ErrBadFormat
			}
			switch next := tokens[i]; next.Kind {
			case TokenTime:
				err = d.decodeTimeField(next.Text)
			case TokenNumber:
				digits, frac, hasFrac := strings.Cut(next.Text, ".")
				err = d.decodeNumberField(digits, frac, hasFrac, true)
			default:
				err = ErrBadFormat
			}
		}
		if err != nil {
			return Fields{}, err
		}
	}

	return d.finish()
}

// mark records that the fields in mask have been set, returning
// ErrBadFormat if any of them was set already.
func (d *decoder) mark(mask int) error {
	if d.fmask&mask != 0 {
		return ErrBadFormat
	}
	d.fmask |= mask
	return nil
}

// decodeDate decodes a date token with embedded separators. Text months are
// decoded first so that they can disambiguate the numeric fields.
func (d *decoder) decodeDate(text string) error {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '-' || r == '/' || r == '.'
	})
	if len(parts) != 3 {
		return ErrBadFormat
	}

	numeric := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return ErrBadFormat
		}
		if !isAlpha(part[0]) {
			numeric = append(numeric, part)
			continue
		}
		kw, ok := dateKeywords[part]
		if !ok || kw.typ != kwMonth {
			return ErrBadFormat
		}
		if err := d.mark(fMonth); err != nil {
			return err
		}
		d.f.Month = kw.val
		d.textMonth = true
	}

	for _, part := range numeric {
		for i := range len(part) {
			if !isDigit(part[i]) {
				return ErrBadFormat
			}
		}
		if err := d.decodeNumber(part); err != nil {
			return err
		}
	}

	if d.fmask&fDate != fDate {
		return ErrBadFormat
	}
	return nil
}

// decodeTimeField decodes a time token into the time fields.
func (d *decoder) decodeTimeField(text string) error {
	if err := d.mark(fTime); err != nil {
		return err
	}
	var err error
	d.f.Hour, d.f.Minute, d.f.Second, d.f.Fsec, err = decodeTime(text)
	return err
}

// decodeTZField decodes a signed numeric time zone token.
func (d *decoder) decodeTZField(text string) error {
	if err := d.mark(fTZ); err != nil {
		return err
	}
	off, err := decodeTimezone(text)
	if err != nil {
		return err
	}
	d.f.Offset = off
	d.f.HasOffset = true
	return nil
}

// decodeNumberToken decodes a number token, which may be a run-together
// date or time or a single date field.
func (d *decoder) decodeNumberToken(text string) error {
	digits, frac, hasFrac := strings.Cut(text, ".")
	if hasFrac {
		// Only a run-together time may carry fractional seconds.
		if len(digits) == 6 && d.fmask&fDate == fDate && d.fmask&fTime == 0 {
			return d.decodeNumberField(digits, frac, true, false)
		}
		return ErrBadFormat
	}

	if len(digits) >= 6 && (d.fmask&fDate == 0 || d.fmask&fTime == 0) {
		return d.decodeNumberField(digits, "", false, false)
	}
	return d.decodeNumber(digits)
}

// decodeNumberField decodes a run-together date (yyyymmdd or yymmdd) or
// time (hhmmss or hhmm). With timeOnly, only a time is accepted.
func (d *decoder) decodeNumberField(digits, frac string, hasFrac, timeOnly bool) error {
	var fsec int64
	if hasFrac {
		var err error
		if fsec, err = parseFraction(frac); err != nil {
			return err
		}
	}

	n := len(digits)
	if !hasFrac && !timeOnly && d.fmask&fDate != fDate && n >= 6 {
		if err := d.mark(fDate); err != nil {
			return err
		}
		var err error
		if d.f.Day, err = atoi(digits[n-2:]); err != nil {
			return err
		}
		if d.f.Month, err = atoi(digits[n-4 : n-2]); err != nil {
			return err
		}
		if d.f.Year, err = atoi(digits[:n-4]); err != nil {
			return err
		}
		d.twoDigits = n-4 == 2
		return nil
	}

	if d.fmask&fTime == 0 && (n == 6 || n == 4) {
		if err := d.mark(fTime); err != nil {
			return err
		}
		var err error
		if d.f.Hour, err = atoi(digits[:2]); err != nil {
			return err
		}
		if d.f.Minute, err = atoi(digits[2:4]); err != nil {
			return err
		}
		d.f.Second = 0
		if n == 6 {
			if d.f.Second, err = atoi(digits[4:]); err != nil {
				return err
			}
		}
		d.f.Fsec = fsec
		return nil
	}

	return ErrBadFormat
}

// decodeNumber decodes a single numeric date field, deciding whether it is
// the year, month, or day from the fields already set and the configured
// field order.
func (d *decoder) decodeNumber(text string) error {
	val, err := atoi(text)
	if err != nil {
		return err
	}
	flen := len(text)

	var mask int
	switch d.fmask & fDate {
	case 0:
		// Nothing so far: either a year of more than two digits or the
		// first field in the configured order.
		switch {
		case flen >= 3 || d.opts.Order == OrderYMD:
			mask = fYear
		case d.opts.Order == OrderDMY:
			mask = fDay
		default:
			mask = fMonth
		}
	case fYear:
		mask = fMonth
	case fMonth:
		if d.textMonth && (flen >= 3 || d.opts.Order == OrderYMD) {
			mask = fYear
		} else {
			mask = fDay
		}
	case fYear | fMonth:
		if d.textMonth && flen >= 3 && d.twoDigits {
			// The two-digit field taken as the year was really the day.
			if err := d.mark(fDay); err != nil {
				return err
			}
			d.f.Day = d.f.Year
			d.f.Year = val
			d.twoDigits = false
			return nil
		}
		mask = fDay
	case fMonth | fDay:
		mask = fYear
	case fDay:
		mask = fMonth
	case fDate:
		// The date is complete, so it must be a time.
		return d.decodeNumberField(text, "", false, true)
	default:
		return ErrBadFormat
	}

	if err := d.mark(mask); err != nil {
		return err
	}
	switch mask {
	case fYear:
		d.f.Year = val
		d.twoDigits = flen <= 2
	case fMonth:
		d.f.Month = val
	case fDay:
		d.f.Day = val
	}
	return nil
}

// applyKeyword applies a recognized word.
func (d *decoder) applyKeyword(kw keyword) error {
	switch kw.typ {
	case kwMonth:
		if d.fmask&fMonth != 0 && !d.textMonth && d.fmask&fDay == 0 && d.f.Month >= 1 && d.f.Month <= 31 {
			// The numeric field taken as the month was really the day.
			d.fmask |= fDay
			d.f.Day = d.f.Month
		} else if err := d.mark(fMonth); err != nil {
			return err
		}
		d.f.Month = kw.val
		d.textMonth = true
	case kwDayOfWeek:
		return d.mark(fDOW)
	case kwMeridian:
		if err := d.mark(fMeridian); err != nil {
			return err
		}
		d.meridian = kw.val
	case kwEra:
		if err := d.mark(fEra); err != nil {
			return err
		}
		d.bc = kw.val == eraBC
	case kwZone:
		if err := d.mark(fTZ); err != nil {
			return err
		}
		d.f.Offset = kw.val
		d.f.HasOffset = true
	case kwReserved:
		return d.applyReserved(kw.val)
	case kwIgnore:
	default:
		return ErrBadFormat
	}
	return nil
}

// applyReserved applies a reserved word.
func (d *decoder) applyReserved(val int) error {
	switch val {
	case rsvEpoch, rsvLate, rsvEarly:
		if err := d.mark(fSpecial | fDate | fTime | fTZ); err != nil {
			return err
		}
		d.f.Kind = [...]Kind{rsvEpoch: KindEpoch, rsvLate: KindLate, rsvEarly: KindEarly}[val]
	case rsvNow:
		if d.opts.Now.IsZero() {
			return ErrBadFormat
		}
		if err := d.mark(fDate | fTime | fTZ); err != nil {
			return err
		}
		now := d.opts.Now
		var month time.Month
		d.f.Year, month, d.f.Day = now.Date()
		d.f.Month = int(month)
		d.f.Hour, d.f.Minute, d.f.Second = now.Clock()
		d.f.Fsec = int64(now.Nanosecond() / 1000)
		_, d.f.Offset = now.Zone()
		d.f.HasOffset = true
	case rsvToday, rsvTomorrow, rsvYesterday:
		if d.opts.Now.IsZero() {
			return ErrBadFormat
		}
		if err := d.mark(fDate); err != nil {
			return err
		}
		delta := 0
		switch val {
		case rsvTomorrow:
			delta = 1
		case rsvYesterday:
			delta = -1
		}
		var month time.Month
		d.f.Year, month, d.f.Day = d.opts.Now.AddDate(0, 0, delta).Date()
		d.f.Month = int(month)
	case rsvAllBalls:
		if err := d.mark(fTime); err != nil {
			return err
		}
		d.f.Hour, d.f.Minute, d.f.Second, d.f.Fsec = 0, 0, 0, 0
	default:
		return ErrBadFormat
	}
	return nil
}

// finish applies the meridian and era and validates the decoded fields.
func (d *decoder) finish() (Fields, error) {
	if d.f.Kind != KindDate {
		return d.f, nil
	}

	if d.meridian >= 0 {
		if d.f.Hour > 12 {
			return Fields{}, ErrFieldOverflow
		}
		if d.meridian == mAM && d.f.Hour == 12 {
			d.f.Hour = 0
		} else if d.meridian == mPM && d.f.Hour != 12 {
			d.f.Hour += 12
		}
	}

	if err := d.validateDate(); err != nil {
		return Fields{}, err
	}
	if d.fmask&fDate != fDate {
		return Fields{}, ErrBadFormat
	}
	if err := validateTime(d.f.Hour, d.f.Minute, d.f.Second, d.f.Fsec); err != nil {
		return Fields{}, err
	}
	return d.f, nil
}

// validateDate converts BC and two-digit years and checks the month and
// day ranges.
func (d *decoder) validateDate() error {
	if d.fmask&fYear != 0 {
		switch {
		case d.bc:
			if d.f.Year <= 0 {
				return ErrFieldOverflow
			}
			d.f.Year = -(d.f.Year - 1)
		case d.twoDigits:
			if d.f.Year < 70 {
				d.f.Year += 2000
			} else if d.f.Year < 100 {
				d.f.Year += 1900
			}
		case d.f.Year <= 0:
			return ErrFieldOverflow
		}
	}

	if d.fmask&fMonth != 0 && (d.f.Month < 1 || d.f.Month > 12) {
		return ErrMDFieldOverflow
	}
	if d.fmask&fDay != 0 && (d.f.Day < 1 || d.f.Day > 31) {
		return ErrMDFieldOverflow
	}
	if d.fmask&fDate == fDate && d.f.Day > calendar.DaysInMonth(d.f.Year, d.f.Month) {
		return ErrFieldOverflow
	}
	return nil
}

// validateTime checks the ranges of time of day fields. Allows a leap
// second and 24:00:00.
func validateTime(hour, minute, sec int, fsec int64) error {
	if hour < 0 || minute < 0 || minute > 59 || sec < 0 || sec > 60 ||
		hour > 24 || fsec < 0 || fsec > calendar.USecsPerSec ||
		(hour == 24 && (minute > 0 || sec > 0 || fsec > 0)) {
		return ErrFieldOverflow
	}
	return nil
}

// decodeTime decodes hh:mm, hh:mm:ss, hh:mm:ss.fff, or mm:ss.fff. Does not
// check ranges.
func decodeTime(text string) (hour, minute, sec int, fsec int64, err error) {
	parts := strings.Split(text, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, 0, ErrBadFormat
	}
	if hour, err = atoi(parts[0]); err != nil {
		return 0, 0, 0, 0, err
	}

	if len(parts) == 2 {
		mstr, frac, hasFrac := strings.Cut(parts[1], ".")
		if minute, err = atoi(mstr); err != nil {
			return 0, 0, 0, 0, err
		}
		if hasFrac {
			// Always read mm:ss.fff as minutes to seconds.
			if fsec, err = parseFraction(frac); err != nil {
				return 0, 0, 0, 0, err
			}
			hour, minute, sec = 0, hour, minute
		}
		return hour, minute, sec, fsec, nil
	}

	if minute, err = atoi(parts[1]); err != nil {
		return 0, 0, 0, 0, err
	}
	sstr, frac, hasFrac := strings.Cut(parts[2], ".")
	if sec, err = atoi(sstr); err != nil {
		return 0, 0, 0, 0, err
	}
	if hasFrac {
		if fsec, err = parseFraction(frac); err != nil {
			return 0, 0, 0, 0, err
		}
	}
	return hour, minute, sec, fsec, nil
}

// decodeTimezone decodes a signed numeric time zone: +hh, +hhmm, +hh:mm, or
// +hh:mm:ss. Returns the offset in seconds east of Greenwich.
func decodeTimezone(text string) (int, error) {
	if len(text) < 2 || (text[0] != '+' && text[0] != '-') {
		return 0, ErrBadFormat
	}

	rest := text[1:]
	hr, rest, err := leadingInt(rest)
	if err != nil {
		return 0, ErrTZDispOverflow
	}

	var minute, sec int
	switch {
	case strings.HasPrefix(rest, ":"):
		if minute, rest, err = leadingInt(rest[1:]); err != nil {
			return 0, ErrTZDispOverflow
		}
		if strings.HasPrefix(rest, ":") {
			if sec, rest, err = leadingInt(rest[1:]); err != nil {
				return 0, ErrTZDispOverflow
			}
		}
	case rest == "" && len(text) > 3:
		// Run-together hhmm.
		minute = hr % 100
		hr /= 100
	}

	if hr < 0 || hr > maxTZDispHour || minute < 0 || minute >= 60 || sec < 0 || sec >= 60 {
		return 0, ErrTZDispOverflow
	}
	if rest != "" {
		return 0, ErrBadFormat
	}

	off := (hr*60+minute)*60 + sec
	if text[0] == '-' {
		off = -off
	}
	return off, nil
}

// leadingInt parses the leading digits of s and returns the value and the
// remainder of s. Leading digits are optional and default to zero.
func leadingInt(s string) (int, string, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, s, nil
	}
	val, err := atoi(s[:i])
	return val, s[i:], err
}

// atoi parses an unsigned 32-bit decimal field. Returns ErrFieldOverflow
// for values too large and ErrBadFormat for anything else that is not a
// number.
func atoi(s string) (int, error) {
	val, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrFieldOverflow
		}
		return 0, ErrBadFormat
	}
	return int(val), nil
}

// parseFraction parses the digits after a decimal point as a fraction of a
// second and returns it in microseconds rounded half to even.
func parseFraction(digits string) (int64, error) {
	if digits == "" {
		return 0, ErrBadFormat
	}
	for i := range len(digits) {
		if !isDigit(digits[i]) {
			return 0, ErrBadFormat
		}
	}
	frac, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return 0, ErrBadFormat
	}
	return int64(math.RoundToEven(frac * float64(calendar.USecsPerSec))), nil
}
