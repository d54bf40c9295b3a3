package parser

// keywordType classifies the words recognized in date/time input.
type keywordType int

const (
	kwMonth keywordType = iota + 1
	kwDayOfWeek
	kwMeridian
	kwEra
	kwZone
	kwISOTime
	kwIgnore
	kwReserved
)

// Meridian values.
const (
	mAM = iota
	mPM
)

// Era values.
const (
	eraAD = iota
	eraBC
)

// Reserved words.
const (
	rsvEpoch = iota
	rsvLate
	rsvEarly
	rsvNow
	rsvToday
	rsvTomorrow
	rsvYesterday
	rsvAllBalls
)

type keyword struct {
	typ keywordType
	val int
}

// dateKeywords maps lowercase words to their meanings in date/time input.
// Zone values are UTC offsets in seconds east of Greenwich.
var dateKeywords = map[string]keyword{
	"jan": {kwMonth, 1}, "january": {kwMonth, 1},
	"feb": {kwMonth, 2}, "february": {kwMonth, 2},
	"mar": {kwMonth, 3}, "march": {kwMonth, 3},
	"apr": {kwMonth, 4}, "april": {kwMonth, 4},
	"may": {kwMonth, 5},
	"jun": {kwMonth, 6}, "june": {kwMonth, 6},
	"jul": {kwMonth, 7}, "july": {kwMonth, 7},
	"aug": {kwMonth, 8}, "august": {kwMonth, 8},
	"sep": {kwMonth, 9}, "sept": {kwMonth, 9}, "september": {kwMonth, 9},
	"oct": {kwMonth, 10}, "october": {kwMonth, 10},
	"nov": {kwMonth, 11}, "november": {kwMonth, 11},
	"dec": {kwMonth, 12}, "december": {kwMonth, 12},

	"sun": {kwDayOfWeek, 0}, "sunday": {kwDayOfWeek, 0},
	"mon": {kwDayOfWeek, 1}, "monday": {kwDayOfWeek, 1},
	"tue": {kwDayOfWeek, 2}, "tues": {kwDayOfWeek, 2}, "tuesday": {kwDayOfWeek, 2},
	"wed": {kwDayOfWeek, 3}, "wednesday": {kwDayOfWeek, 3},
	"thu": {kwDayOfWeek, 4}, "thur": {kwDayOfWeek, 4}, "thurs": {kwDayOfWeek, 4}, "thursday": {kwDayOfWeek, 4},
	"fri": {kwDayOfWeek, 5}, "friday": {kwDayOfWeek, 5},
	"sat": {kwDayOfWeek, 6}, "saturday": {kwDayOfWeek, 6},

	"am": {kwMeridian, mAM}, "pm": {kwMeridian, mPM},
	"ad": {kwEra, eraAD}, "bc": {kwEra, eraBC},

	"t":  {kwISOTime, 0},
	"on": {kwIgnore, 0},

	"epoch":     {kwReserved, rsvEpoch},
	"infinity":  {kwReserved, rsvLate},
	"+infinity": {kwReserved, rsvLate},
	"-infinity": {kwReserved, rsvEarly},
	"now":       {kwReserved, rsvNow},
	"today":     {kwReserved, rsvToday},
	"tomorrow":  {kwReserved, rsvTomorrow},
	"yesterday": {kwReserved, rsvYesterday},
	"allballs":  {kwReserved, rsvAllBalls},

	"z": {kwZone, 0}, "zulu": {kwZone, 0},
	"utc": {kwZone, 0}, "ut": {kwZone, 0}, "gmt": {kwZone, 0},
	"wet": {kwZone, 0}, "west": {kwZone, 3600},
	"bst": {kwZone, 3600},
	"cet": {kwZone, 3600}, "cest": {kwZone, 7200},
	"eet": {kwZone, 7200}, "eest": {kwZone, 10800},
	"msk": {kwZone, 10800},
	"jst": {kwZone, 32400},
	"est": {kwZone, -18000}, "edt": {kwZone, -14400},
	"cst": {kwZone, -21600}, "cdt": {kwZone, -18000},
	"mst": {kwZone, -25200}, "mdt": {kwZone, -21600},
	"pst": {kwZone, -28800}, "pdt": {kwZone, -25200},
	"akst": {kwZone, -32400}, "akdt": {kwZone, -28800},
	"hst": {kwZone, -36000},
}

// ZoneOffset returns the UTC offset in seconds east of Greenwich for the
// time zone abbreviation abbr, which must be lowercase.
func ZoneOffset(abbr string) (int, bool) {
	if kw, ok := dateKeywords[abbr]; ok && kw.typ == kwZone {
		return kw.val, true
	}
	return 0, false
}

// ZoneAbbrevs returns the time zone abbreviations recognized in input,
// mapped to their UTC offsets in seconds east of Greenwich.
func ZoneAbbrevs() map[string]int {
	zones := make(map[string]int, 32)
	for name, kw := range dateKeywords {
		if kw.typ == kwZone {
			zones[name] = kw.val
		}
	}
	return zones
}

// Interval units.
type unit int

const (
	unitMicrosecond unit = iota
	unitMillisecond
	unitSecond
	unitMinute
	unitHour
	unitDay
	unitWeek
	unitMonth
	unitYear
	unitDecade
	unitCentury
	unitMillennium
	unitAgo
)

// intervalUnits maps lowercase unit words to interval units.
var intervalUnits = map[string]unit{
	"microsecond": unitMicrosecond, "microseconds": unitMicrosecond,
	"microsecon": unitMicrosecond, "us": unitMicrosecond, "usec": unitMicrosecond,
	"usecs": unitMicrosecond, "usecond": unitMicrosecond, "useconds": unitMicrosecond,

	"millisecond": unitMillisecond, "milliseconds": unitMillisecond,
	"millisecon": unitMillisecond, "ms": unitMillisecond, "msec": unitMillisecond,
	"msecs": unitMillisecond, "msecond": unitMillisecond, "mseconds": unitMillisecond,

	"second": unitSecond, "seconds": unitSecond, "s": unitSecond,
	"sec": unitSecond, "secs": unitSecond,

	"minute": unitMinute, "minutes": unitMinute, "m": unitMinute,
	"min": unitMinute, "mins": unitMinute,

	"hour": unitHour, "hours": unitHour, "h": unitHour,
	"hr": unitHour, "hrs": unitHour,

	"day": unitDay, "days": unitDay, "d": unitDay,

	"week": unitWeek, "weeks": unitWeek, "w": unitWeek,

	"month": unitMonth, "months": unitMonth, "mon": unitMonth, "mons": unitMonth,

	"year": unitYear, "years": unitYear, "y": unitYear,
	"yr": unitYear, "yrs": unitYear,

	"decade": unitDecade, "decades": unitDecade, "dec": unitDecade, "decs": unitDecade,

	"century": unitCentury, "centuries": unitCentury, "c": unitCentury, "cent": unitCentury,

	"millennium": unitMillennium, "millennia": unitMillennium,
	"mil": unitMillennium, "mils": unitMillennium,

	"ago": unitAgo,
}
