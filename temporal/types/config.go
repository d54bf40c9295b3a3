package types

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/theory/pgtemporal/temporal/parser"
	"golang.org/x/exp/maps"
)

// DateStyle identifies a PostgreSQL date/time output style.
type DateStyle int

const (
	// StyleISO formats dates as 2024-01-02 and timestamps as
	// 2024-01-02 10:04:05-08. The default.
	StyleISO DateStyle = iota

	// StylePostgres formats dates as 01-02-2024 and timestamps as
	// Tue Jan 02 10:04:05 2024 PST.
	StylePostgres

	// StyleSQL formats dates as 01/02/2024 and timestamps as
	// 01/02/2024 10:04:05 PST.
	StyleSQL

	// StyleGerman formats dates as 02.01.2024 and timestamps as
	// 02.01.2024 10:04:05 PST.
	StyleGerman

	// StyleXSD formats dates as 2024-01-02 and timestamps as
	// 2024-01-02T10:04:05-08:00.
	StyleXSD
)

//nolint:gochecknoglobals
var styleNames = [...]string{
	StyleISO:      "ISO",
	StylePostgres: "Postgres",
	StyleSQL:      "SQL",
	StyleGerman:   "German",
	StyleXSD:      "XSD",
}

// String returns the name of the style.
func (s DateStyle) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("DateStyle(%d)", int(s))
	}
	return styleNames[s]
}

// DateOrder determines the order of the year, month, and day fields in
// ambiguous numeric dates and in some output styles.
type DateOrder = parser.Order

// Date orders.
const (
	OrderMDY = parser.OrderMDY
	OrderYMD = parser.OrderYMD
	OrderDMY = parser.OrderDMY
)

// Config carries the settings PostgreSQL reads from the session when
// parsing and formatting dates and times. The zero value is the ISO style,
// MDY order, and UTC, with the real clock.
type Config struct {
	// Style is the output DateStyle.
	Style DateStyle

	// Order is the field order used to read ambiguous dates and to format
	// dates in the SQL and Postgres styles.
	Order DateOrder

	// Offset is the session UTC offset in seconds east of Greenwich. It
	// applies to timestamptz input without an explicit zone and to all
	// timestamptz output.
	Offset int

	// ZoneLabel is the session time zone abbreviation. The Postgres, SQL,
	// and German styles print it in place of the numeric offset when set.
	ZoneLabel string

	// Clock resolves now, today, tomorrow, and yesterday. Nil means the
	// real clock.
	Clock clockwork.Clock
}

// DefaultConfig returns the PostgreSQL default configuration: DateStyle
// "ISO, MDY", time zone UTC, and the real clock.
func DefaultConfig() Config {
	return Config{
		Style: StyleISO,
		Order: OrderMDY,
		Clock: clockwork.NewRealClock(),
	}
}

// Location returns a fixed time.Location for the offset and zone label.
func (cfg Config) Location() *time.Location {
	return time.FixedZone(cfg.ZoneLabel, cfg.Offset)
}

// now returns the current time in the configured offset.
func (cfg Config) now() time.Time {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return clock.Now().In(cfg.Location())
}

// parserOptions returns the options for decoding date/time input.
func (cfg Config) parserOptions() parser.Options {
	return parser.Options{Order: cfg.Order, Now: cfg.now()}
}

//nolint:gochecknoglobals
var (
	styleKeywords = map[string]DateStyle{
		"iso":      StyleISO,
		"postgres": StylePostgres,
		"sql":      StyleSQL,
		"german":   StyleGerman,
		"xsd":      StyleXSD,
	}

	orderKeywords = map[string]DateOrder{
		"ymd":         OrderYMD,
		"dmy":         OrderDMY,
		"euro":        OrderDMY,
		"european":    OrderDMY,
		"mdy":         OrderMDY,
		"us":          OrderMDY,
		"noneuro":     OrderMDY,
		"noneuropean": OrderMDY,
	}
)

// ParseDateStyle parses a PostgreSQL DateStyle setting such as "ISO, MDY"
// or "German". It contains a style, an order, or both, separated by commas.
// The keyword DEFAULT supplies ISO and MDY for whichever is not given.
// German implies DMY unless an order is given. Returns ErrParse for
// unrecognized keywords and for conflicting styles or orders.
func ParseDateStyle(src string) (DateStyle, DateOrder, error) {
	style, order := StyleISO, OrderMDY
	haveStyle, haveOrder := false, false

	for _, tok := range strings.Split(src, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if s, ok := styleKeywords[tok]; ok {
			if haveStyle && style != s {
				return 0, 0, fmt.Errorf("%w: conflicting DateStyle specifications: %q", ErrParse, src)
			}
			style, haveStyle = s, true
			if s == StyleGerman && !haveOrder {
				order = OrderDMY
			}
			continue
		}

		if o, ok := orderKeywords[tok]; ok {
			if haveOrder && order != o {
				return 0, 0, fmt.Errorf("%w: conflicting DateStyle specifications: %q", ErrParse, src)
			}
			order, haveOrder = o, true
			continue
		}

		if tok != "default" {
			return 0, 0, fmt.Errorf("%w: unrecognized DateStyle key word: %q", ErrParse, tok)
		}
		if !haveStyle {
			style, haveStyle = StyleISO, true
		}
		if !haveOrder {
			order, haveOrder = OrderMDY, true
		}
	}

	return style, order, nil
}

// FormatDateStyle returns the DateStyle setting for style and order, e.g.
// "ISO, MDY".
func FormatDateStyle(style DateStyle, order DateOrder) string {
	return style.String() + ", " + order.String()
}

// DateStyleKeywords returns the sorted lowercase style and order keywords
// accepted by ParseDateStyle.
func DateStyleKeywords() (styles, orders []string) {
	styles = maps.Keys(styleKeywords)
	slices.Sort(styles)
	orders = maps.Keys(orderKeywords)
	slices.Sort(orders)
	return styles, orders
}

// ZoneAbbrevs returns the sorted time zone abbreviations recognized in
// timestamp input.
func ZoneAbbrevs() []string {
	zones := maps.Keys(parser.ZoneAbbrevs())
	slices.Sort(zones)
	return zones
}
