// Package temporal provides a PostgreSQL-compatible date, timestamp, and
// interval engine. An [Engine] bundles the session settings PostgreSQL
// consults when reading and writing these types (the DateStyle, the date
// field order, the UTC offset, and the clock used for "now") and applies
// them to every operation.
//
// The engine is a thin layer over the packages that do the work:
// [types] for the values themselves, [calendar] for Julian day
// arithmetic, and [hash] for PostgreSQL-compatible hashing. Use them
// directly for finer control.
//
// [calendar]: https://pkg.go.dev/github.com/theory/pgtemporal/temporal/calendar
// [hash]: https://pkg.go.dev/github.com/theory/pgtemporal/temporal/hash
package temporal

import (
	"github.com/jonboulle/clockwork"
	"github.com/theory/pgtemporal/temporal/types"
)

// Engine parses, formats, and computes with dates, timestamps, and
// intervals using a fixed configuration. It is safe for concurrent use.
type Engine struct {
	cfg types.Config
}

// Option is an option passed to New to configure an Engine.
type Option func(*Engine)

// WithConfig replaces the entire configuration. Options that follow it
// modify the replacement.
func WithConfig(cfg types.Config) Option { return func(e *Engine) { e.cfg = cfg } }

// WithDateStyle sets the output DateStyle.
func WithDateStyle(style types.DateStyle) Option {
	return func(e *Engine) { e.cfg.Style = style }
}

// WithDateOrder sets the field order for ambiguous date input and for the
// SQL and Postgres output styles.
func WithDateOrder(order types.DateOrder) Option {
	return func(e *Engine) { e.cfg.Order = order }
}

// WithOffset sets the session UTC offset in seconds east of Greenwich.
func WithOffset(seconds int) Option { return func(e *Engine) { e.cfg.Offset = seconds } }

// WithZoneLabel sets the time zone abbreviation printed by the Postgres,
// SQL, and German styles.
func WithZoneLabel(label string) Option { return func(e *Engine) { e.cfg.ZoneLabel = label } }

// WithClock sets the clock that resolves now, today, tomorrow, and
// yesterday.
func WithClock(clock clockwork.Clock) Option { return func(e *Engine) { e.cfg.Clock = clock } }

// New creates an Engine configured by opts. Without options it uses
// [types.DefaultConfig]: ISO style, MDY order, UTC, and the real clock.
func New(opts ...Option) *Engine {
	e := &Engine{cfg: types.DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns a copy of the configuration of e.
func (e *Engine) Config() types.Config {
	return e.cfg
}

// ParseDate parses src into a date.
func (e *Engine) ParseDate(src string) (types.Date, error) {
	return types.ParseDate(src, e.cfg)
}

// FormatDate formats d in the configured style.
func (e *Engine) FormatDate(d types.Date) (string, error) {
	return d.Format(e.cfg)
}

// ParseTimestamp parses src into a timestamp without time zone rounded to
// precision p. Pass [types.Unconstrained] to keep microseconds.
func (e *Engine) ParseTimestamp(src string, p types.Precision) (types.Timestamp, error) {
	return types.ParseTimestamp(src, p, e.cfg)
}

// ParseTimestampTZ parses src into a timestamp with time zone rounded to
// precision p. Input without a zone is read at the configured offset.
func (e *Engine) ParseTimestampTZ(src string, p types.Precision) (types.TimestampTZ, error) {
	return types.ParseTimestampTZ(src, p, e.cfg)
}

// FormatTimestamp formats ts in the configured style.
func (e *Engine) FormatTimestamp(ts types.Timestamp) (string, error) {
	return ts.Format(e.cfg)
}

// FormatTimestampTZ formats ts at the configured offset in the configured
// style.
func (e *Engine) FormatTimestampTZ(ts types.TimestampTZ) (string, error) {
	return ts.Format(e.cfg)
}

// ParseInterval parses src into an interval.
func (e *Engine) ParseInterval(src string) (types.Interval, error) {
	return types.ParseInterval(src)
}

// FormatInterval formats iv in the postgres IntervalStyle.
func (e *Engine) FormatInterval(iv types.Interval) string {
	return iv.Format()
}

// AddInterval returns ts plus iv.
func (e *Engine) AddInterval(ts types.Timestamp, iv types.Interval) (types.Timestamp, error) {
	return ts.AddInterval(iv)
}

// SubInterval returns ts minus iv.
func (e *Engine) SubInterval(ts types.Timestamp, iv types.Interval) (types.Timestamp, error) {
	return ts.SubInterval(iv)
}

// Difference returns the justified interval from b to a.
func (e *Engine) Difference(a, b types.Timestamp) (types.Interval, error) {
	return a.Sub(b)
}

// AddIntervalTZ returns ts plus iv.
func (e *Engine) AddIntervalTZ(ts types.TimestampTZ, iv types.Interval) (types.TimestampTZ, error) {
	return ts.AddInterval(iv)
}

// SubIntervalTZ returns ts minus iv.
func (e *Engine) SubIntervalTZ(ts types.TimestampTZ, iv types.Interval) (types.TimestampTZ, error) {
	return ts.SubInterval(iv)
}

// DifferenceTZ returns the justified interval from b to a.
func (e *Engine) DifferenceTZ(a, b types.TimestampTZ) (types.Interval, error) {
	return a.Sub(b)
}

// CompareIntervals returns -1, 0, or +1 as a is shorter than, the same
// length as, or longer than b.
func (e *Engine) CompareIntervals(a, b types.Interval) int {
	return a.Compare(b)
}

// Justify moves whole days out of the time part of iv.
func (e *Engine) Justify(iv types.Interval) (types.Interval, error) {
	return iv.JustifyHours()
}
