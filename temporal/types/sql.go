package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

//nolint:gochecknoglobals
var (
	// textConfig reads and writes the text and database representations.
	textConfig = Config{Style: StyleISO, Order: OrderMDY}

	// jsonConfig writes the JSON representation, as to_json does.
	jsonConfig = Config{Style: StyleXSD, Order: OrderMDY}
)

// scanText scans the string or []byte src into dst using parse. Nil and
// empty values leave dst unchanged.
func scanText[T any](dst *T, src any, typeName string, parse func(string) (T, error)) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		// an empty value from a table scans as NULL
		if src == "" {
			return nil
		}
		v, err := parse(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*dst = v
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return scanText(dst, string(src), typeName, parse)
	default:
		return fmt.Errorf("%w: unable to scan type %T into %s", ErrScan, src, typeName)
	}
	return nil
}

// unmarshalText parses data into dst using parse, wrapping errors in
// ErrScan.
func unmarshalText[T any](dst *T, data []byte, parse func(string) (T, error)) error {
	v, err := parse(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	*dst = v
	return nil
}

// unmarshalJSON decodes the JSON string in data and parses it into dst
// using parse.
func unmarshalJSON[T any](dst *T, data []byte, parse func(string) (T, error)) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	return unmarshalText(dst, []byte(str), parse)
}

func parseDateText(src string) (Date, error) { return ParseDate(src, textConfig) }

func parseTimestampText(src string) (Timestamp, error) {
	return ParseTimestamp(src, Unconstrained, textConfig)
}

func parseTimestampTZText(src string) (TimestampTZ, error) {
	return ParseTimestampTZ(src, Unconstrained, textConfig)
}

// Scan implements sql.Scanner so Dates can be read from databases
// transparently. Strings, []byte, and time.Time values are supported.
func (d *Date) Scan(src any) error {
	if t, ok := src.(time.Time); ok {
		v, err := DateFromTime(t)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*d = v
		return nil
	}
	return scanText(d, src, "Date", parseDateText)
}

// Value implements driver.Valuer so that Dates can be written to databases
// transparently. Dates map to ISO strings.
func (d Date) Value() (driver.Value, error) {
	return d.Format(textConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(nil, textConfig)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	return unmarshalText(d, data, parseDateText)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	s, err := d.Format(jsonConfig)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(d, data, parseDateText)
}

// Scan implements sql.Scanner so Timestamps can be read from databases
// transparently. Strings, []byte, and time.Time values are supported.
func (ts *Timestamp) Scan(src any) error {
	if t, ok := src.(time.Time); ok {
		v, err := TimestampFromTime(t)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*ts = v
		return nil
	}
	return scanText(ts, src, "Timestamp", parseTimestampText)
}

// Value implements driver.Valuer so that Timestamps can be written to
// databases transparently. Timestamps map to ISO strings.
func (ts Timestamp) Value() (driver.Value, error) {
	return ts.Format(textConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return ts.AppendFormat(nil, textConfig)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(data []byte) error {
	return unmarshalText(ts, data, parseTimestampText)
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	s, err := ts.Format(jsonConfig)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(ts, data, parseTimestampText)
}

// Scan implements sql.Scanner so TimestampTZs can be read from databases
// transparently. Strings, []byte, and time.Time values are supported.
// Strings without an explicit offset are read as UTC.
func (ts *TimestampTZ) Scan(src any) error {
	if t, ok := src.(time.Time); ok {
		v, err := TimestampTZFromTime(t)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*ts = v
		return nil
	}
	return scanText(ts, src, "TimestampTZ", parseTimestampTZText)
}

// Value implements driver.Valuer so that TimestampTZs can be written to
// databases transparently. TimestampTZs map to ISO strings in UTC.
func (ts TimestampTZ) Value() (driver.Value, error) {
	return ts.Format(textConfig)
}

// MarshalText implements encoding.TextMarshaler.
func (ts TimestampTZ) MarshalText() ([]byte, error) {
	return ts.AppendFormat(nil, textConfig)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *TimestampTZ) UnmarshalText(data []byte) error {
	return unmarshalText(ts, data, parseTimestampTZText)
}

// MarshalJSON implements json.Marshaler.
func (ts TimestampTZ) MarshalJSON() ([]byte, error) {
	s, err := ts.Format(jsonConfig)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *TimestampTZ) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(ts, data, parseTimestampTZText)
}

// Scan implements sql.Scanner so Intervals can be read from databases
// transparently. Strings and []byte values are supported.
func (iv *Interval) Scan(src any) error {
	return scanText(iv, src, "Interval", ParseInterval)
}

// Value implements driver.Valuer so that Intervals can be written to
// databases transparently. Intervals map to strings in the postgres
// IntervalStyle.
func (iv Interval) Value() (driver.Value, error) {
	return iv.Format(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (iv Interval) MarshalText() ([]byte, error) {
	return iv.AppendFormat(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (iv *Interval) UnmarshalText(data []byte) error {
	return unmarshalText(iv, data, ParseInterval)
}

// MarshalJSON implements json.Marshaler.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(iv.Format())
}

// UnmarshalJSON implements json.Unmarshaler.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(iv, data, ParseInterval)
}
