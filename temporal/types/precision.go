package types

import (
	"fmt"
	"math"
)

// Precision is the number of fractional second digits retained by a
// timestamp, the typmod of timestamp(p) and timestamptz(p).
type Precision int32

const (
	// Unconstrained indicates no declared precision. Values keep all six
	// fractional digits.
	Unconstrained Precision = -1

	// MaxPrecision is the largest precision, microseconds.
	MaxPrecision Precision = 6
)

//nolint:gochecknoglobals
var (
	timestampScales  = [MaxPrecision + 1]int64{1000000, 100000, 10000, 1000, 100, 10, 1}
	timestampOffsets = [MaxPrecision + 1]int64{500000, 50000, 5000, 500, 50, 5, 0}
)

// AdjustTimestampForTypmod rounds the microsecond timestamp *ts to p
// fractional digits, half away from zero. Infinite timestamps and the
// Unconstrained and MaxPrecision precisions leave *ts unchanged. Returns an
// ErrRange error for any other p outside [0, 6].
//
// https://github.com/postgres/postgres/blob/REL_17_2/src/backend/utils/adt/timestamp.c
func AdjustTimestampForTypmod(ts *int64, p Precision) error {
	if !AdjustTimestampForTypmodSoft(ts, p) {
		return fmt.Errorf(
			"%w: timestamp(%d) precision must be between %d and %d",
			ErrRange, p, 0, MaxPrecision,
		)
	}
	return nil
}

// AdjustTimestampForTypmodSoft is like AdjustTimestampForTypmod but returns
// false instead of an error for an invalid precision, leaving *ts
// unchanged.
func AdjustTimestampForTypmodSoft(ts *int64, p Precision) bool {
	if *ts == math.MinInt64 || *ts == math.MaxInt64 || p == Unconstrained || p == MaxPrecision {
		return true
	}
	if p < 0 || p > MaxPrecision {
		return false
	}

	scale, offset := timestampScales[p], timestampOffsets[p]
	if *ts >= 0 {
		*ts = (*ts + offset) / scale * scale
	} else {
		*ts = -((-*ts + offset) / scale * scale)
	}
	return true
}
