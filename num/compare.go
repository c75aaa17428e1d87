// Copyright 2024 DataStone, Inc. All rights reserved.

package num

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// CompareResult is a three-way comparison outcome.
type CompareResult int

const (
	Less    CompareResult = -1
	Equal   CompareResult = 0
	Greater CompareResult = 1
)

func (r CompareResult) String() string {
	switch r {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	default:
		return "GREATER"
	}
}

// CompareDecimalInt64 returns the true ordering of d relative to v. NaN sorts
// greater than every value; ±Inf sort above/below all integers. The decimal
// is never rounded, so equality holds only when d is exactly the integer v.
func CompareDecimalInt64(d *apd.Decimal, v int64) CompareResult {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return Greater
	case apd.Infinite:
		if d.Negative {
			return Less
		}
		return Greater
	}
	var iv apd.Decimal
	iv.SetInt64(v)
	return CompareResult(d.Cmp(&iv))
}

// CompareFloat64Int64 returns the true ordering of f relative to v without
// converting v to a float. Converting the integer would be lossy above 2^53:
// two different integers can collapse onto the same float64, and a
// float-to-float comparison could not tell them apart. Instead the float's
// integral part is extracted exactly (truncation of a float64 is exact, and
// converting a truncated in-range float64 to int64 is exact) and compared as
// an integer; the fractional remainder breaks ties.
func CompareFloat64Int64(f float64, v int64) CompareResult {
	if math.IsNaN(f) {
		return Greater
	}
	if math.IsInf(f, 1) {
		return Greater
	}
	if math.IsInf(f, -1) {
		return Less
	}

	trunc := math.Trunc(f)
	// float64(1<<63) is exactly 2^63; any truncated value at or above it
	// exceeds MaxInt64, anything below -2^63 is under MinInt64.
	if trunc >= float64(1<<63) {
		return Greater
	}
	if trunc < -float64(1<<63) {
		return Less
	}

	ti := int64(trunc)
	if ti < v {
		return Less
	}
	if ti > v {
		return Greater
	}
	frac := f - trunc
	if frac > 0 {
		return Greater
	}
	if frac < 0 {
		return Less
	}
	return Equal
}

// CompareFloat32Int64 is CompareFloat64Int64 for binary32 operands; widening
// a float32 to float64 is value preserving.
func CompareFloat32Int64(f float32, v int64) CompareResult {
	return CompareFloat64Int64(float64(f), v)
}
