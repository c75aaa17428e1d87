// Copyright 2024 DataStone, Inc. All rights reserved.

package num

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// LitClass describes a numeric constant relative to an integer width. It is
// computed exactly: the integral part is extracted without any narrowing
// conversion that could overflow or round, so the out-of-range decision is
// made by magnitude comparison, never by converting and catching a failure.
type LitClass struct {
	// Range places the constant against the width's [MIN,MAX] interval:
	// -1 below it, 0 within it, +1 above it. NaN classifies as above
	// (it sorts greater than every value), +Inf above, -Inf below.
	Range int

	// Val is the constant's integral part, truncated toward zero. Only
	// meaningful when Range == 0.
	Val int64

	// FracSign is the sign of the fractional remainder (-1, 0, +1). Zero
	// means the constant is exactly the integer Val.
	FracSign int
}

// Exact reports whether the constant is exactly an in-range integer.
func (c LitClass) Exact() bool {
	return c.Range == 0 && c.FracSign == 0
}

// Floor returns the largest integer <= the constant. Only valid when
// Range == 0 and the result stays representable (ok is false on underflow
// past MinInt64).
func (c LitClass) Floor() (int64, bool) {
	if c.FracSign >= 0 {
		return c.Val, true
	}
	if c.Val == math.MinInt64 {
		return 0, false
	}
	return c.Val - 1, true
}

// Ceil returns the smallest integer >= the constant. Only valid when
// Range == 0 and the result stays representable (ok is false on overflow
// past MaxInt64).
func (c LitClass) Ceil() (int64, bool) {
	if c.FracSign <= 0 {
		return c.Val, true
	}
	if c.Val == math.MaxInt64 {
		return 0, false
	}
	return c.Val + 1, true
}

// ClassifyDecimal classifies d against width w.
func ClassifyDecimal(d *apd.Decimal, w IntWidth) LitClass {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return LitClass{Range: 1}
	case apd.Infinite:
		if d.Negative {
			return LitClass{Range: -1}
		}
		return LitClass{Range: 1}
	}

	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)

	var bound apd.Decimal
	bound.SetInt64(w.Max())
	if integ.Cmp(&bound) > 0 {
		return LitClass{Range: 1}
	}
	bound.SetInt64(w.Min())
	if integ.Cmp(&bound) < 0 {
		return LitClass{Range: -1}
	}

	val, err := integ.Int64()
	if err != nil {
		// unreachable: integ is integral and within int64 bounds
		return LitClass{Range: integ.Sign()}
	}
	return LitClass{Range: 0, Val: val, FracSign: frac.Sign()}
}

// ClassifyFloat64 classifies f against width w.
func ClassifyFloat64(f float64, w IntWidth) LitClass {
	if math.IsNaN(f) || math.IsInf(f, 1) {
		return LitClass{Range: 1}
	}
	if math.IsInf(f, -1) {
		return LitClass{Range: -1}
	}

	trunc := math.Trunc(f)
	if trunc >= float64(1<<63) {
		return LitClass{Range: 1}
	}
	if trunc < -float64(1<<63) {
		return LitClass{Range: -1}
	}

	val := int64(trunc)
	if val > w.Max() {
		return LitClass{Range: 1}
	}
	if val < w.Min() {
		return LitClass{Range: -1}
	}

	frac := f - trunc
	fracSign := 0
	if frac > 0 {
		fracSign = 1
	} else if frac < 0 {
		fracSign = -1
	}
	return LitClass{Range: 0, Val: val, FracSign: fracSign}
}

// ClassifyFloat32 classifies a binary32 constant against width w.
func ClassifyFloat32(f float32, w IntWidth) LitClass {
	return ClassifyFloat64(float64(f), w)
}
