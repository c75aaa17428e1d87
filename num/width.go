// Copyright 2024 DataStone, Inc. All rights reserved.

// Package num implements exact comparison between arbitrary-precision
// decimals or IEEE-754 floats and fixed-width signed integers. Nothing in
// this package rounds: a comparison result is always the true mathematical
// ordering of the two operands.
package num

import (
	"math"
)

// IntWidth identifies a signed two's-complement integer width.
type IntWidth int

const (
	Width16 IntWidth = 16
	Width32 IntWidth = 32
	Width64 IntWidth = 64
)

// Min returns the smallest value representable at this width.
func (w IntWidth) Min() int64 {
	switch w {
	case Width16:
		return math.MinInt16
	case Width32:
		return math.MinInt32
	default:
		return math.MinInt64
	}
}

// Max returns the largest value representable at this width.
func (w IntWidth) Max() int64 {
	switch w {
	case Width16:
		return math.MaxInt16
	case Width32:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}

func (w IntWidth) String() string {
	switch w {
	case Width16:
		return "int16"
	case Width32:
		return "int32"
	case Width64:
		return "int64"
	default:
		return "int(invalid)"
	}
}

// Valid reports whether w is one of the supported widths.
func (w IntWidth) Valid() bool {
	switch w {
	case Width16, Width32, Width64:
		return true
	default:
		return false
	}
}

const (
	// MaxExactFloat32 is the largest integer magnitude a binary32 can
	// represent exactly (2^24); beyond it distinct integers collapse onto
	// one float value.
	MaxExactFloat32 = int64(1) << 24

	// MaxExactFloat64 is the largest integer magnitude a binary64 can
	// represent exactly (2^53).
	MaxExactFloat64 = int64(1) << 53
)
