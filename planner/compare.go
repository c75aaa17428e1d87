// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner/types"
)

// resultSatisfiesOp maps a three-way comparison result onto the boolean
// result of a relational operator.
func resultSatisfiesOp(op types.Op, r num.CompareResult) bool {
	switch op {
	case types.EQ:
		return r == num.Equal
	case types.NE:
		return r != num.Equal
	case types.LT:
		return r == num.Less
	case types.LE:
		return r != num.Greater
	case types.GT:
		return r == num.Greater
	case types.GE:
		return r != num.Less
	default:
		return false
	}
}

// compareFloats orders two binary64 values. NaN sorts above every other
// value, matching the cross-representation comparator.
func compareFloats(l, r float64) num.CompareResult {
	lNaN := l != l
	rNaN := r != r
	switch {
	case lNaN && rNaN:
		return num.Equal
	case lNaN:
		return num.Greater
	case rNaN:
		return num.Less
	case l < r:
		return num.Less
	case l > r:
		return num.Greater
	default:
		return num.Equal
	}
}

// compareDecimals orders two decimals with the same NaN-sorts-last rule.
func compareDecimals(l, r *apd.Decimal) num.CompareResult {
	lNaN := l.Form == apd.NaN || l.Form == apd.NaNSignaling
	rNaN := r.Form == apd.NaN || r.Form == apd.NaNSignaling
	switch {
	case lNaN && rNaN:
		return num.Equal
	case lNaN:
		return num.Greater
	case rNaN:
		return num.Less
	default:
		return num.CompareResult(l.Cmp(r))
	}
}
