// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner/types"
)

func newTestOptimizer() *ExpressionOptimizer {
	return NewExpressionOptimizer(catalog.NewSessionCatalog(), numcmp.NewConfig(), nil)
}

func TestSimplifyComparisonConstants(t *testing.T) {
	opt := newTestOptimizer()
	ops := opt.ops

	col16 := intColumn("i", 0, num.Width16)
	col32 := intColumn("i", 0, num.Width32)
	col64 := intColumn("i", 0, num.Width64)

	dec := func(s string) types.PlanExpression {
		return NewDecimalLiteralPlanExpression(mustDecimal(t, s))
	}
	f64 := NewFloat64LiteralPlanExpression
	f32 := NewFloat32LiteralPlanExpression

	tests := []struct {
		name     string
		expr     types.PlanExpression
		expected string
	}{
		// fractional constants tighten to the enclosing integer bound
		{"gt tightens to ge ceil", newBinOpPlanExpression(ops, col32, types.GT, dec("10.5")), "t.i>=11"},
		{"ge tightens to ge ceil", newBinOpPlanExpression(ops, col32, types.GE, dec("10.5")), "t.i>=11"},
		{"lt tightens to le floor", newBinOpPlanExpression(ops, col32, types.LT, dec("10.5")), "t.i<=10"},
		{"le tightens to le floor", newBinOpPlanExpression(ops, col32, types.LE, dec("10.5")), "t.i<=10"},
		{"negative fraction floor", newBinOpPlanExpression(ops, col32, types.LT, dec("-10.5")), "t.i<=-11"},
		{"eq fractional is never true", newBinOpPlanExpression(ops, col32, types.EQ, dec("10.5")), "false"},

		// integral constants keep the operator and swap in an integer literal
		{"eq integral decimal", newBinOpPlanExpression(ops, col32, types.EQ, dec("100.00")), "t.i=100"},
		{"lt integral decimal", newBinOpPlanExpression(ops, col32, types.LT, dec("100")), "t.i<100"},
		{"ne integral float", newBinOpPlanExpression(ops, col32, types.NE, f64(100.0)), "t.i<>100"},
		{"gt integral float32", newBinOpPlanExpression(ops, col32, types.GT, f32(16777216.0)), "t.i>16777216"},

		// constant on the left mirrors the operator first
		{"mirrored lt", newBinOpPlanExpression(ops, dec("10.5"), types.LT, col32), "t.i>=11"},
		{"mirrored ge", newBinOpPlanExpression(ops, f64(10.5), types.GE, col32), "t.i<=10"},
		{"mirrored eq integral", newBinOpPlanExpression(ops, dec("100"), types.EQ, col32), "t.i=100"},

		// constants outside the column range collapse to a boolean
		{"lt above range", newBinOpPlanExpression(ops, col16, types.LT, dec("32768")), "true"},
		{"gt above range", newBinOpPlanExpression(ops, col16, types.GT, dec("32768")), "false"},
		{"eq above range", newBinOpPlanExpression(ops, col16, types.EQ, dec("40000")), "false"},
		{"ne above range", newBinOpPlanExpression(ops, col16, types.NE, dec("40000")), "true"},
		{"ge below range", newBinOpPlanExpression(ops, col16, types.GE, dec("-32769")), "true"},
		{"le below range", newBinOpPlanExpression(ops, col16, types.LE, f64(-1e10)), "false"},
		{"eq huge decimal", newBinOpPlanExpression(ops, col64, types.EQ, dec("1e40")), "false"},

		// NaN and infinities classify outside every range
		{"lt nan", newBinOpPlanExpression(ops, col32, types.LT, f64(math.NaN())), "true"},
		{"gt nan", newBinOpPlanExpression(ops, col32, types.GT, f64(math.NaN())), "false"},
		{"eq nan", newBinOpPlanExpression(ops, col32, types.EQ, f64(math.NaN())), "false"},
		{"lt positive infinity", newBinOpPlanExpression(ops, col32, types.LT, f64(math.Inf(1))), "true"},
		{"gt negative infinity", newBinOpPlanExpression(ops, col32, types.GT, f64(math.Inf(-1))), "true"},

		// tightened bounds clamp at the column width instead of wrapping
		{"ceil clamps at width max", newBinOpPlanExpression(ops, col16, types.GT, dec("32767.5")), "false"},
		{"ceil just inside width max", newBinOpPlanExpression(ops, col16, types.GT, dec("32766.5")), "t.i>=32767"},
		{"floor clamps at width min", newBinOpPlanExpression(ops, col16, types.LT, dec("-32768.5")), "false"},
		{"floor just inside width min", newBinOpPlanExpression(ops, col16, types.LT, dec("-32767.5")), "t.i<=-32768"},
		{"ceil clamps at int64 max", newBinOpPlanExpression(ops, col64, types.GE, dec("9223372036854775807.5")), "false"},

		// nested expressions rewrite bottom-up
		{
			"nested comparison",
			newBinOpPlanExpression(ops,
				newBinOpPlanExpression(ops, col32, types.GT, dec("10.5")),
				types.EQ,
				newBoolLiteralPlanExpression(true),
			),
			"t.i>=11=true",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := opt.OptimizeExpression(context.Background(), test.expr)
			require.NoError(t, err)
			assert.Equal(t, test.expected, got.String())
		})
	}
}

func TestSimplifyDeclines(t *testing.T) {
	opt := newTestOptimizer()
	ops := opt.ops
	col := intColumn("i", 0, num.Width32)

	tests := []struct {
		name string
		expr types.PlanExpression
	}{
		// a constant TRUE would erase the NULL result for NULL rows
		{"ne fractional", newBinOpPlanExpression(ops, col, types.NE, NewFloat64LiteralPlanExpression(10.5))},
		{"int literal rhs", newBinOpPlanExpression(ops, col, types.LT, newIntLiteralPlanExpression(10, types.NewDataTypeInt(num.Width32)))},
		{"no column ref", newBinOpPlanExpression(ops, NewFloat64LiteralPlanExpression(1.5), types.LT, NewFloat64LiteralPlanExpression(2.5))},
		{"non-integer column", newBinOpPlanExpression(ops, newQualifiedRefPlanExpression("t", "f", 0, types.NewDataTypeFloat64()), types.LT, NewFloat64LiteralPlanExpression(2.5))},
		{"bare literal", NewFloat64LiteralPlanExpression(2.5)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := test.expr.String()
			got, err := opt.OptimizeExpression(context.Background(), test.expr)
			require.NoError(t, err)
			assert.Equal(t, before, got.String())
		})
	}
}

func TestSimplifyDisabled(t *testing.T) {
	cfg := numcmp.NewConfig()
	cfg.SimplifyConstants = false
	opt := NewExpressionOptimizer(catalog.NewSessionCatalog(), cfg, nil)

	expr := newBinOpPlanExpression(opt.ops,
		intColumn("i", 0, num.Width32),
		types.GT,
		NewDecimalLiteralPlanExpression(mustDecimal(t, "10.5")),
	)
	got, err := opt.OptimizeExpression(context.Background(), expr)
	require.NoError(t, err)
	assert.Equal(t, "t.i>10.5", got.String())
}

func TestSimplifyIsIdempotent(t *testing.T) {
	opt := newTestOptimizer()

	expr := newBinOpPlanExpression(opt.ops,
		intColumn("i", 0, num.Width16),
		types.LE,
		NewFloat64LiteralPlanExpression(10.5),
	)

	once, err := opt.OptimizeExpression(context.Background(), expr)
	require.NoError(t, err)
	twice, err := opt.OptimizeExpression(context.Background(), once)
	require.NoError(t, err)
	assert.Equal(t, once.String(), twice.String())
}

// TestSimplifySoundness evaluates each original predicate and its rewritten
// form over a spread of column values and requires identical results.
func TestSimplifySoundness(t *testing.T) {
	opt := newTestOptimizer()
	ops := opt.ops

	widths := []num.IntWidth{num.Width16, num.Width32, num.Width64}
	cmpOps := []types.Op{types.EQ, types.LT, types.LE, types.GT, types.GE}
	constants := []string{
		"10.5", "-10.5", "10", "-10", "0.5", "-0.5", "0",
		"32766.5", "32767", "32767.5", "32768", "-32768.5", "-32769",
		"2147483647.5", "9223372036854775806.5", "9223372036854775807.5",
		"1e40", "-1e40",
	}

	for _, w := range widths {
		values := []int64{w.Min(), w.Min() + 1, -11, -10, -1, 0, 1, 10, 11, w.Max() - 1, w.Max()}
		for _, op := range cmpOps {
			for _, c := range constants {
				col := intColumn("i", 0, w)
				orig := newBinOpPlanExpression(ops, col, op, NewDecimalLiteralPlanExpression(mustDecimal(t, c)))
				rewritten, err := opt.OptimizeExpression(context.Background(), orig)
				require.NoError(t, err)

				for _, v := range values {
					row := []interface{}{v}
					want, err := orig.Evaluate(row)
					require.NoError(t, err)
					got, err := rewritten.Evaluate(row)
					require.NoError(t, err)
					assert.Equal(t, want, got,
						"width %s: '%s' rewritten to '%s' diverges at %d", w, orig.String(), rewritten.String(), v)
				}
			}
		}
	}
}
