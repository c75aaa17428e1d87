// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/errors"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner/types"
)

func mustDecimal(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return d
}

func intColumn(name string, index int, w num.IntWidth) *qualifiedRefPlanExpression {
	return newQualifiedRefPlanExpression("t", name, index, types.NewDataTypeInt(w))
}

func TestQualifiedRefEvaluate(t *testing.T) {
	col := intColumn("qty", 1, num.Width32)

	v, err := col.Evaluate([]interface{}{"skip", int64(42)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = col.Evaluate([]interface{}{"skip", nil})
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = col.Evaluate([]interface{}{"skip"})
	assert.True(t, errors.Is(err, numcmp.ErrInternal))

	assert.Equal(t, "t.qty", col.String())
	assert.Equal(t, "qty", col.Name())
}

func TestBinOpEvaluate(t *testing.T) {
	ops := catalog.NewSessionCatalog()
	col := intColumn("qty", 0, num.Width32)

	tests := []struct {
		name     string
		expr     types.PlanExpression
		row      []interface{}
		expected interface{}
	}{
		{
			"int column eq int literal",
			newBinOpPlanExpression(ops, col, types.EQ, newIntLiteralPlanExpression(10, types.NewDataTypeInt(num.Width32))),
			[]interface{}{int64(10)},
			true,
		},
		{
			"int column lt decimal literal",
			newBinOpPlanExpression(ops, col, types.LT, NewDecimalLiteralPlanExpression(mustDecimal(t, "10.5"))),
			[]interface{}{int64(10)},
			true,
		},
		{
			"decimal literal gt int column",
			newBinOpPlanExpression(ops, NewDecimalLiteralPlanExpression(mustDecimal(t, "10.5")), types.GT, col),
			[]interface{}{int64(11)},
			false,
		},
		{
			"int column ge float literal",
			newBinOpPlanExpression(ops, col, types.GE, NewFloat64LiteralPlanExpression(10.5)),
			[]interface{}{int64(11)},
			true,
		},
		{
			"float32 literal ne int column",
			newBinOpPlanExpression(ops, NewFloat32LiteralPlanExpression(16777217.0), types.NE, intColumn("big", 0, num.Width64)),
			[]interface{}{int64(16777217)},
			true,
		},
		{
			"null column propagates",
			newBinOpPlanExpression(ops, col, types.EQ, newIntLiteralPlanExpression(10, types.NewDataTypeInt(num.Width32))),
			[]interface{}{nil},
			nil,
		},
		{
			"null literal propagates",
			newBinOpPlanExpression(ops, col, types.LT, NewNullLiteralPlanExpression()),
			[]interface{}{int64(10)},
			nil,
		},
		{
			"bool eq bool",
			newBinOpPlanExpression(ops, newBoolLiteralPlanExpression(true), types.EQ, newBoolLiteralPlanExpression(true)),
			nil,
			true,
		},
		{
			"decimal eq decimal trailing zeros",
			newBinOpPlanExpression(ops, NewDecimalLiteralPlanExpression(mustDecimal(t, "100.00")), types.EQ, NewDecimalLiteralPlanExpression(mustDecimal(t, "100"))),
			nil,
			true,
		},
		{
			"float64 lt float64",
			newBinOpPlanExpression(ops, NewFloat64LiteralPlanExpression(1.5), types.LT, NewFloat64LiteralPlanExpression(2.5)),
			nil,
			true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.expr.Evaluate(test.row)
			require.NoError(t, err)
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestBinOpEvaluateErrors(t *testing.T) {
	ops := catalog.NewSessionCatalog()

	t.Run("bool lt bool", func(t *testing.T) {
		e := newBinOpPlanExpression(ops, newBoolLiteralPlanExpression(true), types.LT, newBoolLiteralPlanExpression(false))
		_, err := e.Evaluate(nil)
		assert.True(t, errors.Is(err, numcmp.ErrTypeIncompatibleWithComparisonOperator))
	})

	t.Run("decimal vs float", func(t *testing.T) {
		e := newBinOpPlanExpression(ops, NewDecimalLiteralPlanExpression(mustDecimal(t, "1.5")), types.EQ, NewFloat64LiteralPlanExpression(1.5))
		_, err := e.Evaluate(nil)
		assert.True(t, errors.Is(err, numcmp.ErrTypeMismatch))
	})

	t.Run("bool vs int", func(t *testing.T) {
		e := newBinOpPlanExpression(ops, newBoolLiteralPlanExpression(true), types.EQ, newIntLiteralPlanExpression(1, types.NewDataTypeInt(num.Width64)))
		_, err := e.Evaluate(nil)
		assert.True(t, errors.Is(err, numcmp.ErrTypeMismatch))
	})
}

func TestBinOpWithChildren(t *testing.T) {
	ops := catalog.NewSessionCatalog()
	col := intColumn("qty", 0, num.Width32)
	e := newBinOpPlanExpression(ops, col, types.LT, NewFloat64LiteralPlanExpression(10.5))

	assert.Equal(t, 2, len(e.Children()))

	replaced, err := e.WithChildren(col, newIntLiteralPlanExpression(10, types.NewDataTypeInt(num.Width32)))
	require.NoError(t, err)
	assert.Equal(t, "t.qty<10", replaced.String())

	_, err = e.WithChildren(col)
	assert.True(t, errors.Is(err, numcmp.ErrInternal))
}

func TestExpressionString(t *testing.T) {
	ops := catalog.NewSessionCatalog()
	e := newBinOpPlanExpression(ops,
		intColumn("qty", 0, num.Width16),
		types.GE,
		NewDecimalLiteralPlanExpression(mustDecimal(t, "10.5")),
	)
	assert.Equal(t, "t.qty>=10.5", e.String())

	plan := e.Plan()
	assert.Equal(t, ">=", plan["op"])
}

func TestBinOpPlan(t *testing.T) {
	ops := catalog.NewSessionCatalog()
	e := newBinOpPlanExpression(ops,
		intColumn("qty", 0, num.Width16),
		types.LT,
		NewFloat64LiteralPlanExpression(10.5),
	)

	expected := map[string]interface{}{
		"_expr":    "*planner.binOpPlanExpression",
		"dataType": "bool",
		"op":       "<",
		"lhs": map[string]interface{}{
			"_expr":       "*planner.qualifiedRefPlanExpression",
			"tableName":   "t",
			"columnName":  "qty",
			"columnIndex": 0,
			"dataType":    "int16",
		},
		"rhs": map[string]interface{}{
			"_expr":    "*planner.float64LiteralPlanExpression",
			"dataType": "float64",
			"value":    10.5,
		},
	}
	if diff := deep.Equal(e.Plan(), expected); diff != nil {
		t.Fatal(diff)
	}
}
