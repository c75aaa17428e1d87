// Copyright 2024 DataStone, Inc. All rights reserved.

// Package planner contains the expression model consumed by the host query
// planner and the optimizer rule that rewrites constant numeric comparisons
// against integer columns into native integer predicates.
package planner

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/planner/types"
)

var _ types.IdentifiableByName = (*qualifiedRefPlanExpression)(nil)

// qualifiedRefPlanExpression is a qualified column ref
type qualifiedRefPlanExpression struct {
	tableName   string
	columnName  string
	columnIndex int
	dataType    types.ExprDataType
}

// NewQualifiedRefPlanExpression returns a column reference expression. The
// columnIndex is the ordinal position of the column in the rows handed to
// Evaluate.
func NewQualifiedRefPlanExpression(tableName string, columnName string, columnIndex int, dataType types.ExprDataType) types.PlanExpression {
	return newQualifiedRefPlanExpression(tableName, columnName, columnIndex, dataType)
}

func newQualifiedRefPlanExpression(tableName string, columnName string, columnIndex int, dataType types.ExprDataType) *qualifiedRefPlanExpression {
	return &qualifiedRefPlanExpression{
		tableName:   tableName,
		columnName:  columnName,
		columnIndex: columnIndex,
		dataType:    dataType,
	}
}

func (n *qualifiedRefPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	if n.columnIndex < 0 || n.columnIndex >= len(currentRow) {
		return nil, numcmp.NewErrInternalf("unable to find column '%d' in current row", n.columnIndex)
	}

	if currentRow[n.columnIndex] == nil {
		return nil, nil
	}

	switch n.dataType.(type) {
	case *types.DataTypeInt:
		v, ok := currentRow[n.columnIndex].(int64)
		if !ok {
			return nil, numcmp.NewErrInternalf("unexpected type for current row '%T'", currentRow[n.columnIndex])
		}
		return v, nil

	default:
		return currentRow[n.columnIndex], nil
	}
}

func (n *qualifiedRefPlanExpression) Name() string {
	return n.columnName
}

func (n *qualifiedRefPlanExpression) Type() types.ExprDataType {
	return n.dataType
}

func (n *qualifiedRefPlanExpression) String() string {
	if len(n.tableName) > 0 {
		return fmt.Sprintf("%s.%s", n.tableName, n.columnName)
	}
	return n.columnName
}

func (n *qualifiedRefPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["tableName"] = n.tableName
	result["columnName"] = n.columnName
	result["columnIndex"] = n.columnIndex
	result["dataType"] = n.dataType.TypeDescription()
	return result
}

func (n *qualifiedRefPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *qualifiedRefPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// nullLiteralPlanExpression is a null literal
type nullLiteralPlanExpression struct{}

// NewNullLiteralPlanExpression returns a null literal expression.
func NewNullLiteralPlanExpression() types.PlanExpression {
	return &nullLiteralPlanExpression{}
}

func (n *nullLiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return nil, nil
}

func (n *nullLiteralPlanExpression) Type() types.ExprDataType {
	return types.NewDataTypeVoid()
}

func (n *nullLiteralPlanExpression) String() string {
	return "null"
}

func (n *nullLiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	return result
}

func (n *nullLiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *nullLiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// intLiteralPlanExpression is an integer literal of a declared width
type intLiteralPlanExpression struct {
	value    int64
	dataType *types.DataTypeInt
}

// NewIntLiteralPlanExpression returns an integer literal typed at the given
// width.
func NewIntLiteralPlanExpression(value int64, dataType *types.DataTypeInt) types.PlanExpression {
	return newIntLiteralPlanExpression(value, dataType)
}

func newIntLiteralPlanExpression(value int64, dataType *types.DataTypeInt) *intLiteralPlanExpression {
	return &intLiteralPlanExpression{
		value:    value,
		dataType: dataType,
	}
}

func (n *intLiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return n.value, nil
}

func (n *intLiteralPlanExpression) Type() types.ExprDataType {
	return n.dataType
}

func (n *intLiteralPlanExpression) String() string {
	return fmt.Sprintf("%d", n.value)
}

func (n *intLiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["value"] = n.value
	return result
}

func (n *intLiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *intLiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// decimalLiteralPlanExpression is an arbitrary-precision decimal literal
type decimalLiteralPlanExpression struct {
	value *apd.Decimal
}

// NewDecimalLiteralPlanExpression returns a decimal literal expression. The
// decimal is shared, not copied; callers must not mutate it afterwards.
func NewDecimalLiteralPlanExpression(value *apd.Decimal) types.PlanExpression {
	return &decimalLiteralPlanExpression{
		value: value,
	}
}

func (n *decimalLiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return n.value, nil
}

func (n *decimalLiteralPlanExpression) Type() types.ExprDataType {
	scale := int64(0)
	if n.value.Exponent < 0 {
		scale = int64(-n.value.Exponent)
	}
	return types.NewDataTypeDecimal(scale)
}

func (n *decimalLiteralPlanExpression) String() string {
	return n.value.String()
}

func (n *decimalLiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["value"] = n.value.String()
	return result
}

func (n *decimalLiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *decimalLiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// float32LiteralPlanExpression is a binary32 literal
type float32LiteralPlanExpression struct {
	value float32
}

// NewFloat32LiteralPlanExpression returns a binary32 literal expression.
func NewFloat32LiteralPlanExpression(value float32) types.PlanExpression {
	return &float32LiteralPlanExpression{
		value: value,
	}
}

func (n *float32LiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return n.value, nil
}

func (n *float32LiteralPlanExpression) Type() types.ExprDataType {
	return types.NewDataTypeFloat32()
}

func (n *float32LiteralPlanExpression) String() string {
	return fmt.Sprintf("%v", n.value)
}

func (n *float32LiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["value"] = n.value
	return result
}

func (n *float32LiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *float32LiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// float64LiteralPlanExpression is a binary64 literal
type float64LiteralPlanExpression struct {
	value float64
}

// NewFloat64LiteralPlanExpression returns a binary64 literal expression.
func NewFloat64LiteralPlanExpression(value float64) types.PlanExpression {
	return &float64LiteralPlanExpression{
		value: value,
	}
}

func (n *float64LiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return n.value, nil
}

func (n *float64LiteralPlanExpression) Type() types.ExprDataType {
	return types.NewDataTypeFloat64()
}

func (n *float64LiteralPlanExpression) String() string {
	return fmt.Sprintf("%v", n.value)
}

func (n *float64LiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["value"] = n.value
	return result
}

func (n *float64LiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *float64LiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// boolLiteralPlanExpression is a bool literal
type boolLiteralPlanExpression struct {
	value bool
}

// NewBoolLiteralPlanExpression returns a boolean literal expression.
func NewBoolLiteralPlanExpression(value bool) types.PlanExpression {
	return newBoolLiteralPlanExpression(value)
}

func newBoolLiteralPlanExpression(value bool) *boolLiteralPlanExpression {
	return &boolLiteralPlanExpression{
		value: value,
	}
}

func (n *boolLiteralPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	return n.value, nil
}

func (n *boolLiteralPlanExpression) Type() types.ExprDataType {
	return types.NewDataTypeBool()
}

func (n *boolLiteralPlanExpression) String() string {
	return fmt.Sprintf("%v", n.value)
}

func (n *boolLiteralPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["value"] = n.value
	return result
}

func (n *boolLiteralPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{}
}

func (n *boolLiteralPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	return n, nil
}

// binOpPlanExpression is a binary comparison op
type binOpPlanExpression struct {
	lhs types.PlanExpression
	op  types.Op
	rhs types.PlanExpression

	ops *catalog.SessionCatalog
}

// NewBinOpPlanExpression returns a binary comparison expression. Cross-type
// comparisons between numeric and integer operands resolve their evaluation
// function through the session catalog.
func NewBinOpPlanExpression(ops *catalog.SessionCatalog, lhs types.PlanExpression, op types.Op, rhs types.PlanExpression) types.PlanExpression {
	return newBinOpPlanExpression(ops, lhs, op, rhs)
}

func newBinOpPlanExpression(ops *catalog.SessionCatalog, lhs types.PlanExpression, op types.Op, rhs types.PlanExpression) *binOpPlanExpression {
	return &binOpPlanExpression{
		lhs: lhs,
		op:  op,
		rhs: rhs,
		ops: ops,
	}
}

func (n *binOpPlanExpression) Evaluate(currentRow []interface{}) (interface{}, error) {
	evalLhs, err := n.lhs.Evaluate(currentRow)
	if err != nil {
		return nil, err
	}
	evalRhs, err := n.rhs.Evaluate(currentRow)
	if err != nil {
		return nil, err
	}

	// NULL propagation happens here, above the comparator; the comparator
	// itself never sees a NULL operand.
	if evalLhs == nil || evalRhs == nil {
		return nil, nil
	}

	if !n.op.IsComparison() {
		return nil, numcmp.NewErrInternalf("unhandled operator %d", n.op)
	}

	lk, lok := catalog.KindOf(n.lhs.Type())
	rk, rok := catalog.KindOf(n.rhs.Type())
	if !lok || !rok {
		return n.evaluateBool(evalLhs, evalRhs)
	}

	switch {
	case lk.IsInteger() && rk.IsInteger():
		return n.evaluateIntInt(evalLhs, evalRhs)

	case lk.IsNumeric() && rk.IsInteger(), lk.IsInteger() && rk.IsNumeric():
		def, ok := n.ops.Lookup(n.op, lk, rk)
		if !ok {
			return nil, numcmp.NewErrUnknownOperator(n.op.String(), lk.String(), rk.String())
		}
		return def.Eval(evalLhs, evalRhs)

	case lk == catalog.KindDecimal && rk == catalog.KindDecimal:
		return n.evaluateDecimalDecimal(evalLhs, evalRhs)

	case lk == catalog.KindFloat64 && rk == catalog.KindFloat64:
		nl, nlok := evalLhs.(float64)
		nr, nrok := evalRhs.(float64)
		if !nlok || !nrok {
			return nil, numcmp.NewErrInternalf("unexpected type conversion error '%t', '%t'", nlok, nrok)
		}
		return resultSatisfiesOp(n.op, compareFloats(nl, nr)), nil

	case lk == catalog.KindFloat32 && rk == catalog.KindFloat32:
		nl, nlok := evalLhs.(float32)
		nr, nrok := evalRhs.(float32)
		if !nlok || !nrok {
			return nil, numcmp.NewErrInternalf("unexpected type conversion error '%t', '%t'", nlok, nrok)
		}
		return resultSatisfiesOp(n.op, compareFloats(float64(nl), float64(nr))), nil

	default:
		return nil, numcmp.NewErrTypeMismatch(n.lhs.Type().TypeDescription(), n.rhs.Type().TypeDescription())
	}
}

func (n *binOpPlanExpression) evaluateBool(evalLhs, evalRhs interface{}) (interface{}, error) {
	nl, nlok := evalLhs.(bool)
	nr, nrok := evalRhs.(bool)
	if nlok && nrok {
		switch n.op {
		case types.NE:
			return nl != nr, nil
		case types.EQ:
			return nl == nr, nil
		default:
			return nil, numcmp.NewErrTypeIncompatibleWithComparisonOperator(n.op.String(), n.lhs.Type().TypeDescription())
		}
	}
	return nil, numcmp.NewErrTypeMismatch(n.lhs.Type().TypeDescription(), n.rhs.Type().TypeDescription())
}

func (n *binOpPlanExpression) evaluateIntInt(evalLhs, evalRhs interface{}) (interface{}, error) {
	nl, nlok := evalLhs.(int64)
	nr, nrok := evalRhs.(int64)
	if nlok && nrok {
		switch n.op {
		case types.NE:
			return nl != nr, nil
		case types.EQ:
			return nl == nr, nil
		case types.LE:
			return nl <= nr, nil
		case types.GE:
			return nl >= nr, nil
		case types.GT:
			return nl > nr, nil
		case types.LT:
			return nl < nr, nil
		default:
			return nil, numcmp.NewErrInternalf("unhandled operator %d", n.op)
		}
	}
	return nil, numcmp.NewErrInternalf("unexpected type conversion error '%t', '%t'", nlok, nrok)
}

func (n *binOpPlanExpression) evaluateDecimalDecimal(evalLhs, evalRhs interface{}) (interface{}, error) {
	nl, nlok := evalLhs.(*apd.Decimal)
	nr, nrok := evalRhs.(*apd.Decimal)
	if !nlok || !nrok {
		return nil, numcmp.NewErrInternalf("unexpected type conversion error '%t', '%t'", nlok, nrok)
	}
	return resultSatisfiesOp(n.op, compareDecimals(nl, nr)), nil
}

func (n *binOpPlanExpression) Type() types.ExprDataType {
	return types.NewDataTypeBool()
}

func (n *binOpPlanExpression) String() string {
	return fmt.Sprintf("%s%s%s", n.lhs.String(), n.op.String(), n.rhs.String())
}

func (n *binOpPlanExpression) Plan() map[string]interface{} {
	result := make(map[string]interface{})
	result["_expr"] = fmt.Sprintf("%T", n)
	result["dataType"] = n.Type().TypeDescription()
	result["op"] = n.op.String()
	result["lhs"] = n.lhs.Plan()
	result["rhs"] = n.rhs.Plan()
	return result
}

func (n *binOpPlanExpression) Children() []types.PlanExpression {
	return []types.PlanExpression{
		n.lhs,
		n.rhs,
	}
}

func (n *binOpPlanExpression) WithChildren(children ...types.PlanExpression) (types.PlanExpression, error) {
	if len(children) != 2 {
		return nil, numcmp.NewErrInternalf("unexpected number of children '%d'", len(children))
	}
	return newBinOpPlanExpression(n.ops, children[0], n.op, children[1]), nil
}
