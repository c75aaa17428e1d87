// Copyright 2024 DataStone, Inc. All rights reserved.

package types

import (
	"fmt"

	"github.com/datastone-inc/numcmp/num"
)

// ExprDataType is the interface for all expression-level data types.
type ExprDataType interface {
	exprDataType()
	// the base type name e.g. int32 or decimal
	BaseTypeName() string
	// the full type specification as a string - intended to be human
	// readable
	TypeDescription() string
}

func (*DataTypeVoid) exprDataType()    {}
func (*DataTypeBool) exprDataType()    {}
func (*DataTypeInt) exprDataType()     {}
func (*DataTypeDecimal) exprDataType() {}
func (*DataTypeFloat32) exprDataType() {}
func (*DataTypeFloat64) exprDataType() {}

// DataTypeVoid is the type of the null literal.
type DataTypeVoid struct {
}

func NewDataTypeVoid() *DataTypeVoid {
	return &DataTypeVoid{}
}

func (*DataTypeVoid) BaseTypeName() string {
	return "void"
}

func (dt *DataTypeVoid) TypeDescription() string {
	return dt.BaseTypeName()
}

type DataTypeBool struct {
}

func NewDataTypeBool() *DataTypeBool {
	return &DataTypeBool{}
}

func (*DataTypeBool) BaseTypeName() string {
	return "bool"
}

func (dt *DataTypeBool) TypeDescription() string {
	return dt.BaseTypeName()
}

// DataTypeInt is a signed integer of a declared width.
type DataTypeInt struct {
	Width num.IntWidth
}

func NewDataTypeInt(width num.IntWidth) *DataTypeInt {
	return &DataTypeInt{
		Width: width,
	}
}

func (dt *DataTypeInt) BaseTypeName() string {
	return dt.Width.String()
}

func (dt *DataTypeInt) TypeDescription() string {
	return dt.BaseTypeName()
}

// DataTypeDecimal is an arbitrary-precision decimal. Scale is the number of
// digits to the right of the decimal point; it is descriptive only, values
// carry their own exact representation.
type DataTypeDecimal struct {
	Scale int64
}

func NewDataTypeDecimal(scale int64) *DataTypeDecimal {
	return &DataTypeDecimal{
		Scale: scale,
	}
}

func (*DataTypeDecimal) BaseTypeName() string {
	return "decimal"
}

func (dt *DataTypeDecimal) TypeDescription() string {
	return fmt.Sprintf("%s(%d)", dt.BaseTypeName(), dt.Scale)
}

type DataTypeFloat32 struct {
}

func NewDataTypeFloat32() *DataTypeFloat32 {
	return &DataTypeFloat32{}
}

func (*DataTypeFloat32) BaseTypeName() string {
	return "float32"
}

func (dt *DataTypeFloat32) TypeDescription() string {
	return dt.BaseTypeName()
}

type DataTypeFloat64 struct {
}

func NewDataTypeFloat64() *DataTypeFloat64 {
	return &DataTypeFloat64{}
}

func (*DataTypeFloat64) BaseTypeName() string {
	return "float64"
}

func (dt *DataTypeFloat64) TypeDescription() string {
	return dt.BaseTypeName()
}
