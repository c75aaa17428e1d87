// Copyright 2024 DataStone, Inc. All rights reserved.

// Package catalog holds the declarative registration matrix for the
// cross-type comparison operators and the per-session cache that resolves an
// expression node's operator to its registered definition.
//
// Every directional variant of a comparison (numeric-op-integer and
// integer-op-numeric) is backed by its own independently invocable evaluation
// function with an explicit argument order; no variant relies on the host
// propagating symmetry metadata for it.
package catalog

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner/types"
)

// OperandKind identifies the concrete operand representation an operator is
// registered for.
type OperandKind int

const (
	KindInvalid OperandKind = iota
	KindDecimal
	KindFloat32
	KindFloat64
	KindInt16
	KindInt32
	KindInt64
)

var kindNames = map[OperandKind]string{
	KindDecimal: "decimal",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
}

func (k OperandKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "invalid"
}

// IsInteger reports whether k is one of the integer operand kinds.
func (k OperandKind) IsInteger() bool {
	switch k {
	case KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether k is a decimal or float operand kind.
func (k OperandKind) IsNumeric() bool {
	switch k {
	case KindDecimal, KindFloat32, KindFloat64:
		return true
	default:
		return false
	}
}

// Width returns the integer width for an integer operand kind.
func (k OperandKind) Width() num.IntWidth {
	switch k {
	case KindInt16:
		return num.Width16
	case KindInt32:
		return num.Width32
	default:
		return num.Width64
	}
}

// KindOf maps an expression data type to its operand kind.
func KindOf(dt types.ExprDataType) (OperandKind, bool) {
	switch t := dt.(type) {
	case *types.DataTypeDecimal:
		return KindDecimal, true
	case *types.DataTypeFloat32:
		return KindFloat32, true
	case *types.DataTypeFloat64:
		return KindFloat64, true
	case *types.DataTypeInt:
		switch t.Width {
		case num.Width16:
			return KindInt16, true
		case num.Width32:
			return KindInt32, true
		case num.Width64:
			return KindInt64, true
		}
	}
	return KindInvalid, false
}

// EvalFunc evaluates one registered operator against two non-NULL operand
// values. NULL short-circuits above this layer; an EvalFunc is never handed a
// nil operand.
type EvalFunc func(lhs, rhs interface{}) (bool, error)

// OperatorDef is one entry of the registration matrix: a comparison operator
// symbol specialized to a (left kind, right kind) pair, together with the
// metadata the host catalog needs to register it.
type OperatorDef struct {
	// Name uniquely identifies the definition, e.g. "lt_decimal_int32".
	Name string

	Op    types.Op
	Left  OperandKind
	Right OperandKind

	// Eval is the direct tuple-level evaluation function for this exact
	// operand order.
	Eval EvalFunc

	// Commutator names the definition for the swapped operand order such
	// that `a op b` iff `b commutator(op) a`.
	Commutator string

	// Negator names the definition whose result is the logical complement
	// for the same operand order.
	Negator string

	// BtreeFamily and HashFamily name the operator-equivalence families
	// used by sort- and hash-based strategies. HashFamily is only set for
	// equality.
	BtreeFamily string
	HashFamily  string
}

func defName(op types.Op, left, right OperandKind) string {
	var opName string
	switch op {
	case types.EQ:
		opName = "eq"
	case types.NE:
		opName = "ne"
	case types.LT:
		opName = "lt"
	case types.LE:
		opName = "le"
	case types.GT:
		opName = "gt"
	case types.GE:
		opName = "ge"
	}
	return fmt.Sprintf("%s_%s_%s", opName, left, right)
}

// resultSatisfies maps a three-way comparison result onto the boolean result
// of a relational operator.
func resultSatisfies(op types.Op, r num.CompareResult) bool {
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

// compareNumericInt compares a decimal/float lhs against an integer rhs,
// returning the ordering of lhs relative to rhs.
func compareNumericInt(numericKind OperandKind, lhs interface{}, rhs int64) (num.CompareResult, error) {
	switch numericKind {
	case KindDecimal:
		d, ok := lhs.(*apd.Decimal)
		if !ok {
			return 0, numcmp.NewErrInternalf("unexpected decimal operand type '%T'", lhs)
		}
		return num.CompareDecimalInt64(d, rhs), nil
	case KindFloat32:
		f, ok := lhs.(float32)
		if !ok {
			return 0, numcmp.NewErrInternalf("unexpected float32 operand type '%T'", lhs)
		}
		return num.CompareFloat32Int64(f, rhs), nil
	case KindFloat64:
		f, ok := lhs.(float64)
		if !ok {
			return 0, numcmp.NewErrInternalf("unexpected float64 operand type '%T'", lhs)
		}
		return num.CompareFloat64Int64(f, rhs), nil
	default:
		return 0, numcmp.NewErrInternalf("unexpected numeric operand kind '%s'", numericKind)
	}
}

func asInt64(v interface{}) (int64, error) {
	i, ok := v.(int64)
	if !ok {
		return 0, numcmp.NewErrInternalf("unexpected integer operand type '%T'", v)
	}
	return i, nil
}

// evalNumericInt builds the evaluation function for the (numeric, integer)
// operand order.
func evalNumericInt(op types.Op, numericKind OperandKind) EvalFunc {
	return func(lhs, rhs interface{}) (bool, error) {
		rv, err := asInt64(rhs)
		if err != nil {
			return false, err
		}
		r, err := compareNumericInt(numericKind, lhs, rv)
		if err != nil {
			return false, err
		}
		return resultSatisfies(op, r), nil
	}
}

// evalIntNumeric builds the evaluation function for the (integer, numeric)
// operand order. The comparator always orders numeric-relative-to-integer,
// so the result is interpreted through the mirrored operator.
func evalIntNumeric(op types.Op, numericKind OperandKind) EvalFunc {
	mirrored := op.Mirror()
	return func(lhs, rhs interface{}) (bool, error) {
		lv, err := asInt64(lhs)
		if err != nil {
			return false, err
		}
		r, err := compareNumericInt(numericKind, rhs, lv)
		if err != nil {
			return false, err
		}
		return resultSatisfies(mirrored, r), nil
	}
}

var comparisonOps = []types.Op{types.EQ, types.NE, types.LT, types.LE, types.GT, types.GE}
var numericKinds = []OperandKind{KindDecimal, KindFloat32, KindFloat64}
var integerKinds = []OperandKind{KindInt16, KindInt32, KindInt64}

// Operators builds the full registration matrix: every comparison operator
// for every (numeric, integer) kind pair, in both argument orders. The
// result is freshly allocated; callers may reorder it.
func Operators() []*OperatorDef {
	defs := make([]*OperatorDef, 0, len(comparisonOps)*len(numericKinds)*len(integerKinds)*2)
	for _, op := range comparisonOps {
		for _, nk := range numericKinds {
			for _, ik := range integerKinds {
				btree := fmt.Sprintf("btree_%s_%s_ops", nk, ik)
				hash := ""
				if op == types.EQ {
					hash = fmt.Sprintf("hash_%s_%s_ops", nk, ik)
				}
				defs = append(defs, &OperatorDef{
					Name:        defName(op, nk, ik),
					Op:          op,
					Left:        nk,
					Right:       ik,
					Eval:        evalNumericInt(op, nk),
					Commutator:  defName(op.Mirror(), ik, nk),
					Negator:     defName(op.Negate(), nk, ik),
					BtreeFamily: btree,
					HashFamily:  hash,
				})
				defs = append(defs, &OperatorDef{
					Name:        defName(op, ik, nk),
					Op:          op,
					Left:        ik,
					Right:       nk,
					Eval:        evalIntNumeric(op, nk),
					Commutator:  defName(op.Mirror(), nk, ik),
					Negator:     defName(op.Negate(), ik, nk),
					BtreeFamily: btree,
					HashFamily:  hash,
				})
			}
		}
	}
	return defs
}
