// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"context"

	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner/types"
)

// simplifyComparisonConstants rewrites comparisons between an integer column
// and a decimal or float constant into predicates on native integer values,
// so the host's ordinary index selection logic can use them. The rewrite is
// driven entirely by the exact classification of the constant against the
// column's width; no rewrite is emitted unless it selects exactly the same
// rows as the original predicate.
//
// With the constant normalized to the right-hand side:
//
//   - constant above the column range: LT/LE/NE become TRUE, GT/GE/EQ
//     become FALSE (NaN classifies as above range, so it lands here too)
//   - constant below the column range: GT/GE/NE become TRUE, LT/LE/EQ
//     become FALSE
//   - constant exactly an in-range integer: same operator against the
//     integer value
//   - constant in range with a fractional part: EQ becomes FALSE, GT/GE
//     tighten to `col >= ceil(constant)`, LT/LE tighten to
//     `col <= floor(constant)`; NE is left alone because a constant TRUE
//     would erase the NULL result for NULL rows
//
// A tightened bound that falls outside the column width degenerates to
// FALSE instead of wrapping.
func simplifyComparisonConstants(ctx context.Context, p *ExpressionOptimizer, expr types.PlanExpression) (types.PlanExpression, bool, error) {
	if !p.simplifyConstants {
		return expr, true, nil
	}

	return TransformExpr(expr, func(e types.PlanExpression) (types.PlanExpression, bool, error) {
		n, ok := e.(*binOpPlanExpression)
		if !ok || !n.op.IsComparison() {
			return e, true, nil
		}

		// normalize to column-op-constant; mirror the operator when the
		// constant is on the left
		op := n.op
		col, ok := n.lhs.(*qualifiedRefPlanExpression)
		lit := n.rhs
		if !ok {
			col, ok = n.rhs.(*qualifiedRefPlanExpression)
			lit = n.lhs
			op = n.op.Mirror()
		}
		if !ok {
			return e, true, nil
		}

		intType, ok := col.dataType.(*types.DataTypeInt)
		if !ok {
			return e, true, nil
		}
		w := intType.Width

		var cls num.LitClass
		switch l := lit.(type) {
		case *decimalLiteralPlanExpression:
			cls = num.ClassifyDecimal(l.value, w)
		case *float32LiteralPlanExpression:
			cls = num.ClassifyFloat32(l.value, w)
		case *float64LiteralPlanExpression:
			cls = num.ClassifyFloat64(l.value, w)
		default:
			return e, true, nil
		}

		// only rewrite comparisons the session catalog actually resolves
		ck, _ := catalog.KindOf(col.dataType)
		lk, _ := catalog.KindOf(lit.Type())
		if _, found := p.ops.Lookup(op, ck, lk); !found {
			return e, true, nil
		}

		rewritten, same, err := rewriteClassified(p, n, col, op, w, cls)
		if err != nil {
			return nil, true, err
		}
		if !same {
			p.log.Debugf("simplified '%s' to '%s'", n.String(), rewritten.String())
		}
		return rewritten, same, nil
	})
}

func rewriteClassified(p *ExpressionOptimizer, n *binOpPlanExpression, col *qualifiedRefPlanExpression, op types.Op, w num.IntWidth, cls num.LitClass) (types.PlanExpression, bool, error) {
	intType := types.NewDataTypeInt(w)

	switch {
	case cls.Range > 0:
		// constant sorts above every column value
		switch op {
		case types.LT, types.LE, types.NE:
			return newBoolLiteralPlanExpression(true), false, nil
		default:
			return newBoolLiteralPlanExpression(false), false, nil
		}

	case cls.Range < 0:
		// constant sorts below every column value
		switch op {
		case types.GT, types.GE, types.NE:
			return newBoolLiteralPlanExpression(true), false, nil
		default:
			return newBoolLiteralPlanExpression(false), false, nil
		}

	case cls.Exact():
		return newBinOpPlanExpression(p.ops, col, op, newIntLiteralPlanExpression(cls.Val, intType)), false, nil

	default:
		// in range with a fractional part
		switch op {
		case types.EQ:
			return newBoolLiteralPlanExpression(false), false, nil

		case types.GT, types.GE:
			bound, ok := cls.Ceil()
			if !ok || bound > w.Max() {
				return newBoolLiteralPlanExpression(false), false, nil
			}
			return newBinOpPlanExpression(p.ops, col, types.GE, newIntLiteralPlanExpression(bound, intType)), false, nil

		case types.LT, types.LE:
			bound, ok := cls.Floor()
			if !ok || bound < w.Min() {
				return newBoolLiteralPlanExpression(false), false, nil
			}
			return newBinOpPlanExpression(p.ops, col, types.LE, newIntLiteralPlanExpression(bound, intType)), false, nil

		default:
			// NE: always true for non-NULL rows, but NULL rows must keep
			// evaluating to NULL
			return n, true, nil
		}
	}
}
