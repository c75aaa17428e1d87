// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"github.com/datastone-inc/numcmp/planner/types"
)

// ExprVisitor visits expressions in an expression tree.
type ExprVisitor interface {
	// VisitExpr method is invoked for each expr encountered by ExprWalk.
	// If the result is not nil, ExprWalk visits each of the children
	// of the expr, followed by a call of VisitExpr(nil) to the returned result.
	VisitExpr(expr types.PlanExpression) ExprVisitor
}

// ExprWalk traverses the expression tree in depth-first order. It starts by
// calling v.VisitExpr(expr); expr must not be nil. If the visitor returned is
// not nil, ExprWalk is invoked recursively for each of the children of expr,
// followed by a call of VisitExpr(nil) to the returned visitor.
func ExprWalk(v ExprVisitor, expr types.PlanExpression) {
	if v = v.VisitExpr(expr); v == nil {
		return
	}

	for _, child := range expr.Children() {
		ExprWalk(v, child)
	}

	v.VisitExpr(nil)
}

type exprInspector func(types.PlanExpression) bool

func (f exprInspector) VisitExpr(e types.PlanExpression) ExprVisitor {
	if f(e) {
		return f
	}
	return nil
}

// InspectExpression traverses the expression tree depth-first;
// if f(expr) returns true, InspectExpression invokes f recursively for each
// of the children of expr, followed by a call of f(nil).
func InspectExpression(expr types.PlanExpression, f func(expr types.PlanExpression) bool) {
	ExprWalk(exprInspector(f), expr)
}

// ExprFunc is a function that given an expression will return either a
// transformed expression or the original expression. If there was a
// transformation, the bool will be false, and an error if there was an error.
type ExprFunc func(e types.PlanExpression) (types.PlanExpression, bool, error)

// TransformExpr applies a transformation function to an expression,
// bottom-up. Subtrees left untouched are shared with the input expression.
func TransformExpr(e types.PlanExpression, f ExprFunc) (types.PlanExpression, bool, error) {
	children := e.Children()
	if len(children) == 0 {
		return f(e)
	}

	var (
		newChildren []types.PlanExpression
		err         error
	)

	for i := 0; i < len(children); i++ {
		c := children[i]
		c, same, err := TransformExpr(c, f)
		if err != nil {
			return nil, true, err
		}
		if !same {
			if newChildren == nil {
				newChildren = make([]types.PlanExpression, len(children))
				copy(newChildren, children)
			}
			newChildren[i] = c
		}
	}

	sameC := true
	if len(newChildren) > 0 {
		sameC = false
		e, err = e.WithChildren(newChildren...)
		if err != nil {
			return nil, true, err
		}
	}

	e, sameN, err := f(e)
	if err != nil {
		return nil, true, err
	}
	return e, sameC && sameN, nil
}
