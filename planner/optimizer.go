// Copyright 2024 DataStone, Inc. All rights reserved.

package planner

import (
	"context"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/logger"
	"github.com/datastone-inc/numcmp/planner/types"
)

// a function prototype for all optimizer rules
type OptimizerExprFunc func(context.Context, *ExpressionOptimizer, types.PlanExpression) (types.PlanExpression, bool, error)

// a list of optimizer rules; order can be important
var optimizerFunctions = []OptimizerExprFunc{
	// rewrite comparisons between integer columns and decimal/float
	// constants into native integer predicates
	simplifyComparisonConstants,
}

// ExpressionOptimizer runs the expression-level rewrite rules over a filter
// expression before the host picks access paths.
type ExpressionOptimizer struct {
	ops *catalog.SessionCatalog
	log logger.Logger

	simplifyConstants bool
}

// NewExpressionOptimizer returns an optimizer bound to a session catalog.
func NewExpressionOptimizer(ops *catalog.SessionCatalog, cfg *numcmp.Config, log logger.Logger) *ExpressionOptimizer {
	if log == nil {
		log = logger.NopLogger
	}
	return &ExpressionOptimizer{
		ops:               ops,
		log:               log,
		simplifyConstants: cfg.SimplifyConstants,
	}
}

// OptimizeExpression takes an expression and executes a series of transforms
// on it to optimize it. A rule that declines leaves the expression shared
// with the input; the input is never mutated.
func (p *ExpressionOptimizer) OptimizeExpression(ctx context.Context, expr types.PlanExpression) (types.PlanExpression, error) {
	var err error
	var result = expr
	for _, ofunc := range optimizerFunctions {
		result, err = p.optimizeExpr(ctx, result, ofunc)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (p *ExpressionOptimizer) optimizeExpr(ctx context.Context, expr types.PlanExpression, ofunc OptimizerExprFunc) (types.PlanExpression, error) {
	e, same, err := ofunc(ctx, p, expr)
	if err != nil {
		return nil, err
	}
	if !same {
		return e, nil
	}
	return expr, nil
}
