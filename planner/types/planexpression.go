// Copyright 2024 DataStone, Inc. All rights reserved.

// Package types contains the interfaces and data types shared between the
// planner's expression nodes and the code that consumes them.
package types

import (
	"fmt"
)

// PlanExpression is an expression node for an execution plan. Nodes are
// immutable: rewrites produce new nodes via WithChildren and leave the
// originals untouched, so fragments can be shared safely inside a larger
// plan tree.
type PlanExpression interface {
	fmt.Stringer

	// evaluates expression based on current row
	Evaluate(currentRow []interface{}) (interface{}, error)

	// returns the type of the expression
	Type() ExprDataType

	// returns the child expressions for this expression
	Children() []PlanExpression

	// creates a new expression node with the children replaced
	WithChildren(children ...PlanExpression) (PlanExpression, error)

	// returns a map containing a rich description of this expression;
	// intended to be marshalled into json
	Plan() map[string]interface{}
}

// IdentifiableByName is the interface to something that can be identified by
// a name.
type IdentifiableByName interface {
	Name() string
}
