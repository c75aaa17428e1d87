// Copyright 2024 DataStone, Inc. All rights reserved.

package types

// Op is a binary relational operator token.
type Op int

const (
	ILLEGAL Op = iota
	EQ         // =
	NE         // <>
	LT         // <
	LE         // <=
	GT         // >
	GE         // >=
)

var opStrings = map[Op]string{
	EQ: "=",
	NE: "<>",
	LT: "<",
	LE: "<=",
	GT: ">",
	GE: ">=",
}

func (op Op) String() string {
	if s, ok := opStrings[op]; ok {
		return s
	}
	return "ILLEGAL"
}

// IsComparison reports whether op is one of the six relational operators.
func (op Op) IsComparison() bool {
	switch op {
	case EQ, NE, LT, LE, GT, GE:
		return true
	default:
		return false
	}
}

// Mirror returns the operator that yields the same truth value when the two
// operands are swapped: a < b iff b > a.
func (op Op) Mirror() Op {
	switch op {
	case LT:
		return GT
	case LE:
		return GE
	case GT:
		return LT
	case GE:
		return LE
	default:
		return op
	}
}

// Negate returns the operator's logical negation: NOT (a < b) iff a >= b.
func (op Op) Negate() Op {
	switch op {
	case EQ:
		return NE
	case NE:
		return EQ
	case LT:
		return GE
	case LE:
		return GT
	case GT:
		return LE
	case GE:
		return LT
	default:
		return ILLEGAL
	}
}

// ParseOp maps an operator symbol to its token.
func ParseOp(s string) (Op, bool) {
	switch s {
	case "=", "==":
		return EQ, true
	case "<>", "!=":
		return NE, true
	case "<":
		return LT, true
	case "<=":
		return LE, true
	case ">":
		return GT, true
	case ">=":
		return GE, true
	default:
		return ILLEGAL, false
	}
}
