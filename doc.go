// Copyright 2024 DataStone, Inc. All rights reserved.

// Package numcmp extends a host query planner with exact comparison
// semantics between decimal/float values and fixed-width integers, and with
// a constant-predicate simplifier that rewrites `integer_column <op>
// numeric_constant` into a native integer predicate so the host's ordinary
// index-selection logic applies.
//
// The packages under this module split as follows:
//
//   - num: the exact cross-representation comparator and the exact literal
//     classification it is built from.
//   - catalog: the operator registration matrix and the per-session operator
//     identity cache.
//   - planner and planner/types: the expression model and the optimizer rule
//     performing the rewrite.
//
// This root package carries the coded error constructors and the
// configuration surface shared by all of them.
package numcmp
