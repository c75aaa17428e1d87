// Copyright 2024 DataStone, Inc. All rights reserved.

package catalog

import (
	"sync"

	"github.com/datastone-inc/numcmp/planner/types"
)

type opKey struct {
	op    types.Op
	left  OperandKind
	right OperandKind
}

// SessionCatalog resolves the operator a comparison node is invoking. One
// instance exists per session; the underlying map is built on first use and
// is read-only afterwards. Sessions are single-threaded with respect to
// planning, but the population step is guarded by sync.Once so a host that
// plans concurrently within one session stays correct anyway.
type SessionCatalog struct {
	once   sync.Once
	byKey  map[opKey]*OperatorDef
	byName map[string]*OperatorDef
}

func NewSessionCatalog() *SessionCatalog {
	return &SessionCatalog{}
}

func (c *SessionCatalog) populate() {
	defs := Operators()
	c.byKey = make(map[opKey]*OperatorDef, len(defs))
	c.byName = make(map[string]*OperatorDef, len(defs))
	for _, def := range defs {
		c.byKey[opKey{op: def.Op, left: def.Left, right: def.Right}] = def
		c.byName[def.Name] = def
	}
}

// Lookup resolves the operator definition for op over the given operand
// kinds. The boolean result is false when no such operator is registered;
// that is the caller's signal to leave the expression alone.
func (c *SessionCatalog) Lookup(op types.Op, left, right OperandKind) (*OperatorDef, bool) {
	c.once.Do(c.populate)
	def, ok := c.byKey[opKey{op: op, left: left, right: right}]
	return def, ok
}

// LookupName resolves a definition by its registered name; used to follow
// commutator/negator links.
func (c *SessionCatalog) LookupName(name string) (*OperatorDef, bool) {
	c.once.Do(c.populate)
	def, ok := c.byName[name]
	return def, ok
}
