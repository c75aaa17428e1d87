// Copyright 2024 DataStone, Inc. All rights reserved.
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/logger"
	"github.com/datastone-inc/numcmp/planner/types"
)

func newCompareCommand(cfg *numcmp.Config, stdout io.Writer) *cobra.Command {
	var kind string
	var width int

	ccmd := &cobra.Command{
		Use:   "compare <constant> <op> <integer>",
		Short: "Compare a numeric constant against an integer exactly",
		Long: `
Compares a decimal or float constant against a fixed-width integer with exact
semantics and prints the verdict of the resolved operator.
`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			log := logger.NewZapLogger(cfg.Verbose)

			op, ok := types.ParseOp(args[1])
			if !ok {
				return fmt.Errorf("unknown operator '%s'", args[1])
			}
			w, err := parseWidth(width)
			if err != nil {
				return err
			}
			value, _, nk, err := parseConstant(kind, args[0])
			if err != nil {
				return err
			}
			rhs, err := strconv.ParseInt(args[2], 10, int(w))
			if err != nil {
				return err
			}

			cat := catalog.NewSessionCatalog()
			ik, _ := catalog.KindOf(types.NewDataTypeInt(w))
			def, ok := cat.Lookup(op, nk, ik)
			if !ok {
				return numcmp.NewErrUnknownOperator(op.String(), nk.String(), ik.String())
			}
			log.Debugf("resolved operator '%s'", def.Name)

			result, err := def.Eval(value, rhs)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s %s %s: %v\n", args[0], op, args[2], result)
			return nil
		},
	}

	flags := ccmd.Flags()
	flags.StringVar(&kind, "kind", "decimal", "constant kind: decimal, float32 or float64")
	flags.IntVar(&width, "width", 64, "integer width: 16, 32 or 64")
	return ccmd
}
