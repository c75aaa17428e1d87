// Copyright 2024 DataStone, Inc. All rights reserved.
package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/logger"
	"github.com/datastone-inc/numcmp/planner"
	"github.com/datastone-inc/numcmp/planner/types"
)

func newSimplifyCommand(cfg *numcmp.Config, stdout io.Writer) *cobra.Command {
	var kind string
	var width int

	ccmd := &cobra.Command{
		Use:   "simplify <column> <op> <constant>",
		Short: "Rewrite a constant comparison into a native integer predicate",
		Long: `
Builds the predicate <column> <op> <constant> over an integer column of the
given width, runs the expression optimizer on it and prints both forms.
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
			_, lit, _, err := parseConstant(kind, args[2])
			if err != nil {
				return err
			}

			cat := catalog.NewSessionCatalog()
			col := planner.NewQualifiedRefPlanExpression("", args[0], 0, types.NewDataTypeInt(w))
			expr := planner.NewBinOpPlanExpression(cat, col, op, lit)

			opt := planner.NewExpressionOptimizer(cat, cfg, log)
			result, err := opt.OptimizeExpression(context.Background(), expr)
			if err != nil {
				return err
			}

			fmt.Fprintf(stdout, "original:   %s\n", expr.String())
			fmt.Fprintf(stdout, "simplified: %s\n", result.String())
			return nil
		},
	}

	flags := ccmd.Flags()
	flags.StringVar(&kind, "kind", "decimal", "constant kind: decimal, float32 or float64")
	flags.IntVar(&width, "width", 64, "integer width: 16, 32 or 64")
	return ccmd
}
