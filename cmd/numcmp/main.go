// Copyright 2024 DataStone, Inc. All rights reserved.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/spf13/cobra"

	"github.com/datastone-inc/numcmp"
	"github.com/datastone-inc/numcmp/catalog"
	"github.com/datastone-inc/numcmp/num"
	"github.com/datastone-inc/numcmp/planner"
	"github.com/datastone-inc/numcmp/planner/types"
)

func main() {
	rootCmd := newRootCommand(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	cfg := numcmp.NewConfig()
	var configFile string

	rc := &cobra.Command{
		Use:           "numcmp",
		Short:         "Exact numeric comparison and predicate simplification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if configFile == "" {
				return nil
			}
			fileCfg, err := numcmp.LoadConfig(configFile)
			if err != nil {
				return err
			}
			// explicit flags win over the config file
			if !c.Flags().Changed("simplify-constants") {
				cfg.SimplifyConstants = fileCfg.SimplifyConstants
			}
			if !c.Flags().Changed("verbose") {
				cfg.Verbose = fileCfg.Verbose
			}
			return nil
		},
	}

	rc.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to TOML config file")
	cfg.AddFlags(rc.PersistentFlags())

	rc.AddCommand(newCompareCommand(cfg, stdout))
	rc.AddCommand(newSimplifyCommand(cfg, stdout))
	return rc
}

func parseWidth(w int) (num.IntWidth, error) {
	switch w {
	case 16:
		return num.Width16, nil
	case 32:
		return num.Width32, nil
	case 64:
		return num.Width64, nil
	default:
		return 0, numcmp.NewErrInvalidIntegerWidth(w)
	}
}

// parseConstant parses a numeric constant of the named kind, returning both
// the runtime value handed to operator eval functions and the literal
// expression used in predicates.
func parseConstant(kind string, s string) (interface{}, types.PlanExpression, catalog.OperandKind, error) {
	switch kind {
	case "decimal":
		d, _, err := apd.NewFromString(s)
		if err != nil {
			return nil, nil, catalog.KindInvalid, err
		}
		return d, planner.NewDecimalLiteralPlanExpression(d), catalog.KindDecimal, nil
	case "float32":
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, nil, catalog.KindInvalid, err
		}
		return float32(f), planner.NewFloat32LiteralPlanExpression(float32(f)), catalog.KindFloat32, nil
	case "float64":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, nil, catalog.KindInvalid, err
		}
		return f, planner.NewFloat64LiteralPlanExpression(f), catalog.KindFloat64, nil
	default:
		return nil, nil, catalog.KindInvalid, fmt.Errorf("unknown constant kind '%s' (expected decimal, float32 or float64)", kind)
	}
}
