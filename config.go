// Copyright 2024 DataStone, Inc. All rights reserved.

package numcmp

import (
	"os"

	"github.com/datastone-inc/numcmp/errors"
	toml "github.com/pelletier/go-toml"
	"github.com/spf13/pflag"
)

const (
	ErrConfigFileRead  errors.Code = "ErrConfigFileRead"
	ErrConfigFileParse errors.Code = "ErrConfigFileParse"
)

// Config controls the planner-facing behavior of the module. The zero value
// is not useful; use NewConfig for defaults.
type Config struct {
	// SimplifyConstants enables the constant-predicate simplifier's
	// participation in planning. When false every comparison still
	// evaluates correctly through the comparator; only the index-enabling
	// rewrite is skipped.
	SimplifyConstants bool `toml:"simplify-constants"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		SimplifyConstants: true,
		Verbose:           false,
	}
}

// AddFlags binds the config to a flag set.
func (c *Config) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.SimplifyConstants, "simplify-constants", c.SimplifyConstants, "rewrite constant numeric comparisons to native integer predicates")
	flags.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable debug logging")
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(ErrConfigFileRead, err.Error())
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, errors.New(ErrConfigFileParse, err.Error())
	}
	return c, nil
}
