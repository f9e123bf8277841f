package cmd

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DBConfig is one entry of the databases list. Only the active one is used
// by import.
type DBConfig struct {
	Name   string `mapstructure:"name" validate:"required"`
	Driver string `mapstructure:"driver" validate:"required,oneof=mysql postgres sqlserver mssql oracle"`
	DSN    string `mapstructure:"dsn" validate:"required"`
	Schema string `mapstructure:"schema"`
	Active bool   `mapstructure:"active"`
}

var configValidate = validator.New()

// GetActiveDBConfig returns the single database profile marked active.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig
	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var active []*DBConfig
	for i := range configs {
		if configs[i].Active {
			active = append(active, &configs[i])
		}
	}

	switch len(active) {
	case 0:
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	case 1:
	default:
		names := make([]string, len(active))
		for i, c := range active {
			names[i] = c.Name
		}
		return nil, fmt.Errorf("multiple active databases found: %s (only one can be active)", strings.Join(names, ", "))
	}

	cfg := active[0]
	if err := configValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid database config %q: %w", cfg.Name, err)
	}
	return cfg, nil
}
