package cmd_test

import (
	"testing"

	"db-standard/cmd"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDatabases(t *testing.T, dbs ...map[string]any) {
	t.Helper()
	viper.Set("databases", dbs)
	t.Cleanup(func() { viper.Set("databases", nil) })
}

func TestGetActiveDBConfig(t *testing.T) {
	setDatabases(t,
		map[string]any{"name": "dev", "driver": "mysql", "dsn": "root@tcp(localhost)/dev"},
		map[string]any{"name": "hr", "driver": "oracle", "dsn": "oracle://hr@db:1521/ORCL", "schema": "HR", "active": true},
	)

	cfg, err := cmd.GetActiveDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "hr", cfg.Name)
	assert.Equal(t, "HR", cfg.Schema)
}

func TestGetActiveDBConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		dbs  []map[string]any
	}{
		{"none active", []map[string]any{{"name": "a", "driver": "mysql", "dsn": "x"}}},
		{"two active", []map[string]any{
			{"name": "a", "driver": "mysql", "dsn": "x", "active": true},
			{"name": "b", "driver": "postgres", "dsn": "y", "active": true},
		}},
		{"unknown driver", []map[string]any{{"name": "a", "driver": "sqlite3", "dsn": "x", "active": true}}},
		{"missing dsn", []map[string]any{{"name": "a", "driver": "postgres", "active": true}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setDatabases(t, tc.dbs...)
			_, err := cmd.GetActiveDBConfig()
			assert.Error(t, err)
		})
	}
}
