package dialect_test

import (
	"strings"
	"testing"

	"db-standard/internal/dialect"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDialect(t *testing.T) {
	for _, drv := range append(dialect.Drivers, "mssql") {
		d, err := dialect.GetDialect(drv)
		require.NoError(t, err, drv)
		assert.NotNil(t, d)
	}
	_, err := dialect.GetDialect("sqlite3")
	assert.Error(t, err)
}

func TestNormalizeType(t *testing.T) {
	cases := []struct {
		driver string
		in     string
		want   string
	}{
		{"mysql", "varchar", "VARCHAR"},
		{"mysql", "int", "INTEGER"},
		{"postgres", "int8", "BIGINT"},
		{"postgres", "bpchar", "CHAR"},
		{"postgres", "numeric", "NUMERIC"},
		{"sqlserver", "nvarchar", "NVARCHAR"},
		{"sqlserver", "datetime2", "DATETIME"},
		{"oracle", "VARCHAR2", "VARCHAR2"},
		{"oracle", "TIMESTAMP(6)", "TIMESTAMP"},
	}
	for _, tc := range cases {
		d, err := dialect.GetDialect(tc.driver)
		require.NoError(t, err)
		assert.Equal(t, tc.want, d.NormalizeType(tc.in), "%s %s", tc.driver, tc.in)
	}
}

func TestGetSchemaNameDefaults(t *testing.T) {
	pg, _ := dialect.GetDialect("postgres")
	ms, _ := dialect.GetDialect("sqlserver")
	my, _ := dialect.GetDialect("mysql")
	ora, _ := dialect.GetDialect("oracle")

	assert.Equal(t, "public", pg.GetSchemaName(""))
	assert.Equal(t, "dbo", ms.GetSchemaName(""))
	assert.Equal(t, "shop", my.GetSchemaName("shop"))
	assert.NotEmpty(t, ora.GetSchemaName(""))
}

func TestQueriesBindSchema(t *testing.T) {
	placeholders := map[string]string{"mysql": "?", "postgres": "$1", "sqlserver": "@p1", "oracle": ":1"}
	for drv, ph := range placeholders {
		d, err := dialect.GetDialect(drv)
		require.NoError(t, err)
		for _, q := range []string{d.GetTablesQuery("s"), d.GetColumnsQuery("s"), d.GetForeignKeysQuery("s")} {
			assert.True(t, strings.Contains(q, ph), "%s query lacks %s", drv, ph)
		}
	}
}
