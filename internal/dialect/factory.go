package dialect

import (
	"fmt"
	"strings"
)

// Drivers lists the driver names GetDialect understands.
var Drivers = []string{"mysql", "postgres", "sqlserver", "oracle"}

// GetDialect returns the Dialect for a database/sql driver name.
func GetDialect(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return &MysqlDialect{}, nil
	case "postgres":
		return &PostgresDialect{}, nil
	case "sqlserver", "mssql":
		return &MSSQLDialect{}, nil
	case "oracle":
		return &OracleDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q (supported: %s)", driver, strings.Join(Drivers, ", "))
	}
}

// normalizeType upper-cases t and resolves aliases to the physical type
// names used in standard domain names.
func normalizeType(t string, aliases map[string]string) string {
	u := strings.ToUpper(strings.TrimSpace(t))
	if a, ok := aliases[u]; ok {
		return a
	}
	return u
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
