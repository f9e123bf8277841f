package dialect

// Dialect abstracts the catalog queries of one DBMS.
//
// Every query takes the resolved schema name as its single bind argument.
type Dialect interface {
	// Metadata Queries (Schema Introspection)

	// GetTablesQuery selects TABLE_NAME, TABLE_COMMENT.
	GetTablesQuery(schema string) string
	// GetColumnsQuery selects TABLE_NAME, COLUMN_NAME, DATA_TYPE, CHAR_LENGTH,
	// NUMERIC_PRECISION, NUMERIC_SCALE, IS_NULLABLE, COLUMN_KEY, IS_UNIQUE, COMMENT.
	GetColumnsQuery(schema string) string
	// GetForeignKeysQuery selects TABLE_NAME, CONSTRAINT_NAME, COLUMN_NAME,
	// REF_TABLE, REF_COLUMN.
	GetForeignKeysQuery(schema string) string

	// Helpers
	NormalizeType(sqlType string) string
	GetSchemaName(input string) string
}
