// Package relation cross-checks the five design definitions (database,
// entity, attribute, table, column) by name and plans field patches that
// bring mismatched tables and columns back in line.
//
// Records reference each other by human-readable names, not ids. Every match
// goes through a normalized composite key and a lookup that distinguishes
// "no candidate" from "more than one candidate"; ambiguous lookups are
// skipped, never guessed.
package relation

import (
	"errors"
	"strings"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// ErrNilContext is returned when a validator or planner is called without data.
var ErrNilContext = errors.New("relation: nil context")

// Context is one consistent snapshot of the design definitions.
// Domains travel with the snapshot for callers that render column types;
// the relation checks do not read them.
type Context struct {
	Databases  []model.DatabaseEntry
	Entities   []model.EntityEntry
	Attributes []model.AttributeEntry
	Tables     []model.TableEntry
	Columns    []model.ColumnEntry
	Domains    []model.DomainEntry
}

type RelationID string

const (
	DBEntity        RelationID = "DB_ENTITY"
	DBTable         RelationID = "DB_TABLE"
	EntityAttribute RelationID = "ENTITY_ATTRIBUTE"
	EntityTable     RelationID = "ENTITY_TABLE"
	TableColumn     RelationID = "TABLE_COLUMN"
	AttributeColumn RelationID = "ATTRIBUTE_COLUMN"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Spec describes one source → target relation.
type Spec struct {
	ID          RelationID     `json:"id"`
	Name        string         `json:"name"`
	SourceType  model.DataType `json:"sourceType"`
	TargetType  model.DataType `json:"targetType"`
	MappingKey  string         `json:"mappingKey"`
	Cardinality string         `json:"cardinality"`
	Severity    Severity       `json:"severity"`

	sourceKeys func(*Context) []string
	targets    func(*Context) []targetRef
}

// targetRef is a target record reduced to what the check needs.
type targetRef struct {
	ID       string
	Label    string
	Key      string
	Expected string
}

func key(parts ...string) string {
	return naming.BuildCompositeKey(parts, naming.DesignKey)
}

func describe(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		v := strings.TrimSpace(pairs[i+1])
		if v == "" {
			v = "(비어 있음)"
		}
		b.WriteString(pairs[i] + "=" + v)
	}
	return b.String()
}

// Specs returns the six relation specs in reporting order.
func Specs() []Spec {
	return []Spec{
		{
			ID: DBEntity, Name: "DB → 엔터티",
			SourceType: model.DataTypeDatabase, TargetType: model.DataTypeEntity,
			MappingKey: "logicalDbName", Cardinality: "1:N", Severity: SeverityError,
			sourceKeys: func(c *Context) []string {
				keys := make([]string, 0, len(c.Databases))
				for _, d := range c.Databases {
					keys = append(keys, key(d.LogicalDbName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Entities))
				for _, e := range c.Entities {
					refs = append(refs, targetRef{
						ID: e.ID, Label: e.EntityName,
						Key:      key(e.LogicalDbName),
						Expected: describe("logicalDbName", e.LogicalDbName),
					})
				}
				return refs
			},
		},
		{
			ID: DBTable, Name: "DB → 테이블",
			SourceType: model.DataTypeDatabase, TargetType: model.DataTypeTable,
			MappingKey: "physicalDbName", Cardinality: "1:N", Severity: SeverityError,
			sourceKeys: func(c *Context) []string {
				keys := make([]string, 0, len(c.Databases))
				for _, d := range c.Databases {
					keys = append(keys, key(d.PhysicalDbName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Tables))
				for _, t := range c.Tables {
					refs = append(refs, targetRef{
						ID: t.ID, Label: t.TableEnglishName,
						Key:      key(t.PhysicalDbName),
						Expected: describe("physicalDbName", t.PhysicalDbName),
					})
				}
				return refs
			},
		},
		{
			ID: EntityAttribute, Name: "엔터티 → 속성",
			SourceType: model.DataTypeEntity, TargetType: model.DataTypeAttribute,
			MappingKey: "schemaName+entityName", Cardinality: "1:N", Severity: SeverityError,
			sourceKeys: func(c *Context) []string {
				keys := make([]string, 0, len(c.Entities))
				for _, e := range c.Entities {
					keys = append(keys, key(e.SchemaName, e.EntityName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Attributes))
				for _, a := range c.Attributes {
					refs = append(refs, targetRef{
						ID: a.ID, Label: a.EntityName + "." + a.AttributeName,
						Key:      key(a.SchemaName, a.EntityName),
						Expected: describe("schemaName", a.SchemaName, "entityName", a.EntityName),
					})
				}
				return refs
			},
		},
		{
			ID: EntityTable, Name: "엔터티 ↔ 테이블",
			SourceType: model.DataTypeEntity, TargetType: model.DataTypeTable,
			MappingKey: "schemaName+tableKoreanName≈relatedEntityName", Cardinality: "1:1", Severity: SeverityError,
			sourceKeys: func(c *Context) []string {
				// 테이블의 관련엔터티명에는 엔터티명 또는 테이블한글명이 들어올 수 있다
				keys := make([]string, 0, 2*len(c.Entities))
				for _, e := range c.Entities {
					keys = append(keys, key(e.SchemaName, e.EntityName), key(e.SchemaName, e.TableKoreanName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Tables))
				for _, t := range c.Tables {
					refs = append(refs, targetRef{
						ID: t.ID, Label: t.TableEnglishName,
						Key:      key(t.SchemaName, t.RelatedEntityName),
						Expected: describe("schemaName", t.SchemaName, "relatedEntityName", t.RelatedEntityName),
					})
				}
				return refs
			},
		},
		{
			ID: TableColumn, Name: "테이블 → 컬럼",
			SourceType: model.DataTypeTable, TargetType: model.DataTypeColumn,
			MappingKey: "schemaName+tableEnglishName", Cardinality: "1:N", Severity: SeverityError,
			sourceKeys: func(c *Context) []string {
				keys := make([]string, 0, len(c.Tables))
				for _, t := range c.Tables {
					keys = append(keys, key(t.SchemaName, t.TableEnglishName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Columns))
				for _, col := range c.Columns {
					refs = append(refs, targetRef{
						ID: col.ID, Label: col.TableEnglishName + "." + col.ColumnEnglishName,
						Key:      key(col.SchemaName, col.TableEnglishName),
						Expected: describe("schemaName", col.SchemaName, "tableEnglishName", col.TableEnglishName),
					})
				}
				return refs
			},
		},
		{
			ID: AttributeColumn, Name: "속성 ↔ 컬럼",
			SourceType: model.DataTypeAttribute, TargetType: model.DataTypeColumn,
			MappingKey: "entityName≈relatedEntityName", Cardinality: "1:1", Severity: SeverityWarning,
			sourceKeys: func(c *Context) []string {
				keys := make([]string, 0, len(c.Attributes))
				for _, a := range c.Attributes {
					keys = append(keys, key(a.EntityName))
				}
				return keys
			},
			targets: func(c *Context) []targetRef {
				refs := make([]targetRef, 0, len(c.Columns))
				for _, col := range c.Columns {
					refs = append(refs, targetRef{
						ID: col.ID, Label: col.TableEnglishName + "." + col.ColumnEnglishName,
						Key:      key(col.RelatedEntityName),
						Expected: describe("relatedEntityName", col.RelatedEntityName),
					})
				}
				return refs
			},
		},
	}
}
