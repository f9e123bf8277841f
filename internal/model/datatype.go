package model

import (
	"fmt"
	"strings"
)

// DataType is the closed set of data sets persisted by the workspace.
type DataType string

const (
	DataTypeVocabulary DataType = "vocabulary"
	DataTypeDomain     DataType = "domain"
	DataTypeTerm       DataType = "term"
	DataTypeDatabase   DataType = "database"
	DataTypeEntity     DataType = "entity"
	DataTypeAttribute  DataType = "attribute"
	DataTypeTable      DataType = "table"
	DataTypeColumn     DataType = "column"
)

// AllDataTypes lists every data type in dependency order (naming standards first,
// then the five design definitions).
var AllDataTypes = []DataType{
	DataTypeVocabulary,
	DataTypeDomain,
	DataTypeTerm,
	DataTypeDatabase,
	DataTypeEntity,
	DataTypeAttribute,
	DataTypeTable,
	DataTypeColumn,
}

// DefaultFilename returns the fixed file name used when no override is configured.
func (t DataType) DefaultFilename() string {
	return string(t) + ".json"
}

// Label returns the Korean display name used in reports.
func (t DataType) Label() string {
	switch t {
	case DataTypeVocabulary:
		return "단어집"
	case DataTypeDomain:
		return "도메인"
	case DataTypeTerm:
		return "용어"
	case DataTypeDatabase:
		return "데이터베이스"
	case DataTypeEntity:
		return "엔터티"
	case DataTypeAttribute:
		return "속성"
	case DataTypeTable:
		return "테이블"
	case DataTypeColumn:
		return "컬럼"
	default:
		return string(t)
	}
}

// ParseDataType parses a data type name (case-insensitive).
func ParseDataType(s string) (DataType, error) {
	t := DataType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllDataTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown data type: %q", s)
}

// Kind binds a DataType tag to its record type so that generic load/save
// can be dispatched without reflection.
type Kind[T any] struct {
	Type DataType
}

var (
	VocabularyKind = Kind[VocabularyEntry]{Type: DataTypeVocabulary}
	DomainKind     = Kind[DomainEntry]{Type: DataTypeDomain}
	TermKind       = Kind[TermEntry]{Type: DataTypeTerm}
	DatabaseKind   = Kind[DatabaseEntry]{Type: DataTypeDatabase}
	EntityKind     = Kind[EntityEntry]{Type: DataTypeEntity}
	AttributeKind  = Kind[AttributeEntry]{Type: DataTypeAttribute}
	TableKind      = Kind[TableEntry]{Type: DataTypeTable}
	ColumnKind     = Kind[ColumnEntry]{Type: DataTypeColumn}
)
