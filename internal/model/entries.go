package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// FlexString accepts either a JSON string or a JSON number and always
// encodes back as a string. Spreadsheets exported by other tools store
// lengths as numbers.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// FlexInt formats an int as a FlexString; zero means "no value".
func FlexInt(n int) FlexString {
	if n <= 0 {
		return ""
	}
	return FlexString(strconv.Itoa(n))
}

// Meta holds the fields every persisted record carries.
type Meta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m Meta) EntryID() string { return m.ID }

// 단어집 (표준 단어)
type VocabularyEntry struct {
	Meta
	StandardName           string   `json:"standardName"`
	Abbreviation           string   `json:"abbreviation"`
	EnglishName            string   `json:"englishName"`
	Description            string   `json:"description,omitempty"`
	IsFormalWord           *bool    `json:"isFormalWord,omitempty"`
	DomainGroup            string   `json:"domainGroup,omitempty"`
	DomainCategory         string   `json:"domainCategory,omitempty"`
	IsDomainCategoryMapped bool     `json:"isDomainCategoryMapped,omitempty"`
	Synonyms               []string `json:"synonyms,omitempty"`
	ForbiddenWords         []string `json:"forbiddenWords,omitempty"`
	Source                 string   `json:"source,omitempty"`
}

// 도메인
type DomainEntry struct {
	Meta
	DomainGroup        string     `json:"domainGroup"`
	DomainCategory     string     `json:"domainCategory"`
	StandardDomainName string     `json:"standardDomainName"`
	LogicalDataType    string     `json:"logicalDataType"`
	PhysicalDataType   string     `json:"physicalDataType"`
	DataLength         FlexString `json:"dataLength,omitempty"`
	DecimalPlaces      FlexString `json:"decimalPlaces,omitempty"`
	DataValue          string     `json:"dataValue,omitempty"`
	MeasurementUnit    string     `json:"measurementUnit,omitempty"`
	Description        string     `json:"description,omitempty"`
	StorageFormat      string     `json:"storageFormat,omitempty"`
	DisplayFormat      string     `json:"displayFormat,omitempty"`
	AllowedValues      string     `json:"allowedValues,omitempty"`
	Revision           string     `json:"revision,omitempty"`
}

// 용어
type TermEntry struct {
	Meta
	TermName            string   `json:"termName"`
	ColumnName          string   `json:"columnName"`
	DomainName          string   `json:"domainName"`
	IsMappedTerm        bool     `json:"isMappedTerm"`
	IsMappedColumn      bool     `json:"isMappedColumn"`
	IsMappedDomain      bool     `json:"isMappedDomain"`
	UnmappedTermParts   []string `json:"unmappedTermParts,omitempty"`
	UnmappedColumnParts []string `json:"unmappedColumnParts,omitempty"`
	Description         string   `json:"description,omitempty"`
}

// DB 정의서
type DatabaseEntry struct {
	Meta
	OrganizationName string `json:"organizationName,omitempty"`
	DepartmentName   string `json:"departmentName,omitempty"`
	AppliedTask      string `json:"appliedTask,omitempty"`
	RelatedLaw       string `json:"relatedLaw,omitempty"`
	LogicalDbName    string `json:"logicalDbName"`
	PhysicalDbName   string `json:"physicalDbName"`
	BuildDate        string `json:"buildDate,omitempty"`
	DbmsInfo         string `json:"dbmsInfo,omitempty"`
	OsInfo           string `json:"osInfo,omitempty"`
	AccessRight      string `json:"accessRight,omitempty"`
	Description      string `json:"description,omitempty"`
}

// 엔터티 정의서
type EntityEntry struct {
	Meta
	LogicalDbName       string `json:"logicalDbName"`
	SchemaName          string `json:"schemaName"`
	EntityName          string `json:"entityName"`
	EntityDescription   string `json:"entityDescription,omitempty"`
	PrimaryIdentifier   string `json:"primaryIdentifier,omitempty"`
	SuperTypeEntityName string `json:"superTypeEntityName,omitempty"`
	TableKoreanName     string `json:"tableKoreanName"`
}

// 속성 정의서
type AttributeEntry struct {
	Meta
	SchemaName           string `json:"schemaName"`
	EntityName           string `json:"entityName"`
	AttributeName        string `json:"attributeName"`
	AttributeType        string `json:"attributeType,omitempty"`
	RequiredInput        string `json:"requiredInput,omitempty"`
	IdentifierFlag       string `json:"identifierFlag,omitempty"`
	RefEntityName        string `json:"refEntityName,omitempty"`
	RefAttributeName     string `json:"refAttributeName,omitempty"`
	AttributeDescription string `json:"attributeDescription,omitempty"`
}

// 테이블 정의서
type TableEntry struct {
	Meta
	PhysicalDbName    string `json:"physicalDbName"`
	TableOwner        string `json:"tableOwner,omitempty"`
	SubjectArea       string `json:"subjectArea,omitempty"`
	SchemaName        string `json:"schemaName"`
	TableEnglishName  string `json:"tableEnglishName"`
	TableKoreanName   string `json:"tableKoreanName"`
	TableType         string `json:"tableType,omitempty"`
	RelatedEntityName string `json:"relatedEntityName"`
	PublicFlag        string `json:"publicFlag,omitempty"`
	TableDescription  string `json:"tableDescription,omitempty"`
}

// 컬럼 정의서
type ColumnEntry struct {
	Meta
	ScopeFlag         string     `json:"scopeFlag,omitempty"`
	SubjectArea       string     `json:"subjectArea,omitempty"`
	SchemaName        string     `json:"schemaName"`
	TableEnglishName  string     `json:"tableEnglishName"`
	ColumnEnglishName string     `json:"columnEnglishName"`
	ColumnKoreanName  string     `json:"columnKoreanName"`
	ColumnDescription string     `json:"columnDescription,omitempty"`
	RelatedEntityName string     `json:"relatedEntityName"`
	DataType          string     `json:"dataType,omitempty"`
	DataLength        FlexString `json:"dataLength,omitempty"`
	DataDecimalLength FlexString `json:"dataDecimalLength,omitempty"`
	DataFormat        string     `json:"dataFormat,omitempty"`
	NotNullFlag       string     `json:"notNullFlag,omitempty"`
	PKInfo            string     `json:"pkInfo,omitempty"`
	FKInfo            string     `json:"fkInfo,omitempty"`
	Constraint        string     `json:"constraint,omitempty"`
}
