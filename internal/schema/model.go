package schema

// Table is the physical table as read from the database catalog.
type Table struct {
	Name         string
	Comment      string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string // 의존성 분석용
}

type Column struct {
	Name       string
	DataType   string // dialect.NormalizeType 적용 결과 (예: VARCHAR, NUMBER)
	Length     int    // 문자형 길이
	Precision  int    // 숫자형 전체 자릿수
	Scale      int    // 숫자형 소수 자릿수
	IsNullable bool
	IsPK       bool
	IsUnique   bool
	Comment    string // DB 스키마 코멘트 (MS_Description 등)
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}
