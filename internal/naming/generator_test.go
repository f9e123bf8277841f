package naming_test

import (
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/naming"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStandardDomainName(t *testing.T) {
	cases := []struct {
		category, typ, length, decimals string
		want                            string
	}{
		{"회원", "VARCHAR", "10", "", "회원_VARCHAR(10)"},
		{"회원", "varchar", " 10 ", "", "회원_VARCHAR(10)"},
		{"금액", "DECIMAL", "10", "2", "금액_DECIMAL(10,2)"},
		{"금액", "NUMBER", "15.0", "", "금액_NUMBER(15)"},
		{"명", "VARCHAR", "50", "2", "명_VARCHAR(50)"},
		{"일자", "DATE", "8", "", "일자_DATE"},
		{"내용", "TEXT", "", "", "내용_TEXT"},
		{"코드", "CHAR", "", "", "코드_CHAR"},
		{"명", "VARCHAR", "1e3", "", "명_VARCHAR(1e3)"},
		{"명", "VARCHAR", "1e30", "", "명_VARCHAR(1e30)"},
		{"금액", "DECIMAL", "10", "2E0", "금액_DECIMAL(10,2E0)"},
		{"명", "VARCHAR", "Inf", "", "명_VARCHAR(Inf)"},
		{"", "VARCHAR", "10", "", ""},
		{"회원", "", "10", "", ""},
	}
	for _, c := range cases {
		got := naming.GenerateStandardDomainName(c.category, c.typ, c.length, c.decimals)
		assert.Equal(t, c.want, got, "%+v", c)
	}
}

func testVocabulary() []model.VocabularyEntry {
	return []model.VocabularyEntry{
		{Meta: model.Meta{ID: "v1"}, StandardName: "고객", Abbreviation: "CUST", EnglishName: "Customer"},
		{Meta: model.Meta{ID: "v2"}, StandardName: "번호", Abbreviation: "NO", EnglishName: "Number", DomainCategory: "번호"},
		{Meta: model.Meta{ID: "v3"}, StandardName: "명", Abbreviation: "NM", EnglishName: "Name", DomainCategory: "명"},
		{Meta: model.Meta{ID: "v4"}, StandardName: "주문", Abbreviation: "ORD", EnglishName: "Order"},
		{Meta: model.Meta{ID: "v5"}, StandardName: "주문", Abbreviation: "ORDR", EnglishName: "Orders"},
	}
}

func TestGenerateTermNames(t *testing.T) {
	lex := naming.NewLexicon(testVocabulary())

	res := naming.GenerateTermNames("고객_번호", lex)
	assert.Equal(t, "고객_번호", res.TermName)
	assert.Equal(t, "CUST_NO", res.ColumnName)
	assert.True(t, res.Complete())

	// 약어로도 조회된다
	res = naming.GenerateTermNames("cust_nm", lex)
	assert.Equal(t, "고객_명", res.TermName)
	assert.Equal(t, "CUST_NM", res.ColumnName)

	// 부분 성공은 정상 결과
	res = naming.GenerateTermNames("고객_등급_번호", lex)
	assert.Equal(t, "고객_번호", res.TermName)
	assert.Equal(t, "CUST_NO", res.ColumnName)
	assert.Equal(t, []string{"등급"}, res.UnmappedParts)
	assert.False(t, res.Complete())
}

func TestGenerateTermNames_AmbiguousWordIsUnmapped(t *testing.T) {
	lex := naming.NewLexicon(testVocabulary())
	res := naming.GenerateTermNames("주문_번호", lex)
	assert.Equal(t, []string{"주문"}, res.UnmappedParts)
	assert.Equal(t, "NO", res.ColumnName)
}

func TestGenerateColumnAndTermName(t *testing.T) {
	lex := naming.NewLexicon(testVocabulary())

	col, unmapped := naming.GenerateColumnName("고객_명", lex)
	assert.Equal(t, "CUST_NM", col)
	assert.Empty(t, unmapped)

	term, unmapped := naming.GenerateTermName("CUST_NM_X", lex)
	assert.Equal(t, "고객_명", term)
	assert.Equal(t, []string{"X"}, unmapped)
}

func TestIndexFind(t *testing.T) {
	idx := naming.NewIndex([]string{"a", "b", "b", ""}, func(s string) string { return s })

	assert.Equal(t, naming.Resolved, idx.Find("a").Status)
	assert.Equal(t, "a", idx.Find("a").Target)

	amb := idx.Find("b")
	require.Equal(t, naming.Ambiguous, amb.Status)
	assert.Len(t, amb.Candidates, 2)

	assert.Equal(t, naming.Unmatched, idx.Find("c").Status)
	assert.Equal(t, naming.Unmatched, idx.Find("").Status)
	assert.False(t, idx.Has(""))
}
