package validate_test

import (
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() *validate.Context {
	return &validate.Context{
		Vocabulary: []model.VocabularyEntry{
			{Meta: model.Meta{ID: "v1"}, StandardName: "고객", Abbreviation: "CUST", EnglishName: "Customer"},
			{Meta: model.Meta{ID: "v2"}, StandardName: "번호", Abbreviation: "NO", EnglishName: "Number", DomainCategory: "번호"},
			{Meta: model.Meta{ID: "v3"}, StandardName: "명", Abbreviation: "NM", EnglishName: "Name", DomainCategory: "명"},
		},
		Domains: []model.DomainEntry{
			{Meta: model.Meta{ID: "d1"}, DomainCategory: "번호", PhysicalDataType: "VARCHAR", DataLength: "20", StandardDomainName: "번호_VARCHAR(20)"},
			{Meta: model.Meta{ID: "d2"}, DomainCategory: "명", PhysicalDataType: "VARCHAR", DataLength: "100", StandardDomainName: "명_VARCHAR(100)"},
		},
	}
}

func term(id, name, col, dom string) model.TermEntry {
	return model.TermEntry{Meta: model.Meta{ID: id}, TermName: name, ColumnName: col, DomainName: dom}
}

func failedByID(r validate.Report) map[string]validate.Result {
	out := map[string]validate.Result{}
	for _, f := range r.FailedEntries {
		out[f.EntryID] = f
	}
	return out
}

func TestValidateTerms_Valid(t *testing.T) {
	report := validate.ValidateTerms([]model.TermEntry{
		term("t1", "고객_번호", "CUST_NO", "번호_VARCHAR(20)"),
		term("t2", "고객_명", "cust_nm", "명_VARCHAR(100)"),
	}, testContext())
	assert.Equal(t, 2, report.PassedCount)
	assert.Empty(t, report.FailedEntries)
}

func TestValidateTerms_Findings(t *testing.T) {
	report := validate.ValidateTerms([]model.TermEntry{
		term("unmapped", "고객_등급", "CUST_GRD", "번호_VARCHAR(20)"),
		term("mismatch", "고객_번호", "CUST_NM", "번호_VARCHAR(20)"),
		term("nodomain", "고객_명", "CUST_NM", "명_VARCHAR (100)"),
		term("category", "고객_명", "CUST_NM", "번호_VARCHAR(20)"),
		term("required", "", "", ""),
	}, testContext())
	failed := failedByID(report)
	require.Len(t, failed, 5)

	assert.Equal(t, []validate.Code{validate.CodeTermNameUnmapped, validate.CodeColumnNameUnmapped},
		codes(failed["unmapped"].Errors))

	mm := failed["mismatch"]
	assert.Equal(t, []validate.Code{validate.CodeTermColumnMismatch}, codes(mm.Errors))
	require.Len(t, mm.AutoFixes, 1)
	assert.Equal(t, "CUST_NO", mm.AutoFixes[0].Suggested)

	nd := failed["nodomain"]
	assert.Equal(t, []validate.Code{validate.CodeDomainNotFound, validate.CodeTermNameDuplicate}, codes(nd.Errors))
	require.Len(t, nd.AutoFixes, 1)
	assert.Equal(t, "명_VARCHAR(100)", nd.AutoFixes[0].Suggested)

	assert.Equal(t, []validate.Code{validate.CodeTermNameDuplicate, validate.CodeDomainCategoryMismatch},
		codes(failed["category"].Errors))

	req := failed["required"]
	assert.Equal(t, []validate.Code{validate.CodeRequiredField, validate.CodeRequiredField, validate.CodeRequiredField},
		codes(req.Errors))
}

func TestValidateTerms_SuggestsTermNameFromColumn(t *testing.T) {
	report := validate.ValidateTerms([]model.TermEntry{
		term("t1", "손님_번호", "CUST_NO", "번호_VARCHAR(20)"),
	}, testContext())
	require.Len(t, report.FailedEntries, 1)
	fixes := report.FailedEntries[0].AutoFixes
	require.Len(t, fixes, 1)
	assert.Equal(t, "termName", fixes[0].Field)
	assert.Equal(t, "고객_번호", fixes[0].Suggested)
}

func TestMapTerm(t *testing.T) {
	ctx := testContext()
	mapped := validate.MapTerm(term("t1", "고객_등급", "CUST_NO", "없는도메인"), ctx)
	assert.False(t, mapped.IsMappedTerm)
	assert.True(t, mapped.IsMappedColumn)
	assert.False(t, mapped.IsMappedDomain)
	assert.Equal(t, []string{"등급"}, mapped.UnmappedTermParts)
	assert.Empty(t, mapped.UnmappedColumnParts)

	mapped = validate.MapTerm(term("t2", "고객_번호", "CUST_NO", "번호_VARCHAR(20)"), ctx)
	assert.True(t, mapped.IsMappedTerm && mapped.IsMappedColumn && mapped.IsMappedDomain)
}

func TestMappingChanged_ComparesParts(t *testing.T) {
	ctx := testContext()
	before := validate.MapTerm(term("t1", "고객_등급", "CUST_NO", "없는도메인"), ctx)
	assert.False(t, validate.MappingChanged(before, validate.MapTerm(before, ctx)))

	// 같은 개수, 다른 조각
	after := before
	after.UnmappedTermParts = []string{"구분"}
	assert.True(t, validate.MappingChanged(before, after))

	after = before
	after.UnmappedColumnParts = []string{}
	assert.False(t, validate.MappingChanged(before, after), "nil and empty are the same")

	after.IsMappedDomain = !before.IsMappedDomain
	assert.True(t, validate.MappingChanged(before, after))
}
