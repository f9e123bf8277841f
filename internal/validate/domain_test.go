package validate_test

import (
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domain(id, category, typ, length, stored string) model.DomainEntry {
	return model.DomainEntry{
		Meta:               model.Meta{ID: id},
		DomainGroup:        "공통",
		DomainCategory:     category,
		PhysicalDataType:   typ,
		DataLength:         model.FlexString(length),
		StandardDomainName: stored,
	}
}

func codes(issues []validate.Issue) []validate.Code {
	var out []validate.Code
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func TestValidateDomains_MatchingNameIsNeverFlagged(t *testing.T) {
	report := validate.ValidateDomains([]model.DomainEntry{
		domain("d1", "회원", "VARCHAR", "10", "회원_VARCHAR(10)"),
	})
	assert.Equal(t, 1, report.TotalCount)
	assert.Equal(t, 1, report.PassedCount)
	assert.Equal(t, 0, report.FailedCount)
	assert.Empty(t, report.FailedEntries)
}

func TestValidateDomains_Mismatch(t *testing.T) {
	report := validate.ValidateDomains([]model.DomainEntry{
		domain("d1", "회원", "VARCHAR", "20", "회원_VARCHAR(10)"),
	})
	require.Len(t, report.FailedEntries, 1)
	res := report.FailedEntries[0]
	assert.Equal(t, "회원_VARCHAR(20)", res.GeneratedDomainName)
	assert.Equal(t, []validate.Code{validate.CodeDomainNameMismatch}, codes(res.Errors))
}

func TestValidateDomains_DuplicateGeneratedNames(t *testing.T) {
	report := validate.ValidateDomains([]model.DomainEntry{
		domain("d1", "명", "VARCHAR", "50", "명_VARCHAR(50)"),
		domain("d2", "명", "varchar", "50", "이름_VARCHAR(50)"),
		domain("d3", "명", "VARCHAR", "100", "명_VARCHAR(100)"),
	})
	assert.Equal(t, 3, report.TotalCount)
	assert.Equal(t, 2, report.FailedCount)
	assert.Equal(t, 1, report.PassedCount)

	byID := map[string]validate.Result{}
	for _, r := range report.FailedEntries {
		byID[r.EntryID] = r
	}
	assert.Equal(t, []validate.Code{validate.CodeDomainNameDuplicate}, codes(byID["d1"].Errors))
	// 불일치(2)가 중복(3)보다 먼저 나온다
	assert.Equal(t, []validate.Code{validate.CodeDomainNameMismatch, validate.CodeDomainNameDuplicate}, codes(byID["d2"].Errors))
}

func TestValidateDomains_RequiredFieldsSkipNameChecks(t *testing.T) {
	report := validate.ValidateDomains([]model.DomainEntry{
		domain("d1", "", "", "10", "X"),
		domain("d2", "-", "CHAR", "1", "X"),
	})
	require.Len(t, report.FailedEntries, 2)
	first := report.FailedEntries[0]
	assert.Equal(t, []validate.Code{validate.CodeRequiredField, validate.CodeRequiredField}, codes(first.Errors))
	assert.Equal(t, "domainCategory", first.Errors[0].Field)
	assert.Equal(t, "physicalDataType", first.Errors[1].Field)
	assert.Equal(t, []validate.Code{validate.CodeRequiredField}, codes(report.FailedEntries[1].Errors))
}

func TestSortIssues_StableByPriority(t *testing.T) {
	issues := []validate.Issue{
		{Code: "C", Priority: 3},
		{Code: "A1", Priority: 1},
		{Code: "B", Priority: 2},
		{Code: "A2", Priority: 1},
	}
	validate.SortIssues(issues)
	assert.Equal(t, []validate.Code{"A1", "A2", "B", "C"}, codes(issues))
}
