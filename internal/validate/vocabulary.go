package validate

import (
	"fmt"
	"regexp"

	"db-standard/internal/naming"
)

const (
	vocabPriorityRequired   = 1
	vocabPriorityDuplicate  = 2
	vocabPriorityForbidden  = 3
	vocabPriorityAbbrFormat = 4
	vocabPriorityCategory   = 5
)

var abbreviationPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

var uniqueFieldLabels = map[naming.UniqueField]string{
	naming.FieldStandardName: "표준단어명",
	naming.FieldAbbreviation: "영문약어",
	naming.FieldEnglishName:  "영문명",
}

// ValidateVocabulary checks required fields, per-field uniqueness, forbidden
// word usage, abbreviation format and domain category mapping.
func ValidateVocabulary(ctx *Context) Report {
	entries := ctx.Vocabulary
	dupFields := naming.DuplicateFieldsByEntry(entries)

	// 다른 단어의 금칙어로 등록된 표준단어명
	forbiddenBy := make(map[string][]int)
	for i := range entries {
		for _, w := range entries[i].ForbiddenWords {
			if k := naming.NormalizeKey(w, naming.KeyOptions{}); k != "" {
				forbiddenBy[k] = append(forbiddenBy[k], i)
			}
		}
	}

	categories := make(map[string]bool, len(ctx.Domains))
	for i := range ctx.Domains {
		categories[naming.NormalizeKey(ctx.Domains[i].DomainCategory, naming.KeyOptions{})] = true
	}

	report := newReport()
	for i := range entries {
		e := &entries[i]
		res := Result{EntryID: e.ID, Label: e.StandardName}

		for _, f := range naming.VocabularyUniqueFields {
			if blank(naming.FieldValue(e, f)) {
				res.Errors = append(res.Errors, requiredIssue(string(f), uniqueFieldLabels[f], vocabPriorityRequired))
			}
		}

		for _, f := range dupFields[e] {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeVocabularyDuplicate,
				Field:    string(f),
				Message:  fmt.Sprintf("%s %q이(가) 다른 단어와 중복됩니다", uniqueFieldLabels[f], naming.FieldValue(e, f)),
				Priority: vocabPriorityDuplicate,
			})
		}

		for _, owner := range forbiddenBy[naming.NormalizeKey(e.StandardName, naming.KeyOptions{})] {
			if owner == i {
				continue
			}
			res.Errors = append(res.Errors, Issue{
				Code:     CodeForbiddenWord,
				Field:    "standardName",
				Message:  fmt.Sprintf("%q은(는) 금칙어로 등록된 단어입니다", e.StandardName),
				Priority: vocabPriorityForbidden,
			})
			break
		}

		if !blank(e.Abbreviation) && !abbreviationPattern.MatchString(e.Abbreviation) {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeAbbreviationFormat,
				Field:    "abbreviation",
				Message:  fmt.Sprintf("영문약어 %q은(는) 영문자로 시작하는 영숫자여야 합니다", e.Abbreviation),
				Priority: vocabPriorityAbbrFormat,
			})
		}

		if cat := naming.NormalizeKey(e.DomainCategory, naming.KeyOptions{}); cat != "" && !categories[cat] {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeDomainCategoryUnmapped,
				Field:    "domainCategory",
				Message:  fmt.Sprintf("도메인분류명 %q에 해당하는 도메인이 없습니다", e.DomainCategory),
				Priority: vocabPriorityCategory,
			})
		}

		report.add(res)
	}
	return report
}
