package validate

import (
	"fmt"
	"slices"
	"strings"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

const (
	termPriorityRequired         = 1
	termPriorityTermUnmapped     = 2
	termPriorityColumnUnmapped   = 3
	termPriorityMismatch         = 4
	termPriorityDomainNotFound   = 5
	termPriorityDuplicate        = 6
	termPriorityCategoryMismatch = 7
)

// termMapping is the vocabulary/domain resolution of one term.
type termMapping struct {
	generatedColumn string
	unmappedTerm    []string
	generatedTerm   string
	unmappedColumn  []string
	domain          naming.Lookup[*model.DomainEntry]
}

func domainIndex(domains []model.DomainEntry) *naming.Index[*model.DomainEntry] {
	ptrs := make([]*model.DomainEntry, len(domains))
	for i := range domains {
		ptrs[i] = &domains[i]
	}
	return naming.NewIndex(ptrs, func(d *model.DomainEntry) string {
		return naming.NormalizeKey(d.StandardDomainName, naming.KeyOptions{})
	})
}

func mapTerm(t *model.TermEntry, lex *naming.Lexicon, domains *naming.Index[*model.DomainEntry]) termMapping {
	var m termMapping
	m.generatedColumn, m.unmappedTerm = naming.GenerateColumnName(t.TermName, lex)
	m.generatedTerm, m.unmappedColumn = naming.GenerateTermName(t.ColumnName, lex)
	m.domain = domains.Find(naming.NormalizeKey(t.DomainName, naming.KeyOptions{}))
	return m
}

// MapTerm recomputes the mapping flags and unmapped parts of t.
func MapTerm(t model.TermEntry, ctx *Context) model.TermEntry {
	m := mapTerm(&t, ctx.Lexicon(), domainIndex(ctx.Domains))
	t.UnmappedTermParts = m.unmappedTerm
	t.UnmappedColumnParts = m.unmappedColumn
	t.IsMappedTerm = !blank(t.TermName) && len(m.unmappedTerm) == 0
	t.IsMappedColumn = !blank(t.ColumnName) && len(m.unmappedColumn) == 0
	t.IsMappedDomain = m.domain.Status != naming.Unmatched
	return t
}

// MappingChanged reports whether the mapping flags or unmapped parts differ
// between a and b.
func MappingChanged(a, b model.TermEntry) bool {
	return a.IsMappedTerm != b.IsMappedTerm ||
		a.IsMappedColumn != b.IsMappedColumn ||
		a.IsMappedDomain != b.IsMappedDomain ||
		!slices.Equal(a.UnmappedTermParts, b.UnmappedTermParts) ||
		!slices.Equal(a.UnmappedColumnParts, b.UnmappedColumnParts)
}

// ValidateTerms checks each term against the vocabulary and domain sets.
func ValidateTerms(terms []model.TermEntry, ctx *Context) Report {
	lex := ctx.Lexicon()
	domains := domainIndex(ctx.Domains)

	termCounts := make(map[string]int, len(terms))
	for i := range terms {
		if k := joinedKey(terms[i].TermName); k != "" {
			termCounts[k]++
		}
	}

	report := newReport()
	for i := range terms {
		t := &terms[i]
		res := Result{EntryID: t.ID, Label: t.TermName}
		m := mapTerm(t, lex, domains)

		if blank(t.TermName) {
			res.Errors = append(res.Errors, requiredIssue("termName", "용어명", termPriorityRequired))
		}
		if blank(t.ColumnName) {
			res.Errors = append(res.Errors, requiredIssue("columnName", "컬럼명", termPriorityRequired))
		}
		if blank(t.DomainName) {
			res.Errors = append(res.Errors, requiredIssue("domainName", "도메인명", termPriorityRequired))
		}

		if len(m.unmappedTerm) > 0 {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeTermNameUnmapped,
				Field:    "termName",
				Message:  fmt.Sprintf("단어집에 없는 단어: %s", strings.Join(m.unmappedTerm, ", ")),
				Priority: termPriorityTermUnmapped,
			})
			if !blank(t.ColumnName) && len(m.unmappedColumn) == 0 {
				res.AutoFixes = append(res.AutoFixes, AutoFix{
					Field:     "termName",
					Current:   t.TermName,
					Suggested: m.generatedTerm,
					Reason:    "컬럼명의 약어로부터 생성",
				})
			}
		}
		if len(m.unmappedColumn) > 0 {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeColumnNameUnmapped,
				Field:    "columnName",
				Message:  fmt.Sprintf("단어집에 없는 약어: %s", strings.Join(m.unmappedColumn, ", ")),
				Priority: termPriorityColumnUnmapped,
			})
		}

		termOK := !blank(t.TermName) && len(m.unmappedTerm) == 0
		if termOK && joinedKey(m.generatedColumn) != joinedKey(t.ColumnName) {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeTermColumnMismatch,
				Field:    "columnName",
				Message:  fmt.Sprintf("컬럼명 %q이(가) 용어명으로 생성한 %q과(와) 다릅니다", t.ColumnName, m.generatedColumn),
				Priority: termPriorityMismatch,
			})
			res.AutoFixes = append(res.AutoFixes, AutoFix{
				Field:     "columnName",
				Current:   t.ColumnName,
				Suggested: m.generatedColumn,
				Reason:    "용어명의 단어로부터 생성",
			})
		}

		if !blank(t.DomainName) && m.domain.Status == naming.Unmatched {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeDomainNotFound,
				Field:    "domainName",
				Message:  fmt.Sprintf("도메인 %q이(가) 존재하지 않습니다", t.DomainName),
				Priority: termPriorityDomainNotFound,
			})
			if fix, ok := suggestDomain(t.DomainName, ctx.Domains); ok {
				res.AutoFixes = append(res.AutoFixes, fix)
			}
		}

		if termCounts[joinedKey(t.TermName)] > 1 {
			res.Errors = append(res.Errors, Issue{
				Code:     CodeTermNameDuplicate,
				Field:    "termName",
				Message:  fmt.Sprintf("용어명 %q이(가) 중복됩니다", t.TermName),
				Priority: termPriorityDuplicate,
			})
		}

		if issue, ok := categoryMismatch(t, lex, m.domain); ok {
			res.Errors = append(res.Errors, issue)
		}

		report.add(res)
	}
	return report
}

// categoryMismatch compares the class word (last word of the term) with the
// category of the referenced domain. Only resolved lookups are compared.
func categoryMismatch(t *model.TermEntry, lex *naming.Lexicon, dom naming.Lookup[*model.DomainEntry]) (Issue, bool) {
	if dom.Status != naming.Resolved {
		return Issue{}, false
	}
	parts := naming.SplitUnderscoreParts(t.TermName)
	if len(parts) == 0 {
		return Issue{}, false
	}
	last := lex.ByStandardName(parts[len(parts)-1])
	if last.Status != naming.Resolved {
		return Issue{}, false
	}
	want := naming.NormalizeKey(last.Target.DomainCategory, naming.KeyOptions{})
	got := naming.NormalizeKey(dom.Target.DomainCategory, naming.KeyOptions{})
	if want == "" || want == got {
		return Issue{}, false
	}
	return Issue{
		Code:  CodeDomainCategoryMismatch,
		Field: "domainName",
		Message: fmt.Sprintf("분류어 %q의 도메인분류명 %q과(와) 도메인 %q의 분류 %q이(가) 다릅니다",
			last.Target.StandardName, last.Target.DomainCategory, dom.Target.StandardDomainName, dom.Target.DomainCategory),
		Priority: termPriorityCategoryMismatch,
	}, true
}

// suggestDomain looks for exactly one domain whose name equals name once
// whitespace and case are ignored.
func suggestDomain(name string, domains []model.DomainEntry) (AutoFix, bool) {
	want := looseKey(name)
	if want == "" {
		return AutoFix{}, false
	}
	var hits []*model.DomainEntry
	for i := range domains {
		if looseKey(domains[i].StandardDomainName) == want {
			hits = append(hits, &domains[i])
		}
	}
	r := naming.Resolve(hits)
	if r.Status != naming.Resolved {
		return AutoFix{}, false
	}
	return AutoFix{
		Field:     "domainName",
		Current:   name,
		Suggested: r.Target.StandardDomainName,
		Reason:    "공백/대소문자만 다른 도메인",
	}, true
}

func looseKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// joinedKey normalizes an underscore-delimited name for comparison.
func joinedKey(s string) string {
	return strings.Join(naming.SplitUnderscoreParts(s), "_")
}
