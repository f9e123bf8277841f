// Package validate checks vocabulary, domain and term entries against the
// naming rules and reports ordered, typed issues.
package validate

import (
	"sort"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// Code identifies an issue type.
type Code string

const (
	CodeRequiredField = Code("REQUIRED_FIELD")

	CodeDomainNameMismatch  = Code("DOMAIN_NAME_MISMATCH")
	CodeDomainNameDuplicate = Code("DOMAIN_NAME_DUPLICATE")

	CodeVocabularyDuplicate    = Code("VOCABULARY_DUPLICATE")
	CodeForbiddenWord          = Code("FORBIDDEN_WORD")
	CodeAbbreviationFormat     = Code("ABBREVIATION_FORMAT")
	CodeDomainCategoryUnmapped = Code("DOMAIN_CATEGORY_UNMAPPED")

	CodeTermNameUnmapped       = Code("TERM_NAME_UNMAPPED")
	CodeColumnNameUnmapped     = Code("COLUMN_NAME_UNMAPPED")
	CodeTermColumnMismatch     = Code("TERM_COLUMN_MISMATCH")
	CodeDomainNotFound         = Code("DOMAIN_NOT_FOUND")
	CodeTermNameDuplicate      = Code("TERM_NAME_DUPLICATE")
	CodeDomainCategoryMismatch = Code("DOMAIN_CATEGORY_MISMATCH")
)

// Issue is one finding on one entry. Lower Priority renders first.
type Issue struct {
	Code     Code   `json:"type"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Priority int    `json:"priority"`
}

// AutoFix is an advisory correction. Applying it is up to the caller.
type AutoFix struct {
	Field     string `json:"field"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

// Result holds the issues of a single failed entry.
type Result struct {
	EntryID             string    `json:"entryId"`
	Label               string    `json:"label"`
	Errors              []Issue   `json:"errors"`
	GeneratedDomainName string    `json:"generatedDomainName,omitempty"`
	AutoFixes           []AutoFix `json:"autoFixes,omitempty"`
}

// Report summarizes a validation run.
type Report struct {
	TotalCount    int      `json:"totalCount"`
	FailedCount   int      `json:"failedCount"`
	PassedCount   int      `json:"passedCount"`
	FailedEntries []Result `json:"failedEntries"`
}

func (r *Report) add(res Result) {
	r.TotalCount++
	if len(res.Errors) == 0 {
		r.PassedCount++
		return
	}
	SortIssues(res.Errors)
	r.FailedCount++
	r.FailedEntries = append(r.FailedEntries, res)
}

func newReport() Report {
	return Report{FailedEntries: []Result{}}
}

// SortIssues orders issues worst-first, keeping insertion order among equals.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Priority < issues[j].Priority
	})
}

// Context carries the reference data the validators resolve against.
type Context struct {
	Vocabulary []model.VocabularyEntry
	Domains    []model.DomainEntry

	lex *naming.Lexicon
}

// Lexicon returns the vocabulary lexicon, built on first use.
func (c *Context) Lexicon() *naming.Lexicon {
	if c.lex == nil {
		c.lex = naming.NewLexicon(c.Vocabulary)
	}
	return c.lex
}

func blank(s string) bool {
	return naming.NormalizeKey(s, naming.DesignKey) == ""
}
