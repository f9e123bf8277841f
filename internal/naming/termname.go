package naming

import (
	"strings"

	"db-standard/internal/model"
)

// Lexicon indexes vocabulary entries for token lookups.
type Lexicon struct {
	byStandard *Index[*model.VocabularyEntry]
	byAbbr     *Index[*model.VocabularyEntry]
}

// NewLexicon builds a lexicon from vocabulary entries.
func NewLexicon(entries []model.VocabularyEntry) *Lexicon {
	ptrs := make([]*model.VocabularyEntry, len(entries))
	for i := range entries {
		ptrs[i] = &entries[i]
	}
	return &Lexicon{
		byStandard: NewIndex(ptrs, func(e *model.VocabularyEntry) string {
			return NormalizeKey(e.StandardName, KeyOptions{})
		}),
		byAbbr: NewIndex(ptrs, func(e *model.VocabularyEntry) string {
			return NormalizeKey(e.Abbreviation, KeyOptions{})
		}),
	}
}

// ByStandardName resolves a Korean word.
func (l *Lexicon) ByStandardName(token string) Lookup[*model.VocabularyEntry] {
	return l.byStandard.Find(NormalizeKey(token, KeyOptions{}))
}

// ByAbbreviation resolves an English abbreviation.
func (l *Lexicon) ByAbbreviation(token string) Lookup[*model.VocabularyEntry] {
	return l.byAbbr.Find(NormalizeKey(token, KeyOptions{}))
}

// Resolve tries the standard name first and falls back to the abbreviation.
func (l *Lexicon) Resolve(token string) Lookup[*model.VocabularyEntry] {
	if r := l.ByStandardName(token); r.Status != Unmatched {
		return r
	}
	return l.ByAbbreviation(token)
}

// TermNameResult is the outcome of decomposing a phrase into vocabulary words.
type TermNameResult struct {
	TermName      string
	ColumnName    string
	Words         []*model.VocabularyEntry
	UnmappedParts []string
}

// Complete reports whether every token was resolved.
func (r TermNameResult) Complete() bool {
	return len(r.UnmappedParts) == 0 && len(r.Words) > 0
}

// GenerateTermNames resolves each underscore token of phrase against the
// lexicon. Resolved tokens contribute their standard name to TermName and
// their upper-cased abbreviation to ColumnName; unresolved or ambiguous tokens
// are collected in UnmappedParts (original spelling).
func GenerateTermNames(phrase string, lex *Lexicon) TermNameResult {
	var res TermNameResult
	var termParts, colParts []string
	for _, tok := range rawParts(phrase) {
		hit := lex.Resolve(tok)
		if hit.Status != Resolved {
			res.UnmappedParts = append(res.UnmappedParts, tok)
			continue
		}
		res.Words = append(res.Words, hit.Target)
		termParts = append(termParts, strings.TrimSpace(hit.Target.StandardName))
		colParts = append(colParts, strings.ToUpper(strings.TrimSpace(hit.Target.Abbreviation)))
	}
	res.TermName = strings.Join(termParts, "_")
	res.ColumnName = strings.Join(colParts, "_")
	return res
}

// GenerateColumnName maps a Korean term name to its column name using only
// standard-name lookups.
func GenerateColumnName(termName string, lex *Lexicon) (string, []string) {
	var parts, unmapped []string
	for _, tok := range rawParts(termName) {
		hit := lex.ByStandardName(tok)
		if hit.Status != Resolved {
			unmapped = append(unmapped, tok)
			continue
		}
		parts = append(parts, strings.ToUpper(strings.TrimSpace(hit.Target.Abbreviation)))
	}
	return strings.Join(parts, "_"), unmapped
}

// GenerateTermName maps a column name back to its Korean term name using only
// abbreviation lookups.
func GenerateTermName(columnName string, lex *Lexicon) (string, []string) {
	var parts, unmapped []string
	for _, tok := range rawParts(columnName) {
		hit := lex.ByAbbreviation(tok)
		if hit.Status != Resolved {
			unmapped = append(unmapped, tok)
			continue
		}
		parts = append(parts, strings.TrimSpace(hit.Target.StandardName))
	}
	return strings.Join(parts, "_"), unmapped
}

// rawParts splits on underscores like SplitUnderscoreParts but keeps the
// original case for reporting.
func rawParts(value string) []string {
	var parts []string
	for _, p := range strings.Split(value, "_") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
