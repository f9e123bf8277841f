package relation

import (
	"slices"
	"sort"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// MaxColumnCandidates caps each attribute suggestion list.
const MaxColumnCandidates = 5

// 점수 가중치: 엔터티 일치 > 이름 유사도 > 스키마 일치
const (
	weightEntity = 0.5
	weightName   = 0.3
	weightSchema = 0.2
)

// ColumnCandidate is a ranked column for manual selection.
type ColumnCandidate struct {
	ColumnID          string   `json:"columnId"`
	TableEnglishName  string   `json:"tableEnglishName"`
	ColumnEnglishName string   `json:"columnEnglishName"`
	ColumnKoreanName  string   `json:"columnKoreanName"`
	Score             float64  `json:"score"`
	Reasons           []string `json:"reasons"`
}

// suggestAttributeColumns collects candidate columns for every attribute that
// has no column with the same related entity and Korean name.
func suggestAttributeColumns(ctx *Context) []AttributeSuggestion {
	cols := make([]*model.ColumnEntry, len(ctx.Columns))
	for i := range ctx.Columns {
		cols[i] = &ctx.Columns[i]
	}
	counterpart := naming.NewIndex(cols, func(c *model.ColumnEntry) string {
		return key(c.RelatedEntityName, c.ColumnKoreanName)
	})
	byEntity := naming.NewIndex(cols, func(c *model.ColumnEntry) string { return norm(c.RelatedEntityName) })
	bySchema := naming.NewIndex(cols, func(c *model.ColumnEntry) string { return norm(c.SchemaName) })

	out := []AttributeSuggestion{}
	for i := range ctx.Attributes {
		a := &ctx.Attributes[i]
		if counterpart.Has(key(a.EntityName, a.AttributeName)) {
			continue
		}

		seen := make(map[*model.ColumnEntry]bool)
		var pool []*model.ColumnEntry
		for _, c := range slices.Concat(byEntity.All(norm(a.EntityName)), bySchema.All(norm(a.SchemaName))) {
			if !seen[c] {
				seen[c] = true
				pool = append(pool, c)
			}
		}
		if len(pool) == 0 {
			continue
		}

		cands := make([]ColumnCandidate, 0, len(pool))
		for _, c := range pool {
			cands = append(cands, scoreColumn(a, c))
		}
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].Score != cands[j].Score {
				return cands[i].Score > cands[j].Score
			}
			if cands[i].TableEnglishName != cands[j].TableEnglishName {
				return cands[i].TableEnglishName < cands[j].TableEnglishName
			}
			return cands[i].ColumnEnglishName < cands[j].ColumnEnglishName
		})
		if len(cands) > MaxColumnCandidates {
			cands = cands[:MaxColumnCandidates]
		}

		out = append(out, AttributeSuggestion{
			AttributeID:   a.ID,
			SchemaName:    a.SchemaName,
			EntityName:    a.EntityName,
			AttributeName: a.AttributeName,
			Candidates:    cands,
		})
	}
	return out
}

func scoreColumn(a *model.AttributeEntry, c *model.ColumnEntry) ColumnCandidate {
	cand := ColumnCandidate{
		ColumnID:          c.ID,
		TableEnglishName:  c.TableEnglishName,
		ColumnEnglishName: c.ColumnEnglishName,
		ColumnKoreanName:  c.ColumnKoreanName,
		Reasons:           []string{},
	}
	if e := norm(a.EntityName); e != "" && e == norm(c.RelatedEntityName) {
		cand.Score += weightEntity
		cand.Reasons = append(cand.Reasons, "관련엔터티 일치")
	}
	if s := norm(a.SchemaName); s != "" && s == norm(c.SchemaName) {
		cand.Score += weightSchema
		cand.Reasons = append(cand.Reasons, "스키마 일치")
	}
	if sim := Similarity(norm(a.AttributeName), norm(c.ColumnKoreanName)); sim > 0 {
		cand.Score += weightName * sim
		if sim == 1 {
			cand.Reasons = append(cand.Reasons, "한글명 일치")
		}
	}
	return cand
}

// Similarity is 1 - distance/max(len) over runes; 1 means identical.
// Two empty strings are not considered similar.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 0
	}
	return 1 - float64(Levenshtein(a, b))/float64(max(len(ra), len(rb)))
}

// Levenshtein computes the rune-level edit distance using two rows.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(ra)]
}
