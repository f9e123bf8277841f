package naming_test

import (
	"fmt"
	"strings"
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/naming"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vocab(id, std, abbr, eng string) model.VocabularyEntry {
	return model.VocabularyEntry{Meta: model.Meta{ID: id}, StandardName: std, Abbreviation: abbr, EnglishName: eng}
}

func TestDuplicateIDs_CaseInsensitive(t *testing.T) {
	ids := naming.DuplicateIDs([]model.VocabularyEntry{
		vocab("1", "A", "X1", "E1"),
		vocab("2", "a", "X2", "E2"),
	})
	assert.Contains(t, ids, "1")
	assert.Contains(t, ids, "2")
	assert.Len(t, ids, 2)
}

func TestDuplicateGroups_PerFieldNotMerged(t *testing.T) {
	entries := []model.VocabularyEntry{
		vocab("a", "고객", "CUST", "Customer"),
		vocab("b", "고객", "CLNT", "Client"),
		vocab("c", "거래처", "clnt", "Partner"),
		vocab("d", "상품", "PRD", "Product"),
	}
	groups := naming.DuplicateGroups(entries)
	require.Len(t, groups, 2)

	assert.Equal(t, "standardName:고객", groups[0].Key())
	assert.Equal(t, []string{"a", "b"}, groupIDs(groups[0]))

	assert.Equal(t, "abbreviation:clnt", groups[1].Key())
	assert.Equal(t, []string{"b", "c"}, groupIDs(groups[1]))

	byEntry := naming.DuplicateFieldsByEntry(entries)
	assert.ElementsMatch(t, []naming.UniqueField{naming.FieldStandardName, naming.FieldAbbreviation}, byEntry[&entries[1]])
	assert.NotContains(t, byEntry, &entries[3])
}

func TestDuplicateGroups_ThreeWayAndBlanks(t *testing.T) {
	groups := naming.DuplicateGroups([]model.VocabularyEntry{
		vocab("1", "번호", "NO", ""),
		vocab("2", " 번호", "NUM", ""),
		vocab("3", "번호 ", "NBR", ""),
	})
	require.Len(t, groups, 1)
	assert.Equal(t, []string{"1", "2", "3"}, groupIDs(groups[0]))
}

func TestDuplicateIDs_RandomizedUniqueSetHasNoDuplicates(t *testing.T) {
	f := gofakeit.New(11)
	seen := map[string]bool{}
	var entries []model.VocabularyEntry
	for i := 0; len(entries) < 50; i++ {
		w := strings.ToLower(f.Word())
		if seen[w] {
			continue
		}
		seen[w] = true
		entries = append(entries, vocab(fmt.Sprint(i), w, w+"_a", w+"_e"))
	}
	assert.Empty(t, naming.DuplicateIDs(entries))

	// 대소문자만 다른 사본을 추가하면 원본과 사본 모두 중복
	dup := entries[10]
	dup.ID = "copy"
	dup.StandardName = strings.ToUpper(dup.StandardName)
	dup.Abbreviation, dup.EnglishName = "zz_unique", "zz_unique"
	ids := naming.DuplicateIDs(append(entries, dup))
	assert.Len(t, ids, 2)
	assert.Contains(t, ids, entries[10].ID)
	assert.Contains(t, ids, "copy")
}

func groupIDs(g naming.DuplicateGroup) []string {
	var ids []string
	for _, e := range g.Entries {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestDuplicateFieldsByEntry_BlankIDs(t *testing.T) {
	entries := []model.VocabularyEntry{
		vocab("", "고객", "CUST", ""),
		vocab("", "고객", "CLNT", ""),
		vocab("", "상품", "PRD", ""),
	}
	byEntry := naming.DuplicateFieldsByEntry(entries)

	assert.Len(t, byEntry, 2)
	assert.Equal(t, []naming.UniqueField{naming.FieldStandardName}, byEntry[&entries[0]])
	assert.Equal(t, []naming.UniqueField{naming.FieldStandardName}, byEntry[&entries[1]])
	assert.NotContains(t, byEntry, &entries[2])
}
