package naming

import "db-standard/internal/model"

// UniqueField names one of the vocabulary fields that must be unique.
type UniqueField string

const (
	FieldStandardName UniqueField = "standardName"
	FieldAbbreviation UniqueField = "abbreviation"
	FieldEnglishName  UniqueField = "englishName"
)

// VocabularyUniqueFields are checked independently of each other.
var VocabularyUniqueFields = []UniqueField{FieldStandardName, FieldAbbreviation, FieldEnglishName}

// FieldValue returns the raw value of field on e.
func FieldValue(e *model.VocabularyEntry, field UniqueField) string {
	switch field {
	case FieldStandardName:
		return e.StandardName
	case FieldAbbreviation:
		return e.Abbreviation
	case FieldEnglishName:
		return e.EnglishName
	default:
		return ""
	}
}

// DuplicateGroup is a set of entries sharing one normalized field value.
type DuplicateGroup struct {
	Field   UniqueField
	Value   string
	Entries []*model.VocabularyEntry
}

// Key returns "field:value", the group identity.
func (g DuplicateGroup) Key() string {
	return string(g.Field) + ":" + g.Value
}

// DuplicateGroups returns every group of two or more entries colliding on a
// unique field. Groups are per field: an entry colliding on two fields shows
// up in two groups. Output order follows the field order and then the order
// in which each group's second member was seen.
func DuplicateGroups(entries []model.VocabularyEntry) []DuplicateGroup {
	var groups []DuplicateGroup
	for _, field := range VocabularyUniqueFields {
		first := make(map[string]*model.VocabularyEntry, len(entries))
		open := make(map[string]int) // value -> index in groups
		for i := range entries {
			e := &entries[i]
			v := NormalizeKey(FieldValue(e, field), KeyOptions{})
			if v == "" {
				continue
			}
			prev, seen := first[v]
			if !seen {
				first[v] = e
				continue
			}
			if gi, ok := open[v]; ok {
				groups[gi].Entries = append(groups[gi].Entries, e)
				continue
			}
			open[v] = len(groups)
			groups = append(groups, DuplicateGroup{
				Field:   field,
				Value:   v,
				Entries: []*model.VocabularyEntry{prev, e},
			})
		}
	}
	return groups
}

// DuplicateIDs is the union of all entry ids appearing in any duplicate group.
func DuplicateIDs(entries []model.VocabularyEntry) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, g := range DuplicateGroups(entries) {
		for _, e := range g.Entries {
			ids[e.ID] = struct{}{}
		}
	}
	return ids
}

// DuplicateFieldsByEntry maps each colliding entry, as &entries[i], to the
// fields on which it collides. Entries are keyed by position so that blank or
// repeated ids never share a slot.
func DuplicateFieldsByEntry(entries []model.VocabularyEntry) map[*model.VocabularyEntry][]UniqueField {
	out := make(map[*model.VocabularyEntry][]UniqueField)
	for _, g := range DuplicateGroups(entries) {
		for _, e := range g.Entries {
			out[e] = append(out[e], g.Field)
		}
	}
	return out
}
