package schema

import (
	"strconv"
	"strings"
	"time"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// Target identifies where analyzed tables live in the design documents.
type Target struct {
	PhysicalDbName string
	SchemaName     string
}

// ToDefinitions converts analyzed tables into table and column definitions.
// Korean names come from catalog comments; without a comment the physical
// name is mapped back through the vocabulary abbreviations and left blank
// unless every token resolves. A table's relatedEntityName starts as its
// Korean name for the sync planner to resolve. Ids and timestamps are
// assigned by the merge step.
func ToDefinitions(tables []*Table, target Target, lex *naming.Lexicon) ([]model.TableEntry, []model.ColumnEntry) {
	outTables := make([]model.TableEntry, 0, len(tables))
	var outColumns []model.ColumnEntry

	for _, t := range tables {
		korean := koreanName(t.Name, t.Comment, lex)
		outTables = append(outTables, model.TableEntry{
			PhysicalDbName:    target.PhysicalDbName,
			SchemaName:        target.SchemaName,
			TableEnglishName:  t.Name,
			TableKoreanName:   korean,
			RelatedEntityName: korean,
			TableDescription:  t.Comment,
		})

		fks := make(map[string][]string)
		for _, fk := range t.ForeignKeys {
			fks[strings.ToUpper(fk.Column)] = append(fks[strings.ToUpper(fk.Column)], fk.RefTable+"."+fk.RefColumn)
		}

		for _, c := range t.Columns {
			col := model.ColumnEntry{
				SchemaName:        target.SchemaName,
				TableEnglishName:  t.Name,
				ColumnEnglishName: c.Name,
				ColumnKoreanName:  koreanName(c.Name, c.Comment, lex),
				ColumnDescription: c.Comment,
				DataType:          c.DataType,
				NotNullFlag:       yn(!c.IsNullable),
				FKInfo:            strings.Join(fks[strings.ToUpper(c.Name)], ", "),
			}
			col.DataLength, col.DataDecimalLength = columnSize(c)
			if c.IsPK {
				col.PKInfo = "PK"
			}
			if c.IsUnique {
				col.Constraint = "UNIQUE"
			}
			outColumns = append(outColumns, col)
		}
	}
	return outTables, outColumns
}

func koreanName(name, comment string, lex *naming.Lexicon) string {
	if first, _, _ := strings.Cut(strings.TrimSpace(comment), "\n"); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	if lex == nil {
		return ""
	}
	term, unmapped := naming.GenerateTermName(name, lex)
	if len(unmapped) > 0 {
		return ""
	}
	return strings.ReplaceAll(term, "_", "")
}

func columnSize(c *Column) (model.FlexString, model.FlexString) {
	if !naming.TypeTakesLength(c.DataType) {
		return "", ""
	}
	if naming.IsNumericType(c.DataType) {
		p := c.Precision
		if p == 0 {
			p = c.Length
		}
		return model.FlexInt(p), model.FlexInt(c.Scale)
	}
	return model.FlexInt(c.Length), ""
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

// MergeStats counts what a merge did.
type MergeStats struct {
	Added     int
	Updated   int
	Unchanged int
}

func (s MergeStats) String() string {
	return "추가 " + strconv.Itoa(s.Added) + ", 변경 " + strconv.Itoa(s.Updated) + ", 유지 " + strconv.Itoa(s.Unchanged)
}

// MergeTables folds imported tables into existing ones by schema and English
// name. Physical attributes follow the database; names and descriptions
// someone already filled in are kept.
func MergeTables(existing, imported []model.TableEntry, now time.Time, newID func() string) ([]model.TableEntry, MergeStats) {
	out := make([]model.TableEntry, len(existing))
	copy(out, existing)
	pos := firstIndex(out, func(t model.TableEntry) string { return tableKey(t.SchemaName, t.TableEnglishName) })

	var stats MergeStats
	for _, imp := range imported {
		k := tableKey(imp.SchemaName, imp.TableEnglishName)
		if i, ok := pos[k]; ok && k != "" {
			e := &out[i]
			changed := replace(&e.PhysicalDbName, imp.PhysicalDbName)
			changed = fill(&e.TableKoreanName, imp.TableKoreanName) || changed
			changed = fill(&e.RelatedEntityName, imp.RelatedEntityName) || changed
			changed = fill(&e.TableDescription, imp.TableDescription) || changed
			if changed {
				e.UpdatedAt = now
				stats.Updated++
			} else {
				stats.Unchanged++
			}
			continue
		}
		imp.ID = newID()
		imp.CreatedAt, imp.UpdatedAt = now, now
		out = append(out, imp)
		if k != "" {
			pos[k] = len(out) - 1
		}
		stats.Added++
	}
	return out, stats
}

// MergeColumns folds imported columns into existing ones by schema, table
// and column English name.
func MergeColumns(existing, imported []model.ColumnEntry, now time.Time, newID func() string) ([]model.ColumnEntry, MergeStats) {
	out := make([]model.ColumnEntry, len(existing))
	copy(out, existing)
	pos := firstIndex(out, func(c model.ColumnEntry) string {
		return tableKey(c.SchemaName, c.TableEnglishName, c.ColumnEnglishName)
	})

	var stats MergeStats
	for _, imp := range imported {
		k := tableKey(imp.SchemaName, imp.TableEnglishName, imp.ColumnEnglishName)
		if i, ok := pos[k]; ok && k != "" {
			e := &out[i]
			changed := replace(&e.DataType, imp.DataType)
			changed = replace(&e.DataLength, imp.DataLength) || changed
			changed = replace(&e.DataDecimalLength, imp.DataDecimalLength) || changed
			changed = replace(&e.NotNullFlag, imp.NotNullFlag) || changed
			changed = replace(&e.PKInfo, imp.PKInfo) || changed
			changed = replace(&e.FKInfo, imp.FKInfo) || changed
			changed = replace(&e.Constraint, imp.Constraint) || changed
			changed = fill(&e.ColumnKoreanName, imp.ColumnKoreanName) || changed
			changed = fill(&e.ColumnDescription, imp.ColumnDescription) || changed
			if changed {
				e.UpdatedAt = now
				stats.Updated++
			} else {
				stats.Unchanged++
			}
			continue
		}
		imp.ID = newID()
		imp.CreatedAt, imp.UpdatedAt = now, now
		out = append(out, imp)
		if k != "" {
			pos[k] = len(out) - 1
		}
		stats.Added++
	}
	return out, stats
}

func tableKey(parts ...string) string {
	return naming.BuildCompositeKey(parts, naming.DesignKey)
}

func firstIndex[T any](items []T, keyFn func(T) string) map[string]int {
	pos := make(map[string]int, len(items))
	for i, it := range items {
		k := keyFn(it)
		if _, seen := pos[k]; !seen && k != "" {
			pos[k] = i
		}
	}
	return pos
}

func replace[S ~string](dst *S, v S) bool {
	if *dst == v {
		return false
	}
	*dst = v
	return true
}

func fill[S ~string](dst *S, v S) bool {
	if strings.TrimSpace(string(*dst)) != "" || v == "" {
		return false
	}
	*dst = v
	return true
}
