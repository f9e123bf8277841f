package relation

import (
	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// Patchable field names.
const (
	FieldRelatedEntityName = "relatedEntityName"
	FieldSchemaName        = "schemaName"
)

// FieldChange is one proposed field edit.
type FieldChange struct {
	Field  string `json:"field"`
	Before string `json:"before"`
	After  string `json:"after"`
}

type TableUpdate struct {
	ID               string        `json:"id"`
	TableEnglishName string        `json:"tableEnglishName"`
	Changes          []FieldChange `json:"changes"`
}

type ColumnUpdate struct {
	ID                string        `json:"id"`
	TableEnglishName  string        `json:"tableEnglishName"`
	ColumnEnglishName string        `json:"columnEnglishName"`
	Changes           []FieldChange `json:"changes"`
}

// AttributeSuggestion lists columns an operator may link to an attribute.
// It is never applied automatically.
type AttributeSuggestion struct {
	AttributeID   string            `json:"attributeId"`
	SchemaName    string            `json:"schemaName"`
	EntityName    string            `json:"entityName"`
	AttributeName string            `json:"attributeName"`
	Candidates    []ColumnCandidate `json:"candidates"`
}

type PreviewCounts struct {
	TableCandidates      int `json:"tableCandidates"`
	ColumnCandidates     int `json:"columnCandidates"`
	AttributeSuggestions int `json:"attributeSuggestions"`
	AmbiguousTables      int `json:"ambiguousTables"`
	AmbiguousColumns     int `json:"ambiguousColumns"`
	TotalChanges         int `json:"totalChanges"`
}

type Preview struct {
	Counts PreviewCounts `json:"counts"`
}

// SyncPlan is the full set of proposals computed from one snapshot.
type SyncPlan struct {
	Preview       Preview               `json:"preview"`
	TableUpdates  []TableUpdate         `json:"tableUpdates"`
	ColumnUpdates []ColumnUpdate        `json:"columnUpdates"`
	Suggestions   []AttributeSuggestion `json:"suggestions"`
}

// schemaCompatible treats an empty schema on either side as a wildcard.
func schemaCompatible(a, b string) bool {
	ka := naming.NormalizeKey(a, naming.DesignKey)
	kb := naming.NormalizeKey(b, naming.DesignKey)
	return ka == "" || kb == "" || ka == kb
}

func filterBySchema(cands []*model.EntityEntry, schema string) []*model.EntityEntry {
	var out []*model.EntityEntry
	for _, e := range cands {
		if schemaCompatible(e.SchemaName, schema) {
			out = append(out, e)
		}
	}
	return out
}

func norm(v string) string {
	return naming.NormalizeKey(v, naming.DesignKey)
}

// BuildSyncPlan proposes relatedEntityName patches for tables, schemaName and
// relatedEntityName patches for columns, and ranked column suggestions for
// attributes without a column counterpart.
func BuildSyncPlan(ctx *Context) (*SyncPlan, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	plan := &SyncPlan{
		TableUpdates:  []TableUpdate{},
		ColumnUpdates: []ColumnUpdate{},
		Suggestions:   []AttributeSuggestion{},
	}

	tables := make([]*model.TableEntry, len(ctx.Tables))
	for i := range ctx.Tables {
		tables[i] = &ctx.Tables[i]
	}
	tablesByEnglish := naming.NewIndex(tables, func(t *model.TableEntry) string {
		return norm(t.TableEnglishName)
	})

	links := planTables(ctx, tables, tablesByEnglish, plan)
	planColumns(ctx, tablesByEnglish, links, plan)
	plan.Suggestions = suggestAttributeColumns(ctx)

	c := &plan.Preview.Counts
	c.TableCandidates = len(plan.TableUpdates)
	c.ColumnCandidates = len(plan.ColumnUpdates)
	c.AttributeSuggestions = len(plan.Suggestions)
	for _, u := range plan.TableUpdates {
		c.TotalChanges += len(u.Changes)
	}
	for _, u := range plan.ColumnUpdates {
		c.TotalChanges += len(u.Changes)
	}
	return plan, nil
}

// planTables fills table patches and returns, per table id, the entityName the
// table is confidently linked to (after its proposed patch, if any).
func planTables(ctx *Context, tables []*model.TableEntry, byEnglish *naming.Index[*model.TableEntry], plan *SyncPlan) map[string]string {
	entities := make([]*model.EntityEntry, len(ctx.Entities))
	for i := range ctx.Entities {
		entities[i] = &ctx.Entities[i]
	}
	byName := naming.NewIndex(entities, func(e *model.EntityEntry) string { return norm(e.EntityName) })
	byKoreanTable := naming.NewIndex(entities, func(e *model.EntityEntry) string { return norm(e.TableKoreanName) })

	links := make(map[string]string, len(tables))
	for _, t := range tables {
		// 영문명이 같은 테이블이 여럿이면 어느 쪽도 후보로 삼지 않는다
		if eng := norm(t.TableEnglishName); eng != "" && len(byEnglish.All(eng)) > 1 {
			plan.Preview.Counts.AmbiguousTables++
			continue
		}

		rel := norm(t.RelatedEntityName)
		if known := filterBySchema(byName.All(rel), t.SchemaName); len(known) > 0 {
			switch r := naming.Resolve(known); r.Status {
			case naming.Resolved:
				links[t.ID] = r.Target.EntityName
			case naming.Ambiguous:
				plan.Preview.Counts.AmbiguousTables++
			}
			continue
		}

		lookup := naming.Resolve(filterBySchema(byKoreanTable.All(rel), t.SchemaName))
		if lookup.Status == naming.Unmatched {
			lookup = naming.Resolve(filterBySchema(byKoreanTable.All(norm(t.TableKoreanName)), t.SchemaName))
		}
		switch lookup.Status {
		case naming.Ambiguous:
			plan.Preview.Counts.AmbiguousTables++
			continue
		case naming.Unmatched:
			continue
		}

		entity := lookup.Target
		links[t.ID] = entity.EntityName
		plan.TableUpdates = append(plan.TableUpdates, TableUpdate{
			ID:               t.ID,
			TableEnglishName: t.TableEnglishName,
			Changes: []FieldChange{{
				Field:  FieldRelatedEntityName,
				Before: t.RelatedEntityName,
				After:  entity.EntityName,
			}},
		})
	}
	return links
}

func planColumns(ctx *Context, byEnglish *naming.Index[*model.TableEntry], links map[string]string, plan *SyncPlan) {
	for i := range ctx.Columns {
		col := &ctx.Columns[i]
		lookup := byEnglish.Find(norm(col.TableEnglishName))
		switch lookup.Status {
		case naming.Ambiguous:
			plan.Preview.Counts.AmbiguousColumns++
			continue
		case naming.Unmatched:
			continue
		}
		table := lookup.Target

		var changes []FieldChange
		if norm(table.SchemaName) != "" && norm(col.SchemaName) != norm(table.SchemaName) {
			changes = append(changes, FieldChange{Field: FieldSchemaName, Before: col.SchemaName, After: table.SchemaName})
		}
		if link := links[table.ID]; link != "" && norm(col.RelatedEntityName) != norm(link) {
			changes = append(changes, FieldChange{Field: FieldRelatedEntityName, Before: col.RelatedEntityName, After: link})
		}
		if len(changes) == 0 {
			continue
		}
		plan.ColumnUpdates = append(plan.ColumnUpdates, ColumnUpdate{
			ID:                col.ID,
			TableEnglishName:  col.TableEnglishName,
			ColumnEnglishName: col.ColumnEnglishName,
			Changes:           changes,
		})
	}
}
