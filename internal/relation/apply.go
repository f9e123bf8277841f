package relation

import (
	"fmt"
	"time"

	"db-standard/internal/model"
)

// ApplyPlan returns copies of tables and columns with the plan's patches
// applied and updatedAt stamped. The inputs are not modified.
// Records referenced by the plan but missing from the inputs are reported
// as an error and nothing is returned.
func ApplyPlan(tables []model.TableEntry, columns []model.ColumnEntry, plan *SyncPlan, now time.Time) ([]model.TableEntry, []model.ColumnEntry, error) {
	if plan == nil {
		return nil, nil, fmt.Errorf("apply plan: nil plan")
	}

	outTables := make([]model.TableEntry, len(tables))
	copy(outTables, tables)
	tablePos := make(map[string]int, len(outTables))
	for i, t := range outTables {
		tablePos[t.ID] = i
	}
	for _, u := range plan.TableUpdates {
		i, ok := tablePos[u.ID]
		if !ok {
			return nil, nil, fmt.Errorf("apply plan: table %s (%s) not found", u.ID, u.TableEnglishName)
		}
		for _, ch := range u.Changes {
			if err := patchTable(&outTables[i], ch); err != nil {
				return nil, nil, err
			}
		}
		outTables[i].UpdatedAt = now
	}

	outColumns := make([]model.ColumnEntry, len(columns))
	copy(outColumns, columns)
	colPos := make(map[string]int, len(outColumns))
	for i, c := range outColumns {
		colPos[c.ID] = i
	}
	for _, u := range plan.ColumnUpdates {
		i, ok := colPos[u.ID]
		if !ok {
			return nil, nil, fmt.Errorf("apply plan: column %s (%s.%s) not found", u.ID, u.TableEnglishName, u.ColumnEnglishName)
		}
		for _, ch := range u.Changes {
			if err := patchColumn(&outColumns[i], ch); err != nil {
				return nil, nil, err
			}
		}
		outColumns[i].UpdatedAt = now
	}

	return outTables, outColumns, nil
}

func patchTable(t *model.TableEntry, ch FieldChange) error {
	switch ch.Field {
	case FieldRelatedEntityName:
		t.RelatedEntityName = ch.After
	default:
		return fmt.Errorf("apply plan: unsupported table field %q", ch.Field)
	}
	return nil
}

func patchColumn(c *model.ColumnEntry, ch FieldChange) error {
	switch ch.Field {
	case FieldRelatedEntityName:
		c.RelatedEntityName = ch.After
	case FieldSchemaName:
		c.SchemaName = ch.After
	default:
		return fmt.Errorf("apply plan: unsupported column field %q", ch.Field)
	}
	return nil
}
