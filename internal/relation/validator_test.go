package relation_test

import (
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/relation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(v string) model.Meta { return model.Meta{ID: v} }

// 각 관계마다 일치 1건, 불일치 1건이 나오도록 구성한 스냅샷
func designFixture() *relation.Context {
	return &relation.Context{
		Databases: []model.DatabaseEntry{
			{Meta: id("db1"), LogicalDbName: "인사DB", PhysicalDbName: "HRDB"},
		},
		Entities: []model.EntityEntry{
			{Meta: id("e1"), LogicalDbName: "인사DB", SchemaName: "HR", EntityName: "사원", TableKoreanName: "사원테이블"},
			{Meta: id("e2"), LogicalDbName: "없는DB", SchemaName: "HR", EntityName: "부서", TableKoreanName: "부서테이블"},
		},
		Attributes: []model.AttributeEntry{
			{Meta: id("a1"), SchemaName: "HR", EntityName: "사원", AttributeName: "사번"},
			{Meta: id("a2"), SchemaName: "HR", EntityName: "고객", AttributeName: "고객명"},
		},
		Tables: []model.TableEntry{
			{Meta: id("t1"), PhysicalDbName: "HRDB", SchemaName: "HR", TableEnglishName: "TB_EMP", RelatedEntityName: "사원"},
			{Meta: id("t2"), PhysicalDbName: "NODB", SchemaName: "HR", TableEnglishName: "TB_X", RelatedEntityName: "없는엔터티"},
		},
		Columns: []model.ColumnEntry{
			{Meta: id("c1"), SchemaName: "HR", TableEnglishName: "TB_EMP", ColumnEnglishName: "EMP_NO", ColumnKoreanName: "사번", RelatedEntityName: "사원"},
			{Meta: id("c2"), SchemaName: "HR", TableEnglishName: "TB_NONE", ColumnEnglishName: "X", RelatedEntityName: "무관"},
		},
	}
}

func TestValidateDesignRelations_AllSix(t *testing.T) {
	res, err := relation.ValidateDesignRelations(designFixture())
	require.NoError(t, err)
	require.Len(t, res.Summaries, 6)

	unmatchedIDs := map[relation.RelationID]string{
		relation.DBEntity:        "e2",
		relation.DBTable:         "t2",
		relation.EntityAttribute: "a2",
		relation.EntityTable:     "t2",
		relation.TableColumn:     "c2",
		relation.AttributeColumn: "c2",
	}
	for _, s := range res.Summaries {
		assert.Equal(t, 2, s.TotalChecked, s.RelationID)
		assert.Equal(t, 1, s.Matched, s.RelationID)
		assert.Equal(t, 1, s.Unmatched, s.RelationID)
		require.Len(t, s.Issues, 1)
		assert.Equal(t, unmatchedIDs[s.RelationID], s.Issues[0].TargetID, s.RelationID)
		assert.Equal(t, s.Severity, s.Issues[0].Severity)
	}

	assert.Equal(t, relation.Totals{Checked: 12, Matched: 6, Unmatched: 6, ErrorCount: 5, WarningCount: 1}, res.Totals)
	assert.Len(t, res.Issues(), 6)

	ac, ok := res.Summary(relation.AttributeColumn)
	require.True(t, ok)
	assert.Equal(t, relation.SeverityWarning, ac.Severity)
}

func TestValidateDesignRelations_EntityTableAcceptsKoreanTableName(t *testing.T) {
	ctx := &relation.Context{
		Entities: []model.EntityEntry{{Meta: id("e1"), SchemaName: "HR", EntityName: "사원", TableKoreanName: "사원테이블"}},
		Tables: []model.TableEntry{
			{Meta: id("t1"), SchemaName: "hr ", TableEnglishName: "TB_EMP", RelatedEntityName: "사원테이블"},
			{Meta: id("t2"), SchemaName: "HR", TableEnglishName: "TB_EMP2", RelatedEntityName: "사원"},
		},
	}
	res, err := relation.ValidateDesignRelations(ctx)
	require.NoError(t, err)

	s, ok := res.Summary(relation.EntityTable)
	require.True(t, ok)
	assert.Equal(t, 2, s.Matched)
	assert.Zero(t, s.Unmatched)
}

func TestValidateDesignRelations_EmptyKeyNeverMatches(t *testing.T) {
	ctx := &relation.Context{
		Databases: []model.DatabaseEntry{{Meta: id("db1"), LogicalDbName: "-"}},
		Entities:  []model.EntityEntry{{Meta: id("e1"), LogicalDbName: "-", EntityName: "사원"}},
	}
	res, err := relation.ValidateDesignRelations(ctx)
	require.NoError(t, err)

	s, _ := res.Summary(relation.DBEntity)
	assert.Equal(t, 1, s.Unmatched)
	require.Len(t, s.Issues, 1)
	assert.Contains(t, s.Issues[0].Reason, "비어 있어")
}

func TestValidateDesignRelations_EmptySnapshot(t *testing.T) {
	res, err := relation.ValidateDesignRelations(&relation.Context{})
	require.NoError(t, err)
	assert.Len(t, res.Summaries, 6)
	assert.Equal(t, relation.Totals{}, res.Totals)
	assert.Empty(t, res.Issues())
}

func TestValidateDesignRelations_NilContext(t *testing.T) {
	_, err := relation.ValidateDesignRelations(nil)
	assert.ErrorIs(t, err, relation.ErrNilContext)
}
