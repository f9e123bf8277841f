package schema_test

import (
	"fmt"
	"testing"
	"time"

	"db-standard/internal/model"
	"db-standard/internal/naming"
	"db-standard/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzedTables() []*schema.Table {
	return []*schema.Table{
		{
			Name:    "TB_CUST",
			Comment: "고객\n고객 기본 정보",
			Columns: []*schema.Column{
				{Name: "CUST_NO", DataType: "VARCHAR", Length: 20, IsPK: true},
				{Name: "CUST_NM", DataType: "VARCHAR", Length: 100, IsNullable: true, Comment: "고객명"},
				{Name: "BAL_AMT", DataType: "NUMBER", Precision: 15, Scale: 2, IsNullable: true},
				{Name: "REG_DT", DataType: "DATE", Length: 7},
			},
		},
		{
			Name: "TB_ORD",
			Columns: []*schema.Column{
				{Name: "CUST_NO", DataType: "VARCHAR", Length: 20, IsUnique: true},
			},
			ForeignKeys: []*schema.ForeignKey{{Column: "cust_no", RefTable: "TB_CUST", RefColumn: "CUST_NO"}},
		},
	}
}

func lexicon() *naming.Lexicon {
	return naming.NewLexicon([]model.VocabularyEntry{
		{StandardName: "고객", Abbreviation: "CUST"},
		{StandardName: "번호", Abbreviation: "NO"},
		{StandardName: "명", Abbreviation: "NM"},
		{StandardName: "금액", Abbreviation: "AMT"},
		{StandardName: "주문", Abbreviation: "ORD"},
	})
}

func TestToDefinitions(t *testing.T) {
	tables, columns := schema.ToDefinitions(analyzedTables(), schema.Target{PhysicalDbName: "HRDB", SchemaName: "HR"}, lexicon())

	require.Len(t, tables, 2)
	assert.Equal(t, "고객", tables[0].TableKoreanName)
	assert.Equal(t, "고객", tables[0].RelatedEntityName)
	assert.Equal(t, "HRDB", tables[0].PhysicalDbName)
	assert.Empty(t, tables[1].TableKoreanName, "TB is not in the vocabulary")

	require.Len(t, columns, 5)
	custNo := columns[0]
	assert.Equal(t, "고객번호", custNo.ColumnKoreanName)
	assert.Equal(t, model.FlexString("20"), custNo.DataLength)
	assert.Equal(t, "Y", custNo.NotNullFlag)
	assert.Equal(t, "PK", custNo.PKInfo)

	assert.Equal(t, "고객명", columns[1].ColumnKoreanName)
	assert.Equal(t, "N", columns[1].NotNullFlag)

	bal := columns[2]
	assert.Empty(t, bal.ColumnKoreanName)
	assert.Equal(t, model.FlexString("15"), bal.DataLength)
	assert.Equal(t, model.FlexString("2"), bal.DataDecimalLength)

	assert.Empty(t, columns[3].DataLength, "DATE takes no length")

	assert.Equal(t, "TB_CUST.CUST_NO", columns[4].FKInfo)
	assert.Equal(t, "UNIQUE", columns[4].Constraint)
}

func TestUnmappedTokens(t *testing.T) {
	hints := schema.UnmappedTokens(analyzedTables(), lexicon())

	require.Len(t, hints, 3)
	assert.Equal(t, "BAL", hints[0].Token)
	assert.Equal(t, "balance", hints[0].English)
	assert.Equal(t, []string{"TB_CUST.BAL_AMT"}, hints[0].Examples)
	assert.Equal(t, "DT", hints[1].Token)
	assert.Equal(t, "REG", hints[2].Token)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func TestMergeTables(t *testing.T) {
	imported, _ := schema.ToDefinitions(analyzedTables(), schema.Target{PhysicalDbName: "HRDB", SchemaName: "hr"}, lexicon())
	existing := []model.TableEntry{
		{Meta: model.Meta{ID: "t1"}, SchemaName: "HR", TableEnglishName: "TB_CUST", TableKoreanName: "고객정보", PhysicalDbName: "OLD"},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	merged, stats := schema.MergeTables(existing, imported, now, sequentialIDs())

	assert.Equal(t, schema.MergeStats{Added: 1, Updated: 1}, stats)
	require.Len(t, merged, 2)
	assert.Equal(t, "t1", merged[0].ID)
	assert.Equal(t, "HRDB", merged[0].PhysicalDbName)
	assert.Equal(t, "고객정보", merged[0].TableKoreanName, "edited name is kept")
	assert.Equal(t, "고객", merged[0].RelatedEntityName)
	assert.Equal(t, now, merged[0].UpdatedAt)
	assert.Equal(t, "new-1", merged[1].ID)
	assert.Equal(t, now, merged[1].CreatedAt)
	assert.Equal(t, "OLD", existing[0].PhysicalDbName, "input is not modified")

	_, again := schema.MergeTables(merged, imported, now, sequentialIDs())
	assert.Equal(t, schema.MergeStats{Unchanged: 2}, again)
}

func TestMergeColumns(t *testing.T) {
	_, imported := schema.ToDefinitions(analyzedTables(), schema.Target{SchemaName: "HR"}, lexicon())
	existing := []model.ColumnEntry{
		{Meta: model.Meta{ID: "c1"}, SchemaName: "HR", TableEnglishName: "TB_CUST", ColumnEnglishName: "CUST_NO",
			DataType: "CHAR", DataLength: "10", ColumnKoreanName: "고객 번호"},
	}

	merged, stats := schema.MergeColumns(existing, imported, time.Now(), sequentialIDs())

	assert.Equal(t, schema.MergeStats{Added: 4, Updated: 1}, stats)
	require.Len(t, merged, 5)
	assert.Equal(t, "VARCHAR", merged[0].DataType)
	assert.Equal(t, model.FlexString("20"), merged[0].DataLength)
	assert.Equal(t, "고객 번호", merged[0].ColumnKoreanName)
}
