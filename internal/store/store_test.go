package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"db-standard/internal/model"
	"db-standard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := store.New(t.TempDir(), nil)

	data, err := store.Load(s, model.DomainKind, "")
	require.NoError(t, err)
	assert.NotNil(t, data.Entries)
	assert.Empty(t, data.Entries)
	assert.Zero(t, data.TotalCount)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir, nil)

	in := model.NewDataFile([]model.TermEntry{
		{Meta: model.Meta{ID: store.NewEntryID()}, TermName: "고객_번호", ColumnName: "CUST_NO", DomainName: "번호_VARCHAR(20)"},
	})
	require.NoError(t, store.Save(s, model.TermKind, "", in))
	assert.FileExists(t, filepath.Join(dir, "term.json"))
	assert.False(t, in.LastUpdated.IsZero())

	out, err := store.Load(s, model.TermKind, "")
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, "CUST_NO", out.Entries[0].ColumnName)
	assert.Equal(t, 1, out.TotalCount)

	// no temp files left behind
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestLoad_NumericLengthsAccepted(t *testing.T) {
	dir := t.TempDir()
	raw := `{"entries":[{"id":"d1","domainCategory":"금액","physicalDataType":"NUMBER","dataLength":15,"decimalPlaces":"2"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "domain.json"), []byte(raw), 0o644))

	data, err := store.Load(store.New(dir, nil), model.DomainKind, "")
	require.NoError(t, err)
	require.Len(t, data.Entries, 1)
	assert.Equal(t, model.FlexString("15"), data.Entries[0].DataLength)
	assert.Equal(t, model.FlexString("2"), data.Entries[0].DecimalPlaces)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vocabulary.json"), []byte(`{"entries": [`), 0o644))

	_, err := store.Load(store.New(dir, nil), model.VocabularyKind, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrParseFailed)

	var pe *store.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, filepath.Join(dir, "vocabulary.json"), pe.Path)
}

func TestFilenameOverrides(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir, nil)

	require.NoError(t, s.SetFilename("Table", "tables-2026.json"))
	assert.Equal(t, "tables-2026.json", s.Filename(model.DataTypeTable))
	assert.Equal(t, "column.json", s.Filename(model.DataTypeColumn))

	require.NoError(t, store.Save(s, model.TableKind, "", model.NewDataFile([]model.TableEntry{{TableEnglishName: "TB_A"}})))
	assert.FileExists(t, filepath.Join(dir, "tables-2026.json"))

	assert.ErrorIs(t, s.SetFilename("index", "x.json"), store.ErrUnknownDataType)
	assert.Error(t, s.SetFilename("table", "../escape.json"))

	_, err := store.Load(s, model.TableKind, "../../etc/passwd")
	assert.Error(t, err)
}

func TestLoadSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir, nil)
	require.NoError(t, store.Save(s, model.EntityKind, "", model.NewDataFile([]model.EntityEntry{{EntityName: "사원"}})))
	require.NoError(t, store.Save(s, model.ColumnKind, "", model.NewDataFile([]model.ColumnEntry{{ColumnEnglishName: "EMP_NO"}, {ColumnEnglishName: "EMP_NM"}})))

	ctx, err := s.LoadSnapshot()
	require.NoError(t, err)
	assert.Len(t, ctx.Entities, 1)
	assert.Len(t, ctx.Columns, 2)
	assert.Empty(t, ctx.Tables)

	nctx, err := s.LoadNamingContext()
	require.NoError(t, err)
	assert.Empty(t, nctx.Vocabulary)
}

func TestHistory_NewestFirstAndCapped(t *testing.T) {
	s := store.New(t.TempDir(), nil)

	h, err := s.AddHistoryLog(
		model.HistoryEntry{Action: model.HistoryAdd, TargetType: model.DataTypeTerm, TargetName: "first"},
		model.HistoryEntry{Action: model.HistoryUpdate, TargetType: model.DataTypeTerm, TargetName: "second"},
	)
	require.NoError(t, err)
	require.Len(t, h.Logs, 2)
	assert.Equal(t, "second", h.Logs[0].TargetName)
	assert.NotEmpty(t, h.Logs[0].ID)
	assert.False(t, h.Logs[0].Timestamp.IsZero())

	batch := make([]model.HistoryEntry, store.MaxHistoryEntries)
	for i := range batch {
		batch[i] = model.HistoryEntry{Action: model.HistorySync, TargetType: model.DataTypeColumn}
	}
	batch[len(batch)-1].TargetName = "latest"
	_, err = s.AddHistoryLog(batch...)
	require.NoError(t, err)

	loaded, err := s.LoadHistory()
	require.NoError(t, err)
	assert.Len(t, loaded.Logs, store.MaxHistoryEntries)
	assert.Equal(t, store.MaxHistoryEntries, loaded.TotalCount)
	assert.Equal(t, "latest", loaded.Logs[0].TargetName)
}

func TestSettingsService(t *testing.T) {
	dir := t.TempDir()
	s := store.New(dir, nil)

	svc, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), svc.Get())

	patch, err := store.ParseSettingsPatch(map[string]string{"pageSize": "50", "showTermSystemFields": "true"})
	require.NoError(t, err)
	got := svc.Set(patch)
	assert.Equal(t, 50, got.PageSize)
	assert.True(t, got.ShowTermSystemFields)
	assert.True(t, got.ShowUnmappedParts)

	// nothing is written until Save
	assert.NoFileExists(t, filepath.Join(dir, store.SettingsFilename))
	require.NoError(t, svc.Save())

	reloaded, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, got, reloaded.Get())

	_, err = store.ParseSettingsPatch(map[string]string{"pageSize": "0"})
	assert.Error(t, err)
	_, err = store.ParseSettingsPatch(map[string]string{"theme": "dark"})
	assert.Error(t, err)
}

func TestClassifyUploadParseError(t *testing.T) {
	cases := []struct {
		msg  string
		want store.ParseErrorCode
	}{
		{"헤더가 일치하지 않습니다", store.ParseErrorHeaderMismatch},
		{"필수 항목 누락: 표준단어명", store.ParseErrorRequiredField},
		{"날짜 형식이 올바르지 않습니다", store.ParseErrorInvalidFormat},
		{"파일이 비어 있습니다", store.ParseErrorEmptyFile},
		{"unexpected EOF", store.ParseErrorUnknown},
		// 두 키워드가 모두 있으면 먼저 검사하는 쪽이 이긴다
		{"필수 헤더가 없습니다", store.ParseErrorHeaderMismatch},
		{"필수 값의 형식이 잘못되었습니다", store.ParseErrorRequiredField},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, store.ClassifyUploadParseError(tc.msg), tc.msg)
	}
}
