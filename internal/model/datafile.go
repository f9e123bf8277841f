package model

import "time"

// DataFile is the persisted JSON envelope shared by every data set.
type DataFile[T any] struct {
	Entries     []T               `json:"entries"`
	LastUpdated time.Time         `json:"lastUpdated"`
	TotalCount  int               `json:"totalCount"`
	Mapping     map[string]string `json:"mapping,omitempty"`
}

// NewDataFile wraps entries in an envelope.
func NewDataFile[T any](entries []T) *DataFile[T] {
	if entries == nil {
		entries = []T{}
	}
	return &DataFile[T]{Entries: entries, TotalCount: len(entries)}
}

// HistoryAction names what happened to a record.
type HistoryAction string

const (
	HistoryAdd    HistoryAction = "add"
	HistoryUpdate HistoryAction = "update"
	HistoryDelete HistoryAction = "delete"
	HistorySync   HistoryAction = "sync"
	HistoryImport HistoryAction = "import"
)

// HistoryEntry is one audit record appended by a collaborator.
type HistoryEntry struct {
	ID         string            `json:"id"`
	Action     HistoryAction     `json:"action"`
	TargetType DataType          `json:"targetType"`
	TargetID   string            `json:"targetId,omitempty"`
	TargetName string            `json:"targetName,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	Details    map[string]string `json:"details,omitempty"`
}

type HistoryData struct {
	Logs        []HistoryEntry `json:"logs"`
	LastUpdated time.Time      `json:"lastUpdated"`
	TotalCount  int            `json:"totalCount"`
}

// Settings holds display toggles. The core never reads them.
type Settings struct {
	ShowVocabularySystemFields bool `json:"showVocabularySystemFields"`
	ShowDomainSystemFields     bool `json:"showDomainSystemFields"`
	ShowTermSystemFields       bool `json:"showTermSystemFields"`
	ShowUnmappedParts          bool `json:"showUnmappedParts"`
	PageSize                   int  `json:"pageSize"`
}

// DefaultSettings mirrors the values used when settings.json is absent.
func DefaultSettings() Settings {
	return Settings{
		ShowUnmappedParts: true,
		PageSize:          20,
	}
}
