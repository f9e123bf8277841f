package store

import (
	"fmt"
	"log/slog"
	"time"

	"db-standard/internal/model"
)

const (
	HistoryFilename = "history.json"

	// MaxHistoryEntries is how many log entries are retained; older ones drop off.
	MaxHistoryEntries = 1000
)

// LoadHistory returns the audit log, newest first.
func (s *Store) LoadHistory() (*model.HistoryData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHistory()
}

func (s *Store) loadHistory() (*model.HistoryData, error) {
	h := &model.HistoryData{}
	if _, err := s.readJSON("히스토리", HistoryFilename, h); err != nil {
		return nil, err
	}
	if h.Logs == nil {
		h.Logs = []model.HistoryEntry{}
	}
	h.TotalCount = len(h.Logs)
	return h, nil
}

// AddHistoryLog prepends entries to the audit log and persists it. Missing
// ids and timestamps are filled in.
func (s *Store) AddHistoryLog(entries ...model.HistoryEntry) (*model.HistoryData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.loadHistory()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fresh := make([]model.HistoryEntry, 0, len(entries))
	// 가장 최근 항목이 맨 앞에 오도록 역순으로 넣는다
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.ID == "" {
			e.ID = NewEntryID()
		}
		if e.Timestamp.IsZero() {
			e.Timestamp = now
		}
		fresh = append(fresh, e)
	}
	h.Logs = append(fresh, h.Logs...)
	if len(h.Logs) > MaxHistoryEntries {
		h.Logs = h.Logs[:MaxHistoryEntries]
	}
	h.TotalCount = len(h.Logs)
	h.LastUpdated = now

	if err := s.writeJSON(HistoryFilename, h); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	s.logger.Debug("Appended history", slog.Int("added", len(entries)), slog.Int("total", h.TotalCount))
	return h, nil
}
