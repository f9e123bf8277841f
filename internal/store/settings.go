package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"db-standard/internal/model"
)

const SettingsFilename = "settings.json"

// SettingsPatch carries the fields to change; nil fields are left alone.
type SettingsPatch struct {
	ShowVocabularySystemFields *bool
	ShowDomainSystemFields     *bool
	ShowTermSystemFields       *bool
	ShowUnmappedParts          *bool
	PageSize                   *int
}

// SettingsService holds the display settings in memory. Changes are written
// only when Save is called.
type SettingsService struct {
	store *Store

	mu      sync.RWMutex
	current model.Settings
}

// Settings loads settings.json, falling back to defaults when it is absent.
func (s *Store) Settings() (*SettingsService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := model.DefaultSettings()
	if _, err := s.readJSON("설정", SettingsFilename, &cur); err != nil {
		return nil, err
	}
	return &SettingsService{store: s, current: cur}, nil
}

func (ss *SettingsService) Get() model.Settings {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.current
}

// Set applies p and returns the resulting settings. A non-positive page
// size is ignored.
func (ss *SettingsService) Set(p SettingsPatch) model.Settings {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	c := &ss.current
	if p.ShowVocabularySystemFields != nil {
		c.ShowVocabularySystemFields = *p.ShowVocabularySystemFields
	}
	if p.ShowDomainSystemFields != nil {
		c.ShowDomainSystemFields = *p.ShowDomainSystemFields
	}
	if p.ShowTermSystemFields != nil {
		c.ShowTermSystemFields = *p.ShowTermSystemFields
	}
	if p.ShowUnmappedParts != nil {
		c.ShowUnmappedParts = *p.ShowUnmappedParts
	}
	if p.PageSize != nil && *p.PageSize > 0 {
		c.PageSize = *p.PageSize
	}
	return *c
}

// Save persists the current settings.
func (ss *SettingsService) Save() error {
	cur := ss.Get()
	ss.store.mu.Lock()
	defer ss.store.mu.Unlock()
	if err := ss.store.writeJSON(SettingsFilename, cur); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// ParseSettingsPatch builds a patch from key=value pairs using the JSON
// field names of model.Settings.
func ParseSettingsPatch(pairs map[string]string) (SettingsPatch, error) {
	var p SettingsPatch
	for k, v := range pairs {
		v = strings.TrimSpace(v)
		switch k {
		case "showVocabularySystemFields", "showDomainSystemFields", "showTermSystemFields", "showUnmappedParts":
			b, err := strconv.ParseBool(v)
			if err != nil {
				return SettingsPatch{}, fmt.Errorf("setting %s: %w", k, err)
			}
			switch k {
			case "showVocabularySystemFields":
				p.ShowVocabularySystemFields = &b
			case "showDomainSystemFields":
				p.ShowDomainSystemFields = &b
			case "showTermSystemFields":
				p.ShowTermSystemFields = &b
			default:
				p.ShowUnmappedParts = &b
			}
		case "pageSize":
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return SettingsPatch{}, fmt.Errorf("setting pageSize: must be a positive integer, got %q", v)
			}
			p.PageSize = &n
		default:
			return SettingsPatch{}, fmt.Errorf("unknown setting %q", k)
		}
	}
	return p, nil
}
