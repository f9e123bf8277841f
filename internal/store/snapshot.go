package store

import (
	"db-standard/internal/model"
	"db-standard/internal/relation"
	"db-standard/internal/validate"
)

// LoadSnapshot reads the five design definitions and the domains under a
// single lock so every relation check sees the same data.
func (s *Store) LoadSnapshot() (*relation.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := &relation.Context{}
	var err error
	if ctx.Databases, err = entries(load(s, model.DatabaseKind, "")); err != nil {
		return nil, err
	}
	if ctx.Entities, err = entries(load(s, model.EntityKind, "")); err != nil {
		return nil, err
	}
	if ctx.Attributes, err = entries(load(s, model.AttributeKind, "")); err != nil {
		return nil, err
	}
	if ctx.Tables, err = entries(load(s, model.TableKind, "")); err != nil {
		return nil, err
	}
	if ctx.Columns, err = entries(load(s, model.ColumnKind, "")); err != nil {
		return nil, err
	}
	if ctx.Domains, err = entries(load(s, model.DomainKind, "")); err != nil {
		return nil, err
	}
	return ctx, nil
}

// LoadNamingContext reads the vocabulary and domains the naming validators
// share.
func (s *Store) LoadNamingContext() (*validate.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := &validate.Context{}
	var err error
	if ctx.Vocabulary, err = entries(load(s, model.VocabularyKind, "")); err != nil {
		return nil, err
	}
	if ctx.Domains, err = entries(load(s, model.DomainKind, "")); err != nil {
		return nil, err
	}
	return ctx, nil
}

func entries[T any](f *model.DataFile[T], err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return f.Entries, nil
}
