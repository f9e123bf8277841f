package engine

import (
	"fmt"
	"strings"
	"time"

	"db-standard/internal/model"
	"db-standard/internal/naming"
	"db-standard/internal/relation"
	"db-standard/internal/store"
	"db-standard/internal/validate"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls sample workspace generation.
type Options struct {
	Seed           int64 // 0이면 매번 다른 샘플
	LogicalDbName  string
	PhysicalDbName string
	SchemaName     string
	Dbms           string
	Noise          int // 의도적으로 심는 불일치 개수
	Now            time.Time
}

func (o Options) withDefaults() Options {
	if o.LogicalDbName == "" {
		o.LogicalDbName = "표준DB"
	}
	if o.PhysicalDbName == "" {
		o.PhysicalDbName = "STDDB"
	}
	if o.SchemaName == "" {
		o.SchemaName = "APP"
	}
	if o.Dbms == "" {
		o.Dbms = "oracle"
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	return o
}

// NoiseKind names one deliberate inconsistency.
type NoiseKind string

const (
	NoiseVocabularyDuplicate NoiseKind = "vocabulary-duplicate"
	NoiseDomainName          NoiseKind = "domain-name"
	NoiseTermUnmapped        NoiseKind = "term-unmapped"
	NoiseTableEntityLink     NoiseKind = "table-entity-link"
	NoiseColumnSchema        NoiseKind = "column-schema"
	NoiseOrphanAttribute     NoiseKind = "orphan-attribute"
)

// NoiseKinds lists the inconsistencies in the order they are planted.
var NoiseKinds = []NoiseKind{
	NoiseVocabularyDuplicate,
	NoiseDomainName,
	NoiseTermUnmapped,
	NoiseTableEntityLink,
	NoiseColumnSchema,
	NoiseOrphanAttribute,
}

// Noise records one planted inconsistency.
type Noise struct {
	Kind   NoiseKind
	Target string
}

// Workspace is a complete set of naming standards and design definitions.
type Workspace struct {
	Vocabulary []model.VocabularyEntry
	Domains    []model.DomainEntry
	Terms      []model.TermEntry
	Databases  []model.DatabaseEntry
	Entities   []model.EntityEntry
	Attributes []model.AttributeEntry
	Tables     []model.TableEntry
	Columns    []model.ColumnEntry
	Noise      []Noise
}

// Generate builds a sample workspace. With zero noise every validator passes,
// every design relation matches and the sync plan is empty.
func Generate(opts Options) *Workspace {
	opts = opts.withDefaults()
	g := &generator{f: gofakeit.New(opts.Seed), opts: opts}

	ws := &Workspace{}
	ws.Vocabulary = g.vocabulary()
	ws.Domains = g.domains()
	ws.Databases = g.databases()
	g.design(ws)

	for i := 0; i < opts.Noise; i++ {
		kind := NoiseKinds[i%len(NoiseKinds)]
		ws.Noise = append(ws.Noise, Noise{Kind: kind, Target: g.plant(ws, kind)})
	}
	return ws
}

type generator struct {
	f    *gofakeit.Faker
	opts Options
}

func (g *generator) meta() model.Meta {
	created := g.f.DateRange(g.opts.Now.AddDate(-1, 0, 0), g.opts.Now)
	return model.Meta{ID: g.f.UUID(), CreatedAt: created, UpdatedAt: created}
}

func (g *generator) vocabulary() []model.VocabularyEntry {
	out := make([]model.VocabularyEntry, 0, len(seedWords))
	for _, w := range seedWords {
		e := model.VocabularyEntry{
			Meta:           g.meta(),
			StandardName:   w.Standard,
			Abbreviation:   w.Abbr,
			EnglishName:    w.English,
			Description:    g.f.Sentence(4),
			DomainCategory: w.Category,
			Source:         "sample",
		}
		if w.Category != "" {
			e.DomainGroup = "공통"
			e.IsDomainCategoryMapped = true
		}
		out = append(out, e)
	}
	return out
}

func (g *generator) domains() []model.DomainEntry {
	out := make([]model.DomainEntry, 0, len(seedDomains))
	for _, d := range seedDomains {
		out = append(out, model.DomainEntry{
			Meta:               g.meta(),
			DomainGroup:        "공통",
			DomainCategory:     d.Category,
			StandardDomainName: naming.GenerateStandardDomainName(d.Category, d.Physical, d.Length, d.Decimals),
			LogicalDataType:    d.Logical,
			PhysicalDataType:   d.Physical,
			DataLength:         model.FlexString(d.Length),
			DecimalPlaces:      model.FlexString(d.Decimals),
			Revision:           "1",
		})
	}
	return out
}

func (g *generator) databases() []model.DatabaseEntry {
	city := g.f.RandomString(Cities)
	return []model.DatabaseEntry{{
		Meta:             g.meta(),
		OrganizationName: city + "시",
		DepartmentName:   "정보화담당관",
		AppliedTask:      "표준 관리",
		LogicalDbName:    g.opts.LogicalDbName,
		PhysicalDbName:   g.opts.PhysicalDbName,
		BuildDate:        g.f.DateRange(g.opts.Now.AddDate(-5, 0, 0), g.opts.Now).Format("2006-01-02"),
		DbmsInfo:         g.opts.Dbms,
		Description:      g.f.Sentence(6),
	}}
}

// design fills terms, entities, attributes, tables and columns from the seed
// subjects so that every name resolves against the generated vocabulary.
func (g *generator) design(ws *Workspace) {
	words := make(map[string]seedWord, len(seedWords))
	for _, w := range seedWords {
		words[w.Standard] = w
	}
	domainByCategory := make(map[string]model.DomainEntry, len(ws.Domains))
	for _, d := range ws.Domains {
		domainByCategory[d.DomainCategory] = d
	}
	seenTerms := make(map[string]bool)
	schema := g.opts.SchemaName

	for _, s := range seedSubjects {
		tableKorean := s.Entity + "정보"
		tableName := "TB_" + words[s.Entity].Abbr

		ws.Entities = append(ws.Entities, model.EntityEntry{
			Meta:              g.meta(),
			LogicalDbName:     g.opts.LogicalDbName,
			SchemaName:        schema,
			EntityName:        s.Entity,
			EntityDescription: g.f.Sentence(5),
			PrimaryIdentifier: strings.Join(s.Attributes[0], ""),
			TableKoreanName:   tableKorean,
		})
		ws.Tables = append(ws.Tables, model.TableEntry{
			Meta:              g.meta(),
			PhysicalDbName:    g.opts.PhysicalDbName,
			TableOwner:        schema,
			SchemaName:        schema,
			TableEnglishName:  tableName,
			TableKoreanName:   tableKorean,
			TableType:         "일반",
			RelatedEntityName: s.Entity,
			PublicFlag:        "Y",
			TableDescription:  g.f.Sentence(5),
		})

		for i, attr := range s.Attributes {
			abbrs := make([]string, len(attr))
			for j, w := range attr {
				abbrs[j] = words[w].Abbr
			}
			termName := strings.Join(attr, "_")
			columnName := strings.Join(abbrs, "_")
			korean := strings.Join(attr, "")
			dom := domainByCategory[words[attr[len(attr)-1]].Category]

			if !seenTerms[termName] {
				seenTerms[termName] = true
				ws.Terms = append(ws.Terms, model.TermEntry{
					Meta:           g.meta(),
					TermName:       termName,
					ColumnName:     columnName,
					DomainName:     dom.StandardDomainName,
					IsMappedTerm:   true,
					IsMappedColumn: true,
					IsMappedDomain: true,
				})
			}

			ws.Attributes = append(ws.Attributes, model.AttributeEntry{
				Meta:           g.meta(),
				SchemaName:     schema,
				EntityName:     s.Entity,
				AttributeName:  korean,
				AttributeType:  dom.LogicalDataType,
				RequiredInput:  yn(i == 0),
				IdentifierFlag: yn(i == 0),
			})

			col := model.ColumnEntry{
				Meta:              g.meta(),
				ScopeFlag:         "Y",
				SchemaName:        schema,
				TableEnglishName:  tableName,
				ColumnEnglishName: columnName,
				ColumnKoreanName:  korean,
				RelatedEntityName: s.Entity,
				DataType:          dom.PhysicalDataType,
				DataLength:        dom.DataLength,
				DataDecimalLength: dom.DecimalPlaces,
				NotNullFlag:       yn(i == 0),
			}
			if i == 0 {
				col.PKInfo = "PK"
			}
			ws.Columns = append(ws.Columns, col)
		}
	}
}

// plant applies one inconsistency to a random record and returns its label.
func (g *generator) plant(ws *Workspace, kind NoiseKind) string {
	switch kind {
	case NoiseVocabularyDuplicate:
		// 영문명만 겹치는 단어를 추가한다. 약어/표준단어명 조회는 그대로 유지
		src := ws.Vocabulary[g.f.Number(0, len(seedWords)-1)]
		dup := model.VocabularyEntry{
			Meta:         g.meta(),
			StandardName: src.StandardName + "유사",
			Abbreviation: src.Abbreviation + "X",
			EnglishName:  src.EnglishName,
			Source:       "sample",
		}
		ws.Vocabulary = append(ws.Vocabulary, dup)
		return dup.StandardName

	case NoiseDomainName:
		d := &ws.Domains[g.f.Number(0, len(ws.Domains)-1)]
		d.StandardDomainName = d.DomainCategory + "_VARCHAR2(4000)"
		return d.StandardDomainName

	case NoiseTermUnmapped:
		t := &ws.Terms[g.f.Number(0, len(ws.Terms)-1)]
		t.TermName = "미등록_" + t.TermName
		t.IsMappedTerm = false
		return t.TermName

	case NoiseTableEntityLink:
		t := &ws.Tables[g.f.Number(0, len(ws.Tables)-1)]
		t.RelatedEntityName = t.TableKoreanName
		return t.TableEnglishName

	case NoiseColumnSchema:
		c := &ws.Columns[g.f.Number(0, len(ws.Columns)-1)]
		c.SchemaName = ""
		return c.TableEnglishName + "." + c.ColumnEnglishName

	case NoiseOrphanAttribute:
		a := &ws.Attributes[g.f.Number(0, len(ws.Attributes)-1)]
		a.EntityName = "미정의" + a.EntityName
		return a.EntityName + "." + a.AttributeName
	}
	return ""
}

// NamingContext returns the vocabulary and domains as a validation context.
func (w *Workspace) NamingContext() *validate.Context {
	return &validate.Context{Vocabulary: w.Vocabulary, Domains: w.Domains}
}

// Snapshot returns the design definitions as a relation context.
func (w *Workspace) Snapshot() *relation.Context {
	return &relation.Context{
		Databases:  w.Databases,
		Entities:   w.Entities,
		Attributes: w.Attributes,
		Tables:     w.Tables,
		Columns:    w.Columns,
		Domains:    w.Domains,
	}
}

// Save writes every data set of the workspace to s.
func (w *Workspace) Save(s *store.Store) error {
	steps := []struct {
		t    model.DataType
		save func() error
	}{
		{model.DataTypeVocabulary, func() error { return store.Save(s, model.VocabularyKind, "", model.NewDataFile(w.Vocabulary)) }},
		{model.DataTypeDomain, func() error { return store.Save(s, model.DomainKind, "", model.NewDataFile(w.Domains)) }},
		{model.DataTypeTerm, func() error { return store.Save(s, model.TermKind, "", model.NewDataFile(w.Terms)) }},
		{model.DataTypeDatabase, func() error { return store.Save(s, model.DatabaseKind, "", model.NewDataFile(w.Databases)) }},
		{model.DataTypeEntity, func() error { return store.Save(s, model.EntityKind, "", model.NewDataFile(w.Entities)) }},
		{model.DataTypeAttribute, func() error { return store.Save(s, model.AttributeKind, "", model.NewDataFile(w.Attributes)) }},
		{model.DataTypeTable, func() error { return store.Save(s, model.TableKind, "", model.NewDataFile(w.Tables)) }},
		{model.DataTypeColumn, func() error { return store.Save(s, model.ColumnKind, "", model.NewDataFile(w.Columns)) }},
	}
	for _, st := range steps {
		if err := st.save(); err != nil {
			return fmt.Errorf("failed to save %s: %w", st.t, err)
		}
	}
	return nil
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
