package relation

import (
	"fmt"

	"db-standard/internal/model"
)

// Issue is an unmatched target record.
type Issue struct {
	RelationID  RelationID     `json:"relationId"`
	Severity    Severity       `json:"severity"`
	SourceType  model.DataType `json:"sourceType"`
	TargetType  model.DataType `json:"targetType"`
	TargetID    string         `json:"targetId"`
	TargetLabel string         `json:"targetLabel"`
	ExpectedKey string         `json:"expectedKey"`
	Reason      string         `json:"reason"`
}

// Summary aggregates one relation.
type Summary struct {
	RelationID   RelationID `json:"relationId"`
	Name         string     `json:"name"`
	Severity     Severity   `json:"severity"`
	TotalChecked int        `json:"totalChecked"`
	Matched      int        `json:"matched"`
	Unmatched    int        `json:"unmatched"`
	Issues       []Issue    `json:"issues"`
}

type Totals struct {
	Checked      int `json:"checked"`
	Matched      int `json:"matched"`
	Unmatched    int `json:"unmatched"`
	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`
}

// Result is the full design relation report.
type Result struct {
	Specs     []Spec    `json:"specs"`
	Summaries []Summary `json:"summaries"`
	Totals    Totals    `json:"totals"`
}

// Issues flattens the issues of every summary in relation order.
func (r *Result) Issues() []Issue {
	var out []Issue
	for _, s := range r.Summaries {
		out = append(out, s.Issues...)
	}
	return out
}

// Summary returns the summary for id.
func (r *Result) Summary(id RelationID) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.RelationID == id {
			return s, true
		}
	}
	return Summary{}, false
}

// ValidateDesignRelations runs all six relation checks over the same snapshot.
func ValidateDesignRelations(ctx *Context) (*Result, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	specs := Specs()
	res := &Result{Specs: specs}
	for _, spec := range specs {
		sum := checkRelation(spec, ctx)
		res.Summaries = append(res.Summaries, sum)

		res.Totals.Checked += sum.TotalChecked
		res.Totals.Matched += sum.Matched
		res.Totals.Unmatched += sum.Unmatched
		switch spec.Severity {
		case SeverityError:
			res.Totals.ErrorCount += sum.Unmatched
		case SeverityWarning:
			res.Totals.WarningCount += sum.Unmatched
		}
	}
	return res, nil
}

func checkRelation(spec Spec, ctx *Context) Summary {
	sources := make(map[string]struct{})
	for _, k := range spec.sourceKeys(ctx) {
		if k != "" {
			sources[k] = struct{}{}
		}
	}

	sum := Summary{RelationID: spec.ID, Name: spec.Name, Severity: spec.Severity, Issues: []Issue{}}
	for _, t := range spec.targets(ctx) {
		sum.TotalChecked++
		if _, ok := sources[t.Key]; ok && t.Key != "" {
			sum.Matched++
			continue
		}
		sum.Unmatched++
		sum.Issues = append(sum.Issues, Issue{
			RelationID:  spec.ID,
			Severity:    spec.Severity,
			SourceType:  spec.SourceType,
			TargetType:  spec.TargetType,
			TargetID:    t.ID,
			TargetLabel: t.Label,
			ExpectedKey: t.Expected,
			Reason:      unmatchedReason(spec, t),
		})
	}
	return sum
}

func unmatchedReason(spec Spec, t targetRef) string {
	if t.Key == "" {
		return fmt.Sprintf("%s 매칭 키(%s)가 비어 있어 %s와(과) 연결할 수 없습니다",
			spec.TargetType.Label(), spec.MappingKey, spec.SourceType.Label())
	}
	return fmt.Sprintf("%s에 일치하는 항목이 없습니다 (%s)", spec.SourceType.Label(), t.Expected)
}
