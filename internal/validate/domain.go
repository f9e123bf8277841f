package validate

import (
	"fmt"
	"strings"

	"db-standard/internal/model"
	"db-standard/internal/naming"
)

// 도메인 검증 우선순위
const (
	domainPriorityRequired  = 1
	domainPriorityMismatch  = 2
	domainPriorityDuplicate = 3
)

func expectedDomainName(d *model.DomainEntry) string {
	return naming.GenerateStandardDomainName(d.DomainCategory, d.PhysicalDataType,
		d.DataLength.String(), d.DecimalPlaces.String())
}

// ValidateDomains checks required fields, that each stored standardDomainName
// equals the generated one, and that no two entries generate the same name.
func ValidateDomains(domains []model.DomainEntry) Report {
	// 1차: 생성된 도메인명 집계. 중복 여부는 전체 집합에 대해 판단한다.
	generated := make([]string, len(domains))
	counts := make(map[string]int, len(domains))
	for i := range domains {
		generated[i] = expectedDomainName(&domains[i])
		if k := naming.NormalizeKey(generated[i], naming.KeyOptions{}); k != "" {
			counts[k]++
		}
	}

	report := newReport()
	for i := range domains {
		d := &domains[i]
		res := Result{EntryID: d.ID, Label: d.StandardDomainName, GeneratedDomainName: generated[i]}

		missing := false
		if blank(d.DomainCategory) {
			res.Errors = append(res.Errors, requiredIssue("domainCategory", "도메인분류명", domainPriorityRequired))
			missing = true
		}
		if blank(d.PhysicalDataType) {
			res.Errors = append(res.Errors, requiredIssue("physicalDataType", "물리데이터타입", domainPriorityRequired))
			missing = true
		}

		if !missing {
			if strings.TrimSpace(d.StandardDomainName) != generated[i] {
				res.Errors = append(res.Errors, Issue{
					Code:     CodeDomainNameMismatch,
					Field:    "standardDomainName",
					Message:  fmt.Sprintf("표준 도메인명이 규칙과 다릅니다: %q (기대값 %q)", d.StandardDomainName, generated[i]),
					Priority: domainPriorityMismatch,
				})
			}
			if counts[naming.NormalizeKey(generated[i], naming.KeyOptions{})] > 1 {
				res.Errors = append(res.Errors, Issue{
					Code:     CodeDomainNameDuplicate,
					Field:    "standardDomainName",
					Message:  fmt.Sprintf("동일한 도메인명 %q을(를) 생성하는 항목이 여러 개입니다", generated[i]),
					Priority: domainPriorityDuplicate,
				})
			}
		}
		report.add(res)
	}
	return report
}

func requiredIssue(field, label string, priority int) Issue {
	return Issue{
		Code:     CodeRequiredField,
		Field:    field,
		Message:  fmt.Sprintf("필수 항목 누락: %s", label),
		Priority: priority,
	}
}
