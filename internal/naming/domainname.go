package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// 정수 또는 소수 표기만 정규화한다 (지수 표기, Inf, NaN 제외)
var plainNumber = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?$`)

// 길이 파라미터가 없는 물리 타입. 길이가 입력되어 있어도 괄호를 붙이지 않는다.
var typesWithoutLength = map[string]bool{
	"DATE": true, "DATETIME": true, "TIMESTAMP": true, "TIME": true,
	"TEXT": true, "LONGTEXT": true, "CLOB": true, "NCLOB": true, "BLOB": true,
	"INT": true, "INTEGER": true, "BIGINT": true, "SMALLINT": true, "TINYINT": true,
	"BOOLEAN": true, "BOOL": true, "BIT": true, "SERIAL": true, "JSON": true,
}

// 소수점 자리수를 갖는 숫자 타입
var numericTypes = map[string]bool{
	"NUMBER": true, "NUMERIC": true, "DECIMAL": true,
	"FLOAT": true, "DOUBLE": true, "REAL": true,
}

// TypeTakesLength reports whether a physical type renders a (length) suffix.
func TypeTakesLength(physicalType string) bool {
	return !typesWithoutLength[strings.ToUpper(strings.TrimSpace(physicalType))]
}

// IsNumericType reports whether a physical type carries decimal places.
func IsNumericType(physicalType string) bool {
	return numericTypes[strings.ToUpper(strings.TrimSpace(physicalType))]
}

// GenerateStandardDomainName derives the canonical domain name, e.g.
// ("회원", "VARCHAR", "10", "") -> "회원_VARCHAR(10)" and
// ("금액", "DECIMAL", "10", "2") -> "금액_DECIMAL(10,2)".
// Stored standardDomainName values are compared against this output.
func GenerateStandardDomainName(category, physicalType, length, decimals string) string {
	category = strings.TrimSpace(category)
	typ := strings.ToUpper(strings.TrimSpace(physicalType))
	if category == "" || typ == "" {
		return ""
	}
	return category + "_" + FormatPhysicalType(typ, length, decimals)
}

// FormatPhysicalType renders TYPE, TYPE(len) or TYPE(len,dec).
func FormatPhysicalType(physicalType, length, decimals string) string {
	typ := strings.ToUpper(strings.TrimSpace(physicalType))
	if typesWithoutLength[typ] {
		return typ
	}
	l := formatNumber(length)
	if l == "" {
		return typ
	}
	if numericTypes[typ] {
		if d := formatNumber(decimals); d != "" {
			return fmt.Sprintf("%s(%s,%s)", typ, l, d)
		}
	}
	return fmt.Sprintf("%s(%s)", typ, l)
}

// formatNumber renders "10", " 10 ", "10.0" as "10". Anything else, including
// exponent forms such as "1e3", is kept trimmed so that the mismatch shows up
// in validation instead of vanishing.
func formatNumber(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "-" {
		return ""
	}
	if !plainNumber.MatchString(v) {
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return v
}
