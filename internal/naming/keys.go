package naming

import "strings"

// KeySeparator joins the parts of a composite key. It cannot appear in a
// trimmed name field without being visible to the user.
const KeySeparator = "|"

// KeyOptions controls key normalization.
type KeyOptions struct {
	// EmptyLikeDash treats a lone "-" as "no value". Design definition sheets
	// use a dash for empty cells.
	EmptyLikeDash bool
}

// DesignKey is the option set used for the five design definitions.
var DesignKey = KeyOptions{EmptyLikeDash: true}

// NormalizeKey trims and lower-cases value for case-insensitive comparison.
func NormalizeKey(value string, opts KeyOptions) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if opts.EmptyLikeDash && v == "-" {
		return ""
	}
	return strings.ToLower(v)
}

// BuildCompositeKey normalizes every part and joins them with KeySeparator.
// If any part is empty the whole key is empty: a record missing one of its
// identifying fields must not match anything.
func BuildCompositeKey(parts []string, opts KeyOptions) string {
	if len(parts) == 0 {
		return ""
	}
	normalized := make([]string, len(parts))
	for i, p := range parts {
		n := NormalizeKey(p, opts)
		if n == "" {
			return ""
		}
		normalized[i] = n
	}
	return strings.Join(normalized, KeySeparator)
}

// SplitUnderscoreParts decomposes a compound name ("고객_번호", "CUST_NO") into
// lower-cased tokens, dropping empty ones.
func SplitUnderscoreParts(value string) []string {
	raw := strings.Split(value, "_")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts = append(parts, strings.ToLower(p))
	}
	return parts
}
