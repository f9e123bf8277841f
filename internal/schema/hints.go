package schema

import (
	"sort"
	"strings"

	"db-standard/internal/naming"
)

// 흔히 쓰이는 약어의 영문 풀이. 단어집에 없는 약어를 등록할 때 참고용으로 보여준다.
var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"biz": "business", "pwd": "password", "passwd": "password", "pw": "password",
	"img": "image", "zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"doc": "document", "usr": "user", "emp": "employee",
	"dept": "department", "grp": "group", "cat": "category",
	"loc": "location", "lat": "latitude", "lng": "longitude", "lon": "longitude",
	"bal": "balance", "calc": "calculation", "rst": "result", "rslt": "result",
	"std": "standard", "avg": "average",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yes or no", "stat": "status", "sts": "status",
	"typ": "type", "val": "value",
	"ord": "order", "seq": "sequence", "idx": "index",
	"brd": "board", "art": "article", "auth": "authority", "flg": "flag",
}

// MaxHintExamples caps the example columns listed per token.
const MaxHintExamples = 3

// TokenHint is a column-name token that no vocabulary abbreviation covers.
type TokenHint struct {
	Token    string
	Count    int
	English  string // 알려진 약어 풀이, 모르면 빈 값
	Examples []string
}

// UnmappedTokens collects the column-name tokens the vocabulary cannot map
// back, most frequent first.
func UnmappedTokens(tables []*Table, lex *naming.Lexicon) []TokenHint {
	hints := make(map[string]*TokenHint)
	for _, t := range tables {
		for _, c := range t.Columns {
			_, unmapped := naming.GenerateTermName(c.Name, lex)
			for _, tok := range unmapped {
				key := strings.ToUpper(tok)
				h, ok := hints[key]
				if !ok {
					h = &TokenHint{Token: key, English: abbreviations[strings.ToLower(tok)]}
					hints[key] = h
				}
				h.Count++
				if len(h.Examples) < MaxHintExamples {
					h.Examples = append(h.Examples, t.Name+"."+c.Name)
				}
			}
		}
	}

	out := make([]TokenHint, 0, len(hints))
	for _, h := range hints {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Token < out[j].Token
	})
	return out
}
