package store

import (
	"errors"
	"fmt"
	"strings"
)

// Common store errors.
var (
	// ErrParseFailed is returned when a data file exists but is not valid JSON
	// for its data type.
	ErrParseFailed = errors.New("data file parse failed")

	// ErrUnknownDataType is returned for a data type name outside the closed set.
	ErrUnknownDataType = errors.New("unknown data type")
)

// ParseError reports which file failed to parse.
type ParseError struct {
	Name string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s 파일 파싱 실패 (%s): %v", e.Name, e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailed, e.Err}
}

// ParseErrorCode classifies an upload/import parse failure message.
type ParseErrorCode string

const (
	ParseErrorHeaderMismatch ParseErrorCode = "HEADER_MISMATCH"
	ParseErrorRequiredField  ParseErrorCode = "REQUIRED_FIELD_MISSING"
	ParseErrorInvalidFormat  ParseErrorCode = "INVALID_FORMAT"
	ParseErrorEmptyFile      ParseErrorCode = "EMPTY_FILE"
	ParseErrorUnknown        ParseErrorCode = "UNKNOWN"
)

// 검사 순서가 곧 우선순위다. 헤더와 필수 키워드가 함께 있으면 헤더로 분류된다.
var parseErrorKeywords = []struct {
	keyword string
	code    ParseErrorCode
}{
	{"헤더", ParseErrorHeaderMismatch},
	{"필수", ParseErrorRequiredField},
	{"형식", ParseErrorInvalidFormat},
	{"비어", ParseErrorEmptyFile},
}

// ClassifyUploadParseError maps a parse failure message to a code by keyword.
//
// A message carrying more than one keyword gets the first match in the
// order header, required, format, empty. "필수 헤더가 없습니다" is therefore
// reported as a header mismatch even though it is also about a required field.
func ClassifyUploadParseError(message string) ParseErrorCode {
	for _, k := range parseErrorKeywords {
		if strings.Contains(message, k.keyword) {
			return k.code
		}
	}
	return ParseErrorUnknown
}
