package quiz

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// NormalizeBlock5 converts a modular MCQ/MSQ record. The question type comes
// from the "type" marker only; the number of correct answers is ignored.
func NormalizeBlock5(q gjson.Result, id int) Question {
	marker := "MCQ"
	if t := q.Get("type"); t.Exists() {
		marker = t.String()
	}
	qtype := TypeSingleChoice
	if strings.ToUpper(marker) == "MSQ" {
		qtype = TypeMultipleChoice
	}
	return normalizeQuestion(id, q.Get("question").String(), qtype, q.Get("options"), correctAnswers(q.Get("correct_answers")))
}

// NormalizeBlock6 converts a flat record carrying its answers in "answer".
// More than one answer makes it multiple choice.
func NormalizeBlock6(q gjson.Result, id int) Question {
	correct := correctAnswers(q.Get("answer"))
	qtype := TypeSingleChoice
	if len(correct) > 1 {
		qtype = TypeMultipleChoice
	}
	return normalizeQuestion(id, q.Get("question").String(), qtype, q.Get("options"), correct)
}

func normalizeQuestion(id int, text, qtype string, rawOptions gjson.Result, correct []string) Question {
	out := Question{ID: id, Text: text, Type: qtype, Options: []Option{}}
	if !rawOptions.IsArray() {
		return out
	}
	opts := rawOptions.Array()
	if len(opts) == 0 {
		return out
	}
	out.Options = make([]Option, 0, len(opts))
	for idx, o := range opts {
		raw := strings.TrimSpace(o.String())
		oid, otext := splitOption(raw, idx)
		out.Options = append(out.Options, Option{
			ID:        oid,
			Text:      otext,
			IsCorrect: slices.Contains(correct, raw) || slices.Contains(correct, otext),
		})
	}
	return out
}

// splitOption separates a "B. text" style prefix. Options without one get a
// positional label: A..Z, then the 1-based position.
func splitOption(raw string, idx int) (id, text string) {
	if first, _ := utf8.DecodeRuneInString(raw); raw != "" && strings.Contains(raw, ".") &&
		(unicode.IsLetter(first) || unicode.IsNumber(first)) {
		left, right, _ := strings.Cut(raw, ".")
		return strings.TrimSpace(left), strings.TrimSpace(right)
	}
	if idx < 26 {
		return string(rune('A' + idx)), raw
	}
	return strconv.Itoa(idx + 1), raw
}

// correctAnswers promotes a scalar to a one-element list and drops falsy
// scalars. Every entry is trimmed.
func correctAnswers(v gjson.Result) []string {
	if v.IsArray() {
		arr := v.Array()
		out := make([]string, 0, len(arr))
		for _, a := range arr {
			out = append(out, strings.TrimSpace(a.String()))
		}
		return out
	}
	if !truthy(v) {
		return []string{}
	}
	return []string{strings.TrimSpace(v.String())}
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	case gjson.JSON:
		return len(v.Map()) > 0
	default:
		return false
	}
}
