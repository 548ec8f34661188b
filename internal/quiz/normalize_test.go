package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNormalizeBlock5_TypeFromMarker(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"msq upper", `{"type":"MSQ","correct_answers":["a"],"options":["a","b"]}`, TypeMultipleChoice},
		{"msq lower", `{"type":"msq","correct_answers":"a","options":["a","b"]}`, TypeMultipleChoice},
		{"mcq with two answers", `{"type":"MCQ","correct_answers":["a","b"],"options":["a","b"]}`, TypeSingleChoice},
		{"absent marker", `{"correct_answers":["a","b"],"options":["a","b"]}`, TypeSingleChoice},
		{"unknown marker", `{"type":"TF","options":["a"]}`, TypeSingleChoice},
		{"msq without answers", `{"type":"Msq","options":["a"]}`, TypeMultipleChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NormalizeBlock5(gjson.Parse(tt.raw), 1)
			assert.Equal(t, tt.want, q.Type)
		})
	}
}

func TestNormalizeBlock6_TypeFromAnswerCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"two answers", `{"answer":["a","b"],"options":["a","b","c"]}`, TypeMultipleChoice},
		{"one answer list", `{"answer":["a"],"options":["a","b"]}`, TypeSingleChoice},
		{"scalar answer", `{"answer":"a","options":["a","b"]}`, TypeSingleChoice},
		{"no answer", `{"options":["a","b"]}`, TypeSingleChoice},
		{"marker ignored", `{"type":"MSQ","answer":"a","options":["a","b"]}`, TypeSingleChoice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NormalizeBlock6(gjson.Parse(tt.raw), 1)
			assert.Equal(t, tt.want, q.Type)
		})
	}
}

func TestSplitOption(t *testing.T) {
	tests := []struct {
		raw      string
		idx      int
		wantID   string
		wantText string
	}{
		{"A. Paris", 0, "A", "Paris"},
		{"Paris", 2, "C", "Paris"},
		{"1. Firewall", 0, "1", "Firewall"},
		{"b.  spaced out ", 5, "b", "spaced out"},
		{"(a). bracketed", 0, "A", "(a). bracketed"},
		{".hidden", 1, "B", ".hidden"},
		{"3.14", 0, "3", "14"},
		{"Z. last. one", 0, "Z", "last. one"},
		{"plain", 25, "Z", "plain"},
		{"plain", 26, "27", "plain"},
		{"", 0, "A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			id, text := splitOption(tt.raw, tt.idx)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestNormalize_CorrectnessByText(t *testing.T) {
	q := NormalizeBlock6(gjson.Parse(`{
		"question": "Capital of France?",
		"answer": ["Paris"],
		"options": [" Paris ", "paris", "B. Paris", "C. Lyon"]
	}`), 4)

	require.Len(t, q.Options, 4)
	assert.Equal(t, Option{ID: "A", Text: "Paris", IsCorrect: true}, q.Options[0])
	assert.Equal(t, Option{ID: "B", Text: "paris", IsCorrect: false}, q.Options[1])
	assert.Equal(t, Option{ID: "B", Text: "Paris", IsCorrect: true}, q.Options[2])
	assert.Equal(t, Option{ID: "C", Text: "Lyon", IsCorrect: false}, q.Options[3])
	assert.Equal(t, "Capital of France?", q.Text)
	assert.Equal(t, 4, q.ID)
}

func TestNormalize_CorrectnessByRawOption(t *testing.T) {
	q := NormalizeBlock5(gjson.Parse(`{
		"correct_answers": [" A. Use IAM roles "],
		"options": ["A. Use IAM roles", "B. Share root keys"]
	}`), 1)

	require.Len(t, q.Options, 2)
	assert.True(t, q.Options[0].IsCorrect)
	assert.Equal(t, "Use IAM roles", q.Options[0].Text)
	assert.False(t, q.Options[1].IsCorrect)
}

func TestNormalize_NonStringValues(t *testing.T) {
	q := NormalizeBlock6(gjson.Parse(`{"answer": 443, "options": ["1. 80", "2. 443", 22]}`), 1)

	require.Len(t, q.Options, 3)
	assert.False(t, q.Options[0].IsCorrect)
	assert.True(t, q.Options[1].IsCorrect)
	assert.Equal(t, Option{ID: "C", Text: "22"}, q.Options[2])
}

func TestCorrectAnswers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"list trimmed", `[" a ","b"]`, []string{"a", "b"}},
		{"scalar", `" a "`, []string{"a"}},
		{"number", `7`, []string{"7"}},
		{"empty string", `""`, []string{}},
		{"zero", `0`, []string{}},
		{"false", `false`, []string{}},
		{"null", `null`, []string{}},
		{"empty list", `[]`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, correctAnswers(gjson.Parse(tt.raw)))
		})
	}
	assert.Equal(t, []string{}, correctAnswers(gjson.Parse(`{}`).Get("missing")))
}

func TestNormalize_EmptyOptions(t *testing.T) {
	for _, raw := range []string{
		`{"question":"Q?","type":"MSQ","correct_answers":["x"],"options":[]}`,
		`{"question":"Q?","type":"MSQ","correct_answers":["x"]}`,
		`{"question":"Q?","type":"MSQ","correct_answers":["x"],"options":"x"}`,
	} {
		q := NormalizeBlock5(gjson.Parse(raw), 9)
		assert.Equal(t, Question{ID: 9, Text: "Q?", Type: TypeMultipleChoice, Options: []Option{}}, q, raw)
	}

	q := NormalizeBlock6(gjson.Parse(`{"answer":["x","y"]}`), 2)
	assert.Equal(t, Question{ID: 2, Type: TypeMultipleChoice, Options: []Option{}}, q)
}

func TestNormalize_MissingQuestionText(t *testing.T) {
	q := NormalizeBlock5(gjson.Parse(`{"options":["a"]}`), 1)
	assert.Equal(t, "", q.Text)
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := gjson.Parse(`{"question":"Pick","type":"MSQ","correct_answers":["x","y"],"options":["x","y","z"]}`)
	assert.Equal(t, NormalizeBlock5(raw, 3), NormalizeBlock5(raw, 3))

	raw6 := gjson.Parse(`{"question":"Pick","answer":["x"],"options":["A. x","B. y"]}`)
	assert.Equal(t, NormalizeBlock6(raw6, 1), NormalizeBlock6(raw6, 1))
}
