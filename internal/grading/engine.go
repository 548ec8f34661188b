package grading

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	TypeSingleChoice   = "single_choice"
	TypeMultipleChoice = "multiple_choice"
	TypeTextInput      = "text_input"

	MatchExact = "exact"
	MatchFuzzy = "fuzzy"
)

// Choice is the part of an option the grader looks at.
type Choice struct {
	ID        string
	Text      string
	IsCorrect bool
}

// Q is a minimal view of a canonical question needed for grading.
type Q struct {
	ID              string
	Type            string
	Options         []Choice
	AcceptedAnswers []string // text_input
	MatchMode       string   // text_input: exact|fuzzy
}

// QuestionFromJSON reads a canonical question record. Missing fields are
// left empty.
func QuestionFromJSON(v gjson.Result) Q {
	q := Q{
		ID:        v.Get("id").String(),
		Type:      v.Get("type").String(),
		MatchMode: v.Get("match_mode").String(),
	}
	v.Get("options").ForEach(func(_, o gjson.Result) bool {
		q.Options = append(q.Options, Choice{
			ID:        o.Get("id").String(),
			Text:      o.Get("text").String(),
			IsCorrect: o.Get("is_correct").Type == gjson.True,
		})
		return true
	})
	v.Get("accepted_answers").ForEach(func(_, a gjson.Result) bool {
		q.AcceptedAnswers = append(q.AcceptedAnswers, a.String())
		return true
	})
	return q
}

// Result is the outcome of checking a single response.
type Result struct {
	Correct       bool
	CorrectAnswer string // human readable key, "N/A" when there is none
}

// Strategy grades a single question.
type Strategy interface {
	Grade(ctx context.Context, q Q, response interface{}) (Result, error)
}

// Grader routes by question type to the correct Strategy.
type Grader interface {
	Grade(ctx context.Context, q Q, response interface{}) (Result, error)
}

// ErrBadResponse is returned when the response has the wrong shape for the
// question type.
var ErrBadResponse = errors.New("bad response")

type defaultGrader struct {
	strategies map[string]Strategy
}

func (g *defaultGrader) Grade(ctx context.Context, q Q, response interface{}) (Result, error) {
	s, ok := g.strategies[q.Type]
	if !ok {
		return Result{CorrectAnswer: notAvailable}, nil
	}
	return s.Grade(ctx, q, response)
}

// NewDefaultGrader installs built-in strategies.
func NewDefaultGrader() Grader {
	return &defaultGrader{
		strategies: map[string]Strategy{
			TypeSingleChoice:   singleChoiceStrategy{},
			TypeMultipleChoice: multipleChoiceStrategy{},
			TypeTextInput:      textInputStrategy{},
		},
	}
}

const notAvailable = "N/A"

// --- Strategies ---

type singleChoiceStrategy struct{}

func (singleChoiceStrategy) Grade(_ context.Context, q Q, response interface{}) (Result, error) {
	res := Result{CorrectAnswer: notAvailable}
	for _, o := range q.Options {
		if o.IsCorrect {
			res.CorrectAnswer = o.label()
			break
		}
	}
	resp, ok := response.(string)
	if !ok {
		return res, fmt.Errorf("%w: answer must be a string", ErrBadResponse)
	}
	if resp == "" {
		return res, nil
	}
	for _, o := range q.Options {
		if o.ID == resp {
			res.Correct = o.IsCorrect
			return res, nil
		}
	}
	return res, nil
}

type multipleChoiceStrategy struct{}

// Grade requires the selection to match the correct ids exactly. An empty
// selection or a question without correct options is never correct.
func (multipleChoiceStrategy) Grade(_ context.Context, q Q, response interface{}) (Result, error) {
	var correct, labels []string
	for _, o := range q.Options {
		if o.IsCorrect {
			correct = append(correct, o.ID)
			labels = append(labels, o.label())
		}
	}
	res := Result{CorrectAnswer: strings.Join(labels, ", ")}
	sel, ok := toStringSlice(response)
	if !ok {
		return res, fmt.Errorf("%w: answer must be a list of option ids", ErrBadResponse)
	}
	if len(sel) == 0 || len(correct) == 0 {
		return res, nil
	}
	res.Correct = len(sel) == len(correct) && containsAll(correct, sel) && containsAll(sel, correct)
	return res, nil
}

type textInputStrategy struct{}

func (textInputStrategy) Grade(_ context.Context, q Q, response interface{}) (Result, error) {
	res := Result{CorrectAnswer: notAvailable}
	if len(q.AcceptedAnswers) > 0 {
		res.CorrectAnswer = strings.Join(q.AcceptedAnswers, " or ")
	}
	resp, ok := response.(string)
	if !ok {
		return res, fmt.Errorf("%w: answer must be a string", ErrBadResponse)
	}
	user := strings.ToLower(strings.TrimSpace(resp))
	if user == "" {
		return res, nil
	}
	for _, ans := range q.AcceptedAnswers {
		if q.MatchMode == MatchExact {
			if strings.ToLower(strings.TrimSpace(ans)) == user {
				res.Correct = true
				break
			}
			continue
		}
		if fuzzyMatch(ans, user) {
			res.Correct = true
			break
		}
	}
	return res, nil
}

// helpers

func (c Choice) label() string { return c.ID + ". " + c.Text }

func toStringSlice(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// containsAll reports whether every element of sub is present in set.
func containsAll(set, sub []string) bool {
	m := make(map[string]struct{}, len(set))
	for _, s := range set {
		m[s] = struct{}{}
	}
	for _, s := range sub {
		if _, ok := m[s]; !ok {
			return false
		}
	}
	return true
}
