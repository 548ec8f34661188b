package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/mind-engage/netdefense-quiz/internal/grading"
	"github.com/mind-engage/netdefense-quiz/internal/metrics"
	"github.com/mind-engage/netdefense-quiz/internal/quiz"
)

type checkRequest struct {
	QuestionID json.RawMessage `json:"question_id"`
	Answer     interface{}     `json:"answer"`
}

type checkResponse struct {
	QuestionID    string `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
}

// POST /api/questions/{blockID}/check
// Checks one answer against the block as it is currently served. Nothing is
// recorded.
func CheckAnswerHandler(src QuestionSource, g grading.Grader, log *zap.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blockID, ok := parseBlockID(r)
		if !ok {
			writeDetail(w, http.StatusNotFound, "Block not found")
			return
		}
		var in checkRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid json body")
			return
		}
		qid := gjson.ParseBytes(in.QuestionID).String()
		if qid == "" {
			writeDetail(w, http.StatusBadRequest, "question_id required")
			return
		}

		body, err := src.Questions(r.Context(), blockID)
		if err != nil {
			status, _ := classify(err)
			if status >= http.StatusInternalServerError {
				log.Error("load questions for check", zap.Int("block_id", blockID), zap.Error(err))
			}
			writeDetail(w, status, quiz.Detail(err))
			return
		}
		raw, err := json.Marshal(body)
		if err != nil {
			log.Error("encode questions", zap.Int("block_id", blockID), zap.Error(err))
			writeDetail(w, http.StatusInternalServerError, "Error reading file: "+err.Error())
			return
		}
		q, ok := findQuestion(raw, qid)
		if !ok {
			writeDetail(w, http.StatusNotFound, "Question not found")
			return
		}

		res, err := g.Grade(r.Context(), grading.QuestionFromJSON(q), in.Answer)
		if err != nil {
			if errors.Is(err, grading.ErrBadResponse) {
				writeDetail(w, http.StatusBadRequest, err.Error())
				return
			}
			writeDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		m.ObserveCheck(blockLabel(blockID), res.Correct)
		writeJSON(w, http.StatusOK, checkResponse{
			QuestionID:    qid,
			IsCorrect:     res.Correct,
			CorrectAnswer: res.CorrectAnswer,
		})
	}
}

// findQuestion looks up a question by id in an envelope or a bare question
// list. The first match wins.
func findQuestion(doc []byte, id string) (gjson.Result, bool) {
	root := gjson.ParseBytes(doc)
	list := root
	if !root.IsArray() {
		list = root.Get("questions")
	}
	if !list.IsArray() {
		return gjson.Result{}, false
	}
	var found gjson.Result
	ok := false
	list.ForEach(func(_, q gjson.Result) bool {
		if q.Get("id").String() == id {
			found, ok = q, true
			return false
		}
		return true
	})
	return found, ok
}
