package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/netdefense-quiz/internal/metrics"
	"github.com/mind-engage/netdefense-quiz/internal/quiz"
)

// QuestionSource builds the response body for a block.
type QuestionSource interface {
	Questions(ctx context.Context, blockID int) (any, error)
}

// GET /api/blocks
func ListBlocksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]int{"blocks": quiz.Blocks})
	}
}

// GET /api/questions/{blockID}
func GetQuestionsHandler(src QuestionSource, log *zap.Logger, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blockID, ok := parseBlockID(r)
		if !ok {
			m.ObserveBlock(blockLabel(blockID), metrics.OutcomeNotFound)
			writeDetail(w, http.StatusNotFound, "Block not found")
			return
		}
		body, err := src.Questions(r.Context(), blockID)
		if err != nil {
			status, outcome := classify(err)
			if status >= http.StatusInternalServerError {
				log.Error("load questions", zap.Int("block_id", blockID), zap.Error(err))
			}
			m.ObserveBlock(blockLabel(blockID), outcome)
			writeDetail(w, status, quiz.Detail(err))
			return
		}
		m.ObserveBlock(blockLabel(blockID), metrics.OutcomeOK)
		writeJSON(w, http.StatusOK, body)
	}
}

func parseBlockID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "blockID"))
	if err != nil {
		return 0, false
	}
	return id, quiz.ValidBlock(id)
}

// blockLabel keeps the metrics label set bounded.
func blockLabel(id int) string {
	if !quiz.ValidBlock(id) {
		return "invalid"
	}
	return strconv.Itoa(id)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, quiz.ErrNotFound):
		return http.StatusNotFound, metrics.OutcomeNotFound
	case errors.Is(err, quiz.ErrMalformedSource):
		return http.StatusInternalServerError, metrics.OutcomeMalformed
	default:
		return http.StatusInternalServerError, metrics.OutcomeError
	}
}
