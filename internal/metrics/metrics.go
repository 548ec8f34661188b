package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for block requests.
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

type Metrics struct {
	registry      *prometheus.Registry
	blockRequests *prometheus.CounterVec
	answerChecks  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		blockRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_block_requests_total",
			Help: "Question requests per block and outcome.",
		}, []string{"block", "outcome"}),
		answerChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_answer_checks_total",
			Help: "Answer checks per block and result.",
		}, []string{"block", "correct"}),
	}
	reg.MustRegister(
		m.blockRequests,
		m.answerChecks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveBlock counts one question request. Safe on a nil receiver.
// Callers pass a bounded block label.
func (m *Metrics) ObserveBlock(block, outcome string) {
	if m == nil {
		return
	}
	m.blockRequests.WithLabelValues(block, outcome).Inc()
}

func (m *Metrics) ObserveCheck(block string, correct bool) {
	if m == nil {
		return
	}
	m.answerChecks.WithLabelValues(block, strconv.FormatBool(correct)).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
func (m *Metrics) BlockRequests() *prometheus.CounterVec { return m.blockRequests }
func (m *Metrics) AnswerChecks() *prometheus.CounterVec { return m.answerChecks }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
