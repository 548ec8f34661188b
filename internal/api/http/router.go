package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mind-engage/netdefense-quiz/internal/grading"
	"github.com/mind-engage/netdefense-quiz/internal/metrics"
	"github.com/mind-engage/netdefense-quiz/internal/storage"
)

type RouterDeps struct {
	Questions   QuestionSource
	Grader      grading.Grader
	Blobs       storage.BlobStore // nil disables /db
	Metrics     *metrics.Metrics  // nil disables /metrics
	Log         *zap.Logger
	CORSOrigins []string
	AccessLog   bool
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Grader == nil {
		d.Grader = grading.NewDefaultGrader()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	if d.AccessLog {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/blocks", ListBlocksHandler())
		ar.Get("/questions/{blockID}", GetQuestionsHandler(d.Questions, d.Log, d.Metrics))
		ar.Post("/questions/{blockID}/check", CheckAnswerHandler(d.Questions, d.Grader, d.Log, d.Metrics))
	})

	if d.Blobs != nil {
		r.Route("/db", func(sr chi.Router) {
			MountStatic(sr, d.Blobs, d.Log)
		})
	}
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	return r
}
