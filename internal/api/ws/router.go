package ws

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/dtroode/habiro-server/internal/metrics"
)

// NewRouter serves the live chat endpoint plus health and metrics.
func NewRouter(h *Handler, metricsHandler http.Handler, upgradesPerMinute int) http.Handler {
	if upgradesPerMinute <= 0 {
		upgradesPerMinute = 30
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.WithMetrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.With(httprate.LimitByIP(upgradesPerMinute, time.Minute)).
		Get("/ws/chat/{room}", h.ServeChat)

	return r
}
