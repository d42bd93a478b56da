package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/williampepple1/post-inspector/internal/inspect"
	"github.com/williampepple1/post-inspector/pkg/models"
)

const maxRequestBytes = 64 << 10

// Inspector is the pipeline behind the inspect endpoint
type Inspector interface {
	Envelope(ctx context.Context, rawURL string) (models.Envelope, inspect.Code)
}

type inspectRequest struct {
	URL string `json:"url"`
}

// Handler serves the inspection API
type Handler struct {
	inspector Inspector
	metrics   *Metrics
	logger    zerolog.Logger
}

// NewHandler creates the API handler
func NewHandler(inspector Inspector, metrics *Metrics, logger zerolog.Logger) *Handler {
	return &Handler{
		inspector: inspector,
		metrics:   metrics,
		logger:    logger,
	}
}

// Routes mounts the API on a chi router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Post("/api/inspect", h.Inspect)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	return r
}

// Inspect handles POST /api/inspect
func (h *Handler) Inspect(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req inspectRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		// an unreadable body carries no usable URL
		req.URL = ""
	}

	env, code := h.inspector.Envelope(r.Context(), req.URL)
	h.metrics.Observe(env, code, time.Since(start))

	status := http.StatusOK
	if !env.OK {
		status = inspect.HTTPStatus(code)
		h.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("code", string(code)).
			Str("url", req.URL).
			Msg("inspection failed")
	}

	h.writeJSON(w, status, env)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
