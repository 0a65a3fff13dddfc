package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobads/internal/core/port"
	"jobads/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the compile use case and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.CompileUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. When m is not
// nil every request is instrumented and /metrics serves its registry.
func NewHandler(svc port.CompileUseCase, logger *slog.Logger, m *metrics.Collector) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	if m != nil {
		r.Use(m.Middleware)
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/compile", h.handleCompile)
		r.Post("/compile/{platform}", h.handleCompilePlatform)
		r.Post("/resolve/{platform}", h.handleResolve)
		r.Get("/compilations/{id}", h.handleHistory)
		r.Get("/taxonomy", h.handleTaxonomy)
		r.Post("/taxonomy/reload", h.handleTaxonomyReload)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"taxonomy": h.svc.Taxonomy(r.Context()).Version,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
