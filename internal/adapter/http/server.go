package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/observability"
)

// maxRequestBytes caps a render request body. A full forecast document with
// minutely, hourly and daily blocks is well under this.
const maxRequestBytes = 1 << 20

// Renderer builds a report line from a decoded request.
type Renderer interface {
	Build(req domain.ReportRequest) (domain.Report, error)
}

// Server exposes health, readiness, metrics and synchronous render endpoints.
type Server struct {
	httpServer *http.Server
	renderer   Renderer
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// POST /v1/render routes.
func NewServer(addr string, ready sharedobs.ReadinessChecker, renderer Renderer, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		renderer: renderer,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/render", s.handleRender)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return
	}

	req, err := domain.ParseRawEvent(domain.RawEvent{Value: body, Timestamp: domain.Now()})
	if err != nil {
		s.metrics.TransformErrors.Inc()
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	rep, err := s.renderer.Build(req)
	if err != nil {
		s.metrics.TransformErrors.Inc()
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrUnknownKind) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	s.metrics.RenderDuration.WithLabelValues(string(rep.Kind)).Observe(time.Since(start).Seconds())
	s.metrics.ReportsRendered.WithLabelValues(string(rep.Kind), "http").Inc()
	s.metrics.LineWidth.Observe(float64(rep.Width))

	writeJSON(w, http.StatusOK, rep)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
