// Package httpapi exposes the analyzer over HTTP.
//
//	POST /analyze  structure JSON -> report JSON
//	GET  /healthz  liveness
//	GET  /metrics  Prometheus exposition
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/cayley/analysis"
	"github.com/katalvlaran/cayley/structure"
)

// maxBodyBytes bounds request bodies; tables are n² labels.
const maxBodyBytes = 4 << 20

// RequestIDHeader carries the per-request id in responses.
const RequestIDHeader = "X-Request-Id"

// Server holds the handler dependencies.
type Server struct {
	log         *slog.Logger
	maxElements int
	parallel    int
	metrics     *metrics
	validate    *validator.Validate
}

// Options configure a Server.
type Options struct {
	Logger      *slog.Logger
	MaxElements int
	Parallel    int
}

// NewServer builds a Server. A nil Logger falls back to slog.Default().
func NewServer(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Server{
		log:         log,
		maxElements: opts.MaxElements,
		parallel:    opts.Parallel,
		metrics:     newMetrics(),
		validate:    validator.New(),
	}
}

// Handler returns the chi router with middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(cors)

	r.Post("/analyze", s.analyze)
	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Elements []string   `json:"elements" validate:"required,min=1,dive,required"`
	Add      [][]string `json:"add" validate:"required,min=1"`
	Mul      [][]string `json:"mul" validate:"required,min=1"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.metrics.rejected.WithLabelValues("decode").Inc()
		s.fail(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.metrics.rejected.WithLabelValues("validation").Inc()
		s.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	rep, err := analysis.Analyze(
		analysis.Input{Elements: req.Elements, Add: req.Add, Mul: req.Mul},
		analysis.WithMaxElements(s.maxElements),
		analysis.WithParallel(s.parallel),
		analysis.WithLogger(s.log),
	)
	switch {
	case errors.Is(err, analysis.ErrTooManyElements):
		s.metrics.rejected.WithLabelValues("too_many_elements").Inc()
		s.fail(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, structure.ErrInvalidTable),
		errors.Is(err, structure.ErrDuplicateElement),
		errors.Is(err, structure.ErrEmptyElement):
		s.metrics.rejected.WithLabelValues("invalid_structure").Inc()
		s.fail(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.log.Error("analyze failed", "error", err, "request_id", requestIDFrom(r.Context()))
		s.fail(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	s.metrics.duration.Observe(time.Since(start).Seconds())
	s.metrics.elements.Observe(float64(len(req.Elements)))
	s.metrics.analyses.WithLabelValues(rep.Classification.Tightest()).Inc()
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.log.Warn("request rejected", "status", status, "reason", msg, "request_id", requestIDFrom(r.Context()))
	s.writeJSON(w, status, errorResponse{Error: msg, RequestID: requestIDFrom(r.Context())})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "error", err)
	}
}

type ctxKey struct{}

// requestID assigns a UUID to every request, honoring an incoming header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// accessLog emits one record per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", requestIDFrom(r.Context()),
		)
	})
}

// cors allows any origin, as the analyzer has no credentials to protect.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, readTimeout, shutdownTimeout time.Duration, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")

	return srv.Shutdown(shutdownCtx)
}
