package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/agbru/picalc/internal/format"
	"github.com/agbru/picalc/internal/logging"
	"github.com/agbru/picalc/internal/metrics"
	"github.com/agbru/picalc/internal/orchestration"
)

const shutdownTimeout = 5 * time.Second

// ViewSource returns the current view of the computation.
type ViewSource func() orchestration.View

// SnapshotResponse is the JSON body of /snapshot.
type SnapshotResponse struct {
	Algorithm string    `json:"algorithm"`
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Iteration uint64    `json:"iteration"`
	Terms     uint64    `json:"terms"`
	Converged bool      `json:"converged"`
	State     string    `json:"state"`
	ElapsedMS int64     `json:"elapsed_ms"`
	Display   [4]string `json:"display"`
}

// Server serves metrics and snapshots.
type Server struct {
	addr     string
	router   *mux.Router
	metrics  *metrics.Recorder
	source   ViewSource
	security SecurityConfig
	logger   logging.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithSecurityConfig overrides DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a server listening on addr once Serve is called.
func New(addr string, rec *metrics.Recorder, source ViewSource, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		metrics:  rec,
		source:   source,
		security: DefaultSecurityConfig(),
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/metrics", s.wrap("/metrics", s.handleMetrics)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/snapshot", s.wrap("/snapshot", s.handleSnapshot)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/healthz", s.wrap("/healthz", s.handleHealth)).Methods(http.MethodGet, http.MethodOptions)
	return r
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// Serve listens on the configured address until ctx is done, then shuts down
// gracefully. It returns nil after a shutdown triggered by ctx.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("metrics server listening", logging.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// wrap applies the security headers and counts the request.
func (s *Server) wrap(route string, h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(route, h))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) metricsMiddleware(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		if s.metrics != nil {
			s.metrics.ObserveRequest(route, rec.status)
		}
		s.logger.Debug("http request",
			logging.String("route", route),
			logging.Int("status", rec.status))
	}
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.metrics == nil {
		http.Error(w, "metrics disabled", http.StatusServiceUnavailable)
		return
	}
	s.metrics.Handler().ServeHTTP(w, r)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	if s.source == nil {
		http.Error(w, "no computation attached", http.StatusServiceUnavailable)
		return
	}
	v := s.source()
	snap := v.Snapshot
	resp := SnapshotResponse{
		Algorithm: string(snap.Algorithm),
		Name:      snap.Name,
		Value:     snap.Value,
		Iteration: snap.Iteration,
		Terms:     snap.Terms,
		Converged: snap.Converged,
		State:     snap.State.String(),
		ElapsedMS: v.Elapsed.Milliseconds(),
		Display:   format.DisplayLines(snap, v.Elapsed),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("encode snapshot", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
