package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nao1215/passmeter/internal/meter"
	"golang.org/x/net/netutil"
)

// Server defaults.
const (
	DefaultMaxBodySize     = 4 * 1024
	DefaultMaxConnections  = 256
	DefaultShutdownTimeout = 10 * time.Second
	ServiceName            = "Password Strength API"
)

// Server serves the password meter over HTTP.
type Server struct {
	meter   *meter.Meter
	metrics *Metrics
	logger  *slog.Logger
	handler http.Handler

	version         string
	maxBodySize     int64
	maxConnections  int
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodySize sets the request body limit in bytes.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBodySize = n
		}
	}
}

// WithMaxConnections caps the number of simultaneously accepted connections.
func WithMaxConnections(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxConnections = n
		}
	}
}

// WithAllowedOrigins restricts CORS to the given origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithVersion sets the version reported by /api/health and /api/docs.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// WithShutdownTimeout bounds how long Serve waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithMetrics replaces the server's collectors.
func WithMetrics(metrics *Metrics) Option {
	return func(s *Server) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// New creates a Server around m. A nil meter uses the default reference tables.
func New(m *meter.Meter, opts ...Option) *Server {
	if m == nil {
		m = meter.New()
	}
	s := &Server{
		meter:           m,
		logger:          slog.Default(),
		version:         "dev",
		maxBodySize:     DefaultMaxBodySize,
		maxConnections:  DefaultMaxConnections,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	s.handler = chain(s.routes(),
		recovery(s.logger),
		requestID,
		securityHeaders,
		cors(s.allowedOrigins, s.logger),
		bodyLimit(s.maxBodySize),
	)
	return s
}

// routes builds the router.
func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/docs", s.handleDocs).Methods(http.MethodGet)

	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = s.instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	}))
	r.MethodNotAllowedHandler = s.instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}))
	return r
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(netutil.LimitListener(ln, s.maxConnections))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
