package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/wirecheck/internal/config"
	"github.com/giantswarm/wirecheck/internal/metrics"
	"github.com/giantswarm/wirecheck/internal/validation"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

// sdNotify is replaced in tests.
var sdNotify = daemon.SdNotify

// Server serves health, readiness, dependency diagnostics and metrics of an
// application whose dependencies were validated at startup.
type Server struct {
	cfg      config.ServerConfig
	result   validation.Result
	recorder *metrics.Recorder
	router   chi.Router

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// New creates a Server for a validation result. recorder may be nil, in
// which case /metrics is not served.
func New(cfg config.ServerConfig, result validation.Result, recorder *metrics.Recorder) *Server {
	s := &Server{
		cfg:      cfg,
		result:   result,
		recorder: recorder,
		ready:    make(chan struct{}),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/debug", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/dependencies", s.handleDependencies)
		r.Get("/validation", s.handleValidation)
	})

	if s.recorder != nil {
		r.Method(http.MethodGet, "/metrics", s.recorder.Handler())
	}
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the address the server listens on once Ready is closed.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Ready is closed once Run has opened its listener or failed to. Addr is
// empty in the latter case.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Run listens until ctx is cancelled, then shuts down gracefully. With
// NotifySystemd set, systemd is told READY=1 once the listener is open and
// STOPPING=1 when shutdown begins.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		close(s.ready)
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()
	s.notify(daemon.SdNotifyReady)
	close(s.ready)
	logging.Info("Server", "Diagnostics server listening on http://%s", ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("diagnostics server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.notify(daemon.SdNotifyStopping)

		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = config.DefaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logging.Info("Server", "Shutting down diagnostics server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) notify(state string) {
	if !s.cfg.NotifySystemd {
		return
	}
	sent, err := sdNotify(false, state)
	switch {
	case err != nil:
		logging.Warn("Server", "Failed to notify systemd (%s): %v", state, err)
	case !sent:
		logging.Debug("Server", "systemd notification socket not available, %s not sent", state)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logging.Debug("Server", "%s %s %d %s request_id=%s", r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}
