package server

import (
	"context"
	"log/slog"
	"net/http"

	apprivalry "github.com/preston-bernstein/rivalry-service/internal/app/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/config"
	httpserver "github.com/preston-bernstein/rivalry-service/internal/http"
	"github.com/preston-bernstein/rivalry-service/internal/http/handlers"
	"github.com/preston-bernstein/rivalry-service/internal/http/middleware"
	"github.com/preston-bernstein/rivalry-service/internal/live"
	"github.com/preston-bernstein/rivalry-service/internal/loader"
	"github.com/preston-bernstein/rivalry-service/internal/logging"
	"github.com/preston-bernstein/rivalry-service/internal/metrics"
	"github.com/preston-bernstein/rivalry-service/internal/providers"
	"github.com/preston-bernstein/rivalry-service/internal/store"
	"github.com/preston-bernstein/rivalry-service/internal/web"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sessions      *store.SessionStore
	service       *apprivalry.Service
	httpServer    httpServer
	metricsServer httpServer
	loader        RecordLoader
	live          *live.Handler
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and loader wiring.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.RecordProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.RecordProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	ldr := loader.New(provider, logger, recorder, cfg.FetchTimeout)
	sessions := buildSessions(cfg, logger)
	svc := apprivalry.NewService(ldr, sessions)
	httpSrv, liveHandler, err := buildHTTPServer(cfg, svc, logger, recorder)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(context.Background())
		}
		return nil, err
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		sessions:      sessions,
		service:       svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		loader:        ldr,
		live:          liveHandler,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ldr RecordLoader) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    apprivalry.NewService(ldr, nil),
		httpServer: httpSrv,
		loader:     ldr,
	}
}

func buildSessions(cfg config.Config, logger *slog.Logger) *store.SessionStore {
	return store.NewSessionStore(cfg.SessionCapacity, cfg.SessionTTL, func(id string) {
		if logger != nil {
			logger.Debug("session expired", slog.String(logging.FieldSessionID, id))
		}
	})
}

func buildHTTPServer(cfg config.Config, svc *apprivalry.Service, logger *slog.Logger, recorder *metrics.Recorder) (httpServer, *live.Handler, error) {
	pages, err := web.NewRenderer()
	if err != nil {
		return nil, nil, err
	}

	handler := handlers.NewHandler(svc, pages, logger, recorder, handlers.Options{
		Version:    cfg.Version,
		Live:       true,
		SessionTTL: cfg.SessionTTL,
	})
	liveHandler := live.NewHandler(svc, logger, recorder, live.Options{
		CountupDuration: cfg.CountupDuration,
		AckWindow:       cfg.CopyAckWindow,
		SessionTTL:      cfg.SessionTTL,
	})
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Live:    liveHandler,
		Profile: cfg.Profile,
	})
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.SecurityHeaders(router))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           wrapped,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}, liveHandler, nil
}

// Run starts the loader and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loader.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	// Hijacked websocket connections are invisible to http.Server.Shutdown.
	if s.live != nil {
		s.live.Close()
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// State reports the record load state.
func (s *Server) State() loader.State {
	return s.loader.State()
}
