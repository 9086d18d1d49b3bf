package server

import (
	"context"
	"log/slog"
	"net/http"

	apptakers "setpiece-service/internal/app/takers"
	"setpiece-service/internal/config"
	"setpiece-service/internal/domain/takers"
	"setpiece-service/internal/extract"
	httpserver "setpiece-service/internal/http"
	"setpiece-service/internal/http/handlers"
	"setpiece-service/internal/http/middleware"
	"setpiece-service/internal/logging"
	"setpiece-service/internal/metrics"
	"setpiece-service/internal/poller"
	"setpiece-service/internal/providers"
	"setpiece-service/internal/snapshots"
	"setpiece-service/internal/store"
	"setpiece-service/internal/watcher"
)

var metricsSetup = metrics.Setup

// Server owns the extraction loop, the HTTP surface, and their lifecycles.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	takersService *apptakers.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	watcher       *watcher.Watcher
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ReportProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	svc := apptakers.NewService(memoryStore)

	extractor := extract.New(loadRoster(cfg, logger), logger)

	var writer poller.SnapshotWriter
	var snapStore snapshots.Store
	if cfg.Snapshots.Enabled {
		writer = snapshots.NewWriter(cfg.Snapshots.BasePath, cfg.Snapshots.RetentionDays)
		snapStore = snapshots.NewFSStore(cfg.Snapshots.BasePath)
	}

	plr := poller.New(provider, extractor, svc, writer, logger, recorder, cfg.PollInterval)

	var fw *watcher.Watcher
	if cfg.WatchEnabled && cfg.Provider == "file" {
		fw = watcher.New(cfg.ReportPath, 0, plr.Refresh, logger)
	}

	httpSrv := buildHTTPServer(cfg, svc, snapStore, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		takersService: svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		watcher:       fw,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *apptakers.Service, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics.NewRecorder(),
		takersService: svc,
		httpServer:    httpSrv,
		poller:        plr,
	}
}

func loadRoster(cfg config.Config, logger *slog.Logger) []string {
	if cfg.RosterFile == "" {
		return takers.Roster()
	}
	roster, err := config.LoadRoster(cfg.RosterFile)
	if err != nil {
		logging.Warn(logger, "roster file unusable, using default roster", "err", err)
		return takers.Roster()
	}
	return roster
}

func buildHTTPServer(cfg config.Config, svc *apptakers.Service, snaps snapshots.Store, logger *slog.Logger, recorder *metrics.Recorder, plr *poller.Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(svc, snaps, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
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
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the poller, watcher, and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)
	s.startWatcher(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) startWatcher(ctx context.Context) {
	if s.watcher == nil {
		return
	}
	if err := s.watcher.Start(ctx); err != nil && s.logger != nil {
		s.logger.Warn("report watcher unavailable, relying on poll interval", "err", err)
	}
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

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
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
