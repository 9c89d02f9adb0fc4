package server

import (
	"context"
	"log/slog"
	"net/http"

	appdraws "github.com/preston-bernstein/team-draw-service/internal/app/draws"
	appplayers "github.com/preston-bernstein/team-draw-service/internal/app/players"
	"github.com/preston-bernstein/team-draw-service/internal/balancer"
	"github.com/preston-bernstein/team-draw-service/internal/config"
	httpserver "github.com/preston-bernstein/team-draw-service/internal/http"
	"github.com/preston-bernstein/team-draw-service/internal/http/handlers"
	"github.com/preston-bernstein/team-draw-service/internal/http/middleware"
	"github.com/preston-bernstein/team-draw-service/internal/logging"
	"github.com/preston-bernstein/team-draw-service/internal/metrics"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	registry       registry
	playersService *appplayers.Service
	drawsService   *appdraws.Service
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error
}

// New wires the registry, draw service and HTTP stack from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	mode, err := balancer.ParseRefineMode(cfg.Draw.RefineMode)
	if err != nil {
		return nil, err
	}

	reg, err := buildRegistry(context.Background(), cfg.Registry, logger)
	if err != nil {
		return nil, err
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	playerSvc, drawSvc := buildServices(cfg, reg, mode, recorder, logger)
	httpSrv := buildHTTPServer(cfg, reg, playerSvc, drawSvc, recorder, logger)

	logging.Info(logger, "server configured",
		logging.FieldBackend, reg.backend,
		"refineMode", string(mode),
		"snapshotDir", cfg.Draw.SnapshotDir,
	)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		registry:       reg,
		playersService: playerSvc,
		drawsService:   drawSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, reg registry) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, reg registry, mode balancer.RefineMode, recorder *metrics.Recorder, logger *slog.Logger) (*appplayers.Service, *appdraws.Service) {
	playerSvc := appplayers.NewService(reg.store, logger)
	snaps := buildSnapshots(cfg.Draw)
	drawSvc := appdraws.NewService(appdraws.Config{
		RefineMode:   mode,
		MaxPlayers:   cfg.Draw.MaxPlayers,
		DefaultLevel: cfg.Draw.DefaultLevel,
		Resolver:     playerSvc,
		Writer:       snaps.writer,
		Snapshots:    snaps.store,
		Recorder:     recorder,
		Logger:       logger,
	})
	return playerSvc, drawSvc
}

func buildHTTPServer(cfg config.Config, reg registry, playerSvc *appplayers.Service, drawSvc *appdraws.Service, recorder *metrics.Recorder, logger *slog.Logger) httpServer {
	handler := handlers.NewHandler(playerSvc, drawSvc, reg.ready, logger)
	admin := handlers.NewAdminHandler(cfg.AdminToken, logger)
	router := httpserver.NewRouter(handler, admin)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	return newNetHTTPServer(":"+cfg.Port, wrapped)
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownBudget(s.cfg.ShutdownTimeout))
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// The registry closes last so in-flight requests can finish their queries.
	if err := s.registry.shutdown(); err != nil {
		logging.Warn(s.logger, "registry close failed", "error", err)
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
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
