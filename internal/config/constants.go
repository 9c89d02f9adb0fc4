package config

import "time"

const (
	envPort            = "PORT"
	envShutdownTimeout = "SHUTDOWN_TIMEOUT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envRegistryBackend = "REGISTRY_BACKEND"
	envRegistryFile    = "REGISTRY_FILE"
	envDatabaseURL     = "DATABASE_URL"
	envRefineMode      = "DRAW_REFINE_MODE"
	envMaxPlayers      = "DRAW_MAX_PLAYERS"
	envDefaultLevel    = "DRAW_DEFAULT_LEVEL"
	envSnapshotDir     = "DRAW_SNAPSHOT_DIR"
	envMaxSnapshots    = "DRAW_SNAPSHOT_RETENTION"

	defaultPort            = "4000"
	defaultShutdownTimeout = 10 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "team-draw-service"
	defaultRegistryBackend = BackendMemory
	defaultRegistryFile    = "data/players.json"
	defaultRefineMode      = "all"
	defaultMaxPlayers      = 20
	defaultLevel           = 5
	minLevel               = 1
	maxLevel               = 10
	defaultSnapshotDir     = "data/draws"
	defaultMaxSnapshots    = 50
)
