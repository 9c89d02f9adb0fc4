package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	ShutdownTimeout Duration
	AdminToken      string
	Log             LogConfig
	Registry        RegistryConfig
	Draw            DrawConfig
	Metrics         MetricsConfig
}

// LogConfig selects logger level and output format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, defaultShutdownTimeout),
		AdminToken:      envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Registry: loadRegistry(),
		Draw:     loadDraw(),
		Metrics:  loadMetrics(),
	}
}
