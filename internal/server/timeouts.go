package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout applies when the config leaves ShutdownTimeout unset.
var shutdownTimeout = 10 * time.Second

func shutdownBudget(configured time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}
	return shutdownTimeout
}
