package logging

import "log/slog"

// WithDraw scopes logger to a single draw so every line carries its id.
func WithDraw(logger *slog.Logger, drawID string) *slog.Logger {
	if logger == nil || drawID == "" {
		return logger
	}
	return logger.With(slog.String(FieldDrawID, drawID))
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, "error", err)
	}
	logger.Error(msg, args...)
}
