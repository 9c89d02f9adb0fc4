package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/team-draw-service/internal/logging"
)

// NewBufferLogger returns a text logger shaped like the service logger
// (service attribute included) writing to a buffer for assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.Config{
		Format:  "text",
		Service: "team-draw-service-test",
		Output:  &buf,
	})
	return logger, &buf
}
