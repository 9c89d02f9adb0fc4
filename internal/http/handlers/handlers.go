package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	appdraws "github.com/preston-bernstein/team-draw-service/internal/app/draws"
	appplayers "github.com/preston-bernstein/team-draw-service/internal/app/players"
	"github.com/preston-bernstein/team-draw-service/internal/roster"
)

// ReadyFunc reports whether backing stores can serve traffic.
type ReadyFunc func(ctx context.Context) error

// Handler wires HTTP routes to the application services.
type Handler struct {
	players  *appplayers.Service
	draws    *appdraws.Service
	ready    ReadyFunc
	logger   *slog.Logger
	maxNames int
}

// NewHandler constructs a Handler with defaults.
func NewHandler(players *appplayers.Service, draws *appdraws.Service, ready ReadyFunc, logger *slog.Logger) *Handler {
	return &Handler{
		players:  players,
		draws:    draws,
		ready:    ready,
		logger:   logger,
		maxNames: roster.DefaultMax,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes readiness checks).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			loggerFromContext(r, h.logger).Warn("readiness check failed", slog.Any("err", err))
			writeError(w, r, http.StatusServiceUnavailable, "registry unavailable", h.logger)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

type parseRequest struct {
	Text string `json:"text"`
	Max  int    `json:"max,omitempty"`
}

// ParseRoster cleans a pasted sign-up list. It accepts JSON
// {"text","max"} or a text/plain body.
func (h *Handler) ParseRoster(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}
		req.Text = string(body)
	} else if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if req.Max < 0 {
		writeError(w, r, http.StatusBadRequest, "max must not be negative", h.logger)
		return
	}
	if req.Max == 0 {
		req.Max = h.maxNames
	}

	res := roster.Parse(req.Text, req.Max)
	if res.Truncated {
		loggerFromContext(r, h.logger).Info("roster truncated",
			slog.Int("total", res.Total),
			slog.Int("kept", len(res.Names)),
		)
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

// NotFound renders unknown routes as JSON.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed renders wrong-method requests as JSON.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
