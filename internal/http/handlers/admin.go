package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/team-draw-service/internal/http/requestutil"
	"github.com/preston-bernstein/team-draw-service/internal/logging"
)

// AdminHandler guards registry mutations behind ADMIN_TOKEN.
type AdminHandler struct {
	token  string
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every
// guarded request.
func NewAdminHandler(token string, logger *slog.Logger) *AdminHandler {
	if token == "" {
		logging.Warn(logger, "ADMIN_TOKEN not set; registry mutations are disabled")
	}
	return &AdminHandler{
		token:  token,
		logger: logger,
	}
}

// Require wraps next with bearer token authorization.
func (h *AdminHandler) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.authorize(r) {
			logging.Warn(loggerFromContext(r, h.logger), "admin unauthorized",
				slog.String(logging.FieldPath, r.URL.Path),
				slog.String("client_ip", requestutil.ClientIP(r)),
			)
			w.Header().Set("WWW-Authenticate", `Bearer realm="team-draw-service"`)
			writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
			return
		}
		next(w, r)
	}
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	return requestutil.TokenMatches(requestutil.BearerToken(r), h.token)
}
