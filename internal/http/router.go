package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/team-draw-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a gorilla/mux router.
func NewRouter(h *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = nethttp.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(h.MethodNotAllowed)

	r.HandleFunc("/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/ready", h.Ready).Methods(nethttp.MethodGet)

	r.HandleFunc("/players", h.ListPlayers).Methods(nethttp.MethodGet)
	r.HandleFunc("/players", admin.Require(h.CreatePlayer)).Methods(nethttp.MethodPost)
	r.HandleFunc("/players/{id}", h.GetPlayer).Methods(nethttp.MethodGet)
	r.HandleFunc("/players/{id}", admin.Require(h.UpdatePlayer)).Methods(nethttp.MethodPut)
	r.HandleFunc("/players/{id}", admin.Require(h.DeletePlayer)).Methods(nethttp.MethodDelete)

	r.HandleFunc("/roster/parse", h.ParseRoster).Methods(nethttp.MethodPost)

	r.HandleFunc("/draws", h.ListDraws).Methods(nethttp.MethodGet)
	r.HandleFunc("/draws", h.CreateDraw).Methods(nethttp.MethodPost)
	r.HandleFunc("/draws/redraw", h.Redraw).Methods(nethttp.MethodPost)
	r.HandleFunc("/draws/latest", h.LatestDraw).Methods(nethttp.MethodGet)
	r.HandleFunc("/draws/{id}", h.DrawByID).Methods(nethttp.MethodGet)
	r.HandleFunc("/draws/{id}/export", h.ExportDraw).Methods(nethttp.MethodGet)

	return r
}
