package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// ListPlayers returns the registry ordered by name.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	items, err := h.players.Players(r.Context())
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	if items == nil {
		items = []players.Player{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"players": items, "count": len(items)}, h.logger)
}

// GetPlayer returns one player by id.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.players.PlayerByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// CreatePlayer registers a player.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var p players.Player
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	created, err := h.players.Create(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	w.Header().Set("Location", "/players/"+created.ID)
	writeJSON(w, http.StatusCreated, created, h.logger)
}

// UpdatePlayer replaces a player's editable fields.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var p players.Player
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	updated, err := h.players.Update(r.Context(), id, p)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, updated, h.logger)
}

// DeletePlayer removes a player.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.players.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid id", h.logger)
		return "", false
	}
	return id, true
}
