package handlers

import (
	"net/http"

	appdraws "github.com/preston-bernstein/team-draw-service/internal/app/draws"
	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/team-draw-service/internal/export"
)

const latestID = "latest"

// CreateDraw balances the posted roster into teams.
func (h *Handler) CreateDraw(w http.ResponseWriter, r *http.Request) {
	var req appdraws.Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	d, err := h.draws.Draw(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	w.Header().Set("Location", "/draws/"+d.ID)
	writeJSON(w, http.StatusCreated, d, h.logger)
}

// Redraw reshuffles the latest roster.
func (h *Handler) Redraw(w http.ResponseWriter, r *http.Request) {
	d, err := h.draws.Redraw(r.Context())
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	w.Header().Set("Location", "/draws/"+d.ID)
	writeJSON(w, http.StatusCreated, d, h.logger)
}

// ListDraws returns known draw ids, newest first.
func (h *Handler) ListDraws(w http.ResponseWriter, r *http.Request) {
	ids := h.draws.DrawIDs(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"ids": ids, "count": len(ids)}, h.logger)
}

// LatestDraw returns the most recent draw.
func (h *Handler) LatestDraw(w http.ResponseWriter, r *http.Request) {
	d, err := h.draws.Latest()
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, d, h.logger)
}

// DrawByID returns a stored draw.
func (h *Handler) DrawByID(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookupDraw(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d, h.logger)
}

// ExportDraw renders a draw as chat-ready text. The id "latest" selects the
// most recent draw.
func (h *Handler) ExportDraw(w http.ResponseWriter, r *http.Request) {
	d, ok := h.lookupDraw(w, r)
	if !ok {
		return
	}
	writeText(w, http.StatusOK, export.Text(d.Teams), h.logger)
}

func (h *Handler) lookupDraw(w http.ResponseWriter, r *http.Request) (domaindraws.Draw, bool) {
	id, ok := h.pathID(w, r)
	if !ok {
		return domaindraws.Draw{}, false
	}
	var (
		d   domaindraws.Draw
		err error
	)
	if id == latestID {
		d, err = h.draws.Latest()
	} else {
		d, err = h.draws.ByID(r.Context(), id)
	}
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return domaindraws.Draw{}, false
	}
	return d, true
}
