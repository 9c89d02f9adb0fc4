package testutil

import (
	"log/slog"

	appplayers "github.com/preston-bernstein/team-draw-service/internal/app/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/store"
)

// NewMemoryRegistry returns an in-memory registry preloaded with ps.
func NewMemoryRegistry(ps []players.Player) *store.MemoryStore {
	ms := store.NewMemoryStore()
	if len(ps) > 0 {
		ms.SetPlayers(ps)
	}
	return ms
}

// NewPlayersService builds a players service backed by an in-memory registry.
func NewPlayersService(ps []players.Player, logger *slog.Logger) *appplayers.Service {
	return appplayers.NewService(NewMemoryRegistry(ps), logger)
}
