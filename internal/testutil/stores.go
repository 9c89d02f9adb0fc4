package testutil

import (
	"context"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// ErrStore fails every registry call with Err.
type ErrStore struct {
	Err error
}

func (s ErrStore) ListPlayers(context.Context) ([]players.Player, error) {
	return nil, s.Err
}

func (s ErrStore) GetPlayer(context.Context, string) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrStore) FindByCode(context.Context, string) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrStore) FindByName(context.Context, string) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrStore) AddPlayer(context.Context, players.Player) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrStore) UpdatePlayer(context.Context, players.Player) (players.Player, error) {
	return players.Player{}, s.Err
}

func (s ErrStore) DeletePlayer(context.Context, string) error {
	return s.Err
}
