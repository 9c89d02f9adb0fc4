package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

type registry interface {
	ListPlayers(ctx context.Context) ([]players.Player, error)
	GetPlayer(ctx context.Context, id string) (players.Player, error)
	FindByCode(ctx context.Context, code string) (players.Player, error)
	FindByName(ctx context.Context, name string) (players.Player, error)
	AddPlayer(ctx context.Context, p players.Player) (players.Player, error)
	UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// runRegistrySuite exercises the behaviour every registry backend shares.
func runRegistrySuite(t *testing.T, newStore func(t *testing.T) registry) {
	ctx := context.Background()

	t.Run("add assigns id and sequential code", func(t *testing.T) {
		s := newStore(t)
		ana, err := s.AddPlayer(ctx, players.Player{Name: " Ana ", Level: 7, Position: players.Defender})
		require.NoError(t, err)
		bia, err := s.AddPlayer(ctx, players.Player{Name: "Bia", Level: 4, Position: players.Forward, FixedInTeam1: true})
		require.NoError(t, err)

		assert.NotEmpty(t, ana.ID)
		assert.Equal(t, "Ana", ana.Name)
		assert.Equal(t, "001", ana.Code)
		assert.Equal(t, "002", bia.Code)
		assert.False(t, bia.FixedInTeam1)

		list, err := s.ListPlayers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "001", list[0].Code)
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddPlayer(ctx, players.Player{Name: "Carla", Level: 5, Position: players.Midfielder})
		require.NoError(t, err)
		_, err = s.AddPlayer(ctx, players.Player{Name: "carla", Level: 6, Position: players.Midfielder})
		assert.True(t, errors.Is(err, players.ErrDuplicateName), "got %v", err)
	})

	t.Run("lookups", func(t *testing.T) {
		s := newStore(t)
		added, err := s.AddPlayer(ctx, players.Player{Name: "Duda", Level: 8, Position: players.Forward})
		require.NoError(t, err)

		byID, err := s.GetPlayer(ctx, added.ID)
		require.NoError(t, err)
		assert.Equal(t, added, byID)

		byCode, err := s.FindByCode(ctx, added.Code)
		require.NoError(t, err)
		assert.Equal(t, added.ID, byCode.ID)

		byName, err := s.FindByName(ctx, "DUDA")
		require.NoError(t, err)
		assert.Equal(t, added.ID, byName.ID)

		_, err = s.GetPlayer(ctx, "missing")
		assert.ErrorIs(t, err, players.ErrNotFound)
		_, err = s.FindByCode(ctx, "999")
		assert.ErrorIs(t, err, players.ErrNotFound)
		_, err = s.FindByName(ctx, "nobody")
		assert.ErrorIs(t, err, players.ErrNotFound)
	})

	t.Run("update keeps code", func(t *testing.T) {
		s := newStore(t)
		added, err := s.AddPlayer(ctx, players.Player{Name: "Eva", Level: 3, Position: players.Midfielder})
		require.NoError(t, err)

		added.Code = "bogus"
		added.Level = 9
		added.Goals = 2
		updated, err := s.UpdatePlayer(ctx, added)
		require.NoError(t, err)
		assert.Equal(t, "001", updated.Code)
		assert.Equal(t, 9, updated.Level)

		got, err := s.GetPlayer(ctx, added.ID)
		require.NoError(t, err)
		assert.Equal(t, 9, got.Level)
		assert.Equal(t, 2, got.Goals)

		_, err = s.UpdatePlayer(ctx, players.Player{ID: "missing", Name: "X", Level: 1, Position: players.Forward})
		assert.ErrorIs(t, err, players.ErrNotFound)
	})

	t.Run("update rejects taking another name", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddPlayer(ctx, players.Player{Name: "Fabi", Level: 3, Position: players.Midfielder})
		require.NoError(t, err)
		gabi, err := s.AddPlayer(ctx, players.Player{Name: "Gabi", Level: 3, Position: players.Midfielder})
		require.NoError(t, err)

		gabi.Name = "FABI"
		_, err = s.UpdatePlayer(ctx, gabi)
		assert.ErrorIs(t, err, players.ErrDuplicateName)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		added, err := s.AddPlayer(ctx, players.Player{Name: "Hana", Level: 2, Position: players.Defender})
		require.NoError(t, err)

		require.NoError(t, s.DeletePlayer(ctx, added.ID))
		_, err = s.GetPlayer(ctx, added.ID)
		assert.ErrorIs(t, err, players.ErrNotFound)
		assert.ErrorIs(t, s.DeletePlayer(ctx, added.ID), players.ErrNotFound)

		next, err := s.AddPlayer(ctx, players.Player{Name: "Iris", Level: 2, Position: players.Defender})
		require.NoError(t, err)
		assert.Equal(t, "001", next.Code)
	})
}
