package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

func TestFileStoreRegistry(t *testing.T) {
	runRegistrySuite(t, func(t *testing.T) registry {
		s, err := NewFileStore(filepath.Join(t.TempDir(), "players.json"))
		require.NoError(t, err)
		return s
	})
}

func TestFileStorePersistsAcrossReloads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "players.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	added, err := s.AddPlayer(ctx, players.Player{Name: "Ana", Level: 7, Position: players.Defender})
	require.NoError(t, err)
	_, err = s.AddPlayer(ctx, players.Player{Name: "Bia", Level: 5, Position: players.Forward})
	require.NoError(t, err)
	require.NoError(t, s.DeletePlayer(ctx, added.ID))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	list, err := reloaded.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bia", list[0].Name)
	assert.Equal(t, "002", list[0].Code)
	assert.Equal(t, path, reloaded.Path())

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	list, err := s.ListPlayers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
