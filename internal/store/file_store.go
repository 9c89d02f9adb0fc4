package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// FileStore is a MemoryStore persisted to a single JSON file after every
// mutation.
type FileStore struct {
	mu   sync.Mutex
	path string
	mem  *MemoryStore
}

// NewFileStore loads the registry at path. A missing file yields an empty
// registry.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, mem: NewMemoryStore()}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	var items []players.Player
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decoding registry %s: %w", path, err)
		}
	}
	s.mem.SetPlayers(items)
	return s, nil
}

// Path exposes the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) ListPlayers(ctx context.Context) ([]players.Player, error) {
	return s.mem.ListPlayers(ctx)
}

func (s *FileStore) GetPlayer(ctx context.Context, id string) (players.Player, error) {
	return s.mem.GetPlayer(ctx, id)
}

func (s *FileStore) FindByCode(ctx context.Context, code string) (players.Player, error) {
	return s.mem.FindByCode(ctx, code)
}

func (s *FileStore) FindByName(ctx context.Context, name string) (players.Player, error) {
	return s.mem.FindByName(ctx, name)
}

func (s *FileStore) AddPlayer(ctx context.Context, p players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.mem.AddPlayer(ctx, p)
	if err != nil {
		return players.Player{}, err
	}
	return added, s.persist(ctx)
}

func (s *FileStore) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.mem.UpdatePlayer(ctx, p)
	if err != nil {
		return players.Player{}, err
	}
	return updated, s.persist(ctx)
}

func (s *FileStore) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mem.DeletePlayer(ctx, id); err != nil {
		return err
	}
	return s.persist(ctx)
}

// persist writes the registry via a temp file and rename.
func (s *FileStore) persist(ctx context.Context) error {
	items, _ := s.mem.ListPlayers(ctx)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing registry %s: %w", s.path, err)
	}
	return nil
}
