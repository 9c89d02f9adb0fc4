package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// MemoryStore keeps a thread-safe player registry in memory.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]players.Player
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]players.Player),
	}
}

// ListPlayers returns a copy of the registry ordered by code.
func (s *MemoryStore) ListPlayers(ctx context.Context) ([]players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(), nil
}

// GetPlayer retrieves a player by ID.
func (s *MemoryStore) GetPlayer(ctx context.Context, id string) (players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return players.Player{}, players.ErrNotFound
	}
	return p, nil
}

// FindByCode retrieves a player by registry code.
func (s *MemoryStore) FindByCode(ctx context.Context, code string) (players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.players {
		if p.Code == code {
			return p, nil
		}
	}
	return players.Player{}, players.ErrNotFound
}

// FindByName retrieves a player by case-insensitive name.
func (s *MemoryStore) FindByName(ctx context.Context, name string) (players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.byName(name); ok {
		return p, nil
	}
	return players.Player{}, players.ErrNotFound
}

// AddPlayer registers a new player, assigning its ID and code.
func (s *MemoryStore) AddPlayer(ctx context.Context, p players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName(p.Name); ok {
		return players.Player{}, players.ErrDuplicateName
	}
	p = prepareNew(p, s.list())
	s.players[p.ID] = p
	return p, nil
}

// UpdatePlayer replaces an existing player, keeping its code.
func (s *MemoryStore) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.players[p.ID]
	if !ok {
		return players.Player{}, players.ErrNotFound
	}
	if other, ok := s.byName(p.Name); ok && other.ID != p.ID {
		return players.Player{}, players.ErrDuplicateName
	}
	p.Code = current.Code
	p.FixedInTeam1 = false
	s.players[p.ID] = p
	return p, nil
}

// DeletePlayer removes a player by ID.
func (s *MemoryStore) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return players.ErrNotFound
	}
	delete(s.players, id)
	return nil
}

// SetPlayers replaces the registry with a new snapshot.
func (s *MemoryStore) SetPlayers(items []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make(map[string]players.Player, len(items))
	for _, p := range items {
		s.players[p.ID] = p
	}
}

func (s *MemoryStore) list() []players.Player {
	result := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Code != result[j].Code {
			return result[i].Code < result[j].Code
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (s *MemoryStore) byName(name string) (players.Player, bool) {
	for _, p := range s.players {
		if sameName(p.Name, name) {
			return p, true
		}
	}
	return players.Player{}, false
}
