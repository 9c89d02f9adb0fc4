package players

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/logging"
)

// Store defines the contract for persisting and retrieving players.
type Store interface {
	ListPlayers(ctx context.Context) ([]players.Player, error)
	GetPlayer(ctx context.Context, id string) (players.Player, error)
	FindByCode(ctx context.Context, code string) (players.Player, error)
	FindByName(ctx context.Context, name string) (players.Player, error)
	AddPlayer(ctx context.Context, p players.Player) (players.Player, error)
	UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// Service coordinates registry operations using a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Players returns the registry ordered by name.
func (s *Service) Players(ctx context.Context) ([]players.Player, error) {
	items, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}

// PlayerByID returns a single player.
func (s *Service) PlayerByID(ctx context.Context, id string) (players.Player, error) {
	return s.store.GetPlayer(ctx, id)
}

// Resolve finds a player by registry code first, then by name.
func (s *Service) Resolve(ctx context.Context, token string) (players.Player, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return players.Player{}, players.ErrNotFound
	}
	p, err := s.store.FindByCode(ctx, token)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, players.ErrNotFound) {
		return players.Player{}, err
	}
	return s.store.FindByName(ctx, token)
}

// Create validates and registers a new player.
func (s *Service) Create(ctx context.Context, p players.Player) (players.Player, error) {
	if err := p.Validate(); err != nil {
		return players.Player{}, err
	}
	p.ID = ""
	created, err := s.store.AddPlayer(ctx, p)
	if err != nil {
		return players.Player{}, err
	}
	logging.Info(s.logger, "player registered",
		slog.String(logging.FieldPlayerID, created.ID),
		slog.String(logging.FieldPlayerCode, created.Code),
	)
	return created, nil
}

// Update validates and replaces an existing player.
func (s *Service) Update(ctx context.Context, id string, p players.Player) (players.Player, error) {
	p.ID = id
	if err := p.Validate(); err != nil {
		return players.Player{}, err
	}
	updated, err := s.store.UpdatePlayer(ctx, p)
	if err != nil {
		return players.Player{}, err
	}
	logging.Info(s.logger, "player updated", slog.String(logging.FieldPlayerID, id))
	return updated, nil
}

// Delete removes a player from the registry.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		return err
	}
	logging.Info(s.logger, "player deleted", slog.String(logging.FieldPlayerID, id))
	return nil
}
