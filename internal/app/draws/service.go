package draws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/team-draw-service/internal/balancer"
	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/logging"
	"github.com/preston-bernstein/team-draw-service/internal/metrics"
	"github.com/preston-bernstein/team-draw-service/internal/snapshots"
)

const historySize = 20

// Resolver finds registry players by code or name.
type Resolver interface {
	Resolve(ctx context.Context, token string) (players.Player, error)
}

// SnapshotWriter persists finished draws.
type SnapshotWriter interface {
	WriteDraw(d domaindraws.Draw) error
}

// Request describes a draw. Players takes precedence over Roster.
type Request struct {
	Roster    string           `json:"roster,omitempty"`
	Players   []players.Player `json:"players,omitempty"`
	Champions []string         `json:"champions,omitempty"`
	Seed      *uint64          `json:"seed,omitempty"`
}

// Config wires the draw service.
type Config struct {
	RefineMode   balancer.RefineMode
	MaxPlayers   int
	DefaultLevel int
	Resolver     Resolver
	Writer       SnapshotWriter
	Snapshots    snapshots.Store
	Recorder     *metrics.Recorder
	Logger       *slog.Logger
	Now          func() time.Time
}

// Service runs draws and remembers recent results.
type Service struct {
	mu           sync.RWMutex
	mode         balancer.RefineMode
	maxPlayers   int
	defaultLevel int
	resolver     Resolver
	writer       SnapshotWriter
	snapshots    snapshots.Store
	recorder     *metrics.Recorder
	logger       *slog.Logger
	now          func() time.Time

	latest  *domaindraws.Draw
	history []domaindraws.Draw
}

// NewService constructs a Service, filling unset fields with defaults.
func NewService(cfg Config) *Service {
	s := &Service{
		mode:         cfg.RefineMode,
		maxPlayers:   cfg.MaxPlayers,
		defaultLevel: cfg.DefaultLevel,
		resolver:     cfg.Resolver,
		writer:       cfg.Writer,
		snapshots:    cfg.Snapshots,
		recorder:     cfg.Recorder,
		logger:       cfg.Logger,
		now:          cfg.Now,
	}
	if s.mode == "" {
		s.mode = balancer.RefineAll
	}
	if s.maxPlayers <= 0 || s.maxPlayers > balancer.MaxAssigned {
		s.maxPlayers = balancer.MaxAssigned
	}
	if s.defaultLevel < players.MinLevel || s.defaultLevel > players.MaxLevel {
		s.defaultLevel = 5
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Draw resolves the request into a roster and balances it into teams.
func (s *Service) Draw(ctx context.Context, req Request) (domaindraws.Draw, error) {
	pool, benched, warnings, err := s.rosterFromRequest(ctx, req)
	if err != nil {
		s.recordFailure(err)
		return domaindraws.Draw{}, err
	}
	return s.run(ctx, pool, benched, warnings, req.Seed)
}

// Redraw balances the roster of the latest draw again with a fresh shuffle.
func (s *Service) Redraw(ctx context.Context) (domaindraws.Draw, error) {
	latest, err := s.Latest()
	if err != nil {
		return domaindraws.Draw{}, err
	}
	return s.run(ctx, slices.Clone(latest.Roster), latest.Benched(), nil, nil)
}

// Latest returns the most recent draw.
func (s *Service) Latest() (domaindraws.Draw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return domaindraws.Draw{}, ErrNoDraw
	}
	return *s.latest, nil
}

// ByID looks a draw up in memory, then in the snapshot store.
func (s *Service) ByID(ctx context.Context, id string) (domaindraws.Draw, error) {
	s.mu.RLock()
	for _, d := range s.history {
		if d.ID == id {
			s.mu.RUnlock()
			return d, nil
		}
	}
	s.mu.RUnlock()

	if s.snapshots == nil {
		return domaindraws.Draw{}, ErrDrawNotFound
	}
	d, err := s.snapshots.LoadDraw(id)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, snapshots.ErrInvalidID) {
			return domaindraws.Draw{}, ErrDrawNotFound
		}
		return domaindraws.Draw{}, fmt.Errorf("load draw %s: %w", id, err)
	}
	return d, nil
}

// DrawIDs lists known draw ids, newest first. Persisted snapshots are merged
// with draws still held in memory.
func (s *Service) DrawIDs(ctx context.Context) []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.history))
	for _, d := range s.history {
		ids = append(ids, d.ID)
	}
	s.mu.RUnlock()

	if s.snapshots != nil {
		stored, err := s.snapshots.ListDrawIDs()
		if err != nil {
			logging.Warn(logging.FromContext(ctx, s.logger), "listing draw snapshots failed", "error", err)
		} else {
			ids = append(stored, ids...)
		}
	}

	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if _, dup := seen[ids[i]]; dup {
			continue
		}
		seen[ids[i]] = struct{}{}
		out = append(out, ids[i])
	}
	return out
}

// RefineMode reports the refinement mode used for draws.
func (s *Service) RefineMode() balancer.RefineMode {
	return s.mode
}

// run balances pool. benched players were cut before the draw and are
// reported as unassigned ahead of any balancer overflow.
func (s *Service) run(ctx context.Context, pool, benched []players.Player, warnings []string, seed *uint64) (domaindraws.Draw, error) {
	opts := []balancer.Option{balancer.WithRefineMode(s.mode)}
	if seed != nil {
		opts = append(opts, balancer.WithSeed(*seed))
	}

	start := time.Now()
	res := balancer.New(opts...).Draw(pool)
	elapsed := time.Since(start)

	unassigned := append(slices.Clone(benched), res.Unassigned...)
	if unassigned == nil {
		unassigned = []players.Player{}
	}
	warnings = append(warnings, s.sizeWarnings(len(pool)+len(benched), len(unassigned), res)...)
	if warnings == nil {
		warnings = []string{}
	}

	d := domaindraws.Draw{
		ID:         uuid.NewString(),
		CreatedAt:  s.now().UTC(),
		RefineMode: string(s.mode),
		Teams:      res.Teams,
		Unassigned: unassigned,
		Swaps:      res.Swaps,
		Spread:     balancer.Spread(res.Teams),
		Warnings:   warnings,
		Roster:     pool,
	}

	s.recorder.RecordDraw(metrics.DrawObservation{
		RefineMode: d.RefineMode,
		Duration:   elapsed,
		Assigned:   d.Assigned(),
		Unassigned: len(d.Unassigned),
		Swaps:      d.Swaps,
		Spread:     d.Spread,
	})

	logger := logging.WithDraw(logging.FromContext(ctx, s.logger), d.ID)
	logging.Info(logger, "draw completed",
		slog.Int(logging.FieldCount, len(pool)),
		slog.Int(logging.FieldUnassigned, len(d.Unassigned)),
		slog.Int(logging.FieldSwaps, d.Swaps),
		slog.Int(logging.FieldSpread, d.Spread),
	)
	if len(d.Unassigned) > 0 {
		logging.Warn(logger, "players left without a team",
			slog.Int(logging.FieldUnassigned, len(d.Unassigned)),
		)
	}

	if s.writer != nil {
		if err := s.writer.WriteDraw(d); err != nil {
			logging.Error(logger, "failed to persist draw snapshot", err)
		}
	}

	s.remember(d)
	return d, nil
}

func (s *Service) sizeWarnings(n, unassigned int, res balancer.Result) []string {
	var out []string
	if len(res.Demoted) > 0 {
		out = append(out, fmt.Sprintf("%d champion(s) did not fit in %s and were drawn with the rest",
			len(res.Demoted), balancer.ChampionTeamName))
	}
	switch {
	case unassigned > 0:
		out = append(out, fmt.Sprintf("%d players for %d places: %d left without a team",
			n, balancer.MaxAssigned, unassigned))
	case n < s.maxPlayers:
		out = append(out, fmt.Sprintf("only %d of %d players: some teams are incomplete", n, s.maxPlayers))
	}
	return out
}

func (s *Service) remember(d domaindraws.Draw) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = &d
	s.history = append(s.history, d)
	if len(s.history) > historySize {
		s.history = slices.Clone(s.history[len(s.history)-historySize:])
	}
}

func (s *Service) recordFailure(err error) {
	reason := "error"
	switch {
	case errors.Is(err, ErrEmptyRoster):
		reason = "empty_roster"
	default:
		if _, ok := AsValidationError(err); ok {
			reason = "invalid"
		}
	}
	s.recorder.RecordDrawFailure(reason)
}
