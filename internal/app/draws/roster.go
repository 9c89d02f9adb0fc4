package draws

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/team-draw-service/internal/balancer"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/roster"
)

// rosterFromRequest resolves the request into the players to draw, the
// sign-ups cut for arriving after the first balancer.MaxAssigned, and any
// warnings raised along the way.
func (s *Service) rosterFromRequest(ctx context.Context, req Request) (pool, benched []players.Player, warnings []string, err error) {
	switch {
	case len(req.Players) > 0:
		pool, err = explicitPlayers(req.Players)
	case strings.TrimSpace(req.Roster) != "":
		pool, warnings, err = s.resolveNames(ctx, roster.Parse(req.Roster, 0).Names)
		pool, benched = signUpOrderCut(pool)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	if len(pool) == 0 {
		return nil, nil, nil, ErrEmptyRoster
	}
	if err := markChampions(pool, benched, req.Champions); err != nil {
		return nil, nil, nil, err
	}
	return pool, benched, warnings, nil
}

// signUpOrderCut keeps the first balancer.MaxAssigned sign-ups. Later names
// sit out regardless of level.
func signUpOrderCut(pool []players.Player) (kept, benched []players.Player) {
	if len(pool) <= balancer.MaxAssigned {
		return pool, nil
	}
	return pool[:balancer.MaxAssigned:balancer.MaxAssigned], slices.Clone(pool[balancer.MaxAssigned:])
}

func explicitPlayers(in []players.Player) ([]players.Player, error) {
	out := make([]players.Player, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for i, p := range in {
		if err := p.Validate(); err != nil {
			return nil, invalid(fmt.Sprintf("players[%d]", i), "%v", err)
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if _, dup := seen[p.ID]; dup {
			return nil, invalid(fmt.Sprintf("players[%d]", i), "duplicate player id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) resolveNames(ctx context.Context, names []string) ([]players.Player, []string, error) {
	var (
		out      = make([]players.Player, 0, len(names))
		seen     = make(map[string]struct{}, len(names))
		adHoc    = make(map[string]struct{})
		unknown  []string
		warnings []string
	)
	for _, name := range names {
		p, err := s.lookup(ctx, name)
		switch {
		case errors.Is(err, players.ErrNotFound):
			key := strings.ToLower(name)
			if _, dup := adHoc[key]; dup {
				warnings = append(warnings, fmt.Sprintf("%s is listed more than once; kept the first entry", name))
				continue
			}
			adHoc[key] = struct{}{}
			p = players.Player{
				ID:       uuid.NewString(),
				Name:     name,
				Position: players.Midfielder,
				Level:    s.defaultLevel,
			}
			unknown = append(unknown, name)
		case err != nil:
			return nil, nil, fmt.Errorf("resolve %q: %w", name, err)
		}
		if _, dup := seen[p.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("%s is listed more than once; kept the first entry", p.Name))
			continue
		}
		seen[p.ID] = struct{}{}
		p.FixedInTeam1 = false
		out = append(out, p)
	}
	if len(unknown) > 0 {
		warnings = append(warnings, fmt.Sprintf("%d name(s) not in the registry drawn at level %d as %s: %s",
			len(unknown), s.defaultLevel, players.Midfielder.Label(), strings.Join(unknown, ", ")))
	}
	return out, warnings, nil
}

func (s *Service) lookup(ctx context.Context, name string) (players.Player, error) {
	if s.resolver == nil {
		return players.Player{}, players.ErrNotFound
	}
	return s.resolver.Resolve(ctx, name)
}

// markChampions flags the roster entries named by tokens. A token matches a
// player id, registry code or case-insensitive name; only the first matching
// entry is flagged.
func markChampions(pool, benched []players.Player, tokens []string) error {
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		found := false
		for i := range pool {
			p := &pool[i]
			if matchesToken(*p, token) {
				p.FixedInTeam1 = true
				found = true
				break
			}
		}
		if !found {
			if slices.ContainsFunc(benched, func(p players.Player) bool { return matchesToken(p, token) }) {
				return invalid("champions", "%q signed up after the first %d and sits out", token, balancer.MaxAssigned)
			}
			return invalid("champions", "%q is not in the roster", token)
		}
	}
	return nil
}

func matchesToken(p players.Player, token string) bool {
	return p.ID == token || (p.Code != "" && p.Code == token) || strings.EqualFold(p.Name, token)
}
