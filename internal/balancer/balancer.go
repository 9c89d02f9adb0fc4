// Package balancer splits a roster into four teams of five with balanced total
// levels. Fixed players are seeded into team 1, the remaining pool is shuffled,
// ranked by level and assigned greedily to the least-loaded open team, and a
// refinement pass swaps same-level players so full teams field a defender.
package balancer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
)

const (
	// NumTeams is the number of teams every draw produces.
	NumTeams = 4
	// MaxAssigned is the most players a draw can place.
	MaxAssigned = NumTeams * teams.Capacity

	ChampionTeamName = "Team 1 (Champions)"
)

// Result is the full outcome of a draw.
type Result struct {
	Teams []teams.Team
	// Unassigned holds pool players left over once every team is full.
	Unassigned []players.Player
	// Swaps counts positional refinement swaps applied.
	Swaps int
	// Demoted holds fixed players that did not fit in team 1 and were drawn
	// from the pool instead.
	Demoted []players.Player
}

// Balancer runs draws. A Balancer built with WithSeed or a non-concurrent
// WithSource must not be shared between goroutines.
type Balancer struct {
	src  Source
	mode RefineMode
}

// Option configures a Balancer.
type Option func(*Balancer)

// WithSource sets the randomness used by the pool shuffle.
func WithSource(src Source) Option {
	return func(b *Balancer) {
		if src != nil {
			b.src = src
		}
	}
}

// WithSeed makes the shuffle reproducible.
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// WithRefineMode selects how many deficient teams refinement repairs.
func WithRefineMode(mode RefineMode) Option {
	return func(b *Balancer) {
		if mode != "" {
			b.mode = mode
		}
	}
}

// New constructs a Balancer. Without options it shuffles with the global
// random source and repairs every deficient team.
func New(opts ...Option) *Balancer {
	b := &Balancer{
		src:  globalSource{},
		mode: RefineAll,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mode reports the configured refinement mode.
func (b *Balancer) Mode() RefineMode {
	return b.mode
}

// Balance draws teams with default settings and returns the four teams.
func Balance(input []players.Player) []teams.Team {
	return New().Draw(input).Teams
}

// Draw partitions input into four teams. The caller's slice is never modified.
func (b *Balancer) Draw(input []players.Player) Result {
	squad := newSquad()

	fixed := lo.Filter(input, func(p players.Player, _ int) bool { return p.FixedInTeam1 })
	pool := lo.Reject(input, func(p players.Player, _ int) bool { return p.FixedInTeam1 })

	var demoted []players.Player
	if len(fixed) > teams.Capacity {
		for _, p := range fixed[teams.Capacity:] {
			p.FixedInTeam1 = false
			demoted = append(demoted, p)
			pool = append(pool, p)
		}
		fixed = fixed[:teams.Capacity]
	}

	if len(fixed) > 0 {
		squad[0].Name = ChampionTeamName
		for _, p := range fixed {
			squad[0].Add(p)
		}
	}

	b.shuffle(pool)
	slices.SortStableFunc(pool, func(a, c players.Player) int {
		return cmp.Compare(c.Level, a.Level)
	})

	unassigned := distribute(squad, pool)
	swaps := refine(squad, b.mode)

	return Result{
		Teams:      squad,
		Unassigned: unassigned,
		Swaps:      swaps,
		Demoted:    demoted,
	}
}

// TeamName returns the default label for a team id.
func TeamName(id int) string {
	return fmt.Sprintf("Team %d", id)
}

func newSquad() []teams.Team {
	squad := make([]teams.Team, NumTeams)
	for i := range squad {
		squad[i] = teams.Team{
			ID:      i + 1,
			Name:    TeamName(i + 1),
			Players: make([]players.Player, 0, teams.Capacity),
		}
	}
	return squad
}

// distribute assigns pool players in order and returns whatever did not fit.
func distribute(squad []teams.Team, pool []players.Player) []players.Player {
	for i, p := range pool {
		idx := pickTeam(squad)
		if idx < 0 {
			return slices.Clone(pool[i:])
		}
		squad[idx].Add(p)
	}
	return nil
}

// pickTeam selects the open team with the lowest total, then the fewest
// players, then the lowest id. It returns -1 when every team is full.
func pickTeam(squad []teams.Team) int {
	best := -1
	for i := range squad {
		t := squad[i]
		if t.Full() {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := squad[best]
		if t.TotalLevel < cur.TotalLevel ||
			(t.TotalLevel == cur.TotalLevel && t.Size() < cur.Size()) {
			best = i
		}
	}
	return best
}

// Spread returns the gap between the strongest and weakest non-empty team.
func Spread(ts []teams.Team) int {
	filled := lo.Filter(ts, func(t teams.Team, _ int) bool { return t.Size() > 0 })
	if len(filled) < 2 {
		return 0
	}
	totals := lo.Map(filled, func(t teams.Team, _ int) int { return t.TotalLevel })
	return lo.Max(totals) - lo.Min(totals)
}
