package draws

import (
	"time"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
)

// Draw is a stored draw outcome together with the roster that produced it.
type Draw struct {
	ID         string           `json:"id"`
	CreatedAt  time.Time        `json:"createdAt"`
	RefineMode string           `json:"refineMode"`
	Teams      []teams.Team     `json:"teams"`
	Unassigned []players.Player `json:"unassigned"`
	Swaps      int              `json:"swaps"`
	Spread     int              `json:"spread"`
	Warnings   []string         `json:"warnings"`
	Roster     []players.Player `json:"roster"`
}

// Assigned counts players placed on a team.
func (d Draw) Assigned() int {
	n := 0
	for _, t := range d.Teams {
		n += len(t.Players)
	}
	return n
}

// Benched returns the unassigned players missing from Roster: sign-ups cut
// before balancing rather than overflow from the balancer.
func (d Draw) Benched() []players.Player {
	drawn := make(map[string]struct{}, len(d.Roster))
	for _, p := range d.Roster {
		drawn[p.ID] = struct{}{}
	}
	var out []players.Player
	for _, p := range d.Unassigned {
		if _, ok := drawn[p.ID]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Team returns the team with the given id.
func (d Draw) Team(id int) (teams.Team, bool) {
	for _, t := range d.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}
