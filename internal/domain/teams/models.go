package teams

import "github.com/preston-bernstein/team-draw-service/internal/domain/players"

// Capacity is the number of players in a full team.
const Capacity = 5

// Team is one drawn side. TotalLevel always equals the sum of member levels.
type Team struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Players    []players.Player `json:"players"`
	TotalLevel int              `json:"totalLevel"`
}

// Add appends a player and keeps TotalLevel in step.
func (t *Team) Add(p players.Player) {
	t.Players = append(t.Players, p)
	t.TotalLevel += p.Level
}

// Size returns the current number of players.
func (t Team) Size() int {
	return len(t.Players)
}

// Full reports whether the team reached Capacity.
func (t Team) Full() bool {
	return len(t.Players) >= Capacity
}

// HasFixed reports whether any member is pinned to team 1.
func (t Team) HasFixed() bool {
	for _, p := range t.Players {
		if p.FixedInTeam1 {
			return true
		}
	}
	return false
}

// CountPosition returns how many members play the given position.
func (t Team) CountPosition(pos players.Position) int {
	n := 0
	for _, p := range t.Players {
		if p.Position == pos {
			n++
		}
	}
	return n
}

// Sum recomputes the member level total from scratch.
func (t Team) Sum() int {
	total := 0
	for _, p := range t.Players {
		total += p.Level
	}
	return total
}
