package players

// Level bounds for player ratings.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Player represents a registered athlete as consumed by the team balancer.
type Player struct {
	ID           string   `json:"id"`
	Code         string   `json:"code,omitempty"`
	Name         string   `json:"name"`
	Position     Position `json:"position"`
	Level        int      `json:"level"`
	FixedInTeam1 bool     `json:"isFixedInTeam1,omitempty"`
	Goals        int      `json:"goals"`
	RedCards     int      `json:"redCards"`
}

// IsDefender reports whether the player plays in defence.
func (p Player) IsDefender() bool {
	return p.Position == Defender
}
