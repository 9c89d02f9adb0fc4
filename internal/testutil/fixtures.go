package testutil

import (
	"fmt"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// SamplePlayer returns a valid player fixture.
func SamplePlayer(id, name string, pos players.Position, level int) players.Player {
	return players.Player{
		ID:       id,
		Name:     name,
		Position: pos,
		Level:    level,
	}
}

// SampleRoster returns n valid players with ids p00.., codes 001.., levels
// cycling 1..10 and every fourth player a defender.
func SampleRoster(n int) []players.Player {
	out := make([]players.Player, 0, n)
	for i := 0; i < n; i++ {
		pos := players.Midfielder
		switch {
		case i%4 == 0:
			pos = players.Defender
		case i%4 == 3:
			pos = players.Forward
		}
		p := SamplePlayer(fmt.Sprintf("p%02d", i), fmt.Sprintf("Player %02d", i), pos, i%10+1)
		p.Code = fmt.Sprintf("%03d", i+1)
		out = append(out, p)
	}
	return out
}
