package store

import (
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
)

// prepareNew fills the registry-owned fields of a new player.
func prepareNew(p players.Player, existing []players.Player) players.Player {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Code = players.NextCode(existing)
	p.Name = strings.TrimSpace(p.Name)
	p.FixedInTeam1 = false
	return p
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
