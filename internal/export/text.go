// Package export renders drawn teams for sharing in chat apps.
package export

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
)

// Header opens every exported message.
const Header = "⚽ *TEAMS DRAWN* ⚽"

// Text formats non-empty teams as a chat-ready message.
func Text(ts []teams.Team) string {
	filled := lo.Filter(ts, func(t teams.Team, _ int) bool { return t.Size() > 0 })
	blocks := lo.Map(filled, func(t teams.Team, _ int) string { return teamBlock(t) })

	var b strings.Builder
	b.WriteString(Header)
	if len(blocks) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(blocks, "\n\n"))
	}
	b.WriteString("\n")
	return b.String()
}

func teamBlock(t teams.Team) string {
	strength := "(Incomplete team)"
	if t.Full() {
		strength = fmt.Sprintf("(Total strength: %d)", t.TotalLevel)
	}
	lines := []string{fmt.Sprintf("*%s* %s", t.Name, strength)}
	for _, p := range t.Players {
		lines = append(lines, fmt.Sprintf("• %s (%s)", p.Name, p.Position.Label()))
	}
	return strings.Join(lines, "\n")
}
