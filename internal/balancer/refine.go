package balancer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
)

// RefineMode controls the positional refinement pass.
type RefineMode string

const (
	// RefineAll repairs every full team that lacks a defender.
	RefineAll RefineMode = "all"
	// RefineSingle stops after the first swap.
	RefineSingle RefineMode = "single"
)

// ParseRefineMode resolves a mode name; empty input yields RefineAll.
func ParseRefineMode(raw string) (RefineMode, error) {
	switch RefineMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", RefineAll:
		return RefineAll, nil
	case RefineSingle:
		return RefineSingle, nil
	}
	return "", fmt.Errorf("unknown refine mode %q", raw)
}

func refine(squad []teams.Team, mode RefineMode) int {
	swaps := 0
	for i := range squad {
		if !refinable(squad[i]) || squad[i].CountPosition(players.Defender) > 0 {
			continue
		}
		if !borrowDefender(squad, i) {
			continue
		}
		swaps++
		if mode == RefineSingle {
			return swaps
		}
	}
	return swaps
}

// refinable teams are full and carry no fixed players.
func refinable(t teams.Team) bool {
	return t.Size() == teams.Capacity && !t.HasFixed()
}

// borrowDefender trades a spare defender from a donor for a same-level
// non-defender of the receiver. Team totals are unchanged.
func borrowDefender(squad []teams.Team, recv int) bool {
	receiver := &squad[recv]
	for d := range squad {
		if d == recv || !refinable(squad[d]) || squad[d].CountPosition(players.Defender) < 2 {
			continue
		}
		donor := &squad[d]
		for di, dp := range donor.Players {
			if !dp.IsDefender() {
				continue
			}
			ri := slices.IndexFunc(receiver.Players, func(p players.Player) bool {
				return p.Level == dp.Level && !p.IsDefender()
			})
			if ri < 0 {
				continue
			}
			receiver.Players[ri], donor.Players[di] = dp, receiver.Players[ri]
			return true
		}
	}
	return false
}
