package players

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNameRequired    = errors.New("player name required")
	ErrLevelOutOfRange = fmt.Errorf("player level must be between %d and %d", MinLevel, MaxLevel)
	ErrInvalidPosition = errors.New("player position invalid")
)

// Validate checks the fields the balancer relies on.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Level < MinLevel || p.Level > MaxLevel {
		return fmt.Errorf("%w: got %d", ErrLevelOutOfRange, p.Level)
	}
	if !p.Position.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPosition, p.Position)
	}
	return nil
}

// NextCode returns the next sequential registry code, zero padded to three
// digits. Non-numeric codes are ignored.
func NextCode(existing []Player) string {
	highest := 0
	for _, p := range existing {
		n, err := strconv.Atoi(p.Code)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%03d", highest+1)
}

// Registry errors shared by every store implementation.
var (
	ErrNotFound      = errors.New("player not found")
	ErrDuplicateName = errors.New("player name already registered")
)
