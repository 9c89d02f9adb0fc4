package players

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Position is the closed set of field positions a player can be classified as.
type Position string

const (
	Defender   Position = "DEFENDER"
	Midfielder Position = "MIDFIELDER"
	Forward    Position = "FORWARD"
)

// Positions lists every valid position in display order.
var Positions = []Position{Defender, Midfielder, Forward}

// aliases accepts short forms and the Portuguese labels common in pasted rosters.
var aliases = map[string]Position{
	"defender":   Defender,
	"def":        Defender,
	"zagueiro":   Defender,
	"midfielder": Midfielder,
	"mid":        Midfielder,
	"meia":       Midfielder,
	"forward":    Forward,
	"fwd":        Forward,
	"atacante":   Forward,
}

// ParsePosition resolves a position label case-insensitively.
func ParsePosition(raw string) (Position, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if pos, ok := aliases[key]; ok {
		return pos, nil
	}
	return "", fmt.Errorf("unknown position %q", raw)
}

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case Defender, Midfielder, Forward:
		return true
	}
	return false
}

// Label returns the human-readable position name.
func (p Position) Label() string {
	switch p {
	case Defender:
		return "Defender"
	case Midfielder:
		return "Midfielder"
	case Forward:
		return "Forward"
	default:
		return string(p)
	}
}

// UnmarshalJSON accepts canonical values and aliases.
func (p *Position) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*p = ""
		return nil
	}
	pos, err := ParsePosition(raw)
	if err != nil {
		return err
	}
	*p = pos
	return nil
}
