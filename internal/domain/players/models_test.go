package players

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Code", "code,omitempty"},
		{"Name", "name"},
		{"Position", "position"},
		{"Level", "level"},
		{"FixedInTeam1", "isFixedInTeam1,omitempty"},
		{"Goals", "goals"},
		{"RedCards", "redCards"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestParsePosition(t *testing.T) {
	cases := []struct {
		raw  string
		want Position
	}{
		{"DEFENDER", Defender},
		{"defender", Defender},
		{" Zagueiro ", Defender},
		{"meia", Midfielder},
		{"Midfielder", Midfielder},
		{"ATACANTE", Forward},
		{"fwd", Forward},
	}
	for _, tc := range cases {
		got, err := ParsePosition(tc.raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("expected %s for %q, got %s", tc.want, tc.raw, got)
		}
	}
	if _, err := ParsePosition("goalkeeper"); err == nil {
		t.Fatalf("expected error for unknown position")
	}
}

func TestPositionUnmarshalAcceptsAliases(t *testing.T) {
	var p Player
	if err := json.Unmarshal([]byte(`{"name":"Ana","position":"Zagueiro","level":7}`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Position != Defender {
		t.Fatalf("expected defender, got %s", p.Position)
	}
	if err := json.Unmarshal([]byte(`{"position":"keeper"}`), &p); err == nil {
		t.Fatalf("expected error for unknown position")
	}
}

func TestValidate(t *testing.T) {
	valid := Player{Name: "Ana", Level: 5, Position: Midfielder}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	tests := []struct {
		name   string
		player Player
		want   error
	}{
		{"missing name", Player{Name: " ", Level: 5, Position: Forward}, ErrNameRequired},
		{"level too low", Player{Name: "A", Level: 0, Position: Forward}, ErrLevelOutOfRange},
		{"level too high", Player{Name: "A", Level: 11, Position: Forward}, ErrLevelOutOfRange},
		{"bad position", Player{Name: "A", Level: 3, Position: "KEEPER"}, ErrInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.player.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNextCode(t *testing.T) {
	if got := NextCode(nil); got != "001" {
		t.Fatalf("expected 001 for empty registry, got %s", got)
	}
	existing := []Player{{Code: "004"}, {Code: "abc"}, {Code: "012"}, {Code: ""}}
	if got := NextCode(existing); got != "013" {
		t.Fatalf("expected 013, got %s", got)
	}
}
