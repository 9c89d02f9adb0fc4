package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
)

func simpleDraw() domaindraws.Draw {
	return domaindraws.Draw{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Teams: []teams.Team{
			{ID: 1, Name: "Team 1", Players: []players.Player{{ID: "p1", Name: "Ana", Level: 6}}, TotalLevel: 6},
		},
		Unassigned: []players.Player{},
		Warnings:   []string{},
	}
}

func writeDraw(t *testing.T, w *Writer, d domaindraws.Draw) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for draw %s", d.ID)
	}
	if err := w.WriteDraw(d); err != nil {
		t.Fatalf("failed to write draw %s: %v", d.ID, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, id string) {
	t.Helper()
	if _, err := os.Stat(DrawSnapshotPath(w.BasePath(), id)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", id, err)
	}
}

func assertIDsEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ids mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
