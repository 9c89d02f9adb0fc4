package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
	"github.com/preston-bernstein/team-draw-service/internal/domain/players"
	"github.com/preston-bernstein/team-draw-service/internal/domain/teams"
	"github.com/preston-bernstein/team-draw-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// SampleDraw returns a draw with a fresh id and one single-player team.
func SampleDraw() domaindraws.Draw {
	p := SampleRoster(1)[0]
	return domaindraws.Draw{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Teams:     []teams.Team{{ID: 1, Name: "Team 1", Players: []players.Player{p}, TotalLevel: p.Level}},
	}
}

// WriteSnapshot persists a sample draw and returns it.
func WriteSnapshot(t *testing.T, w *snapshots.Writer) domaindraws.Draw {
	t.Helper()
	d := SampleDraw()
	if err := writeSnapshotPayload(w, d); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", d.ID, err)
	}
	return d
}

func writeSnapshotPayload(w *snapshots.Writer, d domaindraws.Draw) error {
	return w.WriteDraw(d)
}

// SnapshotPath returns the expected file path for a draw snapshot.
func SnapshotPath(w *snapshots.Writer, id string) string {
	return snapshots.DrawSnapshotPath(w.BasePath(), id)
}
