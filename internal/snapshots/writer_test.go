package snapshots

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	d := simpleDraw()
	writeDraw(t, w, d)
	requireSnapshotExists(t, w, d.ID)

	m, err := readManifest(filepath.Join(dir, "manifest.json"), 10)
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	assertIDsEqual(t, m.Draws.IDs, []string{d.ID})
	if m.Draws.LastWritten.IsZero() {
		t.Fatalf("expected lastWritten to be set")
	}
	if m.Retention.MaxDraws != 10 {
		t.Fatalf("expected retention 10, got %d", m.Retention.MaxDraws)
	}
	if _, err := os.Stat(DrawSnapshotPath(dir, d.ID) + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}
}

func TestWriterPrunesOldestDraws(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 2)

	first, second, third := simpleDraw(), simpleDraw(), simpleDraw()
	writeDraw(t, w, first)
	writeDraw(t, w, second)
	writeDraw(t, w, third)

	if _, err := os.Stat(DrawSnapshotPath(dir, first.ID)); err == nil {
		t.Fatalf("expected oldest draw to be pruned")
	}
	requireSnapshotExists(t, w, second.ID)
	requireSnapshotExists(t, w, third.ID)

	ids, err := NewFSStore(dir).ListDrawIDs()
	if err != nil {
		t.Fatalf("expected ids, got %v", err)
	}
	assertIDsEqual(t, ids, []string{second.ID, third.ID})
}

func TestWriterRewriteMovesDrawToNewest(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 5)

	a, b := simpleDraw(), simpleDraw()
	writeDraw(t, w, a)
	writeDraw(t, w, b)
	writeDraw(t, w, a)

	ids, err := NewFSStore(dir).ListDrawIDs()
	if err != nil {
		t.Fatalf("expected ids, got %v", err)
	}
	assertIDsEqual(t, ids, []string{b.ID, a.ID})
}

func TestWriterHandlesNilAndInvalidID(t *testing.T) {
	var w *Writer
	if err := w.WriteDraw(simpleDraw()); err == nil {
		t.Fatalf("expected error for nil writer")
	}

	w = NewWriter(t.TempDir(), 1)
	d := simpleDraw()
	d.ID = ""
	if err := w.WriteDraw(d); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for empty id, got %v", err)
	}
	d.ID = "../escape"
	if err := w.WriteDraw(d); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID for traversal id, got %v", err)
	}
}

func TestNewWriterDefaultsRetention(t *testing.T) {
	w := NewWriter(t.TempDir(), 0)
	if w.maxDraws != DefaultMaxDraws {
		t.Fatalf("expected retention to default when non-positive provided, got %d", w.maxDraws)
	}
}

func TestBasePathExposesRoot(t *testing.T) {
	base := t.TempDir()
	w := NewWriter(base, 1)
	if w.BasePath() != base {
		t.Fatalf("expected base path %s, got %s", base, w.BasePath())
	}
	var nilWriter *Writer
	if nilWriter.BasePath() != "" {
		t.Fatalf("expected empty base path for nil writer")
	}
}
