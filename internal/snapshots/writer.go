package snapshots

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
)

// DefaultMaxDraws bounds how many draw snapshots are kept on disk.
const DefaultMaxDraws = 50

// ErrInvalidID is returned for ids that are not draw UUIDs.
var ErrInvalidID = errors.New("invalid draw id")

// Writer persists draw snapshots and the manifest, pruning the oldest draws.
type Writer struct {
	mu       sync.Mutex
	basePath string
	maxDraws int
}

// NewWriter constructs a writer rooted at basePath keeping at most maxDraws.
func NewWriter(basePath string, maxDraws int) *Writer {
	if maxDraws <= 0 {
		maxDraws = DefaultMaxDraws
	}
	return &Writer{
		basePath: basePath,
		maxDraws: maxDraws,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDraw writes {base}/draws/{id}.json and records it in the manifest.
func (w *Writer) WriteDraw(d domaindraws.Draw) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if err := validateID(d.ID); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	target := DrawSnapshotPath(w.basePath, d.ID)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := writeJSONAtomic(target, d); err != nil {
		return fmt.Errorf("write draw snapshot: %w", err)
	}
	return w.updateManifest(d.ID)
}

func (w *Writer) updateManifest(id string) error {
	m, _ := readManifest(manifestPath(w.basePath), w.maxDraws)

	ids := make([]string, 0, len(m.Draws.IDs)+1)
	for _, existing := range m.Draws.IDs {
		if existing != id {
			ids = append(ids, existing)
		}
	}
	ids = append(ids, id)

	m.Draws.IDs = w.prune(ids)
	m.Draws.LastWritten = time.Now().UTC()
	m.Retention.MaxDraws = w.maxDraws
	return writeManifest(w.basePath, m)
}

func (w *Writer) prune(ids []string) []string {
	if len(ids) <= w.maxDraws {
		return ids
	}
	drop := len(ids) - w.maxDraws
	for _, id := range ids[:drop] {
		_ = os.Remove(DrawSnapshotPath(w.basePath, id))
	}
	return ids[drop:]
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty", ErrInvalidID)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
