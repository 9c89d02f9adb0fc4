package snapshots

import (
	"fmt"
	"path/filepath"
)

const drawsDir = "draws"

// DrawSnapshotPath builds the path to a draw snapshot.
func DrawSnapshotPath(basePath, id string) string {
	return filepath.Join(basePath, drawsDir, fmt.Sprintf("%s.json", id))
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
