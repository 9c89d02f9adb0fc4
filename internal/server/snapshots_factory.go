package server

import (
	"github.com/preston-bernstein/team-draw-service/internal/config"
	"github.com/preston-bernstein/team-draw-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.DrawConfig) snapshotComponents {
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.SnapshotDir),
		writer: snapshots.NewWriter(cfg.SnapshotDir, cfg.MaxSnapshots),
	}
}
