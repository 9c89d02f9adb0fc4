package config

// DrawConfig controls draw behaviour and persistence.
type DrawConfig struct {
	RefineMode   string
	MaxPlayers   int // players a draw is expected to place
	DefaultLevel int // level given to roster names missing from the registry
	SnapshotDir  string
	MaxSnapshots int
}

func loadDraw() DrawConfig {
	return DrawConfig{
		RefineMode:   envOrDefault(envRefineMode, defaultRefineMode),
		MaxPlayers:   rangedIntEnvOrDefault(envMaxPlayers, defaultMaxPlayers, 1, defaultMaxPlayers),
		DefaultLevel: rangedIntEnvOrDefault(envDefaultLevel, defaultLevel, minLevel, maxLevel),
		SnapshotDir:  envOrDefault(envSnapshotDir, defaultSnapshotDir),
		MaxSnapshots: intEnvOrDefault(envMaxSnapshots, defaultMaxSnapshots),
	}
}
