package snapshots

import (
	"encoding/json"
	"os"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Retention   Retention `json:"retention"`
	Draws       DrawsMeta `json:"draws"`
}

type Retention struct {
	MaxDraws int `json:"maxDraws"`
}

// DrawsMeta lists stored draw ids, oldest first.
type DrawsMeta struct {
	IDs         []string  `json:"ids"`
	LastWritten time.Time `json:"lastWritten"`
}

func defaultManifest(maxDraws int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			MaxDraws: maxDraws,
		},
		Draws: DrawsMeta{
			IDs: []string{},
		},
	}
}

func readManifest(path string, maxDraws int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(maxDraws), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(maxDraws), err
	}
	if m.Draws.IDs == nil {
		m.Draws.IDs = []string{}
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	return writeJSONAtomic(manifestPath(basePath), m)
}

func writeJSONAtomic(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
