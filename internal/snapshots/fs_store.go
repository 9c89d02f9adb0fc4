package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	domaindraws "github.com/preston-bernstein/team-draw-service/internal/domain/draws"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadDraw(id string) (domaindraws.Draw, error)
	ListDrawIDs() ([]string, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDraw reads {basePath}/draws/{id}.json. Missing snapshots return an
// error satisfying errors.Is(err, os.ErrNotExist).
func (s *FSStore) LoadDraw(id string) (domaindraws.Draw, error) {
	if s == nil {
		return domaindraws.Draw{}, errors.New("snapshot store not configured")
	}
	if err := validateID(id); err != nil {
		return domaindraws.Draw{}, err
	}
	var payload domaindraws.Draw
	if err := s.decodeFile(DrawSnapshotPath(s.basePath, id), &payload); err != nil {
		return domaindraws.Draw{}, err
	}
	if payload.ID == "" {
		payload.ID = id
	}
	return payload, nil
}

// ListDrawIDs returns stored draw ids from the manifest, oldest first.
func (s *FSStore) ListDrawIDs() ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(manifestPath(s.basePath), DefaultMaxDraws)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}
	return m.Draws.IDs, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
