package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"setpiece-service/internal/domain/takers"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadTakers(date string) (*takers.Document, error)
	LoadLatest() (*takers.Document, string, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadTakers reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/takers/{date}.json holding the document.
func (s *FSStore) LoadTakers(date string) (*takers.Document, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if date == "" {
		return nil, errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kindTakers), fmt.Sprintf("%s.json", date))
	doc := takers.NewDocument()
	if err := decodeFile(path, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadLatest loads the most recent snapshot listed in the manifest and
// returns it along with its date.
func (s *FSStore) LoadLatest() (*takers.Document, string, error) {
	if s == nil {
		return nil, "", errors.New("snapshot store not configured")
	}
	m, err := readManifest(filepath.Join(s.basePath, "manifest.json"), 0)
	if err != nil {
		return nil, "", err
	}
	if len(m.Takers.Dates) == 0 {
		return nil, "", errors.New("no snapshots recorded")
	}
	// Manifest dates are kept sorted ascending.
	date := m.Takers.Dates[len(m.Takers.Dates)-1]
	doc, err := s.LoadTakers(date)
	if err != nil {
		return nil, "", err
	}
	return doc, date, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
