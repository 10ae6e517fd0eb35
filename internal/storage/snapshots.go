package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wttj/ic-metrics/internal/app"
)

// SnapshotFileName is the per-developer snapshot file.
const SnapshotFileName = "contributions.json"

// Store persists developer snapshots as json documents under a data
// directory, one subdirectory per developer.
type Store struct {
	dataDir string
}

var _ app.SnapshotStore = &Store{}

// NewStore creates new Store instance.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Save writes the snapshot, replacing any previous one for the developer.
func (s *Store) Save(snapshot *app.Snapshot) error {
	dir := filepath.Join(s.dataDir, snapshot.Developer)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating developer directory: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing snapshot: %w", err)
	}

	path := filepath.Join(dir, SnapshotFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// Load reads the persisted snapshot for a developer. Returns
// app.DataNotFoundError when no snapshot exists, which is distinct from a
// collected all-zero snapshot.
func (s *Store) Load(username string) (*app.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(username))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &app.DataNotFoundError{Username: username}
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot app.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unserializing snapshot: %w", err)
	}

	return &snapshot, nil
}

// Exists reports whether a snapshot has been collected for the developer.
func (s *Store) Exists(username string) bool {
	_, err := os.Stat(s.snapshotPath(username))
	return err == nil
}

// Users lists developers with a collected snapshot, sorted by name.
func (s *Store) Users() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading data directory: %w", err)
	}

	var users []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if s.Exists(entry.Name()) {
			users = append(users, entry.Name())
		}
	}
	sort.Strings(users)

	return users, nil
}

// Dir returns the developer's storage directory.
func (s *Store) Dir(username string) string {
	return filepath.Join(s.dataDir, username)
}

// WriteFile stores an artifact (analysis, report, export) next to the
// developer's snapshot and returns its full path.
func (s *Store) WriteFile(username, name string, data []byte) (string, error) {
	dir := s.Dir(username)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating developer directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}

	return path, nil
}

func (s *Store) snapshotPath(username string) string {
	return filepath.Join(s.dataDir, username, SnapshotFileName)
}
