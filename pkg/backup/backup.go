// Package backup stores timestamped snapshots of the PATH variable as
// JSON files, so a bad edit can always be rolled back. The backup
// directory is an explicit parameter of the Store; there is no
// process-wide default to mutate.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/pathmaster/pkg/errors"
	"github.com/arthur-debert/pathmaster/pkg/logging"
)

const timestampLayout = "20060102150405"

// Snapshot is one PATH backup: the full PATH value at a point in time.
type Snapshot struct {
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
}

// Entries splits the snapshot's PATH value into directory entries.
func (s Snapshot) Entries() []string {
	if s.Path == "" {
		return nil
	}
	return filepath.SplitList(s.Path)
}

// Store manages snapshots inside one directory.
type Store struct {
	dir string
	now func() time.Time
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for snapshot names.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on the first Create call.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory snapshots are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Create snapshots the given PATH value and returns the snapshot file
// path. Rapid successive snapshots within one second get a counter
// suffix so none are overwritten.
func (s *Store) Create(pathValue string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "creating backup directory %s", s.dir)
	}

	stamp := s.now().Format(timestampLayout)
	snapshot := Snapshot{Timestamp: stamp, Path: pathValue}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrBackupCreate, "encoding snapshot")
	}

	file := filepath.Join(s.dir, fmt.Sprintf("backup_%s.json", stamp))
	for n := 1; ; n++ {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			break
		}
		file = filepath.Join(s.dir, fmt.Sprintf("backup_%s_%d.json", stamp, n))
	}

	if err := os.WriteFile(file, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrBackupCreate, "writing snapshot %s", file)
	}

	logger := logging.GetLogger("backup")
	logger.Debug().Str("file", file).Msg("PATH snapshot created")
	return file, nil
}

// List returns all snapshots ordered oldest to newest. A missing
// backup directory simply means no snapshots yet.
func (s *Store) List() ([]Snapshot, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrBackupRead, "reading backup directory %s", s.dir)
	}

	logger := logging.GetLogger("backup")
	var snapshots []Snapshot
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "backup_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrBackupRead, "reading snapshot %s", name)
		}
		var snapshot Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			logger.Warn().Str("file", name).Err(err).Msg("Skipping unreadable snapshot")
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp < snapshots[j].Timestamp
	})
	return snapshots, nil
}

// Latest returns the newest snapshot.
func (s *Store) Latest() (*Snapshot, error) {
	snapshots, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, errors.New(errors.ErrBackupNotFound, "no PATH backups found")
	}
	return &snapshots[len(snapshots)-1], nil
}

// Find returns the snapshot with the given timestamp.
func (s *Store) Find(timestamp string) (*Snapshot, error) {
	snapshots, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range snapshots {
		if snapshots[i].Timestamp == timestamp {
			return &snapshots[i], nil
		}
	}
	return nil, errors.Newf(errors.ErrBackupNotFound, "no PATH backup with timestamp %s", timestamp)
}
