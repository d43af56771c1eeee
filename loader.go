package finapex

import (
	"fmt"
	"os"
	"path/filepath"
)

// SnapshotFile is the file name of the persisted snapshot inside a profile
// directory. One profile holds exactly one serialized snapshot.
const SnapshotFile = "snapshot.json"

// SnapshotPath returns the snapshot file path for a profile directory.
func SnapshotPath(profile string) string {
	return filepath.Join(profile, SnapshotFile)
}

// LoadSnapshot opens and decodes the snapshot of a profile directory. The
// error wraps fs.ErrNotExist when the profile has never been saved; callers
// start from NewSnapshot in that case.
func LoadSnapshot(profile string) (*Snapshot, error) {
	path := SnapshotPath(profile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", path, err)
	}
	return s, nil
}

// SaveSnapshot encodes the snapshot into its profile directory, creating the
// directory if needed.
func SaveSnapshot(profile string, s *Snapshot) error {
	path := SnapshotPath(profile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create profile directory for %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening snapshot file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeSnapshot(f, s)
}

// FilePersister persists committed snapshots into a profile directory.
type FilePersister struct {
	Profile string
}

// Save implements Persister.
func (p FilePersister) Save(s *Snapshot) error {
	return SaveSnapshot(p.Profile, s)
}
