package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/felixgeelhaar/meetdesk/internal/shared/infrastructure/security"
)

// SnapshotFile stores a whole collection of records as one JSON array.
type SnapshotFile[R any] struct {
	path string
}

// NewSnapshotFile creates a snapshot file at path.
func NewSnapshotFile[R any](path string) *SnapshotFile[R] {
	return &SnapshotFile[R]{path: path}
}

// Path returns the file location.
func (f *SnapshotFile[R]) Path() string {
	return f.path
}

// Load reads every record. A missing or empty file is an empty collection.
func (f *SnapshotFile[R]) Load() ([]R, error) {
	data, err := security.SafeReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.path, err)
	}
	return records, nil
}

// Save replaces the file with the given records.
func (f *SnapshotFile[R]) Save(records []R) error {
	if records == nil {
		records = []R{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}
	return security.ReplaceFile(f.path, data)
}
