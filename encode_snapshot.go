package finapex

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeSnapshot writes the snapshot to w as one canonical JSON object
// followed by a newline. The encoding is the persisted state layout and the
// backup export format: they are byte-for-byte the same shape.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads one snapshot from r. There is no schema version field;
// any shape change is a breaking change for existing saved data.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot decode snapshot: %w", err)
	}
	return &s, nil
}
