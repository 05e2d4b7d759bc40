package knowledge

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/medibot/core"
)

// DecodeSnapshot reads a JSON array of condition records from r. The
// records are returned as-is; validation happens during Build so that a
// malformed entry skips rather than aborts.
func DecodeSnapshot(r io.Reader) ([]*core.ConditionRecord, error) {
	var records []*core.ConditionRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding condition snapshot: %w", err)
	}
	return records, nil
}

// LoadSnapshot reads a JSON condition snapshot from a file.
func LoadSnapshot(path string) ([]*core.ConditionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSnapshot(f)
}
