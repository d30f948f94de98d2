package store

import (
	"encoding/json"
	"io"

	papertrail "github.com/Tolverne/papertrail2"
)

// SchemaVersion is the version tag written into export bundles.
const SchemaVersion = "1.0"

// Bundle is the export/import payload containing a full snapshot of a
// user's drawing records.
type Bundle struct {
	UserID    string            `json:"userId"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Canvases  map[string]Record `json:"canvases"`
}

// ExportAll creates a bundle with a copy of all records.
// The store is not modified.
func (s *Store) ExportAll() *Bundle {
	s.mx.Lock()
	defer s.mx.Unlock()

	canvases := make(map[string]Record, len(s.records))
	for k, rec := range s.records {
		canvases[k] = rec
	}

	return &Bundle{
		UserID:    s.identity,
		Timestamp: timestamp(),
		Version:   SchemaVersion,
		Canvases:  canvases,
	}
}

// Export writes a bundle of all records to the given writer and returns
// the number of exported records.
func (s *Store) Export(w io.Writer) (int, error) {
	b := s.ExportAll()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(b)
	if err != nil {
		return 0, papertrail.Wrap(err, "export failed")
	}

	return len(b.Canvases), nil
}

// Import merges the records from a bundle into the store.
//
// Existing keys are overwritten by imported records, new keys are added
// and records not mentioned in the bundle remain untouched. Returns the
// number of merged records.
//
// A bundle without a canvases field is rejected with a format error and
// leaves the store unmodified.
func (s *Store) Import(r io.Reader) (int, error) {
	var b Bundle
	err := json.NewDecoder(r).Decode(&b)
	if err != nil {
		return 0, papertrail.NewFormatError("failed to parse canvas data: %v", err)
	}

	if b.Canvases == nil {
		return 0, papertrail.NewFormatError("invalid canvas data format")
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	for k, rec := range b.Canvases {
		s.records[k] = rec
	}
	s.writeThrough()

	return len(b.Canvases), nil
}
