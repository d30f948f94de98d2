package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/fs"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// Dimensions are the pixel dimensions of a surface at save time.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Record is one persisted drawing snapshot.
type Record struct {
	SVG        string     `json:"svg"`
	Timestamp  string     `json:"timestamp"`
	Dimensions Dimensions `json:"dimensions"`
}

// file is the on-disk layout of a store.
type file struct {
	Canvases  map[string]Record `json:"canvases"`
	Timestamp string            `json:"timestamp"`
}

// Store is a keyed, write-through store for drawing snapshots.
//
// A store belongs to one user identity: two identities never share
// records. At construction, the store is loaded from its backing file.
// Every mutation is immediately written back. Persistence failures are
// logged and never returned, the in-memory state is the source of truth
// until the next successful write.
type Store struct {
	mx       sync.Mutex
	path     string
	identity string
	records  map[string]Record
}

// New creates a store for the given user identity, backed by a file in
// the given directory. Existing records are loaded.
func New(dir, identity string) *Store {
	s := &Store{
		path:     filepath.Join(dir, "canvasData_"+identity+".json"),
		identity: identity,
		records:  make(map[string]Record),
	}
	s.load()
	return s
}

// Identity returns the user identity this store belongs to.
func (s *Store) Identity() string {
	return s.identity
}

// Save stores a snapshot for the given key, replacing an existing one.
func (s *Store) Save(key papertrail.Key, svg string, width, height int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.records[key.String()] = Record{
		SVG:       svg,
		Timestamp: timestamp(),
		Dimensions: Dimensions{
			Width:  width,
			Height: height,
		},
	}
	s.writeThrough()

	logging.Debug("Saved drawing %v for user %v", key, s.identity)
}

// Load retrieves the snapshot for the given key.
func (s *Store) Load(key papertrail.Key) (string, bool) {
	s.mx.Lock()
	defer s.mx.Unlock()

	rec, ok := s.records[key.String()]
	if !ok {
		return "", false
	}
	return rec.SVG, true
}

// Delete removes the record for the given key.
func (s *Store) Delete(key papertrail.Key) {
	s.mx.Lock()
	defer s.mx.Unlock()

	delete(s.records, key.String())
	s.writeThrough()
}

// Clear removes all records.
func (s *Store) Clear() {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.records = make(map[string]Record)
	s.writeThrough()
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.records)
}

// Keys returns the storage keys of all records, sorted.
func (s *Store) Keys() []string {
	s.mx.Lock()
	defer s.mx.Unlock()

	keys := make([]string, 0, len(s.records))
	for k := range s.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// load reads the backing file. A missing file is normal for a fresh
// store, read or parse errors leave the store empty.
func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warning("Failed to read drawing store %q: %v", s.path, err)
		}
		return
	}

	var f file
	err = json.Unmarshal(data, &f)
	if err != nil {
		logging.Warning("Failed to parse drawing store %q: %v", s.path, err)
		return
	}

	if f.Canvases != nil {
		s.records = f.Canvases
	}
}

// writeThrough persists the current records.
// Errors are logged, the in-memory state stays authoritative.
// Callers must hold the mutex.
func (s *Store) writeThrough() {
	f := file{
		Canvases:  s.records,
		Timestamp: timestamp(),
	}

	data, err := json.Marshal(f)
	if err != nil {
		logging.Warning("Failed to serialize drawing store: %v", err)
		return
	}

	err = fs.WriteAtomic(s.path, data)
	if err != nil {
		logging.Warning("Failed to write drawing store %q: %v", s.path, err)
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
