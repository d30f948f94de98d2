package papertrail

import "io"

// Cache is a simple key-value store for downloaded quiz content.
//
// It is used to avoid repeated downloads of the same file from the
// content source. Cache keys are the repository paths of the files.
type Cache interface {
	// Get retrieves the cache entry with the given key.
	// Returns a NotFound error if no entry exists.
	Get(key string) (io.ReadCloser, error)
	// Put adds an entry to the cache, replacing an existing one.
	Put(key string, r io.Reader) error
	// Delete removes an entry from the cache.
	Delete(key string) error
}
