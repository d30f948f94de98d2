package api

import (
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// Repository combines the API client with a local content cache.
//
// It produces the flat entry list for papertrail.BuildTree and reads
// file content, avoiding repeated downloads of unchanged files.
type Repository struct {
	client *Client
	root   string
	cache  papertrail.Cache
}

// NewRepository creates a repository rooted at the given path of the
// remote repository. Downloaded content is cached in cacheDir.
func NewRepository(client *Client, root, cacheDir string) *Repository {
	return &Repository{
		client: client,
		root:   root,
		cache:  papertrail.NewFilesystemCache(cacheDir),
	}
}

// List returns a flat list of all entries below the repository root.
// Subdirectories are fetched concurrently. Use papertrail.BuildTree to
// recreate the directory structure.
func (r *Repository) List() ([]papertrail.Entry, error) {
	var mx sync.Mutex
	entries := make([]papertrail.Entry, 0)

	var group errgroup.Group
	var walk func(path string) error
	walk = func(path string) error {
		items, err := r.client.List(path)
		if err != nil {
			return err
		}

		mx.Lock()
		for _, item := range items {
			entries = append(entries, entry{item})
		}
		mx.Unlock()

		for _, item := range items {
			if item.IsDir() {
				p := item.Path
				group.Go(func() error {
					return walk(p)
				})
			}
		}
		return nil
	}

	group.Go(func() error {
		return walk(r.root)
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// ReadText returns the raw content for a file entry,
// from the cache if possible.
func (r *Repository) ReadText(e papertrail.Entry) (string, error) {
	if e.Type() != papertrail.FileType {
		return "", papertrail.NewValidationError("can only read content for file entries")
	}

	cached, err := r.cache.Get(e.Path())
	if err == nil {
		defer cached.Close()
		data, err := io.ReadAll(cached)
		if err == nil {
			return string(data), nil
		}
		logging.Warning("Failed to read cache entry %q: %v", e.Path(), err)
	}

	text, err := r.client.FetchText(e.DownloadURL())
	if err != nil {
		return "", err
	}

	err = r.cache.Put(e.Path(), strings.NewReader(text))
	if err != nil {
		// the cache is an optimization, carry on without it
		logging.Warning("Failed to cache %q: %v", e.Path(), err)
	}

	return text, nil
}
