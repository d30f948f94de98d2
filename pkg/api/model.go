package api

import (
	papertrail "github.com/Tolverne/papertrail2"
)

// Item types as used by the contents API.
const (
	itemFile = "file"
	itemDir  = "dir"
)

// Item is a single entry from the contents API.
type Item struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// IsDir reports whether the item is a directory.
func (i Item) IsDir() bool {
	return i.Type == itemDir
}

// entry adapts an Item to the papertrail.Entry interface.
type entry struct {
	item Item
}

func (e entry) Name() string {
	return e.item.Name
}

func (e entry) Path() string {
	return e.item.Path
}

func (e entry) Type() papertrail.EntryType {
	if e.item.IsDir() {
		return papertrail.DirType
	}
	return papertrail.FileType
}

func (e entry) DownloadURL() string {
	return e.item.DownloadURL
}
