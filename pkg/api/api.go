package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	papertrail "github.com/Tolverne/papertrail2"
	"github.com/Tolverne/papertrail2/internal/logging"
)

// DefaultBaseURL points to the contents endpoint of the quiz repository.
const DefaultBaseURL = "https://api.github.com/repos/tolverne/papertrail2/contents"

// Client accesses the remote quiz repository through the GitHub
// contents API.
type Client struct {
	base   string
	client *http.Client
}

// NewClient sets up a client for the given contents base URL.
func NewClient(base string) *Client {
	return &Client{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{},
	}
}

// List retrieves the entries of a single directory.
// The path is relative to the repository root, an empty path lists the
// root directory.
func (c *Client) List(path string) ([]Item, error) {
	url := c.base
	if path != "" {
		url = url + "/" + path
	}

	res, err := c.client.Get(url)
	if err != nil {
		return nil, papertrail.Wrap(err, "list %q failed", path)
	}
	defer res.Body.Close()

	err = papertrail.ExpectOK(res, "list request failed")
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0)
	err = json.NewDecoder(res.Body).Decode(&items)
	if err != nil {
		return nil, papertrail.Wrap(err, "unexpected response for %q", path)
	}

	logging.Debug("List request for %q returned %d items", path, len(items))

	return items, nil
}

// FetchText downloads the raw content of a file.
func (c *Client) FetchText(downloadURL string) (string, error) {
	if downloadURL == "" {
		return "", papertrail.NewNotFound("no download URL")
	}

	res, err := c.client.Get(downloadURL)
	if err != nil {
		return "", papertrail.Wrap(err, "fetch %q failed", downloadURL)
	}
	defer res.Body.Close()

	err = papertrail.ExpectOK(res, "fetch request failed")
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", papertrail.Wrap(err, "read %q failed", downloadURL)
	}

	return string(data), nil
}
