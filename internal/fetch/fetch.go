// Package fetch downloads newline-delimited word lists over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/slotword/internal/wordlist"
)

const userAgent = "slotword"

// Result describes a completed download.
type Result struct {
	Path  string
	Words int
	Bytes int64
}

// Client downloads word lists. The zero value uses a client with a one
// minute timeout.
type Client struct {
	HTTP *http.Client
}

// Download fetches url into dest. The body is written to a temporary file
// and checked with the lang filter before it replaces dest, so a failed or
// empty download never leaves a partial word list behind.
func (c Client) Download(ctx context.Context, url, dest, lang string) (Result, error) {
	if url == "" {
		return Result{}, errors.New("url is required")
	}
	if dest == "" {
		return Result{}, errors.New("destination is required")
	}
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, errors.Wrap(err, "failed to create word list dir")
	}

	resp, err := c.get(ctx, url)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Result{}, errors.Newf("unexpected status fetching %s: %s", url, resp.Status)
	}

	tmpFile, err := os.CreateTemp(dir, "wordlist-*.txt")
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to create temp word list")
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	n, err := io.Copy(tmpFile, resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to download word list")
	}
	if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
		return Result{}, errors.Wrap(err, "failed to rewind word list")
	}
	words, err := wordlist.Parse(tmpFile, wordlist.FilterForLang(lang))
	if err != nil {
		return Result{}, errors.Wrapf(err, "downloaded %s is not a usable word list", url)
	}
	if err := tmpFile.Close(); err != nil {
		return Result{}, errors.Wrap(err, "failed to close word list")
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return Result{}, errors.Wrap(err, "failed to move word list into place")
	}
	return Result{Path: dest, Words: len(words), Bytes: n}, nil
}

func (c Client) get(ctx context.Context, url string) (*http.Response, error) {
	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	return resp, nil
}
