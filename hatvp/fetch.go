package hatvp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"

	"github.com/tlecomte/transparence"
)

// ErrNotFound reports a document the service does not (or no longer)
// publishes. Callers treat it as a per-document condition and move on.
var ErrNotFound = errors.New("document not published")

const (
	defaultUserAgent = "transparence (+https://github.com/tlecomte/transparence)"
	// indexMaxAge is how long a cached index copy is trusted; the feed is
	// regenerated daily.
	indexMaxAge = 24 * time.Hour
)

// Client downloads the index and declaration documents with a polite
// request rate and a local byte cache, so batch runs can be interrupted and
// resumed without hammering the service.
type Client struct {
	HTTP         *http.Client
	IndexURL     string
	DocumentBase string
	UserAgent    string

	limiter  *rate.Limiter
	cacheDir string
}

// NewClient returns a client caching downloads under cacheDir (a temporary
// directory when empty). Requests are capped at two per second.
func NewClient(cacheDir string) *Client {
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "transparence")
	}
	return &Client{
		HTTP:         &http.Client{Timeout: 30 * time.Second},
		IndexURL:     DefaultIndexURL,
		DocumentBase: DefaultDocumentBase,
		UserAgent:    defaultUserAgent,
		limiter:      rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		cacheDir:     cacheDir,
	}
}

// Index returns the parsed declaration index. A cached copy younger than a
// day is reused unless refresh is set.
func (c *Client) Index(ctx context.Context, refresh bool) ([]IndexEntry, error) {
	path := filepath.Join(c.cacheDir, "liste.csv")
	if !refresh {
		if raw, ok := c.fresh(path, indexMaxAge); ok {
			return ParseIndex(bytes.NewReader(raw))
		}
	}
	raw, err := c.get(ctx, c.IndexURL)
	if err != nil {
		return nil, err
	}
	c.store(path, raw)
	return ParseIndex(bytes.NewReader(raw))
}

// Document fetches one declaration document. Cached documents never expire:
// a published declaration is immutable, an amendment is a new document.
func (c *Client) Document(ctx context.Context, entry IndexEntry) (transparence.RawDocument, error) {
	url := entry.DocumentURL(c.DocumentBase)
	if url == "" {
		return transparence.RawDocument{}, fmt.Errorf("index entry for %s %s names no document file", entry.GivenName, entry.FamilyName)
	}
	doc := transparence.RawDocument{Locator: url, Category: entry.Category}
	path := filepath.Join(c.cacheDir, "dossiers", filepath.Base(url))
	if raw, err := os.ReadFile(path); err == nil {
		doc.Body = raw
		return doc, nil
	}
	raw, err := c.get(ctx, url)
	if err != nil {
		return transparence.RawDocument{}, err
	}
	c.store(path, raw)
	doc.Body = raw
	return doc, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("GET %s %s", url, resp.Status)
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusGone, http.StatusForbidden:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	default:
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// fresh returns the cached bytes when the file is younger than maxAge.
func (c *Client) fresh(path string, maxAge time.Duration) ([]byte, bool) {
	fi, err := os.Stat(path)
	if err != nil || time.Since(fi.ModTime()) > maxAge {
		return nil, false
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return raw, true
}

// store writes into the cache. Cache write failures are logged and ignored;
// the download already succeeded.
func (c *Client) store(path string, raw []byte) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("cache write err (ignored): %v", err)
		return
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
}
