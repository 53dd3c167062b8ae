package fetch

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/maseology/mmio"
)

// DefaultURL is the OpenTopography global DEM endpoint.
const DefaultURL = "https://portal.opentopography.org/API/globaldem"

// Cache resolves raster requests against a local directory, fetching from
// the remote elevation service only on a miss. Entries are keyed by the
// request parameters and never evicted.
type Cache struct {
	Dir    string       // cache directory, created on first miss
	URL    string       // elevation service endpoint
	APIKey string       // service authorization, sent when non-empty
	Client *http.Client // transport; http.DefaultClient when nil

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCache builds a cache rooted at dir (default "DEMData"), reading the
// service key from the OPENTOPOGRAPHY_API_KEY environment variable.
func NewCache(dir string) *Cache {
	if dir == "" {
		dir = "DEMData"
	}
	return &Cache{
		Dir:    dir,
		URL:    DefaultURL,
		APIKey: os.Getenv("OPENTOPOGRAPHY_API_KEY"),
	}
}

// Path returns where a request's raster lives (or would live) in the cache.
func (c *Cache) Path(r Request) string { return filepath.Join(c.Dir, r.Key()) }

// keylock serializes callers per cache key so concurrent resolves of the
// same request perform a single transfer.
func (c *Cache) keylock(k string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks == nil {
		c.locks = make(map[string]*sync.Mutex)
	}
	if _, ok := c.locks[k]; !ok {
		c.locks[k] = &sync.Mutex{}
	}
	return c.locks[k]
}

// Resolve returns the cached raster path for the request, fetching it from
// the elevation service first if absent. A hit performs no network access;
// a miss writes exactly one new file under the cache directory, staged to a
// temporary path and renamed into place on completion.
func (c *Cache) Resolve(ctx context.Context, r Request) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	kl := c.keylock(r.Key())
	kl.Lock()
	defer kl.Unlock()

	fp := c.Path(r)
	if _, ok := mmio.FileExists(fp); ok {
		return fp, nil
	}

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return "", &StorageError{Path: c.Dir, Err: err}
	}
	if err := c.download(ctx, r, fp); err != nil {
		return "", err
	}
	return fp, nil
}

func (c *Cache) download(ctx context.Context, r Request, fp string) error {
	u := c.requestURL(r)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransferError{URL: u, Err: err}
	}
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return &TransferError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &TransferError{URL: u, Status: resp.StatusCode}
	}

	tmp, err := os.CreateTemp(c.Dir, r.Key()+".part")
	if err != nil {
		return &StorageError{Path: c.Dir, Err: err}
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Path: tmp.Name(), Err: err}
	}
	if err := os.Rename(tmp.Name(), fp); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Path: fp, Err: err}
	}
	return nil
}

func (c *Cache) requestURL(r Request) string {
	ff := func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
	v := url.Values{}
	v.Set("demtype", string(r.DEM))
	v.Set("south", ff(r.Box.South))
	v.Set("north", ff(r.Box.North))
	v.Set("west", ff(r.Box.West))
	v.Set("east", ff(r.Box.East))
	v.Set("outputFormat", string(r.Fmt))
	if c.APIKey != "" {
		v.Set("API_Key", c.APIKey)
	}
	base := c.URL
	if base == "" {
		base = DefaultURL
	}
	return base + "?" + v.Encode()
}
