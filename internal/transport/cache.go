package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// cacheDoer serves repeated GET requests from a kv store. Useful for
// repeated collection runs against the same endpoints within the ttl.
// Only successful responses are cached.
type cacheDoer struct {
	doer  HTTPDoer
	store KVStore
	ttl   time.Duration
	l     logrus.FieldLogger
}

// NewCacheDoer creates a caching HTTPDoer backed by store.
func NewCacheDoer(doer HTTPDoer, store KVStore, ttl time.Duration, l logrus.FieldLogger) HTTPDoer {
	return &cacheDoer{
		doer:  doer,
		store: store,
		ttl:   ttl,
		l:     l,
	}
}

type cacheEntry struct {
	Created int64  `json:"created"`
	Body    []byte `json:"body"`
}

// Do executes http request, serving a fresh cached response when available.
func (d *cacheDoer) Do(r *http.Request) (*http.Response, error) {
	if r.Method != http.MethodGet {
		return d.doer.Do(r)
	}

	key := []byte(r.URL.String())
	if data, err := d.store.ReadKey(key); err != nil {
		d.l.Warnf("reading response cache: %v", err)
	} else if data != nil {
		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			d.l.Warnf("unserializing cached response: %v", err)
		} else if time.Unix(entry.Created, 0).Add(d.ttl).After(time.Now()) {
			return cachedResponse(r, entry.Body), nil
		}
	}

	resp, err := d.doer.Do(r)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body for cache: %w", err)
	}

	entry := cacheEntry{
		Created: time.Now().Unix(),
		Body:    body,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("serializing response for cache: %w", err)
	}
	if err := d.store.UpdateKey(key, data); err != nil {
		d.l.Warnf("writing response cache: %v", err)
	}

	return cachedResponse(r, body), nil
}

func cachedResponse(r *http.Request, body []byte) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(body)),
		Header:     make(http.Header),
		Request:    r,
	}
}
