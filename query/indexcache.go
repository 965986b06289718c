package query

import (
	"time"

	"github.com/bluele/gcache"
)

/*
CachedIndex wraps an [Index] with a bounded, TTL-expiring cache of
per-term hit sets, the same gcache-backed adaptation of the teacher's
Registration/Registrant cache used by the root ontology package's
URICache, retargeted here to hot search terms.
*/
type CachedIndex struct {
	inner Index
	gc    gcache.Cache
}

/*
NewCachedIndex wraps inner with an LRU cache of size entries (0
selects 2048) and ttl expiration (0 selects 30s, matching the
comparatively high query rate of repeated terms within a single
interactive search session).
*/
func NewCachedIndex(inner Index, size int, ttl time.Duration) *CachedIndex {
	if size <= 0 {
		size = 2048
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedIndex{
		inner: inner,
		gc:    gcache.New(size).LRU().Expiration(ttl).Build(),
	}
}

/*
Lookup satisfies [Index], serving from cache on hit and delegating to
the wrapped index on miss.
*/
func (c *CachedIndex) Lookup(term string) ([]RawHit, error) {
	if v, err := c.gc.Get(term); err == nil {
		if hits, ok := v.([]RawHit); ok {
			return hits, nil
		}
	}
	hits, err := c.inner.Lookup(term)
	if err != nil {
		return nil, err
	}
	_ = c.gc.Set(term, hits)
	return hits, nil
}
