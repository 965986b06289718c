package ontology

import (
	"time"

	"github.com/bluele/gcache"
)

/*
cache.go adapts the teacher's Registration/Registrant TTL cache
pattern (grounded in other_examples/manifests/cs3org-reva/go.mod,
which pulls in bluele/gcache for exactly this kind of bounded lookup
cache) into a URI→entity front for a [Registry]. It exists to absorb
repeated URI lookups against a [PersistedRegistry], where a miss in the
in-memory maps costs a leveldb round trip.
*/

const (
	defaultCacheSize = 4096
	defaultCacheTTL  = 5 * time.Minute
)

/*
URICache is a bounded, TTL-expiring front for URI→entity lookups. It
holds no ownership over the entities it caches; eviction only forces a
future call to re-resolve against the registry.
*/
type URICache struct {
	gc gcache.Cache
}

/*
NewURICache returns a URICache with room for size entries (0 selects
[defaultCacheSize]) and the given per-entry TTL (0 selects
[defaultCacheTTL]).
*/
func NewURICache(size int, ttl time.Duration) *URICache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	gc := gcache.New(size).LRU().Expiration(ttl).Build()
	return &URICache{gc: gc}
}

/*
Get returns the cached value for uri, if present and unexpired.
*/
func (c *URICache) Get(uri string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, err := c.gc.Get(uri)
	if err != nil {
		return nil, false
	}
	return v, true
}

/*
Set stores entity under uri, evicting the least-recently-used entry if
the cache is at capacity.
*/
func (c *URICache) Set(uri string, entity any) {
	if c == nil {
		return
	}
	_ = c.gc.Set(uri, entity)
}

/*
Remove evicts uri from the cache, if present.
*/
func (c *URICache) Remove(uri string) bool {
	if c == nil {
		return false
	}
	return c.gc.Remove(uri)
}

/*
Len reports the number of entries currently cached.
*/
func (c *URICache) Len() int {
	if c == nil {
		return 0
	}
	return c.gc.Len(true)
}
