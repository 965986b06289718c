package ontology

import (
	"strconv"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
)

/*
registry_persist.go implements the lazy, read-only persisted registry
form described in spec.md §4.B: an opaque key-value table, addressed as
`<uri>#<predicate>` → value, that materializes schema entities on
demand. Grounded on `github.com/syndtr/goleveldb`, the embedded
immutable key-value store named in the retrieval pack
(other_examples/manifests/perkeep-perkeep/go.mod) as the nearest real
analog to the original's gvdb.

Recognized keys, per spec.md §4.B: id, name, super-classes, domain,
range, max-cardinality, inverse-functional, fulltext-indexed,
domain-indexes, prefix.
*/

const (
	keyID                = "id"
	keyName              = "name"
	keySuperClasses      = "super-classes"
	keyDomain            = "domain"
	keyRange             = "range"
	keyMaxCardinality    = "max-cardinality"
	keyInverseFunctional = "inverse-functional"
	keyFulltextIndexed   = "fulltext-indexed"
	keyDomainIndexes     = "domain-indexes"
	keyPrefix            = "prefix"
)

/*
PersistedRegistry wraps a [Registry] with a leveldb-backed overflow:
lookups that miss the in-memory maps fall through to a bounded
[URICache] and, on a cache miss too, to the key-value table, which
materializes the entity on demand (spec.md §4.B). A materialized entity
is cached by URI in the URICache rather than added to the embedded
Registry's own maps, so repeated lookups against a large persisted
table are bounded by the cache's LRU/TTL eviction instead of growing
the process's memory without limit for the life of the daemon.
*/
type PersistedRegistry struct {
	*Registry
	db    *leveldb.DB
	cache *URICache
}

/*
OpenPersistedRegistry opens the leveldb database at path and returns a
PersistedRegistry backed by it. The on-disk table is never written to
by lookups; see [DumpRegistry] for producing one.
*/
func OpenPersistedRegistry(path string) (*PersistedRegistry, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &PersistedRegistry{Registry: NewRegistry(), db: db, cache: NewURICache(0, 0)}, nil
}

/*
Close releases the underlying leveldb handle.
*/
func (pr *PersistedRegistry) Close() error {
	if pr == nil || pr.db == nil {
		return nil
	}
	return pr.db.Close()
}

func (pr *PersistedRegistry) get(uri, predicate string) (string, bool) {
	v, err := pr.db.Get([]byte(uri+"#"+predicate), nil)
	if err != nil {
		return "", false
	}
	return string(v), true
}

/*
ClassByURI resolves uri against the in-memory map first, then the
[URICache], then falls back to materializing a Class from the
persisted table and caching it.
*/
func (pr *PersistedRegistry) ClassByURI(uri string) *Class {
	if c := pr.Registry.ClassByURI(uri); c != nil {
		return c
	}
	if v, ok := pr.cache.Get(uri); ok {
		c, _ := v.(*Class)
		return c
	}
	name, ok := pr.get(uri, keyName)
	if !ok {
		return nil
	}
	c := &Class{}
	c.SetURI(uri)
	if name != "" {
		c.name = name
	}
	if idStr, ok := pr.get(uri, keyID); ok {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			c.SetID(id)
		}
	}
	c.registry = pr.Registry
	pr.cache.Set(uri, c)
	if supers, ok := pr.get(uri, keySuperClasses); ok {
		for _, superURI := range splitList(supers) {
			if super := pr.ClassByURI(superURI); super != nil {
				c.AddSuperClass(super)
			}
		}
	}
	return c
}

/*
PropertyByURI resolves uri against the in-memory map first, then the
[URICache], then falls back to materializing a Property from the
persisted table and caching it.
*/
func (pr *PersistedRegistry) PropertyByURI(uri string) *Property {
	if p := pr.Registry.PropertyByURI(uri); p != nil {
		return p
	}
	if v, ok := pr.cache.Get(uri); ok {
		p, _ := v.(*Property)
		return p
	}
	name, ok := pr.get(uri, keyName)
	if !ok {
		return nil
	}
	p := &Property{}
	p.SetURI(uri)
	if name != "" {
		p.name = name
	}
	if idStr, ok := pr.get(uri, keyID); ok {
		if id, err := strconv.ParseUint(idStr, 10, 64); err == nil {
			p.SetID(id)
		}
	}
	if domainURI, ok := pr.get(uri, keyDomain); ok {
		p.SetDomain(pr.ClassByURI(domainURI))
	}
	if rangeURI, ok := pr.get(uri, keyRange); ok {
		p.SetRange(pr.ClassByURI(rangeURI))
	}
	if cardStr, ok := pr.get(uri, keyMaxCardinality); ok {
		if card, err := strconv.Atoi(cardStr); err == nil {
			p.SetMultipleValues(card != 1)
		}
	}
	if v, ok := pr.get(uri, keyInverseFunctional); ok {
		p.SetInverseFunctional(v == "true")
	}
	if v, ok := pr.get(uri, keyFulltextIndexed); ok {
		p.SetFulltextIndexed(v == "true")
	}
	p.registry = pr.Registry
	pr.cache.Set(uri, p)
	if indexes, ok := pr.get(uri, keyDomainIndexes); ok {
		for _, classURI := range splitList(indexes) {
			if c := pr.ClassByURI(classURI); c != nil {
				_ = pr.Registry.AddDomainIndex(c, p)
			}
		}
	}
	return p
}

/*
NamespaceByURI resolves uri against the in-memory map first, then the
[URICache], then falls back to materializing a Namespace from the
persisted table and caching it.
*/
func (pr *PersistedRegistry) NamespaceByURI(uri string) *Namespace {
	if n := pr.Registry.NamespaceByURI(uri); n != nil {
		return n
	}
	if v, ok := pr.cache.Get(uri); ok {
		n, _ := v.(*Namespace)
		return n
	}
	prefix, ok := pr.get(uri, keyPrefix)
	if !ok {
		return nil
	}
	n := &Namespace{uri: uri, prefix: prefix, registry: pr.Registry}
	pr.cache.Set(uri, n)
	return n
}

func splitList(s string) []string {
	if len(s) == 0 {
		return nil
	}
	return strings.Split(s, ",")
}

/*
DumpRegistry writes every Class, Property and Namespace in reg to a
fresh leveldb database at path, in the key vocabulary recognized by
[PersistedRegistry] (spec.md §4.B: "writing this persisted form is
also supported").
*/
func DumpRegistry(reg *Registry, path string) error {
	if reg == nil {
		return ErrNilRegistry
	}
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return err
	}
	defer db.Close()

	batch := new(leveldb.Batch)
	for _, c := range reg.Classes() {
		put(batch, c.URI(), keyName, c.Name())
		if id, ok := c.ID(); ok {
			put(batch, c.URI(), keyID, strconv.FormatUint(id, 10))
		}
		var supers []string
		for _, s := range c.SuperClasses() {
			supers = append(supers, s.URI())
		}
		put(batch, c.URI(), keySuperClasses, strings.Join(supers, ","))
	}
	for _, p := range reg.Properties() {
		put(batch, p.URI(), keyName, p.Name())
		if id, ok := p.ID(); ok {
			put(batch, p.URI(), keyID, strconv.FormatUint(id, 10))
		}
		if d := p.Domain(); d != nil {
			put(batch, p.URI(), keyDomain, d.URI())
		}
		if r := p.Range(); r != nil {
			put(batch, p.URI(), keyRange, r.URI())
		}
		card := "1"
		if p.MultipleValues() {
			card = "2"
		}
		put(batch, p.URI(), keyMaxCardinality, card)
		put(batch, p.URI(), keyInverseFunctional, strconv.FormatBool(p.IsInverseFunctional()))
		put(batch, p.URI(), keyFulltextIndexed, strconv.FormatBool(p.FulltextIndexed()))
		var indexes []string
		for _, c := range p.DomainIndexes() {
			indexes = append(indexes, c.URI())
		}
		put(batch, p.URI(), keyDomainIndexes, strings.Join(indexes, ","))
	}
	for _, n := range reg.Namespaces() {
		put(batch, n.URI(), keyPrefix, n.Prefix())
	}
	return db.Write(batch, nil)
}

func put(batch *leveldb.Batch, uri, predicate, value string) {
	batch.Put([]byte(uri+"#"+predicate), []byte(value))
}
