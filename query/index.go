package query

/*
RawHit is a single (document, raw score) pair returned by an [Index]
lookup, before idf weighting.
*/
type RawHit struct {
	DocumentID uint64
	RawScore   float64
}

/*
Index is the inverted-index lookup surface a [Leaf] evaluates against.
Implementations are expected to be per-service (see the sibling
service package) and are supplied by the caller at evaluation time; a
[Tree] holds no reference to one itself.
*/
type Index interface {
	Lookup(term string) ([]RawHit, error)
}

/*
TypeLookup resolves the rdf:type of every document in docIDs in a
single query, returning (type_uri, count) pairs already grouped — used
by [Result.HitCountsByType]'s hit-count-by-class grouping
(get_hit_counts).
*/
type TypeLookup interface {
	HitCountsByType(docIDs []uint64) (map[string]int, error)
}

/*
maxHitBuffer caps the number of raw hits read per leaf term before
truncation, matching the original implementation's MAX_HIT_BUFFER.
*/
const maxHitBuffer = 480000
