package query

import "testing"

type countingIndex struct {
	calls int
	hits  []RawHit
}

func (c *countingIndex) Lookup(term string) ([]RawHit, error) {
	c.calls++
	return c.hits, nil
}

func TestCachedIndexServesFromCacheOnSecondLookup(t *testing.T) {
	inner := &countingIndex{hits: []RawHit{{DocumentID: 1, RawScore: 1}}}
	cached := NewCachedIndex(inner, 0, 0)

	if _, err := cached.Lookup("foo"); err != nil {
		t.Fatal(err)
	}
	if _, err := cached.Lookup("foo"); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 1 {
		t.Fatalf("inner.calls = %d, want 1 (second lookup should hit the cache)", inner.calls)
	}
}

func TestCachedIndexDistinctTerms(t *testing.T) {
	inner := &countingIndex{hits: []RawHit{{DocumentID: 1, RawScore: 1}}}
	cached := NewCachedIndex(inner, 0, 0)

	cached.Lookup("foo")
	cached.Lookup("bar")
	if inner.calls != 2 {
		t.Fatalf("inner.calls = %d, want 2 for distinct terms", inner.calls)
	}
}
