package query

import (
	"errors"
	"testing"
)

type fakeIndex map[string][]RawHit

func (f fakeIndex) Lookup(term string) ([]RawHit, error) {
	return f[term], nil
}

func TestEvaluateLeaf(t *testing.T) {
	idx := fakeIndex{
		"foo": {{DocumentID: 1, RawScore: 1.0}, {DocumentID: 2, RawScore: 1.0}},
	}
	tree := Parse("foo", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	if res.HitCount() != 2 {
		t.Fatalf("HitCount() = %d, want 2", res.HitCount())
	}
}

func TestEvaluateAndIntersects(t *testing.T) {
	idx := fakeIndex{
		"foo": {{DocumentID: 1, RawScore: 1.0}, {DocumentID: 2, RawScore: 1.0}},
		"bar": {{DocumentID: 2, RawScore: 1.0}, {DocumentID: 3, RawScore: 1.0}},
	}
	tree := Parse("foo and bar", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	hits := res.Hits(0, 0)
	if len(hits) != 1 || hits[0].DocumentID != 2 {
		t.Fatalf("Hits() = %v, want single hit for document 2", hits)
	}
}

func TestEvaluateOrUnions(t *testing.T) {
	idx := fakeIndex{
		"foo": {{DocumentID: 1, RawScore: 1.0}},
		"bar": {{DocumentID: 2, RawScore: 1.0}},
	}
	tree := Parse("foo or bar", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	if res.HitCount() != 2 {
		t.Fatalf("HitCount() = %d, want 2", res.HitCount())
	}
}

func TestEvaluateOverlapAddsScores(t *testing.T) {
	idx := fakeIndex{
		"foo": {{DocumentID: 1, RawScore: 1.0}},
		"bar": {{DocumentID: 1, RawScore: 1.0}},
	}
	tree := Parse("foo or bar", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	hits := res.Hits(0, 0)
	if len(hits) != 1 {
		t.Fatalf("Hits() = %v, want 1 merged hit", hits)
	}
	if hits[0].Score != 2*scoreMultiplier {
		t.Fatalf("Score = %d, want %d", hits[0].Score, 2*scoreMultiplier)
	}
}

func TestHitsPagination(t *testing.T) {
	idx := fakeIndex{
		"foo": {
			{DocumentID: 1, RawScore: 3.0},
			{DocumentID: 2, RawScore: 1.0},
			{DocumentID: 3, RawScore: 2.0},
		},
	}
	tree := Parse("foo", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	hits := res.Hits(0, 2)
	if len(hits) != 2 {
		t.Fatalf("Hits(0,2) len = %d, want 2", len(hits))
	}
	if hits[0].DocumentID != 1 || hits[1].DocumentID != 3 {
		t.Fatalf("Hits(0,2) = %v, want docs 1 then 3 by descending score", hits)
	}
}

type errorIndex struct{}

func (errorIndex) Lookup(term string) ([]RawHit, error) {
	return nil, errors.New("lookup failed")
}

func TestEvaluatePropagatesLookupError(t *testing.T) {
	tree := Parse("foo", nil)
	if _, err := Evaluate(tree, errorIndex{}); err == nil {
		t.Fatal("want error propagated from Index.Lookup")
	}
}

func TestEvaluateNilRootYieldsEmptyResult(t *testing.T) {
	tree := Parse("and or", nil)
	res, err := Evaluate(tree, fakeIndex{})
	if err != nil {
		t.Fatal(err)
	}
	if res.HitCount() != 0 {
		t.Fatalf("HitCount() = %d, want 0", res.HitCount())
	}
}

type typeLookup map[uint64]string

func (tl typeLookup) HitCountsByType(docIDs []uint64) (map[string]int, error) {
	out := map[string]int{}
	for _, id := range docIDs {
		out[tl[id]]++
	}
	return out, nil
}

func TestHitCountsByType(t *testing.T) {
	idx := fakeIndex{"foo": {{DocumentID: 1, RawScore: 1}, {DocumentID: 2, RawScore: 1}}}
	tree := Parse("foo", nil)
	res, err := Evaluate(tree, idx)
	if err != nil {
		t.Fatal(err)
	}
	counts, err := res.HitCountsByType(typeLookup{1: "ex:A", 2: "ex:B"})
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts = %v, want 2 entries", counts)
	}
}
