package query

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

/*
scoreMultiplier and maxHitBuffer match the original implementation's
SCORE_MULTIPLIER and MAX_HIT_BUFFER constants.
*/
const scoreMultiplier = 100000

/*
Result is a [Tree]'s evaluated hit set: document id → accumulated
score. It is produced by [Evaluate] and consumed by [Result.Hits],
[Result.HitCount] and [Result.HitCountsByType].
*/
type Result struct {
	scores map[uint64]int
	order  []uint64
}

/*
Hit is a single scored, ordered result row.
*/
type Hit struct {
	DocumentID uint64
	Score      int
}

/*
Evaluate walks t's tree bottom-up, evaluating each [Leaf] against idx
and composing AND/OR nodes per the specification: OR unions child score
maps (adding scores on overlap), AND intersects them (adding scores),
iterating whichever child map is smaller. A nil t.Root (parse failure)
or nil t yields an empty, non-nil [Result].
*/
func Evaluate(t *Tree, idx Index) (*Result, error) {
	if t == nil || t.Root == nil {
		return &Result{scores: map[uint64]int{}}, nil
	}
	return evalNode(t.Root, idx)
}

func evalNode(n Node, idx Index) (*Result, error) {
	switch v := n.(type) {
	case *Leaf:
		return evalLeaf(v, idx)
	case *And:
		left, err := evalNode(v.Left, idx)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(v.Right, idx)
		if err != nil {
			return nil, err
		}
		return intersect(left, right), nil
	case *Or:
		left, err := evalNode(v.Left, idx)
		if err != nil {
			return nil, err
		}
		right, err := evalNode(v.Right, idx)
		if err != nil {
			return nil, err
		}
		return union(left, right), nil
	default:
		return &Result{scores: map[uint64]int{}}, nil
	}
}

func evalLeaf(leaf *Leaf, idx Index) (*Result, error) {
	hits, err := idx.Lookup(leaf.Term)
	if err != nil {
		return nil, err
	}
	if len(hits) > maxHitBuffer {
		logrus.WithFields(logrus.Fields{
			"term":  leaf.Term,
			"count": len(hits),
			"cap":   maxHitBuffer,
		}).Warn("query: leaf hit buffer truncated")
		hits = hits[:maxHitBuffer]
	}

	idf := 1.0
	if n := len(hits); n > 0 {
		idf = 1.0 / float64(n)
	}

	r := &Result{scores: make(map[uint64]int, len(hits))}
	for _, h := range hits {
		if _, seen := r.scores[h.DocumentID]; !seen {
			r.order = append(r.order, h.DocumentID)
		}
		r.scores[h.DocumentID] += roundScore(idf * h.RawScore * scoreMultiplier)
	}
	return r, nil
}

/*
roundScore rounds away from zero, floored at a minimum of 1, matching
the specification's score-bounds invariant and the original's
observed lrintf() behavior for the always-nonnegative scores this
system produces.
*/
func roundScore(v float64) int {
	rounded := math.Floor(v + 0.5)
	if rounded < 1 {
		return 1
	}
	return int(rounded)
}

func intersect(a, b *Result) *Result {
	small, big := a, b
	if len(big.scores) < len(small.scores) {
		small, big = big, small
	}
	out := &Result{scores: make(map[uint64]int, len(small.scores))}
	for _, id := range small.order {
		bigScore, ok := big.scores[id]
		if !ok {
			continue
		}
		out.scores[id] = small.scores[id] + bigScore
		out.order = append(out.order, id)
	}
	return out
}

func union(a, b *Result) *Result {
	small, big := a, b
	if len(big.scores) < len(small.scores) {
		small, big = big, small
	}
	out := &Result{scores: make(map[uint64]int, len(big.scores)), order: append([]uint64(nil), big.order...)}
	for id, score := range big.scores {
		out.scores[id] = score
	}
	for _, id := range small.order {
		if _, ok := out.scores[id]; ok {
			out.scores[id] += small.scores[id]
		} else {
			out.scores[id] = small.scores[id]
			out.order = append(out.order, id)
		}
	}
	return out
}

/*
Hits flattens the result into an array of (document_id, score) records
sorted by score descending, drops offset from the front, and clamps
the length to limit (0 = unlimited). The sort is stable, so documents
sharing a score retain their insertion order.
*/
func (r *Result) Hits(offset, limit int) []Hit {
	if r == nil {
		return nil
	}
	all := make([]Hit, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, Hit{DocumentID: id, Score: r.scores[id]})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	if offset > 0 {
		if offset >= len(all) {
			return nil
		}
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

/*
HitCount returns the total number of distinct documents in the result.
*/
func (r *Result) HitCount() int {
	if r == nil {
		return 0
	}
	return len(r.scores)
}

/*
ClassCount pairs a resolved Class URI with the number of hits that
belong to it.
*/
type ClassCount struct {
	ClassURI string
	Count    int
}

/*
HitCountsByType groups the full unpaginated hit set by rdf:type, via a
single call to lookup (the implementation is expected to issue one
storage query returning (type_uri, count) rows for the hit set).
*/
func (r *Result) HitCountsByType(lookup TypeLookup) ([]ClassCount, error) {
	if r == nil || len(r.order) == 0 {
		return nil, nil
	}
	counts, err := lookup.HitCountsByType(r.order)
	if err != nil {
		return nil, err
	}
	out := make([]ClassCount, 0, len(counts))
	for uri, n := range counts {
		out = append(out, ClassCount{ClassURI: uri, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClassURI < out[j].ClassURI })
	return out, nil
}
