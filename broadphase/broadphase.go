package broadphase

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/snapround/bounds"
)

// epsilon pads degenerate box extents (a vertical/horizontal edge, or a
// point) so rtreego.NewRect — which requires strictly positive side lengths —
// never rejects a box. The padding is far smaller than any meaningful
// geometric separation and only ever widens broad-phase candidates, which the
// exact narrow-phase predicates downstream re-verify.
const epsilon = 1e-12

const (
	minBranch = 25
	maxBranch = 50
)

// Pair is an unordered candidate pair of indices into one or two box lists.
type Pair struct {
	I, J int
}

type item struct {
	rect rtreego.Rect
	idx  int
}

func (it *item) Bounds() rtreego.Rect { return it.rect }

func toRect(b bounds.Box) (rtreego.Rect, error) {
	w := b.XMax - b.XMin
	if w <= 0 {
		w = epsilon
	}
	h := b.YMax - b.YMin
	if h <= 0 {
		h = epsilon
	}

	return rtreego.NewRect(rtreego.Point{b.XMin, b.YMin}, []float64{w, h})
}

func newTreeOf(boxes []bounds.Box) (*rtreego.Rtree, []*item, error) {
	tree := rtreego.NewTree(2, minBranch, maxBranch)
	items := make([]*item, len(boxes))
	for i, b := range boxes {
		rect, err := toRect(b)
		if err != nil {
			return nil, nil, err
		}
		it := &item{rect: rect, idx: i}
		items[i] = it
		tree.Insert(it)
	}

	return tree, items, nil
}

// SelfJoin reports every unordered pair (i, j) with i < j whose boxes in
// boxes overlap (inclusive of shared boundaries). Each overlapping pair is
// reported exactly once.
func SelfJoin(boxes []bounds.Box) ([]Pair, error) {
	tree, items, err := newTreeOf(boxes)
	if err != nil {
		return nil, err
	}

	seen := make(map[Pair]struct{})
	var pairs []Pair
	for i, it := range items {
		hits := tree.SearchIntersect(it.rect)
		for _, h := range hits {
			j := h.(*item).idx
			if j == i || !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			p := Pair{I: i, J: j}
			if p.I > p.J {
				p.I, p.J = p.J, p.I
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			pairs = append(pairs, p)
		}
	}

	return pairs, nil
}

// CrossJoin reports every pair (i, j) with a[i]'s box overlapping b[j]'s box,
// each reported exactly once.
func CrossJoin(a, b []bounds.Box) ([]Pair, error) {
	tree, _, err := newTreeOf(b)
	if err != nil {
		return nil, err
	}

	var pairs []Pair
	for i, ab := range a {
		rect, err := toRect(ab)
		if err != nil {
			return nil, err
		}
		hits := tree.SearchIntersect(rect)
		for _, h := range hits {
			j := h.(*item).idx
			if !ab.Overlaps(b[j]) {
				continue
			}
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	return pairs, nil
}
