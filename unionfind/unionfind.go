package unionfind

// DSU is a disjoint-set data structure over the universe [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU with n singleton sets.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the current root of i's set, path-compressing along the way.
func (d *DSU) Find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]] // path halving
		i = d.parent[i]
	}

	return i
}

// Union merges the sets containing i and j. Ranks break ties arbitrarily;
// callers must not rely on which of the two roots survives — only
// Canonicalize's labeling is a stable, documented contract.
func (d *DSU) Union(i, j int) {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return
	}
	switch {
	case d.rank[ri] < d.rank[rj]:
		d.parent[ri] = rj
	case d.rank[ri] > d.rank[rj]:
		d.parent[rj] = ri
	default:
		d.parent[rj] = ri
		d.rank[ri]++
	}
}

// Canonicalize assigns each index in [0, n) a compacted label in [0, ptr)
// such that two indices share a label iff they are in the same set, labels
// are assigned to representatives in ascending order of the representative's
// original index, and ptr is the number of distinct sets. merged reports
// whether any Union call actually joined two singletons (i.e. whether any
// label differs from a trivial identity relabeling of a shrunk universe).
func (d *DSU) Canonicalize() (labels []int, ptr int, merged bool) {
	n := len(d.parent)
	labels = make([]int, n)
	roots := make([]bool, n)
	for i := 0; i < n; i++ {
		roots[i] = d.Find(i) == i
	}

	for i := 0; i < n; i++ {
		if roots[i] {
			labels[i] = ptr
			ptr++
		} else {
			labels[i] = -1
			merged = true
		}
	}

	for i := 0; i < n; i++ {
		if labels[i] == -1 {
			labels[i] = labels[d.Find(i)]
		}
	}

	return labels, ptr, merged
}
