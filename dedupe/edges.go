package dedupe

import (
	"sort"

	"github.com/katalvlaran/snapround/core"
)

// Edges canonicalizes endpoint order (smaller index first), relabels
// endpoints through labels when non-nil, sorts edges lexicographically
// (endpoint-major, color-minor when useColor), and drops exact duplicates
// and zero-length edges (S == T, which can arise from relabeling or from two
// coincident junctions on one edge). Reports whether *edges changed.
func Edges(edges *[]core.ColoredEdge, labels []int, useColor bool) bool {
	es := *edges
	if len(es) == 0 {
		return false
	}

	work := make([]core.ColoredEdge, 0, len(es))
	for _, e := range es {
		s, t := e.S, e.T
		if labels != nil {
			s, t = labels[s], labels[t]
		}
		if s == t {
			continue
		}
		if s > t {
			s, t = t, s
		}
		work = append(work, core.ColoredEdge{S: s, T: t, Color: e.Color})
	}

	sort.Slice(work, func(i, j int) bool {
		a, b := work[i], work[j]
		if a.S != b.S {
			return a.S < b.S
		}
		if a.T != b.T {
			return a.T < b.T
		}

		return useColor && a.Color < b.Color
	})

	out := make([]core.ColoredEdge, 0, len(work))
	for i, e := range work {
		if i > 0 {
			p := out[len(out)-1]
			if e.S == p.S && e.T == p.T && (!useColor || e.Color == p.Color) {
				continue
			}
		}
		out = append(out, e)
	}

	changed := len(out) != len(es)
	if !changed {
		for i, e := range out {
			if e != es[i] {
				changed = true

				break
			}
		}
	}
	*edges = out

	return changed
}
