package snapround

import (
	"fmt"

	"github.com/katalvlaran/snapround/core"
)

// CleanPSLG is clean_pslg, the engine's single public operation. It
// mutates points and edges in place so that no two edges properly cross, no
// vertex lies on an edge interior, no two vertices coincide after rounding,
// and no two edges are exact duplicates (distinguished by color when colors
// is non-nil). Returns whether any modification was performed.
//
// colors, if non-nil, must have the same length as edges on entry; on
// return it is resized to match the (possibly changed) length of edges,
// with positions corresponding 1:1. CleanPSLG performs no mutation at all
// when it rejects its input; once the loop has started, an error (such as
// core.ErrIterationLimit) may leave *points already modified, while *edges
// and *colors are left as they were on entry.
func CleanPSLG(points *[]core.Point, edges *[]core.Edge, colors *[]int32, opts ...Option) (bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var inColors []int32
	if colors != nil {
		inColors = *colors
	}
	if err := core.ValidateInput(len(*points), *edges, inColors); err != nil {
		return false, err
	}

	useColor := colors != nil
	work := make([]core.ColoredEdge, len(*edges))
	for i, e := range *edges {
		ce := core.ColoredEdge{S: e.S, T: e.T}
		if useColor {
			ce.Color = inColors[i]
		}
		work[i] = ce
	}

	iterCap := cfg.capMultiplier * (len(*points) + len(*edges))
	if iterCap == 0 {
		iterCap = cfg.capMultiplier
	}

	modified := false
	iterations := 0
	nCrossings, nTJunctions := 0, 0
	for {
		var changed bool
		var err error
		changed, nCrossings, nTJunctions, err = Pass(points, &work, useColor, cfg)
		if err != nil {
			return false, err
		}
		modified = modified || changed
		if !changed {
			break
		}

		iterations++
		if iterations == iterCap {
			cfg.logger.Printf("snapround: nearing iteration cap (%d/%d passes), %d crossing(s) and %d t-junction(s) still outstanding", iterations, iterCap, nCrossings, nTJunctions)
		}
		if iterations > iterCap {
			return false, fmt.Errorf("snapround: iteration limit exceeded after %d passes (%d crossing(s), %d t-junction(s) remaining): %w", iterations, nCrossings, nTJunctions, core.ErrIterationLimit)
		}
	}

	*edges = make([]core.Edge, len(work))
	if useColor {
		*colors = make([]int32, len(work))
	}
	for i, ce := range work {
		(*edges)[i] = ce.Endpoints()
		if useColor {
			(*colors)[i] = ce.Color
		}
	}

	if modified {
		cfg.logger.Printf("snapround: clean_pslg modified input in %d iteration(s), %d points, %d edges remain", iterations, len(*points), len(*edges))
	}

	return modified, nil
}
