// Package dedupe implements PointDeduper and EdgeDeduper: folding
// newly constructed rational points into the float point table and merging
// points whose conservative rounded boxes overlap (Points), then
// canonicalizing, sorting, and compacting the edge list, dropping exact
// duplicates and zero-length edges (Edges).
package dedupe
