// Package cutter implements EdgeCutter: it converts each crossing into
// an exact rational intersection point, merges those with the pre-seeded
// T-junctions, sorts junctions per edge along the edge's direction, and
// rewrites each cut edge into a lexicographically consistent chain of
// sub-edges, carrying each original edge's color (if any) onto every piece.
package cutter
