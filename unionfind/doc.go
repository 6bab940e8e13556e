// Package unionfind implements a disjoint-set over a fixed universe [0, N),
// using dense integer indices rather than string-keyed parent/rank maps.
//
// Canonicalize produces compacted labels via a two-pass algorithm: run Find
// on every element, assign compacted ids to roots in ascending
// original-index order, then fill in non-roots from their root's label.
package unionfind
