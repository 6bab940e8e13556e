// Package crossing implements CrossingFinder: broad-phase box
// candidates over edge bounds, narrowed by the robust segment-segment
// predicate, reporting every pair of distinct edges sharing no endpoint
// index whose segments properly cross or collinearly overlap.
package crossing
