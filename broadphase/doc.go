// Package broadphase reports every pair of overlapping bounding boxes, in
// self mode (all pairs within one set) or cross mode (pairs between two
// sets). Candidate pairs are over-inclusive by construction (rtreego
// requires strictly positive box extents, so degenerate boxes are padded by
// an epsilon no caller observes); every narrow-phase caller re-checks
// candidates with an exact predicate, so over-reporting is always safe.
package broadphase
