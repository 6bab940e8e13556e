// Package core defines the shared data model for the snapround engine: the
// float point and index-pair edge that a caller owns, the exact rational point
// EdgeCutter constructs, the (edge, point) junction record that drives edge
// rewriting, and the sentinel errors returned by clean_pslg on invalid input.
//
// Nothing in this package mutates anything; it only declares the vocabulary
// every other package shares. See snapround.CleanPSLG for the orchestration
// that owns and mutates these values across one cleaning pass.
package core
