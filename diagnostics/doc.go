// Package diagnostics builds inspection views over an already-cleaned PSLG:
// an incidence matrix recording which points touch which edges, and the
// per-point degree implied by it. It exists purely for callers that want to
// inspect clean_pslg's output (how many edges meet at each vertex, which
// vertices no edge touches) rather than to drive the snap-rounding loop
// itself.
// Adapted from this codebase's own dense incidence-matrix builder, retargeted
// from a named-vertex graph to the engine's flat point/edge index tables.
package diagnostics
