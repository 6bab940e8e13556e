// Package tjunction implements TJunctionFinder: broad-phase box
// candidates between edge bounds and vertex bounds, narrowed by the robust
// segment-segment predicate applied to each edge against the vertex's
// degenerate segment, reporting every (edge, vertex) pair where the vertex
// lies on the edge's closed segment but is not one of its own endpoints.
package tjunction
