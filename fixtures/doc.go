// Package fixtures builds synthetic PSLGs for snapround's benchmarks:
// regular grids, star/spoke fans, and duplicate-heavy
// inputs engineered to stress PointDeduper and EdgeDeduper. Every
// constructor returns plain ([]core.Point, []core.Edge) ready to hand to
// snapround.CleanPSLG, mirroring the functional-options/seeded-RNG shape of
// this codebase's graph builders but targeting the engine's own flat point
// and edge tables instead of a named-vertex graph.
package fixtures
