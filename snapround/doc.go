// Package snapround orchestrates the fixed-point snap-rounding loop:
// CrossingFinder -> TJunctionFinder -> EdgeCutter -> PointDeduper ->
// EdgeDeduper, repeated until no further modification is required
// (SnapRoundDriver, then CleanPslgDriver). CleanPSLG is the engine's
// single public operation, clean_pslg.
package snapround
