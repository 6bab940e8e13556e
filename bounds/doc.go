// Package bounds constructs axis-aligned bounding boxes for edges and
// points. An edge's box is the bounding box of its two endpoints; a point's
// box is degenerate (zero width and height).
package bounds
