// Package geometry provides the 2D primitives used to describe annotated regions.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//
// A box is a 4-point polygon whose corners are ordered top-left, top-right,
// bottom-right, bottom-left. The left and top edges are read from the
// top-left corner, the right and bottom edges from the bottom-right corner.
//
// # Error Handling
//
// Malformed input is reported with ErrInvalidGeometry instead of a zero value,
// since 0 is a legitimate IoU.
package geometry
