package geometry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is returned when a point sequence does not have the shape
// an operation requires.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Point is a 2D coordinate in pixel space. It is encoded in JSON as an
// [x, y] pair.
type Point struct {
	X float64
	Y float64
}

// MarshalJSON encodes the point as a two element array.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalJSON decodes a two element [x, y] array.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("point must be an [x, y] pair: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 components, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Box builds the 4-corner polygon for the rectangle spanning (x1,y1)-(x2,y2).
// Corners are returned top-left, top-right, bottom-right, bottom-left.
func Box(x1, y1, x2, y2 float64) []Point {
	return []Point{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
}

// BoundingBox returns the axis-aligned box enclosing the given points, in the
// same corner order as Box.
func BoundingBox(points []Point) ([]Point, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: bounding box of empty polygon", ErrInvalidGeometry)
	}

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Box(minX, minY, maxX, maxY), nil
}

// ComputeBoxIoU returns the intersection-over-union of two axis-aligned boxes.
//
// Each box must have exactly 4 points ordered top-left, top-right,
// bottom-right, bottom-left. Boxes that do not overlap on either axis, or
// whose intersection has zero area, yield exactly 0. Otherwise the result
// is in (0, 1].
//
// # Errors
//
//   - ErrInvalidGeometry if either box does not have exactly 4 points
func ComputeBoxIoU(a, b []Point) (float64, error) {
	if len(a) != 4 {
		return 0, fmt.Errorf("%w: first box has %d points, want 4", ErrInvalidGeometry, len(a))
	}
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: second box has %d points, want 4", ErrInvalidGeometry, len(b))
	}

	aLeft, aTop, aRight, aBottom := a[0].X, a[0].Y, a[2].X, a[2].Y
	bLeft, bTop, bRight, bBottom := b[0].X, b[0].Y, b[2].X, b[2].Y

	// No overlap on either axis
	if aRight < bLeft || bRight < aLeft || aBottom < bTop || bBottom < aTop {
		return 0, nil
	}

	interW := math.Min(aRight, bRight) - math.Max(aLeft, bLeft)
	interH := math.Min(aBottom, bBottom) - math.Max(aTop, bTop)
	interArea := interW * interH
	if interArea <= 0 {
		return 0, nil
	}

	areaA := (aRight - aLeft) * (aBottom - aTop)
	areaB := (bRight - bLeft) * (bBottom - bTop)
	return interArea / (areaA + areaB - interArea), nil
}
