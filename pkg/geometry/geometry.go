// Package geometry provides the planar primitives used by the PV layout
// engine: site polygons, perimeter-margin erosion, containment tests and
// intersection areas. All coordinates are meters in an already-projected
// local coordinate system; callers own any lat/lon-to-meters projection.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

var (
	// ErrInvalidGeometry indicates a malformed input polygon.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidConfig indicates an out-of-domain configuration value.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInvalidParameter indicates an out-of-domain numeric parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Point is a 2D point in meters.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Polygon is an open ring of vertices in order. The closing edge from the
// last vertex back to the first is implicit. A valid polygon has at least
// 3 vertices and is simple (non-self-intersecting).
type Polygon []Point

// Rect returns the axis-aligned rectangle with lower-left corner (x, y).
func Rect(x, y, width, height float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// orbPolygon converts p to a closed orb.Polygon ring.
func (p Polygon) orbPolygon() orb.Polygon {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, pt := range p {
		ring = append(ring, orb.Point{pt.X, pt.Y})
	}
	if len(p) > 0 && p[0] != p[len(p)-1] {
		ring = append(ring, orb.Point{p[0].X, p[0].Y})
	}
	return orb.Polygon{ring}
}

// Area returns the polygon's area regardless of winding order.
// Polygons with fewer than 3 vertices have zero area.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return math.Abs(planar.Area(p.orbPolygon()))
}

// Contains reports whether pt lies inside the polygon.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	return planar.PolygonContains(p.orbPolygon(), orb.Point{pt.X, pt.Y})
}

// Centroid returns the area centroid of the polygon.
func (p Polygon) Centroid() Point {
	c, _ := planar.CentroidArea(p.orbPolygon())
	return Point{X: c[0], Y: c[1]}
}

// Bounds returns the min and max corners of the polygon's bounding box.
func (p Polygon) Bounds() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Validate checks the polygon's basic invariants.
func (p Polygon) Validate() error {
	if len(p) < 3 {
		return fmt.Errorf("%w: polygon must have at least 3 vertices, got %d", ErrInvalidGeometry, len(p))
	}
	return nil
}
