package geometry

import (
	"fmt"
	"math"

	"github.com/engelsjk/polygol"
)

// capSegments is the number of segments used to approximate the circular
// arc swept around each vertex during erosion.
const capSegments = 24

// UsableArea is the result of eroding a site polygon inward by a perimeter
// margin. An empty usable area is a legitimate domain result (margin too
// large for the site), not an error.
type UsableArea struct {
	Polygon Polygon
	Area    float64
}

// Empty reports whether the erosion consumed the entire site.
func (u UsableArea) Empty() bool {
	return len(u.Polygon) < 3 || u.Area <= 0
}

// ResolveUsableArea erodes the site polygon inward by margin meters and
// returns the usable area. The erosion is computed as the site minus the
// union of stadium shapes (offset rectangles with circular end caps) swept
// along each boundary edge, which leaves exactly the points at least
// margin meters from the perimeter. If the erosion splits the site into
// multiple parts, the largest part is kept.
func ResolveUsableArea(site Polygon, margin float64) (UsableArea, error) {
	if err := site.Validate(); err != nil {
		return UsableArea{}, err
	}
	if margin < 0 {
		return UsableArea{}, fmt.Errorf("%w: margin must be non-negative, got %g", ErrInvalidConfig, margin)
	}
	if margin == 0 {
		return UsableArea{Polygon: site, Area: site.Area()}, nil
	}

	bands := make([]polygol.Geom, 0, 2*len(site))
	for i := range site {
		a := site[i]
		b := site[(i+1)%len(site)]
		if rect, ok := edgeBand(a, b, margin); ok {
			bands = append(bands, rect)
		}
		bands = append(bands, vertexCap(a, margin))
	}

	boundaryZone, err := polygol.Union(bands[0], bands[1:]...)
	if err != nil {
		return UsableArea{}, fmt.Errorf("erode boundary union: %w", err)
	}
	remainder, err := polygol.Difference(site.polygolGeom(), boundaryZone)
	if err != nil {
		return UsableArea{}, fmt.Errorf("erode difference: %w", err)
	}

	usable, area := largestComponent(remainder)
	if len(usable) < 3 || area <= 0 {
		return UsableArea{}, nil
	}
	return UsableArea{Polygon: usable, Area: area}, nil
}

// IntersectionArea returns the area of the intersection of p and q.
func (p Polygon) IntersectionArea(q Polygon) (float64, error) {
	if len(p) < 3 || len(q) < 3 {
		return 0, nil
	}
	out, err := polygol.Intersection(p.polygolGeom(), q.polygolGeom())
	if err != nil {
		return 0, fmt.Errorf("polygon intersection: %w", err)
	}
	return geomArea(out), nil
}

// polygolGeom converts p to a single-polygon polygol multipolygon.
func (p Polygon) polygolGeom() polygol.Geom {
	ring := make([][]float64, 0, len(p)+1)
	for _, pt := range p {
		ring = append(ring, []float64{pt.X, pt.Y})
	}
	if len(p) > 0 && p[0] != p[len(p)-1] {
		ring = append(ring, []float64{p[0].X, p[0].Y})
	}
	return polygol.Geom{{ring}}
}

// edgeBand returns the rectangle of half-width margin centered on segment
// ab. Degenerate (zero-length) edges produce no band.
func edgeBand(a, b Point, margin float64) (polygol.Geom, bool) {
	length := Distance(a, b)
	if length == 0 {
		return nil, false
	}
	nx := -(b.Y - a.Y) / length * margin
	ny := (b.X - a.X) / length * margin
	rect := Polygon{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
	return rect.polygolGeom(), true
}

// vertexCap returns a regular polygon approximating the disc of radius
// margin centered at v. The radius is inflated so the approximation
// circumscribes the true disc instead of undercutting it.
func vertexCap(v Point, margin float64) polygol.Geom {
	r := margin / math.Cos(math.Pi/capSegments)
	pts := make(Polygon, capSegments)
	for i := 0; i < capSegments; i++ {
		theta := 2 * math.Pi * float64(i) / capSegments
		pts[i] = Point{X: v.X + r*math.Cos(theta), Y: v.Y + r*math.Sin(theta)}
	}
	return pts.polygolGeom()
}

// largestComponent extracts the largest polygon (by outer-ring area minus
// holes) from a polygol multipolygon result.
func largestComponent(g polygol.Geom) (Polygon, float64) {
	var best Polygon
	bestArea := 0.0
	for _, poly := range g {
		if len(poly) == 0 {
			continue
		}
		area := polyArea(poly)
		if area > bestArea {
			bestArea = area
			best = fromRing(poly[0])
		}
	}
	return best, bestArea
}

// geomArea sums the area of every polygon in a polygol multipolygon.
func geomArea(g polygol.Geom) float64 {
	total := 0.0
	for _, poly := range g {
		total += polyArea(poly)
	}
	return total
}

// polyArea returns the outer-ring area minus any hole areas.
func polyArea(poly [][][]float64) float64 {
	area := 0.0
	for i, ring := range poly {
		a := ringArea(ring)
		if i == 0 {
			area += a
		} else {
			area -= a
		}
	}
	return area
}

// ringArea is the shoelace area of a coordinate ring, ignoring winding.
func ringArea(ring [][]float64) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(sum) / 2
}

// fromRing converts a polygol coordinate ring to a Polygon, dropping the
// redundant closing vertex.
func fromRing(ring [][]float64) Polygon {
	p := make(Polygon, 0, len(ring))
	for _, c := range ring {
		if len(c) < 2 {
			continue
		}
		p = append(p, Point{X: c[0], Y: c[1]})
	}
	if len(p) > 1 && p[0] == p[len(p)-1] {
		p = p[:len(p)-1]
	}
	return p
}
