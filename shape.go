/*
Copyright © 2026 the SRS authors.
This file is part of SRS.

SRS is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SRS is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SRS.  If not, see <http://www.gnu.org/licenses/>.
*/

package srs

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/gonum/floats"
)

// Tolerance is the shared tolerance for approximate floating-point
// comparisons. Both the topological and the directional engine use it, so
// that the boundaries between "equal", "contained", and "overlapping" are
// drawn consistently everywhere.
const Tolerance = 1.0e-9

// approxEqual reports whether a and b are equal within Tolerance,
// either absolutely or relative to their magnitude.
func approxEqual(a, b float64) bool {
	return floats.EqualWithinAbsOrRel(a, b, Tolerance, Tolerance)
}

// ShapeKind distinguishes the supported shape variants.
type ShapeKind int

// The supported shape variants.
const (
	CircleKind ShapeKind = iota + 1
	PolygonKind
)

func (k ShapeKind) String() string {
	switch k {
	case CircleKind:
		return "circle"
	case PolygonKind:
		return "polygon"
	}
	return "unknown"
}

// Shape is a tagged-variant representation of a 2D shape. Exactly one of
// the variant field sets is meaningful, selected by Kind: Center and Radius
// for circles, Ring for polygons. Shapes are immutable once inserted into
// a Scene.
type Shape struct {
	ID   int
	Name string
	Kind ShapeKind

	// Circle fields.
	Center geom.Point
	Radius float64

	// Polygon vertices in insertion order. The ring is stored open; it is
	// closed on demand by Polygon.
	Ring []geom.Point

	// Facing is the direction vector the shape itself faces. It may be the
	// zero vector, in which case the shape has no defined orientation.
	Facing geom.Point
}

// NewCircle returns a circle shape centered at (x, y) with the given radius
// and facing vector (i, j).
func NewCircle(x, y, radius, i, j float64, id int, name string) *Shape {
	return &Shape{
		ID:     id,
		Name:   name,
		Kind:   CircleKind,
		Center: geom.Point{X: x, Y: y},
		Radius: radius,
		Facing: geom.Point{X: i, Y: j},
	}
}

// NewPolygon returns a polygon shape with the given vertices (in insertion
// order) and facing vector (i, j). The vertex slice is copied.
func NewPolygon(vertices []geom.Point, i, j float64, id int, name string) *Shape {
	ring := make([]geom.Point, len(vertices))
	copy(ring, vertices)
	return &Shape{
		ID:     id,
		Name:   name,
		Kind:   PolygonKind,
		Ring:   ring,
		Facing: geom.Point{X: i, Y: j},
	}
}

// Validate checks the shape invariants: a circle must have a positive
// radius, and a polygon must have at least three vertices enclosing a
// non-degenerate area.
func (s *Shape) Validate() error {
	switch s.Kind {
	case CircleKind:
		if s.Radius <= 0 {
			return InvalidGeometryError{ID: s.ID, Reason: "circle radius must be positive"}
		}
	case PolygonKind:
		if len(s.Ring) < 3 {
			return InvalidGeometryError{ID: s.ID, Reason: "polygon needs at least 3 vertices"}
		}
		if math.Abs(signedArea(s.Ring)) <= Tolerance {
			return InvalidGeometryError{ID: s.ID, Reason: "polygon vertices are collinear"}
		}
	default:
		return InvalidGeometryError{ID: s.ID, Reason: "unknown shape kind"}
	}
	return nil
}

// Bounds gives the rectangular extents of the shape. It also satisfies the
// rtree.Spatial interface so shapes can be indexed directly.
func (s *Shape) Bounds() *geom.Bounds {
	if s.Kind == CircleKind {
		return &geom.Bounds{
			Min: geom.Point{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius},
			Max: geom.Point{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius},
		}
	}
	b := geom.NewBounds()
	for _, v := range s.Ring {
		b.Extend(v.Bounds())
	}
	return b
}

// Area returns the area enclosed by the shape: πr² for circles and the
// absolute shoelace area for polygons.
func (s *Shape) Area() float64 {
	if s.Kind == CircleKind {
		return math.Pi * s.Radius * s.Radius
	}
	return math.Abs(signedArea(s.Ring))
}

// Counterclockwise reports whether a polygon's vertices wind
// counterclockwise. It always returns true for circles.
func (s *Shape) Counterclockwise() bool {
	if s.Kind == CircleKind {
		return true
	}
	return signedArea(s.Ring) > 0
}

// ReferencePoint returns the anchor coordinate used for directional
// reasoning: the center for circles and the center of the bounding extent
// for polygons. Note that for polygons this is generally not the centroid.
func (s *Shape) ReferencePoint() geom.Point {
	if s.Kind == CircleKind {
		return s.Center
	}
	b := s.Bounds()
	return geom.Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Polygon returns the shape's ring as a closed geom.Polygon. It must only
// be called on polygon shapes.
func (s *Shape) Polygon() geom.Polygon {
	ring := make([]geom.Point, len(s.Ring), len(s.Ring)+1)
	copy(ring, s.Ring)
	if len(ring) > 0 && !ring[len(ring)-1].Equals(ring[0]) {
		ring = append(ring, ring[0])
	}
	return geom.Polygon{ring}
}

// contains classifies p against the shape's region.
func (s *Shape) contains(p geom.Point) geom.WithinStatus {
	if s.Kind == CircleKind {
		d := dist(p, s.Center)
		switch {
		case approxEqual(d, s.Radius):
			return geom.OnEdge
		case d < s.Radius:
			return geom.Inside
		default:
			return geom.Outside
		}
	}
	return p.Within(s.Polygon())
}

// boundaryDistance returns the minimum distance from p to the shape's
// boundary.
func (s *Shape) boundaryDistance(p geom.Point) float64 {
	if s.Kind == CircleKind {
		return math.Abs(dist(p, s.Center) - s.Radius)
	}
	min := math.Inf(1)
	n := len(s.Ring)
	for i := 0; i < n; i++ {
		d := pointSegmentDistance(p, s.Ring[i], s.Ring[(i+1)%n])
		if d < min {
			min = d
		}
	}
	return min
}

// signedArea computes the shoelace area of an open ring. The sign encodes
// the vertex winding: positive for counterclockwise.
func signedArea(ring []geom.Point) float64 {
	a := 0.
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return a / 2
}

func dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// pointSegmentDistance returns the distance from p to the segment ab.
func pointSegmentDistance(p, a, b geom.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return dist(p, geom.Point{X: a.X + t*dx, Y: a.Y + t*dy})
}
