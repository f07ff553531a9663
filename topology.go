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

import "github.com/ctessum/geom"

// Relation is a topological relation between two regions, following the
// five-relation subset of the Region Connection Calculus in which the
// "externally connected" and "tangential proper part" distinctions are
// collapsed: regions that share only boundary points are disconnected, and
// a region touching its container from the inside is still a proper part.
type Relation int

// The possible relations between two regions.
const (
	DR  Relation = iota // disconnected
	PO                  // partial overlap
	EQ                  // equal
	PP                  // proper part
	PPI                 // proper part inverse
)

func (r Relation) String() string {
	switch r {
	case DR:
		return "disconnected"
	case PO:
		return "partial overlap"
	case EQ:
		return "equal"
	case PP:
		return "proper part"
	case PPI:
		return "proper part inverse"
	}
	return "unknown"
}

// Inverse returns the relation that holds with the argument order swapped.
// DR, PO, and EQ are symmetric; PP and PPI exchange.
func (r Relation) Inverse() Relation {
	switch r {
	case PP:
		return PPI
	case PPI:
		return PP
	}
	return r
}

// Classify returns the topological relation between a and b. Equality takes
// precedence over containment, and containment over overlap, so that two
// nearly identical shapes are reported as equal rather than as one
// containing the other.
func Classify(a, b *Shape) (Relation, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	// Bounding-extent rejection with an epsilon margin.
	ab := a.Bounds()
	ab.Min.X -= Tolerance
	ab.Min.Y -= Tolerance
	ab.Max.X += Tolerance
	ab.Max.Y += Tolerance
	if !ab.Overlaps(b.Bounds()) {
		return DR, nil
	}
	switch {
	case a.Kind == CircleKind && b.Kind == CircleKind:
		return circleCircle(a, b), nil
	case a.Kind == PolygonKind && b.Kind == PolygonKind:
		return polygonPolygon(a, b), nil
	case a.Kind == CircleKind:
		return circlePolygon(a, b), nil
	default:
		return circlePolygon(b, a).Inverse(), nil
	}
}

// circleCircle relates two circles exactly by comparing the distance
// between their centers against the sum and difference of their radii.
func circleCircle(a, b *Shape) Relation {
	d := dist(a.Center, b.Center)
	switch {
	case d <= Tolerance && approxEqual(a.Radius, b.Radius):
		return EQ
	case d >= a.Radius+b.Radius-Tolerance:
		// External tangency shares no interior points.
		return DR
	case d+a.Radius <= b.Radius+Tolerance:
		return PP
	case d+b.Radius <= a.Radius+Tolerance:
		return PPI
	default:
		return PO
	}
}

// circlePolygon relates circle c to polygon p, with c as the first
// argument. The tests are the minimum distance from the circle center to
// the polygon boundary against the radius, and the point-in-polygon status
// of the center, which together decide the containment direction.
func circlePolygon(c, p *Shape) Relation {
	// Every vertex within the radius puts the whole polygon inside the
	// circle, since a circle is convex.
	inside := true
	for _, v := range p.Ring {
		if dist(c.Center, v) > c.Radius+Tolerance {
			inside = false
			break
		}
	}
	if inside {
		return PPI
	}
	md := p.boundaryDistance(c.Center)
	switch p.contains(c.Center) {
	case geom.Inside:
		if md >= c.Radius-Tolerance {
			return PP
		}
		return PO
	case geom.Outside:
		if md >= c.Radius-Tolerance {
			return DR
		}
		return PO
	default:
		// The polygon boundary passes through the circle center.
		return PO
	}
}

// polygonPolygon relates two polygons by comparing the area of their
// intersection region against the area of each operand. An intersection
// that matches both areas is equality, one that matches a single operand is
// containment, a vanishing intersection is disconnection, and anything
// else is partial overlap.
func polygonPolygon(a, b *Shape) Relation {
	pa, pb := a.Polygon(), b.Polygon()
	areaA, areaB := pa.Area(), pb.Area()
	isect := pa.Intersection(pb)
	var ai float64
	if len(isect) > 0 {
		ai = isect.Area()
	}
	switch {
	case approxEqual(ai, areaA) && approxEqual(ai, areaB):
		return EQ
	case ai <= Tolerance:
		return DR
	case approxEqual(ai, areaA):
		return PP
	case approxEqual(ai, areaB):
		return PPI
	default:
		return PO
	}
}
