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
)

// Sector is one of eight 45°-wide compass sectors. Angles are measured
// counterclockwise from the positive x axis, and the sectors are centered
// on the cardinal and diagonal directions, so a vector of (0, 1) points N
// and a vector of (1, 0) points E.
type Sector int

// The eight compass sectors.
const (
	N Sector = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

func (s Sector) String() string {
	switch s {
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case NW:
		return "NW"
	}
	return "unknown"
}

// sectorAt maps an angle in [0, 360) degrees to its compass sector.
func sectorAt(deg float64) Sector {
	sectors := [8]Sector{E, NE, N, NW, W, SW, S, SE}
	return sectors[int(math.Floor(deg/45+0.5))%8]
}

// vectorAngle returns the counterclockwise angle of v from the positive x
// axis, in degrees normalized to [0, 360). The second return value is
// false if v has zero length within Tolerance.
func vectorAngle(v geom.Point) (float64, bool) {
	if math.Hypot(v.X, v.Y) <= Tolerance {
		return 0, false
	}
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg, true
}

// Orientation returns the egocentric orientation of s: the compass sector
// its facing vector points into. A zero-length facing vector has no
// defined orientation.
func Orientation(s *Shape) (Sector, error) {
	deg, ok := vectorAngle(s.Facing)
	if !ok {
		return 0, UndefinedOrientationError{ID: s.ID, Reason: "zero-length facing vector"}
	}
	return sectorAt(deg), nil
}

// AllocentricOrientation returns the direction of target as seen from
// observer: the bearing from the observer's reference point to the
// target's, expressed relative to the observer's own facing direction and
// mapped through the same sector scheme. The facing direction plays the
// role of the x axis in the relative frame, so a target straight ahead is
// E, one 90° to the observer's left is N, and one behind is W.
func AllocentricOrientation(observer, target *Shape) (Sector, error) {
	facing, ok := vectorAngle(observer.Facing)
	if !ok {
		return 0, UndefinedOrientationError{ID: observer.ID, Reason: "zero-length facing vector"}
	}
	op, tp := observer.ReferencePoint(), target.ReferencePoint()
	bearing, ok := vectorAngle(geom.Point{X: tp.X - op.X, Y: tp.Y - op.Y})
	if !ok {
		return 0, UndefinedOrientationError{ID: target.ID, Reason: "coincident reference points"}
	}
	deg := bearing - facing
	if deg < 0 {
		deg += 360
	}
	return sectorAt(deg), nil
}
