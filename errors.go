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

import "fmt"

// UnknownShapeError is returned when a query names a shape id that is not
// present in the scene.
type UnknownShapeError struct {
	ID int
}

func (e UnknownShapeError) Error() string {
	return fmt.Sprintf("srs: no shape with id %d", e.ID)
}

// InvalidGeometryError is returned when a shape violates its variant
// invariants: a non-positive circle radius, or a degenerate polygon.
type InvalidGeometryError struct {
	ID     int
	Reason string
}

func (e InvalidGeometryError) Error() string {
	return fmt.Sprintf("srs: invalid geometry for shape %d: %s", e.ID, e.Reason)
}

// UndefinedOrientationError is returned when an orientation is requested
// but the defining vector has zero length.
type UndefinedOrientationError struct {
	ID     int
	Reason string
}

func (e UndefinedOrientationError) Error() string {
	return fmt.Sprintf("srs: orientation undefined for shape %d: %s", e.ID, e.Reason)
}

// UnsupportedQueryError is returned when a query kind is not implemented.
type UnsupportedQueryError struct {
	Kind QueryKind
}

func (e UnsupportedQueryError) Error() string {
	return fmt.Sprintf("srs: unsupported query kind %v", e.Kind)
}
