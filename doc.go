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

// Package srs implements qualitative spatial reasoning over collections
// of 2D shapes. It answers topological queries between pairs of shapes
// (a five-relation subset of the Region Connection Calculus: disconnected,
// partial overlap, equal, proper part, and proper part inverse) and
// directional queries (the compass sector a shape faces, and the direction
// of one shape as seen from another, adjusted for the observer's facing).
package srs

// Version gives the version number of this version of SRS.
const Version = "0.1.0"
