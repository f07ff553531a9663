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
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Canvas describes the rendering surface: its pixel dimensions and the
// scale factor from world units to pixels. The world origin maps to the
// canvas center, with the world y axis pointing up.
type Canvas struct {
	Width, Height int
	Scale         float64
}

// DefaultCanvas returns the canvas used when no dimensions are configured.
func DefaultCanvas() Canvas {
	return Canvas{Width: 800, Height: 600, Scale: 1}
}

func (c Canvas) x(wx float64) int {
	return c.Width/2 + int(math.Round(wx*c.Scale))
}

func (c Canvas) y(wy float64) int {
	return c.Height/2 - int(math.Round(wy*c.Scale))
}

const (
	shapeStyle  = "fill:none;stroke:black;stroke-width:2"
	facingStyle = "stroke:red;stroke-width:1"
	labelStyle  = "font-size:12px;fill:black"
)

// facingArrowLength is the length of the rendered facing indicator in
// world units.
const facingArrowLength = 20

// RenderSVG draws every shape in the scene onto an SVG canvas: the shape
// outline, a facing indicator anchored at the reference point, and an
// id/name label.
func (sc *Scene) RenderSVG(w io.Writer, c Canvas) {
	if c.Scale <= 0 {
		c = DefaultCanvas()
	}
	canvas := svg.New(w)
	canvas.Start(c.Width, c.Height)
	for _, s := range sc.Shapes() {
		switch s.Kind {
		case CircleKind:
			r := int(math.Round(s.Radius * c.Scale))
			canvas.Circle(c.x(s.Center.X), c.y(s.Center.Y), r, shapeStyle)
		case PolygonKind:
			xs := make([]int, len(s.Ring))
			ys := make([]int, len(s.Ring))
			for i, v := range s.Ring {
				xs[i] = c.x(v.X)
				ys[i] = c.y(v.Y)
			}
			canvas.Polygon(xs, ys, shapeStyle)
		}
		ref := s.ReferencePoint()
		if deg, ok := vectorAngle(s.Facing); ok {
			rad := deg * math.Pi / 180
			tip := facingArrowLength / c.Scale
			canvas.Line(c.x(ref.X), c.y(ref.Y),
				c.x(ref.X+tip*math.Cos(rad)), c.y(ref.Y+tip*math.Sin(rad)),
				facingStyle)
		}
		canvas.Text(c.x(ref.X)+4, c.y(ref.Y)-4, labelFor(s), labelStyle)
	}
	canvas.End()
}

func labelFor(s *Shape) string {
	if s.Name == "" {
		return s.Kind.String()
	}
	return s.Name
}
