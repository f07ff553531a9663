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
	"reflect"
	"testing"

	"github.com/ctessum/geom"
	"github.com/kr/pretty"
)

func TestCircleArea(t *testing.T) {
	c := NewCircle(0, 0, 2, 0, 1, 1, "c")
	want := math.Pi * 4
	if have := c.Area(); !approxEqual(want, have) {
		t.Errorf("area: want %g but have %g", want, have)
	}
}

func TestPolygonArea(t *testing.T) {
	// A unit right triangle, clockwise winding.
	p := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, 0, 1, 1, "t")
	if have := p.Area(); !approxEqual(0.5, have) {
		t.Errorf("area: want 0.5 but have %g", have)
	}
	if p.Counterclockwise() {
		t.Error("winding: want clockwise but have counterclockwise")
	}
	ccw := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 0, 1, 2, "t2")
	if !ccw.Counterclockwise() {
		t.Error("winding: want counterclockwise but have clockwise")
	}
}

func TestShapeBounds(t *testing.T) {
	c := NewCircle(1, 2, 3, 0, 0, 1, "c")
	want := &geom.Bounds{
		Min: geom.Point{X: -2, Y: -1},
		Max: geom.Point{X: 4, Y: 5},
	}
	if have := c.Bounds(); !reflect.DeepEqual(want, have) {
		t.Errorf("circle bounds: %v", pretty.Diff(want, have))
	}

	p := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}}, 0, 0, 2, "p")
	want = &geom.Bounds{
		Min: geom.Point{X: 0, Y: 0},
		Max: geom.Point{X: 4, Y: 2},
	}
	if have := p.Bounds(); !reflect.DeepEqual(want, have) {
		t.Errorf("polygon bounds: %v", pretty.Diff(want, have))
	}
}

func TestReferencePoint(t *testing.T) {
	c := NewCircle(3, -1, 2, 0, 0, 1, "c")
	if have := c.ReferencePoint(); !have.Equals(geom.Point{X: 3, Y: -1}) {
		t.Errorf("circle reference point: want (3,-1) but have %v", have)
	}

	// An L-shaped polygon: the bounding-extent center, not the centroid.
	p := NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 4}, {X: 0, Y: 4},
	}, 0, 0, 2, "l")
	if have := p.ReferencePoint(); !have.Equals(geom.Point{X: 2, Y: 2}) {
		t.Errorf("polygon reference point: want (2,2) but have %v", have)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		shape *Shape
		ok    bool
	}{
		{NewCircle(0, 0, 1, 0, 0, 1, "ok circle"), true},
		{NewCircle(0, 0, 0, 0, 0, 2, "zero radius"), false},
		{NewCircle(0, 0, -1, 0, 0, 3, "negative radius"), false},
		{NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, 0, 0, 4, "ok polygon"), true},
		{NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0, 0, 5, "two vertices"), false},
		{NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 0, 0, 6, "collinear"), false},
	}
	for _, c := range cases {
		err := c.shape.Validate()
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.shape.Name, err)
		}
		if !c.ok {
			if err == nil {
				t.Errorf("%s: want error but have nil", c.shape.Name)
				continue
			}
			if _, isInvalid := err.(InvalidGeometryError); !isInvalid {
				t.Errorf("%s: want InvalidGeometryError but have %T", c.shape.Name, err)
			}
		}
	}
}

func TestBoundaryDistance(t *testing.T) {
	c := NewCircle(0, 0, 2, 0, 0, 1, "c")
	if have := c.boundaryDistance(geom.Point{X: 5, Y: 0}); !approxEqual(3, have) {
		t.Errorf("circle boundary distance: want 3 but have %g", have)
	}
	if have := c.boundaryDistance(geom.Point{X: 0, Y: 0}); !approxEqual(2, have) {
		t.Errorf("circle boundary distance from center: want 2 but have %g", have)
	}

	p := NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}, 0, 0, 2, "sq")
	if have := p.boundaryDistance(geom.Point{X: 2, Y: 2}); !approxEqual(2, have) {
		t.Errorf("polygon boundary distance from center: want 2 but have %g", have)
	}
	if have := p.boundaryDistance(geom.Point{X: 6, Y: 2}); !approxEqual(2, have) {
		t.Errorf("polygon boundary distance from outside: want 2 but have %g", have)
	}
}

func TestContains(t *testing.T) {
	c := NewCircle(0, 0, 2, 0, 0, 1, "c")
	cases := []struct {
		p    geom.Point
		want geom.WithinStatus
	}{
		{geom.Point{X: 0, Y: 0}, geom.Inside},
		{geom.Point{X: 2, Y: 0}, geom.OnEdge},
		{geom.Point{X: 3, Y: 0}, geom.Outside},
	}
	for _, cs := range cases {
		if have := c.contains(cs.p); have != cs.want {
			t.Errorf("contains(%v): want %v but have %v", cs.p, cs.want, have)
		}
	}
}
