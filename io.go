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
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
)

// sceneFile is the TOML representation of a scene: a list of [[circle]]
// tables and a list of [[polygon]] tables.
type sceneFile struct {
	Circle  []circleSpec
	Polygon []polygonSpec
}

type circleSpec struct {
	ID     int
	Name   string
	Center [2]float64
	Radius float64
	Facing [2]float64
}

type polygonSpec struct {
	ID       int
	Name     string
	Vertices [][2]float64
	Facing   [2]float64
}

// LoadScene reads a TOML scene description from r and builds a Scene from
// it. Every shape is validated on insertion, so a malformed scene file is
// rejected as a whole.
func LoadScene(r io.Reader) (*Scene, error) {
	var f sceneFile
	if _, err := toml.DecodeReader(r, &f); err != nil {
		return nil, fmt.Errorf("srs: problem reading scene file: %v", err)
	}
	sc := NewScene()
	for _, c := range f.Circle {
		err := sc.InsertCircle(c.Center[0], c.Center[1], c.Radius,
			c.Facing[0], c.Facing[1], c.ID, c.Name)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range f.Polygon {
		vertices := make([]geom.Point, len(p.Vertices))
		for i, v := range p.Vertices {
			vertices[i] = geom.Point{X: v[0], Y: v[1]}
		}
		err := sc.InsertPolygon(vertices, p.Facing[0], p.Facing[1], p.ID, p.Name)
		if err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// ReadSceneFile loads a scene from the TOML file at the given path.
func ReadSceneFile(filename string) (*Scene, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("srs: problem opening scene file: %v", err)
	}
	defer f.Close()
	return LoadScene(f)
}
