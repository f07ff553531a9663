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
	"strings"
	"testing"
)

const testSceneTOML = `
[[circle]]
id = 1
name = "ball"
center = [5.0, 5.0]
radius = 1.0
facing = [1.0, 0.0]

[[polygon]]
id = 2
name = "room"
vertices = [[0.0, 0.0], [10.0, 0.0], [10.0, 10.0], [0.0, 10.0]]
facing = [0.0, 1.0]
`

func TestLoadScene(t *testing.T) {
	sc, err := LoadScene(strings.NewReader(testSceneTOML))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Len() != 2 {
		t.Fatalf("scene size: want 2 but have %d", sc.Len())
	}

	ball, err := sc.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if ball.Kind != CircleKind || ball.Name != "ball" || !approxEqual(ball.Radius, 1) {
		t.Errorf("ball: have %+v", ball)
	}
	room, err := sc.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if room.Kind != PolygonKind || len(room.Ring) != 4 {
		t.Errorf("room: have %+v", room)
	}

	// A loaded scene answers queries like one built programmatically.
	result, err := sc.TwoObjectQuery(RCCProperPart, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Holds || result.Relation != PP {
		t.Errorf("ball in room: want PP but have %v", result.Relation)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	cases := []struct {
		name, toml string
	}{
		{
			name: "malformed TOML",
			toml: "[[circle]\nid = 1",
		},
		{
			name: "invalid radius",
			toml: "[[circle]]\nid = 1\nname = \"bad\"\ncenter = [0.0, 0.0]\nradius = -1.0\nfacing = [0.0, 1.0]",
		},
		{
			name: "duplicate id",
			toml: testSceneTOML + "\n[[circle]]\nid = 1\nname = \"dup\"\ncenter = [0.0, 0.0]\nradius = 1.0\nfacing = [0.0, 1.0]",
		},
	}
	for _, c := range cases {
		if _, err := LoadScene(strings.NewReader(c.toml)); err == nil {
			t.Errorf("%s: want error but have nil", c.name)
		}
	}
}

func TestReadSceneFileMissing(t *testing.T) {
	if _, err := ReadSceneFile("testdata/no_such_scene.toml"); err == nil {
		t.Error("missing file: want error but have nil")
	}
}
