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
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewSceneServer(testScene(t), DefaultCanvas())
	l := logrus.New()
	l.Out = ioutil.Discard
	srv.Log = l
	return httptest.NewServer(srv)
}

func TestServerShapes(t *testing.T) {
	ts := testServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/shapes")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200 but have %d", resp.StatusCode)
	}
	var shapes []shapeInfo
	if err := json.NewDecoder(resp.Body).Decode(&shapes); err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 3 {
		t.Fatalf("shape count: want 3 but have %d", len(shapes))
	}
	if shapes[0].ID != 1 || shapes[0].Name != "room" || shapes[0].Kind != "polygon" {
		t.Errorf("first shape: have %+v", shapes[0])
	}
}

func TestServerQuery(t *testing.T) {
	ts := testServer(t)
	defer ts.Close()

	cases := []struct {
		name       string
		query      string
		wantStatus int
		wantHolds  bool
		wantLabel  string
	}{
		{
			name:       "relation holds",
			query:      "kind=RCC_PPI&reference=1&primary=2",
			wantStatus: http.StatusOK,
			wantHolds:  true,
			wantLabel:  "proper part inverse",
		},
		{
			name:       "relation does not hold",
			query:      "kind=RCC_PO&reference=1&primary=2",
			wantStatus: http.StatusOK,
			wantHolds:  false,
			wantLabel:  "proper part inverse",
		},
		{
			name:       "orientation",
			query:      "kind=ORIENTATION&reference=1&primary=2",
			wantStatus: http.StatusOK,
			wantLabel:  "E",
		},
		{
			name:       "unknown shape",
			query:      "kind=RCC_DR&reference=1&primary=99",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown kind",
			query:      "kind=RCC_EC&reference=1&primary=2",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed id",
			query:      "kind=RCC_DR&reference=one&primary=2",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, c := range cases {
		resp, err := http.Get(ts.URL + "/query?" + c.query)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if resp.StatusCode != c.wantStatus {
			t.Errorf("%s: status want %d but have %d", c.name, c.wantStatus, resp.StatusCode)
			resp.Body.Close()
			continue
		}
		if c.wantStatus != http.StatusOK {
			resp.Body.Close()
			continue
		}
		var qr queryResponse
		if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		resp.Body.Close()
		if qr.Holds != c.wantHolds || qr.Label != c.wantLabel {
			t.Errorf("%s: want (%t, %q) but have (%t, %q)", c.name,
				c.wantHolds, c.wantLabel, qr.Holds, qr.Label)
		}
	}
}

func TestServerCanvas(t *testing.T) {
	ts := testServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/canvas.svg")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200 but have %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type: want image/svg+xml but have %q", ct)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "</svg>") {
		t.Error("canvas response should be a complete SVG document")
	}
}

func TestServerOrientations(t *testing.T) {
	ts := testServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/orientations")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200 but have %d", resp.StatusCode)
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "observer") {
		t.Errorf("orientation table should carry a header:\n%s", body)
	}
}
