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
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// SceneServer exposes a scene over HTTP: JSON endpoints for shape listing
// and two-object queries, an SVG rendering of the canvas, and the pairwise
// allocentric-orientation table. The server only reads scene state, so it
// may serve concurrent requests against a stable scene.
type SceneServer struct {
	Log logrus.FieldLogger

	scene  *Scene
	canvas Canvas
	mux    *http.ServeMux
}

// NewSceneServer creates a server for the given scene and canvas.
func NewSceneServer(scene *Scene, canvas Canvas) *SceneServer {
	s := &SceneServer{
		Log:    logrus.StandardLogger(),
		scene:  scene,
		canvas: canvas,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("/shapes", s.shapesHandler)
	s.mux.HandleFunc("/query", s.queryHandler)
	s.mux.HandleFunc("/canvas.svg", s.canvasHandler)
	s.mux.HandleFunc("/orientations", s.orientationsHandler)
	return s
}

func (s *SceneServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Info("handling request")
	s.mux.ServeHTTP(w, r)
}

type shapeInfo struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Reference [2]float64 `json:"reference"`
	Area      float64    `json:"area"`
}

func (s *SceneServer) shapesHandler(w http.ResponseWriter, r *http.Request) {
	shapes := s.scene.Shapes()
	out := make([]shapeInfo, len(shapes))
	for i, sh := range shapes {
		ref := sh.ReferencePoint()
		out[i] = shapeInfo{
			ID:        sh.ID,
			Name:      sh.Name,
			Kind:      sh.Kind.String(),
			Reference: [2]float64{ref.X, ref.Y},
			Area:      sh.Area(),
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.Log.WithError(err).Error("encoding shape list")
	}
}

type queryResponse struct {
	Kind  string `json:"kind"`
	Holds bool   `json:"holds"`
	Label string `json:"label"`
}

func (s *SceneServer) queryHandler(w http.ResponseWriter, r *http.Request) {
	kind, err := ParseQueryKind(r.FormValue("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	referenceID, err := strconv.Atoi(r.FormValue("reference"))
	if err != nil {
		http.Error(w, "srs: malformed reference id", http.StatusBadRequest)
		return
	}
	primaryID, err := strconv.Atoi(r.FormValue("primary"))
	if err != nil {
		http.Error(w, "srs: malformed primary id", http.StatusBadRequest)
		return
	}
	result, err := s.scene.TwoObjectQuery(kind, referenceID, primaryID)
	if err != nil {
		http.Error(w, err.Error(), queryErrorStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	resp := queryResponse{Kind: result.Kind.String(), Holds: result.Holds, Label: result.Label()}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.Log.WithError(err).Error("encoding query result")
	}
}

// queryErrorStatus maps engine error kinds to HTTP statuses.
func queryErrorStatus(err error) int {
	switch err.(type) {
	case UnknownShapeError:
		return http.StatusNotFound
	case UnsupportedQueryError:
		return http.StatusBadRequest
	case InvalidGeometryError, UndefinedOrientationError:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *SceneServer) canvasHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	s.scene.RenderSVG(w, s.canvas)
}

func (s *SceneServer) orientationsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.scene.WriteRelativeOrientations(w); err != nil {
		s.Log.WithError(err).Error("writing orientation table")
	}
}
