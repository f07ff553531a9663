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
	"sort"
	"text/tabwriter"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// QueryKind identifies a two-object query.
type QueryKind int

// The supported query kinds. The RCC kinds ask whether the named relation
// holds between the reference and the primary shape; OrientationQuery asks
// for the primary shape's egocentric compass sector, and
// AllocentricOrientationQuery for the direction of the primary shape as
// seen from the reference shape.
const (
	RCCDisjoint QueryKind = iota
	RCCPartialOverlap
	RCCEqual
	RCCProperPart
	RCCProperPartInverse
	OrientationQuery
	AllocentricOrientationQuery
)

var queryKindNames = map[QueryKind]string{
	RCCDisjoint:                 "RCC_DR",
	RCCPartialOverlap:           "RCC_PO",
	RCCEqual:                    "RCC_EQ",
	RCCProperPart:               "RCC_PP",
	RCCProperPartInverse:        "RCC_PPI",
	OrientationQuery:            "ORIENTATION",
	AllocentricOrientationQuery: "ALLOCENTRIC_ORIENTATION",
}

func (k QueryKind) String() string {
	if name, ok := queryKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("QueryKind(%d)", int(k))
}

// ParseQueryKind converts a query kind name such as "RCC_PP" back into a
// QueryKind.
func ParseQueryKind(name string) (QueryKind, error) {
	for k, n := range queryKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("srs: unknown query kind %q", name)
}

// Relation returns the relation an RCC query kind asks about, and whether
// the kind is an RCC kind at all.
func (k QueryKind) Relation() (Relation, bool) {
	switch k {
	case RCCDisjoint:
		return DR, true
	case RCCPartialOverlap:
		return PO, true
	case RCCEqual:
		return EQ, true
	case RCCProperPart:
		return PP, true
	case RCCProperPartInverse:
		return PPI, true
	}
	return 0, false
}

// QueryResult holds the outcome of a two-object query. For RCC kinds,
// Holds reports whether the requested relation is the one that was
// computed, and Relation carries the computed relation. For orientation
// kinds, Sector carries the computed compass sector.
type QueryResult struct {
	Kind     QueryKind
	Holds    bool
	Relation Relation
	Sector   Sector
}

// Label returns the human-readable label for the computed result: the
// relation label for RCC queries and the sector name for orientation
// queries.
func (r QueryResult) Label() string {
	if _, ok := r.Kind.Relation(); ok {
		return r.Relation.String()
	}
	return r.Sector.String()
}

// Scene owns a collection of shapes keyed by id, together with a spatial
// index over their bounding extents. It is the context object queries run
// against; it performs no synchronization, so concurrent mutation must be
// serialized by the caller. Read-only queries against a stable scene are
// safe to run in parallel.
type Scene struct {
	shapes map[int]*Shape
	index  *rtree.Rtree
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{
		shapes: make(map[int]*Shape),
		index:  rtree.NewTree(25, 50),
	}
}

// InsertCircle adds a circle centered at (x, y) with the given radius and
// facing vector (i, j) to the scene.
func (sc *Scene) InsertCircle(x, y, radius, i, j float64, id int, name string) error {
	return sc.insert(NewCircle(x, y, radius, i, j, id, name))
}

// InsertPolygon adds a polygon with the given vertices (in insertion
// order) and facing vector (i, j) to the scene.
func (sc *Scene) InsertPolygon(vertices []geom.Point, i, j float64, id int, name string) error {
	return sc.insert(NewPolygon(vertices, i, j, id, name))
}

func (sc *Scene) insert(s *Shape) error {
	if _, ok := sc.shapes[s.ID]; ok {
		return fmt.Errorf("srs: a shape with id %d already exists", s.ID)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	sc.shapes[s.ID] = s
	sc.index.Insert(s)
	return nil
}

// Remove deletes the shape with the given id from the scene, freeing the
// id for reuse.
func (sc *Scene) Remove(id int) error {
	s, ok := sc.shapes[id]
	if !ok {
		return UnknownShapeError{ID: id}
	}
	delete(sc.shapes, id)
	sc.index.Delete(s)
	return nil
}

// Get returns the shape with the given id.
func (sc *Scene) Get(id int) (*Shape, error) {
	s, ok := sc.shapes[id]
	if !ok {
		return nil, UnknownShapeError{ID: id}
	}
	return s, nil
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}

// Shapes returns all shapes in the scene, ordered by id.
func (sc *Scene) Shapes() []*Shape {
	out := make([]*Shape, 0, len(sc.shapes))
	for _, s := range sc.shapes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Neighbors returns the shapes whose bounding extents overlap that of the
// shape with the given id, ordered by id. It is a fast pre-filter: two
// shapes whose extents do not overlap are necessarily disconnected.
func (sc *Scene) Neighbors(id int) ([]*Shape, error) {
	s, err := sc.Get(id)
	if err != nil {
		return nil, err
	}
	var out []*Shape
	for _, hit := range sc.index.SearchIntersect(s.Bounds()) {
		o := hit.(*Shape)
		if o.ID != s.ID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// TwoObjectQuery resolves both shape ids and routes the query to the
// appropriate engine. RCC kinds compare the computed relation between the
// reference and primary shapes against the requested one, OrientationQuery
// computes the primary shape's egocentric sector, and
// AllocentricOrientationQuery computes the direction of the primary shape
// as seen from the reference shape. The query reads shape state but never
// mutates it.
func (sc *Scene) TwoObjectQuery(kind QueryKind, referenceID, primaryID int) (QueryResult, error) {
	ref, err := sc.Get(referenceID)
	if err != nil {
		return QueryResult{}, err
	}
	prim, err := sc.Get(primaryID)
	if err != nil {
		return QueryResult{}, err
	}
	// Shapes are validated at insertion; check again so a query can never
	// operate on degenerate geometry.
	if err := ref.Validate(); err != nil {
		return QueryResult{}, err
	}
	if err := prim.Validate(); err != nil {
		return QueryResult{}, err
	}
	if want, ok := kind.Relation(); ok {
		rel, err := Classify(ref, prim)
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{Kind: kind, Relation: rel, Holds: rel == want}, nil
	}
	switch kind {
	case OrientationQuery:
		sec, err := Orientation(prim)
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{Kind: kind, Sector: sec}, nil
	case AllocentricOrientationQuery:
		sec, err := AllocentricOrientation(ref, prim)
		if err != nil {
			return QueryResult{}, err
		}
		return QueryResult{Kind: kind, Sector: sec}, nil
	}
	return QueryResult{}, UnsupportedQueryError{Kind: kind}
}

// WriteRelativeOrientations writes a table of the allocentric orientation
// of every ordered pair of shapes in the scene. Pairs without a defined
// orientation are reported as undefined.
func (sc *Scene) WriteRelativeOrientations(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, '\t', 0)
	fmt.Fprintln(tw, "observer\ttarget\tdirection")
	shapes := sc.Shapes()
	for _, obs := range shapes {
		for _, tgt := range shapes {
			if obs.ID == tgt.ID {
				continue
			}
			sec, err := AllocentricOrientation(obs, tgt)
			label := "undefined"
			if err == nil {
				label = sec.String()
			}
			fmt.Fprintf(tw, "%s (%d)\t%s (%d)\t%s\n", obs.Name, obs.ID, tgt.Name, tgt.ID, label)
		}
	}
	return tw.Flush()
}
