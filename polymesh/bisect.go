package polymesh

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/multi-bisect/bisect"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PlaneEpsilon is the distance within which a vertex is considered to lie on
// a cutting plane.
const PlaneEpsilon = 1e-8

// Bisect cuts the faces and edges in geom with a plane.
//
// Every edge in geom which crosses the plane, including the edges of faces in
// geom, is split at the point of intersection. Faces in geom which cross the
// plane are split in two along a new edge.
//
// The result is the geometry of the cut region: the faces in geom and the new
// halves of split faces, all of their edges, the edges in geom and their
// split halves, and every vertex of those elements. Faces come first, then
// edges, then vertices, each ordered by ID.
//
// If any face would be crossed more than twice (e.g. a concave face), an error
// is returned and the mesh is not modified.
func (m *Mesh) Bisect(geom []Element, plane bisect.Plane) ([]Element, error) {
	if len(geom) == 0 {
		return []Element{}, nil
	}
	if !plane.Valid() {
		return nil, errors.Wrap(bisect.ErrDegenerateNormal, "bisect mesh")
	}

	inVerts := map[int]struct{}{}
	inEdges := map[int]struct{}{}
	inFaces := map[int]struct{}{}
	for _, elem := range geom {
		if !m.valid(elem) {
			return nil, errors.Wrapf(ErrUnknownElement, "bisect mesh: %v", elem)
		}
		switch elem.Kind {
		case VertexKind:
			inVerts[elem.ID] = struct{}{}
		case EdgeKind:
			inEdges[elem.ID] = struct{}{}
		case FaceKind:
			inFaces[elem.ID] = struct{}{}
			for _, e := range m.faces[elem.ID].Edges {
				inEdges[e] = struct{}{}
			}
		}
	}

	sides := &sideCache{mesh: m, plane: plane, sides: map[int]int{}}

	faceIDs := sortedKeys(inFaces)
	for _, f := range faceIDs {
		if n := m.crossings(f, sides); n > 2 {
			return nil, errors.Wrapf(ErrMultipleCrossings, "bisect mesh: face %d crosses %d times",
				f, n)
		}
	}

	outEdges := maps.Clone(inEdges)
	for _, e := range sortedKeys(inEdges) {
		ed := m.edges[e]
		if sides.Side(ed.Verts[0])*sides.Side(ed.Verts[1]) >= 0 {
			continue
		}
		c1 := m.vertices[ed.Verts[0]].Coord
		c2 := m.vertices[ed.Verts[1]].Coord
		d1 := plane.SignedDist(c1)
		d2 := plane.SignedDist(c2)
		alpha := math.Max(0, math.Min(1, d1/(d1-d2)))
		v := m.AddVertex(c1.Add(c2.Sub(c1).Scale(alpha)))
		sides.sides[v] = 0
		outEdges[m.splitEdge(e, v)] = struct{}{}
	}

	outFaces := maps.Clone(inFaces)
	for _, f := range faceIDs {
		if newFace, ok := m.splitFace(f, sides); ok {
			outFaces[newFace] = struct{}{}
		}
	}

	for f := range outFaces {
		for _, e := range m.faces[f].Edges {
			outEdges[e] = struct{}{}
		}
	}
	outVerts := maps.Clone(inVerts)
	for e := range outEdges {
		for _, v := range m.edges[e].Verts {
			outVerts[v] = struct{}{}
		}
	}

	m.dirty = true

	res := make([]Element, 0, len(outFaces)+len(outEdges)+len(outVerts))
	for _, f := range sortedKeys(outFaces) {
		res = append(res, FaceElement(f))
	}
	for _, e := range sortedKeys(outEdges) {
		res = append(res, EdgeElement(e))
	}
	for _, v := range sortedKeys(outVerts) {
		res = append(res, VertexElement(v))
	}
	return res, nil
}

// crossings counts the number of times the loop of a face switches between
// the two sides of the plane, ignoring vertices on the plane.
func (m *Mesh) crossings(f int, sides *sideCache) int {
	var signs []int
	for _, v := range m.faces[f].Verts {
		if s := sides.Side(v); s != 0 {
			signs = append(signs, s)
		}
	}
	var count int
	for i, s := range signs {
		if s != signs[(i+1)%len(signs)] {
			count++
		}
	}
	return count
}

// splitEdge inserts a vertex v into the middle of edge e, updating the loops
// of the adjacent faces.
//
// Edge e is shortened to end at v, and the returned new edge covers the rest.
func (m *Mesh) splitEdge(e, v int) int {
	ed := m.edges[e]
	v1, v2 := ed.Verts[0], ed.Verts[1]
	newID := len(m.edges)
	m.edges = append(m.edges, &edge{
		Verts:    [2]int{v, v2},
		Faces:    append([]int{}, ed.Faces...),
		Selected: ed.Selected,
	})
	ed.Verts[1] = v
	delete(m.edgeIndex, edgeKey(v1, v2))
	m.edgeIndex[edgeKey(v1, v)] = e
	m.edgeIndex[edgeKey(v, v2)] = newID

	for _, f := range ed.Faces {
		fc := m.faces[f]
		i := slices.Index(fc.Edges, e)
		first, second := e, newID
		if fc.Verts[i] != v1 {
			first, second = newID, e
		}
		fc.Verts = slices.Insert(fc.Verts, i+1, v)
		fc.Edges[i] = first
		fc.Edges = slices.Insert(fc.Edges, i+1, second)
	}
	return newID
}

// splitFace divides a face whose crossing edges have already been split, so
// that the loop passes through on-plane vertices between the two sides.
//
// Face f keeps one side and the returned new face gets the other.
func (m *Mesh) splitFace(f int, sides *sideCache) (int, bool) {
	fc := m.faces[f]
	n := len(fc.Verts)
	start := -1
	for i, v := range fc.Verts {
		if sides.Side(v) != 0 {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}

	// Find the first on-plane vertex of each run separating the sides.
	var cuts []int
	cur := sides.Side(fc.Verts[start])
	firstZero := -1
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		s := sides.Side(fc.Verts[i])
		if s == 0 {
			if firstZero == -1 {
				firstZero = i
			}
			continue
		}
		if s != cur {
			if firstZero == -1 {
				// The crossing edge was not split.
				return 0, false
			}
			cuts = append(cuts, firstZero)
			cur = s
		}
		firstZero = -1
	}
	if len(cuts) != 2 {
		return 0, false
	}
	p, q := cuts[0], cuts[1]
	vp, vq := fc.Verts[p], fc.Verts[q]

	cutEdge := m.findOrAddEdge(vq, vp)
	newID := len(m.faces)
	newFace := &face{
		Verts:    cyclicSlice(fc.Verts, q, p),
		Edges:    append(cyclicSlice(fc.Edges, q, p)[:cyclicLen(n, q, p)-1], cutEdge),
		Selected: fc.Selected,
	}
	fc.Verts, fc.Edges = cyclicSlice(fc.Verts, p, q),
		append(cyclicSlice(fc.Edges, p, q)[:cyclicLen(n, p, q)-1], cutEdge)
	m.faces = append(m.faces, newFace)

	for _, e := range newFace.Edges {
		if e == cutEdge {
			continue
		}
		faces := m.edges[e].Faces
		faces[slices.Index(faces, f)] = newID
	}
	m.edges[cutEdge].Faces = append(m.edges[cutEdge].Faces, f, newID)

	return newID, true
}

// cyclicSlice gets s[from], s[from+1], ..., s[to], wrapping around the end.
func cyclicSlice(s []int, from, to int) []int {
	res := make([]int, 0, cyclicLen(len(s), from, to))
	for i := from; ; i = (i + 1) % len(s) {
		res = append(res, s[i])
		if i == to {
			break
		}
	}
	return res
}

func cyclicLen(n, from, to int) int {
	return (to-from+n)%n + 1
}

type sideCache struct {
	mesh  *Mesh
	plane bisect.Plane
	sides map[int]int
}

// Side returns 1 or -1 depending on the side of the plane a vertex is on, or
// 0 if it is within PlaneEpsilon of the plane.
func (s *sideCache) Side(v int) int {
	if side, ok := s.sides[v]; ok {
		return side
	}
	d := s.plane.SignedDist(s.mesh.vertices[v].Coord)
	var side int
	if d > PlaneEpsilon {
		side = 1
	} else if d < -PlaneEpsilon {
		side = -1
	}
	s.sides[v] = side
	return side
}

func sortedKeys(m map[int]struct{}) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
