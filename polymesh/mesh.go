// Package polymesh implements an editable polygon mesh with per-element
// selection flags, suitable as a host for bisect.Bisector.
package polymesh

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/multi-bisect/bisect"
)

var (
	ErrUnknownElement    = errors.New("unknown mesh element")
	ErrBadFace           = errors.New("invalid face")
	ErrMultipleCrossings = errors.New("face is crossed by the plane more than twice")
)

var _ bisect.Mesh[Element] = (*Mesh)(nil)

// A Kind identifies whether an Element is a vertex, edge, or face.
type Kind uint8

const (
	VertexKind Kind = iota
	EdgeKind
	FaceKind
)

func (k Kind) String() string {
	switch k {
	case VertexKind:
		return "vertex"
	case EdgeKind:
		return "edge"
	case FaceKind:
		return "face"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Element is a handle to a vertex, edge, or face of a Mesh.
type Element struct {
	Kind Kind
	ID   int
}

// VertexElement creates a handle to the vertex with the given ID.
func VertexElement(id int) Element {
	return Element{Kind: VertexKind, ID: id}
}

// EdgeElement creates a handle to the edge with the given ID.
func EdgeElement(id int) Element {
	return Element{Kind: EdgeKind, ID: id}
}

// FaceElement creates a handle to the face with the given ID.
func FaceElement(id int) Element {
	return Element{Kind: FaceKind, ID: id}
}

func (e Element) String() string {
	return fmt.Sprintf("%s %d", e.Kind, e.ID)
}

type vertex struct {
	Coord    model3d.Coord3D
	Selected bool
}

type edge struct {
	Verts    [2]int
	Faces    []int
	Selected bool
}

// A face is a closed loop of vertices, where Edges[i] connects Verts[i] to
// Verts[(i+1) % len(Verts)].
type face struct {
	Verts    []int
	Edges    []int
	Selected bool

	// Derived data, computed by Update().
	Normal    model3d.Coord3D
	Triangles []*model3d.Triangle
}

// A Mesh is a polygon mesh where faces share edges and vertices.
//
// Elements are never removed, so IDs stay valid as the mesh is cut.
type Mesh struct {
	vertices  []*vertex
	edges     []*edge
	faces     []*face
	edgeIndex map[[2]int]int
	dirty     bool
}

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{edgeIndex: map[[2]int]int{}}
}

// FromModel3D creates a mesh with one face per triangle, merging vertices with
// identical coordinates.
//
// Triangles with two or more identical corners cannot form a face, so they are
// skipped and counted in the second return value.
func FromModel3D(m *model3d.Mesh) (mesh *Mesh, skipped int) {
	res := New()
	ids := map[model3d.Coord3D]int{}
	m.Iterate(func(t *model3d.Triangle) {
		var verts [3]int
		for i, c := range t {
			id, ok := ids[c]
			if !ok {
				id = res.AddVertex(c)
				ids[c] = id
			}
			verts[i] = id
		}
		if _, err := res.AddFace(verts[:]...); err != nil {
			skipped++
		}
	})
	res.Update()
	return res, skipped
}

// NumVertices gets the number of vertices, which is one more than the
// largest vertex ID.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumEdges gets the number of edges.
func (m *Mesh) NumEdges() int {
	return len(m.edges)
}

// NumFaces gets the number of faces.
func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// AddVertex creates an unconnected vertex and returns its ID.
func (m *Mesh) AddVertex(c model3d.Coord3D) int {
	m.vertices = append(m.vertices, &vertex{Coord: c})
	return len(m.vertices) - 1
}

// AddFace creates a face from a loop of at least three distinct vertex IDs,
// creating the edges which do not exist yet.
func (m *Mesh) AddFace(verts ...int) (int, error) {
	if len(verts) < 3 {
		return 0, errors.Wrapf(ErrBadFace, "face has %d vertices", len(verts))
	}
	seen := map[int]bool{}
	for _, v := range verts {
		if v < 0 || v >= len(m.vertices) {
			return 0, errors.Wrapf(ErrUnknownElement, "vertex %d", v)
		} else if seen[v] {
			return 0, errors.Wrapf(ErrBadFace, "vertex %d repeated", v)
		}
		seen[v] = true
	}

	id := len(m.faces)
	f := &face{
		Verts: append([]int{}, verts...),
		Edges: make([]int, len(verts)),
	}
	for i, v := range verts {
		e := m.findOrAddEdge(v, verts[(i+1)%len(verts)])
		m.edges[e].Faces = append(m.edges[e].Faces, id)
		f.Edges[i] = e
	}
	m.faces = append(m.faces, f)
	m.dirty = true
	return id, nil
}

// VertexCoord gets the position of a vertex.
func (m *Mesh) VertexCoord(id int) model3d.Coord3D {
	return m.vertices[id].Coord
}

// EdgeVertices gets the two endpoints of an edge.
func (m *Mesh) EdgeVertices(id int) [2]int {
	return m.edges[id].Verts
}

// FaceVertices gets the vertex loop of a face.
func (m *Mesh) FaceVertices(id int) []int {
	return append([]int{}, m.faces[id].Verts...)
}

// FaceCoords gets the coordinates of the vertex loop of a face.
func (m *Mesh) FaceCoords(id int) []model3d.Coord3D {
	return m.coords(m.faces[id].Verts)
}

// FaceEdges returns the edges around a face, or nil if face is not a valid
// face handle.
func (m *Mesh) FaceEdges(face Element) []Element {
	if face.Kind != FaceKind || !m.valid(face) {
		return nil
	}
	res := make([]Element, len(m.faces[face.ID].Edges))
	for i, e := range m.faces[face.ID].Edges {
		res[i] = EdgeElement(e)
	}
	return res
}

func (m *Mesh) findOrAddEdge(v1, v2 int) int {
	key := edgeKey(v1, v2)
	if id, ok := m.edgeIndex[key]; ok {
		return id
	}
	id := len(m.edges)
	m.edges = append(m.edges, &edge{Verts: [2]int{v1, v2}})
	m.edgeIndex[key] = id
	return id
}

func (m *Mesh) valid(e Element) bool {
	if e.ID < 0 {
		return false
	}
	switch e.Kind {
	case VertexKind:
		return e.ID < len(m.vertices)
	case EdgeKind:
		return e.ID < len(m.edges)
	case FaceKind:
		return e.ID < len(m.faces)
	}
	return false
}

func (m *Mesh) coords(verts []int) []model3d.Coord3D {
	res := make([]model3d.Coord3D, len(verts))
	for i, v := range verts {
		res[i] = m.vertices[v].Coord
	}
	return res
}

func edgeKey(v1, v2 int) [2]int {
	if v1 > v2 {
		return [2]int{v2, v1}
	}
	return [2]int{v1, v2}
}
