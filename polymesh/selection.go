package polymesh

import "github.com/unixpickle/model3d/model3d"

// Select marks an element as selected. Invalid handles are ignored.
func (m *Mesh) Select(e Element) {
	m.setSelected(e, true)
}

// Deselect clears the selection mark of an element.
func (m *Mesh) Deselect(e Element) {
	m.setSelected(e, false)
}

// Selected checks if an element is selected. Invalid handles are never
// selected.
func (m *Mesh) Selected(e Element) bool {
	if !m.valid(e) {
		return false
	}
	switch e.Kind {
	case VertexKind:
		return m.vertices[e.ID].Selected
	case EdgeKind:
		return m.edges[e.ID].Selected
	default:
		return m.faces[e.ID].Selected
	}
}

func (m *Mesh) setSelected(e Element, selected bool) {
	if !m.valid(e) {
		return
	}
	switch e.Kind {
	case VertexKind:
		m.vertices[e.ID].Selected = selected
	case EdgeKind:
		m.edges[e.ID].Selected = selected
	case FaceKind:
		m.faces[e.ID].Selected = selected
	}
}

// SelectFaces selects every face for which f returns true, given the face's
// vertex loop, and returns the number of faces selected by the call.
func (m *Mesh) SelectFaces(f func(coords []model3d.Coord3D) bool) int {
	var count int
	for _, face := range m.faces {
		if f(m.coords(face.Verts)) {
			face.Selected = true
			count++
			for _, e := range face.Edges {
				m.edges[e].Selected = true
			}
			for _, v := range face.Verts {
				m.vertices[v].Selected = true
			}
		}
	}
	return count
}

// SelectAllFaces selects every face along with its edges and vertices.
func (m *Mesh) SelectAllFaces() {
	m.SelectFaces(func([]model3d.Coord3D) bool {
		return true
	})
}

// SelectedFaces returns the selected faces in order of ID.
func (m *Mesh) SelectedFaces() []Element {
	var res []Element
	for i, f := range m.faces {
		if f.Selected {
			res = append(res, FaceElement(i))
		}
	}
	return res
}

// NumSelected counts the selected elements of a kind.
func (m *Mesh) NumSelected(kind Kind) int {
	var count int
	switch kind {
	case VertexKind:
		for _, v := range m.vertices {
			if v.Selected {
				count++
			}
		}
	case EdgeKind:
		for _, e := range m.edges {
			if e.Selected {
				count++
			}
		}
	case FaceKind:
		for _, f := range m.faces {
			if f.Selected {
				count++
			}
		}
	}
	return count
}
