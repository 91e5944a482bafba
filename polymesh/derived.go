package polymesh

import (
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
)

// Update recomputes the normal and triangulation of every face.
func (m *Mesh) Update() {
	essentials.ConcurrentMap(0, len(m.faces), func(i int) {
		f := m.faces[i]
		coords := m.coords(f.Verts)
		f.Normal = polygonNormal(coords)
		f.Triangles = triangulate(coords, f.Normal)
	})
	m.dirty = false
}

// FaceNormal gets the unit normal of a face, computed by the last Update().
func (m *Mesh) FaceNormal(id int) model3d.Coord3D {
	m.updateIfDirty()
	return m.faces[id].Normal
}

// Model3D creates a triangle mesh from all of the faces.
func (m *Mesh) Model3D() *model3d.Mesh {
	return m.triangleMesh(func(*face) bool {
		return true
	})
}

// SelectedModel3D creates a triangle mesh from the selected faces.
func (m *Mesh) SelectedModel3D() *model3d.Mesh {
	return m.triangleMesh(func(f *face) bool {
		return f.Selected
	})
}

func (m *Mesh) triangleMesh(include func(f *face) bool) *model3d.Mesh {
	m.updateIfDirty()
	res := model3d.NewMesh()
	for _, f := range m.faces {
		if !include(f) {
			continue
		}
		for _, t := range f.Triangles {
			t1 := *t
			res.Add(&t1)
		}
	}
	return res
}

func (m *Mesh) updateIfDirty() {
	if m.dirty {
		m.Update()
	}
}

// polygonNormal computes a normal with Newell's method, which tolerates
// slightly non-planar loops.
func polygonNormal(coords []model3d.Coord3D) model3d.Coord3D {
	var n model3d.Coord3D
	for i, c := range coords {
		next := coords[(i+1)%len(coords)]
		n.X += (c.Y - next.Y) * (c.Z + next.Z)
		n.Y += (c.Z - next.Z) * (c.X + next.X)
		n.Z += (c.X - next.X) * (c.Y + next.Y)
	}
	if norm := n.Norm(); norm != 0 {
		n = n.Scale(1 / norm)
	}
	return n
}
