package polymesh

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestAddFaceSharesEdges(t *testing.T) {
	m := New()
	for _, c := range []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 0, 0),
		model3d.XYZ(1, 1, 0),
		model3d.XYZ(0, 1, 0),
	} {
		m.AddVertex(c)
	}
	if _, err := m.AddFace(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddFace(0, 2, 3); err != nil {
		t.Fatal(err)
	}
	if m.NumEdges() != 5 || m.NumFaces() != 2 {
		t.Fatalf("unexpected counts: edges=%d faces=%d", m.NumEdges(), m.NumFaces())
	}
	shared := m.FaceEdges(FaceElement(1))[0]
	if shared != m.FaceEdges(FaceElement(0))[2] {
		t.Fatalf("diagonal edge should be shared: %v", shared)
	}

	for _, verts := range [][]int{{0, 1}, {0, 1, 1}, {0, 1, 7}} {
		if _, err := m.AddFace(verts...); err == nil {
			t.Fatalf("expected error for face %v", verts)
		}
	}
}

func TestFromModel3D(t *testing.T) {
	tris := []*model3d.Triangle{
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 0, 0), model3d.XYZ(1, 1, 0)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(1, 1, 0), model3d.XYZ(0, 1, 0)},
		{model3d.XYZ(0, 0, 0), model3d.XYZ(0, 0, 0), model3d.XYZ(0, 1, 0)},
	}
	m, skipped := FromModel3D(model3d.NewMeshTriangles(tris))
	if skipped != 1 {
		t.Fatalf("expected 1 skipped triangle but got %d", skipped)
	}
	if m.NumVertices() != 4 || m.NumEdges() != 5 || m.NumFaces() != 2 {
		t.Fatalf("unexpected counts: verts=%d edges=%d faces=%d", m.NumVertices(),
			m.NumEdges(), m.NumFaces())
	}
	for i := 0; i < m.NumFaces(); i++ {
		if m.FaceNormal(i).Dist(model3d.Z(1)) > 1e-8 {
			t.Fatalf("face %d has normal %v", i, m.FaceNormal(i))
		}
	}
	if n := m.Model3D().NumTriangles(); n != 2 {
		t.Fatalf("expected 2 triangles but got %d", n)
	}
}

func TestSelection(t *testing.T) {
	m := testCube()
	if len(m.SelectedFaces()) != 0 {
		t.Fatal("new mesh should have no selection")
	}
	count := m.SelectFaces(func(coords []model3d.Coord3D) bool {
		for _, c := range coords {
			if c.Z != 1 {
				return false
			}
		}
		return true
	})
	if count != 1 || len(m.SelectedFaces()) != 1 {
		t.Fatalf("expected only the top face to be selected, got %d", count)
	}
	if m.NumSelected(EdgeKind) != 4 || m.NumSelected(VertexKind) != 4 {
		t.Fatal("face boundary should be selected")
	}
	if n := m.SelectedModel3D().NumTriangles(); n != 2 {
		t.Fatalf("expected 2 selected triangles but got %d", n)
	}

	top := m.SelectedFaces()[0]
	m.Deselect(top)
	if m.Selected(top) {
		t.Fatal("face should be deselected")
	}
	m.Select(Element{Kind: FaceKind, ID: 100})
	if m.Selected(Element{Kind: FaceKind, ID: 100}) {
		t.Fatal("invalid elements cannot be selected")
	}
}

func TestFaceNormal(t *testing.T) {
	m := testCube()
	expected := []model3d.Coord3D{
		model3d.Z(-1), model3d.Z(1), model3d.Y(-1), model3d.Y(1), model3d.X(-1), model3d.X(1),
	}
	for i, normal := range expected {
		if actual := m.FaceNormal(i); actual.Dist(normal) > 1e-8 {
			t.Fatalf("face %d: expected normal %v but got %v", i, normal, actual)
		}
	}
}

// testCube creates a unit cube made of quads with outward normals, ordered
// bottom, top, front, back, left, right.
func testCube() *Mesh {
	m := New()
	for i := 0; i < 8; i++ {
		m.AddVertex(model3d.XYZ(float64(i&1), float64((i>>1)&1), float64(i>>2)))
	}
	for _, face := range [][]int{
		{0, 2, 3, 1},
		{4, 5, 7, 6},
		{0, 1, 5, 4},
		{2, 6, 7, 3},
		{0, 4, 6, 2},
		{1, 3, 7, 5},
	} {
		if _, err := m.AddFace(face...); err != nil {
			panic(err)
		}
	}
	m.Update()
	return m
}

func meshArea(m *model3d.Mesh) float64 {
	var area float64
	m.Iterate(func(t *model3d.Triangle) {
		area += t.Area()
	})
	return area
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-8
}

func TestTriangulateConcave(t *testing.T) {
	for _, scale := range []float64{1, 1e-5} {
		var coords []model3d.Coord3D
		for _, xy := range [][2]float64{
			{0, 0}, {3, 0}, {3, 2}, {2, 2}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
		} {
			coords = append(coords, model3d.XYZ(xy[0], 0, xy[1]).Scale(scale))
		}
		normal := polygonNormal(coords)
		if normal.Dist(model3d.Y(-1)) > 1e-8 {
			t.Fatalf("scale %g: unexpected normal %v", scale, normal)
		}
		tris := triangulate(coords, normal)
		if len(tris) != len(coords)-2 {
			t.Fatalf("scale %g: expected %d triangles but got %d", scale, len(coords)-2,
				len(tris))
		}
		var area float64
		for i, tri := range tris {
			if tri.Normal().Dot(normal) < 1-1e-5 {
				t.Fatalf("scale %g: triangle %d has normal %v", scale, i, tri.Normal())
			}
			area += tri.Area()
		}
		if expected := 5 * scale * scale; math.Abs(area-expected) > 1e-8*expected {
			t.Fatalf("scale %g: expected area %g but got %g", scale, expected, area)
		}
	}
}
