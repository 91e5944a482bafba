package polymesh

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// triangulate splits a simple polygon into triangles in the plane
// perpendicular to normal.
//
// The triangles are wound so that their normals agree with normal.
func triangulate(coords []model3d.Coord3D, normal model3d.Coord3D) (res []*model3d.Triangle) {
	if len(coords) == 3 || normal.Norm() == 0 {
		return fanTriangulate(coords)
	}

	u, v := normal.OrthoBasis()
	loop := make([]model2d.Coord, len(coords))
	lookup := make(map[model2d.Coord]model3d.Coord3D, len(coords))
	for i, c := range coords {
		p := model2d.XY(c.Dot(u), c.Dot(v))
		if _, ok := lookup[p]; ok {
			// Two vertices project to the same point.
			return fanTriangulate(coords)
		}
		loop[i] = p
		lookup[p] = c
	}

	// Fall back to a fan for loops which cannot be triangulated, such as
	// self-intersecting ones.
	defer func() {
		if r := recover(); r != nil {
			res = fanTriangulate(coords)
		}
	}()

	tris2d := model2d.Triangulate(loop)
	res = make([]*model3d.Triangle, 0, len(tris2d))
	for _, t2 := range tris2d {
		t := &model3d.Triangle{}
		for i, p := range t2 {
			c, ok := lookup[p]
			if !ok {
				return fanTriangulate(coords)
			}
			t[i] = c
		}
		if t.Normal().Dot(normal) < 0 {
			t[1], t[2] = t[2], t[1]
		}
		res = append(res, t)
	}
	return res
}

// fanTriangulate splits a convex polygon into triangles sharing the first
// vertex.
func fanTriangulate(coords []model3d.Coord3D) []*model3d.Triangle {
	res := make([]*model3d.Triangle, 0, len(coords)-2)
	for i := 1; i+1 < len(coords); i++ {
		res = append(res, &model3d.Triangle{coords[0], coords[i], coords[i+1]})
	}
	return res
}
