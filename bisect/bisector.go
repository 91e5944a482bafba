package bisect

import (
	"context"
	"log"

	"github.com/pkg/errors"
)

// A Mesh is an editable mesh owned by the caller.
//
// Elements of every kind (faces, edges and vertices) are referred to by
// comparable handles of type E.
//
// The Bisector assumes exclusive access to the mesh while it runs.
type Mesh[E comparable] interface {
	// SelectedFaces returns every face that is currently selected.
	SelectedFaces() []E

	// FaceEdges returns the boundary edges of a face.
	FaceEdges(face E) []E

	// Select marks an element as selected.
	Select(elem E)

	// Bisect splits every edge and face in geom which is crossed by the
	// plane, and returns the geometry that was created or touched by the cut.
	//
	// It must be safe to call with an empty geom.
	Bisect(geom []E, plane Plane) ([]E, error)

	// Update recomputes derived data (normals, triangulations) after the
	// geometry has been modified.
	Update()
}

// Result summarizes a multi-bisect operation.
type Result[E comparable] struct {
	// Cuts is the number of planes for which the bisection primitive ran.
	Cuts int

	// EmptyCuts is the number of planes which were skipped because the
	// previous cut returned no geometry.
	EmptyCuts int

	// Selected contains every element returned by any cut, in the order it
	// was first seen.
	Selected []E
}

// A Bisector cuts the selected faces of a mesh with a sequence of planes.
//
// The geometry returned by each cut is the only geometry considered by the
// next cut, so later planes only split pieces produced by earlier ones.
type Bisector[E comparable] struct {
	// Verbose enables per-cut logging.
	Verbose bool
}

// Run validates p, computes its plane sequence, and bisects the mesh.
//
// Invalid parameters result in a *ConfigError and leave the mesh untouched.
func (b *Bisector[E]) Run(ctx context.Context, mesh Mesh[E], p *Params) (*Result[E], error) {
	planes, err := p.Planes()
	if err != nil {
		return nil, err
	}
	return b.Bisect(ctx, mesh, planes)
}

// Bisect applies the planes to the selected faces of the mesh in order, and
// selects every element produced by each cut.
//
// If no faces are selected, the mesh is not modified and an empty result is
// returned.
//
// If a cut fails or ctx is cancelled, the remaining planes are skipped and the
// cuts which were already applied stay in the mesh. The partial result is
// returned along with the error.
func (b *Bisector[E]) Bisect(ctx context.Context, mesh Mesh[E], planes []Plane) (*Result[E], error) {
	for i, p := range planes {
		if !p.Valid() {
			return nil, &ConfigError{
				Field: "planes",
				Err:   errors.Wrapf(ErrDegenerateNormal, "plane %d", i),
			}
		}
	}

	res := &Result[E]{Selected: []E{}}
	geom := initialGeometry(mesh)
	if len(geom) == 0 {
		if b.Verbose {
			log.Println("multi-bisect: no faces selected")
		}
		return res, nil
	}

	selected := map[E]struct{}{}
	defer func() {
		if res.Cuts > 0 {
			mesh.Update()
		}
	}()
	for i, p := range planes {
		if err := ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "bisect cut %d", i)
		}
		if len(geom) == 0 {
			res.EmptyCuts++
			if b.Verbose {
				log.Printf("multi-bisect: cut %d has no geometry left", i)
			}
			continue
		}
		cutGeom, err := mesh.Bisect(geom, p)
		if err != nil {
			return res, &GeometryError{Cut: i, Plane: p, Err: err}
		}
		res.Cuts++
		for _, elem := range cutGeom {
			mesh.Select(elem)
			if _, ok := selected[elem]; !ok {
				selected[elem] = struct{}{}
				res.Selected = append(res.Selected, elem)
			}
		}
		if b.Verbose {
			log.Printf("multi-bisect: cut %d at %v produced %d elements", i, p.Origin,
				len(cutGeom))
		}
		geom = append([]E{}, cutGeom...)
	}
	return res, nil
}

// initialGeometry collects the selected faces followed by their edges, with
// each shared edge listed once.
func initialGeometry[E comparable](mesh Mesh[E]) []E {
	faces := mesh.SelectedFaces()
	if len(faces) == 0 {
		return nil
	}
	geom := append([]E{}, faces...)
	seen := map[E]struct{}{}
	for _, f := range faces {
		for _, e := range mesh.FaceEdges(f) {
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				geom = append(geom, e)
			}
		}
	}
	return geom
}
