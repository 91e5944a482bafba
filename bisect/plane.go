package bisect

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// NormalEpsilon is the smallest vector length which can be normalized into a
// plane normal.
const NormalEpsilon = 1e-8

// A Plane is an infinite cutting plane through Origin, perpendicular to the
// unit vector Normal.
type Plane struct {
	Origin model3d.Coord3D
	Normal model3d.Coord3D
}

// SignedDist computes the distance from the plane to c, which is positive on
// the side that Normal points towards.
func (p Plane) SignedDist(c model3d.Coord3D) float64 {
	return p.Normal.Dot(c.Sub(p.Origin))
}

// Valid checks that the plane is finite and has a usable normal.
func (p Plane) Valid() bool {
	return finiteCoord(p.Origin) && finiteCoord(p.Normal) &&
		math.Abs(p.Normal.Norm()-1) < 1e-5
}

// normalize scales v to unit length, or reports false if v is too short to
// define a direction.
func normalize(v model3d.Coord3D) (model3d.Coord3D, bool) {
	norm := v.Norm()
	if !(norm > NormalEpsilon) || math.IsInf(norm, 0) {
		return model3d.Origin, false
	}
	return v.Scale(1 / norm), true
}

func finiteCoord(c model3d.Coord3D) bool {
	return finite(c.X) && finite(c.Y) && finite(c.Z)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
