package bisect

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const maxPlanesPrealloc = 1 << 16

// WritePlanes serializes a plane sequence in a 32-bit precision binary format.
func WritePlanes(w io.Writer, planes []Plane) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(planes))); err != nil {
		return errors.Wrap(err, "write planes")
	}
	values := make([]float32, 0, len(planes)*6)
	for _, p := range planes {
		values = append(values,
			float32(p.Origin.X),
			float32(p.Origin.Y),
			float32(p.Origin.Z),
			float32(p.Normal.X),
			float32(p.Normal.Y),
			float32(p.Normal.Z),
		)
	}
	if err := binary.Write(w, binary.LittleEndian, values); err != nil {
		return errors.Wrap(err, "write planes")
	}
	return nil
}

// ReadPlanes reads the output written by WritePlanes.
func ReadPlanes(r io.Reader) ([]Plane, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "read planes")
	}
	// The count is untrusted, so the slice grows as planes are read.
	capacity := int(count)
	if capacity > maxPlanesPrealloc {
		capacity = maxPlanesPrealloc
	}
	planes := make([]Plane, 0, capacity)
	for i := 0; i < int(count); i++ {
		var values [6]float32
		if err := binary.Read(r, binary.LittleEndian, &values); err != nil {
			return nil, errors.Wrap(err, "read planes")
		}
		plane := Plane{
			Origin: model3d.XYZ(float64(values[0]), float64(values[1]), float64(values[2])),
			Normal: model3d.XYZ(float64(values[3]), float64(values[4]), float64(values[5])),
		}
		// Undo float32 rounding of the normal.
		normal, ok := normalize(plane.Normal)
		if !ok {
			return nil, errors.Wrapf(ErrDegenerateNormal, "read planes: plane %d", i)
		} else if !finiteCoord(plane.Origin) {
			return nil, errors.Wrapf(ErrNonFinite, "read planes: plane %d", i)
		}
		plane.Normal = normal
		planes = append(planes, plane)
	}
	return planes, nil
}
