package bisect

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"
)

// A Method is one of the parameterizations of an evenly spaced plane sequence.
//
// The concrete types are EndPoints, Offset, DirectionEndPoints and
// DirectionOffset.
type Method interface {
	isMethod()
}

// EndPoints spreads the planes evenly from the start point to End, with the
// normal pointing from start to End.
type EndPoints struct {
	End model3d.Coord3D
}

// Offset places consecutive planes Offset apart, with the normal along Offset.
type Offset struct {
	Offset model3d.Coord3D
}

// DirectionEndPoints spreads the planes evenly over Length units along
// Direction.
type DirectionEndPoints struct {
	Direction model3d.Coord3D
	Length    float64
}

// DirectionOffset places consecutive planes Step units apart along Direction.
// A negative Step moves the planes against the normal.
type DirectionOffset struct {
	Direction model3d.Coord3D
	Step      float64
}

func (EndPoints) isMethod()          {}
func (Offset) isMethod()             {}
func (DirectionEndPoints) isMethod() {}
func (DirectionOffset) isMethod()    {}

// PlaneSequence computes count planes sharing one normal, where plane i passes
// through start + i*step*normal.
//
// An empty sequence is returned when count is 0, even if the method could not
// produce a normal.
func PlaneSequence(method Method, start model3d.Coord3D, count int) ([]Plane, error) {
	if count < 0 {
		return nil, &ConfigError{Field: "count", Err: ErrNegativeCount}
	}
	if !finiteCoord(start) {
		return nil, &ConfigError{Field: "start", Err: ErrNonFinite}
	}
	if count == 0 {
		return []Plane{}, nil
	}

	var field string
	var direction model3d.Coord3D
	var step float64
	switch method := method.(type) {
	case EndPoints:
		field = "end"
		direction = method.End.Sub(start)
		step = evenStep(direction.Norm(), count)
	case Offset:
		field = "offset"
		direction = method.Offset
		step = direction.Norm()
	case DirectionEndPoints:
		field = "length"
		if !finite(method.Length) {
			return nil, &ConfigError{Field: field, Err: ErrNonFinite}
		}
		field = "direction"
		direction = method.Direction
		step = evenStep(method.Length, count)
	case DirectionOffset:
		field = "step"
		if !finite(method.Step) {
			return nil, &ConfigError{Field: field, Err: ErrNonFinite}
		}
		field = "direction"
		direction = method.Direction
		step = method.Step
	case nil:
		return nil, &ConfigError{Field: "method", Err: ErrUnknownMethod}
	default:
		panic(fmt.Sprintf("unexpected method type: %T", method))
	}

	if !finiteCoord(direction) {
		return nil, &ConfigError{Field: field, Err: ErrNonFinite}
	}
	normal, ok := normalize(direction)
	if !ok {
		return nil, &ConfigError{Field: field, Err: ErrDegenerateNormal}
	}

	planes := make([]Plane, count)
	for i := range planes {
		planes[i] = Plane{
			Origin: start.Add(normal.Scale(float64(i) * step)),
			Normal: normal,
		}
	}
	return planes, nil
}

func evenStep(length float64, count int) float64 {
	if count > 1 {
		return length / float64(count-1)
	}
	return 0
}
