package bisect

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

func TestPlaneSequenceEndPoints(t *testing.T) {
	planes, err := PlaneSequence(EndPoints{End: model3d.Z(4)}, model3d.Origin, 5)
	if err != nil {
		t.Fatal(err)
	}
	checkPlanes(t, planes, model3d.Z(1), []model3d.Coord3D{
		model3d.Z(0), model3d.Z(1), model3d.Z(2), model3d.Z(3), model3d.Z(4),
	})
}

func TestPlaneSequenceOffset(t *testing.T) {
	planes, err := PlaneSequence(Offset{Offset: model3d.Z(2)}, model3d.Origin, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkPlanes(t, planes, model3d.Z(1), []model3d.Coord3D{
		model3d.Z(0), model3d.Z(2), model3d.Z(4),
	})
}

func TestPlaneSequenceDirectionEndPoints(t *testing.T) {
	method := DirectionEndPoints{Direction: model3d.Y(-3), Length: 2}
	planes, err := PlaneSequence(method, model3d.XYZ(1, 1, 1), 3)
	if err != nil {
		t.Fatal(err)
	}
	checkPlanes(t, planes, model3d.Y(-1), []model3d.Coord3D{
		model3d.XYZ(1, 1, 1), model3d.XYZ(1, 0, 1), model3d.XYZ(1, -1, 1),
	})
}

func TestPlaneSequenceDirectionOffset(t *testing.T) {
	method := DirectionOffset{Direction: model3d.X(1), Step: -1}
	planes, err := PlaneSequence(method, model3d.X(5), 3)
	if err != nil {
		t.Fatal(err)
	}
	checkPlanes(t, planes, model3d.X(1), []model3d.Coord3D{
		model3d.X(5), model3d.X(4), model3d.X(3),
	})
}

func TestPlaneSequenceSingle(t *testing.T) {
	start := model3d.XYZ(1, 2, 3)
	methods := []Method{
		EndPoints{End: model3d.XYZ(1, 2, 10)},
		Offset{Offset: model3d.Z(7)},
		DirectionEndPoints{Direction: model3d.Z(2), Length: 100},
		DirectionOffset{Direction: model3d.Z(0.5), Step: 42},
	}
	for i, method := range methods {
		planes, err := PlaneSequence(method, start, 1)
		if err != nil {
			t.Fatalf("method %d: %v", i, err)
		}
		checkPlanes(t, planes, model3d.Z(1), []model3d.Coord3D{start})
	}
}

func TestPlaneSequenceEmpty(t *testing.T) {
	for _, method := range []Method{
		EndPoints{End: model3d.Z(1)},
		EndPoints{End: model3d.Origin},
		DirectionOffset{Direction: model3d.Origin},
	} {
		planes, err := PlaneSequence(method, model3d.Origin, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(planes) != 0 {
			t.Fatalf("expected no planes but got %d", len(planes))
		}
	}
}

func TestPlaneSequenceErrors(t *testing.T) {
	start := model3d.XYZ(1, 1, 1)
	cases := []struct {
		Method Method
		Count  int
		Field  string
		Err    error
	}{
		{EndPoints{End: start}, 1, "end", ErrDegenerateNormal},
		{EndPoints{End: start}, 3, "end", ErrDegenerateNormal},
		{Offset{Offset: model3d.Origin}, 2, "offset", ErrDegenerateNormal},
		{DirectionEndPoints{Direction: model3d.Origin, Length: 1}, 2, "direction",
			ErrDegenerateNormal},
		{DirectionOffset{Direction: model3d.Z(1e-12), Step: 1}, 2, "direction",
			ErrDegenerateNormal},
		{DirectionOffset{Direction: model3d.Z(1), Step: math.NaN()}, 2, "step", ErrNonFinite},
		{DirectionEndPoints{Direction: model3d.Z(1), Length: math.Inf(1)}, 2, "length",
			ErrNonFinite},
		{EndPoints{End: model3d.Z(1)}, -1, "count", ErrNegativeCount},
		{nil, 1, "method", ErrUnknownMethod},
	}
	for i, c := range cases {
		_, err := PlaneSequence(c.Method, start, c.Count)
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
		if !IsConfigError(err) {
			t.Fatalf("case %d: expected config error but got %v", i, err)
		}
		if !errors.Is(err, c.Err) {
			t.Fatalf("case %d: expected %v but got %v", i, c.Err, err)
		}
		var configErr *ConfigError
		errors.As(err, &configErr)
		if configErr.Field != c.Field {
			t.Fatalf("case %d: expected field %s but got %s", i, c.Field, configErr.Field)
		}
	}
}

func checkPlanes(t *testing.T, planes []Plane, normal model3d.Coord3D,
	origins []model3d.Coord3D) {
	t.Helper()
	if len(planes) != len(origins) {
		t.Fatalf("expected %d planes but got %d", len(origins), len(planes))
	}
	for i, p := range planes {
		if p.Normal.Dist(normal) > 1e-8 {
			t.Fatalf("plane %d: expected normal %v but got %v", i, normal, p.Normal)
		}
		if p.Origin.Dist(origins[i]) > 1e-8 {
			t.Fatalf("plane %d: expected origin %v but got %v", i, origins[i], p.Origin)
		}
		if !p.Valid() {
			t.Fatalf("plane %d is not valid: %v", i, p)
		}
	}
}
