package bisect

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"gopkg.in/yaml.v3"
)

// A MethodName identifies one of the Method variants in configuration files
// and command-line flags.
type MethodName string

const (
	MethodEndPoints          MethodName = "end_points"
	MethodOffset             MethodName = "offset"
	MethodDirectionEndPoints MethodName = "direction_end_points"
	MethodDirectionOffset    MethodName = "direction_offset"
)

// ParseMethodName normalizes a method name, accepting spellings such as
// "End Points", "end-points" and "end_points".
func ParseMethodName(s string) (MethodName, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	switch MethodName(name) {
	case MethodEndPoints, MethodOffset, MethodDirectionEndPoints, MethodDirectionOffset:
		return MethodName(name), nil
	}
	return "", &ConfigError{Field: "method", Err: errors.Wrapf(ErrUnknownMethod, "%q", s)}
}

// UnmarshalYAML allows any spelling accepted by ParseMethodName.
func (m *MethodName) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	name, err := ParseMethodName(s)
	if err != nil {
		return err
	}
	*m = name
	return nil
}

// Params holds every property of a multi-bisect operation. Only the fields
// used by Method are consulted.
type Params struct {
	Method MethodName `yaml:"method"`
	Count  int        `yaml:"count"`

	Start     model3d.Coord3D `yaml:"start"`
	End       model3d.Coord3D `yaml:"end"`
	Offset    model3d.Coord3D `yaml:"offset"`
	Direction model3d.Coord3D `yaml:"direction"`
	Length    float64         `yaml:"length"`
	Step      float64         `yaml:"step"`
}

// DefaultParams creates a single cut at the origin facing +Z.
func DefaultParams() *Params {
	return &Params{
		Method:    MethodEndPoints,
		Count:     1,
		End:       model3d.Z(1),
		Offset:    model3d.Z(1),
		Direction: model3d.Z(1),
	}
}

// Variant converts the parameters into the corresponding Method.
func (p *Params) Variant() (Method, error) {
	switch p.Method {
	case MethodEndPoints:
		return EndPoints{End: p.End}, nil
	case MethodOffset:
		return Offset{Offset: p.Offset}, nil
	case MethodDirectionEndPoints:
		return DirectionEndPoints{Direction: p.Direction, Length: p.Length}, nil
	case MethodDirectionOffset:
		return DirectionOffset{Direction: p.Direction, Step: p.Step}, nil
	}
	return nil, &ConfigError{Field: "method", Err: errors.Wrapf(ErrUnknownMethod, "%q", p.Method)}
}

// Planes validates the parameters and computes the plane sequence.
func (p *Params) Planes() ([]Plane, error) {
	method, err := p.Variant()
	if err != nil {
		return nil, err
	}
	return PlaneSequence(method, p.Start, p.Count)
}

// ReadParams decodes YAML parameters on top of DefaultParams().
func ReadParams(r io.Reader) (*Params, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read params")
	}
	params := DefaultParams()
	if len(bytes.TrimSpace(data)) == 0 {
		return params, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(params); err != nil {
		return nil, errors.Wrap(err, "read params")
	}
	if _, err := params.Variant(); err != nil {
		return nil, errors.Wrap(err, "read params")
	}
	return params, nil
}

// LoadParams reads a YAML parameter file.
func LoadParams(path string) (*Params, error) {
	return Load(path, ReadParams)
}
