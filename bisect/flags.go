package bisect

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// AddFlags registers a flag for every field of p, using the current values as
// defaults.
func (p *Params) AddFlags(fs *flag.FlagSet) {
	fs.Var((*methodFlag)(&p.Method), "method",
		"cut method: end_points, offset, direction_end_points, or direction_offset")
	fs.IntVar(&p.Count, "count", p.Count, "number of cuts")
	fs.Var((*coordFlag)(&p.Start), "start", "origin of the first plane, as x,y,z")
	fs.Var((*coordFlag)(&p.End), "end", "origin of the last plane (end_points)")
	fs.Var((*coordFlag)(&p.Offset), "offset", "vector between consecutive planes (offset)")
	fs.Var((*coordFlag)(&p.Direction), "direction", "plane normal (direction_* methods)")
	fs.Float64Var(&p.Length, "length", p.Length,
		"distance from the first to the last plane (direction_end_points)")
	fs.Float64Var(&p.Step, "step", p.Step, "distance between planes (direction_offset)")
}

// Override sets the fields of p whose flags were explicitly passed to fs,
// leaving the other fields unchanged.
//
// The flags must have been registered with AddFlags.
func (p *Params) Override(fs *flag.FlagSet) error {
	target := flag.NewFlagSet("params", flag.ContinueOnError)
	p.AddFlags(target)
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err == nil && target.Lookup(f.Name) != nil {
			err = target.Set(f.Name, f.Value.String())
		}
	})
	return err
}

// ParseCoord parses a coordinate of the form "x,y,z".
func ParseCoord(s string) (model3d.Coord3D, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return model3d.Coord3D{}, errors.Errorf("parse coordinate %q: expected x,y,z", s)
	}
	var values [3]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return model3d.Coord3D{}, errors.Wrapf(err, "parse coordinate %q", s)
		}
		values[i] = x
	}
	return model3d.XYZ(values[0], values[1], values[2]), nil
}

type coordFlag model3d.Coord3D

func (c *coordFlag) String() string {
	return fmt.Sprintf("%g,%g,%g", c.X, c.Y, c.Z)
}

func (c *coordFlag) Set(s string) error {
	coord, err := ParseCoord(s)
	if err != nil {
		return err
	}
	*c = coordFlag(coord)
	return nil
}

type methodFlag MethodName

func (m *methodFlag) String() string {
	return string(*m)
}

func (m *methodFlag) Set(s string) error {
	name, err := ParseMethodName(s)
	if err != nil {
		return err
	}
	*m = methodFlag(name)
	return nil
}
