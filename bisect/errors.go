package bisect

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDegenerateNormal = errors.New("cutting plane normal has near-zero length")
	ErrNegativeCount    = errors.New("cut count must be non-negative")
	ErrUnknownMethod    = errors.New("unknown bisection method")
	ErrNonFinite        = errors.New("value is not finite")
)

// A ConfigError is returned when bisection parameters cannot produce a plane
// sequence. It is always reported before the mesh is modified.
type ConfigError struct {
	Field string
	Err   error
}

func (c *ConfigError) Error() string {
	return fmt.Sprintf("bisect config: %s: %v", c.Field, c.Err)
}

func (c *ConfigError) Unwrap() error {
	return c.Err
}

// IsConfigError checks if err was caused by invalid parameters.
func IsConfigError(err error) bool {
	var c *ConfigError
	return errors.As(err, &c)
}

// A GeometryError is returned when the bisection primitive fails during a cut.
//
// Cuts before index Cut have already been applied to the mesh and are not
// undone.
type GeometryError struct {
	Cut   int
	Plane Plane
	Err   error
}

func (g *GeometryError) Error() string {
	return fmt.Sprintf("bisect cut %d (origin %v, normal %v): %v", g.Cut, g.Plane.Origin,
		g.Plane.Normal, g.Err)
}

func (g *GeometryError) Unwrap() error {
	return g.Err
}
