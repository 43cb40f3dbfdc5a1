package catmullrom

import (
	"errors"
	"fmt"

	"github.com/npillmayer/curves"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'curves.catmull'
func tracer() tracing.Trace {
	return tracing.Select("curves.catmull")
}

// DefaultTension is the tension a builder starts with.
var DefaultTension = 0.5

// ErrUnknownType indicates an unknown spline type name.
var ErrUnknownType = errors.New("unknown Catmull-Rom spline type")

// Type selects the parametrization of a spline.
type Type int8

// Spline types
const (
	Uniform Type = iota
	Centripetal
	Chordal
)

var typeNames = [...]string{"uniform", "centripetal", "chordal"}

func (typ Type) String() string {
	if typ < 0 || int(typ) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(typ))
	}
	return typeNames[typ]
}

// MarshalText encodes a type by its name.
func (typ Type) MarshalText() ([]byte, error) {
	if typ < 0 || int(typ) >= len(typeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(typ))
	}
	return []byte(typeNames[typ]), nil
}

// UnmarshalText decodes a type from its name.
func (typ *Type) UnmarshalText(text []byte) error {
	for i, name := range typeNames {
		if name == string(text) {
			*typ = Type(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, text)
}

// exponent applied to squared control point distances.
func (typ Type) exponent() float64 {
	if typ == Chordal {
		return 0.5
	}
	return 0.25
}

// Spline is a Catmull-Rom spline through Points. Tension is used for
// Uniform splines only.
//
// A spline needs at least 4 points to be valid. Splines are not changed
// after construction; use New or a Builder to create them.
type Spline[N curves.Scalar] struct {
	Type    Type                `yaml:"type"`
	Points  []curves.Vector3[N] `yaml:"points"`
	Closed  bool                `yaml:"closed"`
	Tension N                   `yaml:"tension"`
}

var _ curves.Curve[float64] = Spline[float64]{}

// cubicPoly holds the coefficients of
//
//	c0 + c1⋅w + c2⋅w² + c3⋅w³
//
// for one axis of one spline segment.
type cubicPoly[N curves.Scalar] struct {
	c0, c1, c2, c3 N
}
