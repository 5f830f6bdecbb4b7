package source

import (
	"fmt"
	"math/rand"
)

// Point emits every particle from the same location.
type Point struct {
	Position Position
}

// SamplePosition returns the fixed point.
func (p Point) SamplePosition(_ *rand.Rand) Position {
	return p.Position
}

func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p.Position.X, p.Position.Y, p.Position.Z)
}

// Box emits particles uniformly over an axis-aligned box.
type Box struct {
	Lower Position
	Upper Position
}

func (b Box) String() string {
	return fmt.Sprintf("box[(%g, %g, %g) .. (%g, %g, %g)]",
		b.Lower.X, b.Lower.Y, b.Lower.Z, b.Upper.X, b.Upper.Y, b.Upper.Z)
}

// SamplePosition draws a position uniformly inside the box.
func (b Box) SamplePosition(rng *rand.Rand) Position {
	return Position{
		X: b.Lower.X + rng.Float64()*(b.Upper.X-b.Lower.X),
		Y: b.Lower.Y + rng.Float64()*(b.Upper.Y-b.Lower.Y),
		Z: b.Lower.Z + rng.Float64()*(b.Upper.Z-b.Lower.Z),
	}
}

func newSpatial(spec VariantSpec) (Spatial, error) {
	name := variantName(spec)
	switch name {
	case "point":
		if err := requireParams("spatial", name, spec.Parameters, 3); err != nil {
			return nil, err
		}
		return Point{Position: Position{
			X: spec.Parameters[0],
			Y: spec.Parameters[1],
			Z: spec.Parameters[2],
		}}, nil
	case "box":
		if err := requireParams("spatial", name, spec.Parameters, 6); err != nil {
			return nil, err
		}
		lower := Position{X: spec.Parameters[0], Y: spec.Parameters[1], Z: spec.Parameters[2]}
		upper := Position{X: spec.Parameters[3], Y: spec.Parameters[4], Z: spec.Parameters[5]}
		if upper.X < lower.X || upper.Y < lower.Y || upper.Z < lower.Z {
			return nil, fmt.Errorf("spatial distribution %q has inverted bounds", name)
		}
		return Box{Lower: lower, Upper: upper}, nil
	default:
		return nil, fmt.Errorf("unknown spatial distribution: %s", spec.Type)
	}
}
