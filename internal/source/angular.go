package source

import (
	"fmt"
	"math"
	"math/rand"
)

// Isotropic emits directions uniformly over the unit sphere.
type Isotropic struct{}

// SampleDirection draws a uniform direction: cosine of the polar angle
// uniform on [-1, 1], azimuth uniform on [0, 2pi).
func (Isotropic) SampleDirection(rng *rand.Rand) Direction {
	mu := 2.0*rng.Float64() - 1.0
	phi := 2.0 * math.Pi * rng.Float64()
	sinTheta := math.Sqrt(1.0 - mu*mu)
	return Direction{
		U: sinTheta * math.Cos(phi),
		V: sinTheta * math.Sin(phi),
		W: mu,
	}
}

func (Isotropic) String() string { return "isotropic" }

// Monodirectional emits every particle along the same unit vector.
type Monodirectional struct {
	Reference Direction
}

// SampleDirection returns the fixed reference direction.
func (m Monodirectional) SampleDirection(_ *rand.Rand) Direction {
	return m.Reference
}

func (m Monodirectional) String() string {
	return fmt.Sprintf("monodirectional(%g, %g, %g)", m.Reference.U, m.Reference.V, m.Reference.W)
}

func newAngular(spec VariantSpec) (Angular, error) {
	name := variantName(spec)
	switch name {
	case "isotropic":
		if err := requireParams("angular", name, spec.Parameters, 0); err != nil {
			return nil, err
		}
		return Isotropic{}, nil
	case "monodirectional":
		if err := requireParams("angular", name, spec.Parameters, 3); err != nil {
			return nil, err
		}
		u, v, w := spec.Parameters[0], spec.Parameters[1], spec.Parameters[2]
		norm := math.Sqrt(u*u + v*v + w*w)
		if norm == 0 {
			return nil, fmt.Errorf("angular distribution %q needs a nonzero direction", name)
		}
		return Monodirectional{Reference: Direction{U: u / norm, V: v / norm, W: w / norm}}, nil
	default:
		return nil, fmt.Errorf("unknown angular distribution: %s", spec.Type)
	}
}
