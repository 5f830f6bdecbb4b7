package source

import (
	"fmt"
	"math/rand"
	"strings"
)

// Position is a location in the global coordinate system.
type Position struct {
	X, Y, Z float64
}

// Direction is a unit vector in the global coordinate system.
type Direction struct {
	U, V, W float64
}

// Spatial emits particle starting positions.
type Spatial interface {
	SamplePosition(rng *rand.Rand) Position
}

// Angular emits particle starting directions.
type Angular interface {
	SampleDirection(rng *rand.Rand) Direction
}

// Energy emits particle starting energies.
type Energy interface {
	SampleEnergy(rng *rand.Rand) float64
}

// Distribution is one external source: where particles start, which way
// they head, and how energetic they are. Strength weights this source
// relative to its siblings when the engine picks a source per history.
type Distribution struct {
	Space    Spatial
	Angle    Angular
	Energy   Energy
	Strength float64
}

// Spec is the document shape of one source node. Space, Angle, and Energy
// are optional; absent pieces fall back to the same defaults the synthesized
// source uses.
type Spec struct {
	Strength *float64     `toml:"strength"`
	Space    *VariantSpec `toml:"space"`
	Angle    *VariantSpec `toml:"angle"`
	Energy   *VariantSpec `toml:"energy"`
}

// VariantSpec selects one variant of a spatial, angular, or energy
// distribution by name plus a flat parameter list.
type VariantSpec struct {
	Type       string    `toml:"type"`
	Parameters []float64 `toml:"parameters"`
}

// Watt spectrum parameters for a generic fission-like source.
const (
	DefaultWattA = 0.988
	DefaultWattB = 2.249e-6
)

// Default returns the source used when the settings document configures
// none: an isotropic point source at the origin with a Watt fission
// spectrum.
func Default() Distribution {
	return Distribution{
		Space:    Point{},
		Angle:    Isotropic{},
		Energy:   Watt{A: DefaultWattA, B: DefaultWattB},
		Strength: 1.0,
	}
}

// New builds a Distribution from its document spec. Unknown variant names
// and wrong parameter counts are errors; the caller treats them as fatal.
func New(spec Spec) (Distribution, error) {
	dist := Default()
	if spec.Strength != nil {
		if *spec.Strength <= 0 {
			return Distribution{}, fmt.Errorf("source strength must be positive, got %g", *spec.Strength)
		}
		dist.Strength = *spec.Strength
	}
	if spec.Space != nil {
		space, err := newSpatial(*spec.Space)
		if err != nil {
			return Distribution{}, err
		}
		dist.Space = space
	}
	if spec.Angle != nil {
		angle, err := newAngular(*spec.Angle)
		if err != nil {
			return Distribution{}, err
		}
		dist.Angle = angle
	}
	if spec.Energy != nil {
		energy, err := newEnergy(*spec.Energy)
		if err != nil {
			return Distribution{}, err
		}
		dist.Energy = energy
	}
	return dist, nil
}

func variantName(spec VariantSpec) string {
	return strings.ToLower(strings.TrimSpace(spec.Type))
}

func requireParams(kind, name string, params []float64, want int) error {
	if len(params) != want {
		return fmt.Errorf("%s distribution %q expects %d parameters, got %d", kind, name, want, len(params))
	}
	return nil
}
