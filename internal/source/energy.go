package source

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Watt is the two-parameter analytic fission spectrum
// p(E) ~ exp(-E/a) * sinh(sqrt(b*E)).
type Watt struct {
	A float64
	B float64
}

// SampleEnergy draws from the Watt spectrum by shifting a Maxwellian
// sample, the standard sampling scheme for this distribution.
func (w Watt) SampleEnergy(rng *rand.Rand) float64 {
	maxwell := sampleMaxwell(w.A, rng)
	shift := w.A * w.A * w.B / 4.0
	return maxwell + shift + (2.0*rng.Float64()-1.0)*math.Sqrt(w.A*w.A*w.B*maxwell)
}

func (w Watt) String() string {
	return fmt.Sprintf("watt(a=%g, b=%g)", w.A, w.B)
}

// Maxwell is the one-parameter thermal spectrum p(E) ~ sqrt(E)*exp(-E/T).
type Maxwell struct {
	T float64
}

// SampleEnergy draws from the Maxwellian spectrum.
func (m Maxwell) SampleEnergy(rng *rand.Rand) float64 {
	return sampleMaxwell(m.T, rng)
}

func sampleMaxwell(t float64, rng *rand.Rand) float64 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	r3 := rng.Float64()
	c := math.Cos(math.Pi / 2.0 * r3)
	return -t * (math.Log(r1) + math.Log(r2)*c*c)
}

func (m Maxwell) String() string {
	return fmt.Sprintf("maxwell(T=%g)", m.T)
}

// Discrete emits one of a fixed set of energies with given probabilities.
type Discrete struct {
	energies []float64
	cdf      []float64
}

// SampleEnergy picks an energy by inverting the cumulative table.
func (d Discrete) SampleEnergy(rng *rand.Rand) float64 {
	xi := rng.Float64()
	idx := sort.SearchFloat64s(d.cdf, xi)
	if idx >= len(d.energies) {
		idx = len(d.energies) - 1
	}
	return d.energies[idx]
}

func (d Discrete) String() string {
	return fmt.Sprintf("discrete(%d energies)", len(d.energies))
}

// Tabular emits energies from a histogram: bin edges with per-bin
// probabilities, sampled uniformly within the chosen bin.
type Tabular struct {
	edges []float64
	cdf   []float64
}

// SampleEnergy picks a bin by inverting the cumulative table, then draws
// uniformly inside it.
func (t Tabular) SampleEnergy(rng *rand.Rand) float64 {
	xi := rng.Float64()
	idx := sort.SearchFloat64s(t.cdf, xi)
	if idx >= len(t.edges)-1 {
		idx = len(t.edges) - 2
	}
	return t.edges[idx] + rng.Float64()*(t.edges[idx+1]-t.edges[idx])
}

func (t Tabular) String() string {
	return fmt.Sprintf("tabular(%d bins)", len(t.edges)-1)
}

func newEnergy(spec VariantSpec) (Energy, error) {
	name := variantName(spec)
	switch name {
	case "watt":
		if err := requireParams("energy", name, spec.Parameters, 2); err != nil {
			return nil, err
		}
		if spec.Parameters[0] <= 0 {
			return nil, fmt.Errorf("energy distribution %q requires a > 0", name)
		}
		return Watt{A: spec.Parameters[0], B: spec.Parameters[1]}, nil
	case "maxwell":
		if err := requireParams("energy", name, spec.Parameters, 1); err != nil {
			return nil, err
		}
		if spec.Parameters[0] <= 0 {
			return nil, fmt.Errorf("energy distribution %q requires a positive temperature", name)
		}
		return Maxwell{T: spec.Parameters[0]}, nil
	case "discrete":
		return newDiscrete(spec.Parameters)
	case "tabular":
		return newTabular(spec.Parameters)
	default:
		return nil, fmt.Errorf("unknown energy distribution: %s", spec.Type)
	}
}

// newDiscrete expects the flat parameter list to hold all energies followed
// by their probabilities, the document convention for paired tables.
func newDiscrete(params []float64) (Discrete, error) {
	if len(params) < 2 || len(params)%2 != 0 {
		return Discrete{}, fmt.Errorf("energy distribution \"discrete\" expects an even number of parameters (energies then probabilities), got %d", len(params))
	}
	n := len(params) / 2
	energies := append([]float64(nil), params[:n]...)
	cdf, err := cumulative(params[n:])
	if err != nil {
		return Discrete{}, fmt.Errorf("energy distribution \"discrete\": %w", err)
	}
	return Discrete{energies: energies, cdf: cdf}, nil
}

// newTabular expects n+1 bin edges followed by n bin probabilities.
func newTabular(params []float64) (Tabular, error) {
	if len(params) < 3 || len(params)%2 != 1 {
		return Tabular{}, fmt.Errorf("energy distribution \"tabular\" expects n+1 edges followed by n probabilities, got %d parameters", len(params))
	}
	n := len(params) / 2
	edges := append([]float64(nil), params[:n+1]...)
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return Tabular{}, fmt.Errorf("energy distribution \"tabular\" requires strictly increasing bin edges")
		}
	}
	cdf, err := cumulative(params[n+1:])
	if err != nil {
		return Tabular{}, fmt.Errorf("energy distribution \"tabular\": %w", err)
	}
	return Tabular{edges: edges, cdf: cdf}, nil
}

// cumulative normalizes a probability table into a CDF ending at 1.
func cumulative(probs []float64) ([]float64, error) {
	total := 0.0
	for _, p := range probs {
		if p < 0 {
			return nil, fmt.Errorf("negative probability %g", p)
		}
		total += p
	}
	if total == 0 {
		return nil, fmt.Errorf("probabilities sum to zero")
	}
	cdf := make([]float64, len(probs))
	running := 0.0
	for i, p := range probs {
		running += p / total
		cdf[i] = running
	}
	cdf[len(cdf)-1] = 1.0
	return cdf, nil
}
