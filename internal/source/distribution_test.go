package source_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"fermi/internal/source"
)

func TestDefaultIsIsotropicPointWatt(t *testing.T) {
	dist := source.Default()

	point, ok := dist.Space.(source.Point)
	if !ok {
		t.Fatalf("expected point spatial distribution, got %T", dist.Space)
	}
	if point.Position != (source.Position{}) {
		t.Fatalf("expected origin, got %+v", point.Position)
	}
	if _, ok := dist.Angle.(source.Isotropic); !ok {
		t.Fatalf("expected isotropic angular distribution, got %T", dist.Angle)
	}
	watt, ok := dist.Energy.(source.Watt)
	if !ok {
		t.Fatalf("expected Watt energy distribution, got %T", dist.Energy)
	}
	if watt.A != source.DefaultWattA || watt.B != source.DefaultWattB {
		t.Fatalf("unexpected Watt parameters: a=%g b=%g", watt.A, watt.B)
	}
	if dist.Strength != 1.0 {
		t.Fatalf("expected unit strength, got %g", dist.Strength)
	}
}

func TestNewBuildsConfiguredVariants(t *testing.T) {
	strength := 2.5
	spec := source.Spec{
		Strength: &strength,
		Space: &source.VariantSpec{
			Type:       "box",
			Parameters: []float64{-1, -1, -1, 1, 1, 1},
		},
		Angle: &source.VariantSpec{
			Type:       "monodirectional",
			Parameters: []float64{0, 0, 2},
		},
		Energy: &source.VariantSpec{
			Type:       "discrete",
			Parameters: []float64{1.0e6, 2.0e6, 0.3, 0.7},
		},
	}

	dist, err := source.New(spec)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if dist.Strength != 2.5 {
		t.Fatalf("expected strength 2.5, got %g", dist.Strength)
	}
	if _, ok := dist.Space.(source.Box); !ok {
		t.Fatalf("expected box spatial distribution, got %T", dist.Space)
	}
	mono, ok := dist.Angle.(source.Monodirectional)
	if !ok {
		t.Fatalf("expected monodirectional angular distribution, got %T", dist.Angle)
	}
	if mono.Reference.W != 1.0 {
		t.Fatalf("expected direction normalized to unit length, got %+v", mono.Reference)
	}
	if _, ok := dist.Energy.(source.Discrete); !ok {
		t.Fatalf("expected discrete energy distribution, got %T", dist.Energy)
	}
}

func TestNewPartialSpecKeepsDefaults(t *testing.T) {
	dist, err := source.New(source.Spec{
		Space: &source.VariantSpec{Type: "point", Parameters: []float64{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	point := dist.Space.(source.Point)
	if point.Position != (source.Position{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("unexpected position: %+v", point.Position)
	}
	if _, ok := dist.Angle.(source.Isotropic); !ok {
		t.Fatalf("expected default isotropic angle, got %T", dist.Angle)
	}
	if _, ok := dist.Energy.(source.Watt); !ok {
		t.Fatalf("expected default Watt energy, got %T", dist.Energy)
	}
}

func TestNewRejectsMalformedSpecs(t *testing.T) {
	cases := []struct {
		name    string
		spec    source.Spec
		wantMsg string
	}{
		{
			name:    "unknown spatial",
			spec:    source.Spec{Space: &source.VariantSpec{Type: "torus"}},
			wantMsg: "unknown spatial distribution: torus",
		},
		{
			name:    "unknown angular",
			spec:    source.Spec{Angle: &source.VariantSpec{Type: "beam"}},
			wantMsg: "unknown angular distribution: beam",
		},
		{
			name:    "unknown energy",
			spec:    source.Spec{Energy: &source.VariantSpec{Type: "gaussian"}},
			wantMsg: "unknown energy distribution: gaussian",
		},
		{
			name:    "point parameter count",
			spec:    source.Spec{Space: &source.VariantSpec{Type: "point", Parameters: []float64{1, 2}}},
			wantMsg: "expects 3 parameters",
		},
		{
			name:    "zero direction",
			spec:    source.Spec{Angle: &source.VariantSpec{Type: "monodirectional", Parameters: []float64{0, 0, 0}}},
			wantMsg: "nonzero direction",
		},
		{
			name:    "odd discrete table",
			spec:    source.Spec{Energy: &source.VariantSpec{Type: "discrete", Parameters: []float64{1, 2, 3}}},
			wantMsg: "even number of parameters",
		},
		{
			name:    "zero probabilities",
			spec:    source.Spec{Energy: &source.VariantSpec{Type: "discrete", Parameters: []float64{1, 2, 0, 0}}},
			wantMsg: "sum to zero",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := source.New(tc.spec); err == nil {
				t.Fatal("expected error")
			} else if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected error containing %q, got %q", tc.wantMsg, err)
			}
		})
	}
}

func TestIsotropicDirectionsAreUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	iso := source.Isotropic{}
	var sumW float64
	const n = 20000
	for i := 0; i < n; i++ {
		dir := iso.SampleDirection(rng)
		norm := math.Sqrt(dir.U*dir.U + dir.V*dir.V + dir.W*dir.W)
		if math.Abs(norm-1.0) > 1e-12 {
			t.Fatalf("direction not unit length: %+v (norm %g)", dir, norm)
		}
		sumW += dir.W
	}
	if mean := sumW / n; math.Abs(mean) > 0.02 {
		t.Fatalf("polar cosine mean should be near zero, got %g", mean)
	}
}

func TestBoxSamplesStayInsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	box := source.Box{
		Lower: source.Position{X: -2, Y: 0, Z: 5},
		Upper: source.Position{X: 2, Y: 1, Z: 6},
	}
	for i := 0; i < 1000; i++ {
		pos := box.SamplePosition(rng)
		if pos.X < -2 || pos.X > 2 || pos.Y < 0 || pos.Y > 1 || pos.Z < 5 || pos.Z > 6 {
			t.Fatalf("sample outside box: %+v", pos)
		}
	}
}

func TestWattSamplesArePositiveWithSaneMean(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	watt := source.Watt{A: source.DefaultWattA, B: source.DefaultWattB}
	var sum float64
	const n = 50000
	for i := 0; i < n; i++ {
		e := watt.SampleEnergy(rng)
		if e <= 0 {
			t.Fatalf("Watt sample must be positive, got %g", e)
		}
		sum += e
	}
	// Mean of Watt(a, b) with tiny b is close to the Maxwellian mean 3a/2.
	mean := sum / n
	if mean < 1.0 || mean > 2.0 {
		t.Fatalf("Watt mean out of expected range: %g", mean)
	}
}

func TestDiscreteRespectsProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	dist, err := source.New(source.Spec{
		Energy: &source.VariantSpec{
			Type:       "discrete",
			Parameters: []float64{1.0, 2.0, 0.25, 0.75},
		},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	counts := map[float64]int{}
	const n = 40000
	for i := 0; i < n; i++ {
		counts[dist.Energy.SampleEnergy(rng)]++
	}
	if len(counts) != 2 {
		t.Fatalf("expected exactly two discrete energies, got %v", counts)
	}
	frac := float64(counts[2.0]) / n
	if frac < 0.72 || frac > 0.78 {
		t.Fatalf("expected roughly 75%% of samples at 2.0, got %.3f", frac)
	}
}

func TestTabularStaysWithinEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	dist, err := source.New(source.Spec{
		Energy: &source.VariantSpec{
			Type:       "tabular",
			Parameters: []float64{0.0, 1.0, 10.0, 0.5, 0.5},
		},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	for i := 0; i < 5000; i++ {
		e := dist.Energy.SampleEnergy(rng)
		if e < 0.0 || e > 10.0 {
			t.Fatalf("tabular sample outside edges: %g", e)
		}
	}
}
