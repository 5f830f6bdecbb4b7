package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"fermi/internal/runlock"
	"fermi/internal/source"
	"fermi/internal/statepoint"
)

const sampleTableLimit = 10

func newSampleCommand(ctx *commandContext) *cobra.Command {
	var particles int
	var seed int64
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample particles from the configured sources",
		Long: "Sample draws starting particles from the external source term " +
			"so a source definition can be sanity-checked before a long " +
			"transport run. The run is recorded in the output directory's " +
			"run database unless --no-record is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if particles < 1 {
				return fmt.Errorf("--particles must be at least 1, got %d", particles)
			}

			cfg, err := ctx.ensureSettings()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}

			outputDir := cfg.PathOutput
			if outputDir == "" {
				outputDir = "."
			}

			lock, err := runlock.New(outputDir)
			if err != nil {
				return err
			}
			if err := lock.Acquire(); err != nil {
				return err
			}
			defer lock.Release()

			if !noRecord {
				store, err := statepoint.Open(outputDir)
				if err != nil {
					return fmt.Errorf("open run database: %w", err)
				}
				defer store.Close()
				run, err := store.RecordRun(cmd.Context(), cfg, seed)
				if err != nil {
					return fmt.Errorf("record run: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %s\n", run.RunID)
			}

			rng := rand.New(rand.NewSource(seed))
			picker := newSourcePicker(cfg.ExternalSources)

			var rows [][]string
			minEnergy := math.Inf(1)
			maxEnergy := math.Inf(-1)
			var energySum float64

			for i := 0; i < particles; i++ {
				dist := picker.pick(rng)
				pos := dist.Space.SamplePosition(rng)
				dir := dist.Angle.SampleDirection(rng)
				energy := dist.Energy.SampleEnergy(rng)

				energySum += energy
				minEnergy = math.Min(minEnergy, energy)
				maxEnergy = math.Max(maxEnergy, energy)

				if i < sampleTableLimit {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						fmt.Sprintf("(%.4g, %.4g, %.4g)", pos.X, pos.Y, pos.Z),
						fmt.Sprintf("(%.4f, %.4f, %.4f)", dir.U, dir.V, dir.W),
						fmt.Sprintf("%.6g", energy),
					})
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"#", "Position", "Direction", "Energy"}, rows, 0, 3))
			if particles > sampleTableLimit {
				fmt.Fprintf(out, "(showing %d of %d particles)\n", sampleTableLimit, particles)
			}
			fmt.Fprintf(out, "Sampled %d particles from %d source(s); energy mean %.6g, min %.6g, max %.6g\n",
				particles, len(cfg.ExternalSources), energySum/float64(particles), minEnergy, maxEnergy)
			return nil
		},
	}

	cmd.Flags().IntVarP(&particles, "particles", "n", 1000, "Number of particles to sample")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random number seed")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip recording the run in the output directory")
	return cmd
}

// sourcePicker selects a source with probability proportional to strength.
type sourcePicker struct {
	sources    []source.Distribution
	cumulative []float64
	total      float64
}

func newSourcePicker(sources []source.Distribution) *sourcePicker {
	picker := &sourcePicker{sources: sources}
	for _, dist := range sources {
		picker.total += dist.Strength
		picker.cumulative = append(picker.cumulative, picker.total)
	}
	return picker
}

func (p *sourcePicker) pick(rng *rand.Rand) source.Distribution {
	if len(p.sources) == 1 {
		return p.sources[0]
	}
	xi := rng.Float64() * p.total
	for i, bound := range p.cumulative {
		if xi < bound {
			return p.sources[i]
		}
	}
	return p.sources[len(p.sources)-1]
}
