package settings

import (
	"errors"
	"fmt"
)

// Validate ensures the registry is usable by the transport engine. Document
// fields with trusted happy-path semantics (temperature tolerance, range
// ordering) are deliberately not bounded here; later consumers own those
// failure modes.
func (s *Settings) Validate() error {
	if err := s.validateRunMode(); err != nil {
		return err
	}
	if err := s.validateWeights(); err != nil {
		return err
	}
	if err := s.validateResScat(); err != nil {
		return err
	}
	if s.Verbosity < 1 {
		return errors.New("verbosity must be at least 1")
	}
	for i, cutoff := range s.EnergyCutoff {
		if cutoff < 0 {
			return fmt.Errorf("energy cutoff for particle slot %d must be >= 0", i)
		}
	}
	if len(s.ExternalSources) == 0 {
		return errors.New("external source list must not be empty")
	}
	return nil
}

func (s *Settings) validateRunMode() error {
	switch s.RunMode {
	case ModeFixedSource, ModeEigenvalue, ModePlotting, ModeParticleRestart:
		return nil
	default:
		return fmt.Errorf("unknown run mode: %s", s.RunMode)
	}
}

func (s *Settings) validateWeights() error {
	if s.WeightCutoff < 0 {
		return errors.New("weight_cutoff must be >= 0")
	}
	if s.WeightSurvive <= 0 {
		return errors.New("weight_survive must be positive")
	}
	if s.WeightSurvive < s.WeightCutoff {
		return errors.New("weight_survive must be at least weight_cutoff")
	}
	return nil
}

func (s *Settings) validateResScat() error {
	if !s.ResScatOn {
		return nil
	}
	switch s.ResScatMethod {
	case ResScatARES, ResScatDBRC, ResScatWCM:
	default:
		return fmt.Errorf("unknown resonance scattering method: %s", s.ResScatMethod)
	}
	if s.ResScatEnergyMin <= 0 {
		return errors.New("res_scat_energy_min must be positive")
	}
	if s.ResScatEnergyMax <= s.ResScatEnergyMin {
		return errors.New("res_scat_energy_max must be greater than res_scat_energy_min")
	}
	return nil
}
