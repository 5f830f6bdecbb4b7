package settings

const (
	defaultTemperatureTolerance = 10.0
	defaultTemperatureDefault   = 293.6
	defaultResScatEnergyMin     = 0.01
	defaultResScatEnergyMax     = 1000.0
	defaultVerbosity            = 7
	defaultWeightCutoff         = 0.25
	defaultWeightSurvive        = 1.0

	// Photon transport below this energy (eV) is cut off by default; all
	// other particle kinds default to no cutoff.
	defaultPhotonEnergyCutoff = 1000.0

	// meshUnset marks entropy/UFS mesh indices with no mesh assigned.
	meshUnset = -1

	// pointsUnset means Legendre moments are converted with the library's
	// own resolution rather than a fixed point count.
	pointsUnset = -1
)

// Default returns a Settings registry populated with compiled-in defaults.
func Default() Settings {
	return Settings{
		CreateFissionNeutrons: true,
		LegendreToTabular:     true,
		OutputSummary:         true,
		OutputTallies:         true,
		ReduceTallies:         true,
		RunCE:                 true,
		SourceWrite:           true,
		URRPTablesOn:          true,

		IndexEntropyMesh: meshUnset,
		IndexUFSMesh:     meshUnset,

		ElectronTreatment:       ElectronTTB,
		EnergyCutoff:            [4]float64{0.0, defaultPhotonEnergyCutoff, 0.0, 0.0},
		LegendreToTabularPoints: pointsUnset,
		ResScatMethod:           ResScatARES,
		ResScatEnergyMin:        defaultResScatEnergyMin,
		ResScatEnergyMax:        defaultResScatEnergyMax,
		RunMode:                 ModeFixedSource,
		TemperatureMethod:       TemperatureNearest,
		TemperatureTolerance:    defaultTemperatureTolerance,
		TemperatureDefault:      defaultTemperatureDefault,
		Verbosity:               defaultVerbosity,
		WeightCutoff:            defaultWeightCutoff,
		WeightSurvive:           defaultWeightSurvive,
	}
}
