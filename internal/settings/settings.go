package settings

import (
	"fermi/internal/source"
)

// RunMode selects the overall execution mode of a run.
type RunMode string

const (
	ModeFixedSource     RunMode = "fixed-source"
	ModeEigenvalue      RunMode = "eigenvalue"
	ModePlotting        RunMode = "plotting"
	ModeParticleRestart RunMode = "particle-restart"
)

// TemperatureMethod selects how cross-section data is chosen for a cell
// temperature that has no exact library match.
type TemperatureMethod string

const (
	TemperatureNearest       TemperatureMethod = "nearest"
	TemperatureInterpolation TemperatureMethod = "interpolation"
)

// ElectronTreatment selects how secondary electrons are handled.
type ElectronTreatment string

const (
	ElectronTTB ElectronTreatment = "ttb"
	ElectronLED ElectronTreatment = "led"
)

// ResScatMethod selects the resonance elastic scattering model.
type ResScatMethod string

const (
	ResScatARES ResScatMethod = "ares"
	ResScatDBRC ResScatMethod = "dbrc"
	ResScatWCM  ResScatMethod = "wcm"
)

// Particle kind slots of the energy cutoff array.
const (
	ParticleNeutron = iota
	ParticlePhoton
	ParticleElectron
	ParticlePositron
)

// Settings is the process-wide registry of run parameters. It is populated
// once by Load before any transport work is dispatched and treated as
// immutable afterwards.
type Settings struct {
	// Boolean flags, each with a fixed compiled default and no cross-field
	// constraints.
	AssumeSeparate        bool `toml:"assume_separate"`
	CheckOverlaps         bool `toml:"check_overlaps"`
	CMFDRun               bool `toml:"cmfd_run"`
	ConfidenceIntervals   bool `toml:"confidence_intervals"`
	CreateFissionNeutrons bool `toml:"create_fission_neutrons"`
	EntropyOn             bool `toml:"entropy_on"`
	LegendreToTabular     bool `toml:"legendre_to_tabular"`
	OutputSummary         bool `toml:"output_summary"`
	OutputTallies         bool `toml:"output_tallies"`
	ParticleRestartRun    bool `toml:"particle_restart_run"`
	PhotonTransport       bool `toml:"photon_transport"`
	ReduceTallies         bool `toml:"reduce_tallies"`
	ResScatOn             bool `toml:"res_scat_on"`
	RestartRun            bool `toml:"restart_run"`
	RunCE                 bool `toml:"run_ce"`
	SourceLatest          bool `toml:"source_latest"`
	SourceSeparate        bool `toml:"source_separate"`
	SourceWrite           bool `toml:"source_write"`
	SurvivalBiasing       bool `toml:"survival_biasing"`
	TemperatureMultipole  bool `toml:"temperature_multipole"`
	TriggerOn             bool `toml:"trigger_on"`
	TriggerPredict        bool `toml:"trigger_predict"`
	UFSOn                 bool `toml:"ufs_on"`
	URRPTablesOn          bool `toml:"urr_ptables_on"`
	WriteAllTracks        bool `toml:"write_all_tracks"`
	WriteInitialSource    bool `toml:"write_initial_source"`

	// Path fields. Cross-sections and multipole values arriving through the
	// deprecated document keys are fallbacks only; callers resolve the
	// effective path through ResolveCrossSections / ResolveMultipole.
	PathInput           string `toml:"path_input"`
	PathStatepoint      string `toml:"path_statepoint"`
	PathSourcepoint     string `toml:"path_sourcepoint"`
	PathParticleRestart string `toml:"path_particle_restart"`
	PathCrossSections   string `toml:"-"`
	PathMultipole       string `toml:"-"`
	PathOutput          string `toml:"-"`
	PathSource          string `toml:"path_source"`

	IndexEntropyMesh int `toml:"-"`
	IndexUFSMesh     int `toml:"-"`

	ElectronTreatment       ElectronTreatment `toml:"electron_treatment"`
	EnergyCutoff            [4]float64        `toml:"-"`
	LegendreToTabularPoints int               `toml:"legendre_to_tabular_points"`
	ResScatMethod           ResScatMethod     `toml:"res_scat_method"`
	ResScatEnergyMin        float64           `toml:"res_scat_energy_min"`
	ResScatEnergyMax        float64           `toml:"res_scat_energy_max"`
	RunMode                 RunMode           `toml:"-"`
	TemperatureMethod       TemperatureMethod `toml:"-"`
	TemperatureTolerance    float64           `toml:"temperature_tolerance"`
	TemperatureDefault      float64           `toml:"temperature_default"`
	TemperatureRange        [2]float64        `toml:"-"`
	Verbosity               int               `toml:"verbosity"`
	WeightCutoff            float64           `toml:"weight_cutoff"`
	WeightSurvive           float64           `toml:"weight_survive"`

	// ExternalSources is never empty after a successful load: when the
	// document configures no source, exactly one synthesized default is
	// appended. Document order is preserved because the engine samples
	// sources proportionally to strength in this sequence.
	ExternalSources []source.Distribution `toml:"-"`
}
