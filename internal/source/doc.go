// Package source models external particle source distributions.
//
// A source Distribution pairs three independently replaceable pieces: a
// spatial distribution emitting 3D positions, an angular distribution
// emitting unit directions, and an energy distribution emitting scalar
// energies. Each piece is a closed set of variants (point/box,
// isotropic/monodirectional, watt/maxwell/discrete/tabular) selected by the
// settings document and sampled with a caller-supplied random stream.
//
// Construction validates variant names and parameter counts up front so the
// settings loader can fail the whole run on a malformed source node instead
// of discovering the problem mid-transport.
package source
