// Package settings loads, normalizes, and validates the simulation settings
// registry for a Fermi run.
//
// It supplies compiled-in defaults, reads the TOML settings document once
// during startup, resolves deprecated fields into low-precedence fallbacks,
// and builds the external source list (synthesizing a fission-like default
// when the document configures none). The Settings value returned by Load is
// frozen: transport workers read it concurrently without locks, so nothing
// may mutate it after the load phase.
//
// Always obtain run parameters through this package so downstream code sees
// normalized paths, a validated temperature policy, and a non-empty source
// list.
package settings
