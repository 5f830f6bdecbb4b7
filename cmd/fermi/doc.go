// Package main hosts the Fermi CLI entrypoint and command graph.
//
// The Cobra-based command tree covers settings scaffolding and inspection
// (config init/validate/show) and a source sampling harness for checking a
// configured source term before committing to a long transport run. It
// centralizes settings resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
