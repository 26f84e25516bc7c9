// Package vars implements the delayed-binding variable system that drives
// attribute resolution in the workload model.
//
// # Reading Guide
//
// Start with these three files to understand the binding machinery:
//   - variable.go: Variable storage cells, scope classes, and value facets
//   - avd.go: attribute value descriptors and the four typed readers
//   - context.go: the Context that owns the registries and the arena
//
// # Architecture
//
// The model loader turns every configurable attribute of a workload into an
// AVD. Static attributes carry their value directly; $name references carry a
// live alias into one facet of a named Variable, so that values changed after
// the model is loaded (by further set statements, by telemetry providers, or
// by random distributions) are observed at read time. Random-scoped Variables
// own a distribution that is re-sampled on every read, one draw per simulated
// event.
//
// Variables live in three registries owned by a Context: global (declaration
// order), special (lazily created for {internal} and (environment) names),
// and local (innermost-wins shadowing across component instances). Variables
// are never removed; the registries grow for the duration of one run.
//
// The distribution implementation lives in the vars/randdist sub-package,
// which registers itself via an init() function that sets the package-level
// factory variable NewDistributionFunc. Telemetry providers live in
// vars/providers and are wired onto the Context.
package vars
