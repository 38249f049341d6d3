package leafbind

// Package leafbind provides:
//
// - An immutable, declarative descriptor model for an external JavaScript
//   library's public API surface (types, constructors, methods, properties,
//   options records, capability interfaces, events)
// - A two-phase registry (declare identities, then define member lists) so
//   sibling and supertype references can be written in any source order
// - A stable build-time error model via Issues (path, code, message)
// - One aggregate Assembly value handed to an external binding generator
//
// Design policy:
// - Keep only the descriptor model and the registry in the root package.
// - Place the fluent builders under dsl/, the Leaflet surface itself under
//   leaflet/, serialization for the generator under export/, and the CLI
//   under cmd/leafbind.
// - Everything here is build-time configuration data: no I/O, no runtime
//   state, no concurrency. A malformed registration fails Verify
//   deterministically; nothing degrades silently at call time.
//
// Typical usage:
//
//	a, err := leaflet.Assemble()
//	doc := export.Build(a)
//	b, err := export.JSONIndent(a)
