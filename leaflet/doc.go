// Package leaflet transcribes the public API surface of the Leaflet.js
// mapping library into leafbind descriptors.
//
// Everything in this package is declarative data: one builder chain per
// Leaflet class, interface, or options record, grouped into files the way
// the Leaflet reference groups them (geography, rasters, vectors, UI
// layers, groups, controls). Assemble wires the whole surface into a
// verified registry and returns the aggregate the binding generator
// consumes. No file here contains behavior; all runtime semantics (map
// rendering, tiling, projections, DOM events) belong to Leaflet itself and
// are only described, never reimplemented.
//
// The surface is transcribed against the release pinned in Version; the
// resource declarations in resources.go point the generated module at the
// matching CDN artifacts.
package leaflet
