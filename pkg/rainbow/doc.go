// Package rainbow computes fingerprint rainbow layouts.
//
// A rainbow is seven concentric half-circle bands, ordered outermost
// (red) to innermost (violet). A fixed total of 100 elliptical
// fingerprints is distributed across the bands in proportion to each
// band's arc length, subject to a minimum count for the innermost band.
//
// # Pipeline
//
// The package exposes three pure computations:
//
//	alloc, err := rainbow.Allocate(params)   // counts per band, sum == 100
//	bounds := rainbow.ComputeBounds(params)  // enclosing half-circle box
//	placements := rainbow.PlaceAll(alloc, params)
//
// or, bundled:
//
//	layout, err := rainbow.New(params)
//
// All results are value types derived entirely from the inputs; nothing
// is cached or shared between calls, so concurrent invocations are safe.
//
// # Coordinate system
//
// Placements are expressed relative to the rainbow origin: the midpoint
// of the half-circle's baseline, with x growing right and y growing up.
// The renderer translates the origin onto the page (horizontally
// centered, baseline on the bottom margin).
package rainbow
