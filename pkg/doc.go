// Package pkg provides the core libraries for rainbowpress fingerprint
// rainbow layouts.
//
// # Overview
//
// Rainbowpress lays out 100 elliptical fingerprints across seven
// concentric half-circle bands and renders the result as a printable
// keepsake poster. The pkg directory is organized into four areas:
//
//  1. [rainbow] - Layout computation (allocation, placement, bounds)
//  2. [paper] - Page catalog and fit checking
//  3. [render] - Draw-command planning and output sinks
//  4. [errors] - Structured errors and input validation
//
// # Architecture
//
// The typical data flow:
//
//	Fingerprint dimensions + spacing + minimum inner count
//	         ↓
//	    [rainbow] package (allocate bands, place fingerprints)
//	         ↓
//	    [paper] package (pick or validate the page, check fit)
//	         ↓
//	    [render] package (position the draw commands on the page)
//	         ↓
//	    SVG/PNG/PDF/JSON output via [render/sink]
//
// # Quick Start
//
// Compute a layout and render it as SVG:
//
//	import (
//	    "github.com/printworks/rainbowpress/pkg/paper"
//	    "github.com/printworks/rainbowpress/pkg/rainbow"
//	    "github.com/printworks/rainbowpress/pkg/render"
//	    "github.com/printworks/rainbowpress/pkg/render/sink"
//	)
//
//	// 1. Compute the layout
//	layout, _ := rainbow.New(rainbow.PresetChild)
//
//	// 2. Pick a page and check the fit
//	size := paper.FindSmallest(layout.Bounds, 1.5, paper.Portrait, paper.Catalog)
//	fit := paper.Check(layout.Bounds, 1.5, size, paper.Portrait)
//
//	// 3. Plan the draw commands on the page
//	plan := render.BuildPlan(layout, fit)
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(plan)
//
// # Main Packages
//
// [rainbow] - The layout core. Allocates the 100 fingerprints across the
// seven bands proportionally to arc length, pins the innermost band to
// its configured minimum, and places each fingerprint on its band's
// mid-arc with the long axis pointing along the radius.
//
// [paper] - The printable page catalog (Letter, Legal, Tabloid, A4, A3,
// A2, A1, plus custom sizes), orientation handling, and the fit checker
// that compares layout bounds plus margins against a page.
//
// [render] - Turns a layout and a fit report into an ordered list of
// draw commands positioned on the page: colored half-rings, fingerprint
// outlines, and the dashed margin rectangle.
//
// [render/sink] - Output formats. SVG is the native surface; PNG is
// rasterized from the SVG in-process; PDF embeds the PNG on a page cut
// to the paper size; JSON exports the raw layout for external tools.
//
// [errors] - Structured errors with machine-readable codes, plus the
// input validators shared by the library and the CLI.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/rainbow/...   # Specific package
//
// [rainbow]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/rainbow
// [paper]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/paper
// [render]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/render/sink
// [errors]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/printworks/rainbowpress/pkg/buildinfo
package pkg
