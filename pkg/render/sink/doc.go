// Package sink provides output format renderers for rainbow layouts.
//
// A sink transforms a computed [render.Plan] into a final output format:
//
//   - SVG: vector output, the base format the others derive from
//   - PNG: raster output via in-process SVG rasterization
//   - PDF: print-ready page cut to the chosen paper size
//   - JSON: layout data export for external tools
//
// Basic usage:
//
//	svg := sink.RenderSVG(plan, sink.WithTitle("Fingerprint Rainbow"))
//	png, err := sink.RenderPNG(plan)
//	pdf, err := sink.RenderPDF(plan)
//	data, err := sink.RenderJSON(plan)
//
// SVG is rendered at a configurable pixel density ([WithPPI], default 96
// pixels per inch). PNG rasterizes the SVG with oksvg/rasterx, so no
// external converter is needed. PDF embeds the rasterized page into a
// document whose physical dimensions match the plan's paper size.
package sink
