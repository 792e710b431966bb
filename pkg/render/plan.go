// Package render turns a computed rainbow layout into an ordered list of
// draw commands positioned on a page: one colored half-ring per band,
// one outlined ellipse per fingerprint, and the dashed margin rectangle.
// The sinks in render/sink consume a Plan to produce SVG, PNG, PDF, or
// JSON output.
package render

import (
	"github.com/printworks/rainbowpress/pkg/paper"
	"github.com/printworks/rainbowpress/pkg/rainbow"
)

// Ring is the draw command for one band: a half-annulus centered on the
// rainbow origin, filled with the band color at low opacity.
type Ring struct {
	Band  rainbow.Band
	Color string  // SVG color name from the band palette
	Inner float64 // inner radius, page units
	Outer float64 // outer radius, page units
}

// Ellipse is the draw command for one fingerprint: an un-filled outline
// rotated so its long axis points along the radius.
type Ellipse struct {
	Band     rainbow.Band
	Slot     int
	X, Y     float64 // center on the page, y measured up from the bottom edge
	RX       float64 // semi-axis along the radius (Height/2)
	RY       float64 // semi-axis tangent to the arc (Width/2)
	Rotation float64 // degrees counterclockwise
}

// Plan is the full ordered command list for one page. Coordinates use
// the same length unit as the layout (inches), with the origin at the
// page's bottom-left corner and y growing upward; sinks flip the axis as
// their surface requires.
type Plan struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Oversized  bool

	// CenterX/CenterY locate the rainbow origin on the page: centered
	// horizontally, baseline sitting on the bottom margin.
	CenterX float64
	CenterY float64

	Rings    []Ring    // outer to inner, drawn first
	Ellipses []Ellipse // band order then slot order, drawn on top

	Layout *rainbow.Layout
	Fit    paper.FitReport
}

// BuildPlan lays the rainbow onto the page described by the fit report.
func BuildPlan(l *rainbow.Layout, fit paper.FitReport) Plan {
	centerX := fit.PageWidth / 2
	centerY := fit.Margin

	rings := make([]Ring, 0, rainbow.NumBands)
	for _, a := range l.Annuli {
		rings = append(rings, Ring{
			Band:  a.Band,
			Color: a.Band.Name(),
			Inner: a.Inner,
			Outer: a.Outer,
		})
	}

	ellipses := make([]Ellipse, 0, len(l.Placements))
	for _, pl := range l.Placements {
		ellipses = append(ellipses, Ellipse{
			Band:     pl.Band,
			Slot:     pl.Slot,
			X:        centerX + pl.X,
			Y:        centerY + pl.Y,
			RX:       l.Params.Height / 2,
			RY:       l.Params.Width / 2,
			Rotation: pl.Rotation,
		})
	}

	return Plan{
		PageWidth:  fit.PageWidth,
		PageHeight: fit.PageHeight,
		Margin:     fit.Margin,
		Oversized:  fit.Oversized,
		CenterX:    centerX,
		CenterY:    centerY,
		Rings:      rings,
		Ellipses:   ellipses,
		Layout:     l,
		Fit:        fit,
	}
}
