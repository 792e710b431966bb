package sink

import (
	"encoding/json"

	"github.com/printworks/rainbowpress/pkg/errors"
	"github.com/printworks/rainbowpress/pkg/render"
)

type jsonOutput struct {
	Fingerprint jsonFingerprint `json:"fingerprint"`
	Bounds      jsonBounds      `json:"bounds"`
	Paper       jsonPaper       `json:"paper"`
	Bands       []jsonBand      `json:"bands"`
	Placements  []jsonPlacement `json:"placements"`
}

type jsonFingerprint struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	SpacingPercent float64 `json:"spacing_percent"`
	MinInner       int     `json:"min_inner"`
}

type jsonBounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonPaper struct {
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Orientation string  `json:"orientation"`
	Margin      float64 `json:"margin"`
	Oversized   bool    `json:"oversized,omitempty"`
}

type jsonBand struct {
	Index       int     `json:"index"`
	Color       string  `json:"color"`
	Count       int     `json:"count"`
	MidRadius   float64 `json:"mid_radius"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
}

type jsonPlacement struct {
	Band     int     `json:"band"`
	Slot     int     `json:"slot"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// RenderJSON exports the complete layout and page choice as indented
// JSON for external tools. Placements are page coordinates (origin at
// the bottom-left corner, y up), matching the other sinks.
func RenderJSON(p render.Plan) ([]byte, error) {
	l := p.Layout
	out := jsonOutput{
		Fingerprint: jsonFingerprint{
			Width:          l.Params.Width,
			Height:         l.Params.Height,
			SpacingPercent: l.Params.SpacingPercent,
			MinInner:       l.Params.MinInner,
		},
		Bounds: jsonBounds{Width: l.Bounds.Width, Height: l.Bounds.Height},
		Paper: jsonPaper{
			Name:        p.Fit.Paper.Name,
			Width:       p.PageWidth,
			Height:      p.PageHeight,
			Orientation: string(p.Fit.Orientation),
			Margin:      p.Margin,
			Oversized:   p.Oversized,
		},
	}

	for _, a := range l.Annuli {
		out.Bands = append(out.Bands, jsonBand{
			Index:       int(a.Band),
			Color:       a.Band.Name(),
			Count:       l.Allocation[a.Band],
			MidRadius:   a.Radius,
			InnerRadius: a.Inner,
			OuterRadius: a.Outer,
		})
	}

	for _, e := range p.Ellipses {
		out.Placements = append(out.Placements, jsonPlacement{
			Band:     int(e.Band),
			Slot:     e.Slot,
			X:        e.X,
			Y:        e.Y,
			Rotation: e.Rotation,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to marshal layout")
	}
	return data, nil
}
