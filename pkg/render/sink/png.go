package sink

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/printworks/rainbowpress/pkg/errors"
	"github.com/printworks/rainbowpress/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithPNGScale sets the raster scale factor relative to the SVG size
// (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// RenderPNG renders the plan as PNG by rasterizing the SVG output
// in-process with oksvg and rasterx.
func RenderPNG(p render.Plan, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	data := RenderSVG(p, r.svgOpts...)
	// oksvg has no handler for text elements, so a strict parse would
	// reject a titled plan. Unsupported elements are skipped instead;
	// the caption only appears in the vector output.
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to parse generated SVG")
	}

	w := int(icon.ViewBox.W * r.scale)
	h := int(icon.ViewBox.H * r.scale)
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInternal, "degenerate raster size %dx%d", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
