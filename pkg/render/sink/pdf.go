package sink

import (
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	marotoimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/printworks/rainbowpress/pkg/errors"
	"github.com/printworks/rainbowpress/pkg/render"
)

const mmPerInch = 25.4

// pdfMarginMM is the physical document margin. The plan's own margin
// rectangle is part of the rendered image, so this only keeps the image
// clear of the printer's hardware edge.
const pdfMarginMM = 5.0

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	pngOpts []PNGOption
}

// WithPDFPNGOptions passes options through to the underlying PNG renderer.
func WithPDFPNGOptions(opts ...PNGOption) PDFOption {
	return func(r *pdfRenderer) { r.pngOpts = opts }
}

// RenderPDF renders the plan as a PDF document cut to the plan's paper
// size. The page is rasterized first and embedded as a full-width image
// row, so the PDF matches the PNG output exactly.
func RenderPDF(p render.Plan, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	data, err := RenderPNG(p, r.pngOpts...)
	if err != nil {
		return nil, err
	}

	pageW := p.PageWidth * mmPerInch
	pageH := p.PageHeight * mmPerInch

	cfg := config.NewBuilder().
		WithDimensions(pageW, pageH).
		WithLeftMargin(pdfMarginMM).
		WithRightMargin(pdfMarginMM).
		WithTopMargin(pdfMarginMM).
		WithBottomMargin(pdfMarginMM).
		Build()

	m := maroto.New(cfg)
	img := marotoimage.NewFromBytes(data, extension.Png, props.Rect{Center: true, Percent: 100})
	m.AddRow(pageH-2*pdfMarginMM, col.New(12).Add(img))

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to generate PDF")
	}
	return doc.GetBytes(), nil
}
