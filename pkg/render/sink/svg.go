package sink

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/printworks/rainbowpress/pkg/render"
)

const (
	defaultPPI = 96.0 // CSS reference pixel density

	ringStyle    = "fill-opacity:0.3;stroke:black;stroke-width:1"
	ellipseStyle = "fill:none;stroke:black;stroke-width:1;stroke-opacity:0.7"
	marginStyle  = "fill:none;stroke:lightgray;stroke-width:1;stroke-dasharray:6,4"
	titleStyle   = "font-family:sans-serif;font-size:12px;fill:gray;text-anchor:middle"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	ppi   float64
	title string
}

// WithPPI sets the pixel density used to convert page inches to SVG
// user units (default 96).
func WithPPI(ppi float64) SVGOption {
	return func(r *svgRenderer) {
		if ppi > 0 {
			r.ppi = ppi
		}
	}
}

// WithTitle draws a caption line above the rainbow.
func WithTitle(title string) SVGOption {
	return func(r *svgRenderer) { r.title = title }
}

// RenderSVG draws the plan onto an SVG canvas: band rings first, then
// fingerprint outlines, then the margin rectangle. The page's bottom-up
// coordinates are flipped to the SVG's top-down axis here.
func RenderSVG(p render.Plan, opts ...SVGOption) []byte {
	r := svgRenderer{ppi: defaultPPI}
	for _, opt := range opts {
		opt(&r)
	}

	pageW := int(p.PageWidth*r.ppi + 0.5)
	pageH := int(p.PageHeight*r.ppi + 0.5)
	px := func(v float64) int { return int(v*r.ppi + 0.5) }

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(pageW, pageH)
	canvas.Rect(0, 0, pageW, pageH, "fill:white")

	cx := px(p.CenterX)
	cy := pageH - px(p.CenterY)

	for _, ring := range p.Rings {
		canvas.Path(halfAnnulusPath(cx, cy, px(ring.Inner), px(ring.Outer)),
			fmt.Sprintf("fill:%s;%s", ring.Color, ringStyle))
	}

	for _, e := range p.Ellipses {
		x := px(e.X)
		y := pageH - px(e.Y)
		// The rotation flips sign with the axis: counterclockwise on the
		// page is clockwise in SVG screen coordinates.
		canvas.Ellipse(x, y, px(e.RX), px(e.RY), ellipseStyle,
			fmt.Sprintf(`transform="rotate(%.2f %d %d)"`, -e.Rotation, x, y))
	}

	m := px(p.Margin)
	canvas.Rect(m, m, pageW-2*m, pageH-2*m, marginStyle)

	if r.title != "" {
		canvas.Text(pageW/2, m+16, r.title, titleStyle)
	}

	canvas.End()
	return buf.Bytes()
}

// halfAnnulusPath builds the path for one band ring: the outer
// semicircle left to right over the top, a baseline segment inward, and
// the inner semicircle back. Coordinates are SVG screen units (y down),
// so the upper half-plane arc uses sweep=1 outbound and sweep=0 back.
func halfAnnulusPath(cx, cy, inner, outer int) string {
	return fmt.Sprintf("M%d,%d A%d,%d 0 0 1 %d,%d L%d,%d A%d,%d 0 0 0 %d,%d Z",
		cx-outer, cy, outer, outer, cx+outer, cy,
		cx+inner, cy, inner, inner, cx-inner, cy)
}
