package rainbow

import "math"

// Bounds is the enclosing box of the full rainbow: height is the outer
// radius of the outermost band (only a half-circle is used), width is
// twice that radius.
type Bounds struct {
	Width  float64
	Height float64
}

// Placement positions one fingerprint: the band it belongs to, its slot
// along the band's arc, the ellipse center relative to the rainbow
// origin, and the rotation that aligns the ellipse's long axis with the
// local radius direction.
type Placement struct {
	Band     Band
	Slot     int
	X, Y     float64
	Rotation float64 // degrees, counterclockwise from the baseline
}

// Annulus is the half-ring footprint of one band, used as the colored
// background wedge. It spans 0-180 degrees around the rainbow origin.
type Annulus struct {
	Band   Band
	Inner  float64 // midRadius - width/2
	Outer  float64 // midRadius + width/2
	Radius float64 // midRadius, the fingerprint center line
}

// ComputeBounds returns the total width and height of the rainbow. The
// outermost band's center line sits at spacing/2 + 6*spacing; half a
// fingerprint width extends beyond it.
func ComputeBounds(p Params) Bounds {
	outermost := Band(0).MidRadius(p.Spacing())
	totalRadius := outermost + p.Width/2
	return Bounds{Width: 2 * totalRadius, Height: totalRadius}
}

// Annuli returns the background half-ring for every band in
// outer-to-inner order.
func Annuli(p Params) [NumBands]Annulus {
	spacing := p.Spacing()
	var rings [NumBands]Annulus
	for b := Band(0); b < NumBands; b++ {
		mid := b.MidRadius(spacing)
		rings[b] = Annulus{
			Band:   b,
			Inner:  mid - p.Width/2,
			Outer:  mid + p.Width/2,
			Radius: mid,
		}
	}
	return rings
}

// PlaceAll computes the position and rotation of every fingerprint in
// the allocation. Within a band the n fingerprints split the half-circle
// arc evenly: slot i is centered at angle (i+0.5)*pi/n, so neighbors
// touch exactly when the arc per fingerprint equals the fingerprint
// height (spacing at 100% with a fully packed band).
//
// The result is deterministic for a given allocation and parameters, in
// band order then slot order, with exactly alloc.Sum() entries.
func PlaceAll(alloc Allocation, p Params) []Placement {
	spacing := p.Spacing()
	placements := make([]Placement, 0, alloc.Sum())

	for b := Band(0); b < NumBands; b++ {
		n := alloc[b]
		if n == 0 {
			continue
		}
		mid := b.MidRadius(spacing)
		arcPerPrint := math.Pi * mid / float64(n)

		for i := 0; i < n; i++ {
			angle := (float64(i) + 0.5) * arcPerPrint / mid
			placements = append(placements, Placement{
				Band:     b,
				Slot:     i,
				X:        mid * math.Cos(angle),
				Y:        mid * math.Sin(angle),
				Rotation: angle * 180 / math.Pi,
			})
		}
	}
	return placements
}
