package paper

import (
	"github.com/samber/lo"

	"github.com/printworks/rainbowpress/pkg/rainbow"
)

// Fits reports whether bounds plus margin on every side fit the page in
// the given orientation.
func Fits(b rainbow.Bounds, margin float64, s Size, o Orientation) bool {
	pageW, pageH := o.Apply(s)
	return b.Width+2*margin <= pageW && b.Height+2*margin <= pageH
}

// FindSmallest returns the smallest-area catalog entry that fits the
// bounds with the given margin in the given orientation. Area ties break
// by catalog order. If nothing fits, a synthetic Custom size is returned,
// cut exactly to the required dimensions (pre-swapped for landscape so
// that the returned size always fits).
func FindSmallest(b rainbow.Bounds, margin float64, o Orientation, catalog []Size) Size {
	fitting := lo.Filter(catalog, func(s Size, _ int) bool {
		return Fits(b, margin, s, o)
	})
	if len(fitting) == 0 {
		requiredW := b.Width + 2*margin
		requiredH := b.Height + 2*margin
		if o == Landscape {
			return Custom(requiredH, requiredW)
		}
		return Custom(requiredW, requiredH)
	}

	best := fitting[0]
	for _, s := range fitting[1:] {
		if s.Area() < best.Area() {
			best = s
		}
	}
	return best
}

// FitReport is the advisory result of checking a layout against a page.
// Oversized layouts are still rendered; the flag only drives a warning.
type FitReport struct {
	Paper       Size
	Orientation Orientation
	Margin      float64
	PageWidth   float64 // oriented page width
	PageHeight  float64 // oriented page height
	Oversized   bool
}

// Check builds a FitReport for the layout bounds against the chosen page.
func Check(b rainbow.Bounds, margin float64, s Size, o Orientation) FitReport {
	pageW, pageH := o.Apply(s)
	return FitReport{
		Paper:       s,
		Orientation: o,
		Margin:      margin,
		PageWidth:   pageW,
		PageHeight:  pageH,
		Oversized:   !Fits(b, margin, s, o),
	}
}
