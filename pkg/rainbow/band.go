package rainbow

// NumBands is the fixed number of concentric bands in a rainbow.
const NumBands = 7

// TotalFingerprints is the fixed number of fingerprints distributed
// across all bands.
const TotalFingerprints = 100

// Band identifies one of the seven bands. Band 0 is the outermost (red),
// band 6 the innermost (violet). The ordering never changes.
type Band int

// bandNames holds the display names in outer-to-inner order. They double
// as the fill colors for the band wedges (all are valid SVG color names).
var bandNames = [NumBands]string{"red", "orange", "gold", "green", "blue", "indigo", "violet"}

// Name returns the display name (and wedge color) of the band.
func (b Band) Name() string { return bandNames[b] }

// FromCenter returns the band's position counted from the center:
// violet is 0, red is 6.
func (b Band) FromCenter() int { return NumBands - 1 - int(b) }

// MidRadius returns the radius to the center line of the band for the
// given spacing between band centers. The innermost band sits at
// spacing/2; each band outward adds one spacing. Radius strictly
// decreases as the band index increases.
func (b Band) MidRadius(spacing float64) float64 {
	return spacing/2 + float64(b.FromCenter())*spacing
}

// Innermost reports whether b is the violet band.
func (b Band) Innermost() bool { return b == NumBands-1 }
