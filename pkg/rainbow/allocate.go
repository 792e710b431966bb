package rainbow

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/printworks/rainbowpress/pkg/errors"
)

// Params holds the inputs to a layout computation. All lengths share
// one unit; the presets and the paper catalog assume inches.
type Params struct {
	Width          float64 // fingerprint short axis
	Height         float64 // fingerprint long axis
	SpacingPercent float64 // gap between band centers as % of Height
	MinInner       int     // minimum count for the innermost (violet) band
}

// Validate checks every parameter constraint and returns a structured
// INVALID_INPUT error for the first violation found.
func (p Params) Validate() error {
	if err := errors.ValidateDimensions(p.Width, p.Height); err != nil {
		return err
	}
	if err := errors.ValidateSpacing(p.SpacingPercent); err != nil {
		return err
	}
	return errors.ValidateMinInner(p.MinInner)
}

// Spacing returns the radial gap between band centers in length units.
func (p Params) Spacing() float64 {
	return p.SpacingPercent / 100 * p.Height
}

// Allocation is the number of fingerprints assigned to each band, in
// outer-to-inner order. Entries are non-negative and always sum to
// exactly TotalFingerprints.
type Allocation [NumBands]int

// Sum returns the total count across all bands.
func (a Allocation) Sum() int {
	total := 0
	for _, n := range a {
		total += n
	}
	return total
}

// capacities returns, per band in outer-to-inner order, the real-valued
// number of fingerprint heights that fit along the band's half-circle
// arc: pi * midRadius / height.
func capacities(p Params) [NumBands]float64 {
	spacing := p.Spacing()
	var caps [NumBands]float64
	for b := Band(0); b < NumBands; b++ {
		caps[b] = math.Pi * b.MidRadius(spacing) / p.Height
	}
	return caps
}

// Allocate distributes TotalFingerprints across the seven bands in
// proportion to arc length, then enforces the innermost minimum.
//
// Rounding is half-away-from-zero (math.Round) throughout, which keeps
// the split reproducible regardless of the platform's floating rounding
// mode. Two rounding passes run: the initial proportional split, and a
// renormalization over the six outer bands when the innermost band has
// to be pinned to MinInner. Any residual drift from rounding is settled
// by adjusting the single largest band, excluding a pinned innermost
// band, and clamping every band at zero.
func Allocate(p Params) (Allocation, error) {
	if err := p.Validate(); err != nil {
		return Allocation{}, err
	}

	caps := capacities(p)
	total := floats.Sum(caps[:])

	var alloc Allocation
	for b, c := range caps {
		alloc[b] = int(math.Round(c / total * TotalFingerprints))
	}

	// Pin the innermost band to its minimum and renormalize the rest
	// against their original capacities.
	inner := NumBands - 1
	pinned := false
	if alloc[inner] < p.MinInner {
		alloc[inner] = p.MinInner
		pinned = true

		remaining := float64(TotalFingerprints - p.MinInner)
		outerCap := floats.Sum(caps[:inner])
		for b := 0; b < inner; b++ {
			n := int(math.Round(caps[b] / outerCap * remaining))
			if n < 0 {
				n = 0
			}
			alloc[b] = n
		}
	}

	settle(&alloc, pinned)
	return alloc, nil
}

// settle corrects rounding drift so the allocation sums to exactly
// TotalFingerprints. The difference lands on whichever band currently
// holds the largest count; when the innermost band was pinned it is
// excluded from the correction. If subtracting would drive the largest
// band negative it is clamped at zero and the remainder moves to the
// next largest, so the sum invariant holds without producing negative
// counts.
func settle(alloc *Allocation, innerPinned bool) {
	limit := NumBands
	if innerPinned {
		limit = NumBands - 1
	}

	for {
		diff := TotalFingerprints - alloc.Sum()
		if diff == 0 {
			return
		}

		// Largest adjustable band; ties resolve to the outermost.
		max := 0
		for b := 1; b < limit; b++ {
			if alloc[b] > alloc[max] {
				max = b
			}
		}

		if n := alloc[max] + diff; n >= 0 {
			alloc[max] = n
			return
		}
		// Clamp and push the unresolved remainder onto the next pass.
		alloc[max] = 0
	}
}
