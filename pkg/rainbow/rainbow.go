package rainbow

// Layout bundles the results of one complete computation run. It is
// immutable once returned; callers pass it on to the fit checker and the
// render sinks.
type Layout struct {
	Params     Params
	Allocation Allocation
	Bounds     Bounds
	Annuli     [NumBands]Annulus
	Placements []Placement
}

// New validates the parameters, allocates fingerprints to bands, and
// computes bounds and placements in one pass.
func New(p Params) (*Layout, error) {
	alloc, err := Allocate(p)
	if err != nil {
		return nil, err
	}
	return &Layout{
		Params:     p,
		Allocation: alloc,
		Bounds:     ComputeBounds(p),
		Annuli:     Annuli(p),
		Placements: PlaceAll(alloc, p),
	}, nil
}

// Fingerprint dimension presets from the reference sheets, in inches.
var (
	// PresetChild is a typical child fingerprint (0.4" x 0.6").
	PresetChild = Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}

	// PresetAdult is a typical adult fingerprint (0.5" x 0.8").
	PresetAdult = Params{Width: 0.5, Height: 0.8, SpacingPercent: 100, MinInner: 5}
)
