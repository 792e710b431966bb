package rainbow

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   Bounds
	}{
		{
			// spacing 0.6, outermost center 3.9, plus half width 0.2.
			name:   "child at 100%",
			params: Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5},
			want:   Bounds{Width: 8.2, Height: 4.1},
		},
		{
			// spacing 0.96, outermost center 6.24, plus 0.25.
			name:   "adult at 120%",
			params: Params{Width: 0.5, Height: 0.8, SpacingPercent: 120, MinInner: 10},
			want:   Bounds{Width: 12.98, Height: 6.49},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBounds(tt.params)
			if !almostEqual(got.Width, tt.want.Width) || !almostEqual(got.Height, tt.want.Height) {
				t.Errorf("ComputeBounds() = %+v, want %+v", got, tt.want)
			}
			if !almostEqual(got.Width, 2*got.Height) {
				t.Errorf("width %v is not twice the height %v", got.Width, got.Height)
			}
		})
	}
}

// Larger inputs never shrink the bounding box.
func TestComputeBoundsMonotonic(t *testing.T) {
	base := Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}
	b0 := ComputeBounds(base)

	grow := []Params{
		{Width: 0.5, Height: 0.6, SpacingPercent: 100},
		{Width: 0.4, Height: 0.7, SpacingPercent: 100},
		{Width: 0.4, Height: 0.6, SpacingPercent: 110},
	}
	for _, p := range grow {
		b := ComputeBounds(p)
		if b.Width < b0.Width || b.Height < b0.Height {
			t.Errorf("ComputeBounds(%+v) = %+v shrank below %+v", p, b, b0)
		}
	}
}

func TestPlaceAllCountAndIdentity(t *testing.T) {
	params := Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}
	alloc, err := Allocate(params)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	placements := PlaceAll(alloc, params)
	if len(placements) != alloc.Sum() {
		t.Fatalf("len(placements) = %d, want %d", len(placements), alloc.Sum())
	}

	type key struct {
		band Band
		slot int
	}
	seen := make(map[key]bool, len(placements))
	for _, pl := range placements {
		k := key{pl.Band, pl.Slot}
		if seen[k] {
			t.Errorf("duplicate placement for band %d slot %d", pl.Band, pl.Slot)
		}
		seen[k] = true

		if pl.Slot < 0 || pl.Slot >= alloc[pl.Band] {
			t.Errorf("slot %d out of range for band %d (count %d)", pl.Slot, pl.Band, alloc[pl.Band])
		}
	}
}

func TestPlaceAllGeometry(t *testing.T) {
	params := Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}

	// One fingerprint in a band sits at the top of its arc.
	var alloc Allocation
	alloc[3] = 1
	placements := PlaceAll(alloc, params)
	if len(placements) != 1 {
		t.Fatalf("len(placements) = %d, want 1", len(placements))
	}

	mid := Band(3).MidRadius(params.Spacing())
	pl := placements[0]
	if !almostEqual(pl.X, 0) {
		t.Errorf("X = %v, want 0", pl.X)
	}
	if !almostEqual(pl.Y, mid) {
		t.Errorf("Y = %v, want %v", pl.Y, mid)
	}
	if !almostEqual(pl.Rotation, 90) {
		t.Errorf("Rotation = %v, want 90", pl.Rotation)
	}
}

// Every placement center sits exactly on its band's center line, and
// within a band the angular step between neighbors is pi/n.
func TestPlaceAllOnArc(t *testing.T) {
	params := Params{Width: 0.5, Height: 0.8, SpacingPercent: 120, MinInner: 10}
	alloc, err := Allocate(params)
	if err != nil {
		t.Fatalf("Allocate() error = %v", err)
	}

	for _, pl := range PlaceAll(alloc, params) {
		mid := pl.Band.MidRadius(params.Spacing())
		r := math.Hypot(pl.X, pl.Y)
		if !almostEqual(r, mid) {
			t.Errorf("band %d slot %d radius = %v, want %v", pl.Band, pl.Slot, r, mid)
		}

		n := alloc[pl.Band]
		wantAngle := (float64(pl.Slot) + 0.5) * math.Pi / float64(n)
		if !almostEqual(pl.Rotation, wantAngle*180/math.Pi) {
			t.Errorf("band %d slot %d rotation = %v, want %v",
				pl.Band, pl.Slot, pl.Rotation, wantAngle*180/math.Pi)
		}
	}
}

// When spacing is 100% and a band holds exactly its capacity, the arc
// per fingerprint equals the fingerprint height: neighbors touch.
func TestPlaceAllTangency(t *testing.T) {
	params := Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 1}

	var alloc Allocation
	b := Band(0)
	mid := b.MidRadius(params.Spacing())
	n := int(math.Round(math.Pi * mid / params.Height))
	alloc[b] = n

	placements := PlaceAll(alloc, params)
	arcPerPrint := math.Pi * mid / float64(n)
	// Not exact because n is rounded to an integer, but close to one
	// fingerprint height per slot.
	if math.Abs(arcPerPrint-params.Height) > 0.02 {
		t.Errorf("arc per fingerprint = %v, want about %v", arcPerPrint, params.Height)
	}
	if len(placements) != n {
		t.Errorf("len(placements) = %d, want %d", len(placements), n)
	}
}

func TestAnnuli(t *testing.T) {
	params := Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}
	rings := Annuli(params)

	for b := Band(0); b < NumBands; b++ {
		mid := b.MidRadius(params.Spacing())
		ring := rings[b]
		if ring.Band != b {
			t.Errorf("rings[%d].Band = %d", b, ring.Band)
		}
		if !almostEqual(ring.Inner, mid-0.2) || !almostEqual(ring.Outer, mid+0.2) {
			t.Errorf("rings[%d] = [%v, %v], want [%v, %v]",
				b, ring.Inner, ring.Outer, mid-0.2, mid+0.2)
		}
	}

	// The outermost ring's outer edge defines the bounds height.
	bounds := ComputeBounds(params)
	if !almostEqual(rings[0].Outer, bounds.Height) {
		t.Errorf("outermost ring edge %v != bounds height %v", rings[0].Outer, bounds.Height)
	}
}
