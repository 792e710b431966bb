package paper

import (
	"testing"

	"github.com/printworks/rainbowpress/pkg/rainbow"
)

// childBounds is the layout extent for 0.4x0.6 fingerprints at 100%
// spacing: 8.2 wide, 4.1 tall.
func childBounds(t *testing.T) rainbow.Bounds {
	t.Helper()
	p := rainbow.Params{Width: 0.4, Height: 0.6, SpacingPercent: 100, MinInner: 5}
	return rainbow.ComputeBounds(p)
}

func TestFits(t *testing.T) {
	b := childBounds(t)
	letter := Catalog[0]

	tests := []struct {
		name        string
		margin      float64
		size        Size
		orientation Orientation
		want        bool
	}{
		// 8.2 + 2*1.5 = 11.2 exceeds both Letter sides in portrait.
		{"letter portrait margin 1.5", 1.5, letter, Portrait, false},
		// 11.2 > 11 even with the long side horizontal.
		{"letter landscape margin 1.5", 1.5, letter, Landscape, false},
		// 8.2 + 0.2 = 8.4 <= 8.5 and 4.1 + 0.2 = 4.3 <= 11.
		{"letter portrait margin 0.1", 0.1, letter, Portrait, true},
		{"letter landscape margin 0.1", 0.1, letter, Landscape, true},
		// Legal landscape is 14 x 8.5: 11.2 <= 14 and 7.1 <= 8.5.
		{"legal landscape margin 1.5", 1.5, Catalog[1], Landscape, true},
		{"legal portrait margin 1.5", 1.5, Catalog[1], Portrait, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(b, tt.margin, tt.size, tt.orientation); got != tt.want {
				t.Errorf("Fits(%+v, %g, %s, %s) = %v, want %v",
					b, tt.margin, tt.size.Name, tt.orientation, got, tt.want)
			}
		})
	}
}

func TestFitsExactBoundary(t *testing.T) {
	b := rainbow.Bounds{Width: 8.5, Height: 4.0}
	letter := Catalog[0]

	if !Fits(b, 0, letter, Portrait) {
		t.Error("bounds exactly page width should fit with zero margin")
	}
	if Fits(b, 0.01, letter, Portrait) {
		t.Error("any margin should push exact-width bounds off the page")
	}
}

func TestFindSmallest(t *testing.T) {
	b := childBounds(t)

	t.Run("smallest area wins", func(t *testing.T) {
		// With margin 1.5 in landscape, Legal (119 sq in), Tabloid (187),
		// A4 (96.68) and larger all fit; A4 has the smallest area.
		got := FindSmallest(b, 1.5, Landscape, Catalog)
		if got.Name != "A4" {
			t.Errorf("FindSmallest = %q, want A4", got.Name)
		}
	})

	t.Run("tight fit picks letter", func(t *testing.T) {
		got := FindSmallest(b, 0.1, Portrait, Catalog)
		if got.Name != "Letter (US)" {
			t.Errorf("FindSmallest = %q, want Letter (US)", got.Name)
		}
	})

	t.Run("area ties break by catalog order", func(t *testing.T) {
		catalog := []Size{
			{Name: "Square", Width: 10, Height: 10},
			{Name: "Strip", Width: 5, Height: 20},
		}
		small := rainbow.Bounds{Width: 4, Height: 4}
		got := FindSmallest(small, 0, Portrait, catalog)
		if got.Name != "Square" {
			t.Errorf("FindSmallest = %q, want Square (first in catalog order)", got.Name)
		}
	})
}

func TestFindSmallestCustomFallback(t *testing.T) {
	// Larger than anything in the catalog.
	big := rainbow.Bounds{Width: 40, Height: 20}

	t.Run("portrait", func(t *testing.T) {
		got := FindSmallest(big, 1, Portrait, Catalog)
		if got.Name != CustomName {
			t.Fatalf("FindSmallest = %q, want %q", got.Name, CustomName)
		}
		if got.Width != 42 || got.Height != 22 {
			t.Errorf("custom size = %gx%g, want 42x22", got.Width, got.Height)
		}
		if !Fits(big, 1, got, Portrait) {
			t.Error("custom fallback must fit the bounds in the requested orientation")
		}
	})

	t.Run("landscape pre-swaps sides", func(t *testing.T) {
		got := FindSmallest(big, 1, Landscape, Catalog)
		if got.Name != CustomName {
			t.Fatalf("FindSmallest = %q, want %q", got.Name, CustomName)
		}
		if got.Width != 22 || got.Height != 42 {
			t.Errorf("custom size = %gx%g, want 22x42", got.Width, got.Height)
		}
		if !Fits(big, 1, got, Landscape) {
			t.Error("custom fallback must fit the bounds in the requested orientation")
		}
	})
}

func TestCheck(t *testing.T) {
	b := childBounds(t)
	letter := Catalog[0]

	report := Check(b, 1.5, letter, Portrait)
	if !report.Oversized {
		t.Error("Oversized = false, want true for Letter portrait with margin 1.5")
	}
	if report.PageWidth != 8.5 || report.PageHeight != 11 {
		t.Errorf("oriented page = %gx%g, want 8.5x11", report.PageWidth, report.PageHeight)
	}

	report = Check(b, 1.5, Catalog[1], Landscape)
	if report.Oversized {
		t.Error("Oversized = true, want false for Legal landscape with margin 1.5")
	}
	if report.PageWidth != 14 || report.PageHeight != 8.5 {
		t.Errorf("oriented page = %gx%g, want 14x8.5", report.PageWidth, report.PageHeight)
	}
}
