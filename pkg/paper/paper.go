// Package paper provides the printable page catalog and the layout fit
// checker. A Size is a named width/height pair in inches; Orientation
// decides which of its sides runs horizontally when the rainbow is
// placed on the page.
package paper

import (
	"strings"

	"github.com/printworks/rainbowpress/pkg/errors"
)

// Size is a named paper size. Width and Height are the portrait
// dimensions in inches.
type Size struct {
	Name   string
	Width  float64
	Height float64
}

// Area returns Width times Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// CustomName is the catalog entry name used for caller-supplied
// dimensions and for the synthetic fallback size.
const CustomName = "Custom"

// Custom builds a caller-supplied size.
func Custom(width, height float64) Size {
	return Size{Name: CustomName, Width: width, Height: height}
}

// Catalog lists the standard paper sizes in lookup order. FindSmallest
// breaks area ties by this order.
var Catalog = []Size{
	{Name: "Letter (US)", Width: 8.5, Height: 11},
	{Name: "Legal (US)", Width: 8.5, Height: 14},
	{Name: "Tabloid (US)", Width: 11, Height: 17},
	{Name: "A4", Width: 8.27, Height: 11.69},
	{Name: "A3", Width: 11.69, Height: 16.54},
	{Name: "A2", Width: 16.54, Height: 23.39},
	{Name: "A1", Width: 23.39, Height: 33.11},
}

// Lookup finds a catalog entry by name. Matching is case-insensitive and
// accepts the bare prefix ("letter", "legal", "tabloid") as well as the
// full display name.
func Lookup(name string) (Size, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Catalog {
		full := strings.ToLower(s.Name)
		short := strings.TrimSuffix(full, " (us)")
		if needle == full || needle == short {
			return s, true
		}
	}
	return Size{}, false
}

// Orientation selects how a page is turned when the layout is placed on
// it. Portrait compares the page as-is; landscape swaps its sides.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation validates an orientation string.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(strings.ToLower(strings.TrimSpace(s))) {
	case Portrait:
		return Portrait, nil
	case Landscape:
		return Landscape, nil
	}
	return "", errors.New(errors.ErrCodeInvalidOrientation,
		"orientation must be %q or %q, got %q", Portrait, Landscape, s)
}

// Apply returns the page dimensions as they face the layout: the
// portrait dimensions as-is, or swapped for landscape.
func (o Orientation) Apply(s Size) (width, height float64) {
	if o == Landscape {
		return s.Height, s.Width
	}
	return s.Width, s.Height
}
