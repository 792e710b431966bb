package sink

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	plan := testPlan(t)

	data, err := RenderPNG(plan)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Letter at the default 96 ppi, rasterized at the default 2x scale.
	assert.Equal(t, 1632, img.Bounds().Dx())
	assert.Equal(t, 2112, img.Bounds().Dy())
}

func TestRenderPNGWithTitle(t *testing.T) {
	plan := testPlan(t)

	// The caption is a text element the rasterizer cannot draw; it must
	// be skipped, not fail the whole render.
	data, err := RenderPNG(plan, WithPNGSVGOptions(WithTitle("Fingerprint Rainbow")))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1632, img.Bounds().Dx())
}

func TestRenderPNGScale(t *testing.T) {
	plan := testPlan(t)

	data, err := RenderPNG(plan, WithPNGScale(1))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 816, img.Bounds().Dx())
	assert.Equal(t, 1056, img.Bounds().Dy())

	// Non-positive scale falls back to the default.
	data, err = RenderPNG(plan, WithPNGScale(0))
	require.NoError(t, err)
	img, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1632, img.Bounds().Dx())
}

func TestRenderPNGWithSVGOptions(t *testing.T) {
	plan := testPlan(t)

	// Lower pixel density shrinks the raster proportionally.
	data, err := RenderPNG(plan, WithPNGSVGOptions(WithPPI(48)), WithPNGScale(1))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 408, img.Bounds().Dx())
	assert.Equal(t, 528, img.Bounds().Dy())
}
