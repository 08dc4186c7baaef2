package geom

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	steiner, err := NewSteinerCircles(Circle{Center: Pt(5, 5), Radius: 5}, 6, 0.4, 0, 0)
	require.NoError(t, err)
	items := []Drawable{
		steiner,
		NewLineSegment(0, 0, 10, 5),
		square().GetSmoothPath(0.3, SmoothRelative, true),
	}

	var buf bytes.Buffer
	opts := RenderOptions{Size: 200, Padding: 10, Label: func(i int) string { return "" }}
	require.NoError(t, RenderPNG(&buf, items, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	// The geometry spans 10×10, so the image is square
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderPNGDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, []Drawable{NewLine(Pt(0, 0), Pt(4, 2))}, RenderOptions{}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestDrawableBounds(t *testing.T) {
	bounds := drawableBounds([]Drawable{
		NewLine(Pt(-1, 0), Pt(1, 0)),
		NewCircle(5, 5, 1),
		&MixedPath{},
	})
	assert.Equal(t, &Rectangle{X: -1, Y: 0, Width: 7, Height: 6}, bounds)

	assert.Equal(t, &Rectangle{}, drawableBounds(nil))
}
