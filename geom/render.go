package geom

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// RenderOptions controls RenderPNG. A zero Size or LineWidth falls back to
// DefaultRenderOptions.
type RenderOptions struct {
	// Size of the longer image side in pixels
	Size int
	// Margin around the geometry in pixels
	Padding   float64
	LineWidth float64
	// Optional label drawn next to each drawable, keyed by index
	Label func(i int) string
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Size: 800, Padding: 40, LineWidth: 2}
}

// Drawable is anything that can put path commands onto a canvas. Shapes,
// MixedPath and SteinerCircles all qualify.
type Drawable interface {
	Draw(c Canvas)
}

type bounded interface {
	BoundingRect() *Rectangle
}

// RenderPNG draws every item onto a white canvas scaled to fit, strokes each
// in turn and writes the image as PNG to w. The y axis points up.
func RenderPNG(w io.Writer, items []Drawable, opts RenderOptions) error {
	defaults := DefaultRenderOptions()
	if opts.Size <= 0 {
		opts.Size = defaults.Size
	}
	if opts.Padding < 0 {
		opts.Padding = defaults.Padding
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = defaults.LineWidth
	}

	bounds := drawableBounds(items)
	extent := math.Max(bounds.Width, bounds.Height)
	if extent == 0 {
		extent = 1
	}
	scale := (float64(opts.Size) - 2*opts.Padding) / extent
	if scale <= 0 {
		scale = 1
	}
	width := int(math.Ceil(bounds.Width*scale + 2*opts.Padding))
	height := int(math.Ceil(bounds.Height*scale + 2*opts.Padding))

	c := gg.NewContext(width, height)
	c.SetColor(color.White)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(opts.Padding, opts.Padding)
	c.Scale(scale, scale)
	c.Translate(-bounds.X, -bounds.Y)

	for i, item := range items {
		c.SetColor(palette[i%len(palette)])
		c.SetLineWidth(opts.LineWidth)
		item.Draw(c)
		// gg transforms path points as they are added, so the line width stays
		// in device pixels
		c.Stroke()

		if opts.Label == nil {
			continue
		}
		if b, ok := item.(bounded); ok {
			center := b.BoundingRect().Center()
			x, y := c.TransformPoint(center.X, center.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(opts.Label(i), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
	return c.EncodePNG(w)
}

var palette = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
}

func drawableBounds(items []Drawable) *Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, item := range items {
		var r *Rectangle
		switch v := item.(type) {
		case bounded:
			r = v.BoundingRect()
		case *Line:
			r = RectangleFromPoints(v.P1, v.P2)
		default:
			continue
		}
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.Right())
		maxY = math.Max(maxY, r.Bottom())
	}
	if math.IsInf(minX, 1) {
		return &Rectangle{}
	}
	return &Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
