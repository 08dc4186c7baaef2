package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anchor(x, y float64) MixedPoint  { return MixedPoint{Point: Pt(x, y)} }
func control(x, y float64) MixedPoint { return MixedPoint{Point: Pt(x, y), Control: true} }

func assertMixedPointsInDelta(t *testing.T, expected, actual []MixedPoint) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Control, actual[i].Control, "point %d", i)
		assertPointInDelta(t, expected[i].Point, actual[i].Point, Epsilon, "point %d", i)
	}
}

func TestGetSmoothPath(t *testing.T) {
	ell := func() *LinearPath { return NewLinearPath(Pt(0, 0), Pt(10, 0), Pt(10, 10)) }

	t.Run("too few points", func(t *testing.T) {
		assert.Nil(t, (&LinearPath{}).GetSmoothPath(0.25, SmoothRelative, false))
		assert.Nil(t, NewLinearPath(Pt(1, 1)).GetSmoothPath(0.25, SmoothRelative, true))
	})

	t.Run("single segment", func(t *testing.T) {
		smooth := NewLinearPath(Pt(0, 0), Pt(10, 0)).GetSmoothPath(0.25, SmoothRelative, false)
		require.NotNil(t, smooth)
		assertMixedPointsInDelta(t, []MixedPoint{anchor(0, 0), anchor(10, 0)}, smooth.Points)
	})

	t.Run("open relative", func(t *testing.T) {
		smooth := ell().GetSmoothPath(0.25, SmoothRelative, false)
		require.NotNil(t, smooth)
		assert.False(t, smooth.Closed)
		// The end points stay where they are
		assertMixedPointsInDelta(t, []MixedPoint{
			anchor(0, 0),
			anchor(7.5, 0),
			control(10, 0),
			anchor(10, 2.5),
			anchor(10, 10),
		}, smooth.Points)
	})

	t.Run("cut back clamps to half the edge", func(t *testing.T) {
		smooth := ell().GetSmoothPath(100, SmoothAbsolute, false)
		require.NotNil(t, smooth)
		assertMixedPointsInDelta(t, []MixedPoint{
			anchor(0, 0),
			anchor(5, 0),
			control(10, 0),
			anchor(10, 5),
			anchor(10, 10),
		}, smooth.Points)
	})

	t.Run("zero factor keeps corners", func(t *testing.T) {
		smooth := ell().GetSmoothPath(0, SmoothRelative, false)
		require.NotNil(t, smooth)
		assertMixedPointsInDelta(t, []MixedPoint{
			anchor(0, 0),
			anchor(10, 0),
			anchor(10, 10),
		}, smooth.Points)
	})

	t.Run("minimum modes use the shortest edge", func(t *testing.T) {
		path := NewLinearPath(Pt(0, 0), Pt(10, 0), Pt(10, 4))
		expected := []MixedPoint{
			anchor(0, 0),
			anchor(8, 0),
			control(10, 0),
			anchor(10, 2),
			anchor(10, 4),
		}

		relative := path.GetSmoothPath(0.5, SmoothRelativeMinimum, false)
		require.NotNil(t, relative)
		assertMixedPointsInDelta(t, expected, relative.Points)

		absolute := path.GetSmoothPath(10, SmoothAbsoluteMinimum, false)
		require.NotNil(t, absolute)
		assertMixedPointsInDelta(t, expected, absolute.Points)
	})

	t.Run("closed", func(t *testing.T) {
		smooth := square().GetSmoothPath(0.25, SmoothRelative, true)
		require.NotNil(t, smooth)
		assert.True(t, smooth.Closed)
		assertMixedPointsInDelta(t, []MixedPoint{
			anchor(2.5, 0),
			anchor(7.5, 0),
			control(10, 0),
			anchor(10, 2.5),
			anchor(10, 7.5),
			control(10, 10),
			anchor(7.5, 10),
			anchor(2.5, 10),
			control(0, 10),
			anchor(0, 7.5),
			anchor(0, 2.5),
			control(0, 0),
		}, smooth.Points)
	})

	t.Run("explicitly closed input", func(t *testing.T) {
		path := NewLinearPath(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0))
		expected := square().GetSmoothPath(0.25, SmoothRelative, true)
		actual := path.GetSmoothPath(0.25, SmoothRelative, true)
		require.NotNil(t, actual)
		assertMixedPointsInDelta(t, expected.Points, actual.Points)
	})

	t.Run("closed and fully rounded", func(t *testing.T) {
		smooth := square().GetSmoothPath(100, SmoothAbsolute, true)
		require.NotNil(t, smooth)
		assertMixedPointsInDelta(t, []MixedPoint{
			anchor(5, 0),
			control(10, 0),
			anchor(10, 5),
			control(10, 10),
			anchor(5, 10),
			control(0, 10),
			anchor(0, 5),
			control(0, 0),
		}, smooth.Points)
	})

	t.Run("every control point sits between anchors", func(t *testing.T) {
		path := NewLinearPath(Pt(0, 0), Pt(3, 7), Pt(9, 2), Pt(12, 12), Pt(-4, 6))
		for _, loop := range []bool{false, true} {
			for _, mode := range []SmoothMode{SmoothRelative, SmoothAbsolute, SmoothRelativeMinimum, SmoothAbsoluteMinimum} {
				smooth := path.GetSmoothPath(0.3, mode, loop)
				require.NotNil(t, smooth)
				points := smooth.Points
				assert.False(t, points[0].Control)
				for i, p := range points {
					if !p.Control {
						continue
					}
					assert.False(t, points[i-1].Control, "mode %d loop %v", mode, loop)
					if i+1 < len(points) {
						assert.False(t, points[i+1].Control, "mode %d loop %v", mode, loop)
					}
				}
			}
		}
	})
}

func TestMixedPathDraw(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		canvas := &recordingCanvas{}
		square().GetSmoothPath(100, SmoothAbsolute, true).Draw(canvas)
		assert.Equal(t, []string{
			"MoveTo 5 0",
			"QuadraticTo 10 0 10 5",
			"QuadraticTo 10 10 5 10",
			"QuadraticTo 0 10 0 5",
			"QuadraticTo 0 0 5 0",
			"ClosePath",
		}, canvas.calls)
	})

	t.Run("open", func(t *testing.T) {
		canvas := &recordingCanvas{}
		path := &MixedPath{Points: []MixedPoint{anchor(0, 0), anchor(5, 0), control(10, 0), anchor(10, 5), anchor(10, 10)}}
		path.Draw(canvas)
		assert.Equal(t, []string{
			"MoveTo 0 0",
			"LineTo 5 0",
			"QuadraticTo 10 0 10 5",
			"LineTo 10 10",
		}, canvas.calls)
	})

	t.Run("empty", func(t *testing.T) {
		canvas := &recordingCanvas{}
		(&MixedPath{}).Draw(canvas)
		assert.Empty(t, canvas.calls)
	})
}

func TestMixedPathFlatten(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		flat := square().GetSmoothPath(100, SmoothAbsolute, true).Flatten(4)
		// The start point plus four points for each of the four curves
		require.Equal(t, 17, flat.PointCount())
		assert.Equal(t, *flat.Points[0], *flat.Points[16])
		bounds := flat.BoundingRect()
		assert.True(t, NewRectangle(0, 0, 10, 10).Contains(Pt(bounds.X, bounds.Y)))
		assert.True(t, NewRectangle(0, 0, 10, 10).Contains(Pt(bounds.Right(), bounds.Bottom())))
	})

	t.Run("curve midpoint", func(t *testing.T) {
		path := &MixedPath{Points: []MixedPoint{anchor(0, 0), control(10, 0), anchor(10, 10)}}
		flat := path.Flatten(2)
		require.Equal(t, 3, flat.PointCount())
		assertPointInDelta(t, Pt(7.5, 2.5), *flat.Points[1], Epsilon)
	})

	t.Run("lines only", func(t *testing.T) {
		path := &MixedPath{Points: []MixedPoint{anchor(0, 0), anchor(1, 0), anchor(1, 1)}}
		assert.Equal(t, 3, path.Flatten(8).PointCount())
	})
}

func TestMixedPathBoundingRect(t *testing.T) {
	smooth := square().GetSmoothPath(0.25, SmoothRelative, true)
	assert.Equal(t, &Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, smooth.BoundingRect())
}
