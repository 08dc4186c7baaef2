package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *LinearPath {
	return NewLinearPath(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
}

func TestLinearPathAddPoint(t *testing.T) {
	t.Run("rejects duplicates", func(t *testing.T) {
		path := &LinearPath{}
		assert.True(t, path.AddPoint(&Point{0, 0}, true))
		assert.False(t, path.AddPoint(&Point{0, 0}, true))
		assert.True(t, path.AddPoint(&Point{3, 4}, true))
		assert.False(t, path.AddPoint(&Point{3, 4 + 1e-12}, true))
		assert.Equal(t, 2, path.PointCount())
		assert.Equal(t, 5.0, path.Length())
	})

	t.Run("only the last point counts", func(t *testing.T) {
		path := NewLinearPath(Pt(0, 0), Pt(1, 0), Pt(0, 0))
		assert.Equal(t, 3, path.PointCount())
		assert.Equal(t, 2.0, path.Length())
	})

	t.Run("clone", func(t *testing.T) {
		p := &Point{1, 1}
		path := &LinearPath{}
		path.AddPoint(p, true)
		p.X = 5
		assert.Equal(t, 1.0, path.Points[0].X)
	})

	t.Run("reference", func(t *testing.T) {
		p1 := &Point{0, 0}
		p2 := &Point{3, 0}
		path := &LinearPath{}
		path.AddPoint(p1, false)
		path.AddPoint(p2, false)
		assert.Same(t, p2, path.Points[1])

		p2.Y = 4
		path.MarkDirty()
		assert.Equal(t, 5.0, path.Length())
	})
}

func TestLinearPathLengths(t *testing.T) {
	path := NewLinearPath(Pt(0, 0), Pt(3, 4), Pt(3, 10), Pt(0, 6))
	assert.Equal(t, 16.0, path.Length())
	assert.Equal(t, 3, path.SegmentCount(false))
	assert.Equal(t, 4, path.SegmentCount(true))
	assert.Equal(t, 6.0, path.SegmentLength(1))
	// The closing segment
	assert.Equal(t, 6.0, path.SegmentLength(3))
	assert.Equal(t, 6.0, path.SegmentLength(-1))

	assert.Equal(t, 0, (&LinearPath{}).SegmentCount(true))
	assert.Equal(t, 0, NewLinearPath(Pt(1, 1)).SegmentCount(true))
	assert.Equal(t, 0.0, (&LinearPath{}).SegmentLength(0))
	assert.Equal(t, 0.0, NewLinearPath(Pt(1, 1)).SegmentLength(2))
}

func TestLinearPathGetSegment(t *testing.T) {
	path := NewLinearPath(Pt(0, 0), Pt(1, 0), Pt(1, 1))

	segment := path.GetSegment(0)
	assert.Same(t, path.Points[0], segment.P1)
	assert.Same(t, path.Points[1], segment.P2)

	// Indices wrap in both directions
	for _, index := range []int{2, -1, 5} {
		segment = path.GetSegment(index)
		assert.Same(t, path.Points[2], segment.P1, "index %d", index)
		assert.Same(t, path.Points[0], segment.P2, "index %d", index)
	}

	assert.Nil(t, (&LinearPath{}).GetSegment(0))
	assert.Len(t, path.Segments(), 2)
}

func TestLinearPathPointAtLength(t *testing.T) {
	path := square()

	tests := []struct {
		name     string
		d        float64
		loop     bool
		expected Point
	}{
		{"start", 0, false, Pt(0, 0)},
		{"first segment", 4, false, Pt(4, 0)},
		{"corner", 10, false, Pt(10, 0)},
		{"second segment", 15, false, Pt(10, 5)},
		{"clamped low", -1, false, Pt(0, 0)},
		{"clamped high", 100, false, Pt(0, 10)},
		{"closing segment", 35, true, Pt(0, 5)},
		{"wrapped", 45, true, Pt(5, 0)},
		{"wrapped backwards", -5, true, Pt(0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := path.PointAtLength(tt.d, tt.loop)
			require.True(t, ok)
			assertPointInDelta(t, tt.expected, p, Epsilon)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, ok := (&LinearPath{}).PointAtLength(1, false)
		assert.False(t, ok)
	})

	t.Run("single point", func(t *testing.T) {
		p, ok := NewLinearPath(Pt(2, 3)).PointAtLength(1, true)
		require.True(t, ok)
		assert.Equal(t, Pt(2, 3), p)
	})
}

func TestLinearPathBoundingRect(t *testing.T) {
	assert.Equal(t, &Rectangle{}, (&LinearPath{}).BoundingRect())
	assert.Equal(t,
		&Rectangle{X: -1, Y: 2, Width: 5, Height: 6},
		NewLinearPath(Pt(4, 2), Pt(-1, 5), Pt(0, 8)).BoundingRect(),
	)
}

func TestLinearPathScale(t *testing.T) {
	t.Run("around the bounds center", func(t *testing.T) {
		path := square()
		path.Scale(2, 0.5, nil)
		assert.Equal(t, Pt(-5, 2.5), *path.Points[0])
		assert.Equal(t, Pt(15, 7.5), *path.Points[2])
		assert.Equal(t, 45.0, path.Length())
	})

	t.Run("around a point", func(t *testing.T) {
		path := square()
		path.Scale(2, 2, &Point{})
		assert.Equal(t, Pt(20, 20), *path.Points[2])
		assert.Equal(t, 60.0, path.Length())
	})
}

func TestLinearPathClone(t *testing.T) {
	path := square()

	deep := path.Clone(true).(*LinearPath)
	shallow := path.Clone(false).(*LinearPath)
	assert.NotSame(t, path.Points[0], deep.Points[0])
	assert.Same(t, path.Points[0], shallow.Points[0])
	assert.Equal(t, path.Length(), deep.Length())

	deep.Points[0].X = 100
	assert.Equal(t, 0.0, path.Points[0].X)
}

func TestLinearPathDraw(t *testing.T) {
	canvas := &recordingCanvas{}
	NewLinearPath(Pt(0, 0), Pt(1, 0), Pt(1, 1)).Draw(canvas)
	assert.Equal(t, []string{"MoveTo 0 0", "LineTo 1 0", "LineTo 1 1"}, canvas.calls)
}

func TestLinearPathString(t *testing.T) {
	assert.Equal(t, "LinearPath[(0, 0) (1, 2)]", NewLinearPath(Pt(0, 0), Pt(1, 2)).String())
}

func TestLinearPathNeverStoresDegenerateSegments(t *testing.T) {
	var points []Point
	for i := 0; i < 100; i++ {
		points = append(points, Pt(float64(i/3), math.Floor(float64(i)/7)))
	}
	path := NewLinearPath(points...)
	for i := 0; i < path.SegmentCount(false); i++ {
		assert.GreaterOrEqual(t, path.SegmentLength(i), Epsilon)
	}
}
