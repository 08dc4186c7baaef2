package geom

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ParseSVG reads the basic shapes of an SVG document in document order:
// <line> becomes a LineSegment, <polyline> a LinearPath, <polygon> a
// LinearPath that repeats its first point at the end, <circle> a Circle and
// <rect> a Rectangle. Transforms, styles and every other element are
// ignored. This is not a full SVG reader; it exists to feed test fixtures and
// the command line tool.
func ParseSVG(r io.Reader) ([]Shape, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}
	var shapes []Shape
	if err := collectShapes(root, &shapes); err != nil {
		return nil, err
	}
	return shapes, nil
}

func collectShapes(el *svgparser.Element, shapes *[]Shape) error {
	shape, err := shapeFromElement(el)
	if err != nil {
		return errors.Wrapf(err, "<%s>", el.Name)
	}
	if shape != nil {
		*shapes = append(*shapes, shape)
	}
	for _, child := range el.Children {
		if err := collectShapes(child, shapes); err != nil {
			return err
		}
	}
	return nil
}

func shapeFromElement(el *svgparser.Element) (Shape, error) {
	attrs := svgAttributes(el.Attributes)
	switch el.Name {
	case "line":
		x1, y1, x2, y2 := attrs.float("x1"), attrs.float("y1"), attrs.float("x2"), attrs.float("y2")
		return NewLineSegment(x1, y1, x2, y2), attrs.err
	case "polyline", "polygon":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		if el.Name == "polygon" && len(points) > 0 {
			points = append(points, points[0])
		}
		return NewLinearPath(points...), nil
	case "circle":
		cx, cy, r := attrs.float("cx"), attrs.float("cy"), attrs.float("r")
		return NewCircle(cx, cy, r), attrs.err
	case "rect":
		x, y, w, h := attrs.float("x"), attrs.float("y"), attrs.float("width"), attrs.float("height")
		return NewRectangle(x, y, w, h), attrs.err
	}
	return nil, nil
}

// Attribute reader that remembers the first parse error. Missing attributes
// are 0, as in SVG.
type svgAttributeReader struct {
	attrs map[string]string
	err   error
}

func svgAttributes(attrs map[string]string) *svgAttributeReader {
	return &svgAttributeReader{attrs: attrs}
}

func (r *svgAttributeReader) float(name string) float64 {
	s, ok := r.attrs[name]
	if !ok || r.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		r.err = errors.Wrapf(err, "attribute %s", name)
	}
	return v
}

// Parse an SVG points list: coordinates separated by whitespace and/or commas.
func parsePoints(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
