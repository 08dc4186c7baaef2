package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/Quasimondo/QuasimondoLibsJS-sub001/dbg"
	"github.com/Quasimondo/QuasimondoLibsJS-sub001/geom"
	"github.com/Quasimondo/QuasimondoLibsJS-sub001/internal/config"
)

type demo struct {
	out     io.Writer
	au      aurora.Aurora
	verbose bool
	// Print renders inline as well
	show bool
	cfg  *config.Render
}

type steinerArgs struct {
	count                               *int
	ratio, rotation, startAngle, radius *float64
}

type smoothArgs struct {
	file   *string
	factor *float64
	mode   *string
	closed *bool
}

type eigenArgs struct {
	a, b, c *float64
}

var smoothModes = map[string]geom.SmoothMode{
	"relative":     geom.SmoothRelative,
	"absolute":     geom.SmoothAbsolute,
	"relative-min": geom.SmoothRelativeMinimum,
	"absolute-min": geom.SmoothAbsoluteMinimum,
}

func smoothModeNames() []string {
	names := make([]string, 0, len(smoothModes))
	for name := range smoothModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *demo) steiner(args steinerArgs) error {
	parent := geom.Circle{Radius: *args.radius}
	chain, err := geom.NewSteinerCircles(parent, *args.count, *args.ratio, *args.rotation, *args.startAngle)
	if err != nil {
		return err
	}

	for i, c := range chain.ChainCircles() {
		c := c
		fmt.Fprintf(d.out, "%s %v\n", d.au.Cyan(fmt.Sprintf("circle %d", i)), &c)
	}
	inner := chain.InnerCircle()
	fmt.Fprintf(d.out, "%s %v\n", d.au.Green("inner"), &inner)
	if d.verbose {
		dbg.Dump(d.out, "chain", chain)
	}
	return d.render([]geom.Drawable{chain})
}

func (d *demo) smooth(args smoothArgs) error {
	shapes, err := readSVG(*args.file)
	if err != nil {
		return err
	}
	mode, ok := smoothModes[*args.mode]
	if !ok {
		return errors.Errorf("unknown smoothing mode %q", *args.mode)
	}

	var items []geom.Drawable
	smoothed := 0
	for _, shape := range shapes {
		path, ok := shape.(*geom.LinearPath)
		if !ok {
			continue
		}
		items = append(items, path)

		result := path.GetSmoothPath(*args.factor, mode, *args.closed)
		if result == nil {
			fmt.Fprintf(d.out, "%s %s\n", d.au.Red("skipped"), dbg.Name(path))
			continue
		}
		curves := 0
		for _, p := range result.Points {
			if p.Control {
				curves++
			}
		}
		fmt.Fprintf(d.out, "%s %s: %d points, %d curves\n", d.au.Green("smoothed"), dbg.Name(path), len(result.Points), curves)
		if d.verbose {
			dbg.Dump(d.out, dbg.Name(path), result)
		}
		items = append(items, result)
		smoothed++
	}
	if smoothed == 0 {
		return errors.Errorf("no path in %s could be smoothed", *args.file)
	}
	return d.render(items)
}

func (d *demo) intersect(file string) error {
	shapes, err := readSVG(file)
	if err != nil {
		return err
	}

	var hits []geom.Point
	for i := 0; i < len(shapes); i++ {
		for j := i + 1; j < len(shapes); j++ {
			a, b := shapes[i], shapes[j]
			label := fmt.Sprintf("%s %s × %s %s:", a.Kind(), dbg.Name(a), b.Kind(), dbg.Name(b))
			points, err := geom.Intersect(a, b)
			switch {
			case errors.Is(err, geom.ErrUnsupportedShapePair):
				fmt.Fprintf(d.out, "%s %s\n", label, d.au.Yellow("unsupported"))
				continue
			case err != nil:
				return err
			case len(points) == 0:
				fmt.Fprintf(d.out, "%s %s\n", label, d.au.Cyan("none"))
			default:
				fmt.Fprintf(d.out, "%s %v %v\n", label, d.au.Green(len(points)), points)
			}
			hits = append(hits, points...)
		}
	}

	items := make([]geom.Drawable, 0, len(shapes)+len(hits))
	for _, s := range shapes {
		items = append(items, s)
	}
	r := markerRadius(shapes)
	for _, p := range hits {
		items = append(items, geom.NewCircle(p.X, p.Y, r))
	}
	return d.render(items)
}

func (d *demo) eigen(args eigenArgs) error {
	m := geom.CovarianceMatrix2{A: *args.a, B: *args.b, C: *args.c}
	result, err := m.Eigen()
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "matrix %v\n", m)
	for i := range result.Values {
		fmt.Fprintf(d.out, "%s %g  %s %v\n", d.au.Cyan("λ"), result.Values[i], d.au.Cyan("v"), result.Vectors[i])
	}
	if d.verbose {
		dbg.Dump(d.out, "eigen", result)
	}
	return nil
}

// Write the items to the configured output file.
func (d *demo) render(items []geom.Drawable) error {
	f, err := os.Create(d.cfg.Output)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	if err := geom.RenderPNG(f, items, d.cfg.Options()); err != nil {
		f.Close()
		return errors.Wrap(err, "render")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "write output")
	}
	fmt.Fprintf(d.out, "wrote %s\n", d.au.Bold(d.cfg.Output))

	if d.show {
		return dbg.Show(items, d.cfg.Options())
	}
	return nil
}

func readSVG(file string) ([]geom.Shape, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "open svg")
	}
	defer f.Close()
	shapes, err := geom.ParseSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", file)
	}
	return shapes, nil
}

// Size of the dots marking intersection points, relative to the drawing.
func markerRadius(shapes []geom.Shape) float64 {
	bounds := &geom.Rectangle{}
	for _, s := range shapes {
		if b, ok := s.(interface{ BoundingRect() *geom.Rectangle }); ok {
			bounds = bounds.Union(b.BoundingRect())
		}
	}
	extent := math.Max(bounds.Width, bounds.Height)
	if extent == 0 {
		return 1
	}
	return extent / 100
}
