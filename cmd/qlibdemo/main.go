package main

import (
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/Quasimondo/QuasimondoLibsJS-sub001/geom"
	"github.com/Quasimondo/QuasimondoLibsJS-sub001/internal/config"
)

// Demo of the geometry core. Each command builds or reads some shapes, runs
// one of the core operations on them, prints a report and renders the result
// to a PNG file. Rendering defaults come from QLIB_* environment variables and
// can be overridden with flags.
func main() {
	app := kingpin.New("qlibdemo", "Planar geometry playground.")
	verbose := app.Flag("verbose", "Log debug output and dump results.").Short('v').Bool()
	noColor := app.Flag("no-color", "Disable coloured output.").Bool()
	output := app.Flag("output", "PNG file to write (default $QLIB_OUTPUT).").Short('o').String()
	size := app.Flag("size", "Longer image side in pixels (default $QLIB_CANVAS_SIZE).").Int()
	show := app.Flag("imgcat", "Also print the render inline (iTerm).").Bool()

	steinerCmd := app.Command("steiner", "Render a Steiner chain.")
	steinerFlags := steinerArgs{
		count:      steinerCmd.Flag("count", "Number of circles in the chain.").Short('n').Default("6").Int(),
		ratio:      steinerCmd.Flag("ratio", "Eccentricity, from 0 (concentric) towards 1.").Default("0.4").Float64(),
		rotation:   steinerCmd.Flag("rotation", "Direction of the eccentricity in radians.").Default("0").Float64(),
		startAngle: steinerCmd.Flag("start", "Angle of the first circle in radians.").Default("0").Float64(),
		radius:     steinerCmd.Flag("radius", "Radius of the parent circle.").Default("100").Float64(),
	}

	smoothCmd := app.Command("smooth", "Round the corners of every path in an SVG file.")
	smoothFlags := smoothArgs{
		file:   smoothCmd.Arg("svg", "Input SVG.").Required().ExistingFile(),
		factor: smoothCmd.Flag("factor", "Cut-back factor.").Default("0.25").Float64(),
		mode:   smoothCmd.Flag("mode", "Cut-back mode.").Default("relative").Enum(smoothModeNames()...),
		closed: smoothCmd.Flag("closed", "Treat paths as closed loops.").Bool(),
	}

	intersectCmd := app.Command("intersect", "Intersect every pair of shapes in an SVG file.")
	intersectFile := intersectCmd.Arg("svg", "Input SVG.").Required().ExistingFile()

	eigenCmd := app.Command("eigen", "Eigen-decompose the symmetric matrix [[a b] [b c]].")
	eigenFlags := eigenArgs{
		a: eigenCmd.Arg("a", "Top left entry.").Required().Float64(),
		b: eigenCmd.Arg("b", "Off-diagonal entry.").Required().Float64(),
		c: eigenCmd.Arg("c", "Bottom right entry.").Required().Float64(),
	}

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	geom.SetLogger(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *size > 0 {
		cfg.CanvasSize = *size
	}

	d := &demo{
		out:     os.Stdout,
		au:      aurora.NewAurora(!*noColor),
		verbose: *verbose,
		show:    *show,
		cfg:     cfg,
	}

	switch command {
	case steinerCmd.FullCommand():
		err = d.steiner(steinerFlags)
	case smoothCmd.FullCommand():
		err = d.smooth(smoothFlags)
	case intersectCmd.FullCommand():
		err = d.intersect(*intersectFile)
	case eigenCmd.FullCommand():
		err = d.eigen(eigenFlags)
	}
	if err != nil {
		slog.Error(command, "error", err)
		os.Exit(1)
	}
}
