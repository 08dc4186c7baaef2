package dbg

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/Quasimondo/QuasimondoLibsJS-sub001/geom"
)

// This is for debugging purposes only

// Show renders items and prints the image inline in terminals that speak the
// iTerm image protocol. Every item is labelled with its readable name.
func Show(items []geom.Drawable, opts geom.RenderOptions) error {
	f, err := os.CreateTemp("", "qlib-*.png")
	if err != nil {
		return errors.Wrap(err, "create debug image")
	}
	defer os.Remove(f.Name())

	if opts.Label == nil {
		opts.Label = func(i int) string { return Name(items[i]) }
	}
	if err := geom.RenderPNG(f, items, opts); err != nil {
		f.Close()
		return errors.Wrap(err, "render debug image")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "write debug image")
	}

	imgcat.CatFile(f.Name(), os.Stdout)
	return nil
}
